package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"

	"restaurant-digital/config"
	"restaurant-digital/logger"
	httpapi "restaurant-digital/restaurant-svc/internal/api/http"
	"restaurant-digital/restaurant-svc/internal/service"
	"restaurant-digital/restaurant-svc/internal/storage"
	"restaurant-digital/server"
)

var log = logging.MustGetLogger("restaurant-svc")

// buildApp wires the application. db is only used with postgres storage;
// writer and notices may be nil when no broker is configured.
func buildApp(cfg *config.Config, db *sql.DB, writer storage.MessageWriter, notices storage.AMQPPublisher) (*service.App, error) {
	opts := service.Options{
		Gateway: service.SimulatedGateway{Delay: cfg.PaymentDelay},
		QR:      service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
	}

	switch cfg.Storage {
	case config.StoragePostgres:
		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(); err != nil {
			return nil, err
		}
		opts.Catalog, opts.Orders = repo, repo
	default:
		repo := storage.NewMemoryRepository()
		opts.Catalog, opts.Orders = repo, repo
	}

	seeded, err := service.SeedMenu(opts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("seed menu: %w", err)
	}
	if seeded > 0 {
		log.Infof("seeded %d menu items", seeded)
	}

	if writer != nil {
		opts.Publisher = storage.NewKafkaPublisher(writer)
	}
	if notices != nil {
		opts.Notifier = storage.NewRabbitNotifier(notices, cfg.NoticeExchange)
	}
	return service.NewApp(opts), nil
}

func main() {
	cfg, err := config.Load("restaurant-svc")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	var db *sql.DB
	if cfg.Storage == config.StoragePostgres {
		db = config.MustInitPostgres(cfg)
		defer db.Close()
	}

	var writer storage.MessageWriter
	if cfg.KafkaEnabled() {
		kw := config.NewKafkaWriter(cfg)
		defer kw.Close()
		writer = kw
		log.Infof("publishing order events to %s/%s", cfg.KafkaBroker, cfg.OrderTopic)
	}

	var notices storage.AMQPPublisher
	if cfg.NoticesEnabled() {
		conn, ch := config.MustInitRabbit(cfg)
		defer conn.Close()
		notices = ch
		log.Infof("sending checkout notices to exchange %s", cfg.NoticeExchange)
	}

	app, err := buildApp(cfg, db, writer, notices)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := httpapi.NewRouter(httpapi.NewHandler(app, app, app, app))
	if err := server.Start(ctx, "restaurant-svc", cfg.HTTPAddr, handler); err != nil {
		log.Errorf("server stopped: %v", err)
	}

	log.Info("waiting for pending payments")
	app.Wait()
}
