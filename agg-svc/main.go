package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"

	httpapi "restaurant-digital/agg-svc/internal/api/http"
	"restaurant-digital/agg-svc/internal/service"
	"restaurant-digital/agg-svc/internal/storage"
	"restaurant-digital/config"
	"restaurant-digital/logger"
	"restaurant-digital/server"
)

var log = logging.MustGetLogger("agg-svc")

func buildRouter(store service.StoreInterface) http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(service.NewAnalytics(store)))
}

func main() {
	cfg, err := config.Load("agg-svc")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	store := storage.NewStore(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.KafkaEnabled() {
		reader := config.NewKafkaReader(cfg)
		defer reader.Close()
		go service.NewConsumer(reader, store).Start(ctx)
		log.Infof("consuming %s from %s as %s", cfg.OrderTopic, cfg.KafkaBroker, cfg.ConsumerGroup)
	} else {
		log.Warning("no kafka broker configured, counters will not move")
	}

	if err := server.Start(ctx, "agg-svc", cfg.HTTPAddr, buildRouter(store)); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
