package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/op/go-logging"

	"restaurant-digital/api-gateway/internal/gateway"
	"restaurant-digital/config"
	"restaurant-digital/logger"
	"restaurant-digital/server"
)

var log = logging.MustGetLogger("api-gateway")

func newGateway(cfg *config.Config, client gateway.HTTPClient) *gateway.Gateway {
	return gateway.NewGateway(gateway.Config{
		RestaurantSvcURL: cfg.RestaurantURL,
		AggSvcURL:        cfg.AggURL,
	}, client)
}

func main() {
	cfg, err := config.Load("api-gateway")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	gw := newGateway(cfg, &http.Client{Timeout: 30 * time.Second})
	log.Infof("routing to restaurant-svc at %s and agg-svc at %s", cfg.RestaurantURL, cfg.AggURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, "api-gateway", cfg.HTTPAddr, gw.SetupRoutes()); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
