package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	app "storefront/internal/application/storefront"
	"storefront/internal/config"
	"storefront/internal/infrastructure/http/orderapi"
	"storefront/internal/interfaces/term"
	"storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting storefront",
		logger.String("app", cfg.App.Name),
		logger.String("env", cfg.App.Env),
		logger.String("api_base_url", cfg.API.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := orderapi.NewClient(cfg.API, zlog)
	svc := app.NewService(client, client, zlog)
	controller := term.NewController(svc, os.Stdin, os.Stdout, zlog)

	if err := controller.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("storefront stopped", logger.Error(err))
	}

	zlog.Info("storefront exited")
}
