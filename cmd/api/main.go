package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "laserwood/docs"
	"laserwood/internal/adapter/http/routes"
	"laserwood/internal/config"
	"laserwood/internal/infrastructure/auth"
	"laserwood/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Laserwood API
// @version         1.0
// @description     Laser engraving studio storefront: catalog, price quotes and customer inquiries.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Release())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := auth.CheckHash(cfg.Admin.PasswordHash); err != nil {
		log.Fatal("invalid admin credentials config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
	log.Info("server stopped")
}
