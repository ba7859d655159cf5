package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mealbox/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	uowFactory, closeStorage, err := cmd.OpenStorage(configs)
	if err != nil {
		log.Fatalf("Error opening %s storage: %v", configs.StorageDriver, err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("Error closing storage", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, uowFactory, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateHTTPHandler(ctx)
	if err != nil {
		log.Fatalf("Error building HTTP handler: %v", err)
	}

	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		logger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
