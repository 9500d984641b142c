package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accounts/cmd"
	"accounts/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err = db.AutoMigrate(&userrepo.UserDTO{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	err = cmd.RunWithJobs(app.CreateJobManager(), func() error {
		return startWebServer(&app, configs.HTTPPort, logger)
	})
	if err != nil {
		log.Fatalf("application stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:     goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:     goDotEnvVariable("DB_PORT", "5432"),
		DBUser:     goDotEnvVariable("DB_USER", "postgres"),
		DBPassword: goDotEnvVariable("DB_PASSWORD", ""),
		DBName:     goDotEnvVariable("DB_NAME", "accounts"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE", "disable"),
		LogLevel:   goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	return nil
}
