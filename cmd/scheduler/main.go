package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/study_system/internal/app"
	"github.com/Freeeeeet/study_system/internal/config"
	"github.com/Freeeeeet/study_system/internal/database"
	"github.com/Freeeeeet/study_system/internal/formatting"
	"github.com/Freeeeeet/study_system/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	restore := app.InstallGlobal(logger)
	defer restore()

	logger.Info("Starting study system scheduler",
		zap.String("environment", cfg.Environment),
		zap.String("day_locale", string(cfg.DayLocale)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := database.NewProvider(cfg.DBDSN, logger)
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	week := make([]string, 0, 7)
	for _, day := range model.Days() {
		week = append(week, formatting.DayName(cfg.DayLocale, day))
	}
	logger.Info("Weekly time slots ready", zap.Strings("days", week))

	health := app.NewHealthChecker(db, time.Minute, logger)
	health.Start(ctx)

	<-ctx.Done()
	health.Stop()
	logger.Info("Scheduler stopped")
}
