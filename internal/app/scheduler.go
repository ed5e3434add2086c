package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность базы (реализуется database.Provider)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker периодически проверяет общее соединение с базой
type HealthChecker struct {
	db       Pinger
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
}

// NewHealthChecker создаёт фоновую проверку соединения
func NewHealthChecker(db Pinger, interval time.Duration, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{
		db:       db,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает проверку в отдельной горутине
func (h *HealthChecker) Start(ctx context.Context) {
	h.logger.Info("Starting database health checker", zap.Duration("interval", h.interval))

	go h.run(ctx)
}

// Stop останавливает проверку и ждёт завершения горутины
func (h *HealthChecker) Stop() {
	h.logger.Info("Stopping database health checker")
	close(h.stopChan)
	<-h.done
}

func (h *HealthChecker) run(ctx context.Context) {
	defer close(h.done)

	// Первая проверка сразу при старте
	h.check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.check(ctx)
		case <-h.stopChan:
			h.logger.Info("Database health checker stopped")
			return
		case <-ctx.Done():
			h.logger.Info("Database health checker cancelled")
			return
		}
	}
}

func (h *HealthChecker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		h.logger.Error("Database ping failed", zap.Error(err))
		return
	}

	h.logger.Debug("Database ping ok")
}
