package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrProviderClosed возвращается после Close
var ErrProviderClosed = errors.New("connection provider is closed")

// Provider выдаёт один общий пул соединений на всё время жизни процесса
type Provider struct {
	dsn    string
	logger *zap.Logger

	mu     sync.Mutex
	pool   *pgxpool.Pool
	closed bool
}

// NewProvider создаёт провайдер; пул создаётся при первом обращении
func NewProvider(dsn string, logger *zap.Logger) *Provider {
	return &Provider{
		dsn:    dsn,
		logger: logger,
	}
}

// Pool возвращает общий пул, при каждом вызове один и тот же
func (p *Provider) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrProviderClosed
	}
	if p.pool != nil {
		return p.pool, nil
	}

	cfg, err := pgxpool.ParseConfig(p.dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	p.logger.Info("Database pool created",
		zap.String("host", cfg.ConnConfig.Host),
		zap.Uint16("port", cfg.ConnConfig.Port),
		zap.String("database", cfg.ConnConfig.Database))

	p.pool = pool
	return pool, nil
}

// Ping проверяет соединение с базой через общий пул
func (p *Provider) Ping(ctx context.Context) error {
	pool, err := p.Pool(ctx)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close закрывает пул; повторный вызов ничего не делает
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
		p.logger.Info("Database pool closed")
	}
}
