package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает zap логгер: JSON для production, цветная консоль для остальных окружений
func NewLogger(env string) *zap.Logger {
	var cfg zap.Config

	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger.Named("study_system")
}

// InstallGlobal делает логгер глобальным (zap.L), им пользуется пакет model.
// Возвращает функцию восстановления предыдущего логгера.
func InstallGlobal(logger *zap.Logger) func() {
	return zap.ReplaceGlobals(logger)
}
