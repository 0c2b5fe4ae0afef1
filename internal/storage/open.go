package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/config"
)

// Open creates the backend selected by cfg.Driver
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, data will not survive a restart")
		return NewMemoryBackend(), nil
	case config.DriverSQLite:
		logger.Info("opening sqlite storage", "path", cfg.SQLitePath)
		return NewSQLiteBackend(ctx, cfg.SQLitePath)
	case config.DriverRedis:
		logger.Info("connecting to redis storage", "namespace", cfg.RedisNamespace)
		return NewRedisBackend(ctx, cfg.RedisURL, cfg.RedisNamespace)
	case config.DriverPostgres:
		logger.Info("connecting to postgres storage")
		return NewPostgresBackend(ctx, cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}
