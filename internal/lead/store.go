package lead

import (
	"context"
	"fmt"

	"github.com/iwvelando/quote-engine/pkg/constants"
	"go.uber.org/zap"
)

// StoreConfig selects and configures a lead store backend.
type StoreConfig struct {
	Driver string       `yaml:"driver"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	Redis  RedisConfig  `yaml:"redis"`
}

// SQLiteConfig holds SQLite store settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig holds Redis store settings.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// DefaultStoreConfig returns an in-memory store configuration with backend
// defaults filled in.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Driver: constants.StoreDriverMemory,
		SQLite: SQLiteConfig{Path: constants.DefaultSQLitePath},
		Redis: RedisConfig{
			Address:   constants.DefaultRedisAddress,
			KeyPrefix: constants.DefaultRedisKeyPrefix,
		},
	}
}

// NewStore opens the store selected by cfg.Driver.
func NewStore(ctx context.Context, cfg StoreConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("opening lead store",
		zap.String("op", "lead.NewStore"),
		zap.String("driver", cfg.Driver),
	)

	switch cfg.Driver {
	case "", constants.StoreDriverMemory:
		return NewMemoryStore(), nil
	case constants.StoreDriverSQLite:
		path := cfg.SQLite.Path
		if path == "" {
			path = constants.DefaultSQLitePath
		}
		return OpenSQLite(ctx, path, logger)
	case constants.StoreDriverRedis:
		opts := RedisOptions{
			Address:   cfg.Redis.Address,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}
		if opts.Address == "" {
			opts.Address = constants.DefaultRedisAddress
		}
		if opts.KeyPrefix == "" {
			opts.KeyPrefix = constants.DefaultRedisKeyPrefix
		}
		return OpenRedis(ctx, opts, logger)
	default:
		return nil, fmt.Errorf("unknown lead store driver %q (expected %s, %s or %s)",
			cfg.Driver, constants.StoreDriverMemory, constants.StoreDriverSQLite, constants.StoreDriverRedis)
	}
}
