package config

import (
	"context"
	"fmt"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backends holds the connections opened for the configured storage backend.
// Redis is also opened when rate limiting is on, since the limiter counts in
// Redis.
type Backends struct {
	Store storage.Store
	Redis *redis.Client

	closers []func()
}

func (b *Backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// OpenBackends dials what cfg needs and opens the session store on top.
func OpenBackends(ctx context.Context, cfg Config, logger *zap.Logger) (*Backends, error) {
	b := &Backends{}
	opts := storage.Options{
		Backend: cfg.StorageBackend,
		DataDir: cfg.DataDir,
		TTL:     cfg.SessionTTL,
	}

	if cfg.StorageBackend == storage.BackendRedis || cfg.RateLimitEnabled {
		client, err := ConnectRedis(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		b.Redis = client
		b.closers = append(b.closers, func() { _ = client.Close() })
		opts.Redis = client
	}

	if cfg.StorageBackend == storage.BackendPostgres {
		db, err := OpenDatabase(cfg.DatabaseURL, cfg.AppEnv, logger)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, func() { CloseDB(db, logger) })
		opts.DB = db
	}

	store, err := storage.Open(opts)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StorageBackend, err)
	}
	b.Store = store
	return b, nil
}
