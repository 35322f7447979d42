package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Options struct {
	Backend string
	DataDir string
	Redis   *redis.Client
	DB      *gorm.DB
	// TTL applies to the redis backend only.
	TTL time.Duration
}

// Open builds the Store named by opts.Backend. Connections for the redis and
// postgres backends are dialled by the caller and passed in.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(opts.DataDir)
	case BackendRedis:
		if opts.Redis == nil {
			return nil, errors.New("redis backend needs a client")
		}
		return NewRedisStore(opts.Redis, "farmfresh:", opts.TTL), nil
	case BackendPostgres:
		if opts.DB == nil {
			return nil, errors.New("postgres backend needs a database")
		}
		return NewGormStore(opts.DB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
