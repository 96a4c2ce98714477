package comments

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Open builds the Store named by backend. The returned close function
// releases backend resources and is never nil.
func Open(ctx context.Context, backend string, db *sql.DB, redisCfg RedisConfig, logger *zap.Logger) (Store, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		if db == nil {
			return nil, noop, fmt.Errorf("sqlite comment store needs a database")
		}
		return NewSQLiteStore(db), noop, nil
	case BackendRedis:
		rs, err := NewRedisStore(ctx, redisCfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return rs, rs.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown comment store %q", backend)
	}
}
