package comments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "quotebook:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps the mapping as a JSON string under quotebook:comments.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}

	logger.Info("Redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return &RedisStore{client: client, key: redisKeyPrefix + StorageKey, logger: logger}, nil
}

func (s *RedisStore) GetAll(ctx context.Context) (map[string]string, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	}
	if err != nil {
		s.logger.Error("Comment store get failed", zap.String("key", s.key), zap.Error(err))
		return nil, fmt.Errorf("get comments: %w", err)
	}

	out := map[string]string{}
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	if out == nil {
		out = map[string]string{}
	}
	return out, nil
}

func (s *RedisStore) SetAll(ctx context.Context, all map[string]string) error {
	if all == nil {
		all = map[string]string{}
	}
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		s.logger.Error("Comment store set failed", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("set comments: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
