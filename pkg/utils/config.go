package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"quotebook/internal/comments"
)

type Config struct {
	HTTPAddr     string
	CommentStore string // sqlite | redis | memory
	Redis        comments.RedisConfig
	Logging      LoggingConfig
	APIURL       string
}

type LoggingConfig struct {
	Level string
	File  string
}

// Load reads configuration from the environment, after applying a .env file
// in the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getEnv("QUOTEBOOK_HTTP_ADDR", ":8080"),
		CommentStore: strings.ToLower(getEnv("QUOTEBOOK_COMMENT_STORE", "sqlite")),
		Redis: comments.RedisConfig{
			Addr:     getEnv("QUOTEBOOK_REDIS_ADDR", "localhost:6379"),
			Password: getEnv("QUOTEBOOK_REDIS_PASSWORD", ""),
			DB:       getEnvInt("QUOTEBOOK_REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level: getEnv("QUOTEBOOK_LOG_LEVEL", "info"),
			File:  getEnv("QUOTEBOOK_LOG_FILE", ""),
		},
		APIURL: strings.TrimRight(getEnv("QUOTEBOOK_API_URL", "http://localhost:8080"), "/"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
