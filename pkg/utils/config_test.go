package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"quotebook/internal/comments"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"QUOTEBOOK_HTTP_ADDR", "QUOTEBOOK_COMMENT_STORE", "QUOTEBOOK_REDIS_ADDR",
		"QUOTEBOOK_REDIS_DB", "QUOTEBOOK_LOG_LEVEL", "QUOTEBOOK_API_URL",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "sqlite", cfg.CommentStore)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 0, cfg.Redis.DB)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "http://localhost:8080", cfg.APIURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QUOTEBOOK_HTTP_ADDR", ":9090")
	t.Setenv("QUOTEBOOK_COMMENT_STORE", "Redis")
	t.Setenv("QUOTEBOOK_REDIS_ADDR", "cache:6379")
	t.Setenv("QUOTEBOOK_REDIS_PASSWORD", "secret")
	t.Setenv("QUOTEBOOK_REDIS_DB", "3")
	t.Setenv("QUOTEBOOK_API_URL", "http://example.test/")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "redis", cfg.CommentStore)
	require.Equal(t, comments.RedisConfig{Addr: "cache:6379", Password: "secret", DB: 3}, cfg.Redis)
	require.Equal(t, "http://example.test", cfg.APIURL)

	t.Setenv("QUOTEBOOK_REDIS_DB", "three")
	require.Equal(t, 0, Load().Redis.DB)
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	require.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	require.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))

	var buf bytes.Buffer
	logger := newLogger(zapcore.WarnLevel, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "WARN | ")
}

func TestNewLoggerToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "qb.log")
	logger, closeLogger, err := NewLogger("info", path)
	require.NoError(t, err)
	logger.Info("hello")
	closeLogger()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "INFO | ")
	require.Contains(t, string(b), "hello")
}

func TestNewLoggerStdout(t *testing.T) {
	t.Parallel()

	logger, closeLogger, err := NewLogger("debug", "")
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NotNil(t, closeLogger)
}
