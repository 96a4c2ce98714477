package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"quotebook/internal/comments"
	"quotebook/pkg/database"
	"quotebook/pkg/utils"
)

func main() {
	out := flag.String("out", "data/comments.csv", "output CSV path for comments")
	flag.Parse()

	cfg := utils.Load()
	logger, closeLogger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer closeLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.OpenAndMigrate(database.DefaultConfig())
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	defer db.Close()

	store, closeStore, err := comments.Open(ctx, cfg.CommentStore, db, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("comment store open failed", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	n, err := exportComments(ctx, comments.NewService(store, logger), *out)
	if err != nil {
		logger.Fatal("export comments failed", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("exported comments", zap.Int("count", n), zap.String("path", *out))
}

func exportComments(ctx context.Context, svc *comments.Service, outPath string) (int, error) {
	all, err := svc.All(ctx)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := comments.WriteCSV(f, all); err != nil {
		return 0, err
	}
	return len(all), f.Close()
}
