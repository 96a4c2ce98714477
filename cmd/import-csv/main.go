package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"quotebook/internal/comments"
	"quotebook/pkg/database"
	"quotebook/pkg/utils"
)

func main() {
	in := flag.String("in", "data/comments.csv", "input CSV path for comments")
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

	n, err := importComments(ctx, comments.NewService(store, logger), *in)
	if err != nil {
		logger.Fatal("import comments failed", zap.String("path", *in), zap.Error(err))
	}
	logger.Info("imported comments", zap.Int("count", n), zap.String("path", *in))
}

func importComments(ctx context.Context, svc *comments.Service, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := comments.ReadCSV(f)
	if err != nil {
		return 0, err
	}
	return svc.Merge(ctx, rows)
}
