package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotebook/internal/catalog"
	"quotebook/internal/comments"
	"quotebook/pkg/database"
	"quotebook/pkg/utils"
)

func main() {
	cfg := utils.Load()

	logger, closeLogger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer closeLogger()

	dbCfg := database.DefaultConfig()
	db, err := database.OpenAndMigrate(dbCfg)
	if err != nil {
		logger.Fatal("database open failed", zap.String("path", dbCfg.Path), zap.Error(err))
	}
	defer db.Close()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("books", cat.Len()), zap.Strings("categories", cat.Categories()))

	ctx := context.Background()
	store, closeStore, err := comments.Open(ctx, cfg.CommentStore, db, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("comment store open failed", zap.String("backend", cfg.CommentStore), zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(deps{
		DB:           db,
		Catalog:      cat,
		Comments:     comments.NewService(store, logger),
		CommentStore: cfg.CommentStore,
		Logger:       logger,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API server listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", dbCfg.Path))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
