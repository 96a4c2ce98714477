package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotebook/internal/catalog"
	"quotebook/internal/comments"
	"quotebook/internal/favorites"
	"quotebook/internal/middleware"
	"quotebook/internal/viewer"
)

type deps struct {
	DB           *sql.DB
	Catalog      *catalog.Catalog
	Comments     *comments.Service
	CommentStore string
	Logger       *zap.Logger
}

func newRouter(d deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(d.Logger))

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := d.DB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "ready",
			"db":            "ok",
			"books":         d.Catalog.Len(),
			"comment_store": d.CommentStore,
		})
	})

	favRepo := favorites.NewRepo(d.DB)

	api := router.Group("")
	catalog.NewHandler(d.Catalog).RegisterRoutes(api)
	viewer.NewHandler(d.Catalog, d.Comments, favRepo, d.Logger).RegisterRoutes(api)
	comments.NewHandler(d.Comments).RegisterRoutes(api)
	favorites.NewHandler(favRepo).RegisterRoutes(api)

	return router
}
