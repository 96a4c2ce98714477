package viewer

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotebook/pkg/models"
)

// CommentReader supplies saved comment drafts keyed by quote id.
type CommentReader interface {
	All(ctx context.Context) (map[string]string, error)
}

// FavoriteReader supplies the set of favorite quote ids.
type FavoriteReader interface {
	IDs(ctx context.Context) (map[string]bool, error)
}

type Handler struct {
	Resolver  Resolver
	Comments  CommentReader
	Favorites FavoriteReader
	Logger    *zap.Logger
}

func NewHandler(r Resolver, comments CommentReader, favorites FavoriteReader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Resolver: r, Comments: comments, Favorites: favorites, Logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/book/*book_id", h.show) // GET /book/courage-disliked?category=freedom
}

type quoteItem struct {
	models.Quote
	Comment  string `json:"comment"`
	Favorite bool   `json:"favorite"`
}

func (h *Handler) show(c *gin.Context) {
	token := strings.Trim(c.Param("book_id"), "/")

	v := Open(h.Resolver, token)
	if v.Failed() {
		h.Logger.Warn("book view failed", zap.String("book_id", token), zap.Error(v.Err))
		c.JSON(statusFor(v.Kind()), gin.H{
			"id":         token,
			"title":      v.Title,
			"error":      v.Err.Error(),
			"categories": v.Categories,
			"quotes":     []quoteItem{},
		})
		return
	}

	if category := c.Query("category"); category != "" {
		v.ToggleCategory(category)
	}

	ctx := c.Request.Context()
	drafts := map[string]string{}
	if h.Comments != nil {
		all, err := h.Comments.All(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load comments failed"})
			return
		}
		drafts = all
	}
	favs := map[string]bool{}
	if h.Favorites != nil {
		ids, err := h.Favorites.IDs(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load favorites failed"})
			return
		}
		favs = ids
	}

	visible := v.Visible()
	items := make([]quoteItem, 0, len(visible))
	for _, q := range visible {
		items = append(items, quoteItem{Quote: q, Comment: drafts[q.ID], Favorite: favs[q.ID]})
	}

	var selected any
	if cat, ok := v.Filter.Category(); ok {
		selected = cat
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                token,
		"book":              v.Book,
		"title":             v.Title,
		"categories":        v.Categories,
		"selected_category": selected,
		"total":             len(v.Quotes),
		"quotes":            items,
	})
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case ErrorNotFound:
		return http.StatusNotFound
	case ErrorAmbiguous:
		return http.StatusConflict
	case ErrorMalformed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
