package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{Catalog: c}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.list) // GET /books?category=dance
}

func (h *Handler) list(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = AllCategories
	}

	items := h.Catalog.ListBooks(category)
	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"categories": h.Catalog.Categories(),
		"total":      len(items),
		"items":      items,
	})
}
