package favorites

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.list)
	rg.PUT("/favorites/:quote_id", h.add)
	rg.DELETE("/favorites/:quote_id", h.remove)
}

type addReq struct {
	BookID string `json:"book_id"`
}

func (h *Handler) add(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote_id required"})
		return
	}

	// body is optional
	var req addReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
	}

	if err := h.Repo.Add(c.Request.Context(), quoteID, strings.TrimSpace(req.BookID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), quoteID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) remove(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote_id required"})
		return
	}

	ok, err := h.Repo.Remove(c.Request.Context(), quoteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) list(c *gin.Context) {
	bookID := strings.TrimSpace(c.Query("book_id"))
	items, err := h.Repo.List(c.Request.Context(), bookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}
