package comments

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/comments", h.list)
	rg.GET("/comments/:quote_id", h.get)
	rg.PUT("/comments/:quote_id", h.save)
}

type saveReq struct {
	Text string `json:"text"`
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Service.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(all), "items": all})
}

func (h *Handler) get(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote_id required"})
		return
	}

	text, err := h.Service.Get(c.Request.Context(), quoteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote_id": quoteID, "text": text})
}

func (h *Handler) save(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote_id required"})
		return
	}

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	text, err := h.Service.Save(c.Request.Context(), quoteID, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote_id": quoteID, "text": text})
}
