package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocassia/backend/internal/domain"
	"github.com/ocassia/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender *usecase.RecommendationService) *Handler {
	return &Handler{
		recommender: recommender,
	}
}

// chatRequest is the inbound body for chat-style recommendations
type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ocassia-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles product search requests.
// GET /api/search/products?query=<free text>
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter is required",
		})
		return
	}

	_, products, err := h.recommender.Recommend(c.Request.Context(), query)
	if err != nil {
		h.pipelineError(c, err)
		return
	}

	// An empty list is a valid response, not an error
	if products == nil {
		products = []domain.ScoredProduct{}
	}

	c.JSON(http.StatusOK, products)
}

// GiftRecommendations handles structured gift recommendation requests.
// POST /api/ai/gift-recommendations
func (h *Handler) GiftRecommendations(c *gin.Context) {
	var req domain.GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	suggestions, err := h.recommender.GenerateGiftIdeas(c.Request.Context(), &req)
	if err != nil {
		h.pipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"suggestions": suggestions,
	})
}

// ChatRecommendations handles free-text gift queries.
// POST /api/ai/chat-recommendations
func (h *Handler) ChatRecommendations(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "message field is required",
			"details": err.Error(),
		})
		return
	}

	giftContext, products, err := h.recommender.Recommend(c.Request.Context(), req.Message)
	if err != nil {
		h.pipelineError(c, err)
		return
	}

	if products == nil {
		products = []domain.ScoredProduct{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"context":     giftContext,
		"suggestions": products,
	})
}

// pipelineError converts pipeline errors into HTTP responses: invalid
// input maps to 400, everything else to a generic 500 with the underlying
// error string for diagnostics.
func (h *Handler) pipelineError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "recommendation pipeline failed",
		"details": err.Error(),
	})
}
