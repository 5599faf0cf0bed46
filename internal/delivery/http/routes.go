package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ocassia/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		search := api.Group("/search")
		{
			search.GET("/products", handler.SearchProducts)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/gift-recommendations", handler.GiftRecommendations)
			ai.POST("/chat-recommendations", handler.ChatRecommendations)
		}
	}

	return router
}
