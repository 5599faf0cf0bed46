package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ocassia/backend/config"
	httpDelivery "github.com/ocassia/backend/internal/delivery/http"
	"github.com/ocassia/backend/internal/infrastructure/affiliate"
	"github.com/ocassia/backend/internal/infrastructure/cache"
	"github.com/ocassia/backend/internal/infrastructure/catalog"
	"github.com/ocassia/backend/internal/infrastructure/openai"
	"github.com/ocassia/backend/internal/usecase"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Ocassia Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	links := affiliate.NewLinkBuilder(affiliate.Config{
		AmazonAssociateID:  cfg.Affiliate.AmazonAssociateID,
		OpenTablePartnerID: cfg.Affiliate.OpenTablePartnerID,
		ExpediaPartnerID:   cfg.Affiliate.ExpediaPartnerID,
	})

	productCatalog := catalog.NewStaticCatalog(links)
	log.Printf("Catalog loaded: %d tags", len(productCatalog.Tags()))

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		openaiClient.SetDebug(true)
		log.Printf("OpenAI client debug mode enabled")
	}

	if cfg.OpenAI.APIKey != "" {
		log.Printf("OpenAI API configured: %s (model: %s)", cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	} else {
		log.Printf("WARNING: OpenAI API key not configured - gift ideas will come from the static catalog only")
	}

	// Initialize usecase layer
	recommender := usecase.NewRecommendationService(
		productCatalog,
		openaiClient,
		memoryCache,
		usecase.RecommendationConfig{
			CacheTTL:           cfg.Cache.TTL,
			TopN:               cfg.Search.TopN,
			EnableDebugLogging: cfg.Search.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommender)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
