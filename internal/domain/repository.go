package domain

import (
	"context"
	"time"
)

// ProductCatalog defines the interface for read-only product lookup.
// The static in-memory catalog implements this; a real affiliate API
// client could be substituted without touching scoring/ranking logic.
type ProductCatalog interface {
	LookupByTag(tag string) []CatalogEntry
	Tags() []string
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// GiftAdvisor defines the interface for LLM-backed gift synthesis
type GiftAdvisor interface {
	GenerateSuggestions(ctx context.Context, req *GiftRequest) ([]GiftSuggestion, error)
}
