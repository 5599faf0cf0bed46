package domain

// GiftContext is the normalized form of a free-text gift query.
// Built fresh per request, never persisted.
type GiftContext struct {
	Relationship string   `json:"relationship"`
	Age          int      `json:"age,omitempty"` // 0 means unknown
	Occasion     string   `json:"occasion"`
	Interests    []string `json:"interests"`
	Budget       float64  `json:"budget,omitempty"` // 0 means unknown
}

// CatalogEntry is a static mock product record standing in for a real
// affiliate product feed. Entries are loaded at startup and never mutated.
type CatalogEntry struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           string  `json:"price"` // display-formatted, e.g. "$24.99"
	ImageURL        string  `json:"imageUrl"`
	Rating          float64 `json:"rating"` // 0-5
	ReviewCount     int     `json:"reviewCount"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	IsPrimeEligible bool    `json:"isPrimeEligible"`
	AffiliateLink   string  `json:"affiliateLink"`
}

// ScoredProduct is a catalog entry augmented with a relevance score.
// Created per request, discarded after the response is sent.
type ScoredProduct struct {
	CatalogEntry
	RelevanceScore float64 `json:"relevanceScore"` // 25-100
	MatchReason    string  `json:"matchReason,omitempty"`
}

// GiftSuggestion is a single gift idea, either synthesized by the LLM
// or assembled from the static catalog as a fallback.
type GiftSuggestion struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	EstimatedPrice string `json:"estimatedPrice"`
	Reasoning      string `json:"reasoning,omitempty"`
	SearchTerm     string `json:"searchTerm"`
	Source         string `json:"source"` // "ai" or "catalog"
}

// GiftRequest is the inbound shape for gift recommendation requests
type GiftRequest struct {
	Recipient    string   `json:"recipient"`
	Relationship string   `json:"relationship"`
	Occasion     string   `json:"occasion"`
	Age          int      `json:"age,omitempty"`
	Interests    []string `json:"interests"`
	Budget       float64  `json:"budget,omitempty"`
}
