package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ocassia/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// maxCatalogResults caps how many entries a single catalog search returns
const maxCatalogResults = 5

// minSuggestions is the floor on how many gift ideas a request yields,
// even when the LLM is completely unavailable
const minSuggestions = 3

// fallbackTag is the generic catalog tag used to pad thin result sets
const fallbackTag = "gift"

// catalogTriggers map substrings in queries/interests to catalog tags.
// Ordered: accumulation follows table order, not relevance.
var catalogTriggers = []struct {
	substrings []string
	tag        string
}{
	{[]string{"makeup", "beauty", "skincare", "cosmetic"}, "makeup"},
	{[]string{"jewelry", "necklace", "bracelet", "fashion"}, "jewelry"},
	{[]string{"reading", "book", "novel"}, "reading"},
	{[]string{"gaming", "video game", "gamer"}, "gaming"},
	{[]string{"coffee", "espresso", "latte"}, "coffee"},
	{[]string{"tech", "gadget", "electronic", "camera"}, "tech"},
	{[]string{"fitness", "gym", "workout", "yoga"}, "fitness"},
	{[]string{"cooking", "kitchen", "chef", "baking"}, "cooking"},
	{[]string{"home", "decor", "candle"}, "home"},
	{[]string{"art", "drawing", "painting"}, "art"},
	{[]string{"music", "vinyl", "headphone"}, "music"},
}

// stopWords are tokens too generic to use as scoring keywords
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "is": true,
	"who": true, "that": true, "my": true, "her": true, "his": true,
	"gift": true, "gifts": true, "present": true, "idea": true,
	"ideas": true, "loves": true, "likes": true, "best": true,
	"year": true, "old": true, "under": true,
}

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	CacheTTL           time.Duration
	TopN               int
	EnableDebugLogging bool
}

// RecommendationService orchestrates the gift pipeline: intent extraction,
// query expansion, catalog lookup (or LLM synthesis), and scoring/ranking.
type RecommendationService struct {
	catalog  domain.ProductCatalog
	advisor  domain.GiftAdvisor
	cache    domain.CacheRepository
	intent   *IntentAnalyzer
	queries  *QueryBuilder
	scoring  *ScoringService
	cacheTTL time.Duration
	debug    bool
}

// NewRecommendationService creates a new recommendation service with
// dependencies
func NewRecommendationService(
	catalog domain.ProductCatalog,
	advisor domain.GiftAdvisor,
	cache domain.CacheRepository,
	config RecommendationConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Hour
	}

	return &RecommendationService{
		catalog: catalog,
		advisor: advisor,
		cache:   cache,
		intent:  NewIntentAnalyzer(config.EnableDebugLogging),
		queries: NewQueryBuilder(config.EnableDebugLogging),
		scoring: NewScoringService(ScoringConfig{
			TopN:               config.TopN,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		cacheTTL: cacheTTL,
		debug:    config.EnableDebugLogging,
	}
}

// SearchProducts looks up catalog entries matching a query and interest
// list. Every trigger that fires contributes its tag's full entry list;
// exact-ID duplicates are removed and the result is capped at 5 entries.
// No ranking happens at this stage - order follows trigger-table order.
func (s *RecommendationService) SearchProducts(ctx context.Context, query string, interests []string) ([]domain.CatalogEntry, error) {
	if strings.TrimSpace(query) == "" && len(interests) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.searchCacheKey(query, interests)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if entries, ok := cached.([]domain.CatalogEntry); ok {
			if s.debug {
				log.Printf("[CATALOG] Cache hit for %q", cacheKey)
			}
			return entries, nil
		}
	}

	haystack := strings.ToLower(query)
	for _, interest := range interests {
		haystack += " " + strings.ToLower(interest)
	}

	var entries []domain.CatalogEntry
	seen := make(map[string]bool)

	for _, trigger := range catalogTriggers {
		if !containsAny(haystack, trigger.substrings) {
			continue
		}
		for _, entry := range s.catalog.LookupByTag(trigger.tag) {
			if seen[entry.ID] {
				continue
			}
			entries = append(entries, entry)
			seen[entry.ID] = true
		}
	}

	if len(entries) > maxCatalogResults {
		entries = entries[:maxCatalogResults]
	}

	if s.debug {
		log.Printf("[CATALOG] Query %q interests %v -> %d entries", query, interests, len(entries))
	}

	if err := s.cache.Set(ctx, cacheKey, entries, s.cacheTTL); err != nil {
		log.Printf("[CATALOG] Failed to cache results for %q: %v", cacheKey, err)
	}

	return entries, nil
}

// Recommend runs the full pipeline for a free-text query: intent ->
// expanded queries -> catalog lookup union -> scored, ranked products.
func (s *RecommendationService) Recommend(ctx context.Context, query string) (domain.GiftContext, []domain.ScoredProduct, error) {
	if strings.TrimSpace(query) == "" {
		return domain.GiftContext{}, nil, domain.ErrInvalidRequest
	}

	giftContext := s.intent.AnalyzeGiftIntent(query)
	searchQueries := s.queries.BuildSearchQueries(giftContext)

	entries, err := s.collectCandidates(ctx, query, giftContext, searchQueries)
	if err != nil {
		return giftContext, nil, err
	}

	keywords := scoringKeywords(query, giftContext)
	ranked := s.scoring.Rank(entries, giftContext, keywords)

	if s.debug {
		log.Printf("[RECOMMEND] %q -> %d queries, %d candidates, %d ranked",
			query, len(searchQueries), len(entries), len(ranked))
	}

	return giftContext, ranked, nil
}

// collectCandidates unions catalog lookups for the raw query and every
// expanded query. Each lookup is individually capped at 5 entries; the
// union is deduped by ID, so an expanded query can only widen the
// candidate set, never repeat it.
func (s *RecommendationService) collectCandidates(ctx context.Context, query string, giftContext domain.GiftContext, searchQueries []string) ([]domain.CatalogEntry, error) {
	entries, err := s.SearchProducts(ctx, query, giftContext.Interests)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		seen[entry.ID] = true
	}

	for _, searchQuery := range searchQueries {
		more, err := s.SearchProducts(ctx, searchQuery, nil)
		if err != nil {
			continue
		}
		for _, entry := range more {
			if seen[entry.ID] {
				continue
			}
			entries = append(entries, entry)
			seen[entry.ID] = true
		}
	}

	return entries, nil
}

// GenerateGiftIdeas asks the LLM for gift suggestions and falls back to the
// static catalog on any failure. The caller always receives at least 3
// suggestions - external API failures are logged, never surfaced.
func (s *RecommendationService) GenerateGiftIdeas(ctx context.Context, req *domain.GiftRequest) ([]domain.GiftSuggestion, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}

	if s.advisor != nil {
		suggestions, err := s.advisor.GenerateSuggestions(ctx, req)
		if err == nil && len(suggestions) > 0 {
			return suggestions, nil
		}
		if err != nil {
			log.Printf("[RECOMMEND] LLM synthesis failed, using catalog fallback: %v", err)
		}
	}

	return s.fallbackSuggestions(ctx, req), nil
}

// fallbackSuggestions builds suggestions from the static catalog when the
// LLM is unavailable: one pass per interest, padded from the generic "gift"
// tag until the minimum count is reached.
func (s *RecommendationService) fallbackSuggestions(ctx context.Context, req *domain.GiftRequest) []domain.GiftSuggestion {
	var suggestions []domain.GiftSuggestion
	seen := make(map[string]bool)

	appendEntry := func(entry domain.CatalogEntry) {
		if len(suggestions) >= minSuggestions || seen[entry.ID] {
			return
		}
		suggestions = append(suggestions, entryToSuggestion(entry, req))
		seen[entry.ID] = true
	}

	for _, interest := range req.Interests {
		entries, err := s.SearchProducts(ctx, interest, nil)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			appendEntry(entry)
		}
	}

	// Pad with generic gifts so the user never sees an empty list
	if len(suggestions) < minSuggestions {
		for _, entry := range s.catalog.LookupByTag(fallbackTag) {
			appendEntry(entry)
		}
	}

	return suggestions
}

// entryToSuggestion converts a catalog entry into a gift suggestion
func entryToSuggestion(entry domain.CatalogEntry, req *domain.GiftRequest) domain.GiftSuggestion {
	reasoning := fmt.Sprintf("A well-reviewed %s pick", entry.Category)
	if req.Relationship != "" {
		reasoning = fmt.Sprintf("A well-reviewed %s pick for your %s", entry.Category, req.Relationship)
	}

	return domain.GiftSuggestion{
		ID:             "catalog-" + uuid.NewString(),
		Title:          entry.Title,
		Description:    entry.Description,
		Category:       entry.Category,
		EstimatedPrice: entry.Price,
		Reasoning:      reasoning,
		SearchTerm:     strings.ToLower(entry.Category) + " gift",
		Source:         "catalog",
	}
}

// searchCacheKey builds a normalized cache key from query and interests.
// Format: "products:{normalized_query}:{normalized_interests}"
func (s *RecommendationService) searchCacheKey(query string, interests []string) string {
	normalized := normalizeForCacheKey(query)
	joined := normalizeForCacheKey(strings.Join(interests, " "))
	return fmt.Sprintf("products:%s:%s", normalized, joined)
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// scoringKeywords derives the keyword list used for relevance scoring:
// representative keywords per interest plus significant query tokens.
func scoringKeywords(query string, context domain.GiftContext) []string {
	var keywords []string
	seen := make(map[string]bool)

	appendKeyword := func(keyword string) {
		if keyword == "" || seen[keyword] {
			return
		}
		keywords = append(keywords, keyword)
		seen[keyword] = true
	}

	for _, interest := range context.Interests {
		for _, keyword := range representativeKeywords(interest) {
			appendKeyword(keyword)
		}
	}

	for _, token := range tokenize(query) {
		appendKeyword(token)
	}

	return keywords
}

// tokenize splits a string into normalized lowercase tokens, dropping
// punctuation, stop words, short tokens, and pure numbers.
func tokenize(s string) []string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " ")
	words := strings.Fields(cleaned)

	var tokens []string
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		if stopWords[word] {
			continue
		}
		if isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// containsAny checks if s contains any of the given substrings
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
