package usecase

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/ocassia/backend/internal/domain"
)

// ScoreWeights holds the contribution of each scoring factor on the
// canonical 0-100 scale. Injectable so the ranking behavior can be tuned
// without touching the scoring logic.
type ScoreWeights struct {
	CategoryMatch      float64 // recipient interest matches entry category
	TitleKeyword       float64 // per keyword found in the title
	TitleKeywordCap    float64 // max total title contribution
	DescKeyword        float64 // per keyword found in the description
	DescKeywordCap     float64 // max total description contribution
	PopularCategory    float64 // boost for high-converting categories
	ComboBoost         float64 // special-case title combinations
	BudgetFit          float64 // price within budget
	BudgetNearFit      float64 // price within 20% over budget
	BudgetPenalty      float64 // price beyond 20% over budget (subtracted)
	AgeFitChild        float64 // recipient under 18
	AgeFitYoungAdult   float64 // recipient under 30
	AgeFitAdult        float64 // recipient under 50
	AgeFitSenior       float64 // recipient 50 and over
	Floor              float64 // minimum score shown to users
	Ceiling            float64 // maximum score
}

// DefaultScoreWeights returns the standard weight table
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		CategoryMatch:    40,
		TitleKeyword:     15,
		TitleKeywordCap:  30,
		DescKeyword:      10,
		DescKeywordCap:   20,
		PopularCategory:  10,
		ComboBoost:       20,
		BudgetFit:        20,
		BudgetNearFit:    10,
		BudgetPenalty:    10,
		AgeFitChild:      10,
		AgeFitYoungAdult: 8,
		AgeFitAdult:      6,
		AgeFitSenior:     4,
		Floor:            25,
		Ceiling:          100,
	}
}

// popularCategories are categories that historically convert well and get
// a flat boost
var popularCategories = map[string]bool{
	"tech":   true,
	"gaming": true,
}

// ScoringConfig holds configuration for the scoring service
type ScoringConfig struct {
	Weights            *ScoreWeights
	TopN               int
	EnableDebugLogging bool
}

// ScoringService assigns relevance scores to candidate products and ranks
// them for display
type ScoringService struct {
	weights            ScoreWeights
	topN               int
	enableDebugLogging bool
}

// NewScoringService creates a new scoring service with the given configuration
func NewScoringService(config ScoringConfig) *ScoringService {
	weights := DefaultScoreWeights()
	if config.Weights != nil {
		weights = *config.Weights
	}

	topN := config.TopN
	if topN <= 0 {
		topN = 8
	}

	return &ScoringService{
		weights:            weights,
		topN:               topN,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Score computes the relevance of a single catalog entry against a gift
// context and search keywords. The result is always within [Floor, Ceiling]
// so no candidate is ever shown as a zero-percent match.
func (s *ScoringService) Score(entry domain.CatalogEntry, context domain.GiftContext, keywords []string) (float64, string) {
	score := 0.0
	reason := "Popular gift choice"
	dominant := 0.0

	titleLower := strings.ToLower(entry.Title)
	descLower := strings.ToLower(entry.Description)
	categoryLower := strings.ToLower(entry.Category)

	// Interest/category match is the strongest signal
	for _, interest := range context.Interests {
		if strings.EqualFold(interest, entry.Category) {
			score += s.weights.CategoryMatch
			if s.weights.CategoryMatch > dominant {
				dominant = s.weights.CategoryMatch
				reason = "Matches their " + interest + " interests"
			}
			break
		}
	}

	// Keyword overlap with title and description, each capped
	titleContribution := 0.0
	descContribution := 0.0
	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		if strings.Contains(titleLower, keywordLower) {
			titleContribution += s.weights.TitleKeyword
		}
		if strings.Contains(descLower, keywordLower) {
			descContribution += s.weights.DescKeyword
		}
	}
	if titleContribution > s.weights.TitleKeywordCap {
		titleContribution = s.weights.TitleKeywordCap
	}
	if descContribution > s.weights.DescKeywordCap {
		descContribution = s.weights.DescKeywordCap
	}
	score += titleContribution + descContribution
	if titleContribution > dominant {
		dominant = titleContribution
		reason = "Closely matches your search"
	}

	// Flat boost for high-converting categories
	if popularCategories[categoryLower] {
		score += s.weights.PopularCategory
	}

	// Age-band fit, only when the recipient age is known
	if context.Age > 0 {
		score += s.ageFit(context.Age)
	}

	// Budget fit against the display price
	if context.Budget > 0 {
		if price, ok := parsePrice(entry.Price); ok {
			switch {
			case price <= context.Budget:
				score += s.weights.BudgetFit
			case price <= context.Budget*1.2:
				score += s.weights.BudgetNearFit
			default:
				score -= s.weights.BudgetPenalty
			}
		}
	}

	// Special-case combination: camera bags score well for travel photographers
	if strings.Contains(titleLower, "camera") &&
		(strings.Contains(titleLower, "backpack") || strings.Contains(titleLower, "bag")) {
		score += s.weights.ComboBoost
		reason = "Perfect for photographers on the go"
	}

	if score < s.weights.Floor {
		score = s.weights.Floor
	}
	if score > s.weights.Ceiling {
		score = s.weights.Ceiling
	}

	if s.enableDebugLogging {
		log.Printf("[SCORE] %q -> %.1f (%s)", entry.Title, score, reason)
	}

	return score, reason
}

// ageFit returns the flat age-band bonus for a known recipient age
func (s *ScoringService) ageFit(age int) float64 {
	switch {
	case age < 18:
		return s.weights.AgeFitChild
	case age < 30:
		return s.weights.AgeFitYoungAdult
	case age < 50:
		return s.weights.AgeFitAdult
	default:
		return s.weights.AgeFitSenior
	}
}

// Rank scores every candidate and returns the top-N in stable descending
// order. Ties keep their original insertion order.
func (s *ScoringService) Rank(entries []domain.CatalogEntry, context domain.GiftContext, keywords []string) []domain.ScoredProduct {
	scored := make([]domain.ScoredProduct, 0, len(entries))
	for _, entry := range entries {
		score, reason := s.Score(entry, context, keywords)
		scored = append(scored, domain.ScoredProduct{
			CatalogEntry:   entry,
			RelevanceScore: score,
			MatchReason:    reason,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if len(scored) > s.topN {
		scored = scored[:s.topN]
	}

	return scored
}

// parsePrice extracts a numeric amount from a display price like "$24.99"
func parsePrice(display string) (float64, bool) {
	cleaned := strings.TrimSpace(display)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}
