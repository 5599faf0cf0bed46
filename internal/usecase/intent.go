package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/ocassia/backend/internal/domain"
)

// Compiled regex patterns for intent extraction
var (
	// Matches explicit ages like "13 year old", "13-year-old", "13 years"
	agePattern = regexp.MustCompile(`\b(\d{1,3})\s*[- ]?\s*year`)

	// Matches budget hints like "under $50", "less than 30", "budget of $100"
	budgetPattern = regexp.MustCompile(`(?:under|below|less than|budget of|around|max)\s*\$?(\d+(?:\.\d{1,2})?)`)
)

// relationshipKeywords maps query tokens to a normalized relationship.
// Ordered: the first match wins, so more specific terms come first.
var relationshipKeywords = []struct {
	keyword      string
	relationship string
}{
	{"granddaughter", "granddaughter"},
	{"grandson", "grandson"},
	{"grandmother", "grandma"},
	{"grandma", "grandma"},
	{"grandfather", "grandpa"},
	{"grandpa", "grandpa"},
	{"girlfriend", "girlfriend"},
	{"boyfriend", "boyfriend"},
	{"nephew", "nephew"},
	{"niece", "niece"},
	{"daughter", "daughter"},
	{"son", "son"},
	{"mother", "mom"},
	{"mom", "mom"},
	{"father", "dad"},
	{"dad", "dad"},
	{"wife", "wife"},
	{"husband", "husband"},
	{"sister", "sister"},
	{"brother", "brother"},
	{"aunt", "aunt"},
	{"uncle", "uncle"},
	{"cousin", "cousin"},
	{"coworker", "coworker"},
	{"colleague", "coworker"},
	{"boss", "boss"},
	{"teacher", "teacher"},
	{"friend", "friend"},
}

// occasionKeywords maps query tokens to a normalized occasion.
// Ordered: the first match wins.
var occasionKeywords = []struct {
	keyword  string
	occasion string
}{
	{"christmas", "christmas"},
	{"hanukkah", "hanukkah"},
	{"anniversary", "anniversary"},
	{"wedding", "wedding"},
	{"graduation", "graduation"},
	{"valentine", "valentine's day"},
	{"mother's day", "mother's day"},
	{"mothers day", "mother's day"},
	{"father's day", "father's day"},
	{"fathers day", "father's day"},
	{"housewarming", "housewarming"},
	{"baby shower", "baby shower"},
	{"retirement", "retirement"},
	{"birthday", "birthday"},
}

// interestCategories maps each gift category to the query keywords that
// signal it. Ordered so extracted interests are deterministic. Unlike
// relationship/occasion, every matching category is collected.
var interestCategories = []struct {
	name     string
	keywords []string
}{
	{"gaming", []string{"gaming", "video game", "gamer", "playstation", "xbox", "nintendo"}},
	{"beauty", []string{"makeup", "beauty", "skincare", "cosmetics"}},
	{"fitness", []string{"fitness", "gym", "workout", "yoga", "running"}},
	{"tech", []string{"tech", "gadget", "electronics", "computer", "camera"}},
	{"cooking", []string{"cooking", "chef", "kitchen", "baking"}},
	{"reading", []string{"reading", "book", "novel", "literature"}},
	{"art", []string{"art", "drawing", "painting", "craft"}},
	{"music", []string{"music", "guitar", "vinyl", "headphones"}},
	{"fashion", []string{"fashion", "clothes", "style", "jewelry"}},
	{"home", []string{"home", "decor", "garden", "plants"}},
	{"coffee", []string{"coffee", "espresso", "latte"}},
}

// ageBuckets are coarse age hints used only for age inference when no
// numeric age is present. They must never leak into the interest set.
var ageBuckets = []struct {
	keyword string
	age     int
}{
	{"toddler", 3},
	{"child", 8},
	{"kid", 8},
	{"teenager", 15},
	{"teen", 15},
	{"adult", 30},
}

// IntentAnalyzer extracts a normalized gift context from free text
type IntentAnalyzer struct {
	enableDebugLogging bool
}

// NewIntentAnalyzer creates a new intent analyzer
func NewIntentAnalyzer(enableDebugLogging bool) *IntentAnalyzer {
	return &IntentAnalyzer{
		enableDebugLogging: enableDebugLogging,
	}
}

// AnalyzeGiftIntent parses a free-text gift query into a GiftContext.
// Absence of any signal degrades to defaults (relationship "friend",
// occasion "birthday", no interests) rather than failing.
func (a *IntentAnalyzer) AnalyzeGiftIntent(query string) domain.GiftContext {
	lowered := strings.ToLower(query)

	context := domain.GiftContext{
		Relationship: extractRelationship(lowered),
		Age:          extractAge(lowered),
		Occasion:     extractOccasion(lowered),
		Interests:    extractInterests(lowered),
		Budget:       extractBudget(lowered),
	}

	if a.enableDebugLogging {
		log.Printf("[INTENT] Query: %q -> relationship=%s age=%d occasion=%s interests=%v budget=%.0f",
			query, context.Relationship, context.Age, context.Occasion, context.Interests, context.Budget)
	}

	return context
}

// extractRelationship returns the first matching relationship keyword,
// defaulting to "friend"
func extractRelationship(lowered string) string {
	for _, entry := range relationshipKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.relationship
		}
	}
	return "friend"
}

// extractAge pulls a numeric age ("13 year old") or falls back to a coarse
// age-bucket hint. Returns 0 when no signal is present.
func extractAge(lowered string) int {
	if match := agePattern.FindStringSubmatch(lowered); match != nil {
		age, err := strconv.Atoi(match[1])
		if err == nil && age > 0 && age < 120 {
			return age
		}
	}

	for _, bucket := range ageBuckets {
		if strings.Contains(lowered, bucket.keyword) {
			return bucket.age
		}
	}

	return 0
}

// extractOccasion returns the first matching occasion keyword,
// defaulting to "birthday"
func extractOccasion(lowered string) string {
	for _, entry := range occasionKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.occasion
		}
	}
	return "birthday"
}

// extractInterests collects every category whose keywords appear in the
// query, in table order. Age-bucket tokens are filtered out so hints like
// "teen" never show up as interests.
func extractInterests(lowered string) []string {
	var interests []string
	seen := make(map[string]bool)

	for _, category := range interestCategories {
		if seen[category.name] {
			continue
		}
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				interests = append(interests, category.name)
				seen[category.name] = true
				break
			}
		}
	}

	return filterAgeBuckets(interests)
}

// filterAgeBuckets removes age-bucket tokens from an interest list
func filterAgeBuckets(interests []string) []string {
	var filtered []string
	for _, interest := range interests {
		if isAgeBucket(interest) {
			continue
		}
		filtered = append(filtered, interest)
	}
	return filtered
}

// isAgeBucket checks whether a token is an age hint rather than an interest
func isAgeBucket(token string) bool {
	for _, bucket := range ageBuckets {
		if bucket.keyword == token {
			return true
		}
	}
	return false
}

// extractBudget pulls a dollar budget hint. Returns 0 when absent.
func extractBudget(lowered string) float64 {
	if match := budgetPattern.FindStringSubmatch(lowered); match != nil {
		budget, err := strconv.ParseFloat(match[1], 64)
		if err == nil && budget > 0 {
			return budget
		}
	}
	return 0
}

// representativeKeywords returns up to two search keywords for a category,
// used by query expansion. Unknown categories fall back to the category
// name itself.
func representativeKeywords(category string) []string {
	for _, entry := range interestCategories {
		if entry.name == category {
			if len(entry.keywords) >= 2 {
				return entry.keywords[:2]
			}
			return entry.keywords
		}
	}
	return []string{category}
}
