package usecase

import (
	"fmt"
	"log"

	"github.com/ocassia/backend/internal/domain"
)

// maxSearchQueries caps how many expanded queries a single context produces
const maxSearchQueries = 5

// QueryBuilder expands a normalized gift context into concrete retailer
// search strings
type QueryBuilder struct {
	enableDebugLogging bool
}

// NewQueryBuilder creates a new query builder
func NewQueryBuilder(enableDebugLogging bool) *QueryBuilder {
	return &QueryBuilder{
		enableDebugLogging: enableDebugLogging,
	}
}

// BuildSearchQueries turns a gift context into at most 5 search strings.
// Each interest contributes up to two representative keywords, and each
// keyword up to three query templates. Duplicate queries produced by
// overlapping keyword tables are dropped before truncation. A context with
// no interests falls back to two generic queries.
func (b *QueryBuilder) BuildSearchQueries(context domain.GiftContext) []string {
	var queries []string
	seen := make(map[string]bool)

	appendQuery := func(query string) {
		if len(queries) >= maxSearchQueries || seen[query] {
			return
		}
		queries = append(queries, query)
		seen[query] = true
	}

	for _, interest := range context.Interests {
		for _, keyword := range representativeKeywords(interest) {
			appendQuery(fmt.Sprintf("%s gift for %s", keyword, context.Relationship))
			appendQuery(fmt.Sprintf("%s %s gift", keyword, context.Occasion))
			if context.Budget > 0 {
				appendQuery(fmt.Sprintf("%s under $%.0f", keyword, context.Budget))
			}
		}
	}

	// No interest signal: fall back to generic relationship/occasion queries
	if len(queries) == 0 {
		appendQuery(fmt.Sprintf("%s gift for %s", context.Occasion, context.Relationship))
		appendQuery(fmt.Sprintf("best gift for %s", context.Relationship))
	}

	if b.enableDebugLogging {
		log.Printf("[QUERIES] Built %d queries from interests %v: %v", len(queries), context.Interests, queries)
	}

	return queries
}
