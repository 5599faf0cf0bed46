// Package affiliate builds partner-decorated outbound links. All builders
// are pure functions over configured partner IDs - no network calls are
// made to any affiliate program.
package affiliate

import (
	"fmt"
	"net/url"
	"strings"
)

// Config holds the partner IDs for each affiliate program
type Config struct {
	AmazonAssociateID  string
	OpenTablePartnerID string
	ExpediaPartnerID   string
}

// LinkBuilder produces tracking-decorated URLs for supported partners
type LinkBuilder struct {
	amazonTag    string
	openTableRef string
	expediaID    string
}

// NewLinkBuilder creates a link builder from affiliate configuration
func NewLinkBuilder(config Config) *LinkBuilder {
	return &LinkBuilder{
		amazonTag:    config.AmazonAssociateID,
		openTableRef: config.OpenTablePartnerID,
		expediaID:    config.ExpediaPartnerID,
	}
}

// AmazonProductLink builds an ASIN-style product URL with the associate tag
func (b *LinkBuilder) AmazonProductLink(asin string) string {
	return fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s", asin, url.QueryEscape(b.amazonTag))
}

// AmazonSearchLink builds an Amazon search URL for a free-text query
func (b *LinkBuilder) AmazonSearchLink(query string) string {
	params := url.Values{}
	params.Add("k", query)
	params.Add("tag", b.amazonTag)
	return fmt.Sprintf("https://www.amazon.com/s?%s", params.Encode())
}

// OpenTableRestaurantLink builds a restaurant reservation URL with the
// partner ref parameter
func (b *LinkBuilder) OpenTableRestaurantLink(slug string) string {
	return fmt.Sprintf("https://www.opentable.com/r/%s?ref=%s", slugify(slug), url.QueryEscape(b.openTableRef))
}

// ExpediaTripLink builds a travel deep link with the SEMCID tracking
// parameter
func (b *LinkBuilder) ExpediaTripLink(path string) string {
	trimmed := strings.Trim(path, "/")
	return fmt.Sprintf("https://www.expedia.com/%s?SEMCID=%s", trimmed, url.QueryEscape(b.expediaID))
}

// slugify lowercases a name and replaces whitespace runs with dashes
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
