package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocassia/backend/internal/domain"
)

func completionBody(content string) string {
	return `{"choices":[{"message":{"content":` + content + `}}]}`
}

func TestNewClient(t *testing.T) {
	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		client := NewClient("key", "https://api.openai.com/v1/", "gpt-4o-mini")
		assert.Equal(t, "https://api.openai.com/v1", client.baseURL)
	})

	t.Run("configures request timeout", func(t *testing.T) {
		client := NewClient("key", "https://api.openai.com/v1", "gpt-4o-mini")
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})
}

func TestGenerateSuggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns error for nil request", func(t *testing.T) {
		client := NewClient("key", "https://api.openai.com/v1", "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("fails fast without an API key", func(t *testing.T) {
		client := NewClient("", "https://api.openai.com/v1", "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})
		assert.ErrorIs(t, err, domain.ErrLLMFailure)
	})

	t.Run("parses a well-formed completion", func(t *testing.T) {
		content := `"{\"suggestions\":[` +
			`{\"title\":\"Aeropress Coffee Maker\",\"description\":\"Compact brewer\",\"category\":\"coffee\",\"estimatedPrice\":\"$39.95\",\"reasoning\":\"Great for travel\",\"searchTerm\":\"aeropress\"},` +
			`{\"title\":\"Pour-Over Kettle\",\"description\":\"Gooseneck spout\",\"category\":\"coffee\",\"estimatedPrice\":\"$45\",\"reasoning\":\"Precise pours\",\"searchTerm\":\"gooseneck kettle\"},` +
			`{\"title\":\"Single-Origin Sampler\",\"description\":\"Four bags\",\"category\":\"coffee\",\"estimatedPrice\":\"$30\",\"reasoning\":\"Variety to explore\",\"searchTerm\":\"\"}]}"`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(completionBody(content)))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		suggestions, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{
			Relationship: "friend",
			Interests:    []string{"coffee"},
		})

		require.NoError(t, err)
		require.Len(t, suggestions, 3)
		assert.Equal(t, "Aeropress Coffee Maker", suggestions[0].Title)
		assert.Equal(t, "ai", suggestions[0].Source)
		assert.True(t, strings.HasPrefix(suggestions[0].ID, "ai-"))
		// Missing searchTerm falls back to the lowercased title
		assert.Equal(t, "single-origin sampler", suggestions[2].SearchTerm)
	})

	t.Run("rejects completion missing required fields", func(t *testing.T) {
		content := `"{\"suggestions\":[{\"description\":\"no title or category\"}]}"`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody(content)))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("rejects completion with empty suggestions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody(`"{\"suggestions\":[]}"`)))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("rejects non-JSON completion content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody(`"Here are some gift ideas: ..."`)))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("retries server errors up to three times", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})

		assert.ErrorIs(t, err, domain.ErrLLMFailure)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key"}}`))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, "gpt-4o-mini")
		_, err := client.GenerateSuggestions(ctx, &domain.GiftRequest{Relationship: "friend"})

		assert.ErrorIs(t, err, domain.ErrLLMFailure)
		assert.Equal(t, 1, attempts)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Run("includes every populated field", func(t *testing.T) {
		prompt := buildUserPrompt(&domain.GiftRequest{
			Recipient:    "my niece",
			Relationship: "niece",
			Occasion:     "christmas",
			Age:          13,
			Interests:    []string{"reading", "art"},
			Budget:       50,
		})

		assert.Contains(t, prompt, "Suggest exactly 3 gifts")
		assert.Contains(t, prompt, "for my niece")
		assert.Contains(t, prompt, "(their niece)")
		assert.Contains(t, prompt, "for christmas")
		assert.Contains(t, prompt, "13 years old")
		assert.Contains(t, prompt, "reading, art")
		assert.Contains(t, prompt, "under $50")
	})

	t.Run("omits unset fields", func(t *testing.T) {
		prompt := buildUserPrompt(&domain.GiftRequest{Relationship: "friend"})
		assert.NotContains(t, prompt, "years old")
		assert.NotContains(t, prompt, "Budget")
		assert.NotContains(t, prompt, "Interests")
	})
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1 * time.Second},
		{3, 2 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exponentialBackoff(tt.attempt))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde...", truncate("abcdefghij", 5))
}
