// Package openai implements the chat-completions client used for gift
// synthesis. Failures here are always recoverable upstream - the
// recommendation service falls back to the static catalog.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ocassia/backend/internal/domain"
)

// Request tuning for gift synthesis completions
const (
	completionTemperature = 0.7
	completionMaxTokens   = 1000
	suggestionCount       = 3
)

// Client handles communication with the OpenAI chat completions API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OpenAI API client
func NewClient(apiKey, baseURL, model string) *Client {
	// Stay well under the per-minute completion quota: 1 req/sec sustained
	// with a small burst
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// chatMessage is a single message in a chat completion request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat completions request body
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
	ResponseFormat map[string]string `json:"response_format"`
}

// chatResponse is the subset of the completions response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// suggestionPayload is the JSON shape the model is instructed to return
type suggestionPayload struct {
	Suggestions []struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		Category       string `json:"category"`
		EstimatedPrice string `json:"estimatedPrice"`
		Reasoning      string `json:"reasoning"`
		SearchTerm     string `json:"searchTerm"`
	} `json:"suggestions"`
}

// GenerateSuggestions asks the model for gift ideas matching the request.
// The completion is constrained to JSON and validated against the expected
// shape; any mismatch is reported as ErrMalformedResponse.
func (c *Client) GenerateSuggestions(ctx context.Context, req *domain.GiftRequest) ([]domain.GiftSuggestion, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", domain.ErrLLMFailure)
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req)},
		},
		Temperature:    completionTemperature,
		MaxTokens:      completionMaxTokens,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	content, err := c.complete(ctx, body)
	if err != nil {
		return nil, err
	}

	return parseSuggestions(content)
}

// complete executes the chat completion request with rate limiting and
// retries on transient failures
func (c *Client) complete(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/chat/completions", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("User-Agent", "Ocassia/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[OPENAI] Request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrLLMFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		// Retry server-side failures; client errors (bad key, bad request)
		// will not improve on retry
		if resp.StatusCode >= http.StatusInternalServerError {
			log.Printf("[OPENAI] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrLLMFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: status %d, body: %s", domain.ErrLLMFailure, resp.StatusCode, truncate(string(respBody), 200))
		}

		var chatResp chatResponse
		if err := json.Unmarshal(respBody, &chatResp); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		if len(chatResp.Choices) == 0 {
			return "", fmt.Errorf("%w: no choices returned", domain.ErrMalformedResponse)
		}

		if c.debug {
			log.Printf("[OPENAI] Completion received (%d bytes)", len(chatResp.Choices[0].Message.Content))
		}

		return chatResp.Choices[0].Message.Content, nil
	}

	return "", lastErr
}

// parseSuggestions validates the completion content against the expected
// suggestions shape and tags each suggestion with a generated ID
func parseSuggestions(content string) ([]domain.GiftSuggestion, error) {
	var payload suggestionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(payload.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: empty suggestions field", domain.ErrMalformedResponse)
	}

	suggestions := make([]domain.GiftSuggestion, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		if s.Title == "" || s.Category == "" {
			return nil, fmt.Errorf("%w: suggestion missing title or category", domain.ErrMalformedResponse)
		}
		searchTerm := s.SearchTerm
		if searchTerm == "" {
			searchTerm = strings.ToLower(s.Title)
		}
		suggestions = append(suggestions, domain.GiftSuggestion{
			ID:             "ai-" + uuid.NewString(),
			Title:          s.Title,
			Description:    s.Description,
			Category:       s.Category,
			EstimatedPrice: s.EstimatedPrice,
			Reasoning:      s.Reasoning,
			SearchTerm:     searchTerm,
			Source:         "ai",
		})
	}

	return suggestions, nil
}

// systemPrompt instructs the model to answer with strict JSON
const systemPrompt = `You are a thoughtful gift advisor. Respond only with a JSON object of the form ` +
	`{"suggestions": [{"title": "...", "description": "...", "category": "...", "estimatedPrice": "...", "reasoning": "...", "searchTerm": "..."}]}. ` +
	`Suggest specific, purchasable products, not generic categories.`

// buildUserPrompt embeds the gift request into the user message
func buildUserPrompt(req *domain.GiftRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Suggest exactly %d gifts", suggestionCount)
	if req.Recipient != "" {
		fmt.Fprintf(&sb, " for %s", req.Recipient)
	}
	if req.Relationship != "" {
		fmt.Fprintf(&sb, " (their %s)", req.Relationship)
	}
	if req.Occasion != "" {
		fmt.Fprintf(&sb, " for %s", req.Occasion)
	}
	if req.Age > 0 {
		fmt.Fprintf(&sb, ". They are %d years old", req.Age)
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&sb, ". Interests: %s", strings.Join(req.Interests, ", "))
	}
	if req.Budget > 0 {
		fmt.Fprintf(&sb, ". Budget: under $%.0f", req.Budget)
	}
	sb.WriteString(".")
	return sb.String()
}

// exponentialBackoff returns the wait before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// truncate shortens a string for log/error output
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
