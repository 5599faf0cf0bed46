package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("OCASSIA_SERVER_PORT")
		os.Unsetenv("OCASSIA_SERVER_ENVIRONMENT")
		os.Unsetenv("OCASSIA_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("OCASSIA_OPENAI_API_KEY")
		os.Unsetenv("OCASSIA_OPENAI_BASE_URL")
		os.Unsetenv("OCASSIA_OPENAI_MODEL")
		os.Unsetenv("OCASSIA_AFFILIATE_AMAZON_ASSOCIATE_ID")
		os.Unsetenv("OCASSIA_CACHE_TYPE")
		os.Unsetenv("OCASSIA_CACHE_TTL")
		os.Unsetenv("OCASSIA_SEARCH_TOP_N")
		os.Unsetenv("OCASSIA_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
			t.Errorf("OpenAI.BaseURL = %s, want https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "gpt-4o-mini" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o-mini", cfg.OpenAI.Model)
		}
		if cfg.OpenAI.APIKey != "" {
			t.Errorf("OpenAI.APIKey = %s, want empty (catalog-only mode)", cfg.OpenAI.APIKey)
		}
		if cfg.Affiliate.AmazonAssociateID != "ocassia-20" {
			t.Errorf("Affiliate.AmazonAssociateID = %s, want ocassia-20", cfg.Affiliate.AmazonAssociateID)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 1*time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Search.TopN != 8 {
			t.Errorf("Search.TopN = %d, want 8", cfg.Search.TopN)
		}
		if cfg.RateLimit.PerIP != 60 {
			t.Errorf("RateLimit.PerIP = %d, want 60", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("OCASSIA_SERVER_PORT", "9090")
		os.Setenv("OCASSIA_SERVER_ENVIRONMENT", "production")
		os.Setenv("OCASSIA_OPENAI_API_KEY", "sk-test-key")
		os.Setenv("OCASSIA_OPENAI_BASE_URL", "https://llm.internal/v1")
		os.Setenv("OCASSIA_OPENAI_MODEL", "gpt-4o")
		os.Setenv("OCASSIA_AFFILIATE_AMAZON_ASSOCIATE_ID", "custom-21")
		os.Setenv("OCASSIA_CACHE_TTL", "24h")
		os.Setenv("OCASSIA_SEARCH_TOP_N", "6")
		os.Setenv("OCASSIA_RATELIMIT_PER_IP", "120")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.OpenAI.APIKey != "sk-test-key" {
			t.Errorf("OpenAI.APIKey = %s, want sk-test-key", cfg.OpenAI.APIKey)
		}
		if cfg.OpenAI.BaseURL != "https://llm.internal/v1" {
			t.Errorf("OpenAI.BaseURL = %s, want https://llm.internal/v1", cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "gpt-4o" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o", cfg.OpenAI.Model)
		}
		if cfg.Affiliate.AmazonAssociateID != "custom-21" {
			t.Errorf("Affiliate.AmazonAssociateID = %s, want custom-21", cfg.Affiliate.AmazonAssociateID)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Search.TopN != 6 {
			t.Errorf("Search.TopN = %d, want 6", cfg.Search.TopN)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("OCASSIA_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for unsupported cache type")
		}
	})

	t.Run("fails validation for non-positive top_n", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("OCASSIA_SEARCH_TOP_N", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for top_n = 0")
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("OCASSIA_RATELIMIT_PER_IP", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for per_ip = 0")
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Affiliate: AffiliateConfig{AmazonAssociateID: "ocassia-20"},
			Cache:     CacheConfig{Type: "memory", TTL: time.Hour},
			Search:    SearchConfig{TopN: 8},
			RateLimit: RateLimitConfig{PerIP: 60},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(validConfig()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cache.Type = "invalid-type"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails for negative per-IP rate limit", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimit.PerIP = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative rate limit")
		}
	})

	t.Run("fails for missing associate ID", func(t *testing.T) {
		cfg := validConfig()
		cfg.Affiliate.AmazonAssociateID = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty associate ID")
		}
	})
}
