package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_NEWSFEED_KEY", "sk-test")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://news.example.com
  admin_secret: topsecret

feed:
  default_limit: 10
  max_limit: 50
  filter_by_language: true

translate:
  provider: llm
  timeout: 10s
  llm:
    endpoint: http://localhost:11434/v1
    api_key: ${TEST_NEWSFEED_KEY}
    model: llama3
    temperature: 0.5

moderation:
  banned_keywords: [spam, scam]
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://news.example.com", cfg.Server.BaseURL)
		assert.Equal(t, "topsecret", cfg.Server.AdminSecret)
		assert.Equal(t, FeedConfig{DefaultLimit: 10, MaxLimit: 50, FilterByLanguage: true}, cfg.Feed)

		assert.Equal(t, ProviderLLM, cfg.Translate.Provider)
		assert.Equal(t, 10*time.Second, cfg.Translate.Timeout)
		assert.Equal(t, "sk-test", cfg.Translate.LLM.APIKey)
		assert.Equal(t, "llama3", cfg.Translate.LLM.Model)
		assert.InDelta(t, 0.5, cfg.Translate.LLM.Temperature, 0.001)
		assert.Equal(t, 2000, cfg.Translate.LLM.MaxTokens)
		assert.Equal(t, 3, cfg.Translate.LLM.MaxRetries)

		assert.Equal(t, []string{"spam", "scam"}, cfg.Moderation.BannedKeywords)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Empty(t, cfg.Server.AdminSecret)

		assert.Equal(t, "file:newsfeed.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)

		assert.Equal(t, 20, cfg.Feed.DefaultLimit)
		assert.Equal(t, 100, cfg.Feed.MaxLimit)
		assert.False(t, cfg.Feed.FilterByLanguage)

		assert.Equal(t, ProviderPlaceholder, cfg.Translate.Provider)
		assert.Equal(t, "en", cfg.Translate.SourceLanguage)
		assert.Equal(t, 30*time.Second, cfg.Translate.Timeout)

		assert.Equal(t, []string{"fake", "terror", "hate"}, cfg.Moderation.BannedKeywords)
	})

	t.Run("explicit empty keywords kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "moderation:\n  banned_keywords: []\n"))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Moderation.BannedKeywords)
		assert.Empty(t, cfg.Moderation.BannedKeywords)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "translate:\n  provider: babelfish\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), `unknown translate.provider "babelfish"`)
	})

	t.Run("max limit over hard cap", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "feed:\n  default_limit: 20\n  max_limit: 500\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "feed.max_limit must be between 1 and 100")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate(cfg))
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, ProviderPlaceholder, cfg.Translate.Provider)

	// defaults are copied, not shared
	cfg.Moderation.BannedKeywords[0] = "changed"
	assert.Equal(t, "fake", DefaultBannedKeywords[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = 500 * time.Millisecond },
			wantErr: "server timeout must be at least 1 second"},
		{name: "default limit above max", modify: func(c *Config) { c.Feed.DefaultLimit = 101 },
			wantErr: "feed.default_limit must be between 1 and 100"},
		{name: "negative max limit", modify: func(c *Config) { c.Feed.MaxLimit = -1 },
			wantErr: "feed.max_limit must be between 1 and 100"},
		{name: "max limit above hard cap", modify: func(c *Config) { c.Feed.MaxLimit = 500 },
			wantErr: "feed.max_limit must be between 1 and 100"},
		{name: "llm without model", modify: func(c *Config) { c.Translate.Provider = ProviderLLM },
			wantErr: "translate.llm.model is required for llm provider"},
		{name: "llm temperature", modify: func(c *Config) {
			c.Translate.Provider, c.Translate.LLM.Model, c.Translate.LLM.Temperature = ProviderLLM, "gpt-4o-mini", 3
		}, wantErr: "translate.llm.temperature must be between 0 and 2"},
		{name: "llm retries", modify: func(c *Config) {
			c.Translate.Provider, c.Translate.LLM.Model, c.Translate.LLM.MaxRetries = ProviderLLM, "gpt-4o-mini", -1
		}, wantErr: "translate.llm.max_retries must be at least 1"},
		{name: "valid llm", modify: func(c *Config) {
			c.Translate.Provider, c.Translate.LLM.Model = ProviderLLM, "gpt-4o-mini"
		}},
		{name: "negative translate timeout", modify: func(c *Config) { c.Translate.Timeout = -time.Second },
			wantErr: "translate.timeout must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen, cfg.Server.Timeout = ":9090", 45*time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, cfg.Feed, cfg.GetFeedConfig())
	assert.Equal(t, cfg.Translate, cfg.GetTranslateConfig())
	assert.Equal(t, "http://localhost:8080", cfg.GetBaseURL())

	cfg.Server.AdminSecret = "s3cret"
	assert.Equal(t, "s3cret", cfg.GetAdminSecret())
}
