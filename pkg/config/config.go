package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// translation providers
const (
	ProviderPlaceholder = "placeholder"
	ProviderLLM         = "llm"
)

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feed       FeedConfig       `yaml:"feed" json:"feed" jsonschema:"description=Feed assembly configuration"`
	Translate  TranslateConfig  `yaml:"translate" json:"translate" jsonschema:"description=Translation provider configuration"`
	Moderation ModerationConfig `yaml:"moderation" json:"moderation" jsonschema:"description=Moderation gate configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL     string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
	AdminSecret string        `yaml:"admin_secret" json:"admin_secret" jsonschema:"description=Shared secret for admin endpoints (can use environment variable)"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsfeed.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// MaxFeedLimit is the hard cap of articles in one feed response
const MaxFeedLimit = 100

// FeedConfig holds feed assembly settings
type FeedConfig struct {
	DefaultLimit     int  `yaml:"default_limit" json:"default_limit" jsonschema:"default=20,maximum=100,minimum=1,description=Number of articles when limit is not requested"`
	MaxLimit         int  `yaml:"max_limit" json:"max_limit" jsonschema:"default=100,maximum=100,minimum=1,description=Maximum number of articles per feed request"`
	FilterByLanguage bool `yaml:"filter_by_language" json:"filter_by_language" jsonschema:"default=false,description=Show only articles written in the requested language instead of translating"`
}

// TranslateConfig holds translation settings
type TranslateConfig struct {
	Provider       string        `yaml:"provider" json:"provider" jsonschema:"default=placeholder,enum=placeholder,enum=llm,description=Translation provider"`
	SourceLanguage string        `yaml:"source_language" json:"source_language" jsonschema:"default=en,description=Language the placeholder provider treats as untranslated"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout of a single translation call"`
	LLM            LLMConfig     `yaml:"llm" json:"llm" jsonschema:"description=LLM provider settings"`
}

// LLMConfig holds OpenAI-compatible LLM settings used for translation
type LLMConfig struct {
	Endpoint     string  `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string  `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string  `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens    int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	MaxRetries   int     `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=1,description=Attempts per translation request"`
	SystemPrompt string  `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// ModerationConfig holds moderation gate settings
type ModerationConfig struct {
	BannedKeywords []string `yaml:"banned_keywords" json:"banned_keywords" jsonschema:"description=Case-insensitive terms rejecting verified submissions"`
}

// DefaultBannedKeywords is used when moderation.banned_keywords is not set
var DefaultBannedKeywords = []string{"fake", "terror", "hate"}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields with default values
func (c *Config) SetDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsfeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feed
	if c.Feed.DefaultLimit == 0 {
		c.Feed.DefaultLimit = 20
	}
	if c.Feed.MaxLimit == 0 {
		c.Feed.MaxLimit = 100
	}

	// set defaults for translation
	if c.Translate.Provider == "" {
		c.Translate.Provider = ProviderPlaceholder
	}
	if c.Translate.SourceLanguage == "" {
		c.Translate.SourceLanguage = "en"
	}
	if c.Translate.Timeout == 0 {
		c.Translate.Timeout = 30 * time.Second
	}
	if c.Translate.LLM.Temperature == 0 {
		c.Translate.LLM.Temperature = 0.2
	}
	if c.Translate.LLM.MaxTokens == 0 {
		c.Translate.LLM.MaxTokens = 2000
	}
	if c.Translate.LLM.MaxRetries == 0 {
		c.Translate.LLM.MaxRetries = 3
	}

	// nil means not configured, an explicit empty list disables keyword rejection
	if c.Moderation.BannedKeywords == nil {
		c.Moderation.BannedKeywords = append([]string(nil), DefaultBannedKeywords...)
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate feed config
	if cfg.Feed.MaxLimit < 1 || cfg.Feed.MaxLimit > MaxFeedLimit {
		return fmt.Errorf("feed.max_limit must be between 1 and %d", MaxFeedLimit)
	}
	if cfg.Feed.DefaultLimit < 1 || cfg.Feed.DefaultLimit > cfg.Feed.MaxLimit {
		return fmt.Errorf("feed.default_limit must be between 1 and %d", cfg.Feed.MaxLimit)
	}

	// validate translation config
	switch cfg.Translate.Provider {
	case ProviderPlaceholder:
	case ProviderLLM:
		if cfg.Translate.LLM.Model == "" {
			return fmt.Errorf("translate.llm.model is required for llm provider")
		}
		if cfg.Translate.LLM.Temperature < 0 || cfg.Translate.LLM.Temperature > 2 {
			return fmt.Errorf("translate.llm.temperature must be between 0 and 2")
		}
		if cfg.Translate.LLM.MaxRetries < 1 {
			return fmt.Errorf("translate.llm.max_retries must be at least 1")
		}
	default:
		return fmt.Errorf("unknown translate.provider %q", cfg.Translate.Provider)
	}
	if cfg.Translate.Timeout < 0 {
		return fmt.Errorf("translate.timeout must be non-negative")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedConfig returns feed assembly configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetTranslateConfig returns translation configuration
func (c *Config) GetTranslateConfig() TranslateConfig {
	return c.Translate
}

// GetBaseURL returns the public base URL used in generated links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetAdminSecret returns the shared secret of admin endpoints
func (c *Config) GetAdminSecret() string {
	return c.Server.AdminSecret
}
