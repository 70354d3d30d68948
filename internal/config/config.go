// Package config loads the server configuration from file and
// environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/anshul/memodeck/internal/llm"
	"github.com/anshul/memodeck/internal/store"
)

// Config holds all configuration for the memodeck server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds the SQLite configuration.
type DatabaseConfig struct {
	// Path is the database file. Empty selects the XDG default.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig holds identity configuration. The gateway in front of the
// server verifies callers and injects their id on every request.
type AuthConfig struct {
	UserHeader string `mapstructure:"user_header"`
}

// WebhookConfig holds the billing-webhook configuration.
type WebhookConfig struct {
	// Secret is the base64 signing secret shared with the billing
	// provider, in the provider's "whsec_..." form or raw base64.
	Secret string `mapstructure:"secret"`
}

// LLMConfig selects and configures the AI provider.
type LLMConfig struct {
	Provider  string         `mapstructure:"provider"`
	Gemini    ProviderKeys   `mapstructure:"gemini"`
	OpenAI    ProviderKeys   `mapstructure:"openai"`
	Anthropic ProviderKeys   `mapstructure:"anthropic"`
	Retry     LLMRetryConfig `mapstructure:"retry"`
	TimeoutS  int            `mapstructure:"timeout_seconds"`
}

// ProviderKeys holds one provider's credentials and model choice.
type ProviderKeys struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LLMRetryConfig mirrors llm.RetryConfig in file-friendly units.
type LLMRetryConfig struct {
	MaxAttempts   int     `mapstructure:"max_attempts"`
	InitialWaitMs int     `mapstructure:"initial_wait_ms"`
	MaxWaitMs     int     `mapstructure:"max_wait_ms"`
	Multiplier    float64 `mapstructure:"multiplier"`
}

// Load reads configuration from memodeck.yaml and MEMODECK_* environment
// variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("memodeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/memodeck")
	v.AddConfigPath("/etc/memodeck")

	setDefaults(v)

	v.SetEnvPrefix("MEMODECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("auth.user_header", "X-User-ID")

	llmDefaults := llm.DefaultConfig()
	v.SetDefault("llm.provider", llmDefaults.Provider)
	v.SetDefault("llm.gemini.model", llmDefaults.Gemini.Model)
	v.SetDefault("llm.openai.model", llmDefaults.OpenAI.Model)
	v.SetDefault("llm.anthropic.model", llmDefaults.Anthropic.Model)
	v.SetDefault("llm.retry.max_attempts", llmDefaults.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait_ms", int(llmDefaults.Retry.InitialWait.Milliseconds()))
	v.SetDefault("llm.retry.max_wait_ms", int(llmDefaults.Retry.MaxWait.Milliseconds()))
	v.SetDefault("llm.retry.multiplier", llmDefaults.Retry.Multiplier)
	v.SetDefault("llm.timeout_seconds", int(llmDefaults.Timeout.Seconds()))
}

// ToLLM converts the file-shaped LLM section into the llm package's
// Config.
func (c *Config) ToLLM() llm.Config {
	return llm.Config{
		Provider: c.LLM.Provider,
		Gemini: llm.GeminiConfig{
			APIKey: c.LLM.Gemini.APIKey,
			Model:  c.LLM.Gemini.Model,
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  c.LLM.OpenAI.APIKey,
			Model:   c.LLM.OpenAI.Model,
			BaseURL: c.LLM.OpenAI.BaseURL,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: c.LLM.Anthropic.APIKey,
			Model:  c.LLM.Anthropic.Model,
		},
		Retry: llm.RetryConfig{
			MaxAttempts: c.LLM.Retry.MaxAttempts,
			InitialWait: time.Duration(c.LLM.Retry.InitialWaitMs) * time.Millisecond,
			MaxWait:     time.Duration(c.LLM.Retry.MaxWaitMs) * time.Millisecond,
			Multiplier:  c.LLM.Retry.Multiplier,
		},
		Timeout: time.Duration(c.LLM.TimeoutS) * time.Second,
	}
}

// DBPath resolves the database path, falling back to the XDG default.
func (c *Config) DBPath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, store.EnsureDir(c.Database.Path)
	}
	return store.DefaultDBPath()
}
