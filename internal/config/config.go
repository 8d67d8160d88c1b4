// Package config loads lingo server configuration from defaults,
// environment variables and command line flags, in that order of
// precedence (lowest to highest).
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Viper keys. Each maps to the LINGO_ environment variable of the same
// name, for example KeyMaxTokens reads LINGO_MAX_TOKENS.
const (
	KeyHost            = "host"
	KeyPort            = "port"
	KeyProvider        = "provider"
	KeyModel           = "model"
	KeyTemperature     = "temperature"
	KeyMaxTokens       = "max_tokens"
	KeyProviderTimeout = "provider_timeout"
	KeyProviderBaseURL = "provider_base_url"
	KeyLogLevel        = "log_level"
)

// Config holds the resolved server configuration.
type Config struct {
	// Server listen address.
	Host string
	Port int

	// LLM provider selection and generation parameters.
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int

	// APIKey is the provider credential, read from the provider's
	// conventional environment variable. Never log it.
	APIKey string

	// ProviderBaseURL overrides the provider endpoint when set.
	ProviderBaseURL string
	// OllamaHost is the ollama server address, used only when
	// Provider is "ollama".
	OllamaHost string

	// ProviderTimeout bounds a single upstream call.
	ProviderTimeout time.Duration

	LogLevel string
}

// New returns a viper instance preloaded with lingo defaults and bound
// to LINGO_ prefixed environment variables. Callers may bind command
// line flags on top before passing it to Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyPort, 8000)
	v.SetDefault(KeyProvider, ProviderGroq)
	v.SetDefault(KeyModel, "")
	v.SetDefault(KeyTemperature, 0.5)
	v.SetDefault(KeyMaxTokens, 1000)
	v.SetDefault(KeyProviderTimeout, 30*time.Second)
	v.SetDefault(KeyProviderBaseURL, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix("LINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load materializes and validates a Config from v. The provider API
// key is resolved from the environment, not from v, so it never passes
// through flag or file sources.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:            v.GetString(KeyHost),
		Port:            v.GetInt(KeyPort),
		Provider:        strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		Model:           strings.TrimSpace(v.GetString(KeyModel)),
		Temperature:     v.GetFloat64(KeyTemperature),
		MaxTokens:       v.GetInt(KeyMaxTokens),
		ProviderBaseURL: strings.TrimSpace(v.GetString(KeyProviderBaseURL)),
		ProviderTimeout: v.GetDuration(KeyProviderTimeout),
		LogLevel:        v.GetString(KeyLogLevel),
	}

	cfg.APIKey = os.Getenv(APIKeyEnv(cfg.Provider))
	cfg.OllamaHost = getEnv("OLLAMA_HOST", "http://localhost:11434")
	if cfg.ProviderBaseURL == "" && cfg.Provider == ProviderOpenAI {
		cfg.ProviderBaseURL = os.Getenv("OPENAI_BASE_URL")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigurationError reports every configuration problem found during
// validation. It is fatal at startup.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderOllama:
	default:
		problems = append(problems, fmt.Sprintf("unknown provider %q (supported: %s, %s, %s)",
			c.Provider, ProviderGroq, ProviderOpenAI, ProviderOllama))
	}

	if keyEnv := APIKeyEnv(c.Provider); keyEnv != "" && c.APIKey == "" {
		problems = append(problems, fmt.Sprintf("%s environment variable is required for provider %q", keyEnv, c.Provider))
	}
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("port %d out of range 1-65535", c.Port))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		problems = append(problems, fmt.Sprintf("temperature %g out of range 0-2", c.Temperature))
	}
	if c.MaxTokens < 1 {
		problems = append(problems, fmt.Sprintf("max_tokens must be positive, got %d", c.MaxTokens))
	}
	if c.ProviderTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("provider_timeout must be positive, got %s", c.ProviderTimeout))
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

// Address returns the host:port pair the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// APIKeyEnv names the environment variable holding the credential for
// the given provider. It returns "" for providers that need no key.
func APIKeyEnv(provider string) string {
	switch provider {
	case ProviderGroq:
		return "GROQ_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderOllama:
		return "llama3"
	default:
		return "gemma2-9b-it"
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
