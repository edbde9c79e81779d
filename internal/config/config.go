package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats understood by the renderer.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	Env                string        `mapstructure:"app_env"`
	LogLevel           string        `mapstructure:"log_level"`
	BaseURL            string        `mapstructure:"collection_base_url"`
	UserAgent          string        `mapstructure:"user_agent"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
	SamplePosition     int           `mapstructure:"sample_position"`
	IDsLimit           int           `mapstructure:"ids_limit"`
	OutputFormat       string        `mapstructure:"output_format"`
}

// Load reads configuration from environment variables and an optional config file.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "museum-collection")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "warn")
	v.SetDefault("collection_base_url", "https://collectionapi.metmuseum.org/public/collection/v1/")
	v.SetDefault("user_agent", "museum-collection/0.1")
	v.SetDefault("http_timeout_seconds", 0) // transport default
	v.SetDefault("sample_position", 100)
	v.SetDefault("ids_limit", 20)
	v.SetDefault("output_format", OutputText)

	if path := strings.TrimSpace(configFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates the config and fills derived fields. It is re-run after
// command-line overrides are applied.
func (c *Config) Normalize() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		return fmt.Errorf("invalid collection_base_url (must not be empty)")
	}
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("invalid http_timeout_seconds (must be zero or positive seconds)")
	}
	c.HTTPTimeout = time.Duration(c.HTTPTimeoutSeconds) * time.Second

	if c.IDsLimit <= 0 {
		return fmt.Errorf("invalid ids_limit (must be positive)")
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "":
		c.LogLevel = "warn"
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", c.LogLevel)
	}

	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	switch c.OutputFormat {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output_format %q (expected text, json or yaml)", c.OutputFormat)
	}
	return nil
}
