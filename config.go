package infoagent

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything main needs to assemble an agent.
type Config struct {
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key"`
	TavilyAPIKey     string `mapstructure:"tavily_api_key"`
	BaseURL          string `mapstructure:"base_url"`
	Model            string `mapstructure:"model"`
	MaxIterations    int    `mapstructure:"max_iterations"`
	SQLitePath       string `mapstructure:"sqlite_path"`
	PostgresURI      string `mapstructure:"postgres_uri"`
}

// LoadConfig reads configuration from an optional TOML file plus the
// environment; environment variables win over file values. A .env file
// in the working directory is honored when present. The OpenRouter key
// is the only required value.
func LoadConfig(path string) (*Config, error) {
	// best effort, env vars are the fallback
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("max_iterations", DefaultMaxIterations)

	v.AutomaticEnv()
	for _, key := range []string{"openrouter_api_key", "tavily_api_key", "sqlite_path", "postgres_uri"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.OpenRouterAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
