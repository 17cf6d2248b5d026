// Package config provides configuration management for the FirstCycling
// scraper.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Fetcher FetcherConfig `mapstructure:"fetcher" validate:"required"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// FetcherConfig holds the HTTP fetching settings.
type FetcherConfig struct {
	BaseURL           string  `mapstructure:"base_url" validate:"required,url"`
	UserAgent         string  `mapstructure:"user_agent" validate:"required"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	Burst             int     `mapstructure:"burst" validate:"required,gt=0"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryMax          int     `mapstructure:"retry_max" validate:"gte=0"`
	CacheTTLSeconds   int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// Load reads the configuration from an optional YAML file and the
// environment (prefix FIRSTCYCLING), applying defaults for every field so a
// missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("FIRSTCYCLING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("fetcher.base_url", "https://firstcycling.com")
	v.SetDefault("fetcher.user_agent", "FirstCyclingScraper/1.0")
	v.SetDefault("fetcher.requests_per_second", 2.0)
	v.SetDefault("fetcher.burst", 4)
	v.SetDefault("fetcher.timeout_seconds", 30)
	v.SetDefault("fetcher.retry_max", 3)
	v.SetDefault("fetcher.cache_ttl_seconds", 300)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
