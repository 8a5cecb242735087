package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MikhailRaia/top4top-converter/internal/generator"
	"github.com/MikhailRaia/top4top-converter/internal/linker"
)

type Config struct {
	ServerAddress string
	BaseURL       string
	LogLevel      string
	IDStrategy    string
	ConfigPath    string
}

// fileConfig mirrors the optional JSON configuration file.
type fileConfig struct {
	ServerAddress string `json:"server_address"`
	BaseURL       string `json:"base_url"`
	LogLevel      string `json:"log_level"`
	IDStrategy    string `json:"id_strategy"`
}

// NewConfig resolves configuration with priority env > flag > JSON file > default.
func NewConfig() (*Config, error) {
	cfg := Default()

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Base URL for synthesized links (e.g. https://top4top.io)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.IDStrategy, "g", cfg.IDStrategy, "Link id strategy (random or uuid)")
	flag.StringVar(&cfg.ConfigPath, "c", cfg.ConfigPath, "Path to JSON config file")

	flag.Parse()

	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		cfg.ConfigPath = envConfig
	}

	if cfg.ConfigPath != "" {
		if err := cfg.applyFile(cfg.ConfigPath, explicitFlags()); err != nil {
			return nil, err
		}
	}

	if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}

	if envBaseURL := os.Getenv("BASE_URL"); envBaseURL != "" {
		cfg.BaseURL = envBaseURL
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if envIDStrategy := os.Getenv("ID_STRATEGY"); envIDStrategy != "" {
		cfg.IDStrategy = envIDStrategy
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerAddress: ":8080",
		BaseURL:       linker.DefaultBaseURL,
		LogLevel:      "info",
		IDStrategy:    generator.StrategyRandom,
	}
}

func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFile fills fields from a JSON file unless their flag was given explicitly.
func (c *Config) applyFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	apply := func(name, value string, dst *string) {
		if value != "" && !explicit[name] {
			*dst = value
		}
	}

	apply("a", fc.ServerAddress, &c.ServerAddress)
	apply("b", fc.BaseURL, &c.BaseURL)
	apply("l", fc.LogLevel, &c.LogLevel)
	apply("g", fc.IDStrategy, &c.IDStrategy)

	return nil
}
