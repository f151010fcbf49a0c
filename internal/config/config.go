// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	StoreKey     string `mapstructure:"STORE_KEY"`
	PrefsKey     string `mapstructure:"PREFS_KEY"`
	RedisURL     string `mapstructure:"REDIS_URL"`
	DBPath       string `mapstructure:"DB_PATH"`
	UserID       string `mapstructure:"USER_ID"`
	UserName     string `mapstructure:"USER_NAME"`
	Theme        string `mapstructure:"THEME"`
	SeedDemo     bool   `mapstructure:"SEED_DEMO"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set default values
	viper.SetDefault("STORE_BACKEND", "sqlite")
	viper.SetDefault("STORE_KEY", "echowall:posts")
	viper.SetDefault("PREFS_KEY", "echowall:prefs")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("DB_PATH", "echowall.db")
	viper.SetDefault("USER_ID", "local-user")
	viper.SetDefault("USER_NAME", "You")
	viper.SetDefault("THEME", "light")
	viper.SetDefault("SEED_DEMO", false)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and consistent.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "redis", "sqlite":
	default:
		return fmt.Errorf("STORE_BACKEND must be one of memory, redis, sqlite (got %q)", c.StoreBackend)
	}
	if c.StoreKey == "" {
		return errors.New("STORE_KEY is required")
	}
	if c.PrefsKey == "" {
		return errors.New("PREFS_KEY is required")
	}
	if c.StoreBackend == "redis" && c.RedisURL == "" {
		return errors.New("REDIS_URL is required for the redis backend")
	}
	if c.StoreBackend == "sqlite" && c.DBPath == "" {
		return errors.New("DB_PATH is required for the sqlite backend")
	}
	if c.UserID == "" {
		return errors.New("USER_ID is required")
	}
	if c.UserName == "" {
		return errors.New("USER_NAME is required")
	}
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("THEME must be light or dark (got %q)", c.Theme)
	}
	return nil
}
