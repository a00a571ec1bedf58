package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingProperty = errors.New("GA_PROPERTY_ID must be set")
	ErrMissingKeyFile  = errors.New("GA_KEY_FILE must be set")
)

type Config struct {
	Env              string // local or prod
	Port             string
	PropertyID       string
	KeyFile          string
	DefaultStartDate string
	LogLevel         string
}

// Load reads configuration from the environment. For CONFIG_ENV=local a
// .env.local file is loaded first when present.
func Load() (*Config, error) {
	env := strings.ToLower(os.Getenv("CONFIG_ENV"))
	if env == "" {
		env = "local"
	}

	if env == "local" {
		// missing file is fine, the process environment still applies
		_ = godotenv.Load(".env.local")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEFAULT_START_DATE", "2023-01-01")
	v.SetDefault("LOG_LEVEL", "info")

	switch env {
	case "local", "prod":
	default:
		return nil, fmt.Errorf("unknown CONFIG_ENV: %s", env)
	}

	cfg := &Config{
		Env:              env,
		Port:             v.GetString("PORT"),
		PropertyID:       strings.TrimSpace(v.GetString("GA_PROPERTY_ID")),
		KeyFile:          strings.TrimSpace(v.GetString("GA_KEY_FILE")),
		DefaultStartDate: v.GetString("DEFAULT_START_DATE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if cfg.PropertyID == "" {
		return nil, ErrMissingProperty
	}
	if cfg.KeyFile == "" {
		return nil, ErrMissingKeyFile
	}

	return cfg, nil
}
