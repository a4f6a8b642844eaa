package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Store identity / presentation
	StoreName      string `mapstructure:"STORE_NAME"`
	CurrencyPrefix string `mapstructure:"CURRENCY_PREFIX"`

	// Session
	SessionCookie   string `mapstructure:"SESSION_COOKIE"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	// Optional backing services. When empty the register runs self-contained:
	// static catalog, in-memory session ledgers.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	RedisURL    string `mapstructure:"REDIS_URL"`

	// Catalog seed prices. Per-item configuration, not a shared constant —
	// the DB catalog, when enabled, is seeded from these on first run.
	DrinkPrice string `mapstructure:"DRINK_PRICE"`
	AddOnPrice string `mapstructure:"ADD_ON_PRICE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_NAME", "Beth's Fruit Shake 'N Halo-Halo")
	viper.SetDefault("CURRENCY_PREFIX", "P")
	viper.SetDefault("SESSION_COOKIE", "shakepos_session")
	viper.SetDefault("SESSION_TTL_HOURS", 12)
	viper.SetDefault("DRINK_PRICE", "35.00")
	viper.SetDefault("ADD_ON_PRICE", "10.00")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
