package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratefy/ratefy/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration derived from environment variables.
type Config struct {
	HTTPPort           string
	LogLevel           string
	PublicRateLimitRPS int
	// CurrencyGroup restricts which currencies the API accepts.
	CurrencyGroup   domain.CurrencyGroup
	DisplayPlaces   int32
	ShutdownTimeout time.Duration
}

// Load reads environment variables using viper and returns a typed config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	bindEnv(v, "port", "PORT", "RATEFY_PORT")
	bindEnv(v, "log_level", "LOG_LEVEL", "RATEFY_LOG_LEVEL")
	bindEnv(v, "public_rate_limit_rps", "PUBLIC_RATE_LIMIT_RPS", "RATEFY_PUBLIC_RATE_LIMIT_RPS")
	bindEnv(v, "currency_group", "CURRENCY_GROUP", "RATEFY_CURRENCY_GROUP")
	bindEnv(v, "display_places", "DISPLAY_PLACES", "RATEFY_DISPLAY_PLACES")
	bindEnv(v, "shutdown_timeout", "SHUTDOWN_TIMEOUT", "RATEFY_SHUTDOWN_TIMEOUT")

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("public_rate_limit_rps", 20)
	v.SetDefault("currency_group", "all")
	v.SetDefault("display_places", 2)
	v.SetDefault("shutdown_timeout", "15s")

	group, err := domain.ParseCurrencyGroup(v.GetString("currency_group"))
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENCY_GROUP: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	places := v.GetInt("display_places")
	if places < 0 || places > 12 {
		return nil, fmt.Errorf("DISPLAY_PLACES must be between 0 and 12, got %d", places)
	}

	cfg := &Config{
		HTTPPort:           v.GetString("port"),
		LogLevel:           v.GetString("log_level"),
		PublicRateLimitRPS: max(v.GetInt("public_rate_limit_rps"), 1),
		CurrencyGroup:      group,
		DisplayPlaces:      int32(places),
		ShutdownTimeout:    shutdownTimeout,
	}

	if cfg.HTTPPort == "" {
		return nil, fmt.Errorf("PORT is required")
	}

	return cfg, nil
}

func bindEnv(v *viper.Viper, key string, names ...string) {
	args := append([]string{key}, names...)
	_ = v.BindEnv(args...)
}
