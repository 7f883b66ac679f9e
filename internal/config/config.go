package config

import (
	"fmt"
	"strings"

	apperrors "oper-review-backend/internal/errors"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limit in limiter format, e.g. "600-M". Empty disables limiting.
	RateLimit string `mapstructure:"RATE_LIMIT"`

	// Report template configuration
	StrictPluginValidation bool `mapstructure:"STRICT_PLUGIN_VALIDATION"`

	// Org tree configuration
	RequireSingleRoot bool `mapstructure:"REQUIRE_SINGLE_ROOT"`

	// Seeding
	SeedDataDir string `mapstructure:"SEED_DATA_DIR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive either whole or split with the spaces kept
	config.AllowedOrigins = splitList(strings.Join(config.AllowedOrigins, ","))

	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "oper_review")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "./data/review.db")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:4200", "http://localhost:8080"})

	v.SetDefault("RATE_LIMIT", "600-M")
	v.SetDefault("STRICT_PLUGIN_VALIDATION", false)
	v.SetDefault("REQUIRE_SINGLE_ROOT", false)
	v.SetDefault("SEED_DATA_DIR", "scripts/data")
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == DriverSQLite {
		return config.SQLitePath + "?_pragma=foreign_keys(1)"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case DriverPostgres:
		if config.DatabaseName == "" {
			return apperrors.NewConfigurationError("database name is required")
		}
	case DriverSQLite:
		if config.SQLitePath == "" && config.DatabaseURL == "" {
			return apperrors.NewConfigurationError("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unsupported DATABASE_DRIVER %q: must be postgres or sqlite", config.DatabaseDriver))
	}

	if config.Port == "" {
		return apperrors.NewConfigurationError("PORT is required")
	}

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
