package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "standup-api-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	DatabaseHost     string        `mapstructure:"DB_HOST"`
	DatabasePort     string        `mapstructure:"DB_PORT"`
	DatabaseUser     string        `mapstructure:"DB_USER"`
	DatabasePassword string        `mapstructure:"DB_PASSWORD"`
	DatabaseName     string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string        `mapstructure:"DB_SSL_MODE"`
	Local            bool          `mapstructure:"LOCAL"`
	MaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	QueryTimeout     time.Duration `mapstructure:"DB_QUERY_TIMEOUT"`
	AutoMigrate      bool          `mapstructure:"AUTO_MIGRATE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Cache configuration
	CacheBackend string        `mapstructure:"CACHE_BACKEND"`
	CacheSize    int           `mapstructure:"CACHE_SIZE"`
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
	RedisURL     string        `mapstructure:"REDIS_URL"`

	// Metrics configuration
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
	MetricsPort    string `mapstructure:"METRICS_PORT"`

	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads configuration using the given viper instance
func LoadWith(v *viper.Viper) (*Config, error) {
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

	// LOCAL development databases run without TLS
	if config.Local {
		config.DatabaseSSLMode = "disable"
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	} else {
		dsn, err := withSSLMode(config.DatabaseURL, config.DatabaseSSLMode, config.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		config.DatabaseURL = dsn
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "4000")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "standups")
	v.SetDefault("DB_SSL_MODE", "require")
	v.SetDefault("LOCAL", false)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("AUTO_MIGRATE", true)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// Cache defaults
	v.SetDefault("CACHE_BACKEND", "noop")
	v.SetDefault("CACHE_SIZE", 1000)
	v.SetDefault("CACHE_TTL", "1m")
	v.SetDefault("REDIS_URL", "")

	// Metrics defaults
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PORT", "9090")

	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

// withSSLMode sets sslmode on a postgres URL or keyword/value DSN. An sslmode
// already in the DSN is kept unless force is set.
func withSSLMode(dsn, mode string, force bool) (string, error) {
	if !strings.Contains(dsn, "://") {
		if strings.Contains(dsn, "sslmode=") && !force {
			return dsn, nil
		}
		// the last sslmode keyword wins
		return strings.TrimSpace(dsn) + " sslmode=" + mode, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	q := u.Query()
	if q.Get("sslmode") != "" && !force {
		return dsn, nil
	}
	q.Set("sslmode", mode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func validate(config *Config) error {
	if config.Port == "" {
		return fmt.Errorf("missing PORT environment variable")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.CacheBackend {
	case "noop", "lru":
	case "redis":
		if config.RedisURL == "" {
			return apperrors.ErrRedisURLMissing
		}
	default:
		return fmt.Errorf("unknown cache backend %q", config.CacheBackend)
	}

	if config.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
