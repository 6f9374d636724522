package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration. There is deliberately no default secret: the server
	// refuses to start without one supplied from the environment.
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	TokenExpiryHrs int    `mapstructure:"TOKEN_EXPIRY_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiting. RedisURL is optional; when empty the limiter keeps its
	// counters in process memory.
	RedisURL           string `mapstructure:"REDIS_URL"`
	RateLimitMax       int    `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindowSec int    `mapstructure:"RATE_LIMIT_WINDOW_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "hockey_stats")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Token defaults
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 168) // 7 days

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Rate limiting defaults
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_LIMIT_MAX", 300)
	viper.SetDefault("RATE_LIMIT_WINDOW_SEC", 60)
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

func validate(config *Config) error {
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.RateLimitMax < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	if config.RateLimitWindowSec < 1 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SEC must be positive")
	}

	return nil
}

// TokenExpiry returns the configured token lifetime
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.TokenExpiryHrs) * time.Hour
}

// RateLimitWindow returns the configured rate limit window
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
