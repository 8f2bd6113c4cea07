package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"timeshare_manager/internal/utils"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration loaded from the environment
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// The signing secret has no default on purpose; startup fails without it
	JWTSecret   string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTIssuer   string        `envconfig:"JWT_ISSUER" default:"timeshare-manager"`
	JWTAudience string        `envconfig:"JWT_AUDIENCE" default:"timeshare-clients"`
	TokenTTL    time.Duration `envconfig:"JWT_TOKEN_TTL" default:"1h"`

	PasswordMinLength        int  `envconfig:"PASSWORD_MIN_LENGTH" default:"8"`
	PasswordRequireUppercase bool `envconfig:"PASSWORD_REQUIRE_UPPERCASE" default:"true"`
	PasswordRequireLowercase bool `envconfig:"PASSWORD_REQUIRE_LOWERCASE" default:"true"`
	PasswordRequireDigit     bool `envconfig:"PASSWORD_REQUIRE_DIGIT" default:"true"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET_KEY must not be empty")
	}
	return &cfg, nil
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PasswordPolicy builds the password policy from configuration
func (c *Config) PasswordPolicy() utils.PasswordPolicy {
	return utils.PasswordPolicy{
		MinLength:        c.PasswordMinLength,
		RequireUppercase: c.PasswordRequireUppercase,
		RequireLowercase: c.PasswordRequireLowercase,
		RequireDigit:     c.PasswordRequireDigit,
	}
}

// AllowedOrigins splits the CORS origin list
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}
