// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTSecretLength = 32
)

// Storage backend selectors.
const (
	StorageBackendRedis    = "redis"
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
	JwtSecretKey   string      `mapstructure:"JWT_SECRET_KEY"`
	FrontendURL    string      `mapstructure:"FRONTEND_URL"`
}

// StorageConfig selects the document store backend.
type StorageConfig struct {
	Backend string `mapstructure:"BACKEND"`
}

// DatabaseConfig holds PostgreSQL connection details for the postgres
// document store backend.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST"`
	Port           int    `mapstructure:"PORT"`
	User           string `mapstructure:"USER"`
	Password       string `mapstructure:"PASSWORD"`
	Name           string `mapstructure:"NAME"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS"`
	SSLMode        string `mapstructure:"SSL_MODE"`
}

// URL returns a postgres:// connection URL suitable for golang-migrate and
// other URL-based database tools.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS"`
	Password     string `mapstructure:"PASSWORD"`
	DB           int    `mapstructure:"DB"`
	UseTLS       bool   `mapstructure:"USE_TLS"`
	PoolSize     int    `mapstructure:"POOL_SIZE"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS"`
}

// EmailConfig holds configuration for sending invitation emails.
type EmailConfig struct {
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	FromAddress  string `mapstructure:"FROM_ADDRESS"`
	FromName     string `mapstructure:"FROM_NAME"`
}

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER"`
	Storage  StorageConfig  `mapstructure:"STORAGE"`
	Database DatabaseConfig `mapstructure:"DB"`
	Redis    RedisConfig    `mapstructure:"REDIS"`
	Email    EmailConfig    `mapstructure:"EMAIL"`
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}
	return nil
}

// LoadConfig reads configuration from environment variables and applies
// defaults suitable for local development.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER.ENVIRONMENT", string(EnvDevelopment))
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("STORAGE.BACKEND", StorageBackendRedis)
	v.SetDefault("DB.HOST", "localhost")
	v.SetDefault("DB.PORT", 5432)
	v.SetDefault("DB.SSL_MODE", "disable")
	v.SetDefault("DB.MAX_CONNECTIONS", 10)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.POOL_SIZE", 10)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 2)

	bindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"SERVER.FRONTEND_URL", "FRONTEND_URL"},
		{"STORAGE.BACKEND", "STORAGE_BACKEND"},
		{"DB.HOST", "DB_HOST"},
		{"DB.PORT", "DB_PORT"},
		{"DB.USER", "DB_USER"},
		{"DB.PASSWORD", "DB_PASSWORD"},
		{"DB.NAME", "DB_NAME"},
		{"DB.MAX_CONNECTIONS", "DB_MAX_CONNECTIONS"},
		{"DB.SSL_MODE", "DB_SSL_MODE"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"REDIS.POOL_SIZE", "REDIS_POOL_SIZE"},
		{"REDIS.MIN_IDLE_CONNS", "REDIS_MIN_IDLE_CONNS"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
	}
	if err := bindEnvVars(v, bindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var problems []string

	switch c.Storage.Backend {
	case StorageBackendRedis, StorageBackendPostgres, StorageBackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage backend %q", c.Storage.Backend))
	}

	if c.Server.Environment == EnvProduction {
		if len(c.Server.JwtSecretKey) < minJWTSecretLength {
			problems = append(problems, fmt.Sprintf("JWT_SECRET_KEY must be at least %d characters in production", minJWTSecretLength))
		}
		if c.Storage.Backend == StorageBackendMemory {
			problems = append(problems, "memory storage backend is not allowed in production")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
