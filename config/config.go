package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EngineBolt     = "bolt"
	EnginePostgres = "postgres"

	devJWTSecret = "dev-secret-change-me"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Server      ServerConfig
	Store       StoreConfig
	Auth        AuthConfig
	Seed        SeedConfig
	Email       EmailConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Host              string
	Port              int
	AllowedOrigins    []string
	AuthRatePerMinute int
}

// StoreConfig selects the key-value engine. Path is used by bolt, DatabaseURL by postgres.
type StoreConfig struct {
	Engine      string
	Path        string
	DatabaseURL string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

type SeedConfig struct {
	Dataset string
	OnStart bool
}

type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
// Outside production a .env file is loaded first when present.
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")

	// In production the environment is authoritative and .env is usually absent.
	if env != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Host:              getEnv("HOST", "127.0.0.1"),
			Port:              getEnvInt("PORT", 8080),
			AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
			AuthRatePerMinute: getEnvInt("AUTH_RATE_PER_MINUTE", 30),
		},
		Store: StoreConfig{
			Engine:      strings.ToLower(getEnv("STORE_ENGINE", EngineBolt)),
			Path:        getEnv("STORE_PATH", "./data/dancemode"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
			TokenExpiry: time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 720)) * time.Hour,
		},
		Seed: SeedConfig{
			Dataset: getEnv("SEED_DATASET", "nightlife"),
			OnStart: getEnvBool("SEED_ON_START", true),
		},
		Email: EmailConfig{
			Provider:           getEnv("EMAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           getEnv("EMAIL_FROM_NAME", "Dance Events"),
			AWSRegion:          getEnv("AWS_REGION", "eu-central-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultLogFormat(env)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Store.Engine {
	case EngineBolt:
		if c.Store.Path == "" {
			return errors.New("STORE_PATH is required for the bolt engine")
		}
	case EnginePostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres engine")
		}
	default:
		return fmt.Errorf("unknown STORE_ENGINE %q (want %s or %s)", c.Store.Engine, EngineBolt, EnginePostgres)
	}
	if c.Environment == "production" && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == devJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Auth.TokenExpiry <= 0 {
		return errors.New("JWT_EXPIRY_HOURS must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func defaultLogFormat(env string) string {
	if env == "production" {
		return "json"
	}
	return "console"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, value, fallback)
		return fallback
	}
	return parsed
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
