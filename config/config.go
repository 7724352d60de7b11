package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Supported generation providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds application configuration values
type Config struct {
	ServerPort         string
	DB                 DatabaseConfig
	LLM                LLMConfig
	AuthJWTSecret      string // empty disables token auth on /api
	RateLimitPerMinute int    // 0 disables the per-IP limiter
}

// DatabaseConfig describes the pooled connection the executor runs queries on.
type DatabaseConfig struct {
	Driver       string
	Host         string
	User         string
	Password     string
	Name         string
	Port         string
	DSN          string // used as-is for sqlite3 and pgx
	MaxOpenConns int
	QueryTimeout time.Duration // 0 means no deadline
}

// LLMConfig selects and configures the text-generation provider.
type LLMConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	Timeout       time.Duration // 0 means no deadline
}

// LoadConfig loads configuration from environment variables.
// It uses a .env file for local development if present (ignores it for production).
func LoadConfig() (*Config, error) {
	customLog.Println("Loading configuration from environment variables...")

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			customLog.Warnf("Warning: Error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		ServerPort: strings.TrimPrefix(getEnv("SERVER_PORT", "3001"), ":"),
		DB: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
			Host:         getEnv("DB_HOST", "localhost"),
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_DATABASE", ""),
			Port:         getEnv("DB_PORT", "3306"),
			DSN:          getEnv("DB_DSN", ""),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 0),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
			GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:       getDurationEnv("LLM_TIMEOUT", 0),
		},
		AuthJWTSecret:      getEnv("AUTH_JWT_SECRET", ""),
		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	customLog.Printf("Configuration loaded successfully. Port: %s, DB driver: %s, LLM provider: %s",
		cfg.ServerPort, cfg.DB.Driver, cfg.LLM.Provider)
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMySQL:
	case DriverSQLite, DriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN must be set when DB_DRIVER is %q", c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.MaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}

	if err := c.LLM.Validate(); err != nil {
		return err
	}

	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// Validate checks that the selected provider has its credential.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY environment variable must be set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY environment variable must be set")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.Provider)
	}
	return nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		customLog.Warnf("Invalid %s '%s'. Using default %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value < 0 {
		customLog.Warnf("Invalid %s '%s'. Using default %v. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}
