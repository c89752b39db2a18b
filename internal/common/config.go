package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Vision    VisionConfig
	LLM       LLMConfig
	Transport TransportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// VisionConfig holds OCR-provider configuration
type VisionConfig struct {
	BaseURL          string
	OperationBaseURL string
	APIKey           string
	FolderID         string
	Languages        string
	Model            string
	Timeout          time.Duration
	MaxRetries       uint64
}

// LLMConfig holds completion-provider configuration
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	ModelURI    string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  uint64
}

// TransportConfig holds the retry/backoff policy shared by provider clients
type TransportConfig struct {
	BaseDelay time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Vision: VisionConfig{
			BaseURL:          getEnv("VISION_BASE_URL", "https://ocr.api.cloud.yandex.net/ocr/v1"),
			OperationBaseURL: getEnv("VISION_OPERATION_BASE_URL", "https://operation.api.cloud.yandex.net/operations"),
			APIKey:           getEnv("VISION_API_KEY", ""),
			FolderID:         getEnv("VISION_FOLDER_ID", ""),
			Languages:        getEnv("VISION_LANGUAGES", "ru,en"),
			Model:            getEnv("VISION_MODEL", "page"),
			Timeout:          getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
			MaxRetries:       getEnvAsUint64("VISION_MAX_RETRIES", 2),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("LLM_BASE_URL", "https://llm.api.cloud.yandex.net/foundationModels/v1"),
			APIKey:      getEnv("LLM_API_KEY", ""),
			ModelURI:    getEnv("LLM_MODEL_URI", ""),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			MaxTokens:   int(getEnvAsInt32("LLM_MAX_TOKENS", 2000)),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			MaxRetries:  getEnvAsUint64("LLM_MAX_RETRIES", 2),
		},
		Transport: TransportConfig{
			BaseDelay: getEnvAsDuration("RETRY_BASE_DELAY", 500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return Validationf("DB_URL is required")
	}
	if c.Vision.APIKey == "" {
		return Validationf("VISION_API_KEY is required")
	}
	if c.LLM.APIKey == "" {
		return Validationf("LLM_API_KEY is required")
	}
	if c.LLM.ModelURI == "" {
		return Validationf("LLM_MODEL_URI is required")
	}
	return nil
}
