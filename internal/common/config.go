package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Store     StoreConfig
	OCR       OCRConfig
	LLM       LLMConfig
	Scheduler SchedulerConfig
}

// DatabaseConfig holds ledger-related configuration. When DSN is empty the
// daemon falls back to a local sqlite file under the data directory.
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StoreConfig holds content-store configuration
type StoreConfig struct {
	UploadDir string
	InboxDir  string // optional watched directory; empty disables the watcher
	ModelFile string // persisted LLM model list
}

// OCRConfig holds OCR adapter configuration
type OCRConfig struct {
	Endpoint    string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	CallTimeout time.Duration
}

// LLMConfig holds extraction adapter configuration
type LLMConfig struct {
	BaseURL       string
	APIKey        string
	Models        []string
	Temperature   float32
	CallTimeout   time.Duration
	RateCooldown  time.Duration
	MinFieldCount int
}

// SchedulerConfig holds pipeline scheduler configuration
type SchedulerConfig struct {
	SweepInterval  time.Duration
	Workers        int
	BatchSize      int
	StaleThreshold time.Duration
	StageTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("DB_SQLITE_PATH", "./data/housing.db"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Store: StoreConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./data/uploads"),
			InboxDir:  getEnv("INBOX_DIR", ""),
			ModelFile: getEnv("MODEL_FILE", "./data/models.json"),
		},
		OCR: OCRConfig{
			Endpoint:    getEnv("OCR_ENDPOINT", "http://localhost:8000/v1"),
			Model:       getEnv("OCR_MODEL", "rednote-hilab/dots.ocr"),
			MaxRetries:  getEnvAsInt("OCR_MAX_RETRIES", 3),
			RetryDelay:  getEnvAsDuration("OCR_RETRY_DELAY", 5*time.Second),
			CallTimeout: getEnvAsDuration("OCR_CALL_TIMEOUT", 5*time.Minute),
		},
		LLM: LLMConfig{
			BaseURL:       getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:        getEnv("LLM_API_KEY", ""),
			Models:        getEnvAsList("LLM_MODELS", []string{"google/gemini-2.0-flash-exp:free"}),
			Temperature:   getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			CallTimeout:   getEnvAsDuration("LLM_CALL_TIMEOUT", 2*time.Minute),
			RateCooldown:  getEnvAsDuration("LLM_RATE_COOLDOWN", time.Minute),
			MinFieldCount: getEnvAsInt("LLM_MIN_FIELD_COUNT", 3),
		},
		Scheduler: SchedulerConfig{
			SweepInterval:  getEnvAsDuration("SWEEP_INTERVAL", 3*time.Second),
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 3),
			BatchSize:      getEnvAsInt("PIPELINE_BATCH_SIZE", 10),
			// Must exceed STAGE_TIMEOUT or a slow worker gets re-claimed
			// while still running.
			StaleThreshold: getEnvAsDuration("STALE_THRESHOLD", 30*time.Minute),
			StageTimeout:   getEnvAsDuration("STAGE_TIMEOUT", 20*time.Minute),
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

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
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

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or DB_SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Store.UploadDir == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_DIR is required", ErrInvalidInput)
	}
	if c.OCR.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "OCR_ENDPOINT is required", ErrInvalidInput)
	}
	if len(c.LLM.Models) == 0 {
		return NewAppError("CONFIG_ERROR", "at least one LLM model is required", ErrInvalidInput)
	}
	if c.Scheduler.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Scheduler.StaleThreshold <= c.Scheduler.StageTimeout {
		return NewAppError("CONFIG_ERROR", "STALE_THRESHOLD must exceed STAGE_TIMEOUT", ErrInvalidInput)
	}
	return nil
}
