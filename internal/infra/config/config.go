package config

import (
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
)

const (
	defaultPollSchedule   = "@every 10m" // 600 seconds between polls
	defaultRequestTimeout = 30 * time.Second
)

// Credentials are the three tokens the bot cannot run without.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
}

// CheckTokens reports whether every credential is set.
func (c Credentials) CheckTokens() bool {
	return c.PracticumToken != "" && c.TelegramToken != "" && c.TelegramChatID != ""
}

// Missing returns the environment variable names of unset credentials.
func (c Credentials) Missing() []string {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	return missing
}

// AppConfig holds all configuration for the application
type AppConfig struct {
	Credentials    Credentials
	Endpoint       string
	PollSchedule   string // robfig/cron spec, e.g. "@every 10m"
	RequestTimeout time.Duration
	Verdicts       homework.Verdicts
	DatabaseURL    string // optional, enables the notification journal
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
// Credentials are not validated here; callers check them with CheckTokens.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Credentials: Credentials{
			PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
			TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
			TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		},
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = practicum.DefaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = defaultPollSchedule
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = timeout
	}

	cfg.Verdicts = homework.DefaultVerdicts()
	if path := os.Getenv("VERDICTS_FILE"); path != "" {
		verdicts, err := LoadVerdicts(path)
		if err != nil {
			return nil, err
		}
		cfg.Verdicts = verdicts
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
