package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default values
const (
	DefaultPort            = "3000"
	DefaultQuoteBaseURL    = "https://api.twelvedata.com"
	DefaultNewsURLTemplate = "https://www.marketwatch.com/investing/stock/%s/news"
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultHTTPTimeout     = 10 * time.Second
	DefaultLogLevel        = "info"
)

// Config holds the application configuration
type Config struct {
	Port            string
	APIKey          string
	QuoteBaseURL    string
	NewsURLTemplate string
	UserAgent       string
	HTTPTimeout     time.Duration
	LogLevel        slog.Level
}

// New creates a new Config with values from environment variables or defaults.
// A .env file in the working directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	timeoutStr := getEnvOrDefault("HTTP_TIMEOUT", DefaultHTTPTimeout.String())
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT value: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT value: %s must be positive", timeoutStr)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnvOrDefault("LOG_LEVEL", DefaultLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}

	newsURLTemplate := getEnvOrDefault("NEWS_URL_TEMPLATE", DefaultNewsURLTemplate)
	if strings.Count(newsURLTemplate, "%s") != 1 {
		return nil, fmt.Errorf("NEWS_URL_TEMPLATE must contain exactly one %%s placeholder")
	}

	// The API key is not validated here; quote requests fail upstream without it
	return &Config{
		Port:            getEnvOrDefault("PORT", DefaultPort),
		APIKey:          os.Getenv("TWELVE_DATA_API_KEY"),
		QuoteBaseURL:    strings.TrimRight(getEnvOrDefault("QUOTE_BASE_URL", DefaultQuoteBaseURL), "/"),
		NewsURLTemplate: newsURLTemplate,
		UserAgent:       getEnvOrDefault("NEWS_USER_AGENT", DefaultUserAgent),
		HTTPTimeout:     timeout,
		LogLevel:        level,
	}, nil
}

// getEnvOrDefault returns the value of the environment variable or the default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
