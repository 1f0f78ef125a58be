package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Data backend selection: "file", "sqlite" or "memory"
	DataBackend string
	DataDir     string
	SQLiteDB    string

	// AMQP change events (optional; empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Rate limiting for mutating HTTP requests
	RateLimitPerMinute int

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend: getEnv("DATA_BACKEND", "file"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		SQLiteDB:    getEnv("SQLITE_DB_PATH", "./data/racha.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "racha"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate checks the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "file", "sqlite", "memory":
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be file, sqlite or memory", c.DataBackend))
	}

	if c.DataBackend == "file" && strings.TrimSpace(c.DataDir) == "" {
		problems = append(problems, "data dir is required for the file backend")
	}
	if c.DataBackend == "sqlite" && strings.TrimSpace(c.SQLiteDB) == "" {
		problems = append(problems, "sqlite db path is required for the sqlite backend")
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			problems = append(problems, fmt.Sprintf("invalid AMQP url %q", c.AMQPURL))
		}
	}

	if c.RateLimitPerMinute < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimitPerMinute))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
