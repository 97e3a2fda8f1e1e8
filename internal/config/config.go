package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string
	GroqAPIKey       string
	GroqModel        string
	GroqBaseURL      string
	LLMTemperature   float64
	LLMMaxTokens     int
	QueueWorkers     int
	QueueBuf         int
	JobMaxDuration   time.Duration
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	AnalyzeRPM       int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		slog.Warn("bad int env, using default", "key", key, "value", v)
	}
	return def
}

func mustFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
		slog.Warn("bad float env, using default", "key", key, "value", v)
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
		slog.Warn("bad duration env, using default", "key", key, "value", v)
	}
	return def
}

func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			slog.Debug("failed to load environment file", "path", envFile, "error", err)
		}
	}
}

func Load() Config {
	loadEnvFiles()
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8000"),
		GroqAPIKey:       getenv("GROQ_API_KEY", ""),
		GroqModel:        getenv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:      getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMTemperature:   mustFloat("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:     mustInt("LLM_MAX_TOKENS", 1024),
		QueueWorkers:     mustInt("QUEUE_WORKERS", 4),
		QueueBuf:         mustInt("QUEUE_BUFFER", 256),
		JobMaxDuration:   mustDuration("JOB_MAX_DURATION", 0),
		RetryMaxAttempts: mustInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:   mustDuration("RETRY_BASE_DELAY", 15*time.Second),
		AnalyzeRPM:       mustInt("ANALYZE_RPM", 10),
	}
}
