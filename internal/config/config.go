package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"` // "openai" (hosted, or any OpenAI-compatible backend via LLM_BASE_URL)
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMBaseURL  string `env:"LLM_BASE_URL"` // optional, e.g. http://localhost:11434/v1 for a local Ollama server

	// Page fetching
	UserAgent       string `env:"USER_AGENT" envDefault:"web-summarizer/1.0"`
	FetchTimeout    int    `env:"FETCH_TIMEOUT_SECONDS" envDefault:"30"`
	MaxContentChars int    `env:"MAX_CONTENT_CHARS" envDefault:"48000"` // extracted text beyond this is truncated before summarization

	// Summary cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"noop"` // "redis" or "noop" (in-process only)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL_SECONDS" envDefault:"3600"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
