package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"web-summarizer/internal/agent"
	"web-summarizer/internal/cache"
	"web-summarizer/internal/config"
	"web-summarizer/internal/fetch"
	"web-summarizer/internal/llm"
	"web-summarizer/internal/logger"
	"web-summarizer/internal/session"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Session session.Store
	Cache   cache.Cache
	Fetcher fetch.Fetcher
	LLM     llm.Client
	Agent   *agent.Agent
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	summaryCache, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}

	fetcher := fetch.NewPageFetcher(cfg.UserAgent, time.Duration(cfg.FetchTimeout)*time.Second)
	sess := session.NewMemoryStore()

	ag := agent.New(agent.Config{
		Fetcher:         fetcher,
		LLM:             llmClient,
		Session:         sess,
		Cache:           summaryCache,
		Log:             log,
		MaxContentChars: cfg.MaxContentChars,
		CacheTTL:        time.Duration(cfg.CacheTTL) * time.Second,
	})

	return Deps{
		Config:  cfg,
		Log:     log,
		Session: sess,
		Cache:   summaryCache,
		Fetcher: fetcher,
		LLM:     llmClient,
		Agent:   ag,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), cfg.LLMBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI-compatible LLM client", "model", cfg.LLMModel, "base_url", cfg.LLMBaseURL)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid option: openai)", cfg.LLMProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
		log.Info("using Redis summary cache", "addr", cfg.RedisAddr)
		return c, nil
	case "noop":
		log.Info("summary caching disabled")
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: redis, noop)", cfg.CacheProvider)
	}
}
