// Package agent sequences the two pipelines behind the /summarize endpoint.
// URL input is fetched, summarized, and labeled with a topic before becoming
// the session context; non-URL input is answered from the cached summary
// plus the recent turn window.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"web-summarizer/internal/cache"
	"web-summarizer/internal/fetch"
	"web-summarizer/internal/llm"
	"web-summarizer/internal/session"
	"web-summarizer/internal/topic"
)

// ErrNoContext is returned when a follow-up question arrives before any URL
// has been summarized.
var ErrNoContext = errors.New("no summary context available")

// SummaryResult is the response body for the URL path.
type SummaryResult struct {
	Summary   string `json:"summary"`
	MainTopic string `json:"main_topic"`
}

// FollowupResult is the response body for the follow-up path.
type FollowupResult struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// Config bundles the agent's collaborators.
type Config struct {
	Fetcher         fetch.Fetcher
	LLM             llm.Client
	Session         session.Store
	Cache           cache.Cache
	Log             *slog.Logger
	MaxContentChars int
	CacheTTL        time.Duration
}

// Agent routes classified input through the summarize or follow-up pipeline
// and owns all session-state writes.
type Agent struct {
	fetcher         fetch.Fetcher
	llm             llm.Client
	session         session.Store
	cache           cache.Cache
	log             *slog.Logger
	maxContentChars int
	cacheTTL        time.Duration

	group singleflight.Group
}

// New builds an Agent. A nil Cache defaults to the no-op cache.
func New(cfg Config) *Agent {
	c := cfg.Cache
	if c == nil {
		c = cache.NewNoOpCache()
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Agent{
		fetcher:         cfg.Fetcher,
		llm:             cfg.LLM,
		session:         cfg.Session,
		cache:           c,
		log:             log,
		maxContentChars: cfg.MaxContentChars,
		cacheTTL:        cfg.CacheTTL,
	}
}

// SummarizeURL runs the full summarize pipeline for a URL. Session state is
// written only after every step has succeeded, so a failing pipeline leaves
// the previous context intact. Concurrent calls for the same URL share one
// pipeline execution.
func (a *Agent) SummarizeURL(ctx context.Context, url string) (SummaryResult, error) {
	key := cache.Key(url)

	if entry, err := a.cache.GetSummary(ctx, key); err != nil {
		a.log.Warn("summary cache lookup failed", "url", url, "err", err)
	} else if entry != nil {
		a.log.Info("summary cache hit", "url", url)
		a.session.SetSummary(entry.Summary)
		return SummaryResult{Summary: entry.Summary, MainTopic: entry.MainTopic}, nil
	}

	v, err, _ := a.group.Do(key, func() (any, error) {
		return a.runSummarizePipeline(ctx, url, key)
	})
	if err != nil {
		return SummaryResult{}, err
	}
	return v.(SummaryResult), nil
}

func (a *Agent) runSummarizePipeline(ctx context.Context, url, key string) (SummaryResult, error) {
	log := a.log.With("pipeline_id", uuid.New().String(), "url", url)

	log.Info("fetching page")
	page, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("fetch page: %w", err)
	}

	content := page.Text
	if a.maxContentChars > 0 && len(content) > a.maxContentChars {
		log.Info("truncating oversized content", "chars", len(content), "max_chars", a.maxContentChars)
		content = truncateRunes(content, a.maxContentChars)
	}

	log.Info("summarizing content", "title", page.Title, "chars", len(content))
	summary, err := a.llm.Summarize(ctx, content)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("summarize: %w", err)
	}

	log.Info("extracting topic")
	rawTopic, err := a.llm.Topic(ctx, summary)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("extract topic: %w", err)
	}
	mainTopic := topic.Normalize(rawTopic)

	// All steps succeeded; new context replaces the old one and invalidates
	// the follow-up history.
	a.session.SetSummary(summary)

	entry := &cache.Entry{Summary: summary, MainTopic: mainTopic}
	if err := a.cache.SetSummary(ctx, key, entry, a.cacheTTL); err != nil {
		log.Warn("failed to cache summary", "err", err)
	}

	return SummaryResult{Summary: summary, MainTopic: mainTopic}, nil
}

// AnswerFollowup answers a question strictly from the cached summary and the
// recent turn window. The answered turn joins the window afterwards.
func (a *Agent) AnswerFollowup(ctx context.Context, question string) (FollowupResult, error) {
	if !a.session.HasSummary() {
		return FollowupResult{}, ErrNoContext
	}

	summary := a.session.Summary()
	history := a.session.Turns()

	answer, err := a.llm.Answer(ctx, question, summary, history)
	if err != nil {
		return FollowupResult{}, fmt.Errorf("answer follow-up: %w", err)
	}

	a.session.AppendTurn(question, answer)
	return FollowupResult{Question: question, Response: answer}, nil
}

// truncateRunes cuts s to at most max bytes without splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
