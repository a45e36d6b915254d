package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"web-summarizer/internal/agent"
	"web-summarizer/internal/app"
	"web-summarizer/internal/httputil"
	"web-summarizer/internal/urldetect"
)

type summarizeRequest struct {
	Input string `json:"input" validate:"required"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/summarize", summarizeHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("web summarizer listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

// summarizeHandler is the single dispatch point: URL input runs the
// summarize pipeline, anything else is treated as a follow-up question
// against the cached summary.
func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		ctx := r.Context()
		input := strings.TrimSpace(req.Input)

		if url, ok := urldetect.Extract(input); ok {
			deps.Log.Info("summarizing url", "url", url)
			res, err := deps.Agent.SummarizeURL(ctx, url)
			if err != nil {
				httputil.Fail(deps.Log, w, "summarization failed", err, http.StatusInternalServerError)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, res)
			return
		}

		deps.Log.Info("answering follow-up", "question", input)
		res, err := deps.Agent.AnswerFollowup(ctx, input)
		if err != nil {
			if errors.Is(err, agent.ErrNoContext) {
				httputil.Fail(deps.Log, w, "No context available. Please provide a URL first.", err, http.StatusBadRequest)
				return
			}
			httputil.Fail(deps.Log, w, "follow-up failed", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}
