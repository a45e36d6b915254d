package llm

import (
	"context"

	"web-summarizer/internal/session"
)

// Refusal is the exact answer the model must give when a follow-up question
// cannot be answered from the cached summary. User-visible contract; do not
// reword.
const Refusal = "I don't know based on the summary."

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	// Summarize produces a polite, concise summary of page content in a
	// single call. No chunking, no refinement loop.
	Summarize(ctx context.Context, content string) (string, error)

	// Topic produces a raw short topic line for a summary. Callers must not
	// trust the shape of the output; see the topic package.
	Topic(ctx context.Context, summary string) (string, error)

	// Answer responds to a question using only the given summary and the
	// prior turns. When the summary does not contain the answer, the reply
	// starts with Refusal.
	Answer(ctx context.Context, question, summary string, history []session.Turn) (string, error)
}
