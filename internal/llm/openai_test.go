package llm

import (
	"strings"
	"testing"

	"web-summarizer/internal/session"
)

func TestNewOpenAIClientRequiresKeyOrBaseURL(t *testing.T) {
	if _, err := NewOpenAIClient("", "", ""); err == nil {
		t.Error("expected error without api key or base url")
	}
	if _, err := NewOpenAIClient("sk-test", "", ""); err != nil {
		t.Errorf("expected hosted client to build, got %v", err)
	}
	// Local backends often need no key at all.
	if _, err := NewOpenAIClient("", "phi4-mini", "http://localhost:11434/v1"); err != nil {
		t.Errorf("expected local client to build, got %v", err)
	}
}

func TestFormatHistory(t *testing.T) {
	if got := formatHistory(nil); got != "(none)" {
		t.Errorf("formatHistory(nil) = %q", got)
	}

	got := formatHistory([]session.Turn{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	})
	want := "Human: q1\nAI: a1\nHuman: q2\nAI: a2"
	if got != want {
		t.Errorf("formatHistory = %q, want %q", got, want)
	}
}

func TestFollowupPromptCarriesRefusalContract(t *testing.T) {
	// The prompt must spell out the exact refusal literal the service
	// promises to clients.
	if !strings.Contains(followupPromptTemplate, Refusal) {
		t.Errorf("follow-up prompt does not contain the refusal literal %q", Refusal)
	}
}
