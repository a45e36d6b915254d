package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Go Concurrency Patterns</title></head>
<body>
<article>
<h1>Go Concurrency Patterns</h1>
<p>Goroutines are lightweight threads managed by the Go runtime. They make it
practical to structure programs around independently executing functions.</p>
<p>Channels connect goroutines and let them synchronize without explicit locks.
Select statements multiplex over multiple channel operations.</p>
<p>Pipelines compose stages connected by channels, where each stage is a group
of goroutines running the same function on inbound values.</p>
</article>
</body>
</html>`

func newFetcher() *PageFetcher {
	return NewPageFetcher("test-agent/1.0", 5*time.Second)
}

func TestFetchExtractsArticleText(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	page, err := newFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if gotUserAgent != "test-agent/1.0" {
		t.Errorf("expected configured User-Agent, got %q", gotUserAgent)
	}
	if !strings.Contains(page.Text, "Goroutines are lightweight threads") {
		t.Errorf("expected extracted text to contain article body, got %q", page.Text)
	}
	if strings.Contains(page.Text, "<p>") {
		t.Error("expected extracted text to be free of markup")
	}
	if page.URL != srv.URL {
		t.Errorf("expected page URL %q, got %q", srv.URL, page.URL)
	}
}

func TestFetchSparsePageFallsBackToParagraphs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Tiny</title></head><body><p>One lonely paragraph.</p></body></html>`))
	}))
	defer srv.Close()

	page, err := newFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !strings.Contains(page.Text, "One lonely paragraph.") {
		t.Errorf("expected fallback paragraph text, got %q", page.Text)
	}
}

func TestFetchNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestFetchEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head></head><body></body></html>`))
	}))
	defer srv.Close()

	_, err := newFetcher().Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newFetcher().Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := newFetcher().Fetch(context.Background(), "http://\x00invalid")
	if err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
