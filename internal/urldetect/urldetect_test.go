package urldetect

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		wantOK  bool
	}{
		{"plain https", "https://example.com/article", "https://example.com/article", true},
		{"plain http", "http://example.com", "http://example.com", true},
		{"surrounding whitespace", "  https://example.com  ", "https://example.com", true},
		{"embedded in sentence", "please summarize https://example.com/post for me", "https://example.com/post", true},
		{"trailing period", "see https://example.com/page.", "https://example.com/page", true},
		{"ip literal", "http://192.168.1.10:8080/status", "http://192.168.1.10:8080/status", true},
		{"query and fragment", "https://example.com/a?b=c#d", "https://example.com/a?b=c#d", true},
		{"missing scheme", "example.com/article", "", false},
		{"www without scheme", "www.example.com", "", false},
		{"other scheme", "ftp://example.com/file", "", false},
		{"mailto", "mailto:someone@example.com", "", false},
		{"question", "What is the main argument?", "", false},
		{"scheme only", "https://", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := Extract(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if url != tt.wantURL {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, url, tt.wantURL)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://example.com") {
		t.Error("expected https URL to classify as URL")
	}
	if IsURL("tell me more about the second point") {
		t.Error("expected follow-up text to classify as non-URL")
	}
}
