package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

const (
	defaultTimeout = 30 * time.Second
	maxRedirects   = 10
	maxBodyBytes   = 10 << 20 // 10MB cap on downloaded bodies
)

// PageFetcher retrieves pages over HTTP and extracts their readable text.
// HTML goes through readability with a goquery fallback; PDF responses are
// extracted page by page.
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewPageFetcher builds a fetcher with the given User-Agent and timeout.
func NewPageFetcher(userAgent string, timeout time.Duration) *PageFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PageFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

func (f *PageFetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, fmt.Errorf("get %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Page{}, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/pdf") || strings.HasSuffix(strings.ToLower(parsedURL.Path), ".pdf") {
		return f.extractPDF(rawURL, parsedURL, data)
	}
	return f.extractHTML(rawURL, parsedURL, data)
}

func (f *PageFetcher) extractHTML(rawURL string, parsedURL *url.URL, data []byte) (Page, error) {
	article, err := readability.FromReader(bytes.NewReader(data), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return Page{
			URL:   rawURL,
			Title: article.Title,
			Text:  strings.TrimSpace(article.TextContent),
		}, nil
	}

	// Readability gives up on sparse pages; scrape paragraph text directly.
	doc, docErr := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if docErr != nil {
		if err != nil {
			return Page{}, fmt.Errorf("extract article: %w", err)
		}
		return Page{}, fmt.Errorf("parse document: %w", docErr)
	}

	var sb strings.Builder
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	text := strings.TrimSpace(sb.String())
	if text == "" {
		text = strings.TrimSpace(doc.Find("body").Text())
	}
	if text == "" {
		return Page{}, fmt.Errorf("get %s: %w", rawURL, ErrEmptyContent)
	}
	return Page{
		URL:   rawURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  text,
	}, nil
}

func (f *PageFetcher) extractPDF(rawURL string, parsedURL *url.URL, data []byte) (Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Page{}, fmt.Errorf("parse pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return Page{}, fmt.Errorf("get %s: %w", rawURL, ErrEmptyContent)
	}
	return Page{
		URL:   rawURL,
		Title: "PDF Document: " + parsedURL.Path,
		Text:  text,
	}, nil
}
