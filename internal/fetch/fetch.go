package fetch

import (
	"context"
	"errors"
)

// ErrEmptyContent is returned when a page yields no extractable text.
var ErrEmptyContent = errors.New("no extractable content")

// Page is the textual content retrieved from a URL.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Fetcher retrieves the readable text of a web page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Page, error)
}
