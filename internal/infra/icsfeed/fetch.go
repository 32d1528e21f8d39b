package icsfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultFetchTimeout = 15 * time.Second

// Fetcher loads an ICS payload from an http(s) URL or a local file. HTTP
// sources are fetched with ETag / Last-Modified revalidation and the last body
// is reused on 304.
type Fetcher struct {
	source string
	client *http.Client

	mu           sync.Mutex
	etag         string
	lastModified string
	lastBody     []byte
}

func NewFetcher(source string, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Fetcher{source: source, client: client}
}

func (f *Fetcher) Source() string {
	return redactURL(f.source)
}

func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if isHTTP(f.source) {
		return f.fetchHTTP(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(strings.TrimPrefix(f.source, "file://"))
	if err != nil {
		return nil, fmt.Errorf("read ics file: %w", err)
	}
	return body, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build ics request: %w", err)
	}
	req.Header.Set("Accept", "text/calendar")

	f.mu.Lock()
	if f.lastBody != nil {
		if f.etag != "" {
			req.Header.Set("If-None-Match", f.etag)
		}
		if f.lastModified != "" {
			req.Header.Set("If-Modified-Since", f.lastModified)
		}
	}
	f.mu.Unlock()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ics %s: %w", redactURL(f.source), err)
	}
	defer resp.Body.Close()

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case resp.StatusCode == http.StatusNotModified && f.lastBody != nil:
		return f.lastBody, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetch ics %s: unexpected status %d", redactURL(f.source), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ics body: %w", err)
	}
	f.etag = resp.Header.Get("ETag")
	f.lastModified = resp.Header.Get("Last-Modified")
	f.lastBody = body
	return body, nil
}

func isHTTP(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// redactURL hides credentials and query strings (private calendar tokens).
func redactURL(raw string) string {
	if !isHTTP(raw) {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid-url>"
	}
	u.User = nil
	if u.RawQuery != "" {
		u.RawQuery = "redacted"
	}
	return u.String()
}
