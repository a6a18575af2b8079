package docquery

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Fetcher loads already-rendered article pages over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher wires an HTTP client; a nil client gets a 20s-timeout default.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Fetcher{client: client}
}

// Fetch downloads pageURL and parses it into a Document.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "CiteScanner/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", pageURL, resp.Status)
	}

	return FromReader(resp.Body, pageURL)
}
