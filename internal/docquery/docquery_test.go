package docquery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFromReaderSelectAndURL(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Doc</title></head><body><p class="x">one</p><p class="x">two</p></body></html>`
	doc, err := FromReader(strings.NewReader(html), "http://example.org/a")
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}

	if doc.URL() != "http://example.org/a" {
		t.Fatalf("unexpected url: %s", doc.URL())
	}
	if got := doc.Select("p.x").Length(); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
	if got := doc.Select("title").Text(); got != "Doc" {
		t.Fatalf("unexpected title: %s", got)
	}
}

func TestFetcherFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "CiteScanner/") {
			t.Errorf("unexpected user agent %s", ua)
		}
		_, _ = w.Write([]byte(`<html><head><title>Remote</title></head></html>`))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client())
	doc, err := fetcher.Fetch(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if doc.URL() != server.URL+"/article" {
		t.Fatalf("unexpected url: %s", doc.URL())
	}
	if doc.Select("title").Text() != "Remote" {
		t.Fatal("unexpected document content")
	}
}

func TestFetcherNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client())
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}
