package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"CiteScanner/internal/domain"
	"CiteScanner/internal/ports"
)

// Client submits scraped records to the collector endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ ports.Transport = (*Client)(nil)

// NewClient builds a client for the given collector endpoint; a nil
// http.Client gets a 15s-timeout default.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

type submitPayload struct {
	domain.ScrapedRecord
	domain.SubmissionMeta
}

// Submit posts the record with its submission metadata and decodes the
// collector's status response. HTTP and decoding failures are
// transport-level errors; a decoded non-success status is not.
func (c *Client) Submit(ctx context.Context, record domain.ScrapedRecord, meta domain.SubmissionMeta) (domain.SubmissionResult, error) {
	if c.endpoint == "" {
		return domain.SubmissionResult{}, fmt.Errorf("transport misconfigured: no endpoint")
	}

	if meta.RequestID == "" {
		meta.RequestID = uuid.NewString()
	}

	body, err := json.Marshal(submitPayload{ScrapedRecord: record, SubmissionMeta: meta})
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("send record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.SubmissionResult{}, fmt.Errorf("collector error %s: %s",
			resp.Status, strings.TrimSpace(string(snippet)))
	}

	var result domain.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
