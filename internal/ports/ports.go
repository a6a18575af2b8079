package ports

import (
	"context"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
)

// DocumentSource loads already-rendered article pages for scanning.
type DocumentSource interface {
	Fetch(ctx context.Context, url string) (*docquery.Document, error)
}

// DedupStore persists every record ever successfully submitted, keyed by
// url. Get and Set are individually atomic; a read-then-write race between
// two concurrent runs over the same url may at worst cause one duplicate
// submission, which is accepted.
type DedupStore interface {
	Get(ctx context.Context, url string) (domain.ScrapedRecord, bool, error)
	Set(ctx context.Context, url string, record domain.ScrapedRecord) error
}

// SettingsStore persists small key/value settings across process restarts.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Confirmer resolves whether a pending submission should go ahead.
type Confirmer interface {
	Request(ctx context.Context, record domain.ScrapedRecord) (bool, error)
}

// Transport submits an extracted record to the collector. A returned error
// is a transport-level failure; a decoded non-success status is reported
// in the result, not as an error.
type Transport interface {
	Submit(ctx context.Context, record domain.ScrapedRecord, meta domain.SubmissionMeta) (domain.SubmissionResult, error)
}
