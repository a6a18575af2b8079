package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"CiteScanner/internal/domain"
	"CiteScanner/internal/ports"
)

// DedupStore persists submitted records into the sent table, keyed by url.
type DedupStore struct {
	db *sql.DB
}

var _ ports.DedupStore = (*DedupStore)(nil)

// NewDedupStore wires an opened database.
func NewDedupStore(db *sql.DB) *DedupStore {
	return &DedupStore{db: db}
}

// Get returns the record previously stored for url, if any.
func (s *DedupStore) Get(ctx context.Context, url string) (domain.ScrapedRecord, bool, error) {
	query, args, err := builder.
		Select("record").
		From("sent").
		Where(sq.Eq{"url": url}).
		ToSql()
	if err != nil {
		return domain.ScrapedRecord{}, false, fmt.Errorf("build query: %w", err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ScrapedRecord{}, false, nil
	}
	if err != nil {
		return domain.ScrapedRecord{}, false, fmt.Errorf("query sent: %w", err)
	}

	var record domain.ScrapedRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.ScrapedRecord{}, false, fmt.Errorf("decode stored record: %w", err)
	}
	return record, true, nil
}

// Set upserts the record under url.
func (s *DedupStore) Set(ctx context.Context, url string, record domain.ScrapedRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	query, args, err := builder.
		Insert("sent").
		Columns("url", "record", "sent_at").
		Values(url, string(raw), time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(url) DO UPDATE SET record = excluded.record, sent_at = excluded.sent_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert sent: %w", err)
	}
	return nil
}
