package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"CiteScanner/internal/ports"
)

// SettingsStore persists key/value settings (currently only the
// confirmation mode flag) into the settings table.
type SettingsStore struct {
	db *sql.DB
}

var _ ports.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore wires an opened database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the stored value for key, if any.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := builder.
		Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query settings: %w", err)
	}
	return value, true, nil
}

// Set upserts the value under key.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	query, args, err := builder.
		Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
