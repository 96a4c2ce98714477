package comments

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLiteStore keeps the mapping as a JSON document in the kv_store table.
type SQLiteStore struct {
	DB  *sql.DB
	Key string
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db, Key: StorageKey}
}

func (s *SQLiteStore) GetAll(ctx context.Context) (map[string]string, error) {
	var raw string
	err := s.DB.QueryRowContext(ctx, `
		SELECT value FROM kv_store WHERE key = ?
	`, s.Key).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	out := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	if out == nil {
		out = map[string]string{}
	}
	return out, nil
}

func (s *SQLiteStore) SetAll(ctx context.Context, all map[string]string) error {
	if all == nil {
		all = map[string]string{}
	}
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, s.Key, string(b))
	if err != nil {
		return fmt.Errorf("set comments: %w", err)
	}
	return nil
}
