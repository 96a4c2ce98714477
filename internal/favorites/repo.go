package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quotebook/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Add marks a quote as favorite. Adding it again keeps the original
// created_at and refreshes the book id.
func (r *Repo) Add(ctx context.Context, quoteID, bookID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (quote_id, book_id, created_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(quote_id) DO UPDATE SET
			book_id = excluded.book_id
	`, quoteID, bookID)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *Repo) Remove(ctx context.Context, quoteID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorites WHERE quote_id = ?
	`, quoteID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Get(ctx context.Context, quoteID string) (*models.Favorite, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT quote_id, book_id, created_at
		FROM favorites
		WHERE quote_id = ?
	`, quoteID)

	var f models.Favorite
	var created time.Time
	if err := row.Scan(&f.QuoteID, &f.BookID, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	f.CreatedAt = created
	return &f, nil
}

// List returns favorites newest first, optionally limited to one book.
func (r *Repo) List(ctx context.Context, bookID string) ([]models.Favorite, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if bookID == "" {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT quote_id, book_id, created_at
			FROM favorites
			ORDER BY created_at DESC, quote_id ASC
		`)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT quote_id, book_id, created_at
			FROM favorites
			WHERE book_id = ?
			ORDER BY created_at DESC, quote_id ASC
		`, bookID)
	}
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	out := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		var created time.Time
		if err := rows.Scan(&f.QuoteID, &f.BookID, &created); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		f.CreatedAt = created
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// IDs returns the set of favorite quote ids.
func (r *Repo) IDs(ctx context.Context) (map[string]bool, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT quote_id FROM favorites`)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
