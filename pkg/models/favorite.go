package models

import "time"

type Favorite struct {
	QuoteID   string    `json:"quote_id"`
	BookID    string    `json:"book_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
