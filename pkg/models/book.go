package models

// Book is a catalog summary of one bundled dataset.
type Book struct {
	ID          string `json:"id"`   // namespaced, e.g. "books/courage-disliked"
	Path        string `json:"path"` // token used in /book/<path> links
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	QuoteCount  int    `json:"quote_count"`
}
