package viewer

import (
	"errors"

	"quotebook/internal/catalog"
	"quotebook/internal/quotes"
	"quotebook/pkg/models"
)

// Resolver looks up a navigation token in the registry.
type Resolver interface {
	Resolve(token string) (*catalog.Entry, error)
}

// View is the per-book quote list: the normalized dataset plus the filter and
// expansion state of one rendered list. A failed lookup or a malformed
// dataset yields a View with Err set, an "Error loading" title and no quotes.
type View struct {
	Token      string
	Book       models.Book
	Title      string
	Quotes     []models.Quote
	Categories []string
	Filter     CategoryFilter
	Expansion  Expansion
	Err        error
}

// Open resolves token and prepares a fresh view for it.
func Open(r Resolver, token string) *View {
	v := &View{Token: token, Quotes: []models.Quote{}, Categories: []string{}}

	e, err := r.Resolve(token)
	if err != nil {
		v.fail(err)
		return v
	}

	v.Book = e.Book
	if e.Err != nil {
		v.fail(e.Err)
		return v
	}

	v.Title = e.Dataset.Title
	v.Quotes = e.Dataset.Quotes
	v.Categories = e.Dataset.Categories
	return v
}

func (v *View) fail(err error) {
	v.Err = err
	v.Title = "Error loading: " + v.Token
	v.Quotes = []models.Quote{}
	v.Categories = []string{}
}

func (v *View) Failed() bool {
	return v.Err != nil
}

// Visible returns the quotes that pass the current category filter.
func (v *View) Visible() []models.Quote {
	category, _ := v.Filter.Category()
	return quotes.Filter(v.Quotes, category)
}

// ToggleCategory applies chip-click semantics: clicking the selected
// category clears the filter.
func (v *View) ToggleCategory(category string) {
	v.Filter = v.Filter.Toggle(category)
}

// ClearCategory is the "All" chip.
func (v *View) ClearCategory() {
	v.Filter = NoFilter()
}

// ToggleQuote expands the quote with key, collapsing any other.
func (v *View) ToggleQuote(key string) {
	v.Expansion = v.Expansion.Toggle(key)
}

// Kind classifies a view error for display.
func (v *View) Kind() ErrorKind {
	switch {
	case v.Err == nil:
		return ErrorNone
	case errors.Is(v.Err, catalog.ErrBookNotFound):
		return ErrorNotFound
	case errors.Is(v.Err, catalog.ErrAmbiguousBook):
		return ErrorAmbiguous
	case errors.Is(v.Err, quotes.ErrMalformedDataset):
		return ErrorMalformed
	default:
		return ErrorUnknown
	}
}

type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorNotFound
	ErrorAmbiguous
	ErrorMalformed
	ErrorUnknown
)
