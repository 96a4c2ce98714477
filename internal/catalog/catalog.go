package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"quotebook/data"
	"quotebook/internal/quotes"
	"quotebook/pkg/models"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrAmbiguousBook = errors.New("book id is ambiguous")
)

// AllCategories is the catalog filter value that disables filtering.
const AllCategories = "all"

type manifest struct {
	Books []manifestEntry `yaml:"books"`
}

type manifestEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	File        string `yaml:"file"`
}

// Entry is one registered book with its dataset normalized at load time.
// Err is set when the dataset parsed as JSON but had an unsupported shape.
type Entry struct {
	Book    models.Book
	Dataset quotes.Dataset
	Err     error
}

// Catalog is the immutable registry of bundled books.
type Catalog struct {
	entries  []*Entry
	byID     map[string]*Entry
	bySuffix map[string][]*Entry
}

// Load builds the catalog from the datasets compiled into the binary.
func Load() (*Catalog, error) {
	return LoadFS(data.FS, data.ManifestPath)
}

// LoadFS builds a catalog from a manifest and the JSON files it references.
// Missing files, invalid JSON and duplicate ids are load errors.
func LoadFS(fsys fs.FS, manifestPath string) (*Catalog, error) {
	b, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	c := &Catalog{
		entries:  make([]*Entry, 0, len(m.Books)),
		byID:     make(map[string]*Entry, len(m.Books)),
		bySuffix: make(map[string][]*Entry, len(m.Books)),
	}

	for _, me := range m.Books {
		id := strings.Trim(strings.TrimSpace(me.ID), "/")
		if id == "" {
			return nil, fmt.Errorf("manifest entry with empty id (file %q)", me.File)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate book id %q", id)
		}

		raw, err := fs.ReadFile(fsys, me.File)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", id, err)
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("dataset %s: invalid JSON in %s", id, me.File)
		}

		e := &Entry{
			Book: models.Book{
				ID:          id,
				Path:        linkPath(id),
				Title:       me.Title,
				Description: me.Description,
				Category:    me.Category,
			},
		}
		if e.Book.Title == "" {
			e.Book.Title = quotes.FormatTitle(id)
		}

		e.Dataset, e.Err = quotes.Normalize(id, raw)
		e.Book.QuoteCount = len(e.Dataset.Quotes)

		c.entries = append(c.entries, e)
		c.byID[id] = e
		suffix := lastSegment(id)
		c.bySuffix[suffix] = append(c.bySuffix[suffix], e)
	}

	return c, nil
}

// ListBooks returns books in registry order. An empty filter or "all"
// returns every book; anything else matches Book.Category exactly.
func (c *Catalog) ListBooks(category string) []models.Book {
	out := make([]models.Book, 0, len(c.entries))
	for _, e := range c.entries {
		if category == "" || category == AllCategories || e.Book.Category == category {
			out = append(out, e.Book)
		}
	}
	return out
}

// Categories returns "all" followed by each distinct book category in the
// order it first appears in the registry.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		if _, ok := seen[e.Book.Category]; ok {
			continue
		}
		seen[e.Book.Category] = struct{}{}
		out = append(out, e.Book.Category)
	}
	return out
}

// Resolve finds the entry for a navigation token. An exact id match wins;
// otherwise the token's final path segment is matched against the final
// segment of every id. A suffix shared by several ids is an error rather
// than a guess.
func (c *Catalog) Resolve(token string) (*Entry, error) {
	token = strings.Trim(strings.TrimSpace(token), "/")
	if token == "" {
		return nil, fmt.Errorf("%w: empty id", ErrBookNotFound)
	}

	if e, ok := c.byID[token]; ok {
		return e, nil
	}

	matches := c.bySuffix[lastSegment(token)]
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, token)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.Book.ID)
		}
		return nil, fmt.Errorf("%w: %s matches %s", ErrAmbiguousBook, token, strings.Join(ids, ", "))
	}
}

// Len reports the number of registered books.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func lastSegment(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// linkPath drops the "books/" namespace so the default shelf gets short
// links; other namespaces keep their prefix.
func linkPath(id string) string {
	return strings.TrimPrefix(id, "books/")
}
