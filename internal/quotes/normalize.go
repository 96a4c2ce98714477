package quotes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"quotebook/pkg/models"
)

// ErrMalformedDataset is returned when a dataset is neither a list of quotes,
// an object with a "quotes" list, nor a single quote object.
var ErrMalformedDataset = errors.New("malformed dataset")

// Dataset is a normalized book: a uniform list of quotes plus the distinct,
// sorted categories used for filter chips.
type Dataset struct {
	Title      string         `json:"title"`
	Quotes     []models.Quote `json:"quotes"`
	Categories []string       `json:"categories"`
}

// rawQuote decodes a quote-like object leniently. Scalars may be authored as
// strings or numbers; list fields are kept raw and coerced later.
type rawQuote struct {
	ID           flexString      `json:"id"`
	Text         flexString      `json:"text"`
	Author       flexString      `json:"author"`
	Book         flexString      `json:"book"`
	Chapter      flexString      `json:"chapter"`
	Category     json.RawMessage `json:"category"`
	Comments     json.RawMessage `json:"comments"`
	Affirmations json.RawMessage `json:"affirmations"`
	Applications json.RawMessage `json:"applications"`
}

type rawAnnotation struct {
	Text flexString `json:"text"`
	Date flexString `json:"date"`
}

// Normalize converts the as-authored JSON of book id into a Dataset.
//
// A top-level array is a list of quotes keyed "<quote id>-<index>". An object
// whose "quotes" field is an array supplies the quotes and, optionally, the
// title. Any other object is a single quote keyed by its own id.
func Normalize(id string, raw json.RawMessage) (Dataset, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Dataset{}, fmt.Errorf("%w: %s: empty document", ErrMalformedDataset, id)
	}

	var (
		ds  Dataset
		err error
	)
	switch raw[0] {
	case '[':
		ds.Title = FormatTitle(id)
		ds.Quotes, err = normalizeList(raw)
	case '{':
		ds, err = normalizeObject(id, raw)
	default:
		return Dataset{}, fmt.Errorf("%w: %s: unsupported top-level JSON value", ErrMalformedDataset, id)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %s: %v", ErrMalformedDataset, id, err)
	}

	ds.Categories = distinctCategories(ds.Quotes)
	return ds, nil
}

func normalizeObject(id string, raw json.RawMessage) (Dataset, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Dataset{}, err
	}

	title := FormatTitle(id)
	if t, ok := fields["title"]; ok {
		var s flexString
		if err := json.Unmarshal(t, &s); err == nil && s != "" {
			title = string(s)
		}
	}

	if list, ok := fields["quotes"]; ok && isArray(list) {
		qs, err := normalizeList(list)
		if err != nil {
			return Dataset{}, err
		}
		return Dataset{Title: title, Quotes: qs}, nil
	}

	q, err := decodeQuote(raw)
	if err != nil {
		return Dataset{}, err
	}
	q.Key = q.ID
	return Dataset{Title: title, Quotes: []models.Quote{q}}, nil
}

func normalizeList(raw json.RawMessage) ([]models.Quote, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	out := make([]models.Quote, 0, len(items))
	for i, item := range items {
		q, err := decodeQuote(item)
		if err != nil {
			return nil, fmt.Errorf("quote %d: %w", i, err)
		}
		q.Key = fmt.Sprintf("%s-%d", q.ID, i)
		out = append(out, q)
	}
	return out, nil
}

func decodeQuote(raw json.RawMessage) (models.Quote, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return models.Quote{}, errors.New("quote is not an object")
	}

	var rq rawQuote
	if err := json.Unmarshal(raw, &rq); err != nil {
		return models.Quote{}, err
	}

	return models.Quote{
		ID:           string(rq.ID),
		Text:         string(rq.Text),
		Author:       string(rq.Author),
		Book:         string(rq.Book),
		Chapter:      string(rq.Chapter),
		Category:     decodeCategories(rq.Category),
		Comments:     decodeAnnotations(rq.Comments),
		Affirmations: decodeAnnotations(rq.Affirmations),
		Applications: decodeAnnotations(rq.Applications),
	}, nil
}

// decodeAnnotations always returns a non-nil slice; anything that is not a
// list becomes empty, and list elements that are not objects are skipped.
func decodeAnnotations(raw json.RawMessage) []models.Annotation {
	out := []models.Annotation{}
	if !isArray(raw) {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		var a rawAnnotation
		if err := json.Unmarshal(item, &a); err != nil {
			continue
		}
		out = append(out, models.Annotation{Text: string(a.Text), Date: string(a.Date)})
	}
	return out
}

func decodeCategories(raw json.RawMessage) models.Categories {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return nil
		}
		return models.Categories{s}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		var out models.Categories
		for _, item := range items {
			var s string
			if err := json.Unmarshal(item, &s); err != nil || s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}

func distinctCategories(qs []models.Quote) []string {
	seen := make(map[string]struct{})
	for _, q := range qs {
		for _, c := range q.Category {
			seen[c] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// flexString accepts a JSON string or number. Other JSON types decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*s = ""
		return nil
	}
	switch {
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*s = flexString(n.String())
	default:
		*s = ""
	}
	return nil
}
