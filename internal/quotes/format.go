package quotes

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FormatTitle derives a display title from a book id when the dataset does
// not carry one: "books/courage-disliked" becomes "Courage Disliked".
func FormatTitle(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}

	words := strings.Split(id, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO date as "DD Mon YYYY". Values that do not parse
// are returned as-is.
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return iso
}
