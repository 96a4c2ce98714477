package models

// Annotation is a dated free-text note attached to a quote.
type Annotation struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// Categories holds a quote's category set. Datasets may author it as a
// single string or as a list; both normalize to this form.
type Categories []string

func (c Categories) Contains(category string) bool {
	for _, v := range c {
		if v == category {
			return true
		}
	}
	return false
}

// Quote is the normalized form of a quote record. Comments, Affirmations and
// Applications are never nil once a dataset has been normalized.
type Quote struct {
	Key          string       `json:"key"` // display key, unique within a dataset
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	Author       string       `json:"author,omitempty"`
	Book         string       `json:"book,omitempty"`
	Chapter      string       `json:"chapter,omitempty"`
	Category     Categories   `json:"category,omitempty"`
	Comments     []Annotation `json:"comments"`
	Affirmations []Annotation `json:"affirmations"`
	Applications []Annotation `json:"applications"`
}
