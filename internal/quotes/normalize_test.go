package quotes

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"quotebook/pkg/models"
)

func TestNormalizeArray(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"id": "q1", "text": "one", "category": ["a"]},
		{"id": "q2", "text": "two", "comments": [{"text": "c", "date": "2024-01-02"}]},
		{"id": "q1", "text": "three", "chapter": 7}
	]`)

	ds, err := Normalize("books/some-book", raw)
	require.NoError(t, err)
	require.Equal(t, "Some Book", ds.Title)
	require.Len(t, ds.Quotes, 3)

	for _, q := range ds.Quotes {
		require.NotNil(t, q.Comments, q.Key)
		require.NotNil(t, q.Affirmations, q.Key)
		require.NotNil(t, q.Applications, q.Key)
	}

	require.Equal(t, "q1-0", ds.Quotes[0].Key)
	require.Equal(t, "q2-1", ds.Quotes[1].Key)
	require.Equal(t, "q1-2", ds.Quotes[2].Key)
	require.Equal(t, "7", ds.Quotes[2].Chapter)
	require.Equal(t, []models.Annotation{{Text: "c", Date: "2024-01-02"}}, ds.Quotes[1].Comments)
}

func TestNormalizeQuotesObject(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"title": "X", "quotes": [{"id": "q1", "text": "a"}, {"id": "q2", "text": "b"}]}`)

	ds, err := Normalize("books/ignored", raw)
	require.NoError(t, err)
	require.Equal(t, "X", ds.Title)
	require.Len(t, ds.Quotes, 2)
	require.Equal(t, "q1-0", ds.Quotes[0].Key)
	require.Equal(t, "q2-1", ds.Quotes[1].Key)
}

func TestNormalizeQuotesObjectWithoutTitle(t *testing.T) {
	t.Parallel()

	ds, err := Normalize("dance/musicality-training", json.RawMessage(`{"quotes": []}`))
	require.NoError(t, err)
	require.Equal(t, "Musicality Training", ds.Title)
	require.Empty(t, ds.Quotes)
	require.Empty(t, ds.Categories)
}

func TestNormalizeSingleObject(t *testing.T) {
	t.Parallel()

	ds, err := Normalize("others/me", json.RawMessage(`{"id": "q1", "text": "hi"}`))
	require.NoError(t, err)
	require.Equal(t, "Me", ds.Title)
	require.Len(t, ds.Quotes, 1)

	want := models.Quote{
		Key:          "q1",
		ID:           "q1",
		Text:         "hi",
		Comments:     []models.Annotation{},
		Affirmations: []models.Annotation{},
		Applications: []models.Annotation{},
	}
	if diff := cmp.Diff(want, ds.Quotes[0]); diff != "" {
		t.Fatalf("quote mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeQuotesFieldNotArray(t *testing.T) {
	t.Parallel()

	// A non-list "quotes" field means the object itself is the quote.
	ds, err := Normalize("others/odd", json.RawMessage(`{"id": "odd", "text": "t", "quotes": "nope"}`))
	require.NoError(t, err)
	require.Len(t, ds.Quotes, 1)
	require.Equal(t, "odd", ds.Quotes[0].Key)
}

func TestNormalizeCoercesAnnotationFields(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[{"id": "q", "comments": "none", "affirmations": null, "applications": {"text": "x"}}]`)
	ds, err := Normalize("x", raw)
	require.NoError(t, err)

	q := ds.Quotes[0]
	require.Equal(t, []models.Annotation{}, q.Comments)
	require.Equal(t, []models.Annotation{}, q.Affirmations)
	require.Equal(t, []models.Annotation{}, q.Applications)
}

func TestNormalizeCategories(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"id": "1", "category": "zeta"},
		{"id": "2", "category": ["beta", "alpha"]},
		{"id": "3", "category": ["alpha", 4, ""]},
		{"id": "4"}
	]`)
	ds, err := Normalize("x", raw)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", "zeta"}, ds.Categories)
	require.Equal(t, models.Categories{"zeta"}, ds.Quotes[0].Category)
	require.Equal(t, models.Categories{"alpha"}, ds.Quotes[2].Category)
	require.Nil(t, ds.Quotes[3].Category)
}

func TestNormalizeMalformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"string":      `"just text"`,
		"number":      `42`,
		"null":        `null`,
		"empty":       ``,
		"bad element": `[1, 2]`,
		"broken":      `{"id": `,
	}
	for name, raw := range cases {
		_, err := Normalize("x", json.RawMessage(raw))
		require.ErrorIs(t, err, ErrMalformedDataset, name)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	qs := []models.Quote{
		{Key: "1", Category: models.Categories{"a"}},
		{Key: "2", Category: models.Categories{"b"}},
		{Key: "3", Category: models.Categories{"a", "b"}},
		{Key: "4"},
	}

	got := Filter(qs, "a")
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].Key)
	require.Equal(t, "3", got[1].Key)

	require.Len(t, Filter(qs, ""), 4)
	require.Empty(t, Filter(qs, "A"))
	require.Empty(t, Filter(qs, "missing"))
}

func TestFormatTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Courage Disliked", FormatTitle("courage-disliked"))
	require.Equal(t, "Top 3 Life Goals", FormatTitle("others/top-3-life-goals"))
	require.Equal(t, "Émile", FormatTitle("émile"))
	require.Equal(t, "", FormatTitle(""))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "02 Mar 2024", FormatDate("2024-03-02"))
	require.Equal(t, "18 Apr 2024", FormatDate("2024-04-18T20:15:00Z"))
	require.Equal(t, "05 Dec 2023", FormatDate("2023-12-05T09:00:00"))
	require.Equal(t, "someday", FormatDate("someday"))
}
