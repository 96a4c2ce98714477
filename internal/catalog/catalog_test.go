package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"quotebook/internal/quotes"
	"quotebook/pkg/models"
)

func TestLoadEmbeddedRegistry(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	books := c.ListBooks("")
	require.Equal(t, c.Len(), len(books))
	require.Len(t, books, 8)

	seen := make(map[string]bool)
	for _, b := range books {
		require.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true

		e, err := c.Resolve(b.ID)
		require.NoError(t, err)
		require.NoError(t, e.Err, b.ID)
		require.NotZero(t, b.QuoteCount, b.ID)
	}

	require.Equal(t, books, c.ListBooks(AllCategories))
}

func TestListBooksByCategory(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	dance := c.ListBooks("dance")
	require.NotEmpty(t, dance)
	for _, b := range dance {
		require.Equal(t, "dance", b.Category)
	}

	require.Empty(t, c.ListBooks("Dance"))
	require.Equal(t, []string{"all", "books", "dance", "others"}, c.Categories())
}

func TestResolveSuffixFallback(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	e, err := c.Resolve("courage-disliked")
	require.NoError(t, err)
	require.Equal(t, "books/courage-disliked", e.Book.ID)
	require.Equal(t, "courage-disliked", e.Book.Path)

	e, err = c.Resolve("/others/me/")
	require.NoError(t, err)
	require.Equal(t, "others/me", e.Book.ID)

	// Wrong namespace still lands on the unique final segment.
	e, err = c.Resolve("misc/self-care")
	require.NoError(t, err)
	require.Equal(t, "others/self-care", e.Book.ID)

	_, err = c.Resolve("does-not-exist")
	require.ErrorIs(t, err, ErrBookNotFound)

	_, err = c.Resolve("")
	require.ErrorIs(t, err, ErrBookNotFound)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"registry.yaml": {Data: []byte(`
books:
  - id: books/notes
    title: Book Notes
    category: books
    file: books/notes.json
  - id: others/notes
    category: others
    file: others/notes.json
  - id: others/broken
    category: others
    file: others/broken.json
`)},
		"books/notes.json":  {Data: []byte(`[{"id": "a", "text": "x"}]`)},
		"others/notes.json": {Data: []byte(`{"id": "b", "text": "y"}`)},
		"others/broken.json": {Data: []byte(`"only a string"`)},
	}
}

func TestResolveAmbiguousSuffix(t *testing.T) {
	t.Parallel()

	c, err := LoadFS(testFS(), "registry.yaml")
	require.NoError(t, err)

	_, err = c.Resolve("notes")
	require.ErrorIs(t, err, ErrAmbiguousBook)

	e, err := c.Resolve("others/notes")
	require.NoError(t, err)
	require.Equal(t, "Notes", e.Book.Title)
}

func TestLoadKeepsMalformedDatasetAsEntryError(t *testing.T) {
	t.Parallel()

	c, err := LoadFS(testFS(), "registry.yaml")
	require.NoError(t, err)

	e, err := c.Resolve("broken")
	require.NoError(t, err)
	require.ErrorIs(t, e.Err, quotes.ErrMalformedDataset)
	require.Zero(t, e.Book.QuoteCount)
}

func TestLoadFailures(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	fsys["books/notes.json"] = &fstest.MapFile{Data: []byte(`[{"id": `)}
	_, err := LoadFS(fsys, "registry.yaml")
	require.Error(t, err)

	fsys = testFS()
	delete(fsys, "others/notes.json")
	_, err = LoadFS(fsys, "registry.yaml")
	require.Error(t, err)

	fsys = testFS()
	fsys["registry.yaml"] = &fstest.MapFile{Data: []byte(`
books:
  - id: books/notes
    file: books/notes.json
  - id: books/notes/
    file: books/notes.json
`)}
	_, err = LoadFS(fsys, "registry.yaml")
	require.ErrorContains(t, err, "duplicate book id")
}

func TestHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := Load()
	require.NoError(t, err)

	router := gin.New()
	NewHandler(c).RegisterRoutes(router.Group(""))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books?category=dance", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Category   string        `json:"category"`
		Categories []string      `json:"categories"`
		Total      int           `json:"total"`
		Items      []models.Book `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "dance", resp.Category)
	require.Equal(t, len(resp.Items), resp.Total)
	require.Equal(t, "dance/musicality-training", resp.Items[0].ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "all", resp.Category)
	require.Equal(t, 8, resp.Total)
}
