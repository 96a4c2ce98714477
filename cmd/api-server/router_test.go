package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quotebook/internal/catalog"
	"quotebook/internal/comments"
	"quotebook/internal/middleware"
	"quotebook/pkg/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenAndMigrate(database.Config{Path: filepath.Join(t.TempDir(), "api.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cat, err := catalog.Load()
	require.NoError(t, err)

	return newRouter(deps{
		DB:           db,
		Catalog:      cat,
		Comments:     comments.NewService(comments.NewSQLiteStore(db), zap.NewNop()),
		CommentStore: comments.BackendSQLite,
		Logger:       zap.NewNop(),
	})
}

func do(t *testing.T, r *gin.Engine, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestHealthAndReady(t *testing.T) {
	r := newTestRouter(t)

	code, body := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])

	code, body = do(t, r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ready", body["status"])
	require.EqualValues(t, 8, body["books"])
}

func TestBooksByCategory(t *testing.T) {
	r := newTestRouter(t)

	code, body := do(t, r, http.MethodGet, "/books", nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 8, body["total"])

	code, body = do(t, r, http.MethodGet, "/books?category=dance", nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, body["total"])
}

func TestCommentRoundTripPrefillsBook(t *testing.T) {
	r := newTestRouter(t)

	code, body := do(t, r, http.MethodPut, "/comments/cd-2", map[string]string{"text": "so true <3"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "so true <3", body["text"])

	code, body = do(t, r, http.MethodGet, "/comments/cd-2", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "so true <3", body["text"])

	code, body = do(t, r, http.MethodGet, "/comments/unknown", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "", body["text"])

	code, body = do(t, r, http.MethodPut, "/favorites/cd-2", map[string]string{"book_id": "books/courage-disliked"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "cd-2", body["quote_id"])

	code, body = do(t, r, http.MethodGet, "/book/courage-disliked", nil)
	require.Equal(t, http.StatusOK, code)
	items := body["quotes"].([]any)
	require.Len(t, items, 4)
	second := items[1].(map[string]any)
	require.Equal(t, "cd-2", second["id"])
	require.Equal(t, "so true <3", second["comment"])
	require.Equal(t, true, second["favorite"])

	code, _ = do(t, r, http.MethodDelete, "/favorites/cd-2", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, r, http.MethodDelete, "/favorites/cd-2", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, body = do(t, r, http.MethodGet, "/favorites", nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 0, body["total"])
}

func TestUnknownBook(t *testing.T) {
	r := newTestRouter(t)

	code, body := do(t, r, http.MethodGet, "/book/dance/unknown", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Error loading: dance/unknown", body["title"])
}
