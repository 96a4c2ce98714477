package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quotebook/internal/comments"
)

func TestExportComments(t *testing.T) {
	ctx := context.Background()
	svc := comments.NewService(comments.NewMemoryStore(), nil)
	_, err := svc.Save(ctx, "cd-1", "nice")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "backup", "comments.csv")
	n, err := exportComments(ctx, svc, out)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "quote_id,text\ncd-1,nice\n", string(b))
}
