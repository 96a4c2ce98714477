package comments

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVRoundTripThroughService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewService(NewMemoryStore(), nil)
	_, err := src.Save(ctx, "b-1", "line one\nline two")
	require.NoError(t, err)
	_, err = src.Save(ctx, "a-1", `has "quotes", and commas`)
	require.NoError(t, err)
	_, err = src.Save(ctx, "c-1", "mail me <me@example.com>")
	require.NoError(t, err)

	all, err := src.All(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, all))
	require.True(t, strings.HasPrefix(buf.String(), "quote_id,text\na-1,"))

	rows, err := ReadCSV(&buf)
	require.NoError(t, err)

	dst := NewService(NewMemoryStore(), nil)
	n, err := dst.Merge(ctx, rows)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := dst.All(ctx)
	require.NoError(t, err)
	require.Equal(t, all, got)
}

func TestReadCSVColumnsAnyOrder(t *testing.T) {
	t.Parallel()

	rows, err := ReadCSV(strings.NewReader("Text,Quote_ID\nhello,q1\nskipped,\nagain,q1\n"))
	require.NoError(t, err)
	require.Equal(t, map[string]string{"q1": "again"}, rows)
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader(""))
	require.ErrorContains(t, err, "empty")

	_, err = ReadCSV(strings.NewReader("id,text\nq1,x\n"))
	require.ErrorContains(t, err, "quote_id")
}
