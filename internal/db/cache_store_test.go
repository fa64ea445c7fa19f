package db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeCacheQuerier struct {
	entries map[string]string
	err     error
}

func (f *fakeCacheQuerier) match(prefix string) []string {
	var names []string
	for name := range f.entries {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

func (f *fakeCacheQuerier) CountCachesByPrefix(_ context.Context, prefix string) (int64, error) {
	return int64(len(f.match(prefix))), f.err
}

func (f *fakeCacheQuerier) SizeCachesByPrefix(_ context.Context, prefix string) (int64, error) {
	var n int64
	for _, name := range f.match(prefix) {
		n += int64(len(f.entries[name]))
	}
	return n, f.err
}

func (f *fakeCacheQuerier) DeleteCachesByPrefix(_ context.Context, prefix string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	names := f.match(prefix)
	for _, name := range names {
		delete(f.entries, name)
	}
	return int64(len(names)), nil
}

func (f *fakeCacheQuerier) PutCache(_ context.Context, arg PutCacheParams) error {
	if f.err != nil {
		return f.err
	}
	f.entries[arg.Name] = arg.Data
	return nil
}

func TestCacheEntryName(t *testing.T) {
	a := CacheEntryName("TextformatterVideoMarkup", "https://youtu.be/abc")
	b := CacheEntryName("TextformatterVideoMarkup", "https://youtu.be/abc")
	c := CacheEntryName("TextformatterVideoMarkup", "https://youtu.be/xyz")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.True(t, strings.HasPrefix(a, "TextformatterVideoMarkup__"))
}

func TestCacheStore_CountAndClear(t *testing.T) {
	ctx := context.Background()
	q := &fakeCacheQuerier{entries: map[string]string{}}
	store := NewCacheStore(q)
	expires := time.Now().Add(time.Hour)

	require.NoError(t, store.Put(ctx, "VideoMarkup", "https://youtu.be/a", "<iframe>", expires))
	require.NoError(t, store.Put(ctx, "VideoMarkup", "https://vimeo.com/1", "<iframe>", expires))
	require.NoError(t, store.Put(ctx, "Other", "https://youtu.be/a", "x", expires))

	n, err := store.CountByPrefix(ctx, "VideoMarkup__")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	size, err := store.SizeByPrefix(ctx, "VideoMarkup__")
	require.NoError(t, err)
	require.Equal(t, int64(16), size)

	require.NoError(t, store.ClearFor(ctx, "VideoMarkup"))
	n, err = store.CountByPrefix(ctx, "VideoMarkup__")
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = store.CountByPrefix(ctx, "Other__")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCacheStore_WrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	store := NewCacheStore(&fakeCacheQuerier{entries: map[string]string{}, err: boom})

	_, err := store.CountByPrefix(context.Background(), "x__")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, store.ClearFor(context.Background(), "x"), boom)
}

func TestCacheStore_MissingTableCountsZero(t *testing.T) {
	store := NewCacheStore(&fakeCacheQuerier{entries: map[string]string{}, err: &pgconn.PgError{Code: "42P01"}})
	n, err := store.CountByPrefix(context.Background(), "x__")
	require.NoError(t, err)
	require.Zero(t, n)
}
