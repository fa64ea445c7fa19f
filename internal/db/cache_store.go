package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// cacheNamespace seeds the deterministic entry names.
var cacheNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("thirdcoast.systems/videomarkup/caches"))

type cacheQuerier interface {
	CountCachesByPrefix(ctx context.Context, prefix string) (int64, error)
	SizeCachesByPrefix(ctx context.Context, prefix string) (int64, error)
	DeleteCachesByPrefix(ctx context.Context, prefix string) (int64, error)
	PutCache(ctx context.Context, arg PutCacheParams) error
}

// CacheStore is the Postgres implementation of markupconfig.CacheStore.
type CacheStore struct {
	q cacheQuerier
}

var (
	_ markupconfig.CacheStore = (*CacheStore)(nil)
	_ markupconfig.CacheSizer = (*CacheStore)(nil)
)

func NewCacheStore(q cacheQuerier) *CacheStore {
	return &CacheStore{q: q}
}

// CacheEntryName returns the entry name the filter runtime uses for a video
// URL. Names are stable across runs and carry the owner prefix.
func CacheEntryName(owner, videoURL string) string {
	id := uuid.NewSHA1(cacheNamespace, []byte(videoURL))
	return markupconfig.CachePrefix(owner) + id.String()
}

func (s *CacheStore) CountByPrefix(ctx context.Context, prefix string) (int, error) {
	n, err := s.q.CountCachesByPrefix(ctx, prefix)
	if IsMissingSchemaErr(err) {
		// The filter runtime has not created its cache table yet.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count caches %q: %w", prefix, err)
	}
	return int(n), nil
}

func (s *CacheStore) SizeByPrefix(ctx context.Context, prefix string) (int64, error) {
	n, err := s.q.SizeCachesByPrefix(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("size caches %q: %w", prefix, err)
	}
	return n, nil
}

// ClearFor deletes every entry owned by owner.
func (s *CacheStore) ClearFor(ctx context.Context, owner string) error {
	prefix := markupconfig.CachePrefix(owner)
	n, err := s.q.DeleteCachesByPrefix(ctx, prefix)
	if err != nil {
		return fmt.Errorf("clear caches for %s: %w", owner, err)
	}
	slog.Info("cleared caches", "owner", owner, "deleted", n)
	return nil
}

// Put stores an embed result for a video URL until expires.
func (s *CacheStore) Put(ctx context.Context, owner, videoURL, data string, expires time.Time) error {
	err := s.q.PutCache(ctx, PutCacheParams{
		Name:    CacheEntryName(owner, videoURL),
		Data:    data,
		Expires: pgtype.Timestamptz{Time: expires, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("put cache: %w", err)
	}
	return nil
}
