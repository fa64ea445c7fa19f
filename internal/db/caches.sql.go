package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countCachesByPrefix = `-- name: CountCachesByPrefix :one
SELECT count(*) FROM caches WHERE name ^@ $1::text
`

func (q *Queries) CountCachesByPrefix(ctx context.Context, prefix string) (int64, error) {
	row := q.db.QueryRow(ctx, countCachesByPrefix, prefix)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const sizeCachesByPrefix = `-- name: SizeCachesByPrefix :one
SELECT COALESCE(sum(octet_length(data)), 0)::bigint FROM caches WHERE name ^@ $1::text
`

func (q *Queries) SizeCachesByPrefix(ctx context.Context, prefix string) (int64, error) {
	row := q.db.QueryRow(ctx, sizeCachesByPrefix, prefix)
	var column_1 int64
	err := row.Scan(&column_1)
	return column_1, err
}

const deleteCachesByPrefix = `-- name: DeleteCachesByPrefix :execrows
DELETE FROM caches WHERE name ^@ $1::text
`

func (q *Queries) DeleteCachesByPrefix(ctx context.Context, prefix string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCachesByPrefix, prefix)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const putCache = `-- name: PutCache :exec
INSERT INTO caches (name, data, expires)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, expires = EXCLUDED.expires
`

type PutCacheParams struct {
	Name    string
	Data    string
	Expires pgtype.Timestamptz
}

func (q *Queries) PutCache(ctx context.Context, arg PutCacheParams) error {
	_, err := q.db.Exec(ctx, putCache, arg.Name, arg.Data, arg.Expires)
	return err
}

