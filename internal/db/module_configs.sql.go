package db

import (
	"context"
)

const getModuleConfig = `-- name: GetModuleConfig :one
SELECT module, data, updated_at FROM module_configs WHERE module = $1
`

func (q *Queries) GetModuleConfig(ctx context.Context, module string) (*ModuleConfig, error) {
	row := q.db.QueryRow(ctx, getModuleConfig, module)
	var i ModuleConfig
	err := row.Scan(&i.Module, &i.Data, &i.UpdatedAt)
	return &i, err
}

const upsertModuleConfig = `-- name: UpsertModuleConfig :one
INSERT INTO module_configs (module, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (module) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
RETURNING module, data, updated_at
`

type UpsertModuleConfigParams struct {
	Module string
	Data   ModuleData
}

func (q *Queries) UpsertModuleConfig(ctx context.Context, arg UpsertModuleConfigParams) (*ModuleConfig, error) {
	row := q.db.QueryRow(ctx, upsertModuleConfig, arg.Module, arg.Data)
	var i ModuleConfig
	err := row.Scan(&i.Module, &i.Data, &i.UpdatedAt)
	return &i, err
}
