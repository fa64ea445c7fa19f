package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Cache struct {
	Name    string
	Data    string
	Expires pgtype.Timestamptz
	Created pgtype.Timestamptz
}

type ModuleConfig struct {
	Module    string
	Data      ModuleData
	UpdatedAt pgtype.Timestamptz
}
