package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ModuleData stores a module's flat key/value settings in a JSONB column.
type ModuleData map[string]string

// Scan implements sql.Scanner for reading from the database.
func (d *ModuleData) Scan(value any) error {
	if value == nil {
		*d = ModuleData{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return d.decode(v)
	case string:
		return d.decode([]byte(v))
	default:
		return fmt.Errorf("db.ModuleData.Scan: expected []byte or string, got %T", value)
	}
}

// decode accepts non-string scalars written by older tooling and keeps them
// as their JSON text.
func (d *ModuleData) decode(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("db.ModuleData: %w", err)
	}
	out := make(ModuleData, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		if string(v) == "null" {
			continue
		}
		out[k] = string(v)
	}
	*d = out
	return nil
}

// Value implements driver.Valuer for writing to the database.
func (d ModuleData) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(d))
}

// ScanText implements the pgtype.TextScanner interface for pgx v5.
func (d *ModuleData) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*d = ModuleData{}
		return nil
	}
	return d.decode([]byte(v.String))
}

// TextValue implements the pgtype.TextValuer interface for pgx v5.
func (d ModuleData) TextValue() (pgtype.Text, error) {
	if d == nil {
		return pgtype.Text{String: "{}", Valid: true}, nil
	}
	b, err := json.Marshal(map[string]string(d))
	if err != nil {
		return pgtype.Text{}, err
	}
	return pgtype.Text{String: string(b), Valid: true}, nil
}
