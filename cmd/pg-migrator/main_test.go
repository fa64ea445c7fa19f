package main

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/videomarkup/internal/db"
)

type fakeConfigs struct {
	rows    map[string]db.ModuleData
	getErr  error
	upserts int
}

func (f *fakeConfigs) GetModuleConfig(_ context.Context, module string) (*db.ModuleConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.rows[module]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &db.ModuleConfig{Module: module, Data: data}, nil
}

func (f *fakeConfigs) UpsertModuleConfig(_ context.Context, arg db.UpsertModuleConfigParams) (*db.ModuleConfig, error) {
	f.upserts++
	f.rows[arg.Module] = arg.Data
	return &db.ModuleConfig{Module: arg.Module, Data: arg.Data}, nil
}

func TestInstallDefaults_MissingRow(t *testing.T) {
	f := &fakeConfigs{rows: map[string]db.ModuleData{}}
	require.NoError(t, installDefaults(context.Background(), f, "TextformatterVideoMarkup"))
	require.Equal(t, 1, f.upserts)
	require.Equal(t, "1280", f.rows["TextformatterVideoMarkup"]["maxWidth"])
	require.Equal(t, "720", f.rows["TextformatterVideoMarkup"]["maxHeight"])
}

func TestInstallDefaults_KeepsExisting(t *testing.T) {
	f := &fakeConfigs{rows: map[string]db.ModuleData{
		"TextformatterVideoMarkup": {"maxWidth": "640"},
	}}
	require.NoError(t, installDefaults(context.Background(), f, "TextformatterVideoMarkup"))
	require.Zero(t, f.upserts)
	require.Equal(t, "640", f.rows["TextformatterVideoMarkup"]["maxWidth"])
}

func TestInstallDefaults_ReadError(t *testing.T) {
	f := &fakeConfigs{rows: map[string]db.ModuleData{}, getErr: errors.New("connection reset")}
	require.ErrorContains(t, installDefaults(context.Background(), f, "TextformatterVideoMarkup"), "connection reset")
	require.Zero(t, f.upserts)
}
