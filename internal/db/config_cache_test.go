package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeModuleConfigQuerier struct {
	rows    map[string]ModuleData
	getErr  error
	saveErr error
	gets    int
}

func (f *fakeModuleConfigQuerier) GetModuleConfig(_ context.Context, module string) (*ModuleConfig, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.rows[module]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ModuleConfig{Module: module, Data: data}, nil
}

func (f *fakeModuleConfigQuerier) UpsertModuleConfig(_ context.Context, arg UpsertModuleConfigParams) (*ModuleConfig, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.rows[arg.Module] = arg.Data
	return &ModuleConfig{Module: arg.Module, Data: arg.Data}, nil
}

func TestModuleConfigCache_MissingRowIsEmpty(t *testing.T) {
	q := &fakeModuleConfigQuerier{rows: map[string]ModuleData{}}
	c, err := NewModuleConfigCache(context.Background(), q, "VideoMarkup")
	require.NoError(t, err)
	require.Empty(t, c.Get())
}

func TestModuleConfigCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	q := &fakeModuleConfigQuerier{rows: map[string]ModuleData{}}
	c, err := NewModuleConfigCache(ctx, q, "VideoMarkup")
	require.NoError(t, err)

	require.NoError(t, c.Save(ctx, map[string]string{"maxWidth": "640"}))
	require.Equal(t, map[string]string{"maxWidth": "640"}, c.Get())
	require.Equal(t, ModuleData{"maxWidth": "640"}, q.rows["VideoMarkup"])

	// Callers cannot mutate the cached copy.
	got := c.Get()
	got["maxWidth"] = "1"
	require.Equal(t, "640", c.Get()["maxWidth"])
}

func TestModuleConfigCache_Reload(t *testing.T) {
	ctx := context.Background()
	q := &fakeModuleConfigQuerier{rows: map[string]ModuleData{"VideoMarkup": {"yt_rel": "0"}}}
	c, err := NewModuleConfigCache(ctx, q, "VideoMarkup")
	require.NoError(t, err)
	require.Equal(t, "0", c.Get()["yt_rel"])

	q.rows["VideoMarkup"] = ModuleData{"yt_rel": "1"}
	require.NoError(t, c.Reload(ctx))
	require.Equal(t, "1", c.Get()["yt_rel"])
}

func TestModuleConfigCache_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := NewModuleConfigCache(ctx, &fakeModuleConfigQuerier{getErr: boom}, "VideoMarkup")
	require.ErrorIs(t, err, boom)

	q := &fakeModuleConfigQuerier{rows: map[string]ModuleData{"VideoMarkup": {"a": "b"}}}
	c, err := NewModuleConfigCache(ctx, q, "VideoMarkup")
	require.NoError(t, err)
	q.saveErr = boom
	require.ErrorIs(t, c.Save(ctx, map[string]string{"a": "c"}), boom)
	require.Equal(t, "b", c.Get()["a"])
}
