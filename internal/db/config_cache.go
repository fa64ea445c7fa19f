package db

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ModuleConfigChannel is notified with the module name after every write to
// module_configs.
const ModuleConfigChannel = "module_config_changed"

type moduleConfigQuerier interface {
	GetModuleConfig(ctx context.Context, module string) (*ModuleConfig, error)
	UpsertModuleConfig(ctx context.Context, arg UpsertModuleConfigParams) (*ModuleConfig, error)
}

// ModuleConfigCache provides thread-safe access to one module's persisted
// settings. Other processes' writes arrive via LISTEN/NOTIFY.
type ModuleConfigCache struct {
	mu     sync.RWMutex
	module string
	data   ModuleData
	q      moduleConfigQuerier
}

// NewModuleConfigCache loads the module's settings. A module that was never
// saved starts with empty data.
func NewModuleConfigCache(ctx context.Context, q moduleConfigQuerier, module string) (*ModuleConfigCache, error) {
	c := &ModuleConfigCache{module: module, q: q}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a copy of the current settings. Safe for concurrent reads.
func (c *ModuleConfigCache) Get() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(map[string]string(c.data))
}

// Reload fetches fresh settings from the database and updates the cache.
func (c *ModuleConfigCache) Reload(ctx context.Context) error {
	row, err := c.q.GetModuleConfig(ctx, c.module)
	data := ModuleData{}
	if err != nil {
		if !IsNotFound(err) {
			return fmt.Errorf("load module config %s: %w", c.module, err)
		}
	} else if row.Data != nil {
		data = row.Data
	}
	c.set(data)
	return nil
}

// Save persists data and replaces the cached copy with what was written.
func (c *ModuleConfigCache) Save(ctx context.Context, data map[string]string) error {
	row, err := c.q.UpsertModuleConfig(ctx, UpsertModuleConfigParams{
		Module: c.module,
		Data:   ModuleData(maps.Clone(data)),
	})
	if err != nil {
		return fmt.Errorf("save module config %s: %w", c.module, err)
	}
	c.set(row.Data)
	return nil
}

func (c *ModuleConfigCache) set(data ModuleData) {
	if data == nil {
		data = ModuleData{}
	}
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
}

// Listen reloads the cache whenever another process saves this module. It
// blocks until ctx is done, reconnecting after failures.
func (c *ModuleConfigCache) Listen(ctx context.Context, pool *pgxpool.Pool) {
	for {
		if ctx.Err() != nil {
			return
		}

		conn, err := pool.Acquire(ctx)
		if err != nil {
			slog.Error("failed to acquire connection for LISTEN", "channel", ModuleConfigChannel, "error", err)
			if !sleep(ctx, 5*time.Second) {
				return
			}
			continue
		}

		if _, err = conn.Exec(ctx, "LISTEN "+ModuleConfigChannel); err != nil {
			slog.Error("failed to LISTEN", "channel", ModuleConfigChannel, "error", err)
			conn.Release()
			if !sleep(ctx, 5*time.Second) {
				return
			}
			continue
		}

		slog.Info("Listening for notifications", "channel", ModuleConfigChannel, "module", c.module)
		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("wait for notification failed", "channel", ModuleConfigChannel, "error", err)
				}
				// The connection may still be LISTENing, so it is not returned to the pool.
				conn.Hijack().Close(context.Background())
				break
			}
			if n.Payload != c.module {
				continue
			}
			if err := c.Reload(ctx); err != nil {
				slog.Error("module config reload failed", "module", c.module, "error", err)
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
