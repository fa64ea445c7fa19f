package admin

import (
	"context"
	"log/slog"

	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// VideoMarkupRoute is the admin page of the filter configuration.
const VideoMarkupRoute = "/admin/video-markup"

// ConfigStore loads and persists the module's flat settings.
type ConfigStore interface {
	Get() map[string]string
	Save(ctx context.Context, data map[string]string) error
}

// Module bundles what the video markup handlers need.
type Module struct {
	// Owner prefixes the filter's cache entries.
	Owner  string
	Config ConfigStore
	Cache  markupconfig.CacheStore
	// Ace is nil when the code editor is disabled.
	Ace *markupconfig.AceOptions
}

// cacheStatus reads the entry count and payload size. Store failures are
// logged and reported as an empty cache so the form still renders.
func (m *Module) cacheStatus(ctx context.Context) (int, int64) {
	prefix := markupconfig.CachePrefix(m.Owner)
	count, err := m.Cache.CountByPrefix(ctx, prefix)
	if err != nil {
		slog.Error("failed to count cached videos", "owner", m.Owner, "error", err)
		return 0, 0
	}
	if count == 0 {
		return 0, 0
	}

	var size int64
	if sizer, ok := m.Cache.(markupconfig.CacheSizer); ok {
		if size, err = sizer.SizeByPrefix(ctx, prefix); err != nil {
			slog.Warn("failed to size cached videos", "owner", m.Owner, "error", err)
			size = 0
		}
	}
	return count, size
}

// buildForm compiles the configuration form from the current settings.
func (m *Module) buildForm(ctx context.Context, c *markupconfig.Compiler) *markupconfig.Form {
	count, size := m.cacheStatus(ctx)
	return markupconfig.BuildForm(c, markupconfig.FormInput{
		Settings:   markupconfig.SettingsFromData(m.Config.Get()),
		CacheCount: count,
		CacheBytes: size,
		Ace:        m.Ace,
	})
}
