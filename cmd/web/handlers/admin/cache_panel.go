package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"golang.org/x/text/message"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/cmd/web/templates"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

func cachePanel(p *message.Printer, view *templates.FieldView) templates.CachePanel {
	return templates.CachePanel{
		Cache:        view,
		EmptyMessage: p.Sprintf("No cached videos."),
		RefreshURL:   VideoMarkupRoute + "/cache",
		RefreshLabel: p.Sprintf("Refresh"),
	}
}

// HandleVideoMarkupCache re-renders the cache panel and patches it into the
// page over SSE.
func HandleVideoMarkupCache(m *Module) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		p := common.Printer(c)
		compiler := markupconfig.NewCompiler(p)

		var view *templates.FieldView
		if count, size := m.cacheStatus(ctx); count > 0 {
			form := &markupconfig.Form{Fields: []markupconfig.Field{markupconfig.CachePanel(compiler, count, size)}}
			view = templates.NewCacheView(form)
		}

		sse := common.NewSSE(c)
		return sse.PatchElementTempl(
			templates.CachePanelFragment(cachePanel(p, view)),
			datastar.WithSelectorID(templates.CachePanelID),
		)
	}
}
