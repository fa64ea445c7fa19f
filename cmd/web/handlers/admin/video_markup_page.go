package admin

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/cmd/web/templates"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

func HandleVideoMarkupPage(sm *auth.SessionManager, m *Module) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		p := common.Printer(c)
		compiler := markupconfig.NewCompiler(p)
		form := m.buildForm(ctx, compiler)

		page := templates.VideoMarkupPage{
			Chrome: templates.Chrome{
				Title:    p.Sprintf("Video Markup"),
				Lang:     common.Locale(c),
				Username: common.CurrentUser(c),
				Flashes:  sm.Flashes(c.Response().Writer, c.Request()),
				StyleURL: common.AssetURL(c, "dist/admin.css"),
			},
			Heading:     p.Sprintf("Video Markup"),
			Action:      VideoMarkupRoute,
			SubmitLabel: p.Sprintf("Save"),
			Fields:      templates.NewFieldViews(form),
			CachePanel:  cachePanel(p, templates.NewCacheView(form)),
			AceEnabled:  m.Ace != nil,
			ScriptURL:   common.AssetURL(c, "dist/admin.js"),
		}
		return templates.VideoMarkup(page).Render(ctx, c.Response())
	}
}
