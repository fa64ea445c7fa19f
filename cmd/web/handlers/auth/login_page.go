package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/cmd/web/templates"
)

// AdminHome is where a successful login lands.
const AdminHome = "/admin/video-markup"

func HandleLoginPage(sm *webauth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if sm.GetAccessLevel(c.Request()) == webauth.AccessAdmin {
			return c.Redirect(http.StatusFound, AdminHome)
		}
		return templates.Login(templates.LoginPage{
			Chrome: templates.Chrome{
				Lang:     common.Locale(c),
				Flashes:  sm.Flashes(c.Response().Writer, c.Request()),
				StyleURL: common.AssetURL(c, "dist/admin.css"),
			},
		}).Render(c.Request().Context(), c.Response())
	}
}
