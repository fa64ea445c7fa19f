package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/cmd/web/templates"
)

func HandleLogin(sm *webauth.SessionManager, admin Admin) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")

		fail := func(status int, msg string) error {
			c.Response().WriteHeader(status)
			return templates.Login(templates.LoginPage{
				Chrome:    templates.Chrome{Lang: common.Locale(c), StyleURL: common.AssetURL(c, "dist/admin.css")},
				Error:     msg,
				Attempted: username,
			}).Render(c.Request().Context(), c.Response())
		}

		if username == "" || password == "" {
			return fail(http.StatusBadRequest, "Username and password are required")
		}

		if !admin.Verify(username, password) {
			slog.Info("failed admin login", "username", username, "remote_ip", c.RealIP())
			return fail(http.StatusUnauthorized, "Invalid username or password")
		}

		if err := sm.SaveSession(c.Response().Writer, c.Request(), username, webauth.AccessAdmin); err != nil {
			slog.Error("failed to save session", "error", err)
			return fail(http.StatusInternalServerError, "An error occurred. Please try again.")
		}

		return c.Redirect(http.StatusFound, AdminHome)
	}
}
