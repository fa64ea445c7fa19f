package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/videomarkup/cmd/web/auth"
)

// HandleLogout ends the admin session. POST only; the redirect uses 303 so
// the browser follows with a GET.
func HandleLogout(sm *webauth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if username, err := sm.GetSession(c.Request()); err == nil {
			attrs := []any{"username", username, "remote_ip", c.RealIP()}
			if created := sm.GetSessionCreatedAt(c.Request()); !created.IsZero() {
				attrs = append(attrs, "session_age", time.Since(created).Round(time.Second))
			}
			slog.Info("admin logged out", attrs...)
		}
		sm.ClearSession(c.Response().Writer, c.Request())
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}
