package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/message"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/ctxkeys"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// Locale returns the negotiated locale of the request, "en" when unset.
func Locale(c echo.Context) string {
	if l, ok := c.Request().Context().Value(ctxkeys.Locale).(string); ok && l != "" {
		return l
	}
	return "en"
}

// Printer returns the message printer for the request's locale.
func Printer(c echo.Context) *message.Printer {
	return markupconfig.NewPrinter(Locale(c))
}

// AssetURL returns the versioned URL of an embedded asset, or the plain
// /static/ path when no resolver was installed.
func AssetURL(c echo.Context, name string) string {
	if resolve, ok := c.Request().Context().Value(ctxkeys.Assets).(func(string) string); ok {
		return resolve(name)
	}
	return "/static/" + name
}

// FlashRedirect queues a flash message and redirects with 303 See Other.
func FlashRedirect(c echo.Context, sm *auth.SessionManager, kind, msg, to string) error {
	if err := sm.AddFlash(c.Response().Writer, c.Request(), kind, msg); err != nil {
		return ErrInternal("failed to save session")
	}
	return c.Redirect(http.StatusSeeOther, to)
}
