package common

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrUnauthorized is returned to script clients without an admin session.
func ErrUnauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

// ErrForbidden is returned when a session exists but is not an admin session.
func ErrForbidden() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, "forbidden")
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// WantsPage reports whether the request comes from a browser navigation that
// can follow a redirect to the login page. Datastar fetches and JSON clients
// get status codes instead.
func WantsPage(c echo.Context) bool {
	req := c.Request()
	if req.Header.Get("Datastar-Request") != "" {
		return false
	}
	accept := req.Header.Get(echo.HeaderAccept)
	return !strings.Contains(accept, echo.MIMEApplicationJSON) &&
		!strings.Contains(accept, "text/event-stream")
}
