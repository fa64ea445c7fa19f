package common

import "github.com/labstack/echo/v4"

// CurrentUserKey is the echo context key the admin guard stores the session
// username under.
const CurrentUserKey = "currentUsername"

// CurrentUser returns the admin username set by the guard, "" outside /admin.
func CurrentUser(c echo.Context) string {
	u, _ := c.Get(CurrentUserKey).(string)
	return u
}
