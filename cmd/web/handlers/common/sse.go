package common

import (
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// NewSSE starts a datastar event stream on the response. datastar sets
// Content-Type, Cache-Control and Connection; X-Accel-Buffering keeps nginx
// from holding back the patches.
func NewSSE(c echo.Context) *datastar.ServerSentEventGenerator {
	c.Response().Header().Set("X-Accel-Buffering", "no")
	return datastar.NewSSE(c.Response().Writer, c.Request())
}
