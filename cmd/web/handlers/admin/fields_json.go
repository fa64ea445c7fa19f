package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// HandleVideoMarkupFields returns the compiled form with its current values.
func HandleVideoMarkupFields(m *Module) echo.HandlerFunc {
	return func(c echo.Context) error {
		form := m.buildForm(c.Request().Context(), markupconfig.NewCompiler(common.Printer(c)))
		return c.JSON(http.StatusOK, map[string]any{
			"fields": form.Fields,
			"values": form.Settings.Data(),
		})
	}
}
