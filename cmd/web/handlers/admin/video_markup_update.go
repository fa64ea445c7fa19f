package admin

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// maxFieldFlashes bounds the per-field messages kept in the session cookie.
const maxFieldFlashes = 8

// HandleVideoMarkupUpdate saves the submitted settings, or clears the cache
// when the clear-cache button was pressed.
func HandleVideoMarkupUpdate(sm *auth.SessionManager, m *Module) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		p := common.Printer(c)
		username := common.CurrentUser(c)

		if c.FormValue(markupconfig.ClearCacheField) != "" {
			if err := m.Cache.ClearFor(ctx, m.Owner); err != nil {
				slog.Error("failed to clear cache", "owner", m.Owner, "error", err)
				return common.FlashRedirect(c, sm, auth.FlashError, p.Sprintf("Failed to clear cache"), VideoMarkupRoute)
			}
			slog.Info("video markup cache cleared", "owner", m.Owner, "username", username)
			return common.FlashRedirect(c, sm, auth.FlashSuccess, markupconfig.Translate(p, markupconfig.MsgCacheCleared), VideoMarkupRoute)
		}

		values, err := c.FormParams()
		if err != nil {
			return common.ErrBadRequest("invalid form")
		}

		form := m.buildForm(ctx, markupconfig.NewCompiler(p))
		settings, err := markupconfig.ParseSubmission(form, values)
		var fieldErrs markupconfig.FieldErrors
		if errors.As(err, &fieldErrs) {
			names := slices.Sorted(maps.Keys(fieldErrs))
			slog.Info("rejected video markup settings", "username", username, "fields", names)

			msgs := make([]string, 0, min(len(names), maxFieldFlashes)+2)
			for _, name := range names[:min(len(names), maxFieldFlashes)] {
				msgs = append(msgs, fieldLabel(form, name)+": "+fieldErrs[name])
			}
			if extra := len(names) - maxFieldFlashes; extra > 0 {
				msgs = append(msgs, markupconfig.Translate(p, markupconfig.MsgMoreInvalid, extra))
			}
			msgs = append(msgs, markupconfig.Translate(p, markupconfig.MsgSettingsInvalid))
			if err := sm.AddFlashes(c.Response().Writer, c.Request(), auth.FlashError, msgs...); err != nil {
				slog.Error("failed to save session", "username", username, "error", err)
				return common.ErrInternal("failed to save session")
			}
			return c.Redirect(http.StatusSeeOther, VideoMarkupRoute)
		}
		if err != nil {
			return common.ErrInternal(err.Error())
		}

		if err := m.Config.Save(ctx, settings.Data()); err != nil {
			slog.Error("failed to save video markup settings", "owner", m.Owner, "error", err)
			return common.FlashRedirect(c, sm, auth.FlashError, p.Sprintf("Failed to save settings"), VideoMarkupRoute)
		}

		slog.Info("video markup settings saved", "owner", m.Owner, "username", username)
		return common.FlashRedirect(c, sm, auth.FlashSuccess, markupconfig.Translate(p, markupconfig.MsgSettingsSaved), VideoMarkupRoute)
	}
}

func fieldLabel(form *markupconfig.Form, name string) string {
	if f, ok := form.Lookup(name); ok && f.Common().Label != "" {
		return f.Common().Label
	}
	return name
}
