package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/ctxkeys"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/admin"
	authhandlers "thirdcoast.systems/videomarkup/cmd/web/handlers/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/common"
	staticpkg "thirdcoast.systems/videomarkup/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

// Options wires the webserver to its stores.
type Options struct {
	Sessions      *auth.SessionManager
	Admin         authhandlers.Admin
	Module        *admin.Module
	DefaultLocale string
}

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	admin          authhandlers.Admin
	module         *admin.Module
	defaultLocale  string
	staticCache    *staticpkg.StaticCache
}

func NewWebserver(ctx context.Context, opts Options) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: opts.Sessions,
		admin:          opts.Admin,
		module:         opts.Module,
		defaultLocale:  opts.DefaultLocale,
		staticCache:    staticCache,
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// SSE responses must flush unbuffered.
			return c.Path() == admin.VideoMarkupRoute+"/cache"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Access level and locale go into the request context for handlers and templates.
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accessLevel := s.sessionManager.GetAccessLevel(c.Request())
			c.Set("accessLevel", string(accessLevel))

			locale := markupconfig.MatchLocale(c.Request().Header.Get("Accept-Language"), s.defaultLocale)

			ctx := context.WithValue(c.Request().Context(), ctxkeys.AccessLevel, string(accessLevel))
			ctx = context.WithValue(ctx, ctxkeys.Locale, locale)
			ctx = context.WithValue(ctx, ctxkeys.Assets, s.assetURL)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	return nil
}

func (s *Webserver) assetURL(name string) string {
	return s.staticCache.URL("/static/", name)
}

func (s *Webserver) registerRoutes() error {
	s.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, admin.VideoMarkupRoute)
	})
	s.GET("/login", authhandlers.HandleLoginPage(s.sessionManager))
	s.POST("/login", authhandlers.HandleLogin(s.sessionManager, s.admin))
	s.POST("/logout", authhandlers.HandleLogout(s.sessionManager))

	adminGroup := s.Group("/admin")
	adminGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := s.sessionManager.GetSession(c.Request())
			if err != nil {
				if !common.WantsPage(c) {
					return common.ErrUnauthorized()
				}
				return c.Redirect(http.StatusFound, "/login")
			}

			// Access level is stored in the session cookie at login time.
			if s.sessionManager.GetAccessLevel(c.Request()) != auth.AccessAdmin {
				return common.ErrForbidden()
			}

			c.Set(common.CurrentUserKey, username)
			return next(c)
		}
	})

	adminGroup.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, admin.VideoMarkupRoute)
	})
	adminGroup.GET("/video-markup", admin.HandleVideoMarkupPage(s.sessionManager, s.module))
	adminGroup.POST("/video-markup", admin.HandleVideoMarkupUpdate(s.sessionManager, s.module))
	adminGroup.GET("/video-markup/cache", admin.HandleVideoMarkupCache(s.module))
	adminGroup.GET("/video-markup/fields", admin.HandleVideoMarkupFields(s.module))

	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	return nil
}
