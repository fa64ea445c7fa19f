package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/admin"
	authhandlers "thirdcoast.systems/videomarkup/cmd/web/handlers/auth"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
	"thirdcoast.systems/videomarkup/pkg/utils/passwords"
)

type memConfig struct{ data map[string]string }

func (m *memConfig) Get() map[string]string { return m.data }

func (m *memConfig) Save(_ context.Context, data map[string]string) error {
	m.data = data
	return nil
}

type memCache struct{ count int }

func (m *memCache) CountByPrefix(context.Context, string) (int, error) { return m.count, nil }

func (m *memCache) ClearFor(context.Context, string) error {
	m.count = 0
	return nil
}

func newTestServer(t *testing.T, locale string) *Webserver {
	t.Helper()
	hash, err := argon2id.CreateHash("hunter2", &argon2id.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)
	pw, err := passwords.ParsePassword(hash)
	require.NoError(t, err)

	s, err := NewWebserver(context.Background(), Options{
		Sessions: auth.NewSessionManager("test-secret"),
		Admin:    authhandlers.Admin{Username: "admin", Password: pw},
		Module: &admin.Module{
			Owner:  "TextformatterVideoMarkup",
			Config: &memConfig{data: map[string]string{}},
			Cache:  &memCache{count: 2},
		},
		DefaultLocale: locale,
	})
	require.NoError(t, err)
	return s
}

func login(t *testing.T, s *Webserver) []*http.Cookie {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	return rec.Result().Cookies()
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	s := newTestServer(t, "en")

	for _, path := range []string{"/admin/video-markup", "/admin/video-markup/cache", "/admin/video-markup/fields"} {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusFound, rec.Code, path)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)
	}
}

func TestAdminRoutes_ScriptClientsGetUnauthorized(t *testing.T) {
	s := newTestServer(t, "en")

	req := httptest.NewRequest(http.MethodGet, "/admin/video-markup/cache", nil)
	req.Header.Set("Datastar-Request", "true")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/video-markup/fields", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminPage_AfterLogin(t *testing.T) {
	s := newTestServer(t, "en")
	cookies := login(t, s)

	req := httptest.NewRequest(http.MethodGet, "/admin/video-markup", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "There are 2 cached videos.")
	require.Regexp(t, `href="/static/dist/admin\.css\?v=[0-9a-f]{12}"`, rec.Body.String())
}

func TestLocaleNegotiation(t *testing.T) {
	s := newTestServer(t, "de")
	cookies := login(t, s)

	get := func(acceptLanguage string) string {
		req := httptest.NewRequest(http.MethodGet, "/admin/video-markup", nil)
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	require.Contains(t, get(""), `<html lang="de">`)
	require.Contains(t, get(""), "Es gibt 2 zwischengespeicherte Videos.")
	require.Contains(t, get("en-US,en;q=0.9"), `<html lang="en">`)
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, "en")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/dist/admin.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCompilerIsNotCachedBetweenRequests(t *testing.T) {
	s := newTestServer(t, "en")
	cookies := login(t, s)

	get := func(lang string) string {
		req := httptest.NewRequest(http.MethodGet, "/admin/video-markup/fields", nil)
		req.Header.Set("Accept-Language", lang)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	require.Contains(t, get("de"), markupconfig.Translate(markupconfig.NewPrinter("de"), "Enable"))
	require.Contains(t, get("en"), `"label":"Enable"`)
}
