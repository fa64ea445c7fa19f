package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestNewStaticCache_BuildsEntries(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	for _, name := range []string{"dist/admin.css", "dist/admin.js"} {
		a, ok := cache.entries[name]
		require.True(t, ok, name)
		require.Regexp(t, regexp.MustCompile(`^"[0-9a-f]{64}"$`), a.etag)
		require.Len(t, a.version, 12)
		require.Positive(t, a.size)
	}
}

func TestURL(t *testing.T) {
	cache, err := newStaticCache(fstest.MapFS{
		"dist/admin.css": {Data: []byte("body{}")},
	})
	require.NoError(t, err)

	require.Regexp(t, `^/static/dist/admin\.css\?v=[0-9a-f]{12}$`, cache.URL("/static/", "dist/admin.css"))
	require.Equal(t, "/static/dist/missing.js", cache.URL("/static/", "dist/missing.js"))
}

func TestURL_ChangesWithContent(t *testing.T) {
	a, err := newStaticCache(fstest.MapFS{"dist/admin.js": {Data: []byte("one")}})
	require.NoError(t, err)
	b, err := newStaticCache(fstest.MapFS{"dist/admin.js": {Data: []byte("two")}})
	require.NoError(t, err)

	require.NotEqual(t, a.URL("/static/", "dist/admin.js"), b.URL("/static/", "dist/admin.js"))
}

func TestServeStaticFile(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	h := cache.ServeStaticFile("/static/")

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/static/dist/admin.css", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, cacheRevalidate, rec.Header().Get(echo.HeaderCacheControl))
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/static/dist/admin.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusNotModified, rec.Code)

	err = h(e.NewContext(httptest.NewRequest(http.MethodGet, "/static/dist/missing.js", nil), httptest.NewRecorder()))
	require.ErrorIs(t, err, echo.ErrNotFound)
}

func TestServeStaticFile_VersionedIsImmutable(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	h := cache.ServeStaticFile("/static/")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, cache.URL("/static/", "dist/admin.js"), nil)
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, cacheImmutable, rec.Header().Get(echo.HeaderCacheControl))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/static/dist/admin.js?v=stale", nil)
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, cacheRevalidate, rec.Header().Get(echo.HeaderCacheControl))
}
