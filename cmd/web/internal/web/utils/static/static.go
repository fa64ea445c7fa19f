package static

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/videomarkup/static"
)

const (
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheRevalidate = "no-cache, must-revalidate"
)

// asset is the precomputed metadata of one embedded file. Embedded files have
// no modification time, so freshness is judged by content hash only.
type asset struct {
	etag    string
	version string
	size    int64
}

// StaticCache serves the embedded admin assets with content-hash ETags and
// hands out versioned URLs for the templates.
type StaticCache struct {
	entries map[string]asset
	fs      fs.FS
}

// NewStaticCache hashes every file of the embedded asset filesystem.
func NewStaticCache() (*StaticCache, error) {
	return newStaticCache(static.FS)
}

func newStaticCache(fsys fs.FS) (*StaticCache, error) {
	c := &StaticCache{
		entries: make(map[string]asset),
		fs:      fsys,
	}

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		h := sha256.New()
		n, err := io.Copy(h, f)
		if err != nil {
			return err
		}
		sum := hex.EncodeToString(h.Sum(nil))
		c.entries[name] = asset{
			etag:    `"` + sum + `"`,
			version: sum[:12],
			size:    n,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// URL returns the path of an embedded asset under prefix with its content
// version appended, e.g. "/static/dist/admin.css?v=3f2a...". Unknown names are
// returned unversioned.
func (s *StaticCache) URL(prefix, name string) string {
	u := path.Join(prefix, name)
	if a, ok := s.entries[name]; ok {
		u += "?v=" + a.version
	}
	return u
}

// ServeStaticFile serves embedded assets mounted under prefix (e.g. "/static/").
// Requests carrying the current version are cacheable forever; everything else
// revalidates against the ETag.
func (s *StaticCache) ServeStaticFile(prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimPrefix(c.Request().URL.Path, prefix)
		a, ok := s.entries[name]
		if !ok {
			return echo.ErrNotFound
		}

		h := c.Response().Header()
		h.Set("ETag", a.etag)
		if c.QueryParam("v") == a.version {
			h.Set(echo.HeaderCacheControl, cacheImmutable)
		} else {
			h.Set(echo.HeaderCacheControl, cacheRevalidate)
		}

		if c.Request().Header.Get("If-None-Match") == a.etag {
			return c.NoContent(http.StatusNotModified)
		}

		f, err := s.fs.Open(name)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = echo.MIMEOctetStream
		}
		return c.Stream(http.StatusOK, contentType, f)
	}
}
