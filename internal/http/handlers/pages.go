package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/http/middleware"
)

// Pages serves the static site. Each request re-reads the file so edits are
// visible without a restart.
type Pages struct {
	dir string
}

// NewPages serves HTML files from dir.
func NewPages(dir string) *Pages { return &Pages{dir: dir} }

// Serve returns a handler for dir/<name>. The ETag and Last-Modified headers
// follow the file's modification time.
func (p *Pages) Serve(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(p.dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				middleware.LoggerFrom(c).Warn().Err(err).Str("page", name).Msg("page lookup failed")
			}
			c.String(http.StatusNotFound, "File not found: %s", name)
			return
		}

		mod := info.ModTime()
		etag := fmt.Sprintf(`"%d"`, mod.Unix())
		h := c.Writer.Header()
		h.Set("ETag", etag)
		h.Set("Last-Modified", mod.UTC().Format(http.TimeFormat))
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}

		body, err := os.ReadFile(path)
		if err != nil {
			c.String(http.StatusNotFound, "File not found: %s", name)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	}
}
