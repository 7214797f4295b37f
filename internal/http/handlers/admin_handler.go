package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

// adminLimit is how many orders and messages the dashboard shows.
const adminLimit = 50

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded HTML templates. The router installs them
// with gin's SetHTMLTemplate.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"fmtTime": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

type adminView struct {
	Orders   []domain.Order
	Messages []domain.ContactMessage
}

// Admin renders the dashboard with the latest orders and contact messages.
// The two lookups run concurrently.
func (h *Handlers) Admin(c *gin.Context) {
	var view adminView
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		view.Orders, err = h.orders.Recent(ctx, adminLimit)
		return err
	})
	g.Go(func() (err error) {
		view.Messages, err = h.contacts.Recent(ctx, adminLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	c.HTML(http.StatusOK, "admin.tmpl", view)
}
