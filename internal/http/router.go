// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, compression, and rate limiting.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/Ramsagar705/aqua-blue-hydropack/docs"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/config"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/http/handlers"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/http/middleware"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/repo"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/services"
)

// orderRepoShim adapts the repository free functions to services.OrderRepo.
type orderRepoShim struct{}

// CreateOrder proxies repo.CreateOrder.
func (orderRepoShim) CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error {
	return repo.CreateOrder(ctx, db, o)
}

// GetOrder proxies repo.GetOrder.
func (orderRepoShim) GetOrder(ctx context.Context, db *gorm.DB, id uint) (*domain.Order, error) {
	return repo.GetOrder(ctx, db, id)
}

// CountOrders proxies repo.CountOrders.
func (orderRepoShim) CountOrders(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountOrders(ctx, db)
}

// ListOrdersPage proxies repo.ListOrdersPage.
func (orderRepoShim) ListOrdersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Order, error) {
	return repo.ListOrdersPage(ctx, db, offset, limit)
}

// OrdersStats proxies repo.OrdersStats (ETag support).
func (orderRepoShim) OrdersStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return repo.OrdersStats(ctx, db)
}

// contactRepoShim adapts the repository free functions to services.ContactRepo.
type contactRepoShim struct{}

// CreateContactMessage proxies repo.CreateContactMessage.
func (contactRepoShim) CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) error {
	return repo.CreateContactMessage(ctx, db, m)
}

// ListContactMessages proxies repo.ListContactMessages.
func (contactRepoShim) ListContactMessages(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactMessage, error) {
	return repo.ListContactMessages(ctx, db, limit)
}

// sitePages maps each public route to the HTML file it serves.
var sitePages = []struct{ route, file string }{
	{"/", "index.html"},
	{"/about", "about.html"},
	{"/services", "services.html"},
	{"/order", "order.html"},
	{"/contact", "contact.html"},
	{"/contact.html", "contact.html"},
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. n may be nil, in which case no admin e-mails are sent.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CORS and Security headers
//
// The rate limiter guards only the two form submission endpoints; pages and
// the admin dashboard are served uncached and gzip-compressed.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, n services.Notifier) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB is plenty for either form)
	r.Use(limitBody(64 << 10))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS posture (allow all if none configured) and security headers
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
		FrameOptions: "SAMEORIGIN",
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/notifier
	h := handlers.New(
		services.NewOrderService(db, orderRepoShim{}, n),
		services.NewContactService(db, contactRepoShim{}, n),
	)

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	api := groupWithPrefix(r, "/api")
	{
		api.POST("/orders", rl.Handler(), h.CreateOrder)
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/contact", rl.Handler(), h.CreateContact)
	}

	// Server-rendered HTML
	r.SetHTMLTemplate(handlers.Templates())
	html := r.Group("", gzip.Gzip(gzip.DefaultCompression), middleware.NoCache())
	html.GET("/admin", h.Admin)

	pages := handlers.NewPages(cfg.SiteDir)
	for _, p := range sitePages {
		html.GET(p.route, pages.Serve(p.file))
	}
}

// corsMiddleware returns the CORS handlers for the configured allowlist.
// An empty allowlist permits every origin without credentials.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "If-None-Match"},
		ExposeHeaders:    []string{"X-Request-ID", "ETag", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		base.AllowAllOrigins = true
		// Force ACAO: * even without an Origin header (simple health checks).
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps the request body size for all endpoints to maxBytes using
// http.MaxBytesReader. Requests exceeding the cap fail to bind.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
