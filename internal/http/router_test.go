package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/config"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		RateRPS:   100,
		RateBurst: 10,
		SiteDir:   t.TempDir(),
		OTEL:      config.OTELConfig{ServiceName: "test-svc"},
	}
}

type countingNotifier struct{ orders, contacts int }

func (n *countingNotifier) NotifyOrder(context.Context, *domain.Order) error {
	n.orders++
	return nil
}

func (n *countingNotifier) NotifyContact(context.Context, *domain.ContactMessage) error {
	n.contacts++
	return nil
}

func serve(r http.Handler, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const orderJSON = `{"name":"Ravi","mobile":"9876543210","address":"12 Lake Road","productType":"20L Water Jar","quantity":"1","deliveryTime":"Morning","deliveryDate":"2025-04-01"}`

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig(t), nil)

	w := serve(r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Fatalf("X-Frame-Options = %q", got)
	}

	w = serve(r, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "aquablue_http_requests_total") {
		t.Fatalf("GET /metrics bad: code=%d", w.Code)
	}

	if w = serve(r, http.MethodGet, "/nope", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}
	if w = serve(r, http.MethodPost, "/health", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
	if w = serve(r, http.MethodGet, "/swagger/index.html", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("swagger must be off by default, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig(t)
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	RegisterRoutes(r, newTestDB(t), cfg, nil)

	w := serve(r, http.MethodGet, "/health", "", map[string]string{"Origin": "http://example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_APIEndpointsNotify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	n := &countingNotifier{}
	RegisterRoutes(r, newTestDB(t), testConfig(t), n)

	w := serve(r, http.MethodPost, "/api/orders", orderJSON, nil)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"order_id":"AQB-00000001"`) {
		t.Fatalf("POST /api/orders = %d %s", w.Code, w.Body.String())
	}
	contact := `{"name":"Asha","email":"a@b.co","phone":"9876543210","subject":"Hi","message":"Hello"}`
	if w = serve(r, http.MethodPost, "/api/contact", contact, nil); w.Code != http.StatusCreated {
		t.Fatalf("POST /api/contact = %d %s", w.Code, w.Body.String())
	}
	if w = serve(r, http.MethodGet, "/api/orders", "", nil); w.Code != http.StatusOK || w.Header().Get("ETag") == "" {
		t.Fatalf("GET /api/orders = %d etag=%q", w.Code, w.Header().Get("ETag"))
	}
	if w = serve(r, http.MethodGet, "/api/orders/AQB-00000001", "", nil); w.Code != http.StatusOK {
		t.Fatalf("GET /api/orders/:id = %d", w.Code)
	}
	if n.orders != 1 || n.contacts != 1 {
		t.Fatalf("notifications: %+v", n)
	}
}

func TestRegisterRoutes_RateLimitOnlyOnSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig(t)
	cfg.RateRPS = 0
	cfg.RateBurst = 1
	RegisterRoutes(r, newTestDB(t), cfg, nil)

	if w := serve(r, http.MethodPost, "/api/orders", orderJSON, nil); w.Code != http.StatusCreated {
		t.Fatalf("first POST = %d", w.Code)
	}
	w := serve(r, http.MethodPost, "/api/orders", orderJSON, nil)
	if w.Code != http.StatusTooManyRequests || !strings.Contains(w.Body.String(), "too_many_requests") {
		t.Fatalf("second POST = %d %s", w.Code, w.Body.String())
	}
	for i := 0; i < 3; i++ {
		if w := serve(r, http.MethodGet, "/api/orders", "", nil); w.Code != http.StatusOK {
			t.Fatalf("GET must not be limited, got %d", w.Code)
		}
	}
}

func TestRegisterRoutes_PagesAndAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.SiteDir, "contact.html"), []byte("<form id=contactForm></form>"), 0o644); err != nil {
		t.Fatal(err)
	}
	RegisterRoutes(r, newTestDB(t), cfg, nil)

	for _, path := range []string{"/contact", "/contact.html"} {
		w := serve(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "contactForm") {
			t.Fatalf("GET %s = %d %q", path, w.Code, w.Body.String())
		}
		if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
			t.Fatalf("GET %s Cache-Control = %q", path, cc)
		}
	}
	if w := serve(r, http.MethodGet, "/about", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing page expected 404, got %d", w.Code)
	}

	w := serve(r, http.MethodGet, "/admin", "", map[string]string{"Accept-Encoding": "gzip"})
	if w.Code != http.StatusOK || w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("GET /admin = %d encoding=%q", w.Code, w.Header().Get("Content-Encoding"))
	}
}

func TestRegisterRoutes_SwaggerEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig(t)
	cfg.SwaggerEnabled = true
	RegisterRoutes(r, newTestDB(t), cfg, nil)

	w := serve(r, http.MethodGet, "/swagger/doc.json", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/api/orders") {
		t.Fatalf("GET /swagger/doc.json = %d", w.Code)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	groupWithPrefix(r, "/").GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	groupWithPrefix(r, "").GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })
	groupWithPrefix(r, "/api").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		w := serve(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, w.Code, w.Body.String())
		}
	}
}

func Test_repoShims_Proxy(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	o := &domain.Order{Name: "n", Mobile: "m", Address: "a", ProductType: "p", Quantity: 1, DeliveryTime: "t", DeliveryDate: "d"}
	if err := (orderRepoShim{}).CreateOrder(ctx, db, o); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if got, err := (orderRepoShim{}).GetOrder(ctx, db, o.ID); err != nil || got.Name != "n" {
		t.Fatalf("GetOrder: %+v %v", got, err)
	}
	if n, err := (orderRepoShim{}).CountOrders(ctx, db); err != nil || n != 1 {
		t.Fatalf("CountOrders: %d %v", n, err)
	}
	if page, err := (orderRepoShim{}).ListOrdersPage(ctx, db, 0, 10); err != nil || len(page) != 1 {
		t.Fatalf("ListOrdersPage: %d %v", len(page), err)
	}
	if n, latest, err := (orderRepoShim{}).OrdersStats(ctx, db); err != nil || n != 1 || latest == nil {
		t.Fatalf("OrdersStats: %d %v %v", n, latest, err)
	}

	m := &domain.ContactMessage{Name: "n", Email: "e", Phone: "p", Subject: "s", Message: "m"}
	if err := (contactRepoShim{}).CreateContactMessage(ctx, db, m); err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if list, err := (contactRepoShim{}).ListContactMessages(ctx, db, 5); err != nil || len(list) != 1 {
		t.Fatalf("ListContactMessages: %d %v", len(list), err)
	}
}
