package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/repo"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/services"
)

// ---------- test DB + repo shims ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Minimal shims implementing the service repo contracts (like router.go).
type testOrderRepo struct{}

func (testOrderRepo) CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error {
	return repo.CreateOrder(ctx, db, o)
}

func (testOrderRepo) GetOrder(ctx context.Context, db *gorm.DB, id uint) (*domain.Order, error) {
	return repo.GetOrder(ctx, db, id)
}

func (testOrderRepo) CountOrders(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountOrders(ctx, db)
}

func (testOrderRepo) ListOrdersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Order, error) {
	return repo.ListOrdersPage(ctx, db, offset, limit)
}

func (testOrderRepo) OrdersStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return repo.OrdersStats(ctx, db)
}

type testContactRepo struct{}

func (testContactRepo) CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) error {
	return repo.CreateContactMessage(ctx, db, m)
}

func (testContactRepo) ListContactMessages(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactMessage, error) {
	return repo.ListContactMessages(ctx, db, limit)
}

// ---------- router ----------

func newAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newHandlerDB(t)
	h := New(
		services.NewOrderService(db, testOrderRepo{}, nil),
		services.NewContactService(db, testContactRepo{}, nil),
	)
	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders", h.ListOrders)
	r.GET("/api/orders/:id", h.GetOrder)
	r.POST("/api/contact", h.CreateContact)
	r.GET("/admin", h.Admin)
	return r, db
}

func do(t *testing.T, r http.Handler, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return er
}

func validOrderBody() map[string]any {
	return map[string]any{
		"name":         "Ravi Kumar",
		"mobile":       "9876543210",
		"address":      "12 Lake Road",
		"productType":  "20L Water Jar",
		"quantity":     "2",
		"deliveryTime": "Morning (8 AM - 12 PM)",
		"deliveryDate": "2025-04-01",
	}
}
