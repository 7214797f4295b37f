// Package services – OrderService
//
// OrderService accepts orders from the order form, persists them, and
// notifies the admin mailbox. It checks required fields in a fixed order and
// reports the first blank one, so clients get a stable message.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
)

// OrderRepo defines the repository contract required by OrderService.
type OrderRepo interface {
	CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error
	GetOrder(ctx context.Context, db *gorm.DB, id uint) (*domain.Order, error)
	CountOrders(ctx context.Context, db *gorm.DB) (int64, error)
	ListOrdersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Order, error)
	OrdersStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error)
}

// Notifier delivers admin notifications for new submissions.
type Notifier interface {
	NotifyOrder(ctx context.Context, o *domain.Order) error
	NotifyContact(ctx context.Context, m *domain.ContactMessage) error
}

// OrderService provides order placement and listing.
type OrderService struct {
	DB       *gorm.DB
	Repo     OrderRepo
	Notifier Notifier // optional
}

// NewOrderService constructs an OrderService. n may be nil.
func NewOrderService(db *gorm.DB, r OrderRepo, n Notifier) *OrderService {
	return &OrderService{DB: db, Repo: r, Notifier: n}
}

// Place validates in, stores it as a pending order, and sends the admin
// notification. A failed notification is logged and does not fail the call.
func (s *OrderService) Place(ctx context.Context, in form.OrderSubmission) (*domain.Order, error) {
	o := &domain.Order{
		Name:         cleanText(in.Name),
		Mobile:       cleanText(in.Mobile),
		Email:        cleanText(in.Email),
		Address:      cleanFreeText(in.Address),
		ProductType:  cleanText(in.ProductType),
		DeliveryTime: cleanText(in.DeliveryTime),
		DeliveryDate: cleanText(in.DeliveryDate),
		Notes:        cleanFreeText(in.Notes),
		Status:       domain.StatusPending,
	}
	qty := strings.TrimSpace(in.Quantity)

	for _, f := range []struct{ name, val string }{
		{"name", o.Name},
		{"mobile", o.Mobile},
		{"address", o.Address},
		{"productType", o.ProductType},
		{"quantity", qty},
		{"deliveryTime", o.DeliveryTime},
		{"deliveryDate", o.DeliveryDate},
	} {
		if f.val == "" {
			submissionsTotal.WithLabelValues("order", resultInvalid).Inc()
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	n, err := strconv.Atoi(qty)
	if err != nil || n < 1 {
		submissionsTotal.WithLabelValues("order", resultInvalid).Inc()
		return nil, ErrInvalidQuantity
	}
	o.Quantity = n

	if err := s.Repo.CreateOrder(ctx, s.DB, o); err != nil {
		submissionsTotal.WithLabelValues("order", resultError).Inc()
		return nil, err
	}
	submissionsTotal.WithLabelValues("order", resultAccepted).Inc()

	if s.Notifier != nil {
		if err := s.Notifier.NotifyOrder(ctx, o); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("order_id", o.PublicID()).Msg("order notification failed")
		}
	}
	return o, nil
}

// Get returns the order with the given public id ("AQB-00000042").
func (s *OrderService) Get(ctx context.Context, publicID string) (*domain.Order, error) {
	id, ok := ParsePublicID(publicID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	o, err := s.Repo.GetOrder(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// ListPage returns a page of orders, newest first, plus the total count.
// It applies defaults for invalid page/pageSize.
func (s *OrderService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountOrders(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Order{}, 0, nil
	}
	items, err := s.Repo.ListOrdersPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Recent returns the latest limit orders for the admin dashboard.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.Repo.ListOrdersPage(ctx, s.DB, 0, limit)
}

// Version returns a short token that changes whenever an order is added.
// Handlers use it as a weak ETag.
func (s *OrderService) Version(ctx context.Context) (string, error) {
	count, latest, err := s.Repo.OrdersStats(ctx, s.DB)
	if err != nil {
		return "", err
	}
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	return fmt.Sprintf("%d-%d", count, ts), nil
}

// ParsePublicID extracts the row id from "AQB-<digits>".
func ParsePublicID(s string) (uint, bool) {
	digits, ok := strings.CutPrefix(s, "AQB-")
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 0)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
