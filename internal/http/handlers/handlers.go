package handlers

import (
	"context"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
)

// OrderService is the order surface consumed by the HTTP handlers.
// *services.OrderService satisfies it.
type OrderService interface {
	Place(ctx context.Context, in form.OrderSubmission) (*domain.Order, error)
	Get(ctx context.Context, publicID string) (*domain.Order, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Order, error)
	Version(ctx context.Context) (string, error)
}

// ContactService is the contact surface consumed by the HTTP handlers.
// *services.ContactService satisfies it.
type ContactService interface {
	Send(ctx context.Context, in form.ContactSubmission) (*domain.ContactMessage, error)
	Recent(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

// Handlers groups the API and admin endpoints.
type Handlers struct {
	orders   OrderService
	contacts ContactService
}

// New constructs a Handlers bound to the given services.
func New(orders OrderService, contacts ContactService) *Handlers {
	return &Handlers{orders: orders, contacts: contacts}
}
