package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

// CreateOrder inserts o with status "pending" and a UTC CreatedAt. The
// assigned ID is written back into o.
func CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error {
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(o).Error
}

// GetOrder fetches a single order by primary key, or ErrNotFound.
func GetOrder(ctx context.Context, db *gorm.DB, id uint) (*domain.Order, error) {
	var o domain.Order
	if err := db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// CountOrders returns the total number of orders.
func CountOrders(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Order{}).Count(&total).Error
	return total, err
}

// ListOrdersPage returns orders newest first. Ties on CreatedAt are broken
// by id so pages are stable.
func ListOrdersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
