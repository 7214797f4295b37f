package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

// CreateContactMessage inserts m with a UTC CreatedAt.
func CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(m).Error
}

// ListContactMessages returns up to limit messages, newest first.
func ListContactMessages(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	err := db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}
