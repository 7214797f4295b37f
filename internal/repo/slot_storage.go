package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

// SlotStorage is a durable key/value area over the local_slots table. It
// satisfies localstore.Storage, so the fallback store survives restarts of
// the submitting process.
type SlotStorage struct {
	db *gorm.DB
}

// NewSlotStorage returns a SlotStorage on db. Call AutoMigrateSlots first.
func NewSlotStorage(db *gorm.DB) *SlotStorage {
	return &SlotStorage{db: db}
}

// GetItem returns the value stored under key and whether it exists.
func (s *SlotStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var slot domain.Slot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

// SetItem upserts value under key.
func (s *SlotStorage) SetItem(ctx context.Context, key, value string) error {
	slot := domain.Slot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

// Keys lists the stored slot keys in ascending order.
func (s *SlotStorage) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&domain.Slot{}).Order("slot_key").Pluck("slot_key", &keys).Error
	return keys, err
}
