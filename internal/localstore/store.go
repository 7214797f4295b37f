// Package localstore provides the fallback persistence used when a form
// submission cannot reach the backend. It mirrors the browser's local
// storage: a flat string key/value area in which each form owns one named
// slot holding a JSON array of records. Records are only ever appended;
// there is no eviction, size bound, or uniqueness constraint.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Slot keys used by the forms.
const (
	ContactsKey = "aquaBlueContacts"
	OrdersKey   = "aquaBlueOrders"
)

// TimestampLayout renders record timestamps as ISO-8601 UTC with
// millisecond precision (e.g. 2025-03-01T08:30:00.000Z).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrCorruptSlot is returned when a slot holds something other than a JSON
// array. The slot is left untouched.
var ErrCorruptSlot = errors.New("local storage slot is not a JSON array")

// Storage is a durable string key/value area.
type Storage interface {
	// GetItem returns the value for key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// Store appends records to named slots of a Storage.
// It is safe for concurrent use within one process.
type Store struct {
	storage Storage
	mu      sync.Mutex
}

// New returns a Store backed by storage.
func New(storage Storage) *Store {
	return &Store{storage: storage}
}

// Append adds record to the end of the array in slot key. An absent slot is
// treated as an empty array. The read-modify-write is serialised per Store.
func (s *Store) Append(ctx context.Context, key string, record any) error {
	item, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	list = append(list, item)

	out, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := s.storage.SetItem(ctx, key, string(out)); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Records returns the raw records stored in slot key, oldest first.
func (s *Store) Records(ctx context.Context, key string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, key)
}

func (s *Store) load(ctx context.Context, key string) ([]json.RawMessage, error) {
	raw, ok, err := s.storage.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []json.RawMessage{}, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptSlot, key)
	}
	return list, nil
}

// Timestamp formats t the way records carry it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// MemoryStorage is an in-process Storage, useful for tests and one-shot
// CLI runs.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem implements Storage.
func (m *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem implements Storage.
func (m *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}
