package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
)

type failingStorage struct{ getErr, setErr error }

func (f failingStorage) GetItem(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}
func (f failingStorage) SetItem(context.Context, string, string) error { return f.setErr }

func TestAppend_AbsentSlotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	s := New(mem)

	rec := ContactRecord{
		ContactSubmission: form.ContactSubmission{Name: "Asha", Email: "a@b.in", Phone: "9876543210", Subject: "Feedback", Message: "Great water"},
		Timestamp:         "2025-01-02T03:04:05.678Z",
	}
	if err := s.Append(ctx, ContactsKey, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	raw, ok, _ := mem.GetItem(ctx, ContactsKey)
	if !ok {
		t.Fatalf("slot not written")
	}
	var got []map[string]string
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("slot is not a JSON array: %v", err)
	}
	want := []map[string]string{{
		"name": "Asha", "email": "a@b.in", "phone": "9876543210",
		"subject": "Feedback", "message": "Great water", "timestamp": "2025-01-02T03:04:05.678Z",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slot content mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_PreservesOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage())
	rec := OrderRecord{OrderSubmission: form.OrderSubmission{Name: "Ravi"}, OrderID: "AQB-12345678", Timestamp: "t"}

	for i := 0; i < 3; i++ {
		if err := s.Append(ctx, OrdersKey, rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Append(ctx, OrdersKey, map[string]string{"marker": "last"}); err != nil {
		t.Fatal(err)
	}
	list, err := s.Records(ctx, OrdersKey)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 records, got %d", len(list))
	}
	if string(list[0]) != string(list[1]) {
		t.Fatalf("duplicates must be kept verbatim")
	}
	if string(list[3]) != `{"marker":"last"}` {
		t.Fatalf("append order broken: %s", list[3])
	}
}

func TestAppend_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage())
	_ = s.Append(ctx, OrdersKey, 1)
	_ = s.Append(ctx, ContactsKey, 2)
	_ = s.Append(ctx, ContactsKey, 3)

	orders, _ := s.Records(ctx, OrdersKey)
	contacts, _ := s.Records(ctx, ContactsKey)
	if len(orders) != 1 || len(contacts) != 2 {
		t.Fatalf("orders=%d contacts=%d", len(orders), len(contacts))
	}
}

func TestAppend_CorruptSlotIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	_ = mem.SetItem(ctx, OrdersKey, `{"not":"an array"}`)
	s := New(mem)

	err := s.Append(ctx, OrdersKey, 1)
	if !errors.Is(err, ErrCorruptSlot) {
		t.Fatalf("expected ErrCorruptSlot, got %v", err)
	}
	raw, _, _ := mem.GetItem(ctx, OrdersKey)
	if raw != `{"not":"an array"}` {
		t.Fatalf("corrupt slot was modified: %q", raw)
	}
}

func TestAppend_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	if err := New(failingStorage{getErr: boom}).Append(ctx, OrdersKey, 1); !errors.Is(err, boom) {
		t.Fatalf("read error not propagated: %v", err)
	}
	if err := New(failingStorage{setErr: boom}).Append(ctx, OrdersKey, 1); !errors.Is(err, boom) {
		t.Fatalf("write error not propagated: %v", err)
	}
	if err := New(NewMemoryStorage()).Append(ctx, OrdersKey, make(chan int)); err == nil {
		t.Fatalf("expected encode error")
	}
}

func TestAppend_ConcurrentWritersLoseNothing(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Append(ctx, ContactsKey, fmt.Sprintf("r%d", i)); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	list, _ := s.Records(ctx, ContactsKey)
	if len(list) != 50 {
		t.Fatalf("expected 50 records, got %d", len(list))
	}
}

func TestTimestamp_ISOMillisUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2025, 3, 1, 14, 0, 0, 123456789, loc)
	if got := Timestamp(ts); got != "2025-03-01T08:30:00.123Z" {
		t.Fatalf("Timestamp = %q", got)
	}
}
