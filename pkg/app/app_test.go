package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
	"tableflip.dev/datekeeper/pkg/store"
)

var today = time.Date(2026, time.June, 10, 15, 4, 0, 0, time.UTC)

type memoryPersistence struct {
	mu    sync.Mutex
	ds    dataset.Dataset
	saves int
}

var _ store.Persistence = (*memoryPersistence)(nil)

func newMemoryPersistence(entries ...entry.Entry) *memoryPersistence {
	ds := dataset.New()
	for _, e := range entries {
		next, err := Add(ds, e)
		if err != nil {
			panic(err)
		}
		ds = next
	}
	return &memoryPersistence{ds: ds}
}

func (m *memoryPersistence) Load(ctx context.Context) (dataset.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ds.Clone(), nil
}

func (m *memoryPersistence) Save(ctx context.Context, ds dataset.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ds = ds.Clone()
	m.saves++
	return nil
}

func (m *memoryPersistence) Path() string {
	return "memory"
}

func mustEntry(t *testing.T, name string, offset int, cat string) entry.Entry {
	t.Helper()
	date := entry.DateOf(today).AddDays(offset).String()
	e, err := entry.New(name, date, "", cat, today.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("entry %s: %v", name, err)
	}
	return e
}

func newService(mp *memoryPersistence) *Service {
	return &Service{Persistence: mp, Now: func() time.Time { return today }}
}

func TestServiceAddPersists(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp)
	ctx := context.Background()

	e, err := svc.Add(ctx, "Trip", "2026-08-01", "beach", "Travel")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := e.CreatedAt.String(); got != "2026-06-10 15:04" {
		t.Fatalf("expected creation time from clock, got %q", got)
	}
	if mp.saves != 1 {
		t.Fatalf("expected one save, got %d", mp.saves)
	}
	if _, ok := mp.ds.Entry("Trip"); !ok {
		t.Fatal("entry not stored")
	}
	if c, ok := mp.ds.Category("Travel"); !ok || c.Color != category.DefaultColor {
		t.Fatalf("expected auto-created category, got %+v %v", c, ok)
	}
}

func TestServiceAddValidation(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp)
	if _, err := svc.Add(context.Background(), "x", "2026-02-30", "", ""); !errors.Is(err, entry.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("failed add must not save, got %d saves", mp.saves)
	}
}

func TestServiceFailedOperationDoesNotSave(t *testing.T) {
	mp := newMemoryPersistence(mustEntry(t, "a", 1, ""))
	svc := newService(mp)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "a", "2026-01-01", "", ""); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := svc.Remove(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Move(ctx, "a", "Nowhere", false); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no saves, got %d", mp.saves)
	}
}

func TestServiceReadsDoNotSave(t *testing.T) {
	mp := newMemoryPersistence(mustEntry(t, "a", 1, ""), mustEntry(t, "b", -1, ""))
	svc := newService(mp)
	ctx := context.Background()

	if _, err := svc.List(ctx, Filter{All: true}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := svc.Categories(ctx); err != nil {
		t.Fatalf("categories: %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no saves, got %d", mp.saves)
	}
}

func TestServiceCategoryLifecycle(t *testing.T) {
	mp := newMemoryPersistence(mustEntry(t, "a", 1, ""))
	svc := newService(mp)
	ctx := context.Background()

	if _, err := svc.AddCategory(ctx, "Work", "blue"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := svc.Move(ctx, "a", "Work", false); err != nil {
		t.Fatalf("move: %v", err)
	}
	c, err := svc.RecolorCategory(ctx, "Work", "#ff0000")
	if err != nil {
		t.Fatalf("recolor: %v", err)
	}
	if c.Color != category.Color("#ff0000") {
		t.Fatalf("unexpected color %q", c.Color)
	}
	n, err := svc.RemoveCategory(ctx, "Work", category.Default)
	if err != nil {
		t.Fatalf("remove category: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 refiled entry, got %d", n)
	}
	if e, _ := mp.ds.Entry("a"); e.Category != category.Default {
		t.Fatalf("expected entry back in default category, got %q", e.Category)
	}
	if mp.saves != 4 {
		t.Fatalf("expected 4 saves, got %d", mp.saves)
	}
}

func TestServiceWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Next(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestServiceToday(t *testing.T) {
	svc := newService(newMemoryPersistence())
	got := svc.Today()
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != today.Day() {
		t.Fatalf("expected midnight of the current day, got %v", got)
	}
}
