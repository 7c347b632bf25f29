package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/dataset"
)

type memoryStore struct {
	ds dataset.Dataset
}

func newMemoryStore() *memoryStore {
	return &memoryStore{ds: dataset.New()}
}

func (m *memoryStore) Load(ctx context.Context) (dataset.Dataset, error) {
	return m.ds.Clone(), nil
}

func (m *memoryStore) Save(ctx context.Context, ds dataset.Dataset) error {
	m.ds = ds.Clone()
	return nil
}

func (m *memoryStore) Path() string {
	return "memory"
}

func newTestService() *Service {
	svc := NewService(newMemoryStore())
	svc.Now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceAddDateDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddDate(ctx, "Viaje", "2026-03-11", "", "")
	if err != nil {
		t.Fatalf("AddDate failed: %v", err)
	}
	if dto.Category != "General" {
		t.Fatalf("expected category General, got %s", dto.Category)
	}
	if dto.Days != 10 || dto.Status != "10 days left" {
		t.Fatalf("unexpected distance %d %q", dto.Days, dto.Status)
	}
	if dto.Created != "2026-03-01 12:00" {
		t.Fatalf("unexpected created %q", dto.Created)
	}

	if _, err := svc.AddDate(ctx, "Viaje", "2026-04-01", "", ""); !errors.Is(err, app.ErrDuplicateName) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestServiceListAndNext(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, d := range [][2]string{{"Past", "2026-02-27"}, {"Soon", "2026-03-04"}, {"Far", "2026-12-01"}} {
		if _, err := svc.AddDate(ctx, d[0], d[1], "", ""); err != nil {
			t.Fatalf("AddDate %s: %v", d[0], err)
		}
	}

	l, err := svc.ListDates(ctx, ListOptions{All: true, Within: 7})
	if err != nil {
		t.Fatalf("ListDates: %v", err)
	}
	if l.Count != 2 || len(l.Past) != 1 || l.Upcoming[0].Name != "Soon" {
		t.Fatalf("unexpected listing %+v", l)
	}

	next, err := svc.NextDate(ctx)
	if err != nil {
		t.Fatalf("NextDate: %v", err)
	}
	if next.Name != "Past" {
		t.Fatalf("expected the date two days ago to be closest, got %s", next.Name)
	}

	got, err := svc.DateByName(ctx, "Far")
	if err != nil || got.Date != "2026-12-01" {
		t.Fatalf("DateByName: %+v %v", got, err)
	}
	if _, err := svc.DateByName(ctx, "Nope"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceCategories(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.AddDate(ctx, "Demo", "2026-05-01", "", ""); err != nil {
		t.Fatalf("AddDate: %v", err)
	}
	if _, err := svc.MoveDate(ctx, "Demo", "Work", false); !errors.Is(err, app.ErrCategoryNotFound) {
		t.Fatalf("expected missing category, got %v", err)
	}
	if _, err := svc.AddCategory(ctx, "Work", "blue"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	moved, err := svc.MoveDate(ctx, "Demo", "Work", false)
	if err != nil || moved.Category != "Work" {
		t.Fatalf("MoveDate: %+v %v", moved, err)
	}
	if c, err := svc.RecolorCategory(ctx, "Work", "#336699"); err != nil || c.Color != "#336699" {
		t.Fatalf("RecolorCategory: %+v %v", c, err)
	}
	n, err := svc.RemoveCategory(ctx, "Work", "General")
	if err != nil || n != 1 {
		t.Fatalf("RemoveCategory: %d %v", n, err)
	}
	all, err := svc.ListCategories(ctx)
	if err != nil || len(all) != 1 || all[0].Entries != 1 {
		t.Fatalf("ListCategories: %+v %v", all, err)
	}
}

func TestServiceNoPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.ListDates(context.Background(), ListOptions{}); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestTemplateArg(t *testing.T) {
	args := map[string]any{"a": "x", "b": []string{"y", "z"}, "c": 3}
	if templateArg(args, "a") != "x" || templateArg(args, "b") != "y" || templateArg(args, "c") != "" || templateArg(args, "d") != "" {
		t.Fatal("unexpected template arguments")
	}
}
