package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
)

var fixedNow = time.Date(2026, time.May, 1, 12, 34, 56, 0, time.UTC)

func newTestPersistence(t *testing.T) (*persistence, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "important_dates.json")
	return newPersistence(path, func() time.Time { return fixedNow }), path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func mustEntry(t *testing.T, name, date, cat string) entry.Entry {
	t.Helper()
	e, err := entry.New(name, date, "", cat, fixedNow)
	if err != nil {
		t.Fatalf("entry %s: %v", name, err)
	}
	return e
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	p, path := newTestPersistence(t)
	ds, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(ds.Entries))
	}
	if _, ok := ds.Category(category.Default); !ok {
		t.Fatal("expected default category")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("load must not create the file, stat: %v", err)
	}
}

func TestLoadEmptyFileIsEmpty(t *testing.T) {
	p, path := newTestPersistence(t)
	writeFile(t, path, "  \n")
	ds, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(ds.Entries))
	}
}

func TestLoadCorrupt(t *testing.T) {
	cases := map[string]string{
		"syntax":         `{"dates": [`,
		"bad date":       `{"dates": [{"name": "x", "date": "2026-13-01"}], "categories": []}`,
		"empty name":     `{"dates": [{"name": " ", "date": "2026-01-01"}]}`,
		"bad created":    `{"dates": [{"name": "x", "date": "2026-01-01", "created_at": "yesterday"}]}`,
		"duplicate":      `{"dates": [{"name": "x", "date": "2026-01-01"}, {"name": "x", "date": "2026-01-02"}]}`,
		"bad color":      `{"dates": [], "categories": [{"name": "Work", "color": "plaid"}]}`,
		"dup category":   `{"dates": [], "categories": [{"name": "Work", "color": "red"}, {"name": "Work", "color": "blue"}]}`,
		"wrong toplevel": `"hello"`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p, path := newTestPersistence(t)
			writeFile(t, path, content)
			if _, err := p.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestLoadMigratesLegacyArray(t *testing.T) {
	p, path := newTestPersistence(t)
	writeFile(t, path, `[
  {"name": "Old Date", "date": "2026-01-01", "description": null, "created_at": "2025-12-01"},
  {"name": "No Created", "date": "2026-02-01"},
  {"name": "Grouped", "date": "2026-03-01 18:30", "group": "Work", "created_at": "2025-11-01 08:15"}
]`)

	ds, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Migrated != 3 {
		t.Fatalf("expected 3 migrated records, got %d", ds.Migrated)
	}

	old, ok := ds.Entry("Old Date")
	if !ok {
		t.Fatal("expected Old Date")
	}
	if got := old.CreatedAt.String(); got != "2025-12-01 00:00" {
		t.Fatalf("expected midnight timestamp, got %q", got)
	}
	if old.Category != category.Default {
		t.Fatalf("expected default category, got %q", old.Category)
	}

	noCreated, _ := ds.Entry("No Created")
	if got := noCreated.CreatedAt.String(); got != "2026-05-01 12:34" {
		t.Fatalf("expected load time, got %q", got)
	}

	grouped, _ := ds.Entry("Grouped")
	if grouped.Category != "Work" {
		t.Fatalf("expected group to become category, got %q", grouped.Category)
	}
	if grouped.Date.String() != "2026-03-01" {
		t.Fatalf("expected time dropped from date, got %s", grouped.Date)
	}
	if _, ok := ds.Category("Work"); !ok {
		t.Fatal("expected referenced category to be added")
	}

	if err := p.Save(context.Background(), ds); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte(`"created_at": "2025-12-01 00:00"`)) {
		t.Fatalf("expected migrated timestamp on disk:\n%s", data)
	}
	if bytes.Contains(data, []byte(`"group"`)) {
		t.Fatalf("legacy group field must not be written:\n%s", data)
	}

	again, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Migrated != 0 {
		t.Fatalf("migration must run once, got %d upgraded on reload", again.Migrated)
	}
}

func TestLoadBlankCategoryIsNotMigrated(t *testing.T) {
	p, path := newTestPersistence(t)
	writeFile(t, path, `{
  "dates": [
    {"name": "Plain", "date": "2026-04-01", "description": "", "category": "", "created_at": "2026-03-01 09:00"}
  ],
  "categories": []
}`)

	ds, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Migrated != 0 {
		t.Fatalf("expected no migrated records, got %d", ds.Migrated)
	}
	plain, ok := ds.Entry("Plain")
	if !ok {
		t.Fatal("expected Plain")
	}
	if plain.Category != category.Default {
		t.Fatalf("expected default category, got %q", plain.Category)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, path := newTestPersistence(t)
	ctx := context.Background()

	ds := dataset.New()
	ds.Categories = append(ds.Categories, category.Category{Name: "Work", Color: category.Color("#336699")})
	ds.Entries = append(ds.Entries,
		mustEntry(t, "Launch", "2026-09-01", "Work"),
		mustEntry(t, "Birthday", "2026-06-15", ""),
	)
	if err := p.Save(ctx, ds); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	loaded, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Save(ctx, loaded); err != nil {
		t.Fatalf("save again: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read again: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("save(load()) changed the file:\n%s\n---\n%s", first, second)
	}

	reloaded, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Entries) != 2 || len(reloaded.Categories) != 2 {
		t.Fatalf("unexpected dataset %+v", reloaded)
	}
	for i := range loaded.Entries {
		if loaded.Entries[i] != reloaded.Entries[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, loaded.Entries[i], reloaded.Entries[i])
		}
	}
}

func TestSaveKeepsNonASCII(t *testing.T) {
	p, path := newTestPersistence(t)
	ds := dataset.New()
	e := mustEntry(t, "Cumpleaños de José", "2026-04-10", "")
	e.Description = "café & <pastel>"
	ds.Entries = append(ds.Entries, e)

	if err := p.Save(context.Background(), ds); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Cumpleaños de José") || !strings.Contains(text, "café & <pastel>") {
		t.Fatalf("expected unescaped UTF-8 text:\n%s", text)
	}
	if strings.Contains(text, `\u00`) {
		t.Fatalf("unexpected escape sequence:\n%s", text)
	}
}

func TestSaveLeavesOnlyDataFile(t *testing.T) {
	p, path := newTestPersistence(t)
	ds := dataset.New()
	ds.Entries = append(ds.Entries, mustEntry(t, "a", "2026-01-01", ""))
	for i := 0; i < 3; i++ {
		if err := p.Save(context.Background(), ds); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	items, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(items) != 1 || items[0].Name() != filepath.Base(path) {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name())
		}
		t.Fatalf("expected only the data file, found %v", names)
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	p, _ := newTestPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
