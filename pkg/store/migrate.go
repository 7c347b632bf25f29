package store

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
)

// migrate validates decoded records and upgrades legacy ones:
//   - created_at holding a bare date becomes midnight of that date,
//   - a missing created_at becomes now,
//   - a date carrying a time keeps only its day,
//   - a missing category (or the old "group" field) becomes the category,
//   - categories referenced by entries, and the default category, are added
//     to the category list.
func migrate(doc document, legacy bool, now time.Time) (dataset.Dataset, error) {
	ds := dataset.Dataset{
		Entries:    make([]entry.Entry, 0, len(doc.Dates)),
		Categories: make([]category.Category, 0, len(doc.Categories)+1),
	}

	for i, rec := range doc.Categories {
		c, err := category.New(rec.Name, rec.Color)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("category %d: %w", i, err)
		}
		if ds.CategoryIndex(c.Name) >= 0 {
			return dataset.Dataset{}, fmt.Errorf("category %d: duplicate name %q", i, c.Name)
		}
		ds.Categories = append(ds.Categories, c)
	}

	for i, rec := range doc.Dates {
		upgraded := legacy

		date := rec.Date
		if ts, err := entry.ParseTimestamp(date); err == nil {
			date = ts.CalendarDay().String()
			upgraded = true
		}

		cat := strings.TrimSpace(rec.Category)
		if group := strings.TrimSpace(rec.Group); cat == "" && group != "" {
			cat = group
			upgraded = true
		}

		created, changed, err := migrateCreatedAt(rec.CreatedAt, now)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("record %d: %w", i, err)
		}
		upgraded = upgraded || changed

		e, err := entry.New(rec.Name, date, rec.Description, cat, created)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("record %d: %w", i, err)
		}
		if ds.EntryIndex(e.Name) >= 0 {
			return dataset.Dataset{}, fmt.Errorf("record %d: duplicate name %q", i, e.Name)
		}
		ds.Entries = append(ds.Entries, e)
		if upgraded {
			ds.Migrated++
		}
	}

	ensureCategory(&ds, category.Default)
	for _, e := range ds.Entries {
		ensureCategory(&ds, e.Category)
	}

	ds.Sort()
	return ds, nil
}

// migrateCreatedAt parses a stored creation time. The flag reports whether
// the value had to be upgraded.
func migrateCreatedAt(raw string, now time.Time) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, true, nil
	}
	if ts, err := entry.ParseTimestamp(raw); err == nil {
		return ts.Time, false, nil
	}
	d, err := entry.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: created_at %q", entry.ErrInvalid, raw)
	}
	return d.Time, true, nil
}

func ensureCategory(ds *dataset.Dataset, name string) {
	if ds.CategoryIndex(name) >= 0 {
		return
	}
	ds.Categories = append(ds.Categories, category.Category{Name: name, Color: category.DefaultColor})
}
