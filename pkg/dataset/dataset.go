// Package dataset holds the in-memory collection of entries and categories
// for one load/save cycle.
package dataset

import (
	"sort"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/entry"
)

// Dataset is every entry and category known to the store.
type Dataset struct {
	Entries    []entry.Entry
	Categories []category.Category

	// Migrated counts the records upgraded from a legacy format on load.
	Migrated int
}

// New returns an empty dataset holding only the default category.
func New() Dataset {
	return Dataset{
		Entries:    []entry.Entry{},
		Categories: []category.Category{{Name: category.Default, Color: category.DefaultColor}},
	}
}

// Clone returns a copy that shares no slices with ds.
func (ds Dataset) Clone() Dataset {
	out := Dataset{
		Entries:    make([]entry.Entry, len(ds.Entries)),
		Categories: make([]category.Category, len(ds.Categories)),
		Migrated:   ds.Migrated,
	}
	copy(out.Entries, ds.Entries)
	copy(out.Categories, ds.Categories)
	return out
}

// EntryIndex returns the position of the entry called name, or -1.
func (ds Dataset) EntryIndex(name string) int {
	for i := range ds.Entries {
		if ds.Entries[i].Name == name {
			return i
		}
	}
	return -1
}

// Entry looks up an entry by exact name.
func (ds Dataset) Entry(name string) (entry.Entry, bool) {
	if i := ds.EntryIndex(name); i >= 0 {
		return ds.Entries[i], true
	}
	return entry.Entry{}, false
}

// CategoryIndex returns the position of the category called name, or -1.
func (ds Dataset) CategoryIndex(name string) int {
	for i := range ds.Categories {
		if ds.Categories[i].Name == name {
			return i
		}
	}
	return -1
}

// Category looks up a category by exact name.
func (ds Dataset) Category(name string) (category.Category, bool) {
	if i := ds.CategoryIndex(name); i >= 0 {
		return ds.Categories[i], true
	}
	return category.Category{}, false
}

// EntriesIn returns the entries filed under the named category.
func (ds Dataset) EntriesIn(name string) []entry.Entry {
	out := make([]entry.Entry, 0)
	for _, e := range ds.Entries {
		if e.Category == name {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders entries by date then name and categories by name, in place.
func (ds Dataset) Sort() {
	sort.SliceStable(ds.Entries, func(i, j int) bool {
		left, right := ds.Entries[i], ds.Entries[j]
		if !left.Date.Equal(right.Date.Time) {
			return left.Date.Before(right.Date.Time)
		}
		return left.Name < right.Name
	})
	sort.SliceStable(ds.Categories, func(i, j int) bool {
		return ds.Categories[i].Name < ds.Categories[j].Name
	})
}
