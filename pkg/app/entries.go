package app

import (
	"fmt"
	"strings"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
)

// Add appends e to ds. Names are unique and compared case sensitively. An
// unknown category is created with the default color.
func Add(ds dataset.Dataset, e entry.Entry) (dataset.Dataset, error) {
	if strings.TrimSpace(e.Name) == "" {
		return ds, fmt.Errorf("%w: name must not be empty", entry.ErrInvalid)
	}
	if ds.EntryIndex(e.Name) >= 0 {
		return ds, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
	}
	if e.Category == "" {
		e.Category = category.Default
	}
	out := ds.Clone()
	if out.CategoryIndex(e.Category) < 0 {
		c, err := category.New(e.Category, "")
		if err != nil {
			return ds, err
		}
		out.Categories = append(out.Categories, c)
	}
	out.Entries = append(out.Entries, e)
	return out, nil
}

// Remove deletes the entry called name.
func Remove(ds dataset.Dataset, name string) (dataset.Dataset, entry.Entry, error) {
	i := ds.EntryIndex(name)
	if i < 0 {
		return ds, entry.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	removed := ds.Entries[i]
	out := ds.Clone()
	out.Entries = append(out.Entries[:i], out.Entries[i+1:]...)
	return out, removed, nil
}

// Move files the entry called name under cat. The category must already
// exist unless create is set, in which case it is created with the default
// color.
func Move(ds dataset.Dataset, name, cat string, create bool) (dataset.Dataset, entry.Entry, error) {
	i := ds.EntryIndex(name)
	if i < 0 {
		return ds, entry.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	cat = strings.TrimSpace(cat)
	out := ds.Clone()
	if out.CategoryIndex(cat) < 0 {
		if !create {
			return ds, entry.Entry{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, cat)
		}
		c, err := category.New(cat, "")
		if err != nil {
			return ds, entry.Entry{}, err
		}
		out.Categories = append(out.Categories, c)
	}
	out.Entries[i].Category = cat
	return out, out.Entries[i], nil
}
