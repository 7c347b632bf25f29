package app

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
)

// CategorySummary is a category with the number of entries filed under it.
type CategorySummary struct {
	category.Category
	Entries int `json:"entries"`
}

// Categories lists every category ordered by name.
func Categories(ds dataset.Dataset) []CategorySummary {
	counts := make(map[string]int, len(ds.Categories))
	for _, e := range ds.Entries {
		counts[e.Category]++
	}
	out := make([]CategorySummary, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		out = append(out, CategorySummary{Category: c, Entries: counts[c.Name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// AddCategory creates a category. An empty color selects the default color.
func AddCategory(ds dataset.Dataset, name, color string) (dataset.Dataset, category.Category, error) {
	c, err := category.New(name, color)
	if err != nil {
		return ds, category.Category{}, err
	}
	if ds.CategoryIndex(c.Name) >= 0 {
		return ds, category.Category{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
	}
	out := ds.Clone()
	out.Categories = append(out.Categories, c)
	return out, c, nil
}

// RecolorCategory changes the color of an existing category.
func RecolorCategory(ds dataset.Dataset, name, color string) (dataset.Dataset, category.Category, error) {
	i := ds.CategoryIndex(name)
	if i < 0 {
		return ds, category.Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	c, err := category.ParseColor(color)
	if err != nil {
		return ds, category.Category{}, err
	}
	out := ds.Clone()
	out.Categories[i].Color = c
	return out, out.Categories[i], nil
}

// RemoveCategory deletes the category called name after refiling its entries
// under moveTo. moveTo may be empty only when no entry uses the category.
// It returns the number of entries that were refiled.
func RemoveCategory(ds dataset.Dataset, name, moveTo string) (dataset.Dataset, int, error) {
	name = strings.TrimSpace(name)
	moveTo = strings.TrimSpace(moveTo)
	if category.IsDefault(name) {
		return ds, 0, ErrDefaultCategory
	}
	i := ds.CategoryIndex(name)
	if i < 0 {
		return ds, 0, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	if moveTo == name {
		return ds, 0, fmt.Errorf("%w: %q", ErrSameCategory, name)
	}
	if moveTo != "" && ds.CategoryIndex(moveTo) < 0 {
		return ds, 0, fmt.Errorf("%w: %q", ErrCategoryNotFound, moveTo)
	}

	out := ds.Clone()
	moved := 0
	for j := range out.Entries {
		if out.Entries[j].Category != name {
			continue
		}
		if moveTo == "" {
			return ds, 0, fmt.Errorf("%w: %q", ErrCategoryInUse, name)
		}
		out.Entries[j].Category = moveTo
		moved++
	}
	out.Categories = append(out.Categories[:i], out.Categories[i+1:]...)
	return out, moved, nil
}
