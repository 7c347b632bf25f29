// Package app holds the important dates business logic. Operations are pure
// functions from one dataset to the next; Service wraps them with a load and
// a save so the command line and the interactive console share one path.
package app

import (
	"context"
	"time"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
	"tableflip.dev/datekeeper/pkg/store"
)

// Service loads the dataset, applies one operation and saves the result.
type Service struct {
	Persistence store.Persistence
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Today is the current calendar day in the local zone.
func (s *Service) Today() time.Time {
	return entry.DateOf(s.now()).Time
}

// Dataset loads the current dataset without changing it.
func (s *Service) Dataset(ctx context.Context) (dataset.Dataset, error) {
	if s.Persistence == nil {
		return dataset.Dataset{}, ErrNoPersistence
	}
	return s.Persistence.Load(ctx)
}

func (s *Service) update(ctx context.Context, fn func(dataset.Dataset) (dataset.Dataset, error)) error {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}
	next, err := fn(ds)
	if err != nil {
		return err
	}
	return s.Persistence.Save(ctx, next)
}

// Add validates and stores a new entry created now.
func (s *Service) Add(ctx context.Context, name, date, description, cat string) (entry.Entry, error) {
	e, err := entry.New(name, date, description, cat, s.now())
	if err != nil {
		return entry.Entry{}, err
	}
	err = s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		return Add(ds, e)
	})
	if err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Remove deletes the entry called name.
func (s *Service) Remove(ctx context.Context, name string) (entry.Entry, error) {
	var removed entry.Entry
	err := s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		next, e, err := Remove(ds, name)
		removed = e
		return next, err
	})
	return removed, err
}

// Move files the entry called name under cat, creating cat first when
// create is set.
func (s *Service) Move(ctx context.Context, name, cat string, create bool) (entry.Entry, error) {
	var moved entry.Entry
	err := s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		next, e, err := Move(ds, name, cat, create)
		moved = e
		return next, err
	})
	return moved, err
}

// List returns the entries matching f relative to today.
func (s *Service) List(ctx context.Context, f Filter) (Listing, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return Listing{}, err
	}
	return List(ds, f, s.Today())
}

// Next returns the entry closest to today.
func (s *Service) Next(ctx context.Context) (Item, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return Item{}, err
	}
	return Next(ds, s.Today())
}

// Categories lists every category with its entry count.
func (s *Service) Categories(ctx context.Context) ([]CategorySummary, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(ds), nil
}

// AddCategory creates a category.
func (s *Service) AddCategory(ctx context.Context, name, color string) (category.Category, error) {
	var added category.Category
	err := s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		next, c, err := AddCategory(ds, name, color)
		added = c
		return next, err
	})
	return added, err
}

// RecolorCategory changes a category's color.
func (s *Service) RecolorCategory(ctx context.Context, name, color string) (category.Category, error) {
	var changed category.Category
	err := s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		next, c, err := RecolorCategory(ds, name, color)
		changed = c
		return next, err
	})
	return changed, err
}

// RemoveCategory deletes a category, refiling its entries under moveTo.
func (s *Service) RemoveCategory(ctx context.Context, name, moveTo string) (int, error) {
	var moved int
	err := s.update(ctx, func(ds dataset.Dataset) (dataset.Dataset, error) {
		next, n, err := RemoveCategory(ds, name, moveTo)
		moved = n
		return next, err
	})
	return moved, err
}
