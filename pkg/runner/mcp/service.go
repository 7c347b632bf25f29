// Package mcp exposes important dates over the Model Context Protocol so an
// assistant can read and change them.
package mcp

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/entry"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Service adapts app.Service results into transport friendly values.
type Service struct {
	Persistence store.Persistence
	Now         func() time.Time
}

// ErrNoPersistence is returned when the service has nowhere to read from.
var ErrNoPersistence = errors.New("persistence is not configured")

// DateDTO is a transport friendly projection of an entry.
type DateDTO struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Created     string  `json:"created"`
	Days        int     `json:"days"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
}

// ListingDTO groups dates the way the list command does.
type ListingDTO struct {
	Past     []DateDTO `json:"past,omitempty"`
	Upcoming []DateDTO `json:"upcoming"`
	Count    int       `json:"count"`
}

// ListOptions narrows ListDates.
type ListOptions struct {
	All      bool
	Category string
	Within   int
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) app() (*app.Service, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return &app.Service{Persistence: s.Persistence, Now: s.Now}, nil
}

// ListDates returns the dates matching opts.
func (s *Service) ListDates(ctx context.Context, opts ListOptions) (*ListingDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	l, err := a.List(ctx, app.Filter{All: opts.All, Category: opts.Category, Within: opts.Within})
	if err != nil {
		return nil, err
	}
	today := a.Today()
	return &ListingDTO{
		Past:     toDTOs(l.Past, today),
		Upcoming: toDTOs(l.Upcoming, today),
		Count:    l.Len(),
	}, nil
}

// DateByName returns a single date.
func (s *Service) DateByName(ctx context.Context, name string) (*DateDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	ds, err := a.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := ds.Entry(name)
	if !ok {
		return nil, app.ErrNotFound
	}
	dto := toDTO(e, a.Today())
	return &dto, nil
}

// NextDate returns the date closest to today.
func (s *Service) NextDate(ctx context.Context) (*DateDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	it, err := a.Next(ctx)
	if err != nil {
		return nil, err
	}
	dto := toDTO(it.Entry, a.Today())
	return &dto, nil
}

// AddDate records a new date.
func (s *Service) AddDate(ctx context.Context, name, date, description, cat string) (*DateDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Add(ctx, name, date, description, cat)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, a.Today())
	return &dto, nil
}

// RemoveDate deletes a date by name.
func (s *Service) RemoveDate(ctx context.Context, name string) (*DateDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Remove(ctx, name)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, a.Today())
	return &dto, nil
}

// MoveDate files a date under another category.
func (s *Service) MoveDate(ctx context.Context, name, cat string, create bool) (*DateDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Move(ctx, name, cat, create)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, a.Today())
	return &dto, nil
}

// ListCategories returns every category with its entry count.
func (s *Service) ListCategories(ctx context.Context) ([]app.CategorySummary, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	return a.Categories(ctx)
}

// AddCategory creates a category.
func (s *Service) AddCategory(ctx context.Context, name, color string) (*category.Category, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	c, err := a.AddCategory(ctx, name, color)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// RecolorCategory changes the color of a category.
func (s *Service) RecolorCategory(ctx context.Context, name, color string) (*category.Category, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	c, err := a.RecolorCategory(ctx, name, color)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// RemoveCategory deletes a category and reports how many dates moved.
func (s *Service) RemoveCategory(ctx context.Context, name, moveTo string) (int, error) {
	a, err := s.app()
	if err != nil {
		return 0, err
	}
	return a.RemoveCategory(ctx, name, moveTo)
}

func toDTOs(items []app.Item, today time.Time) []DateDTO {
	out := make([]DateDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it.Entry, today))
	}
	return out
}

func toDTO(e entry.Entry, today time.Time) DateDTO {
	days := app.DayDelta(e, today)
	return DateDTO{
		Name:        e.Name,
		Date:        e.Date.String(),
		Description: e.Description,
		Category:    e.Category,
		Created:     e.CreatedAt.String(),
		Days:        days,
		Status:      printers.Status(days),
		Progress:    app.Progress(e, today),
	}
}
