// Package categories provides CLI helpers to manage categories.
package categories

import (
	"context"
	"io"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// List prints every category with its color and entry count.
type List struct {
	JSON bool

	Persistence store.Persistence
	Out         io.Writer
}

func (n *List) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	all, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(all)
	}
	pp.NewLine()
	pp.Categories(all...)
	return nil
}

// Add creates a category.
type Add struct {
	Name  string
	Color string
	JSON  bool

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	c, err := s.AddCategory(ctx, n.Name, n.Color)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(c)
	}
	pp.Message("Added category %s (%s).", printers.ColorFor(c.Color).Sprint(c.Name), c.Color)
	return nil
}

// Recolor changes the color of a category.
type Recolor struct {
	Name  string
	Color string
	JSON  bool

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Recolor) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	c, err := s.RecolorCategory(ctx, n.Name, n.Color)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(c)
	}
	pp.Message("Category %s is now %s.", printers.ColorFor(c.Color).Sprint(c.Name), c.Color)
	return nil
}

// Remove deletes a category. Dates filed under it move to MoveTo.
type Remove struct {
	Name   string
	MoveTo string
	JSON   bool

	Persistence store.Persistence
	Out         io.Writer
}

type removed struct {
	Name   string `json:"name"`
	MoveTo string `json:"move_to,omitempty"`
	Moved  int    `json:"moved"`
}

func (n *Remove) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	moved, err := s.RemoveCategory(ctx, n.Name, n.MoveTo)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(removed{Name: n.Name, MoveTo: n.MoveTo, Moved: moved})
	}
	switch moved {
	case 0:
		pp.Message("Removed category %s.", n.Name)
	case 1:
		pp.Message("Removed category %s, 1 date moved to %s.", n.Name, n.MoveTo)
	default:
		pp.Message("Removed category %s, %d dates moved to %s.", n.Name, moved, n.MoveTo)
	}
	return nil
}
