package move

import (
	"context"
	"io"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Move reassigns an important date to another category.
type Move struct {
	Name     string
	Category string
	// Create adds the category when it does not exist yet.
	Create bool
	JSON   bool

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	e, err := s.Move(ctx, n.Name, n.Category, n.Create)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Message("Moved %q to %s.", e.Name, e.Category)
	return nil
}
