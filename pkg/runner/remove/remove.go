package remove

import (
	"context"
	"io"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Remove deletes an important date by name.
type Remove struct {
	Name string
	JSON bool

	Persistence store.Persistence
	Out         io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence}

	e, err := s.Remove(ctx, n.Name)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Message("Removed %q (%s).", e.Name, e.Date)
	return nil
}
