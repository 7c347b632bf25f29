package next

import (
	"context"
	"io"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Next prints the date closest to today, past or future.
type Next struct {
	JSON bool

	Persistence store.Persistence
	Now         func() time.Time
	Out         io.Writer
}

func (n *Next) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence, Now: n.Now}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}
	it, err := app.Next(ds, s.Today())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Today: s.Today()}
	if n.JSON {
		return pp.JSON(it)
	}
	pp.UseCategories(app.Categories(ds)...)
	pp.Next(it)
	return nil
}
