package add

import (
	"context"
	"io"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Add records a new important date.
type Add struct {
	Name        string
	Date        string
	Description string
	Category    string
	JSON        bool

	Persistence store.Persistence
	Now         func() time.Time
	Out         io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence, Now: n.Now}

	e, err := s.Add(ctx, n.Name, n.Date, n.Description, n.Category)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Today: s.Today()}
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Message("Added %q on %s to %s.", e.Name, e.Date, e.Category)
	pp.Items(app.Item{Entry: e, Days: app.DayDelta(e, s.Today())})
	return nil
}
