package calendar

import (
	"context"
	"io"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// Calendar prints month grids with the important dates marked.
type Calendar struct {
	// On is any day in the first month shown. Zero means this month.
	On time.Time
	// Months is how many months to show, at least one.
	Months int

	Persistence store.Persistence
	Now         func() time.Time
	Out         io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence, Now: n.Now}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}
	l, err := app.List(ds, app.Filter{All: true}, s.Today())
	if err != nil {
		return err
	}
	items := append(l.Past, l.Upcoming...)

	pp := printers.PrettyPrint{Out: n.Out, Today: s.Today()}
	pp.UseCategories(app.Categories(ds)...)

	month := n.On
	if month.IsZero() {
		month = s.Today()
	}
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	count := n.Months
	if count < 1 {
		count = 1
	}
	pp.NewLine()
	for i := 0; i < count; i++ {
		pp.Month(month, items...)
		month = printers.NextMonth(month)
	}
	return nil
}
