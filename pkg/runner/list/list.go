package list

import (
	"context"
	"io"
	"time"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// List prints upcoming dates, and past ones too when All is set.
type List struct {
	All      bool
	Category string
	// Within limits the listing to dates at most this many days away.
	Within int
	JSON   bool

	Persistence store.Persistence
	Now         func() time.Time
	Out         io.Writer
}

func (n *List) Do(ctx context.Context) error {
	s := app.Service{Persistence: n.Persistence, Now: n.Now}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}
	l, err := app.List(ds, app.Filter{All: n.All, Category: n.Category, Within: n.Within}, s.Today())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Today: s.Today()}
	if n.JSON {
		return pp.JSON(l)
	}
	pp.UseCategories(app.Categories(ds)...)

	title := "Upcoming"
	if n.Category != "" {
		title += " in " + n.Category
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(l.Upcoming))
	pp.Items(l.Upcoming...)

	if n.All {
		pp.TitleWithCount("Past", len(l.Past))
		pp.Items(l.Past...)
	}
	return nil
}
