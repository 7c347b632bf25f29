// Package colors provides CLI helpers to display the category color legend.
package colors

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/printers"
)

// Colors prints the named colors a category can use.
type Colors struct {
	Out io.Writer
}

func (k *Colors) out() io.Writer {
	if k.Out != nil {
		return k.Out
	}
	return color.Output
}

// Do renders the color legend.
func (k *Colors) Do(_ context.Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Color"), bold.Sprint("Sample"))
	for _, c := range category.AllColors() {
		label := c.String()
		if c == category.DefaultColor {
			label += " (default)"
		}
		tbl.AddRow(label, printers.ColorFor(c).Sprint("■■■ Important date"))
	}

	_, _ = fmt.Fprintln(k.out(), "")
	_, _ = fmt.Fprintln(k.out(), tbl)
	_, _ = fmt.Fprintln(k.out(), "")
	_, _ = fmt.Fprintln(k.out(), "Hex values such as #ff8800 are accepted and shown in the closest color above.")
	return nil
}
