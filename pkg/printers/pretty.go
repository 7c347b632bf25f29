// Package printers renders important dates for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/category"
)

const (
	barWidth         = 20
	descriptionWidth = 60
)

// PrettyPrint writes colored tables. Out defaults to color.Output.
type PrettyPrint struct {
	Out   io.Writer
	Today time.Time
	// Colors maps category names to their display color.
	Colors map[string]category.Color
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// UseCategories sets the display colors for category names.
func (pp *PrettyPrint) UseCategories(summaries ...app.CategorySummary) {
	pp.Colors = make(map[string]category.Color, len(summaries))
	for _, s := range summaries {
		pp.Colors[s.Name] = s.Color
	}
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " date")
	default:
		_, _ = c.Fprintln(pp.out(), " dates")
	}
}

// Message prints a one line confirmation.
func (pp *PrettyPrint) Message(format string, args ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(pp.out(), format+"\n", args...)
}

// None prints the placeholder for an empty group.
func (pp *PrettyPrint) None(text string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", text)
}

// Items renders a numbered table of dates with their progress and status.
func (pp *PrettyPrint) Items(items ...app.Item) {
	if len(items) == 0 {
		pp.None("none")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Name"), bold.Sprint("Date"), bold.Sprint("Category"), bold.Sprint("Progress"), bold.Sprint("Status"))
	for i, it := range items {
		pct := app.Progress(it.Entry, pp.Today)
		sc := StatusColor(it.Days, pct)
		tbl.AddRow(
			fmt.Sprintf("%d", i+1),
			pp.categoryColor(it.Entry.Category).Sprint(it.Entry.Name),
			it.Entry.Date.String(),
			it.Entry.Category,
			sc.Sprintf("%s %5.1f%%", ProgressBar(pct, barWidth), pct),
			sc.Sprint(Status(it.Days)),
		)
		if it.Entry.Description != "" {
			for _, line := range strings.Split(wordwrap.String(it.Entry.Description, descriptionWidth), "\n") {
				tbl.AddRow("", faint.Sprint(line))
			}
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Next renders the single closest date.
func (pp *PrettyPrint) Next(it app.Item) {
	bold := color.New(color.Bold)
	pct := app.Progress(it.Entry, pp.Today)
	sc := StatusColor(it.Days, pct)

	_, _ = bold.Fprintln(pp.out(), "Closest date:")
	_, _ = fmt.Fprintf(pp.out(), "   %s (%s)\n", pp.categoryColor(it.Entry.Category).Sprint(it.Entry.Name), it.Entry.Date)
	_, _ = sc.Add(color.Bold).Fprintf(pp.out(), "   %s\n", strings.ToUpper(Status(it.Days)))
	if it.Entry.Description != "" {
		_, _ = fmt.Fprintf(pp.out(), "   --- %s ---\n", it.Entry.Description)
	}
}

// Categories renders the category table.
func (pp *PrettyPrint) Categories(summaries ...app.CategorySummary) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Color"), bold.Sprint("Dates"))
	for _, s := range summaries {
		name := s.Name
		if category.IsDefault(name) {
			name += " (default)"
		}
		tbl.AddRow(ColorFor(s.Color).Sprint(name), s.Color.String(), fmt.Sprintf("%d", s.Entries))
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	enc := json.NewEncoder(pp.out())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (pp *PrettyPrint) categoryColor(name string) *color.Color {
	c, ok := pp.Colors[name]
	if !ok {
		return color.New()
	}
	return ColorFor(c)
}

// Status describes a signed day distance in words.
func Status(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "1 day left"
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == -1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// StatusColor picks the color for a date: red once passed, green today or
// when most of the wait is over, yellow past a third, cyan otherwise.
func StatusColor(days int, progress float64) *color.Color {
	switch {
	case days < 0:
		return color.New(color.FgRed)
	case days == 0, progress >= 66:
		return color.New(color.FgGreen)
	case progress >= 33:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// ProgressBar draws pct (0 to 100) as a bar of the given width.
func ProgressBar(pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// ColorFor maps a category color onto a terminal color. Hex colors use the
// nearest palette entry.
func ColorFor(c category.Color) *color.Color {
	switch c.Nearest() {
	case category.ColorBlack:
		return color.New(color.FgBlack)
	case category.ColorRed:
		return color.New(color.FgRed)
	case category.ColorGreen:
		return color.New(color.FgGreen)
	case category.ColorYellow:
		return color.New(color.FgYellow)
	case category.ColorBlue:
		return color.New(color.FgBlue)
	case category.ColorMagenta:
		return color.New(color.FgMagenta)
	case category.ColorCyan:
		return color.New(color.FgCyan)
	case category.ColorWhite:
		return color.New(color.FgWhite)
	default:
		return color.New()
	}
}
