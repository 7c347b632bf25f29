package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datekeeper/pkg/app"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar grid for the month of then. Days holding dates are
// bold, today is underlined, and the dates themselves are listed below.
func (pp *PrettyPrint) Month(then time.Time, items ...app.Item) {
	days := DaysIn(then)
	marked := make([]int, days)
	inMonth := make([]app.Item, 0, len(items))
	for _, it := range items {
		d := it.Entry.Date
		if d.Year() == then.Year() && d.Month() == then.Month() {
			marked[d.Day()-1]++
			inMonth = append(inMonth, it)
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = color.New(color.Faint).Fprintln(pp.out(), "Su Mo Tu We Th Fr Sa")

	d := StartDay(then)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		printer := l1
		if marked[i] > 0 {
			printer = l2
		}
		if !pp.Today.IsZero() && pp.Today.Year() == then.Year() && pp.Today.Month() == then.Month() && pp.Today.Day() == i+1 {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")

	if len(inMonth) > 0 {
		pp.Items(inMonth...)
	}
}

// NextMonth returns the first day of the month after then.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month of then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first day of the month of then.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
