package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"tableflip.dev/datekeeper/pkg/entry"
	"tableflip.dev/datekeeper/pkg/printers"
)

const otherYear = "other"

// askDate asks for a date either by picking year, month and day from lists
// or by typing it.
func (u *UI) askDate(today time.Time) (string, error) {
	mode, err := u.selectOne("How do you want to enter the date?", []choice{
		{Value: "guided", Label: "Pick from lists"},
		{Value: "typed", Label: "Type it (YYYY-MM-DD)"},
	})
	if err != nil {
		return "", err
	}
	if mode == "typed" {
		return u.text("Date (YYYY-MM-DD)", "", validateDate)
	}

	year, err := u.selectOne("Year", yearChoices(today))
	if err != nil {
		return "", err
	}
	if year == otherYear {
		if year, err = u.text("Year (YYYY)", "", validateYear); err != nil {
			return "", err
		}
	}
	y, err := parseNumber("year", year)
	if err != nil {
		return "", err
	}

	month, err := u.selectOne("Month", monthChoices())
	if err != nil {
		return "", err
	}
	m, err := parseNumber("month", month)
	if err != nil {
		return "", err
	}

	day, err := u.selectOne("Day", dayChoices(y, time.Month(m)))
	if err != nil {
		return "", err
	}
	d, err := parseNumber("day", day)
	if err != nil {
		return "", err
	}

	return entry.NewDate(y, time.Month(m), d).String(), nil
}

func parseNumber(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return n, nil
}

func yearChoices(today time.Time) []choice {
	choices := make([]choice, 0, 4)
	for i := 0; i < 3; i++ {
		y := strconv.Itoa(today.Year() + i)
		choices = append(choices, choice{Value: y, Label: y})
	}
	return append(choices, choice{Value: otherYear, Label: "Other year..."})
}

func monthChoices() []choice {
	choices := make([]choice, 0, 12)
	for m := time.January; m <= time.December; m++ {
		choices = append(choices, choice{
			Value: strconv.Itoa(int(m)),
			Label: fmt.Sprintf("%02d - %s", int(m), m),
		})
	}
	return choices
}

func dayChoices(year int, month time.Month) []choice {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := printers.DaysIn(first)
	wd := printers.StartDay(first)

	choices := make([]choice, 0, days)
	for d := 1; d <= days; d++ {
		choices = append(choices, choice{
			Value: strconv.Itoa(d),
			Label: fmt.Sprintf("%02d (%s)", d, wd.String()[:3]),
		})
		wd = (wd + 1) % 7
	}
	return choices
}

func validateYear(input string) error {
	y, err := strconv.Atoi(input)
	if err != nil || len(input) != 4 || y < 1 {
		return errors.New("year must be YYYY")
	}
	return nil
}
