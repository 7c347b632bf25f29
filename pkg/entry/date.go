package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and command line format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component. The embedded time is
// always midnight UTC so that arithmetic between dates never crosses a DST
// boundary.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given components, normalising overflow
// the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day t falls on in its own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string, rejecting out of range components.
func ParseDate(v string) (Date, error) {
	v = strings.TrimSpace(v)
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q is not a valid YYYY-MM-DD date", ErrInvalid, v)
	}
	return Date{Time: t}, nil
}

// AddDays returns the date n calendar days away.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
