package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the minute precision format used for creation times.
const TimestampLayout = "2006-01-02 15:04"

// Timestamp is a wall clock reading with minute precision. It carries no
// zone: the components of the source time are kept as is.
type Timestamp struct {
	time.Time
}

// NewTimestamp drops seconds and the zone from t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)}
}

// ParseTimestamp parses a "YYYY-MM-DD HH:MM" string.
func ParseTimestamp(v string) (Timestamp, error) {
	v = strings.TrimSpace(v)
	t, err := time.Parse(TimestampLayout, v)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: timestamp %q is not YYYY-MM-DD HH:MM", ErrInvalid, v)
	}
	return Timestamp{Time: t}, nil
}

// CalendarDay returns the calendar day of the timestamp.
func (t Timestamp) CalendarDay() Date {
	return DateOf(t.Time)
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
