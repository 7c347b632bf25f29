// Package entry defines the important date record and its validation rules.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datekeeper/pkg/category"
)

// ErrInvalid is returned when an entry fails validation.
var ErrInvalid = errors.New("invalid entry")

// Entry is a single important date.
type Entry struct {
	Name        string    `json:"name"`
	Date        Date      `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   Timestamp `json:"created_at"`
}

// New validates the inputs and builds an Entry. An empty category falls back
// to the default category.
func New(name, date, description, cat string, created time.Time) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	d, err := ParseDate(date)
	if err != nil {
		return Entry{}, err
	}
	cat = strings.TrimSpace(cat)
	if cat == "" {
		cat = category.Default
	}
	return Entry{
		Name:        name,
		Date:        d,
		Description: strings.TrimSpace(description),
		Category:    cat,
		CreatedAt:   NewTimestamp(created),
	}, nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Date)
}
