package app

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/datekeeper/pkg/dataset"
	"tableflip.dev/datekeeper/pkg/entry"
	"tableflip.dev/datekeeper/pkg/timeutil"
)

// Filter selects entries for List.
type Filter struct {
	// All includes entries whose date has passed.
	All bool
	// Category restricts the listing to one category.
	Category string
	// Within, when positive, keeps only entries at most that many days
	// away from today in either direction.
	Within int
}

// Item is an entry with its distance from today in calendar days.
type Item struct {
	Entry entry.Entry `json:"entry"`
	Days  int         `json:"days"`
}

// Listing splits entries into those that have passed and those still to
// come. Past is ordered most recent first, Upcoming soonest first; entries
// on the same day are ordered by name. Today belongs to Upcoming.
type Listing struct {
	Past     []Item `json:"past,omitempty"`
	Upcoming []Item `json:"upcoming"`
}

// Len is the number of items in both groups.
func (l Listing) Len() int {
	return len(l.Past) + len(l.Upcoming)
}

// DayDelta is the signed number of calendar days from today to the entry's
// date: positive in the future, negative in the past, zero today.
func DayDelta(e entry.Entry, today time.Time) int {
	return timeutil.DayDelta(e.Date.Time, today)
}

// List returns the entries matching f relative to today.
func List(ds dataset.Dataset, f Filter, today time.Time) (Listing, error) {
	if f.Category != "" && ds.CategoryIndex(f.Category) < 0 {
		return Listing{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, f.Category)
	}

	l := Listing{Upcoming: []Item{}}
	for _, e := range ds.Entries {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		days := DayDelta(e, today)
		if f.Within > 0 && timeutil.Abs(days) > f.Within {
			continue
		}
		item := Item{Entry: e, Days: days}
		switch {
		case days >= 0:
			l.Upcoming = append(l.Upcoming, item)
		case f.All:
			l.Past = append(l.Past, item)
		}
	}

	sort.SliceStable(l.Upcoming, func(i, j int) bool {
		return lessByDays(l.Upcoming[i], l.Upcoming[j], false)
	})
	sort.SliceStable(l.Past, func(i, j int) bool {
		return lessByDays(l.Past[i], l.Past[j], true)
	})
	return l, nil
}

// Next returns the entry closest to today, in the past or the future. A
// future entry wins a tie with a past one at the same distance; remaining
// ties go to the alphabetically first name.
func Next(ds dataset.Dataset, today time.Time) (Item, error) {
	if len(ds.Entries) == 0 {
		return Item{}, ErrEmpty
	}
	var best Item
	for i, e := range ds.Entries {
		item := Item{Entry: e, Days: DayDelta(e, today)}
		if i == 0 || closer(item, best) {
			best = item
		}
	}
	return best, nil
}

// Progress is the share, in percent, of the span from the entry's creation
// day to its date that has already elapsed. It is clamped to [0, 100].
func Progress(e entry.Entry, today time.Time) float64 {
	total := timeutil.DayDelta(e.Date.Time, e.CreatedAt.CalendarDay().Time)
	if total <= 0 {
		total = 1
	}
	remaining := DayDelta(e, today)
	pct := float64(total-remaining) / float64(total) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

func closer(a, b Item) bool {
	da, db := timeutil.Abs(a.Days), timeutil.Abs(b.Days)
	if da != db {
		return da < db
	}
	if (a.Days >= 0) != (b.Days >= 0) {
		return a.Days >= 0
	}
	return a.Entry.Name < b.Entry.Name
}

func lessByDays(a, b Item, descending bool) bool {
	if a.Days != b.Days {
		if descending {
			return a.Days > b.Days
		}
		return a.Days < b.Days
	}
	return a.Entry.Name < b.Entry.Name
}
