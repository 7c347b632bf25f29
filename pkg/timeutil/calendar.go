// Package timeutil holds calendar arithmetic shared by the service and the
// command line.
package timeutil

import "time"

const secondsPerDay = 24 * 60 * 60

// DayDelta returns the signed number of calendar days from today to target:
// positive when target is in the future, negative when it is in the past.
// Only the year, month and day components of each value are considered.
func DayDelta(target, today time.Time) int {
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int((t.Unix() - n.Unix()) / secondsPerDay)
}

// Abs returns the absolute value of a day count.
func Abs(days int) int {
	if days < 0 {
		return -days
	}
	return days
}
