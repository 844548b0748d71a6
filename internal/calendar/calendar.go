// Package calendar holds the date arithmetic behind seasonal emoji:
// day-of-year seeds, Easter computus and the seasonal windows of a year.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2/aa"
)

// Season identifies a seasonal window.
type Season string

// Seasons in precedence order.
const (
	Holiday Season = "holiday"
	Autumn  Season = "autumn"
	Bunny   Season = "bunny"
)

// Easter window shape: centred this many days before Easter Sunday,
// extending EasterSlack days either side.
const (
	EasterLead  = 14
	EasterSlack = 3
)

// EasterFunc returns Easter Sunday for a year. Only the calendar date is used.
type EasterFunc func(year int) time.Time

// Easter returns Western (Gregorian) Easter Sunday for year.
func Easter(year int) time.Time {
	actual, _ := aa.Easter.Calc(year)
	return Date(actual)
}

// Date drops the clock and zone, returning midnight UTC of t's calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayOfYear returns the ordinal day of t within its year, 1..366.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)) / (24 * time.Hour))
}

// Window is an inclusive range of calendar dates.
type Window struct {
	Season Season
	Start  time.Time
	End    time.Time
}

// Contains reports whether t's calendar date falls within the window.
func (w Window) Contains(t time.Time) bool {
	return DaysBetween(w.Start, t) >= 0 && DaysBetween(t, w.End) >= 0
}

// Windows returns the seasonal windows of year in precedence order.
func Windows(year int, easter EasterFunc) []Window {
	if easter == nil {
		easter = Easter
	}
	centre := Date(easter(year)).AddDate(0, 0, -EasterLead)

	return []Window{
		{
			Season: Holiday,
			Start:  time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Season: Autumn,
			Start:  time.Date(year, time.October, 15, 0, 0, 0, 0, time.UTC),
			End:    time.Date(year, time.October, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Season: Bunny,
			Start:  centre.AddDate(0, 0, -EasterSlack),
			End:    centre.AddDate(0, 0, EasterSlack),
		},
	}
}

// SeasonOf returns the first window containing t, if any.
func SeasonOf(t time.Time, easter EasterFunc) (Window, bool) {
	for _, w := range Windows(t.Year(), easter) {
		if w.Contains(t) {
			return w, true
		}
	}
	return Window{}, false
}
