package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 30, 0, 0, time.UTC)
}

func TestEaster_KnownYears(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2000, time.Date(2000, time.April, 23, 0, 0, 0, 0, time.UTC)},
		{2008, time.Date(2008, time.March, 23, 0, 0, 0, 0, time.UTC)},
		{2019, time.Date(2019, time.April, 21, 0, 0, 0, 0, time.UTC)},
		{2024, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		assert.True(t, Easter(tt.year).Equal(tt.want), "Easter(%d) = %v, want %v", tt.year, Easter(tt.year), tt.want)
	}
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(day(2025, time.January, 1)))
	assert.Equal(t, 365, DayOfYear(day(2025, time.December, 31)))
	assert.Equal(t, 366, DayOfYear(day(2024, time.December, 31)))
	assert.Equal(t, 60, DayOfYear(day(2024, time.February, 29)))
}

func TestDaysBetween_IgnoresClock(t *testing.T) {
	a := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 4, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
}

func TestWindows_Order(t *testing.T) {
	windows := Windows(2025, nil)
	require.Len(t, windows, 3)
	assert.Equal(t, Holiday, windows[0].Season)
	assert.Equal(t, Autumn, windows[1].Season)
	assert.Equal(t, Bunny, windows[2].Season)
}

func TestWindows_BunnyAroundEasterLead(t *testing.T) {
	// Easter 2025 is April 20; two weeks earlier is April 6.
	bunny := Windows(2025, nil)[2]
	assert.True(t, bunny.Start.Equal(time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bunny.End.Equal(time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)))
}

func TestWindows_CustomEaster(t *testing.T) {
	fixed := func(year int) time.Time { return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC) }
	bunny := Windows(2030, fixed)[2]
	assert.True(t, bunny.Start.Equal(time.Date(2030, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bunny.End.Equal(time.Date(2030, time.March, 21, 0, 0, 0, 0, time.UTC)))
}

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		want   Season
		wantOK bool
	}{
		{"first of december", day(2025, time.December, 1), Holiday, true},
		{"new years eve", day(2025, time.December, 31), Holiday, true},
		{"october 14", day(2025, time.October, 14), "", false},
		{"october 15", day(2025, time.October, 15), Autumn, true},
		{"halloween", day(2025, time.October, 31), Autumn, true},
		{"bunny start", day(2025, time.April, 3), Bunny, true},
		{"bunny end", day(2025, time.April, 9), Bunny, true},
		{"before bunny", day(2025, time.April, 2), "", false},
		{"after bunny", day(2025, time.April, 10), "", false},
		{"midsummer", day(2025, time.June, 21), "", false},
		{"easter 2026 minus 14", day(2026, time.March, 22), Bunny, true},
		{"late evening in window", time.Date(2025, time.April, 9, 23, 30, 0, 0, time.UTC), Bunny, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := SeasonOf(tt.date, nil)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, w.Season)
		})
	}
}
