// Package greeting maps an hour of the day to a salutation.
package greeting

// Greetings, one per part of the day.
const (
	Morning   = "Good morning"
	Afternoon = "Good afternoon"
	Evening   = "Good evening"
)

// ForHour returns the greeting for an hour in 0..23.
// [5,12) is morning, [12,17) afternoon, everything else evening.
func ForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	default:
		return Evening
	}
}
