// Package emoji picks the emoji of the day.
//
// Seasonal windows (December, late October, the fortnight before Easter)
// take precedence. Outside them weekdays get coffee and weekends get an
// outdoor glyph. Random picks are seeded with the day-of-year, so every run
// on the same calendar day agrees.
package emoji

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gorewood/readmegen/internal/calendar"
)

// ErrUnknownWeekday is returned for a weekday name outside Monday..Sunday.
var ErrUnknownWeekday = errors.New("unknown weekday")

// Fixed glyphs.
const (
	Rabbit = "🐰"
	Coffee = "☕"
)

// Option sets, ordered. Repeats are intentional and weight the draw.
var (
	HolidaySet = []string{"🎄", "🎅", "❄️", "☃️", "🎁", "🔔", "🦌", "🌟", "✨", "🎄"}
	AutumnSet  = []string{"🎃", "👻", "🦇", "🕷️", "🕸️", "💀", "🧙", "🧛", "🧟", "🎃"}
	OutdoorSet = []string{"🌴", "☀️", "🏔️", "🌊", "🌲", "⛰️", "🌅", "🌄", "🏕️", "🚵"}
)

// Rule names the branch that produced a pick.
type Rule string

const (
	RuleHoliday Rule = "holiday"
	RuleAutumn  Rule = "autumn"
	RuleBunny   Rule = "bunny"
	RuleWeekday Rule = "weekday"
	RuleWeekend Rule = "weekend"
)

// Pick is a chosen emoji and the rule that chose it.
type Pick struct {
	Emoji string `json:"emoji"`
	Rule  Rule   `json:"rule"`
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true, "Friday": true,
}

var weekends = map[string]bool{
	"Saturday": true, "Sunday": true,
}

// Picker selects emoji for a date.
type Picker struct {
	easter calendar.EasterFunc
}

// NewPicker creates a Picker. A nil easter uses calendar.Easter.
func NewPicker(easter calendar.EasterFunc) *Picker {
	if easter == nil {
		easter = calendar.Easter
	}
	return &Picker{easter: easter}
}

// Seasonal returns the seasonal emoji for t, or false outside every window.
func (p *Picker) Seasonal(t time.Time) (Pick, bool) {
	window, ok := calendar.SeasonOf(t, p.easter)
	if !ok {
		return Pick{}, false
	}

	seed := calendar.DayOfYear(t)
	switch window.Season {
	case calendar.Holiday:
		return Pick{Emoji: Choose(seed, HolidaySet), Rule: RuleHoliday}, true
	case calendar.Autumn:
		return Pick{Emoji: Choose(seed, AutumnSet), Rule: RuleAutumn}, true
	case calendar.Bunny:
		return Pick{Emoji: Rabbit, Rule: RuleBunny}, true
	default:
		return Pick{}, false
	}
}

// ForDay returns the emoji for a weekday name on date t.
func (p *Picker) ForDay(weekday string, t time.Time) (Pick, error) {
	if pick, ok := p.Seasonal(t); ok {
		return pick, nil
	}

	switch {
	case weekdays[weekday]:
		return Pick{Emoji: Coffee, Rule: RuleWeekday}, nil
	case weekends[weekday]:
		return Pick{Emoji: Choose(calendar.DayOfYear(t), OutdoorSet), Rule: RuleWeekend}, nil
	default:
		return Pick{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, weekday)
	}
}

// Options returns the glyphs a seasonal window draws from.
func Options(season calendar.Season) []string {
	switch season {
	case calendar.Holiday:
		return HolidaySet
	case calendar.Autumn:
		return AutumnSet
	case calendar.Bunny:
		return []string{Rabbit}
	default:
		return nil
	}
}

// Choose draws one option using a generator seeded with seed.
// The generator lives for this call only; equal seeds give equal picks.
func Choose(seed int, options []string) string {
	if len(options) == 0 {
		return ""
	}
	s := uint64(seed)
	rng := rand.New(rand.NewPCG(s, s))
	return options[rng.IntN(len(options))]
}
