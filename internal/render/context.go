package render

import (
	"fmt"
	"time"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/emoji"
	"github.com/gorewood/readmegen/internal/greeting"
)

// Mode selects which values are computed for the template.
type Mode string

const (
	// ModeFull provides weekday, greeting and emoji.
	ModeFull Mode = "full"
	// ModeWeekday provides the weekday only.
	ModeWeekday Mode = "weekday"
)

// ParseMode validates a mode name. Empty means ModeFull.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFull:
		return ModeFull, nil
	case ModeWeekday:
		return ModeWeekday, nil
	default:
		return "", fmt.Errorf("invalid mode %q; use %q or %q", s, ModeFull, ModeWeekday)
	}
}

// DisplayContext holds the values substituted into the template.
// Greeting and Emoji are empty in weekday mode.
type DisplayContext struct {
	Date      string     `json:"date"`
	DayOfYear int        `json:"day_of_year"`
	Weekday   string     `json:"weekday"`
	Greeting  string     `json:"greeting,omitempty"`
	Emoji     string     `json:"emoji,omitempty"`
	Rule      emoji.Rule `json:"rule,omitempty"`
}

// NewDisplayContext computes the display values for the moment now.
func NewDisplayContext(now time.Time, mode Mode, picker *emoji.Picker) (DisplayContext, error) {
	ctx := DisplayContext{
		Date:      now.Format("2006-01-02"),
		DayOfYear: calendar.DayOfYear(now),
		Weekday:   now.Weekday().String(),
	}
	if mode == ModeWeekday {
		return ctx, nil
	}

	pick, err := picker.ForDay(ctx.Weekday, now)
	if err != nil {
		return DisplayContext{}, fmt.Errorf("choosing emoji: %w", err)
	}
	ctx.Greeting = greeting.ForHour(now.Hour())
	ctx.Emoji = pick.Emoji
	ctx.Rule = pick.Rule
	return ctx, nil
}

// Vars returns the template variables. Only computed values are present,
// so weekday mode leaves greeting and emoji undefined.
func (c DisplayContext) Vars() map[string]any {
	vars := map[string]any{"weekday": c.Weekday}
	if c.Greeting != "" {
		vars["greeting"] = c.Greeting
	}
	if c.Emoji != "" {
		vars["emoji"] = c.Emoji
	}
	return vars
}
