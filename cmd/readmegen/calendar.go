package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/emoji"
	"github.com/gorewood/readmegen/internal/output"
)

const dateLayout = "2006-01-02"

// calendarFlags holds the command-line flags for the calendar command.
type calendarFlags struct {
	year int
}

// calendarWindow is one row of calendar output.
type calendarWindow struct {
	Season  calendar.Season `json:"season"`
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Options []string        `json:"options"`
}

// newCalendarCmd creates the calendar command.
func newCalendarCmd() *cobra.Command {
	flags := &calendarFlags{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List the seasonal emoji windows for a year",
		Long: `List the seasonal emoji windows for a year, in precedence order:

  holiday  December 1-31
  autumn   October 15-31
  bunny    Easter Sunday minus 14 days, plus or minus 3

Outside these windows weekdays get coffee and weekends an outdoor emoji.

Examples:
  readmegen calendar              # this year
  readmegen calendar --year 2027  # another year`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalendar(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.year, "year", 0, "Year to show (default current year)")

	return cmd
}

// runCalendar executes the calendar command.
func runCalendar(cmd *cobra.Command, flags *calendarFlags) error {
	printer := newPrinter(cmd)

	year := flags.year
	if year == 0 {
		cfg, err := loadSettings(cmd, settingsOverrides{})
		if err != nil {
			return fail(printer, err)
		}
		renderer, err := newRenderer(cfg, newLogger(cmd))
		if err != nil {
			return fail(printer, err)
		}
		if err := renderer.Validate(); err != nil {
			return fail(printer, err)
		}
		year = renderer.Now().Year()
	}
	if year < 1583 || year > 9999 {
		return fail(printer, output.NewUserError(fmt.Sprintf("year %d out of range; use 1583-9999", year)))
	}

	easter := calendar.Easter(year)
	windows := calendarWindows(year)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"year":    year,
			"easter":  easter.Format(dateLayout),
			"windows": windows,
		})
	}

	printer.Box(fmt.Sprintf("Seasons %d", year), "Easter: "+easter.Format(dateLayout))
	printer.Println()

	accent := printer.Styles().Accent
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, []string{accent.Render(string(w.Season)), w.Start, w.End, strings.Join(w.Options, " ")})
	}
	printer.Table([]string{"Season", "Start", "End", "Emoji"}, rows)
	return nil
}

// calendarWindows describes the seasonal windows of year.
func calendarWindows(year int) []calendarWindow {
	windows := calendar.Windows(year, nil)
	out := make([]calendarWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, calendarWindow{
			Season:  w.Season,
			Start:   w.Start.Format(dateLayout),
			End:     w.End.Format(dateLayout),
			Options: emoji.Options(w.Season),
		})
	}
	return out
}
