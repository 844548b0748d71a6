package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/render"
)

// todayFlags holds the command-line flags for the today command.
type todayFlags struct {
	date string
	mode string
}

// newTodayCmd creates the today command.
func newTodayCmd() *cobra.Command {
	flags := &todayFlags{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the values a render would use",
		Long: `Show the weekday, greeting and emoji a render would substitute,
along with the rule that chose the emoji. Nothing is read or written.

Examples:
  readmegen today                    # values for right now
  readmegen today --date 2026-04-01  # values for another day
  readmegen today --json             # machine-readable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToday(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.date, "date", "", "Show values as of a date: today, +3d, 2026-01-17 or RFC 3339")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Render mode: full or weekday")

	return cmd
}

// runToday executes the today command.
func runToday(cmd *cobra.Command, flags *todayFlags) error {
	printer := newPrinter(cmd)
	logger := newLogger(cmd)

	cfg, err := loadSettings(cmd, settingsOverrides{mode: flags.mode})
	if err != nil {
		return fail(printer, err)
	}

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return fail(printer, err)
	}

	at, err := calendar.ParseMoment(flags.date, renderer.Now())
	if err != nil {
		return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	ctx, err := renderer.Context(at)
	if err != nil {
		return fail(printer, err)
	}
	logger.Debug("display context", "summary", describeContext(ctx))

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"mode":    renderer.Mode(),
			"context": ctx,
		})
	}

	printer.KeyValue("Date", ctx.Date)
	printer.KeyValue("Day of year", strconv.Itoa(ctx.DayOfYear))
	printer.KeyValue("Weekday", ctx.Weekday)
	if renderer.Mode() == render.ModeWeekday {
		printer.KeyValue("Mode", string(render.ModeWeekday))
		return nil
	}
	printer.KeyValue("Greeting", ctx.Greeting)
	printer.KeyValue("Emoji", ctx.Emoji)
	printer.KeyValue("Rule", string(ctx.Rule))
	return nil
}
