package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/render"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	template string
	output   string
	mode     string
	date     string
	dryRun   bool
	check    bool
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the README from its template",
		Long: `Render README.md from README.md.j2 and overwrite the output.

Modes:
  full     weekday, greeting and emoji (default)
  weekday  weekday only; greeting and emoji are left undefined

Examples:
  readmegen render                         # README.md.j2 -> README.md
  readmegen render --mode weekday          # weekday only
  readmegen render --date 2025-12-24       # preview another day
  readmegen render --dry-run               # print instead of writing
  readmegen render --check                 # exit 4 if README.md is stale`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

// addRenderFlags registers the render flags on cmd. The root command shares
// them so a bare invocation accepts the same options.
func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template path (default README.md.j2)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output path (default README.md)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Render mode: full or weekday")
	cmd.Flags().StringVar(&flags.date, "date", "", "Render as of a date: today, +3d, 2026-01-17 or RFC 3339")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the rendered text instead of writing it")
	cmd.Flags().BoolVar(&flags.check, "check", false, "Fail if the output differs from a fresh render; write nothing")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "check")
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, flags *renderFlags) error {
	printer := newPrinter(cmd)
	logger := newLogger(cmd)

	cfg, err := loadSettings(cmd, settingsOverrides{
		template: flags.template,
		output:   flags.output,
		mode:     flags.mode,
	})
	if err != nil {
		return fail(printer, err)
	}
	logger.Debug("resolved config", "template", cfg.Template, "output", cfg.Output, "mode", cfg.Mode, "sources", cfg.Sources)

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return fail(printer, err)
	}
	if err := renderer.Validate(); err != nil {
		return fail(printer, err)
	}

	at, err := calendar.ParseMoment(flags.date, renderer.Now())
	if err != nil {
		return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	switch {
	case flags.check:
		return runCheck(printer, renderer, cfg.Template, cfg.Output, at)
	case flags.dryRun:
		result, err := renderer.Render(cfg.Template, at)
		if err != nil {
			return fail(printer, err)
		}
		result.OutputPath = cfg.Output
		return outputDryRun(printer, result)
	}

	result, err := renderer.RunAt(cfg.Template, cfg.Output, at)
	if err != nil {
		return fail(printer, err)
	}
	return outputRendered(printer, result)
}

// runCheck compares a fresh render with the output on disk.
func runCheck(printer *output.Printer, renderer *render.Renderer, templatePath, outputPath string, at time.Time) error {
	result, err := renderer.Check(templatePath, outputPath, at)
	if err != nil {
		return fail(printer, err)
	}
	if result.Changed {
		stale := output.NewStaleError(outputPath + " is out of date")
		stale.Hint = "run 'readmegen render' to refresh it"
		printer.Error(stale)
		return stale
	}
	return printer.Success(map[string]any{
		"message": outputPath + " is up to date",
		"output":  outputPath,
		"changed": false,
	})
}

// outputRendered prints the one-line confirmation.
func outputRendered(printer *output.Printer, result *render.Result) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"message": result.Summary(),
			"output":  result.OutputPath,
			"mode":    result.Mode,
			"context": result.Context,
			"written": result.Written,
			"changed": result.Changed,
		})
	}
	return printer.Success(map[string]any{"message": result.Summary()})
}

// outputDryRun prints the rendered text verbatim.
func outputDryRun(printer *output.Printer, result *render.Result) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"output":  result.OutputPath,
			"mode":    result.Mode,
			"context": result.Context,
			"content": result.Content,
		})
	}
	printer.Print("%s", result.Content)
	return nil
}

// describeContext summarizes a display context on one line.
func describeContext(ctx render.DisplayContext) string {
	if ctx.Emoji == "" {
		return ctx.Weekday
	}
	return fmt.Sprintf("%s, %s %s", ctx.Greeting, ctx.Weekday, ctx.Emoji)
}
