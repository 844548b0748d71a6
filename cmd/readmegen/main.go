// Package main provides the entry point for the readmegen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/config"
	"github.com/gorewood/readmegen/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors that commands did not report themselves.
// An *output.ExitError has already gone through the printer.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command. Invoked bare it renders the README.
func newRootCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "readmegen",
		Short: "Render README.md from a template with today's greeting and emoji",
		Long: `readmegen renders README.md from README.md.j2, filling in:

  {{ weekday }}   the day name, e.g. Monday
  {{ greeting }}  Good morning / Good afternoon / Good evening
  {{ emoji }}     a seasonal pick, coffee on weekdays, outdoors on weekends

Emoji picks are seeded by day-of-year, so every run on the same day agrees.
Running readmegen with no command is the same as 'readmegen render' and
accepts the same flags.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	// .env.local, .env and the global env file feed READMEGEN_* settings.
	// Variables already in the environment win.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return config.LoadEnvFiles(config.EnvFiles()...)
	}

	addRenderFlags(cmd, flags)

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always or never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	cmd.PersistentFlags().String("config", "", "Config file (default .readmegen.yaml, then the global config)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "info", Title: "Info Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newRenderCmd(), "core")
	addGroupedCommand(cmd, newTodayCmd(), "core")

	addGroupedCommand(cmd, newCalendarCmd(), "info")
	addGroupedCommand(cmd, newDoctorCmd(), "info")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
