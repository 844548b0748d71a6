package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/config"
	"github.com/gorewood/readmegen/internal/output"
	"github.com/gorewood/readmegen/internal/render"
)

// newDeps builds the renderer collaborators. Tests replace it to pin the clock.
var newDeps = render.DefaultDeps

// persistentFlag reads a persistent flag from the command hierarchy.
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// newPrinter builds a printer honoring --json and --color. An invalid
// --color value falls back to auto after a warning.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	mode, err := output.ParseColorMode(persistentFlag(cmd, "color"))
	printer := output.NewPrinter(out, isJSONMode(cmd), mode.Styled(output.IsTTY(out))).WithStderr(cmd.ErrOrStderr())
	if err != nil {
		printer.Warn("%v", err)
	}
	return printer
}

// newLogger returns a stderr text logger; --verbose lowers the level to debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if persistentFlag(cmd, "verbose") == "true" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// settingsOverrides are per-command flags that beat config values.
type settingsOverrides struct {
	template string
	output   string
	mode     string
}

// loadSettings resolves config and applies flag overrides.
func loadSettings(cmd *cobra.Command, overrides settingsOverrides) (*config.Config, error) {
	cfg, err := config.Load(persistentFlag(cmd, "config"))
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	if overrides.template != "" {
		cfg.Template = overrides.template
	}
	if overrides.output != "" {
		cfg.Output = overrides.output
	}
	if overrides.mode != "" {
		cfg.Mode = overrides.mode
	}
	if err := cfg.Validate(); err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return cfg, nil
}

// newRenderer builds a renderer for cfg.
func newRenderer(cfg *config.Config, logger *slog.Logger) (*render.Renderer, error) {
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return render.New(newDeps(), mode, loc, logger), nil
}

// classifyError maps renderer failures onto exit codes.
func classifyError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var depErr *render.DependencyError
	switch {
	case errors.As(err, &depErr):
		return output.NewDependencyError(err.Error(), depErr.Hint+", then reinstall with: go install github.com/gorewood/readmegen/cmd/readmegen@latest", err)
	case errors.Is(err, render.ErrTemplateNotFound):
		e := output.NewUserErrorWithCause(err.Error(), err)
		e.Hint = "create the template or point --template at it"
		return e
	case errors.Is(err, render.ErrTemplateSyntax):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

// fail prints err and returns it classified, for RunE.
func fail(printer *output.Printer, err error) error {
	exitErr := classifyError(err)
	printer.Error(exitErr)
	return exitErr
}
