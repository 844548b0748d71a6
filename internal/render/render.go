// Package render fills a README template with the day's display values
// and writes the result.
//
// A Renderer reads the template through an afero.Fs, takes the current
// moment from a clockwork.Clock, computes a DisplayContext and hands both to
// an Engine. Every collaborator is injected; DefaultDeps wires the OS
// filesystem, the wall clock, pongo2 and the built-in emoji picker.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"github.com/gorewood/readmegen/internal/emoji"
)

// Default file locations, relative to the working directory.
const (
	DefaultTemplatePath = "README.md.j2"
	DefaultOutputPath   = "README.md"
)

// Sentinel errors for errors.Is checks.
var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrTemplateSyntax    = errors.New("invalid template")
	ErrMissingDependency = errors.New("missing dependency")
)

// DependencyError reports a collaborator that was not wired.
type DependencyError struct {
	Name string
	Hint string
}

// Error implements the error interface.
func (e *DependencyError) Error() string {
	return "required " + e.Name + " is not available"
}

// Is matches ErrMissingDependency.
func (e *DependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// Deps are the collaborators a Renderer needs.
type Deps struct {
	Fs     afero.Fs
	Clock  clockwork.Clock
	Engine Engine
	Picker *emoji.Picker
}

// DefaultDeps returns production collaborators.
func DefaultDeps() Deps {
	return Deps{
		Fs:     afero.NewOsFs(),
		Clock:  clockwork.NewRealClock(),
		Engine: NewPongoEngine(),
		Picker: emoji.NewPicker(nil),
	}
}

// Renderer renders templates for a moment in time.
type Renderer struct {
	deps     Deps
	mode     Mode
	location *time.Location
	logger   *slog.Logger
}

// New creates a Renderer. A nil location means time.Local; a nil logger
// means slog.Default().
func New(deps Deps, mode Mode, location *time.Location, logger *slog.Logger) *Renderer {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{deps: deps, mode: mode, location: location, logger: logger}
}

// Result describes one render.
type Result struct {
	TemplatePath string         `json:"template"`
	OutputPath   string         `json:"output"`
	Mode         Mode           `json:"mode"`
	Context      DisplayContext `json:"context"`
	Content      string         `json:"-"`
	Written      bool           `json:"written"`
	Changed      bool           `json:"changed"`
}

// Summary is the one-line confirmation printed after a render.
func (r *Result) Summary() string {
	name := filepath.Base(r.OutputPath)
	if r.Mode == ModeWeekday {
		return fmt.Sprintf("Rendered %s with weekday: %s", name, r.Context.Weekday)
	}
	return fmt.Sprintf("Rendered %s with weekday: %s, emoji: %s", name, r.Context.Weekday, r.Context.Emoji)
}

// Mode returns the configured mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Now returns the current moment in the renderer's location.
func (r *Renderer) Now() time.Time {
	return r.deps.Clock.Now().In(r.location)
}

// Validate reports the first collaborator that is missing.
func (r *Renderer) Validate() error {
	switch {
	case r.deps.Engine == nil:
		return &DependencyError{Name: "template engine", Hint: "wire render.NewPongoEngine (github.com/flosch/pongo2/v6)"}
	case r.deps.Picker == nil:
		return &DependencyError{Name: "emoji calendar", Hint: "wire emoji.NewPicker (github.com/rickar/cal/v2)"}
	case r.deps.Clock == nil:
		return &DependencyError{Name: "clock", Hint: "wire clockwork.NewRealClock (github.com/jonboulle/clockwork)"}
	case r.deps.Fs == nil:
		return &DependencyError{Name: "filesystem", Hint: "wire afero.NewOsFs (github.com/spf13/afero)"}
	}
	return nil
}

// Context computes the display values for at.
func (r *Renderer) Context(at time.Time) (DisplayContext, error) {
	if err := r.Validate(); err != nil {
		return DisplayContext{}, err
	}
	return NewDisplayContext(at.In(r.location), r.mode, r.deps.Picker)
}

// Render produces the output text for at without writing anything.
func (r *Renderer) Render(templatePath string, at time.Time) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	source, err := r.readTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	ctx, err := NewDisplayContext(at.In(r.location), r.mode, r.deps.Picker)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("computed display context",
		"date", ctx.Date, "weekday", ctx.Weekday, "greeting", ctx.Greeting, "emoji", ctx.Emoji, "rule", ctx.Rule)

	content, err := r.deps.Engine.Render(source, ctx.Vars())
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", templatePath, err)
	}

	return &Result{
		TemplatePath: templatePath,
		Mode:         r.mode,
		Context:      ctx,
		Content:      content,
	}, nil
}

// Run renders templatePath for the current moment and writes outputPath.
func (r *Renderer) Run(templatePath, outputPath string) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.RunAt(templatePath, outputPath, r.Now())
}

// RunAt renders templatePath for at and overwrites outputPath.
func (r *Renderer) RunAt(templatePath, outputPath string, at time.Time) (*Result, error) {
	result, err := r.Render(templatePath, at)
	if err != nil {
		return nil, err
	}
	result.OutputPath = outputPath

	existing, readErr := afero.ReadFile(r.deps.Fs, outputPath)
	result.Changed = readErr != nil || !bytes.Equal(existing, []byte(result.Content))

	if err := afero.WriteFile(r.deps.Fs, outputPath, []byte(result.Content), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	result.Written = true
	r.logger.Debug("wrote output", "path", outputPath, "bytes", len(result.Content), "changed", result.Changed)
	return result, nil
}

// Check renders for at and compares against the current outputPath.
// Nothing is written; Result.Changed reports whether a render would differ.
func (r *Renderer) Check(templatePath, outputPath string, at time.Time) (*Result, error) {
	result, err := r.Render(templatePath, at)
	if err != nil {
		return nil, err
	}
	result.OutputPath = outputPath

	existing, err := afero.ReadFile(r.deps.Fs, outputPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Changed = true
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", outputPath, err)
	default:
		result.Changed = !bytes.Equal(existing, []byte(result.Content))
	}
	return result, nil
}

// readTemplate loads the template text, mapping absence to ErrTemplateNotFound.
func (r *Renderer) readTemplate(path string) (string, error) {
	data, err := afero.ReadFile(r.deps.Fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w at %s", ErrTemplateNotFound, resolvePath(path))
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	r.logger.Debug("read template", "path", path, "bytes", len(data))
	return string(data), nil
}

// resolvePath returns an absolute form of path for diagnostics.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
