package main

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/config"
	"github.com/gorewood/readmegen/internal/render"
)

// doctorEnv is the state shared by the checks. When the config fails to
// load the remaining checks run against the defaults.
type doctorEnv struct {
	cfg      *config.Config
	cfgErr   error
	fs       afero.Fs
	renderer *render.Renderer
}

// newDoctorEnv resolves config and builds a renderer without failing.
func newDoctorEnv(cmd *cobra.Command) *doctorEnv {
	env := &doctorEnv{}
	logger := newLogger(cmd)

	cfg, err := config.Load(persistentFlag(cmd, "config"))
	if err != nil {
		defaults := config.Default()
		cfg = &defaults
		env.cfgErr = err
	}
	env.cfg = cfg

	deps := newDeps()
	env.fs = deps.Fs
	if env.fs == nil {
		env.fs = afero.NewOsFs()
	}

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		renderer = render.New(deps, render.ModeFull, time.Local, logger)
	}
	env.renderer = renderer
	return env
}

// now returns the renderer's current moment, or the wall clock when the
// renderer has no clock.
func (e *doctorEnv) now() time.Time {
	if e.renderer.Validate() == nil {
		return e.renderer.Now()
	}
	return time.Now()
}

// runConfigChecks checks config files and settings.
func runConfigChecks(env *doctorEnv) []checkResult {
	return []checkResult{
		checkConfigLoads(env),
		checkTimezone(env),
		checkMode(env),
	}
}

// checkConfigLoads reports which config files were read.
func checkConfigLoads(env *doctorEnv) checkResult {
	if env.cfgErr != nil {
		return checkResult{
			Name:    "Config",
			Status:  checkFail,
			Message: env.cfgErr.Error(),
			Hint:    "Fix " + config.ProjectFile + " or the READMEGEN_* variables",
		}
	}
	if len(env.cfg.Sources) == 0 {
		return checkResult{
			Name:    "Config",
			Status:  checkPass,
			Message: "using defaults",
		}
	}
	return checkResult{
		Name:    "Config",
		Status:  checkPass,
		Message: strings.Join(env.cfg.Sources, ", "),
	}
}

// checkTimezone reports the zone used for greeting and weekday.
func checkTimezone(env *doctorEnv) checkResult {
	loc, err := env.cfg.Location()
	if err != nil {
		return checkResult{
			Name:    "Timezone",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Use an IANA name such as Europe/Berlin",
		}
	}
	return checkResult{
		Name:    "Timezone",
		Status:  checkPass,
		Message: loc.String(),
	}
}

// checkMode reports the render mode.
func checkMode(env *doctorEnv) checkResult {
	mode, err := render.ParseMode(env.cfg.Mode)
	if err != nil {
		return checkResult{
			Name:    "Mode",
			Status:  checkFail,
			Message: err.Error(),
		}
	}
	return checkResult{
		Name:    "Mode",
		Status:  checkPass,
		Message: string(mode),
	}
}

// runTemplateChecks checks the template and output files.
func runTemplateChecks(env *doctorEnv) []checkResult {
	return []checkResult{
		checkTemplateExists(env),
		checkTemplateRenders(env),
		checkOutputWritable(env),
		checkOutputFresh(env),
	}
}

// checkTemplateExists checks the template file is present.
func checkTemplateExists(env *doctorEnv) checkResult {
	exists, err := afero.Exists(env.fs, env.cfg.Template)
	if err != nil {
		return checkResult{
			Name:    "Template",
			Status:  checkFail,
			Message: err.Error(),
		}
	}
	if !exists {
		return checkResult{
			Name:    "Template",
			Status:  checkFail,
			Message: env.cfg.Template + " not found",
			Hint:    "Create it or set --template / READMEGEN_TEMPLATE",
		}
	}
	return checkResult{
		Name:    "Template",
		Status:  checkPass,
		Message: env.cfg.Template,
	}
}

// checkTemplateRenders renders the template without writing.
func checkTemplateRenders(env *doctorEnv) checkResult {
	_, err := env.renderer.Render(env.cfg.Template, env.now())
	switch {
	case err == nil:
		return checkResult{
			Name:    "Syntax",
			Status:  checkPass,
			Message: "template renders",
		}
	case errors.Is(err, render.ErrTemplateNotFound), errors.Is(err, render.ErrMissingDependency):
		return checkResult{
			Name:    "Syntax",
			Status:  checkWarn,
			Message: "skipped",
		}
	default:
		return checkResult{
			Name:    "Syntax",
			Status:  checkFail,
			Message: err.Error(),
		}
	}
}

// checkOutputWritable creates and removes a scratch file beside the output.
func checkOutputWritable(env *doctorEnv) checkResult {
	dir := filepath.Dir(env.cfg.Output)
	f, err := afero.TempFile(env.fs, dir, ".readmegen-doctor-*")
	if err != nil {
		return checkResult{
			Name:    "Output Directory",
			Status:  checkFail,
			Message: dir + " is not writable",
			Hint:    err.Error(),
		}
	}
	name := f.Name()
	_ = f.Close()
	_ = env.fs.Remove(name)

	return checkResult{
		Name:    "Output Directory",
		Status:  checkPass,
		Message: dir + " is writable",
	}
}

// checkOutputFresh compares the output with a fresh render.
func checkOutputFresh(env *doctorEnv) checkResult {
	result, err := env.renderer.Check(env.cfg.Template, env.cfg.Output, env.now())
	if err != nil {
		return checkResult{
			Name:    "Up to Date",
			Status:  checkWarn,
			Message: "skipped",
		}
	}
	if result.Changed {
		return checkResult{
			Name:    "Up to Date",
			Status:  checkWarn,
			Message: env.cfg.Output + " is out of date",
			Hint:    "Run 'readmegen render'",
		}
	}
	return checkResult{
		Name:    "Up to Date",
		Status:  checkPass,
		Message: env.cfg.Output + " matches today's render",
	}
}

// runRuntimeChecks checks the render collaborators.
func runRuntimeChecks(env *doctorEnv) []checkResult {
	return []checkResult{
		checkCollaborators(env),
		checkEaster(env),
		checkToday(env),
	}
}

// checkCollaborators checks every render collaborator is wired.
func checkCollaborators(env *doctorEnv) checkResult {
	err := env.renderer.Validate()
	var depErr *render.DependencyError
	if errors.As(err, &depErr) {
		return checkResult{
			Name:    "Collaborators",
			Status:  checkFail,
			Message: depErr.Error(),
			Hint:    depErr.Hint,
		}
	}
	return checkResult{
		Name:    "Collaborators",
		Status:  checkPass,
		Message: "template engine, emoji calendar, clock, filesystem",
	}
}

// checkEaster reports this year's Easter and the bunny window around it.
func checkEaster(env *doctorEnv) checkResult {
	year := env.now().Year()
	for _, w := range calendar.Windows(year, nil) {
		if w.Season != calendar.Bunny {
			continue
		}
		return checkResult{
			Name:   "Easter",
			Status: checkPass,
			Message: calendar.Easter(year).Format(dateLayout) +
				", bunny " + w.Start.Format(dateLayout) + " to " + w.End.Format(dateLayout),
		}
	}
	return checkResult{
		Name:    "Easter",
		Status:  checkFail,
		Message: "no bunny window computed",
	}
}

// checkToday computes today's display values.
func checkToday(env *doctorEnv) checkResult {
	ctx, err := env.renderer.Context(env.now())
	if err != nil {
		return checkResult{
			Name:    "Today",
			Status:  checkWarn,
			Message: "skipped",
		}
	}
	return checkResult{
		Name:    "Today",
		Status:  checkPass,
		Message: describeContext(ctx),
	}
}
