package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version  string         `json:"version"`
	Config   []checkResult  `json:"config"`
	Template []checkResult  `json:"template"`
	Runtime  []checkResult  `json:"runtime"`
	Summary  *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that a render would succeed",
		Long: `Check that readmegen can render in this directory.

Runs health checks across three categories:
  CONFIG    - Config files, environment and timezone
  TEMPLATE  - Template presence and syntax, output directory, freshness
  RUNTIME   - Template engine, emoji calendar, clock and filesystem

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - A render would fail

Exits non-zero when any check fails.

Examples:
  readmegen doctor            # Run all health checks
  readmegen doctor --quiet    # Only show failures and warnings
  readmegen doctor --json     # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := newPrinter(cmd)
	result := gatherDoctorChecks(newDoctorEnv(cmd))

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputDoctorHuman(printer, result, flags.quiet)
	}

	if result.Summary.Failed > 0 {
		return output.NewUserError(fmt.Sprintf("%d doctor check(s) failed", result.Summary.Failed))
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(env *doctorEnv) *doctorResult {
	result := &doctorResult{
		Version:  version,
		Config:   runConfigChecks(env),
		Template: runTemplateChecks(env),
		Runtime:  runRuntimeChecks(env),
		Summary:  &doctorSummary{},
	}

	allChecks := append(append(append([]checkResult{}, result.Config...), result.Template...), result.Runtime...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("readmegen doctor %s\n", result.Version)

	printCheckSection(printer, "CONFIG", result.Config, quiet)
	printCheckSection(printer, "TEMPLATE", result.Template, quiet)
	printCheckSection(printer, "RUNTIME", result.Runtime, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	if quiet && allPassed(checks) {
		return
	}

	printer.Section(title)

	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}

		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     -> %s\n", check.Hint)
		}
	}
}

func allPassed(checks []checkResult) bool {
	for _, check := range checks {
		if check.Status != checkPass {
			return false
		}
	}
	return true
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}
