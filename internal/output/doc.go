// Package output renders readmegen results for people and for scripts.
//
// A Printer writes either styled text or JSON depending on --json:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": result.Summary()})
//	printer.Error(err)
//
// Styling uses lipgloss and is dropped when stdout is not a terminal or when
// --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess           // 0
//	output.ExitUserError         // 1: missing template, bad flags or config
//	output.ExitSystemError       // 2: I/O failure
//	output.ExitMissingDependency // 3: a collaborator is not wired
//	output.ExitStale             // 4: --check found an out-of-date README
//
// Errors built with the New* constructors carry their code through to both
// the JSON error body and the process exit status.
package output
