package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/readmegen/internal/calendar"
	"github.com/gorewood/readmegen/internal/render"
)

// --- display_context ---

// ContextInput is the input for the display_context tool.
type ContextInput struct {
	Date string `json:"date,omitempty" jsonschema:"date to evaluate: today, +3d, 2026-01-17 or RFC 3339 (default today)"`
	Mode string `json:"mode,omitempty" jsonschema:"full or weekday (default from config)"`
}

// ContextOutput is the output for the display_context tool.
type ContextOutput struct {
	Date      string `json:"date"               jsonschema:"calendar date evaluated"`
	DayOfYear int    `json:"day_of_year"        jsonschema:"ordinal day used to seed emoji picks"`
	Weekday   string `json:"weekday"            jsonschema:"weekday name"`
	Greeting  string `json:"greeting,omitempty" jsonschema:"time-of-day greeting (full mode)"`
	Emoji     string `json:"emoji,omitempty"    jsonschema:"emoji of the day (full mode)"`
	Rule      string `json:"rule,omitempty"     jsonschema:"rule that chose the emoji"`
}

func handleDisplayContext(defaults Defaults, factory RendererFactory) mcp.ToolHandlerFor[ContextInput, ContextOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ContextInput) (*mcp.CallToolResult, ContextOutput, error) {
		renderer, err := rendererFor(defaults, factory, input.Mode)
		if err != nil {
			return nil, ContextOutput{}, err
		}
		at, err := calendar.ParseMoment(input.Date, renderer.Now())
		if err != nil {
			return nil, ContextOutput{}, err
		}

		ctx, err := renderer.Context(at)
		if err != nil {
			return nil, ContextOutput{}, fmt.Errorf("computing display context: %w", err)
		}
		return nil, ContextOutput{
			Date:      ctx.Date,
			DayOfYear: ctx.DayOfYear,
			Weekday:   ctx.Weekday,
			Greeting:  ctx.Greeting,
			Emoji:     ctx.Emoji,
			Rule:      string(ctx.Rule),
		}, nil
	}
}

// --- render ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Template string `json:"template,omitempty" jsonschema:"template path (default from config)"`
	Output   string `json:"output,omitempty"   jsonschema:"output path (default from config)"`
	Mode     string `json:"mode,omitempty"     jsonschema:"full or weekday (default from config)"`
	Date     string `json:"date,omitempty"     jsonschema:"render as of this date (default today)"`
	DryRun   bool   `json:"dry_run,omitempty"  jsonschema:"return the rendered text without writing"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Summary string `json:"summary"           jsonschema:"confirmation line"`
	Output  string `json:"output"            jsonschema:"output path"`
	Written bool   `json:"written"           jsonschema:"whether the output file was written"`
	Changed bool   `json:"changed"           jsonschema:"whether the content differs from the previous file"`
	Content string `json:"content,omitempty" jsonschema:"rendered text (dry run only)"`
}

func handleRender(defaults Defaults, factory RendererFactory) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		renderer, err := rendererFor(defaults, factory, input.Mode)
		if err != nil {
			return nil, RenderOutput{}, err
		}
		at, err := calendar.ParseMoment(input.Date, renderer.Now())
		if err != nil {
			return nil, RenderOutput{}, err
		}

		templatePath := orDefault(input.Template, defaults.Template)
		outputPath := orDefault(input.Output, defaults.Output)

		var result *render.Result
		if input.DryRun {
			result, err = renderer.Check(templatePath, outputPath, at)
		} else {
			result, err = renderer.RunAt(templatePath, outputPath, at)
		}
		if err != nil {
			return nil, RenderOutput{}, err
		}

		out := RenderOutput{
			Summary: result.Summary(),
			Output:  outputPath,
			Written: result.Written,
			Changed: result.Changed,
		}
		if input.DryRun {
			out.Content = result.Content
		}
		return nil, out, nil
	}
}

// rendererFor resolves the mode override and builds a validated renderer.
func rendererFor(defaults Defaults, factory RendererFactory, mode string) (*render.Renderer, error) {
	resolved := defaults.Mode
	if mode != "" {
		parsed, err := render.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		resolved = parsed
	}
	renderer := factory(resolved)
	if err := renderer.Validate(); err != nil {
		return nil, err
	}
	return renderer, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
