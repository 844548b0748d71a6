package render

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Engine substitutes variables into template text.
type Engine interface {
	Render(source string, vars map[string]any) (string, error)
}

// PongoEngine renders Jinja-syntax templates ({{ weekday }}, {% if %}) with pongo2.
type PongoEngine struct{}

// NewPongoEngine returns the default template engine.
func NewPongoEngine() *PongoEngine {
	return &PongoEngine{}
}

// Render parses source and executes it against vars.
func (*PongoEngine) Render(source string, vars map[string]any) (string, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateSyntax, err)
	}
	out, err := tpl.Execute(pongo2.Context(vars))
	if err != nil {
		return "", fmt.Errorf("%w: executing: %w", ErrTemplateSyntax, err)
	}
	return out, nil
}
