package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPongoEngine_Render(t *testing.T) {
	tests := []struct {
		name   string
		source string
		vars   map[string]any
		want   string
	}{
		{"substitution", "Happy {{ weekday }}!", map[string]any{"weekday": "Friday"}, "Happy Friday!"},
		{"no placeholders", "# Title\n\nplain text\n", nil, "# Title\n\nplain text\n"},
		{"undefined is empty", "[{{ greeting }}]", map[string]any{"weekday": "Friday"}, "[]"},
		{"trailing newline kept", "{{ weekday }}\n", map[string]any{"weekday": "Monday"}, "Monday\n"},
		{"unicode", "{{ emoji }} ok", map[string]any{"emoji": "🎃"}, "🎃 ok"},
		{"conditional", "{% if emoji %}yes{% else %}no{% endif %}", map[string]any{}, "no"},
	}

	engine := NewPongoEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render(tt.source, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPongoEngine_SyntaxError(t *testing.T) {
	_, err := NewPongoEngine().Render("{{ weekday ", nil)
	require.ErrorIs(t, err, ErrTemplateSyntax)
}
