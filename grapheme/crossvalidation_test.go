package grapheme_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/phoenix-tui/textcore/grapheme"
)

// Cross-checks the wcwidth policy against two other width implementations
// on inputs where they're known to agree, catching accidental regressions
// toward either library's known bug cases (lipgloss #562 among them).
func TestWcwidthAgreesWithReferenceImplementations(t *testing.T) {
	e := grapheme.New(grapheme.Wcwidth, 8)

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"emoji with text", "📝 Test", 7},
		{"simple emoji", "👋", 2},
		{"emoji sandwiched", "Hello 👋 World", 14},
		{"multiple emoji", "👋😀🎉", 6},
		{"cjk", "你好", 4},
		{"mixed complex", "Hello 👋 世界!", 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := int(e.CalculateTextWidth(tc.input))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, lipgloss.Width(tc.input))
			assert.Equal(t, tc.want, runewidth.StringWidth(tc.input))
		})
	}
}
