package service

import (
	"github.com/mattn/go-runewidth"

	"github.com/phoenix-tui/textcore/grapheme/domain/value"
	"github.com/phoenix-tui/textcore/unicodewidth"
)

const (
	vs16           = 0xFE0F
	zwj            = 0x200D
	regionalLo     = 0x1F1E6
	regionalHi     = 0x1F1FF
	devanagariVirm = 0x094D
)

var viramas = map[rune]struct{}{
	0x094D: {}, // Devanagari
	0x09CD: {}, // Bengali
	0x0ACD: {}, // Gujarati
	0x0B4D: {}, // Oriya
	0x0BCD: {}, // Tamil
	0x0C4D: {}, // Telugu
	0x0CCD: {}, // Kannada
	0x0D4D: {}, // Malayalam
}

func isVirama(r rune) bool {
	_, ok := viramas[r]
	return ok
}

func isRegionalIndicator(r rune) bool {
	return r >= regionalLo && r <= regionalHi
}

// clusterWidth computes the display width of one cluster under method and
// tabWidth.
func clusterWidth(c cluster, method value.WidthMethod, tabWidth int) int {
	if len(c.runes) == 1 && c.runes[0] == '\t' {
		return tabWidth
	}

	switch method {
	case value.Wcwidth:
		// tmux-compatible width: sum each codepoint independently via
		// go-runewidth rather than joining into a grapheme cluster, matching
		// the wcwidth(3) contract this policy targets.
		sum := 0
		for _, r := range c.runes {
			sum += runewidth.RuneWidth(r)
		}
		return sum
	default: // Unicode, NoZWJ
		return unicodeClusterWidth(c.runes)
	}
}

// unicodeClusterWidth implements the "unicode"/"no_zwj" cluster-width rule:
// base codepoint width, VS16 promotion, Regional Indicator pairs at width 2,
// and Indic-virama conjunct summation.
func unicodeClusterWidth(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}

	if len(runes) >= 2 && isRegionalIndicator(runes[0]) && isRegionalIndicator(runes[1]) {
		return 2
	}

	// Indic-virama conjuncts: sum the width of each base consonant
	// separated by a virama, since the cluster renders as one ligature
	// occupying multiple cells in most terminals' column accounting.
	if hasVirama(runes) {
		return viramaConjunctWidth(runes)
	}

	base := clampWidth(unicodewidth.Width(runes[0]))

	// VS16 (emoji presentation selector) promotes a narrow base to wide.
	if len(runes) >= 2 && runes[1] == vs16 && base < 2 {
		return 2
	}
	// VS15 (text presentation selector) never widens.
	return base
}

func hasVirama(runes []rune) bool {
	for _, r := range runes {
		if isVirama(r) {
			return true
		}
	}
	return false
}

func viramaConjunctWidth(runes []rune) int {
	width := 0
	pendingBase := false
	for _, r := range runes {
		if isVirama(r) {
			continue
		}
		cat := unicodewidth.GeneralCategory(r)
		if cat == "Mn" || cat == "Mc" || cat == "Me" {
			continue
		}
		width += clampWidth(unicodewidth.Width(r))
		pendingBase = true
	}
	if !pendingBase {
		return 0
	}
	return width
}

func clampWidth(w int) int {
	if w < 0 {
		return 0
	}
	return w
}
