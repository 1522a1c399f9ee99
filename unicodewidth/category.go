// Package unicodewidth exposes per-codepoint display width and grapheme-break
// state tracking (UAX #29 extensions that rivo/uniseg's internal state
// machine does not surface on its own: Regional Indicator pairing and
// Extended_Pictographic + ZWJ joining for the no_zwj width policy).
//
// Width itself delegates UAX #11 East-Asian-Width and Default_Ignorable
// classification to unilibs/uniwidth's tiered codepoint tables rather than
// re-deriving them from a hand-rolled range table; this package only adds
// the control/tab sentinel handling and the Hangul Jamo medial/final rule
// uniwidth does not cover.
package unicodewidth

import (
	"unicode"

	"github.com/unilibs/uniwidth"
)

// GeneralCategory reports the short Unicode general category, e.g. "Mn", "Cc".
func GeneralCategory(cp rune) string {
	switch {
	case unicode.Is(unicode.Mn, cp):
		return "Mn"
	case unicode.Is(unicode.Mc, cp):
		return "Mc"
	case unicode.Is(unicode.Me, cp):
		return "Me"
	case unicode.Is(unicode.Cf, cp):
		return "Cf"
	case unicode.Is(unicode.Cc, cp):
		return "Cc"
	case unicode.IsControl(cp):
		return "Cc"
	default:
		return "Xx"
	}
}

// isHangulJamoMedialOrFinal reports Hangul Jamo vowels/finals, which combine
// onto a preceding leading consonant and so render at zero additional width
// — a rule uniwidth.RuneWidth does not apply on its own.
func isHangulJamoMedialOrFinal(cp rune) bool {
	return (cp >= 0x1160 && cp <= 0x11FF) || (cp >= 0xD7B0 && cp <= 0xD7FF)
}

// Width returns the display width of a single codepoint: 0 for tab (tab
// stops are resolved by the caller's tab width), -1 (non-printable
// sentinel) for other control characters, 0 for Hangul Jamo medials/finals,
// and otherwise whatever uniwidth.RuneWidth reports (0 for combining marks
// and default-ignorables, 2 for wide/fullwidth/emoji, 1 otherwise).
func Width(cp rune) int {
	if cp == '\t' {
		return 0
	}
	if cp < 0x20 || cp == 0x7F {
		return -1
	}
	if cp >= 0x80 && cp <= 0x9F {
		return -1
	}
	if isHangulJamoMedialOrFinal(cp) {
		return 0
	}
	return uniwidth.RuneWidth(cp)
}

// IsNonPrintable reports the -1 sentinel from Width: a control character
// other than tab that the width engine treats as 0 but may flag.
func IsNonPrintable(cp rune) bool {
	return Width(cp) == -1
}
