package unicodewidth

// BreakState tracks the per-stream state needed for the two grapheme-break
// rules that a bare pairwise table can't express: Regional Indicator pairing
// (odd/even RI run length) and Extended_Pictographic + ZWJ joining. The
// Grapheme & Width Engine (package grapheme) delegates UAX #29 boundaries to
// rivo/uniseg under the unicode and wcwidth policies; under no_zwj it
// segments rune by rune with this type instead. Apart from those two rules
// and combining marks (which never start a cluster), Advance reports a
// boundary before every codepoint.
type BreakState struct {
	riRun        int  // consecutive Regional Indicators seen, for odd/even pairing
	prevWasZWJ   bool
	prevWasPict  bool
}

// Reset clears accumulated state, e.g. at the start of a new line.
func (s *BreakState) Reset() {
	*s = BreakState{}
}

// Advance feeds the next codepoint and reports whether a grapheme boundary
// exists between the previous codepoint and cp. noZWJ forces ZWJ sequences
// to break (the no_zwj width policy).
func (s *BreakState) Advance(cp rune, noZWJ bool) (boundary bool) {
	isRI := cp >= 0x1F1E6 && cp <= 0x1F1FF
	isZWJ := cp == 0x200D
	isPict := isExtendedPictographic(cp)
	isCombining := GeneralCategory(cp) == "Mn" || GeneralCategory(cp) == "Mc" || GeneralCategory(cp) == "Me"

	switch {
	case isCombining:
		boundary = false
	case s.riRun > 0 && isRI:
		// GB12/GB13: break only between pairs, i.e. every second RI starts a
		// new cluster.
		boundary = s.riRun%2 == 0
	case s.prevWasZWJ && isPict && !noZWJ:
		boundary = false
	case s.prevWasZWJ && noZWJ:
		boundary = true
	default:
		boundary = true
	}

	if isRI {
		s.riRun++
	} else {
		s.riRun = 0
	}
	s.prevWasZWJ = isZWJ
	s.prevWasPict = isPict
	return boundary
}

// pictographRange is a closed codepoint interval from one of the emoji
// blocks isExtendedPictographic checks.
type pictographRange struct {
	lo, hi rune
}

// isExtendedPictographic approximates the Extended_Pictographic property
// over the main emoji blocks, for the no_zwj policy's ZWJ-break decision.
func isExtendedPictographic(cp rune) bool {
	ranges := []pictographRange{
		{0x1F300, 0x1F5FF},
		{0x1F600, 0x1F64F},
		{0x1F680, 0x1F6FF},
		{0x1F700, 0x1F77F},
		{0x1F900, 0x1F9FF},
		{0x1FA00, 0x1FAFF},
		{0x2600, 0x26FF},
		{0x2700, 0x27BF},
	}
	for _, r := range ranges {
		if cp >= r.lo && cp <= r.hi {
			return true
		}
	}
	return false
}
