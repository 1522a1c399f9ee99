// Package value provides the value objects for the Grapheme & Width Engine.
package value

import "github.com/phoenix-tui/textcore/graphemepool"

// WidthMethod selects the width/segmentation policy for a whole buffer. It
// is fixed at construction time (see spec ) and dispatched via a flat
// switch at each entry point rather than runtime polymorphism, so hot paths
// stay branch-predictable.
type WidthMethod int

const (
	// Wcwidth keeps UAX #29 cluster boundaries but sums per-codepoint
	// widths within a cluster (tmux-compatible semantics).
	Wcwidth WidthMethod = iota
	// Unicode segments and widths clusters per UAX #29, with VS16
	// promoting 1->2, Indic-virama conjunct summation, and Regional
	// Indicator pairs counted once at width 2.
	Unicode
	// NoZWJ is Unicode with ZWJ forced to break clusters apart.
	NoZWJ
)

// String implements fmt.Stringer for diagnostics and test output.
func (m WidthMethod) String() string {
	switch m {
	case Wcwidth:
		return "wcwidth"
	case Unicode:
		return "unicode"
	case NoZWJ:
		return "no_zwj"
	default:
		return "unknown"
	}
}

// GraphemeInfo describes one non-trivial cluster within a logical line: a
// multi-byte cluster or a tab. Plain printable ASCII runs are elided from
// this list for cache efficiency (the caller treats column == byte offset
// for those spans). Handle identifies the cluster's canonical byte sequence
// in the process-wide grapheme pool, so a text buffer's cluster cache can
// compare and hash non-trivial clusters by a uint32 handle instead of
// re-reading and re-comparing their (possibly multi-byte) content.
type GraphemeInfo struct {
	ByteOffset uint32
	ByteLen    uint8
	Width      uint8
	ColOffset  uint32
	Handle     graphemepool.Handle
}

// EncodedChar pairs a cluster's display width with its representative
// codepoint, for renderers that need both atomically.
type EncodedChar struct {
	Width uint8
	Char  rune
}

// WrapPosResult is the result of FindWrapPosByWidth: the greatest prefix of
// a string whose column sum does not exceed a width limit.
type WrapPosResult struct {
	ByteOffset    uint32
	GraphemeCount uint32
	ColumnsUsed   uint32
}

// PrevGraphemeStart is the result of GetPrevGraphemeStart.
type PrevGraphemeStart struct {
	StartOffset uint32
	Width       uint8
}
