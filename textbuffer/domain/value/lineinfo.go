// Package value provides the value objects for the Text Buffer.
package value

// WrapSentinel separates each logical line's wrap-point list inside
// LineInfo.Wraps.
const WrapSentinel = uint32(0xFFFFFFFF)

// LineInfo is the parallel-array render export described in /:
// Starts, Widths, and Sources have one entry per (virtual or logical) line;
// Wraps is a sentinel-separated list of soft-wrap byte positions inside
// each logical line, empty under wrap mode 'none'.
type LineInfo struct {
	Starts   []uint32
	Widths   []uint32
	Sources  []uint32
	Wraps    []uint32
	MaxWidth uint32
}
