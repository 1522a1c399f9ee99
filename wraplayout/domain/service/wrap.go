// Package service implements the Wrap & Layout Engine: producing a
// virtual-line index for {none, char, word} wrap modes, incremental
// re-layout on edit, and the bidirectional logical/visual position map.
package service

import (
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/utf8scan"
	"github.com/phoenix-tui/textcore/wraplayout/domain/model"
)

// WrapMode selects the wrapping algorithm.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapChar
	WrapWord
)

// wrapLine wraps one logical line's content (lineBytes, excluding its
// terminator) at wrapWidth under mode, returning virtual lines with
// LogicalRow left zero (the caller fills it in).
func wrapLine(lineBytes []byte, e grapheme.Engine, mode WrapMode, wrapWidth uint32) []model.VirtualLine {
	if mode == WrapNone || wrapWidth == 0 {
		return []model.VirtualLine{{
			ByteStart: 0, ByteEnd: uint32(len(lineBytes)),
			Width: e.CalculateTextWidth(string(lineBytes)), WrapKind: model.Hard,
		}}
	}

	var out []model.VirtualLine
	offset := uint32(0)
	remaining := lineBytes
	for {
		if len(remaining) == 0 {
			if len(out) == 0 {
				out = append(out, model.VirtualLine{ByteStart: offset, ByteEnd: offset, WrapKind: model.Hard})
			}
			break
		}

		end, kind := wrapOnePrefix(remaining, e, mode, wrapWidth)
		lineWidth := e.CalculateTextWidth(string(remaining[:end]))
		out = append(out, model.VirtualLine{
			ByteStart: offset, ByteEnd: offset + uint32(end), Width: lineWidth, WrapKind: kind,
		})

		consumed := end
		// Soft-wrap whitespace collapsing: skip at most one leading ASCII
		// space on the next virtual line.
		if consumed < len(remaining) && kind != model.Hard && remaining[consumed] == ' ' {
			consumed++
		}
		offset += uint32(consumed)
		remaining = remaining[consumed:]
		if len(remaining) == 0 {
			break
		}
	}
	// Last virtual line produced from a logical line terminates hard (it
	// reaches the logical line's own terminator/EOF).
	if len(out) > 0 {
		out[len(out)-1].WrapKind = model.Hard
	}
	return out
}

// wrapOnePrefix computes the end offset (byte length consumed from the
// start of remaining) and wrap kind for the next virtual line.
func wrapOnePrefix(remaining []byte, e grapheme.Engine, mode WrapMode, wrapWidth uint32) (end int, kind model.WrapKind) {
	res := e.FindWrapPosByWidth(string(remaining), wrapWidth)
	prefixEnd := int(res.ByteOffset)

	if prefixEnd == 0 {
		// A single cluster exceeds wrapWidth: it becomes its own virtual
		// line regardless of width.
		clusterLen, _ := e.FirstClusterLen(string(remaining))
		if clusterLen == 0 {
			clusterLen = len(remaining)
		}
		return clusterLen, model.SoftChar
	}

	if prefixEnd >= len(remaining) {
		return prefixEnd, model.Hard
	}

	if mode == WrapChar {
		return prefixEnd, model.SoftChar
	}

	// Word mode: a cut followed by a wrap-break character does not land
	// inside a word and is kept as is.
	next := remaining[prefixEnd:]
	if len(next) > 4 {
		next = next[:4]
	}
	if nb := utf8scan.FindWrapBreaks(next, utf8scan.ByteGraphemeCounter{}); len(nb) > 0 && nb[0].ByteOffset == 0 {
		return prefixEnd, model.SoftWord
	}
	// If the computed break point lands inside a word, retreat to the last
	// wrap-break position reported within the prefix.
	breaks := utf8scan.FindWrapBreaks(remaining[:prefixEnd], utf8scan.ByteGraphemeCounter{})
	if len(breaks) == 0 {
		return prefixEnd, model.SoftChar // no break point available: fall back to char
	}
	last := breaks[len(breaks)-1]
	retreatEnd := last.ByteOffset + 1 // keep the break character itself on this line
	if retreatEnd <= 0 || retreatEnd > prefixEnd {
		return prefixEnd, model.SoftChar
	}
	return retreatEnd, model.SoftWord
}
