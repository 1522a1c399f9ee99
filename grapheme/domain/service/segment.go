// Package service implements the Grapheme & Width Engine: cluster
// segmentation plus per-cluster column width under the three policies in
// spec .
package service

import (
	"github.com/rivo/uniseg"

	"github.com/phoenix-tui/textcore/grapheme/domain/value"
	"github.com/phoenix-tui/textcore/unicodewidth"
)

// cluster is one grapheme cluster's span within a string, pre-width.
type cluster struct {
	start int
	len   int
	runes []rune
}

// segment splits s into clusters under the given method. unicode and
// wcwidth both use UAX #29 extended grapheme clusters (delegated to
// rivo/uniseg's stepping state machine); no_zwj does not use uniseg: it
// derives boundaries rune by rune with unicodewidth.BreakState, forcing ZWJ
// to break.
func segment(s string, method value.WidthMethod) []cluster {
	var out []cluster
	if method == value.NoZWJ {
		return segmentNoZWJ(s)
	}

	pos := 0
	state := -1
	for len(s) > 0 {
		var clusterStr string
		var rest string
		clusterStr, rest, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster{start: pos, len: len(clusterStr), runes: []rune(clusterStr)})
		pos += len(clusterStr)
		s = rest
	}
	return out
}

// segmentNoZWJ re-derives grapheme boundaries rune-by-rune using
// unicodewidth.BreakState with noZWJ forced, so ZWJ sequences (which
// rivo/uniseg would join into one cluster) are split into their
// constituent clusters instead.
func segmentNoZWJ(s string) []cluster {
	var out []cluster
	var state unicodewidth.BreakState
	byteOffset := 0
	var cur *cluster

	for _, r := range s {
		size := runeLen(r)
		boundary := cur == nil
		if cur != nil {
			boundary = state.Advance(r, true)
		} else {
			state.Advance(r, true)
		}
		if boundary {
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &cluster{start: byteOffset, runes: []rune{r}}
		} else {
			cur.runes = append(cur.runes, r)
		}
		cur.len += size
		byteOffset += size
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
