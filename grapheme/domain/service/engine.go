package service

import (
	"github.com/phoenix-tui/textcore/grapheme/domain/value"
	"github.com/phoenix-tui/textcore/graphemepool"
)

// Engine is the Grapheme & Width Engine: cluster segmentation plus
// per-cluster column width, parameterized by width method and tab width.
type Engine struct {
	Method   value.WidthMethod
	TabWidth int
}

// New creates an Engine for the given policy and tab width.
func New(method value.WidthMethod, tabWidth int) Engine {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return Engine{Method: method, TabWidth: tabWidth}
}

// CalculateTextWidth sums the display width of every cluster in s.
func (e Engine) CalculateTextWidth(s string) uint32 {
	var total uint32
	for _, c := range segment(s, e.Method) {
		total += uint32(clusterWidth(c, e.Method, e.TabWidth))
	}
	return total
}

// GetWidthAt returns the width of the cluster starting at byteOffset, or 0
// if byteOffset points mid-cluster or past the end of s.
func (e Engine) GetWidthAt(s string, byteOffset int) uint32 {
	for _, c := range segment(s, e.Method) {
		if c.start == byteOffset {
			return uint32(clusterWidth(c, e.Method, e.TabWidth))
		}
		if c.start > byteOffset {
			return 0
		}
	}
	return 0
}

// FindWrapPosByWidth returns the greatest prefix of s whose column sum does
// not exceed maxColumns, stopping before any cluster that would exceed the
// limit. Empty input or maxColumns == 0 returns zeros.
func (e Engine) FindWrapPosByWidth(s string, maxColumns uint32) value.WrapPosResult {
	if s == "" || maxColumns == 0 {
		return value.WrapPosResult{}
	}
	var used uint32
	var count uint32
	var offset uint32
	for _, c := range segment(s, e.Method) {
		w := uint32(clusterWidth(c, e.Method, e.TabWidth))
		if used+w > maxColumns {
			break
		}
		used += w
		count++
		offset = uint32(c.start + c.len)
	}
	return value.WrapPosResult{ByteOffset: offset, GraphemeCount: count, ColumnsUsed: used}
}

// FindPosByWidth finds the byte offset at column maxColumns.
//
// includeStartBefore = true (selection end): include the cluster that
// starts at column < maxColumns, snapping forward through wide glyphs.
// includeStartBefore = false (selection start): exclude any cluster whose
// end column exceeds maxColumns, snapping backward.
func (e Engine) FindPosByWidth(s string, maxColumns uint32, includeStartBefore bool) value.WrapPosResult {
	if s == "" {
		return value.WrapPosResult{}
	}
	var col uint32
	var count uint32
	var offset uint32
	for _, c := range segment(s, e.Method) {
		w := uint32(clusterWidth(c, e.Method, e.TabWidth))
		startCol := col
		endCol := col + w
		if includeStartBefore {
			if startCol < maxColumns {
				offset = uint32(c.start + c.len)
				count++
				col = endCol
				continue
			}
			break
		}
		if endCol > maxColumns {
			break
		}
		offset = uint32(c.start + c.len)
		count++
		col = endCol
	}
	return value.WrapPosResult{ByteOffset: offset, GraphemeCount: count, ColumnsUsed: col}
}

// GetPrevGraphemeStart returns the start offset and width of the cluster
// immediately preceding byteOffset, or ok=false if none exists.
func (e Engine) GetPrevGraphemeStart(s string, byteOffset int) (result value.PrevGraphemeStart, ok bool) {
	clusters := segment(s, e.Method)
	for i, c := range clusters {
		if c.start+c.len == byteOffset {
			return value.PrevGraphemeStart{
				StartOffset: uint32(c.start),
				Width:       uint8(clusterWidth(c, e.Method, e.TabWidth)),
			}, true
		}
		_ = i
	}
	return value.PrevGraphemeStart{}, false
}

// FirstClusterLen returns the byte length and width of the first cluster in
// s, or (0, 0) if s is empty. Used by wrap algorithms to force a single
// over-wide cluster onto its own virtual line.
func (e Engine) FirstClusterLen(s string) (byteLen int, width int) {
	clusters := segment(s, e.Method)
	if len(clusters) == 0 {
		return 0, 0
	}
	c := clusters[0]
	return c.len, clusterWidth(c, e.Method, e.TabWidth)
}

// FindGraphemeInfo enumerates clusters that are multi-byte or tabs; plain
// printable ASCII runs are elided. wcwidth mode additionally enumerates
// combining-mark-bearing ASCII clusters (since their width differs from a
// naive byte==column assumption). Every enumerated cluster is interned into
// the process-wide grapheme pool, so a caller building a long-lived cache
// (the Text Buffer's per-line cluster list) can key its entries on the
// returned Handle rather than the cluster's raw bytes.
func (e Engine) FindGraphemeInfo(s string) []value.GraphemeInfo {
	var out []value.GraphemeInfo
	var col uint32
	pool := graphemepool.Global()
	for _, c := range segment(s, e.Method) {
		w := clusterWidth(c, e.Method, e.TabWidth)
		isTab := len(c.runes) == 1 && c.runes[0] == '\t'
		isMultiByte := c.len > 1
		isASCIICombining := e.Method == value.Wcwidth && len(c.runes) > 1 && c.runes[0] < 0x80
		if isTab || isMultiByte || isASCIICombining {
			clusterBytes := s[c.start : c.start+c.len]
			out = append(out, value.GraphemeInfo{
				ByteOffset: uint32(c.start),
				ByteLen:    uint8(c.len),
				Width:      uint8(w),
				ColOffset:  col,
				Handle:     pool.Intern(clusterBytes, uint8(w)),
			})
		}
		col += uint32(w)
	}
	return out
}
