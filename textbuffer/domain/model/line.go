// Package model provides the rich domain model for the Text Buffer: the
// byte store, the logical-line index, and the per-line grapheme cache.
package model

import "github.com/phoenix-tui/textcore/grapheme"

// LogicalLine is a maximal span of bytes between hard line terminators.
// ASCII-only lines carry no cluster list (column == byte offset).
type LogicalLine struct {
	Start    uint32
	Length   uint32 // excludes the terminator itself
	TermLen  uint8  // 0 (EOF), 1 (LF/CR), or 2 (CRLF)
	Width    uint32
	Clusters []grapheme.GraphemeInfo
	ASCII    bool

	fingerprint uint64
	fpValid     bool
}

// End returns the byte offset one past the line's content (before its
// terminator).
func (l LogicalLine) End() uint32 {
	return l.Start + l.Length
}
