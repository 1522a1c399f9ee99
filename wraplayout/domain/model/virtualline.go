// Package model provides the rich domain model for the Wrap & Layout
// Engine: the virtual-line index produced by wrapping a text buffer's
// logical lines.
package model

// WrapKind classifies how a virtual line ended.
type WrapKind int

const (
	Hard WrapKind = iota
	SoftChar
	SoftWord
)

// VirtualLine is the unit produced by wrapping one LogicalLine at a given
// wrap width and mode.
type VirtualLine struct {
	LogicalRow uint32
	ByteStart  uint32
	ByteEnd    uint32
	Width      uint32
	WrapKind   WrapKind
}
