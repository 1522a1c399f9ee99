// Package wraplayout is the Wrap & Layout Engine: it turns a text
// buffer's logical lines into a virtual-line index under a wrap mode and
// width, with incremental re-layout and the logical/visual position map.
package wraplayout

import (
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer"
	tbvalue "github.com/phoenix-tui/textcore/textbuffer/domain/value"
	"github.com/phoenix-tui/textcore/wraplayout/domain/model"
	"github.com/phoenix-tui/textcore/wraplayout/domain/service"
)

// LineInfo re-exports the buffer's parallel-array render export type.
type LineInfo = tbvalue.LineInfo

// WrapMode re-exports the wrap algorithm selector.
type WrapMode = service.WrapMode

const (
	WrapNone = service.WrapNone
	WrapChar = service.WrapChar
	WrapWord = service.WrapWord
)

// WrapKind re-exports how a virtual line terminated.
type WrapKind = model.WrapKind

const (
	Hard     = model.Hard
	SoftChar = model.SoftChar
	SoftWord = model.SoftWord
)

// VirtualLine re-exports the virtual-line record.
type VirtualLine = model.VirtualLine

// Measure re-exports the viewport-measurement result.
type Measure = service.Measure

// Layout binds a wrap configuration to a text buffer. It does not check the
// buffer's destroyed state: once the buffer is destroyed, its methods
// operate on the emptied buffer (no virtual lines) rather than returning
// textcore.ErrDestroyed.
type Layout struct {
	buf   *textbuffer.Buffer
	inner *service.Layout
}

// New creates a Layout over buf using the buffer's own width policy.
func New(buf *textbuffer.Buffer, mode WrapMode, width uint32) *Layout {
	engine := grapheme.New(buf.WidthMethod(), 8)
	return &Layout{buf: buf, inner: service.New(buf.Inner(), engine, mode, width)}
}

// SetWrapMode changes the wrap algorithm.
func (l *Layout) SetWrapMode(mode WrapMode) { l.inner.SetWrapMode(mode) }

// SetWrapWidth changes the wrap width.
func (l *Layout) SetWrapWidth(width uint32) { l.inner.SetWrapWidth(width) }

// WrapMode returns the current wrap mode.
func (l *Layout) WrapMode() WrapMode { return l.inner.WrapMode() }

// WrapWidth returns the current wrap width.
func (l *Layout) WrapWidth() uint32 { return l.inner.WrapWidth() }

// InvalidateLine marks a logical row dirty after an out-of-band edit.
func (l *Layout) InvalidateLine(row uint32) { l.inner.InvalidateLine(row) }

// VirtualLineCount returns the number of virtual lines across the buffer.
func (l *Layout) VirtualLineCount() uint32 { return l.inner.VirtualLineCount() }

// VirtualLine returns virtual line k.
func (l *Layout) VirtualLine(k int) (VirtualLine, bool) { return l.inner.VirtualLine(k) }

// VirtualLines returns every virtual line, in order.
func (l *Layout) VirtualLines() []VirtualLine { return l.inner.VirtualLines() }

// LineInfo exports the virtual-line index in the parallel-array format.
func (l *Layout) LineInfo() LineInfo { return l.inner.LineInfo() }

// MeasureForDimensions returns the virtual-line count and max width that
// fit in h rows (w is not used).
func (l *Layout) MeasureForDimensions(w, h uint32) (Measure, bool) {
	return l.inner.MeasureForDimensions(w, h)
}

// VisualToLogical maps a visual (row, col) to a logical (row, col, offset).
func (l *Layout) VisualToLogical(visualRow, visualCol int) (logicalRow, logicalCol, offset uint32) {
	return l.inner.VisualToLogical(visualRow, visualCol)
}

// LogicalToVisual maps a logical (row, col) to a visual (row, col).
func (l *Layout) LogicalToVisual(logicalRow, logicalCol uint32) (visualRow, visualCol int) {
	return l.inner.LogicalToVisual(logicalRow, logicalCol)
}

// VisualToLogicalSnapped is VisualToLogical with an explicit snap
// direction (forward through a wide cluster for a selection focus,
// backward for a selection anchor).
func (l *Layout) VisualToLogicalSnapped(visualRow, visualCol int, forward bool) (logicalRow, logicalCol, offset uint32) {
	return l.inner.VisualToLogicalSnapped(visualRow, visualCol, forward)
}

// OffsetToVisual maps a byte offset to a visual (row, col).
func (l *Layout) OffsetToVisual(byteOffset uint32) (visualRow, visualCol int) {
	return l.inner.OffsetToVisual(byteOffset)
}

// VisualSOL returns the start-of-virtual-line byte offset containing from.
func (l *Layout) VisualSOL(from uint32) uint32 { return l.inner.VisualSOL(from) }

// VisualEOL returns the end-of-virtual-line byte offset containing from.
func (l *Layout) VisualEOL(from uint32) uint32 { return l.inner.VisualEOL(from) }

// LogicalEOL returns the end-of-logical-line byte offset containing from.
func (l *Layout) LogicalEOL(from uint32) uint32 { return l.inner.LogicalEOL(from) }

// NextWordBoundary returns the next word-boundary byte offset at or after from.
func (l *Layout) NextWordBoundary(from uint32) uint32 { return l.inner.NextWordBoundary(from) }

// PrevWordBoundary returns the previous word-boundary byte offset at or
// before from.
func (l *Layout) PrevWordBoundary(from uint32) uint32 { return l.inner.PrevWordBoundary(from) }
