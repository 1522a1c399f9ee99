// Package service implements the Text Buffer View: selection with
// grapheme-snapped endpoints, placeholder text, the tab indicator glyph,
// and the byte-range exports a renderer needs.
package service

import (
	tbmodel "github.com/phoenix-tui/textcore/textbuffer/domain/model"
	"github.com/phoenix-tui/textcore/textview/domain/model"
	"github.com/phoenix-tui/textcore/textview/domain/value"
	"github.com/phoenix-tui/textcore/wraplayout"
)

// View couples a buffer and its wrap layout with the read/selection state a
// renderer needs: selection, viewport, placeholder text, and the tab glyph.
type View struct {
	buf    *tbmodel.Buffer
	layout *wraplayout.Layout

	selection   model.Selection
	viewport    model.Viewport
	placeholder string
	tabGlyph    rune
	tabColor    *value.RGBA
}

// New creates a View over buf/layout with the default tab glyph (middle dot).
func New(buf *tbmodel.Buffer, layout *wraplayout.Layout) *View {
	return &View{buf: buf, layout: layout, tabGlyph: '·'}
}

// SetPlaceholder sets the text shown when the buffer is empty.
func (v *View) SetPlaceholder(text string) { v.placeholder = text }

// Placeholder returns the configured placeholder text.
func (v *View) Placeholder() string { return v.placeholder }

// SetTabIndicator sets the glyph (and optional color) substituted for each
// tab stop's leading column when rendering.
func (v *View) SetTabIndicator(glyph rune, color *value.RGBA) {
	v.tabGlyph = glyph
	v.tabColor = color
}

// TabIndicator returns the configured tab glyph and color.
func (v *View) TabIndicator() (rune, *value.RGBA) { return v.tabGlyph, v.tabColor }

// SetViewport sets the visible virtual-line window.
func (v *View) SetViewport(vp model.Viewport) { v.viewport = vp }

// Viewport returns the current visible window.
func (v *View) Viewport() model.Viewport { return v.viewport }

// SetSelection starts a new selection at the visual position (row, col),
// snapping backward (this is the anchor).
func (v *View) SetSelection(visualRow, visualCol int) {
	_, _, offset := v.layout.VisualToLogicalSnapped(visualRow, visualCol, false)
	v.selection = model.NewSelection(offset)
}

// UpdateSelection moves the selection's focus to (row, col), snapping
// forward or backward depending on which direction extends the selection.
func (v *View) UpdateSelection(visualRow, visualCol int) {
	forward := true
	_, _, probe := v.layout.VisualToLogicalSnapped(visualRow, visualCol, true)
	if probe < v.selection.Anchor {
		forward = false
	}
	_, _, offset := v.layout.VisualToLogicalSnapped(visualRow, visualCol, forward)
	v.selection = v.selection.WithFocus(offset)
}

// ResetSelection clears the selection.
func (v *View) ResetSelection() { v.selection = model.Reset() }

// Selection returns the current selection state.
func (v *View) Selection() model.Selection { return v.selection }

// GetSelectedTextBytes returns up to max bytes spanned by the current
// selection, or nil if there is no active, non-empty selection.
func (v *View) GetSelectedTextBytes(max int) []byte {
	if !v.selection.Active || v.selection.IsEmpty() {
		return nil
	}
	start, end := v.selection.Range()
	data := v.buf.Bytes()
	if int(end) > len(data) {
		end = uint32(len(data))
	}
	if int(start) > len(data) {
		start = uint32(len(data))
	}
	if end-start > uint32(max) {
		end = start + uint32(max)
	}
	out := make([]byte, end-start)
	copy(out, data[start:end])
	return out
}

// GetPlainTextBytes returns up to max bytes of the document, or nil if the
// buffer is empty.
func (v *View) GetPlainTextBytes(max int) []byte {
	data := v.buf.Bytes()
	if len(data) == 0 {
		return nil
	}
	n := len(data)
	if n > max {
		n = max
	}
	out := make([]byte, n)
	copy(out, data[:n])
	return out
}

// MeasureForDimensions passes through to the wrap layout.
func (v *View) MeasureForDimensions(w, h uint32) (wraplayout.Measure, bool) {
	return v.layout.MeasureForDimensions(w, h)
}

// IsEmpty reports whether the buffer has no content, the condition under
// which a renderer should show the placeholder instead.
func (v *View) IsEmpty() bool {
	return v.buf.ByteSize() == 0
}
