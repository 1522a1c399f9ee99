// Package textview is the Text Buffer View: a read-and-select layer over a
// text buffer and its wrap layout, adding selection, viewport, placeholder
// text, and the tab indicator glyph. It is the checked facade
// over textview/domain/service, enforcing destroyed-buffer access.
package textview

import (
	textcore "github.com/phoenix-tui/textcore"
	"github.com/phoenix-tui/textcore/textbuffer"
	"github.com/phoenix-tui/textcore/textview/domain/model"
	"github.com/phoenix-tui/textcore/textview/domain/service"
	"github.com/phoenix-tui/textcore/textview/domain/value"
	"github.com/phoenix-tui/textcore/wraplayout"
)

// Selection re-exports the selection state.
type Selection = model.Selection

// Viewport re-exports the visible-window state.
type Viewport = model.Viewport

// RGBA re-exports the color value object.
type RGBA = value.RGBA

// View is the checked facade binding a buffer and a layout together.
type View struct {
	buf    *textbuffer.Buffer
	layout *wraplayout.Layout
	inner  *service.View
}

// New creates a View over buf using layout for wrapping.
func New(buf *textbuffer.Buffer, layout *wraplayout.Layout) *View {
	return &View{buf: buf, layout: layout, inner: service.New(buf.Inner(), layout)}
}

func (v *View) checkAlive() error {
	if v.buf == nil {
		return textcore.ErrDestroyed
	}
	return v.buf.CheckAlive()
}

// SetPlaceholder sets the text shown when the buffer is empty.
func (v *View) SetPlaceholder(text string) error {
	if err := v.checkAlive(); err != nil {
		return err
	}
	v.inner.SetPlaceholder(text)
	return nil
}

// Placeholder returns the configured placeholder text.
func (v *View) Placeholder() string { return v.inner.Placeholder() }

// SetTabIndicator sets the glyph (and optional color) rendered at each tab
// stop.
func (v *View) SetTabIndicator(glyph rune, color *RGBA) {
	v.inner.SetTabIndicator(glyph, color)
}

// TabIndicator returns the configured tab glyph and color.
func (v *View) TabIndicator() (rune, *RGBA) { return v.inner.TabIndicator() }

// SetViewport sets the visible virtual-line window.
func (v *View) SetViewport(vp Viewport) { v.inner.SetViewport(vp) }

// Viewport returns the current visible window.
func (v *View) Viewport() Viewport { return v.inner.Viewport() }

// SetSelection starts a selection at a visual (row, col) position.
func (v *View) SetSelection(visualRow, visualCol int) error {
	if err := v.checkAlive(); err != nil {
		return err
	}
	v.inner.SetSelection(visualRow, visualCol)
	return nil
}

// UpdateSelection moves the selection's focus to a visual (row, col).
func (v *View) UpdateSelection(visualRow, visualCol int) error {
	if err := v.checkAlive(); err != nil {
		return err
	}
	v.inner.UpdateSelection(visualRow, visualCol)
	return nil
}

// ResetSelection clears the selection.
func (v *View) ResetSelection() { v.inner.ResetSelection() }

// GetSelection returns the current selection state.
func (v *View) GetSelection() Selection { return v.inner.Selection() }

// GetSelectedTextBytes returns up to max bytes spanned by the current
// selection, or nil if there is no active selection.
func (v *View) GetSelectedTextBytes(max int) ([]byte, error) {
	if err := v.checkAlive(); err != nil {
		return nil, err
	}
	return v.inner.GetSelectedTextBytes(max), nil
}

// GetPlainTextBytes returns up to max bytes of the document, or nil if the
// buffer is empty.
func (v *View) GetPlainTextBytes(max int) ([]byte, error) {
	if err := v.checkAlive(); err != nil {
		return nil, err
	}
	return v.inner.GetPlainTextBytes(max), nil
}

// MeasureForDimensions passes through to the wrap layout.
func (v *View) MeasureForDimensions(w, h uint32) (wraplayout.Measure, bool) {
	return v.inner.MeasureForDimensions(w, h)
}

// IsEmpty reports whether the placeholder should be shown instead of
// content.
func (v *View) IsEmpty() bool { return v.inner.IsEmpty() }

// LineInfo exports the parallel-array description of every virtual line in
// the buffer; the viewport is not applied.
func (v *View) LineInfo() wraplayout.LineInfo { return v.layout.LineInfo() }

// LogicalLineInfo exports the logical-line parallel-array description.
func (v *View) LogicalLineInfo() (textbuffer.LineInfo, error) {
	if err := v.checkAlive(); err != nil {
		return textbuffer.LineInfo{}, err
	}
	return v.buf.LogicalLineInfo()
}
