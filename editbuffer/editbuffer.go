// Package editbuffer is the Edit Buffer + Editor View: it adds
// cursor-tracked editing operations and visual-aware navigation on top of a
// Text Buffer View.
package editbuffer

import (
	"github.com/phoenix-tui/textcore/editbuffer/domain/model"
	"github.com/phoenix-tui/textcore/editbuffer/domain/service"
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer"
	"github.com/phoenix-tui/textcore/textview"
	"github.com/phoenix-tui/textcore/wraplayout"
)

// Cursor re-exports the cursor state.
type Cursor = model.Cursor

// EditBuffer binds a buffer, its wrap layout, and a view together with a
// cursor, providing the editing and navigation operations a text input
// component needs.
type EditBuffer struct {
	*textview.View
	buf    *textbuffer.Buffer
	layout *wraplayout.Layout
	engine grapheme.Engine
	cursor model.Cursor
}

// New creates an EditBuffer over buf, wrapped at width under mode.
func New(buf *textbuffer.Buffer, mode wraplayout.WrapMode, width uint32) *EditBuffer {
	layout := wraplayout.New(buf, mode, width)
	return &EditBuffer{
		View:   textview.New(buf, layout),
		buf:    buf,
		layout: layout,
		engine: grapheme.New(buf.WidthMethod(), 8),
		cursor: model.NewCursor(0),
	}
}

func (e *EditBuffer) rowContaining(offset uint32) uint32 {
	for row := 0; row < int(e.buf.LineCount()); row++ {
		l, err := e.buf.Line(row)
		if err != nil {
			return 0
		}
		if offset >= l.Start && offset <= l.Start+l.Length {
			return uint32(row)
		}
	}
	return 0
}

// GetCursor returns the cursor's byte offset.
func (e *EditBuffer) GetCursor() uint32 { return e.cursor.Offset() }

// GetVisualCursor returns the cursor's visual (row, col).
func (e *EditBuffer) GetVisualCursor() (row, col int) {
	return e.layout.OffsetToVisual(e.cursor.Offset())
}

// SetCursorByOffset places the cursor at a byte offset.
func (e *EditBuffer) SetCursorByOffset(offset uint32) {
	e.cursor = e.cursor.MoveTo(offset)
}

// InsertText inserts text at the cursor and advances it past the inserted
// bytes.
func (e *EditBuffer) InsertText(text []byte) error {
	row := e.rowContaining(e.cursor.Offset())
	newOffset, err := service.InsertText(e.buf.Inner(), e.cursor.Offset(), text)
	if err != nil {
		return err
	}
	e.layout.InvalidateLine(row)
	e.cursor = e.cursor.MoveTo(newOffset)
	return nil
}

// InsertChar inserts a single rune at the cursor.
func (e *EditBuffer) InsertChar(r rune) error {
	return e.InsertText([]byte(string(r)))
}

// NewLine inserts a line break at the cursor.
func (e *EditBuffer) NewLine() error {
	return e.InsertText([]byte("\n"))
}

// DeleteCharForward deletes the grapheme cluster at the cursor.
func (e *EditBuffer) DeleteCharForward() error {
	row := e.rowContaining(e.cursor.Offset())
	offset, err := service.DeleteCharForward(e.buf.Inner(), e.engine, e.cursor.Offset())
	if err != nil {
		return err
	}
	e.layout.InvalidateLine(row)
	e.cursor = e.cursor.MoveTo(offset)
	return nil
}

// DeleteCharBackward deletes the grapheme cluster before the cursor.
func (e *EditBuffer) DeleteCharBackward() error {
	row := e.rowContaining(e.cursor.Offset())
	if row > 0 {
		row--
	}
	offset, err := service.DeleteCharBackward(e.buf.Inner(), e.engine, e.cursor.Offset())
	if err != nil {
		return err
	}
	e.layout.InvalidateLine(row)
	e.cursor = e.cursor.MoveTo(offset)
	return nil
}

// MoveCursorLeft moves the cursor back one grapheme cluster.
func (e *EditBuffer) MoveCursorLeft() {
	e.cursor = service.MoveLeft(e.buf.Inner(), e.engine, e.cursor)
}

// MoveCursorRight moves the cursor forward one grapheme cluster.
func (e *EditBuffer) MoveCursorRight() {
	e.cursor = service.MoveRight(e.buf.Inner(), e.engine, e.cursor)
}

// MoveCursorUp moves the cursor one visual row up, preserving its goal
// column.
func (e *EditBuffer) MoveCursorUp() {
	e.cursor = service.MoveUp(e.layout, e.cursor)
}

// MoveCursorDown moves the cursor one visual row down, preserving its goal
// column.
func (e *EditBuffer) MoveCursorDown() {
	e.cursor = service.MoveDown(e.layout, e.cursor)
}

// GotoLine moves the cursor to the start of logical line row.
func (e *EditBuffer) GotoLine(row int) {
	e.cursor = service.GotoLine(e.buf.Inner(), row)
}

// NextWordBoundary returns the next word-boundary offset at or after the
// cursor.
func (e *EditBuffer) NextWordBoundary() uint32 {
	return e.layout.NextWordBoundary(e.cursor.Offset())
}

// PrevWordBoundary returns the previous word-boundary offset at or before
// the cursor.
func (e *EditBuffer) PrevWordBoundary() uint32 {
	return e.layout.PrevWordBoundary(e.cursor.Offset())
}

// VisualSOL returns the start of the cursor's virtual line.
func (e *EditBuffer) VisualSOL() uint32 { return e.layout.VisualSOL(e.cursor.Offset()) }

// VisualEOL returns the end of the cursor's virtual line.
func (e *EditBuffer) VisualEOL() uint32 { return e.layout.VisualEOL(e.cursor.Offset()) }

// LogicalEOL returns the end of the cursor's logical line.
func (e *EditBuffer) LogicalEOL() uint32 { return e.layout.LogicalEOL(e.cursor.Offset()) }

// DeleteSelectedText removes the bytes spanned by the active selection and
// moves the cursor to where the selection started.
func (e *EditBuffer) DeleteSelectedText() error {
	sel := e.GetSelection()
	if !sel.Active || sel.IsEmpty() {
		return nil
	}
	start, end := sel.Range()
	row := e.rowContaining(start)
	if err := e.buf.Delete(int(start), int(end)); err != nil {
		return err
	}
	e.layout.InvalidateLine(row)
	e.cursor = e.cursor.MoveTo(start)
	e.ResetSelection()
	return nil
}
