package editbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer"
	"github.com/phoenix-tui/textcore/wraplayout"
)

func newEditBuffer(t *testing.T, text string) *EditBuffer {
	t.Helper()
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte(text)))
	return New(buf, wraplayout.WrapNone, 0)
}

func TestInsertTextAdvancesCursor(t *testing.T) {
	e := newEditBuffer(t, "abc")
	e.SetCursorByOffset(1)

	require.NoError(t, e.InsertText([]byte("XY")))

	data, err := e.GetPlainTextBytes(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, "aXYbc", string(data))
	assert.Equal(t, uint32(3), e.GetCursor())
}

func TestInsertCharAndNewLine(t *testing.T) {
	e := newEditBuffer(t, "ab")
	e.SetCursorByOffset(1)
	require.NoError(t, e.InsertChar('X'))
	require.NoError(t, e.NewLine())

	data, _ := e.GetPlainTextBytes(1 << 20)
	assert.Equal(t, "aX\nb", string(data))
}

func TestDeleteCharForwardAndBackward(t *testing.T) {
	e := newEditBuffer(t, "abc")
	e.SetCursorByOffset(1)
	require.NoError(t, e.DeleteCharForward())

	data, _ := e.GetPlainTextBytes(1 << 20)
	assert.Equal(t, "ac", string(data))
	assert.Equal(t, uint32(1), e.GetCursor())

	e.SetCursorByOffset(1)
	require.NoError(t, e.DeleteCharBackward())
	data, _ = e.GetPlainTextBytes(1 << 20)
	assert.Equal(t, "c", string(data))
	assert.Equal(t, uint32(0), e.GetCursor())
}

func TestBackspaceAtLineStartMergesLines(t *testing.T) {
	e := newEditBuffer(t, "one\ntwo")
	e.SetCursorByOffset(uint32(len("one\n")))
	require.NoError(t, e.DeleteCharBackward())

	data, _ := e.GetPlainTextBytes(1 << 20)
	assert.Equal(t, "onetwo", string(data))
	assert.Equal(t, uint32(len("one")), e.GetCursor())
}

func TestMoveCursorLeftRight(t *testing.T) {
	e := newEditBuffer(t, "héllo")
	e.SetCursorByOffset(0)
	e.MoveCursorRight()
	assert.Equal(t, uint32(1), e.GetCursor())
	e.MoveCursorRight() // é is a 2-byte cluster
	assert.Greater(t, e.GetCursor(), uint32(1))

	before := e.GetCursor()
	e.MoveCursorLeft()
	assert.Less(t, e.GetCursor(), before)
}

func TestMoveCursorUpDownKeepsGoalColumn(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("longer line\nhi\nlonger line")))
	e := New(buf, wraplayout.WrapNone, 0)

	e.SetCursorByOffset(5) // column 5 on row 0
	e.MoveCursorDown()     // row 1 ("hi") shorter than column 5: clamps
	row, _ := e.GetVisualCursor()
	assert.Equal(t, 1, row)

	e.MoveCursorDown() // row 2, goal column 5 should be restored
	row, col := e.GetVisualCursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 5, col)
}

func TestGotoLine(t *testing.T) {
	e := newEditBuffer(t, "one\ntwo\nthree")
	e.GotoLine(2)
	assert.Equal(t, uint32(len("one\ntwo\n")), e.GetCursor())
}

func TestSelectionAndDelete(t *testing.T) {
	e := newEditBuffer(t, "hello world")
	require.NoError(t, e.SetSelection(0, 0))
	require.NoError(t, e.UpdateSelection(0, 5))

	selected, err := e.GetSelectedTextBytes(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(selected))

	require.NoError(t, e.DeleteSelectedText())
	data, _ := e.GetPlainTextBytes(1 << 20)
	assert.Equal(t, " world", string(data))
	assert.Equal(t, uint32(0), e.GetCursor())
}

func TestWordBoundaryFromCursor(t *testing.T) {
	e := newEditBuffer(t, "hello world")
	e.SetCursorByOffset(0)
	assert.Equal(t, uint32(6), e.NextWordBoundary())
}
