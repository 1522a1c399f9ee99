package wraplayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer"
)

func virtualText(t *testing.T, buf *textbuffer.Buffer, vl VirtualLine) string {
	t.Helper()
	data, err := buf.Bytes()
	require.NoError(t, err)
	return string(data[vl.ByteStart:vl.ByteEnd])
}

func TestWordWrapScenario(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("The quick brown fox")))

	l := New(buf, WrapWord, 10)
	lines := l.VirtualLines()
	require.Len(t, lines, 2)

	assert.Equal(t, "The quick ", virtualText(t, buf, lines[0]))
	assert.Equal(t, "brown fox", virtualText(t, buf, lines[1]))
	assert.Equal(t, SoftWord, lines[0].WrapKind)
	assert.Equal(t, Hard, lines[1].WrapKind)
}

func TestCharWrapPartitionsWholeLine(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("abcdefghij")))

	l := New(buf, WrapChar, 4)
	lines := l.VirtualLines()
	require.Len(t, lines, 3)

	var rebuilt string
	for _, vl := range lines {
		rebuilt += virtualText(t, buf, vl)
	}
	assert.Equal(t, "abcdefghij", rebuilt)
	assert.Equal(t, Hard, lines[len(lines)-1].WrapKind)
}

func TestWrapNoneProducesSingleVirtualLine(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("a very long line with no wrapping applied at all")))

	l := New(buf, WrapNone, 10)
	lines := l.VirtualLines()
	require.Len(t, lines, 1)
	assert.Equal(t, Hard, lines[0].WrapKind)
}

func TestOverWideClusterBecomesOwnVirtualLine(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("a👋b")))

	l := New(buf, WrapChar, 1)
	lines := l.VirtualLines()
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "👋", virtualText(t, buf, lines[1]))
}

func TestVisualLogicalBijection(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("The quick brown fox\njumps over")))

	l := New(buf, WrapWord, 10)

	for row, vl := range l.VirtualLines() {
		logRow, logCol, offset := l.VisualToLogical(row, 0)
		assert.Equal(t, vl.LogicalRow, logRow)
		assert.Equal(t, vl.ByteStart, offset)

		gotRow, gotCol := l.LogicalToVisual(logRow, logCol)
		assert.Equal(t, row, gotRow)
		assert.Equal(t, 0, gotCol)
	}
}

func TestMultiLineBufferWrapsEachLogicalLineIndependently(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("short\nThe quick brown fox")))

	l := New(buf, WrapWord, 10)
	lines := l.VirtualLines()
	require.Len(t, lines, 3)
	assert.Equal(t, uint32(0), lines[0].LogicalRow)
	assert.Equal(t, uint32(1), lines[1].LogicalRow)
	assert.Equal(t, uint32(1), lines[2].LogicalRow)
}

func TestInvalidateLineRecomputesOnlyThatRow(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("The quick brown fox\njumps over the lazy dog")))

	l := New(buf, WrapWord, 10)
	before := l.VirtualLines()
	require.NoError(t, buf.Insert(len("The quick brown fox\n"), []byte("X")))
	l.InvalidateLine(1)

	after := l.VirtualLines()
	assert.Equal(t, before[0], after[0], "row 0's virtual spans are untouched by an edit to row 1")
	assert.NotEqual(t, before[1], after[1])
}

func TestMeasureForDimensionsEmptyBuffer(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	l := New(buf, WrapWord, 10)

	m, ok := l.MeasureForDimensions(10, 5)
	require.True(t, ok)
	assert.Equal(t, uint32(1), m.LineCount)
	assert.Equal(t, uint32(0), m.MaxWidth)
}

func TestWordBoundaries(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("hello world foo")))

	l := New(buf, WrapNone, 0)
	assert.Equal(t, uint32(6), l.NextWordBoundary(0))
	assert.Equal(t, uint32(0), l.PrevWordBoundary(6))
}

func TestLineInfoExport(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("The quick brown fox")))

	l := New(buf, WrapWord, 10)
	info := l.LineInfo()

	require.Len(t, info.Starts, 2)
	require.Len(t, info.Wraps, 2)
	assert.Equal(t, uint32(10), info.Wraps[0])
	assert.True(t, info.Wraps[1] >= 0xFFFFFFF0) // sentinel
}

func TestVisualAndLogicalEOL(t *testing.T) {
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte("The quick brown fox")))

	l := New(buf, WrapWord, 10)
	assert.Equal(t, uint32(10), l.VisualEOL(0))
	assert.Equal(t, uint32(19), l.LogicalEOL(0))
}
