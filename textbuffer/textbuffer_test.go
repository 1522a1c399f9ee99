package textbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/textcore"
	"github.com/phoenix-tui/textcore/grapheme"
)

func TestEmptyBufferHasOneLine(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	assert.Equal(t, uint32(1), b.LineCount())
	line, err := b.Line(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), line.Width)
}

func TestSetTextSplitsLogicalLines(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("abc\ndef\r\nghi\r")))
	assert.Equal(t, uint32(4), b.LineCount())

	l0, _ := b.Line(0)
	assert.Equal(t, uint32(0), l0.Start)
	assert.Equal(t, uint32(3), l0.Length)

	l3, _ := b.Line(3)
	assert.Equal(t, uint32(0), l3.Length, "trailing CR terminator leaves a final empty line")
}

func TestInsertClampsAndAppendsBeyondEOF(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("abc")))
	require.NoError(t, b.Insert(1, []byte("XY")))

	bytes, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "aXYbc", string(bytes))

	require.NoError(t, b.Insert(999, []byte("!")))
	bytes, _ = b.Bytes()
	assert.Equal(t, "aXYbc!", string(bytes))
}

func TestDeletePastEOFTruncates(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("abcdef")))
	require.NoError(t, b.Delete(3, 999))

	bytes, _ := b.Bytes()
	assert.Equal(t, "abc", string(bytes))
}

func TestDeleteInvertedRangeIsNoop(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("abcdef")))
	require.NoError(t, b.Delete(4, 2))

	bytes, _ := b.Bytes()
	assert.Equal(t, "abcdef", string(bytes))
}

func TestWidthConsistency(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("Hello 世界! 👋")))

	line, _ := b.Line(0)
	assert.Equal(t, uint32(14), line.Width)
}

func TestDestroyedBufferFailsLoudly(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	b.Destroy()

	err := b.SetText([]byte("x"))
	assert.ErrorIs(t, err, textcore.ErrDestroyed)

	_, err = b.Line(0)
	assert.ErrorIs(t, err, textcore.ErrDestroyed)
}

func TestLogicalLineInfoNeverProducesWraps(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("one\ntwo\nthree")))

	info, err := b.LogicalLineInfo()
	require.NoError(t, err)
	assert.Empty(t, info.Wraps)
	assert.Len(t, info.Starts, 3)
	assert.Equal(t, uint32(4), info.Starts[1])
}

func TestAllocationFailureOnOversizedWrite(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	b.SetMaxBytes(4)

	err := b.SetText([]byte("too long"))
	assert.ErrorIs(t, err, textcore.ErrAllocation)
}

func TestGraphemeCacheReusedAcrossEdits(t *testing.T) {
	b := New(grapheme.Unicode, 4)
	require.NoError(t, b.SetText([]byte("line one\nlineTWO")))
	// Touch line 1 only; line 0's content is unchanged so its cached width
	// must still be correct after the edit touches a different line.
	require.NoError(t, b.Insert(len("line one\n"), []byte("X")))

	l0, _ := b.Line(0)
	assert.Equal(t, uint32(8), l0.Width)
}
