package textview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-tui/textcore"
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer"
	"github.com/phoenix-tui/textcore/wraplayout"
)

func newView(t *testing.T, text string) (*textbuffer.Buffer, *View) {
	t.Helper()
	buf := textbuffer.New(grapheme.Unicode, 4)
	require.NoError(t, buf.SetText([]byte(text)))
	layout := wraplayout.New(buf, wraplayout.WrapWord, 10)
	return buf, New(buf, layout)
}

func TestPlaceholderShownOnlyWhenEmpty(t *testing.T) {
	_, v := newView(t, "")
	assert.True(t, v.IsEmpty())
	require.NoError(t, v.SetPlaceholder("type here"))
	assert.Equal(t, "type here", v.Placeholder())

	_, v2 := newView(t, "x")
	assert.False(t, v2.IsEmpty())
}

func TestTabIndicatorDefaultsToMiddleDot(t *testing.T) {
	_, v := newView(t, "a\tb")
	glyph, color := v.TabIndicator()
	assert.Equal(t, '·', glyph)
	assert.Nil(t, color)

	v.SetTabIndicator('»', &RGBA{R: 1, G: 1, B: 1, A: 1})
	glyph, color = v.TabIndicator()
	assert.Equal(t, '»', glyph)
	require.NotNil(t, color)
	assert.Equal(t, 1.0, color.R)
}

func TestSelectionRoundTrip(t *testing.T) {
	_, v := newView(t, "The quick brown fox")
	require.NoError(t, v.SetSelection(0, 0))
	require.NoError(t, v.UpdateSelection(0, 9))

	sel := v.GetSelection()
	start, end := sel.Range()
	assert.Equal(t, uint32(0), start)
	assert.Equal(t, uint32(9), end)

	selected, err := v.GetSelectedTextBytes(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, "The quick", string(selected))

	v.ResetSelection()
	selected, err = v.GetSelectedTextBytes(1 << 20)
	require.NoError(t, err)
	assert.Nil(t, selected)
}

func TestDestroyedBufferFailsLoudlyThroughView(t *testing.T) {
	buf, v := newView(t, "hello")
	buf.Destroy()

	_, err := v.GetPlainTextBytes(1 << 20)
	assert.ErrorIs(t, err, textcore.ErrDestroyed)
}

func TestLogicalLineInfoPassthrough(t *testing.T) {
	_, v := newView(t, "one\ntwo")
	info, err := v.LogicalLineInfo()
	require.NoError(t, err)
	assert.Len(t, info.Starts, 2)
}
