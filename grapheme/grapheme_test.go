package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTextWidth_Scenarios(t *testing.T) {
	e := New(Unicode, 4)

	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{"ascii sentence", "Hello World", 11},
		{"cjk and emoji", "Hello 世界! 👋", 14},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.CalculateTextWidth(tt.input))
		})
	}
}

func TestCalculateTextWidth_Tab(t *testing.T) {
	e := New(Unicode, 4)
	assert.Equal(t, uint32(6), e.CalculateTextWidth("a\tb"))
}

func TestGetWidthAt_Tab(t *testing.T) {
	e := New(Unicode, 4)
	assert.Equal(t, uint32(4), e.GetWidthAt("a\tb", 1))
}

func TestCombiningCharacter(t *testing.T) {
	e := New(Unicode, 4)
	s := "café"
	info := e.FindGraphemeInfo(s)
	// 4 clusters total (c,a,f,e+combining); only the combining one is
	// multi-byte and thus reported.
	if assert.Len(t, info, 1) {
		assert.Equal(t, uint8(1), info[0].Width)
	}

	prev, ok := e.GetPrevGraphemeStart(s, 6)
	assert.True(t, ok)
	assert.Equal(t, uint32(3), prev.StartOffset)
	assert.Equal(t, uint8(1), prev.Width)
}

func TestFindWrapPosByWidth_Emoji(t *testing.T) {
	e := New(Unicode, 4)
	s := "Hello 🌍 World"

	r7 := e.FindWrapPosByWidth(s, 7)
	assert.Equal(t, uint32(6), r7.ByteOffset)
	assert.Equal(t, uint32(6), r7.ColumnsUsed)

	r8 := e.FindWrapPosByWidth(s, 8)
	assert.Equal(t, uint32(10), r8.ByteOffset)
	assert.Equal(t, uint32(8), r8.ColumnsUsed)
}

func TestFindWrapPosByWidth_ZeroWidthOrEmpty(t *testing.T) {
	e := New(Unicode, 4)
	assert.Equal(t, WrapPosResult{}, e.FindWrapPosByWidth("abc", 0))
	assert.Equal(t, WrapPosResult{}, e.FindWrapPosByWidth("", 10))
}

func TestFindPosByWidth_SelectionDirections(t *testing.T) {
	e := New(Unicode, 4)
	s := "a世b" // widths 1,2,1 -> columns 0-1,1-3,3-4

	end := e.FindPosByWidth(s, 2, true)
	assert.Equal(t, uint32(len("a世")), end.ByteOffset)

	start := e.FindPosByWidth(s, 2, false)
	assert.Equal(t, uint32(len("a")), start.ByteOffset)
}

func TestWcwidthSumsCodepoints(t *testing.T) {
	e := New(Wcwidth, 4)
	// tmux-compatible: base + combining widths are summed, not collapsed.
	assert.Equal(t, uint32(1), e.CalculateTextWidth("é"))
}

func TestNoZWJForcesBreak(t *testing.T) {
	unicodeEngine := New(Unicode, 4)
	noZWJEngine := New(NoZWJ, 4)

	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	assert.Equal(t, uint32(2), unicodeEngine.CalculateTextWidth(family))
	// Forcing ZWJ to break makes each emoji its own cluster: 4 emoji * 2.
	assert.Equal(t, uint32(8), noZWJEngine.CalculateTextWidth(family))
}

func TestRegionalIndicatorPair(t *testing.T) {
	for _, m := range []WidthMethod{Unicode, NoZWJ} {
		e := New(m, 4)
		assert.Equal(t, uint32(2), e.CalculateTextWidth("\U0001F1FA\U0001F1F8"), "method %v", m)
	}
}
