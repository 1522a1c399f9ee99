// Package service implements the Edit Buffer's text-mutation and
// cursor-navigation operations on top of a text buffer and its wrap layout.
package service

import (
	"github.com/phoenix-tui/textcore/grapheme"
	tbmodel "github.com/phoenix-tui/textcore/textbuffer/domain/model"
)

// InsertText inserts text at offset and returns the cursor offset
// immediately after the inserted bytes.
func InsertText(buf *tbmodel.Buffer, offset uint32, text []byte) (uint32, error) {
	if err := buf.Insert(int(offset), text); err != nil {
		return offset, err
	}
	return offset + uint32(len(text)), nil
}

// InsertChar inserts a single rune at offset.
func InsertChar(buf *tbmodel.Buffer, offset uint32, r rune) (uint32, error) {
	return InsertText(buf, offset, []byte(string(r)))
}

// NewLine inserts a line break at offset.
func NewLine(buf *tbmodel.Buffer, offset uint32) (uint32, error) {
	return InsertText(buf, offset, []byte("\n"))
}

// DeleteCharForward removes the grapheme cluster starting at offset and
// returns the (unchanged) cursor offset. Deleting the line terminator
// itself merges the following logical line into this one — an ordinary
// consequence of operating on the contiguous byte store, not special cased.
func DeleteCharForward(buf *tbmodel.Buffer, engine grapheme.Engine, offset uint32) (uint32, error) {
	data := buf.Bytes()
	if int(offset) >= len(data) {
		return offset, nil
	}
	clusterLen, _ := engine.FirstClusterLen(string(data[offset:]))
	if clusterLen == 0 {
		clusterLen = 1
	}
	if err := buf.Delete(int(offset), int(offset)+clusterLen); err != nil {
		return offset, err
	}
	return offset, nil
}

// DeleteCharBackward removes the grapheme cluster immediately before offset
// and returns the new cursor offset (the start of the removed cluster).
// Backspacing at the start of a line merges it into the previous line by
// deleting that line's terminator.
func DeleteCharBackward(buf *tbmodel.Buffer, engine grapheme.Engine, offset uint32) (uint32, error) {
	if offset == 0 {
		return 0, nil
	}
	row := lineContaining(buf, offset)
	line := buf.Line(row)
	if offset == line.Start && row > 0 {
		// At the start of a (non-first) line: merge with the previous line
		// by deleting its terminator, the gap between its content end and
		// this line's start.
		prevEnd := int(buf.Line(row - 1).End())
		if err := buf.Delete(prevEnd, int(line.Start)); err != nil {
			return offset, err
		}
		return uint32(prevEnd), nil
	}

	content := string(buf.Bytes()[line.Start:line.End()])
	rel, ok := engine.GetPrevGraphemeStart(content, int(offset-line.Start))
	start := int(offset) - 1
	if ok {
		start = int(line.Start) + int(rel.StartOffset)
	}
	if err := buf.Delete(start, int(offset)); err != nil {
		return offset, err
	}
	return uint32(start), nil
}

func lineContaining(buf *tbmodel.Buffer, offset uint32) int {
	for row := 0; row < int(buf.LineCount()); row++ {
		l := buf.Line(row)
		if offset >= l.Start && offset <= l.End() {
			return row
		}
	}
	return int(buf.LineCount()) - 1
}
