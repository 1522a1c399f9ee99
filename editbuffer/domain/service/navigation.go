package service

import (
	"github.com/phoenix-tui/textcore/editbuffer/domain/model"
	"github.com/phoenix-tui/textcore/grapheme"
	tbmodel "github.com/phoenix-tui/textcore/textbuffer/domain/model"
	"github.com/phoenix-tui/textcore/wraplayout"
)

// MoveLeft moves the cursor back one grapheme cluster.
func MoveLeft(buf *tbmodel.Buffer, engine grapheme.Engine, c model.Cursor) model.Cursor {
	offset := c.Offset()
	if offset == 0 {
		return c
	}
	row := lineContaining(buf, offset)
	line := buf.Line(row)
	if offset <= line.Start {
		if row == 0 {
			return c
		}
		return c.MoveTo(buf.Line(row - 1).End())
	}
	content := string(buf.Bytes()[line.Start:line.End()])
	prev, ok := engine.GetPrevGraphemeStart(content, int(offset-line.Start))
	if !ok {
		return c.MoveTo(offset - 1)
	}
	return c.MoveTo(line.Start + prev.StartOffset)
}

// MoveRight moves the cursor forward one grapheme cluster.
func MoveRight(buf *tbmodel.Buffer, engine grapheme.Engine, c model.Cursor) model.Cursor {
	offset := c.Offset()
	data := buf.Bytes()
	if int(offset) >= len(data) {
		return c
	}
	row := lineContaining(buf, offset)
	line := buf.Line(row)
	if offset >= line.End() {
		return c.MoveTo(line.End() + lineTerminatorLen(buf, row))
	}
	rel := string(data[offset:line.End()])
	clusterLen, _ := engine.FirstClusterLen(rel)
	if clusterLen == 0 {
		clusterLen = 1
	}
	return c.MoveTo(offset + uint32(clusterLen))
}

func lineTerminatorLen(buf *tbmodel.Buffer, row int) uint32 {
	if row+1 >= int(buf.LineCount()) {
		return 0
	}
	return buf.Line(row+1).Start - buf.Line(row).End()
}

// MoveUp moves the cursor one virtual row up, preserving (or adopting) the
// goal display column so repeated vertical moves stay visually aligned.
func MoveUp(layout *wraplayout.Layout, c model.Cursor) model.Cursor {
	return moveVertical(layout, c, -1)
}

// MoveDown moves the cursor one virtual row down.
func MoveDown(layout *wraplayout.Layout, c model.Cursor) model.Cursor {
	return moveVertical(layout, c, 1)
}

func moveVertical(layout *wraplayout.Layout, c model.Cursor, delta int) model.Cursor {
	visualRow, col := layout.OffsetToVisual(c.Offset())
	goalCol := uint32(col)
	if g, set := c.GoalColumn(); set {
		goalCol = g
	}
	targetRow := visualRow + delta
	if targetRow < 0 || uint32(targetRow) >= layout.VirtualLineCount() {
		return c
	}
	_, _, offset := layout.VisualToLogical(targetRow, int(goalCol))
	return c.MoveVertical(offset, goalCol)
}

// GotoLine places the cursor at the start of logical row.
func GotoLine(buf *tbmodel.Buffer, row int) model.Cursor {
	return model.NewCursor(buf.Line(row).Start)
}
