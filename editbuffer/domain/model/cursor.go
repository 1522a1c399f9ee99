package model

// Cursor tracks the current editing position as a byte offset, plus a goal
// column used to keep vertical moves (up/down) visually aligned across
// lines of differing width.
type Cursor struct {
	offset     uint32
	goalCol    uint32
	goalColSet bool
}

// NewCursor creates a cursor at offset with no goal column set.
func NewCursor(offset uint32) Cursor {
	return Cursor{offset: offset}
}

// Offset returns the cursor's byte offset.
func (c Cursor) Offset() uint32 {
	return c.offset
}

// MoveTo returns a cursor at offset, clearing the goal column (any
// horizontal move or explicit placement resets it).
func (c Cursor) MoveTo(offset uint32) Cursor {
	return Cursor{offset: offset}
}

// MoveVertical returns a cursor at offset, carrying forward goalCol so the
// next vertical move keeps using it rather than the new offset's own column.
func (c Cursor) MoveVertical(offset uint32, goalCol uint32) Cursor {
	return Cursor{offset: offset, goalCol: goalCol, goalColSet: true}
}

// GoalColumn returns the remembered visual column and whether one is set.
func (c Cursor) GoalColumn() (uint32, bool) {
	return c.goalCol, c.goalColSet
}
