package model

// Viewport is the visible virtual-line window: rows [Top, Top+Height) and
// columns [Left, Left+Width) of the wrap layout's virtual-line grid.
type Viewport struct {
	Top    uint32
	Left   uint32
	Width  uint32
	Height uint32
}

// Contains reports whether visual row is within the viewport's row range.
func (v Viewport) Contains(visualRow uint32) bool {
	return visualRow >= v.Top && visualRow < v.Top+v.Height
}
