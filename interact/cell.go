package interact

import "board-catalog/catalog"

// ScrollOffset is the gap kept above a cell header after it opens.
const ScrollOffset = 16

// Cell is a rendered item plus its open/closed state.
type Cell struct {
	Item catalog.Item
	Open bool
}

// Toggle flips the cell and reports whether it is now open.
func (c *Cell) Toggle() bool {
	c.Open = !c.Open
	return c.Open
}

// ScrollTarget is the window scroll position that places a cell whose
// bounding box starts at top (viewport relative) ScrollOffset below the top.
func ScrollTarget(top, scrollY float64) float64 {
	return top + scrollY - ScrollOffset
}
