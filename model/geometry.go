package model

// Point represents a 2D point in page-pixel space.
type Point struct {
	X, Y int
}

// Rect represents a rectangle by its four corner points. The corners are not
// required to be axis-perfect, but all arithmetic treats the rectangle as
// axis-aligned: width comes from the top edge, height from the left edge.
type Rect struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// NewRect creates an axis-aligned rectangle from its edge coordinates.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{
		TopLeft:     Point{X: left, Y: top},
		TopRight:    Point{X: right, Y: top},
		BottomLeft:  Point{X: left, Y: bottom},
		BottomRight: Point{X: right, Y: bottom},
	}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() int {
	return r.TopLeft.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() int {
	return r.TopRight.X
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() int {
	return r.TopLeft.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() int {
	return r.BottomLeft.Y
}

// Width returns the width measured along the top edge.
func (r Rect) Width() int {
	return r.TopRight.X - r.TopLeft.X
}

// Height returns the height measured along the left edge.
func (r Rect) Height() int {
	return r.BottomLeft.Y - r.TopLeft.Y
}

// Area returns the rectangle's area.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Intersects reports whether two rectangles overlap. The test compares the
// combined bounding span against the summed extents on each axis, so stacked
// or adjacent elements that share span count as overlapping only when the
// overlap is strict.
func (r Rect) Intersects(other Rect) bool {
	left := min(r.Left(), other.Left())
	right := max(r.Right(), other.Right())
	top := min(r.Top(), other.Top())
	bottom := max(r.Bottom(), other.Bottom())

	return right-left < r.Width()+other.Width() &&
		bottom-top < r.Height()+other.Height()
}

// IntersectionArea returns the exact overlap area of the two rectangles,
// clamped at zero for each axis.
func (r Rect) IntersectionArea(other Rect) int {
	left := max(r.Left(), other.Left())
	right := min(r.Right(), other.Right())
	top := max(r.Top(), other.Top())
	bottom := min(r.Bottom(), other.Bottom())

	width := max(0, right-left)
	height := max(0, bottom-top)
	return width * height
}

// Before reports whether r precedes other in reading order. Rectangles with
// disjoint horizontal spans order left to right; rectangles sharing horizontal
// span order by top edge. Together with a stable sort this yields column-major
// reading order on column-normalized fragments.
func (r Rect) Before(other Rect) bool {
	if r.Right() <= other.Left() {
		return true
	}
	if r.Left() >= other.Right() {
		return false
	}
	return r.Top() < other.Top()
}
