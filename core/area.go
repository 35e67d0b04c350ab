package core

// Point is a screen coordinate in pixels
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Area is an axis-aligned rectangle with inclusive corners
// A 1x1 area has X1 == X2 and Y1 == Y2
type Area struct {
	X1, Y1 int
	X2, Y2 int
}

// AreaFromSize builds an area from its top-left corner and dimensions
func AreaFromSize(x, y, w, h int) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Width returns the inclusive width
func (a Area) Width() int {
	return a.X2 - a.X1 + 1
}

// Height returns the inclusive height
func (a Area) Height() int {
	return a.Y2 - a.Y1 + 1
}

// Size returns the pixel count, 0 for degenerate areas
func (a Area) Size() int {
	w, h := a.Width(), a.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Empty reports a degenerate area
func (a Area) Empty() bool {
	return a.X2 < a.X1 || a.Y2 < a.Y1
}

// Center returns the integer midpoint
func (a Area) Center() Point {
	return Point{X: a.X1 + (a.X2-a.X1)/2, Y: a.Y1 + (a.Y2-a.Y1)/2}
}

// Increase grows the area by w horizontally and h vertically on each side
func (a Area) Increase(w, h int) Area {
	return Area{X1: a.X1 - w, Y1: a.Y1 - h, X2: a.X2 + w, Y2: a.Y2 + h}
}

// Move translates the area
func (a Area) Move(dx, dy int) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Join returns the smallest area covering both
func (a Area) Join(b Area) Area {
	return Area{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}

// Intersect returns the common part and false if there is none
func (a Area) Intersect(b Area) (Area, bool) {
	r := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	if r.Empty() {
		return Area{}, false
	}
	return r, true
}

// IsPointOn checks if point is within the inclusive bounds
func (a Area) IsPointOn(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// IsOn reports whether the two areas overlap
func (a Area) IsOn(b Area) bool {
	_, ok := a.Intersect(b)
	return ok
}

// IsIn reports whether a lies completely inside b
func (a Area) IsIn(b Area) bool {
	return a.X1 >= b.X1 && a.Y1 >= b.Y1 && a.X2 <= b.X2 && a.Y2 <= b.Y2
}
