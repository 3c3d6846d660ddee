package mono

// Point represents a pixel position on a surface.
type Point struct {
	X, Y int16
}

// Pt is a convenience function to create a Point.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size represents the dimensions of a surface or bitmap in pixels.
type Size struct {
	W, H uint16
}

// Rect is an axis-aligned half-open region [X, X+W) x [Y, Y+H).
// A Rect is empty when either dimension is zero.
type Rect struct {
	X, Y int16
	W, H uint16
}

// Rt is a convenience function to create a Rect.
func Rt(x, y int16, w, h uint16) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Size returns the dimensions of the rect.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Point) bool {
	if p.X < r.X || p.Y < r.Y {
		return false
	}
	return int32(p.X) < int32(r.X)+int32(r.W) && int32(p.Y) < int32(r.Y)+int32(r.H)
}

// Intersect returns the overlap of two rects, or the zero Rect when they
// are disjoint. Boundary arithmetic is carried out in int32 so coordinates
// at the extremes of the int16 range cannot overflow.
func (r Rect) Intersect(o Rect) Rect {
	left := max(int32(r.X), int32(o.X))
	top := max(int32(r.Y), int32(o.Y))
	right := min(int32(r.X)+int32(r.W), int32(o.X)+int32(o.W))
	bottom := min(int32(r.Y)+int32(r.H), int32(o.Y)+int32(o.H))
	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{
		X: int16(left),
		Y: int16(top),
		W: uint16(right - left),
		H: uint16(bottom - top),
	}
}

// Union returns the smallest rect covering both operands. An empty operand
// acts as the identity.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	left := min(int32(r.X), int32(o.X))
	top := min(int32(r.Y), int32(o.Y))
	right := max(int32(r.X)+int32(r.W), int32(o.X)+int32(o.W))
	bottom := max(int32(r.Y)+int32(r.H), int32(o.Y)+int32(o.H))
	return Rect{
		X: int16(left),
		Y: int16(top),
		W: uint16(right - left),
		H: uint16(bottom - top),
	}
}
