// Package geom provides the axis-aligned geometry primitives shared by
// the floorplanner: points, rectangles, and bounding boxes over them.
package geom

// Undef marks a coordinate that has not yet been established by the
// decoder (mirrors the original tool's Point::UNDEF sentinel).
const Undef = -1

// Point is an integer or real 2D coordinate, depending on context; the
// floorplanner only ever uses float64 coordinates (block dimensions are
// real-valued per spec.md §6), so Point stores float64.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle [LL, UR), lower-left inclusive,
// upper-right exclusive in the half-open convention used throughout the
// decoder and cost evaluator.
type Rect struct {
	LL, UR Point
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.UR.X - r.LL.X }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.UR.Y - r.LL.Y }

// HalfPerimeter is the HPWL contribution of this rectangle.
func (r Rect) HalfPerimeter() float64 { return r.Width() + r.Height() }

// IsValid reports whether the rectangle has positive extent and a
// non-negative lower-left corner.
func (r Rect) IsValid() bool {
	return r.Width() > 0 && r.Height() > 0 && r.LL.X >= 0 && r.LL.Y >= 0
}

// Intersects reports whether r and other overlap (half-open convention).
func (r Rect) Intersects(other Rect) bool {
	return r.LL.X < other.UR.X && other.LL.X < r.UR.X &&
		r.LL.Y < other.UR.Y && other.LL.Y < r.UR.Y
}

// BoundingBox computes the tightest rectangle enclosing every rect in rs.
// Returns the zero Rect if rs is empty.
func BoundingBox(rs []Rect) Rect {
	if len(rs) == 0 {
		return Rect{}
	}
	x0, y0 := rs[0].LL.X, rs[0].LL.Y
	x1, y1 := rs[0].UR.X, rs[0].UR.Y
	for _, r := range rs[1:] {
		if r.LL.X < x0 {
			x0 = r.LL.X
		}
		if r.LL.Y < y0 {
			y0 = r.LL.Y
		}
		if r.UR.X > x1 {
			x1 = r.UR.X
		}
		if r.UR.Y > y1 {
			y1 = r.UR.Y
		}
	}
	return Rect{LL: Point{x0, y0}, UR: Point{x1, y1}}
}
