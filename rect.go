package graphic

import "fmt"

// Rect is an axis-aligned bounding box in the local coordinate space of the
// node it describes, stored as min/max corners. A non-empty Rect satisfies
// X2 > X1 && Y2 > Y1. The zero Rect is the empty rectangle, which is the
// absorbing element under Union and is excluded from min/max folds.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// IsEmpty reports whether the rectangle is empty (violates the strict
// x2 > x1 && y2 > y1 invariant).
func (r Rect) IsEmpty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Width returns x2 - x1, or 0 for an empty rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.X2 - r.X1
}

// Height returns y2 - y1, or 0 for an empty rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Y2 - r.Y1
}

// Union returns the smallest rectangle containing both r and other.
// The empty rectangle is neutral: union with it returns the other operand.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	out := r
	if other.X1 < out.X1 {
		out.X1 = other.X1
	}
	if other.Y1 < out.Y1 {
		out.Y1 = other.Y1
	}
	if other.X2 > out.X2 {
		out.X2 = other.X2
	}
	if other.Y2 > out.Y2 {
		out.Y2 = other.Y2
	}
	return out
}

// shift returns the rectangle translated by (dx, dy). Shifting the empty
// rectangle yields the empty rectangle.
func (r Rect) shift(dx, dy float64) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	return Rect{r.X1 + dx, r.Y1 + dy, r.X2 + dx, r.Y2 + dy}
}

// Size returns the width and height of r. It fails with ErrInvalidGeometry
// if the rectangle invariant is violated (including the empty rectangle);
// such rectangles are never produced by the public algebra for non-empty
// trees, so this is a defensive boundary check.
func Size(r Rect) (w, h float64, err error) {
	if r.IsEmpty() {
		return 0, 0, fmt.Errorf("%w: rect (%v, %v, %v, %v)",
			ErrInvalidGeometry, r.X1, r.Y1, r.X2, r.Y2)
	}
	return r.X2 - r.X1, r.Y2 - r.Y1, nil
}

// transformRect maps the four corners of r through m and returns their
// axis-aligned bounding box. The empty rectangle maps to itself.
func transformRect(m Matrix, r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	if m.IsTranslation() {
		return r.shift(m.C, m.F)
	}
	corners := [4]Vec2{
		{r.X1, r.Y1},
		{r.X2, r.Y1},
		{r.X2, r.Y2},
		{r.X1, r.Y2},
	}
	out := Rect{}
	for i, p := range corners {
		q := m.TransformPoint(p)
		if i == 0 {
			out = Rect{q.X, q.Y, q.X, q.Y}
			continue
		}
		if q.X < out.X1 {
			out.X1 = q.X
		}
		if q.X > out.X2 {
			out.X2 = q.X
		}
		if q.Y < out.Y1 {
			out.Y1 = q.Y
		}
		if q.Y > out.Y2 {
			out.Y2 = q.Y
		}
	}
	return out
}

// rectFromPoints returns the bounding box of a vertex list, or the empty
// rectangle for fewer than two points. Degenerate lists (all points
// collinear on an axis) still yield an empty rectangle by the invariant.
func rectFromPoints(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	out := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < out.X1 {
			out.X1 = p.X
		}
		if p.X > out.X2 {
			out.X2 = p.X
		}
		if p.Y < out.Y1 {
			out.Y1 = p.Y
		}
		if p.Y > out.Y2 {
			out.Y2 = p.Y
		}
	}
	return out
}
