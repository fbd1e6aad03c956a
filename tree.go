package graphic

import "fmt"

// nodeKind distinguishes the variants of a Tree node. A single flat struct
// with a kind tag is used for all node types to avoid interface dispatch on
// the traversal hot path.
type nodeKind uint8

const (
	kindEmpty nodeKind = iota
	kindText
	kindPolygon
	kindPath
	kindRect
	kindEllipse
	kindTransform
	kindOverlay
	kindPlace
)

// Tree is an immutable, persistent scene-graph node. Leaves describe
// geometry (shapes, paths, text); internal nodes combine subtrees via
// transform, overlay, and layout placement. Trees are built through the
// constructor functions and combinators only, are never mutated after
// construction, and may share subtrees freely across branches.
//
// Local-origin convention: a leaf sits with the top-left corner of its
// bounding box at the local origin, Y increasing downward. So
// FilledRectangle(Red, 10, 20) has bounds (0, 0, 10, 20), and an ellipse
// with radii (rx, ry) occupies (0, 0, 2rx, 2ry) with its center at (rx, ry).
type Tree struct {
	kind nodeKind

	// Leaf payload.
	color  Color
	stroke float64 // 0 = filled for rect/ellipse; line width otherwise
	filled bool    // polygon only; path is always stroked
	pts    []Vec2  // polygon and path vertices (owned copy)
	w, h   float64 // rectangle size, or measured text size
	rx, ry float64 // ellipse radii

	font Font
	text string

	// Internal payload.
	m      Matrix  // transform
	child  *Tree   // transform
	top    *Tree   // overlay: painted after bottom
	bottom *Tree   // overlay
	axis   Axis    // place
	pos    float64 // place: cross-axis alignment fraction
	first  *Tree   // place: keeps its position
	second *Tree   // place: shifted adjacent to first

	// Cached bounds, written at most once on first access. The core is
	// single-threaded by contract, so no synchronization is needed.
	cached    Rect
	hasCached bool
}

// emptyTree is the unique zero-size leaf. Its bounding box is the empty
// rectangle, and it is the neutral element for Onto, AlignH, and AlignV.
var emptyTree = &Tree{kind: kindEmpty}

// Empty returns the empty tree: a zero-size leaf with an empty bounding box
// that is neutral under overlay and alignment.
func Empty() *Tree {
	return emptyTree
}

// --- Leaf constructors ---

// Text creates a text leaf in the given color, stroke width, and font.
// The leaf measures itself through the font backend at construction, so
// downstream alignment never re-queries font metrics. Fails with
// ErrFontFamilyNotFound for a zero Font value and ErrInvalidArgument for a
// negative stroke width.
func Text(c Color, strokeWidth float64, f Font, s string) (*Tree, error) {
	if f.fam == nil {
		return nil, fmt.Errorf("%w: text with unresolved font", ErrFontFamilyNotFound)
	}
	if strokeWidth < 0 {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidArgument, strokeWidth)
	}
	w, h := MeasureText(f, s)
	return &Tree{
		kind:   kindText,
		color:  c,
		stroke: strokeWidth,
		font:   f,
		text:   s,
		w:      w,
		h:      h,
	}, nil
}

// Polygon creates an outlined polygon leaf from at least three vertices.
// A stroke width of zero draws a hairline outline.
func Polygon(c Color, strokeWidth float64, pts []Vec2) (*Tree, error) {
	return newPolygon(c, strokeWidth, false, pts)
}

// FilledPolygon creates a filled polygon leaf from at least three vertices.
func FilledPolygon(c Color, pts []Vec2) (*Tree, error) {
	return newPolygon(c, 0, true, pts)
}

func newPolygon(c Color, strokeWidth float64, filled bool, pts []Vec2) (*Tree, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d",
			ErrInvalidArgument, len(pts))
	}
	if strokeWidth < 0 {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidArgument, strokeWidth)
	}
	owned := make([]Vec2, len(pts))
	copy(owned, pts)
	return &Tree{
		kind:   kindPolygon,
		color:  c,
		stroke: strokeWidth,
		filled: filled,
		pts:    owned,
	}, nil
}

// Path creates a piecewise-affine path leaf from at least two vertices.
// Paths are always open and stroked, never filled.
func Path(c Color, strokeWidth float64, pts []Vec2) (*Tree, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: path needs at least 2 points, got %d",
			ErrInvalidArgument, len(pts))
	}
	if strokeWidth < 0 {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidArgument, strokeWidth)
	}
	owned := make([]Vec2, len(pts))
	copy(owned, pts)
	return &Tree{
		kind:   kindPath,
		color:  c,
		stroke: strokeWidth,
		pts:    owned,
	}, nil
}

// Rectangle creates an outlined rectangle leaf of the given size.
// Width and height must be positive.
func Rectangle(c Color, strokeWidth, w, h float64) (*Tree, error) {
	if strokeWidth <= 0 {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidArgument, strokeWidth)
	}
	return newRect(c, strokeWidth, w, h)
}

// FilledRectangle creates a filled rectangle leaf of the given size.
// Width and height must be positive.
func FilledRectangle(c Color, w, h float64) (*Tree, error) {
	return newRect(c, 0, w, h)
}

func newRect(c Color, strokeWidth, w, h float64) (*Tree, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rectangle size %vx%v", ErrInvalidArgument, w, h)
	}
	return &Tree{
		kind:   kindRect,
		color:  c,
		stroke: strokeWidth,
		w:      w,
		h:      h,
	}, nil
}

// Ellipse creates an outlined ellipse leaf with the given radii.
// Both radii must be positive.
func Ellipse(c Color, strokeWidth, rx, ry float64) (*Tree, error) {
	if strokeWidth <= 0 {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidArgument, strokeWidth)
	}
	return newEllipse(c, strokeWidth, rx, ry)
}

// FilledEllipse creates a filled ellipse leaf with the given radii.
// Both radii must be positive.
func FilledEllipse(c Color, rx, ry float64) (*Tree, error) {
	return newEllipse(c, 0, rx, ry)
}

func newEllipse(c Color, strokeWidth, rx, ry float64) (*Tree, error) {
	if rx <= 0 || ry <= 0 {
		return nil, fmt.Errorf("%w: ellipse radii %vx%v", ErrInvalidArgument, rx, ry)
	}
	return &Tree{
		kind:   kindEllipse,
		color:  c,
		stroke: strokeWidth,
		rx:     rx,
		ry:     ry,
	}, nil
}

// --- Combinators ---

// Apply wraps t in a transform node carrying m. If t's root is already a
// transform node, the matrices are merged into a single node rather than
// nesting, which keeps bounding-box recomputation O(depth). Applying any
// transform to the empty tree is a no-op. Panics if t is nil.
func Apply(m Matrix, t *Tree) *Tree {
	if t == nil {
		panic("graphic: nil tree")
	}
	if t.kind == kindEmpty {
		return t
	}
	if t.kind == kindTransform {
		return &Tree{kind: kindTransform, m: m.Multiply(t.m), child: t.child}
	}
	return &Tree{kind: kindTransform, m: m, child: t}
}

// Translate shifts the tree by (dx, dy).
func Translate(dx, dy float64, t *Tree) *Tree {
	return Apply(Translation(dx, dy), t)
}

// Scale scales the tree by (sx, sy) about the local origin.
func Scale(sx, sy float64, t *Tree) *Tree {
	return Apply(Scaling(sx, sy), t)
}

// Rotate rotates the tree by angle radians about the point (x, y).
func Rotate(x, y, angle float64, t *Tree) *Tree {
	return Apply(RotationAbout(x, y, angle), t)
}

// Onto overlays top above bottom. Both subtrees keep their own local origin;
// no shift is applied, and top paints after bottom so overlapping pixels
// show top's contribution. The empty tree is neutral. Panics on nil operands.
func Onto(top, bottom *Tree) *Tree {
	if top == nil || bottom == nil {
		panic("graphic: nil tree")
	}
	if top.kind == kindEmpty {
		return bottom
	}
	if bottom.kind == kindEmpty {
		return top
	}
	return &Tree{kind: kindOverlay, top: top, bottom: bottom}
}

// AlignH places a immediately to the left of b: a keeps its position and b
// is shifted so its left edge touches a's right edge. The fraction pos of
// each box's height is made to coincide: Top aligns top edges, Bottom aligns
// bottom edges, Center aligns vertical centers. Values outside [0, 1]
// extrapolate past the edges and are deliberately not clamped. The empty
// tree is neutral. Panics on nil operands.
func AlignH(a *Tree, pos float64, b *Tree) *Tree {
	return newPlace(Horizontal, a, pos, b)
}

// AlignV stacks a immediately above b: a keeps its position and b is shifted
// so its top edge touches a's bottom edge. The fraction pos of each box's
// width is made to coincide: Left, Right, or Center. Values outside [0, 1]
// extrapolate and are not clamped. The empty tree is neutral. Panics on nil
// operands.
func AlignV(a *Tree, pos float64, b *Tree) *Tree {
	return newPlace(Vertical, a, pos, b)
}

func newPlace(axis Axis, a *Tree, pos float64, b *Tree) *Tree {
	if a == nil || b == nil {
		panic("graphic: nil tree")
	}
	if a.kind == kindEmpty {
		return b
	}
	if b.kind == kindEmpty {
		return a
	}
	return &Tree{kind: kindPlace, axis: axis, pos: pos, first: a, second: b}
}
