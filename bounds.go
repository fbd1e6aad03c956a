package graphic

// Bounds returns the tree's axis-aligned bounding box in its own local
// coordinate space, computed by a bottom-up fold and cached on first use.
// The empty tree and degenerate geometry yield the empty rectangle, which
// is absorbed by unions higher up the tree.
func (t *Tree) Bounds() Rect {
	if t == nil {
		panic("graphic: nil tree")
	}
	if t.hasCached {
		return t.cached
	}
	r := t.computeBounds()
	t.cached = r
	t.hasCached = true
	return r
}

func (t *Tree) computeBounds() Rect {
	switch t.kind {
	case kindEmpty:
		return Rect{}
	case kindText, kindRect:
		return Rect{0, 0, t.w, t.h}
	case kindEllipse:
		return Rect{0, 0, 2 * t.rx, 2 * t.ry}
	case kindPolygon, kindPath:
		return rectFromPoints(t.pts)
	case kindTransform:
		return transformRect(t.m, t.child.Bounds())
	case kindOverlay:
		return t.top.Bounds().Union(t.bottom.Bounds())
	case kindPlace:
		dx, dy := t.placeOffset()
		return t.first.Bounds().Union(t.second.Bounds().shift(dx, dy))
	}
	return Rect{}
}

// placeOffset resolves the layout of a place node: the first subtree keeps
// its position and the second is translated by the returned offset so the
// boxes become adjacent along the arrangement axis with the cross-axis
// alignment fraction pos lined up. If either box is empty no offset applies.
func (t *Tree) placeOffset() (dx, dy float64) {
	ra := t.first.Bounds()
	rb := t.second.Bounds()
	if ra.IsEmpty() || rb.IsEmpty() {
		return 0, 0
	}
	switch t.axis {
	case Horizontal:
		dx = ra.X2 - rb.X1
		dy = ra.Y1 + t.pos*ra.Height() - (rb.Y1 + t.pos*rb.Height())
	case Vertical:
		dy = ra.Y2 - rb.Y1
		dx = ra.X1 + t.pos*ra.Width() - (rb.X1 + t.pos*rb.Width())
	}
	return dx, dy
}
