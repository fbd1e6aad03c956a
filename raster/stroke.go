package raster

import (
	"math"

	"github.com/phanxgames/graphic"
)

// hairlineWidth is the stroke width used when a polygon or path carries a
// stroke width of zero.
const hairlineWidth = 1.0

// strokeOutline expands a polyline into fillable loops: one quad ribbon per
// segment plus a square cap at every vertex to cover joints and line ends.
// No miter computation is done; the caps make joints watertight for the
// viewing scales this renderer targets. For closed outlines the last point
// connects back to the first.
func strokeOutline(pts []graphic.Vec2, closed bool, width float64) [][]graphic.Vec2 {
	if len(pts) < 2 {
		return nil
	}
	if width <= 0 {
		width = hairlineWidth
	}
	half := width / 2

	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	loops := make([][]graphic.Vec2, 0, segs+len(pts))
	for i := 0; i < segs; i++ {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		dx, dy := q.X-p.X, q.Y-p.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal scaled to the half width.
		nx := -dy / length * half
		ny := dx / length * half
		loops = append(loops, []graphic.Vec2{
			{X: p.X + nx, Y: p.Y + ny},
			{X: q.X + nx, Y: q.Y + ny},
			{X: q.X - nx, Y: q.Y - ny},
			{X: p.X - nx, Y: p.Y - ny},
		})
	}

	for _, p := range pts {
		loops = append(loops, []graphic.Vec2{
			{X: p.X - half, Y: p.Y - half},
			{X: p.X + half, Y: p.Y - half},
			{X: p.X + half, Y: p.Y + half},
			{X: p.X - half, Y: p.Y + half},
		})
	}
	return loops
}
