package ebitenwin

import (
	"bytes"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/graphic"
	"github.com/phanxgames/graphic/typeface"
)

// ellipseSegments is the number of chords used to flatten an ellipse.
const ellipseSegments = 48

// strokeHairline is the stroke width used when a polygon or path carries a
// stroke width of zero.
const strokeHairline = 1.0

var (
	whitePixel     *ebiten.Image
	whitePixelOnce sync.Once
)

// pixel returns the shared 1x1 white source image used for all solid-color
// triangle draws; vertex colors carry the actual color.
func pixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(graphic.White.NRGBA())
	})
	return whitePixel
}

// drawCommands paints flattened draw commands onto the screen strictly in
// slice order, preserving the compositing order established by the tree.
func drawCommands(screen *ebiten.Image, cmds []graphic.DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case graphic.CommandText:
			drawText(screen, cmd)
		case graphic.CommandRect:
			outline := []graphic.Vec2{
				{X: 0, Y: 0},
				{X: cmd.Width, Y: 0},
				{X: cmd.Width, Y: cmd.Height},
				{X: 0, Y: cmd.Height},
			}
			drawShape(screen, cmd, outline, true)
		case graphic.CommandEllipse:
			drawShape(screen, cmd, ellipseOutline(cmd.RX, cmd.RY), true)
		case graphic.CommandPolygon:
			drawShape(screen, cmd, cmd.Points, true)
		case graphic.CommandPath:
			drawShape(screen, cmd, cmd.Points, false)
		}
	}
}

// drawShape tessellates one outline into triangles and submits them. Filled
// shapes become a triangle fan from the first vertex, which is correct for
// the convex outlines the tree constructors target. Strokes are expanded in
// local coordinates so line width follows the transform's scale, then each
// expansion quad becomes two triangles.
func drawShape(screen *ebiten.Image, cmd graphic.DrawCommand, outline []graphic.Vec2, closed bool) {
	if cmd.Color.A == 0 {
		return
	}
	var verts []ebiten.Vertex
	var inds []uint16
	if cmd.Filled && closed {
		if len(outline) < 3 {
			return
		}
		verts, inds = appendFan(nil, nil, outline, cmd)
	} else {
		verts, inds = appendStrokeQuads(nil, nil, outline, closed, cmd)
	}
	if len(inds) == 0 {
		return
	}
	screen.DrawTriangles(verts, inds, pixel(), &ebiten.DrawTrianglesOptions{})
}

// appendFan triangulates a closed convex outline as a fan anchored at its
// first vertex.
func appendFan(verts []ebiten.Vertex, inds []uint16, outline []graphic.Vec2, cmd graphic.DrawCommand) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(verts))
	for _, p := range outline {
		verts = append(verts, vertexAt(cmd.Transform.TransformPoint(p), cmd.Color))
	}
	for i := 2; i < len(outline); i++ {
		inds = append(inds, base, base+uint16(i-1), base+uint16(i))
	}
	return verts, inds
}

// appendStrokeQuads expands a polyline into one quad per segment plus a
// square cap quad at every vertex so joints stay watertight without miter
// math. Expansion happens in local space; points are transformed as they
// become vertices.
func appendStrokeQuads(verts []ebiten.Vertex, inds []uint16, pts []graphic.Vec2, closed bool, cmd graphic.DrawCommand) ([]ebiten.Vertex, []uint16) {
	if len(pts) < 2 {
		return verts, inds
	}
	width := cmd.StrokeWidth
	if width <= 0 {
		width = strokeHairline
	}
	half := width / 2

	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	quad := func(a, b, c, d graphic.Vec2) {
		base := uint16(len(verts))
		verts = append(verts,
			vertexAt(cmd.Transform.TransformPoint(a), cmd.Color),
			vertexAt(cmd.Transform.TransformPoint(b), cmd.Color),
			vertexAt(cmd.Transform.TransformPoint(c), cmd.Color),
			vertexAt(cmd.Transform.TransformPoint(d), cmd.Color),
		)
		inds = append(inds, base, base+1, base+2, base, base+2, base+3)
	}

	for i := 0; i < segs; i++ {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		dx, dy := q.X-p.X, q.Y-p.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx := -dy / length * half
		ny := dx / length * half
		quad(
			graphic.Vec2{X: p.X + nx, Y: p.Y + ny},
			graphic.Vec2{X: q.X + nx, Y: q.Y + ny},
			graphic.Vec2{X: q.X - nx, Y: q.Y - ny},
			graphic.Vec2{X: p.X - nx, Y: p.Y - ny},
		)
	}
	for _, p := range pts {
		quad(
			graphic.Vec2{X: p.X - half, Y: p.Y - half},
			graphic.Vec2{X: p.X + half, Y: p.Y - half},
			graphic.Vec2{X: p.X + half, Y: p.Y + half},
			graphic.Vec2{X: p.X - half, Y: p.Y + half},
		)
	}
	return verts, inds
}

// vertexAt builds one triangle vertex at a device-space point. Vertex colors
// are premultiplied; the source is the shared white pixel.
func vertexAt(p graphic.Vec2, c graphic.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// ellipseOutline flattens an ellipse into a closed polygon occupying
// (0, 0)-(2rx, 2ry), matching the tree's local-origin convention.
func ellipseOutline(rx, ry float64) []graphic.Vec2 {
	pts := make([]graphic.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		sin, cos := math.Sincos(a)
		pts[i] = graphic.Vec2{X: rx + rx*cos, Y: ry + ry*sin}
	}
	return pts
}

// faceSources caches one GoTextFaceSource per family; parsing TTF data is
// expensive and Draw runs every frame.
var faceSources sync.Map // family name -> *text.GoTextFaceSource

// faceFor resolves an ebiten text face for the command's font.
func faceFor(f graphic.Font) (*text.GoTextFace, error) {
	name := f.Family().Name()
	if src, ok := faceSources.Load(name); ok {
		return &text.GoTextFace{Source: src.(*text.GoTextFaceSource), Size: f.Size()}, nil
	}
	data, err := typeface.Source(f, typeface.Regular)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	faceSources.Store(name, src)
	return &text.GoTextFace{Source: src, Size: f.Size()}, nil
}

// drawText renders a text run with the command transform applied to the
// text's local origin, which ebiten's text/v2 places at the top-left of the
// layout.
func drawText(screen *ebiten.Image, cmd graphic.DrawCommand) {
	if cmd.Text == "" || cmd.Color.A == 0 {
		return
	}
	face, err := faceFor(cmd.Font)
	if err != nil {
		graphic.Logger().Warn("ebitenwin: text face unavailable", "error", err)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(cmd.Transform)
	op.ColorScale.ScaleWithColor(cmd.Color.NRGBA())
	text.Draw(screen, cmd.Text, face, op)
}

// geoM converts a row-major affine matrix to ebiten's GeoM.
func geoM(m graphic.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}
