// Package raster is a software implementation of the graphic.Rasterizer
// collaborator, built on golang.org/x/image/vector coverage rasterization.
//
// It is intended for file export and headless rendering; fidelity targets
// correctness of geometry and compositing order, not subpixel typography.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"

	"github.com/phanxgames/graphic"
	"github.com/phanxgames/graphic/typeface"
)

// ellipseSegments is the number of chords used to flatten an ellipse.
const ellipseSegments = 64

// Renderer rasterizes flattened draw commands into an RGBA image.
// The zero value renders on a transparent background; New returns one with
// the conventional white background.
type Renderer struct {
	// Background fills the viewport before any command is drawn.
	Background graphic.Color
}

// New returns a Renderer with a white background.
func New() *Renderer {
	return &Renderer{Background: graphic.White}
}

// Rasterize implements graphic.Rasterizer. Commands are painted strictly in
// slice order, so overlay ordering established by the scene graph is
// preserved.
func (r *Renderer) Rasterize(cmds []graphic.DrawCommand, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", graphic.ErrInvalidArgument, width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if r.Background.A > 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(r.Background.NRGBA()), image.Point{}, draw.Src)
	}

	for i, cmd := range cmds {
		if err := r.drawCommand(dst, cmd); err != nil {
			return nil, fmt.Errorf("raster: command %d: %w", i, err)
		}
	}
	return dst, nil
}

// drawCommand dispatches one command. Shape outlines are built in local
// coordinates, stroked there (so stroke width follows the transform's
// scale), and mapped through the command transform before filling.
func (r *Renderer) drawCommand(dst *image.RGBA, cmd graphic.DrawCommand) error {
	switch cmd.Kind {
	case graphic.CommandText:
		return r.drawText(dst, cmd)
	case graphic.CommandRect:
		outline := []graphic.Vec2{
			{X: 0, Y: 0},
			{X: cmd.Width, Y: 0},
			{X: cmd.Width, Y: cmd.Height},
			{X: 0, Y: cmd.Height},
		}
		r.drawShape(dst, cmd, outline, true)
	case graphic.CommandEllipse:
		r.drawShape(dst, cmd, ellipseOutline(cmd.RX, cmd.RY), true)
	case graphic.CommandPolygon:
		r.drawShape(dst, cmd, cmd.Points, true)
	case graphic.CommandPath:
		r.drawShape(dst, cmd, cmd.Points, false)
	}
	return nil
}

// drawShape fills or strokes a single outline under the command transform.
func (r *Renderer) drawShape(dst *image.RGBA, cmd graphic.DrawCommand, outline []graphic.Vec2, closed bool) {
	var loops [][]graphic.Vec2
	if cmd.Filled && closed {
		// Copy before transforming: polygon outlines alias the immutable tree.
		owned := make([]graphic.Vec2, len(outline))
		copy(owned, outline)
		loops = [][]graphic.Vec2{owned}
	} else {
		loops = strokeOutline(outline, closed, cmd.StrokeWidth)
	}
	for _, loop := range loops {
		for i, p := range loop {
			loop[i] = cmd.Transform.TransformPoint(p)
		}
	}
	fillLoops(dst, loops, cmd.Color)
}

// ellipseOutline flattens an ellipse with the given radii into a closed
// polygon. The ellipse occupies (0, 0)-(2rx, 2ry) with center (rx, ry),
// matching the tree's local-origin convention.
func ellipseOutline(rx, ry float64) []graphic.Vec2 {
	pts := make([]graphic.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		sin, cos := math.Sincos(a)
		pts[i] = graphic.Vec2{X: rx + rx*cos, Y: ry + ry*sin}
	}
	return pts
}

// fillLoops rasterizes a set of closed loops with the non-zero winding rule
// and composites the color over dst.
func fillLoops(dst *image.RGBA, loops [][]graphic.Vec2, c graphic.Color) {
	if c.A == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	any := false
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		any = true
		z.MoveTo(float32(loop[0].X), float32(loop[0].Y))
		for _, p := range loop[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	if !any {
		return
	}
	z.Draw(dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}

// drawText renders a text run into an offscreen buffer at local origin and
// composites it under the command transform: a plain blit for pure
// translations, a bilinear affine warp otherwise. Stroke width on text is
// accepted but rendered as a fill; glyph outlining belongs to the font
// collaborator.
func (r *Renderer) drawText(dst *image.RGBA, cmd graphic.DrawCommand) error {
	if cmd.Text == "" {
		return nil
	}
	face, err := typeface.Face(cmd.Font, typeface.Regular)
	if err != nil {
		return err
	}
	defer face.Close()

	w := int(math.Ceil(cmd.Width))
	h := int(math.Ceil(cmd.Height))
	metrics := face.Metrics()
	if w <= 0 {
		w = xfont.MeasureString(face, cmd.Text).Ceil()
	}
	if h <= 0 {
		h = (metrics.Ascent + metrics.Descent).Ceil()
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := xfont.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(cmd.Color.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(cmd.Text)

	m := cmd.Transform
	if m.IsTranslation() {
		offset := image.Pt(int(math.Round(m.C)), int(math.Round(m.F)))
		draw.Draw(dst, tmp.Bounds().Add(offset), tmp, image.Point{}, draw.Over)
		return nil
	}
	xdraw.ApproxBiLinear.Transform(dst,
		f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
		tmp, tmp.Bounds(), xdraw.Over, nil)
	return nil
}
