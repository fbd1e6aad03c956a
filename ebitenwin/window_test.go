package ebitenwin

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/graphic"
)

func TestOpenDefaults(t *testing.T) {
	w := Open(Config{})
	if w.cfg.Width != 640 || w.cfg.Height != 480 {
		t.Errorf("default size = %dx%d, want 640x480", w.cfg.Width, w.cfg.Height)
	}
	if w.cfg.ClearColor != graphic.White {
		t.Errorf("default clear color = %v, want white", w.cfg.ClearColor)
	}
	if w.cfg.Title == "" {
		t.Error("default title empty")
	}
}

func TestNextDeliversBufferedEvents(t *testing.T) {
	w := Open(Config{})
	w.push(graphic.Event{Type: graphic.EventKeyDown, Key: 7})
	w.push(graphic.Event{Type: graphic.EventMouseDown, X: 3, Y: 4})
	w.close()

	// Buffered events drain before the close signal is reported.
	ev, ok := w.Next()
	if !ok || ev.Type != graphic.EventKeyDown || ev.Key != 7 {
		t.Errorf("first event = %+v (%v)", ev, ok)
	}
	ev, ok = w.Next()
	if !ok || ev.Type != graphic.EventMouseDown {
		t.Errorf("second event = %+v (%v)", ev, ok)
	}
	if _, ok := w.Next(); ok {
		t.Error("Next after drain should report closed")
	}
	// Close is sticky.
	if _, ok := w.Next(); ok {
		t.Error("Next after close should keep reporting closed")
	}
}

func TestPushDropsWhenFull(t *testing.T) {
	w := Open(Config{})
	for i := 0; i < defaultEventBuffer+10; i++ {
		w.push(graphic.Event{Type: graphic.EventTimerTick})
	}
	if len(w.events) != defaultEventBuffer {
		t.Errorf("queue length = %d, want %d", len(w.events), defaultEventBuffer)
	}
}

func TestPresentReplacesSnapshot(t *testing.T) {
	w := Open(Config{})
	if w.current() != nil {
		t.Error("fresh window has a picture")
	}
	r, err := graphic.FilledRectangle(graphic.Red, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pic := graphic.Make(r)
	w.Present(pic)
	if w.current() != pic {
		t.Error("Present did not replace the snapshot")
	}
}

func TestTimerAccumulation(t *testing.T) {
	w := Open(Config{})
	w.SetTimerInterval(50 * time.Millisecond)
	g := &game{win: w}

	// 60 ticks of a 60 TPS clock is one second: 20 timer events at 50ms.
	for i := 0; i < 60; i++ {
		if iv := time.Duration(w.interval.Load()); iv > 0 {
			g.timerAcc += advanceTick(60)
			for g.timerAcc >= iv {
				g.timerAcc -= iv
				w.push(graphic.Event{Type: graphic.EventTimerTick})
			}
		}
	}
	if got := len(w.events); got != 20 {
		t.Errorf("timer produced %d events, want 20", got)
	}
}

func TestAdvanceTick(t *testing.T) {
	if got := advanceTick(60); got != time.Second/60 {
		t.Errorf("advanceTick(60) = %v", got)
	}
	if got := advanceTick(0); got != time.Second/ebiten.DefaultTPS {
		t.Errorf("advanceTick(0) = %v, want default TPS fallback", got)
	}
}

func TestGeoM(t *testing.T) {
	m := graphic.Translation(3, 4).Multiply(graphic.Scaling(2, 5))
	g := geoM(m)
	x, y := g.Apply(1, 1)
	if math.Abs(x-5) > 1e-9 || math.Abs(y-9) > 1e-9 {
		t.Errorf("GeoM.Apply(1, 1) = (%v, %v), want (5, 9)", x, y)
	}
}

func TestKeyCodeRoundTrip(t *testing.T) {
	if KeyCode(ebiten.KeyA) != graphic.Key(ebiten.KeyA) {
		t.Error("KeyCode changed the underlying value")
	}
}

func TestAppendFan(t *testing.T) {
	cmd := graphic.DrawCommand{Transform: graphic.Translation(10, 0), Color: graphic.Red}
	outline := []graphic.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	verts, inds := appendFan(nil, nil, outline, cmd)

	if len(verts) != 4 {
		t.Fatalf("len(verts) = %d, want 4", len(verts))
	}
	// A quad fans into two triangles.
	if len(inds) != 6 {
		t.Fatalf("len(inds) = %d, want 6", len(inds))
	}
	if verts[1].DstX != 14 || verts[1].DstY != 0 {
		t.Errorf("vertex 1 at (%v, %v), want (14, 0)", verts[1].DstX, verts[1].DstY)
	}
	if verts[0].ColorR != 1 || verts[0].ColorA != 1 {
		t.Errorf("vertex color = (%v, %v)", verts[0].ColorR, verts[0].ColorA)
	}
}

func TestAppendStrokeQuads(t *testing.T) {
	cmd := graphic.DrawCommand{Transform: graphic.Identity(), Color: graphic.Red, StrokeWidth: 2}
	pts := []graphic.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	// Open polyline: 2 segment quads + 3 cap quads, 6 indices each.
	verts, inds := appendStrokeQuads(nil, nil, pts, false, cmd)
	if len(verts) != 5*4 || len(inds) != 5*6 {
		t.Errorf("open stroke: %d verts, %d inds; want 20, 30", len(verts), len(inds))
	}

	// Closed outline adds the wrapping segment.
	verts, inds = appendStrokeQuads(nil, nil, pts, true, cmd)
	if len(verts) != 6*4 || len(inds) != 6*6 {
		t.Errorf("closed stroke: %d verts, %d inds; want 24, 36", len(verts), len(inds))
	}
}

func TestEllipseOutlineBounds(t *testing.T) {
	pts := ellipseOutline(10, 5)
	if len(pts) != ellipseSegments {
		t.Fatalf("len(pts) = %d, want %d", len(pts), ellipseSegments)
	}
	for _, p := range pts {
		if p.X < -1e-9 || p.X > 20+1e-9 || p.Y < -1e-9 || p.Y > 10+1e-9 {
			t.Errorf("point %+v outside (0, 0)-(20, 10)", p)
		}
	}
}
