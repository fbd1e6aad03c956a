package graphic

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	assertNear(t, name+".A", got.A, want.A)
	assertNear(t, name+".B", got.B, want.B)
	assertNear(t, name+".C", got.C, want.C)
	assertNear(t, name+".D", got.D, want.D)
	assertNear(t, name+".E", got.E, want.E)
	assertNear(t, name+".F", got.F, want.F)
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	assertNear(t, name+".X1", got.X1, want.X1)
	assertNear(t, name+".Y1", got.Y1, want.Y1)
	assertNear(t, name+".X2", got.X2, want.X2)
	assertNear(t, name+".Y2", got.Y2, want.Y2)
}

// --- Multiply ---

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix{A: 2, B: 1, C: 3, D: 4, E: 5, F: 6}
	assertMatrix(t, "id*m", Identity().Multiply(m), m)
	assertMatrix(t, "m*id", m.Multiply(Identity()), m)
}

func TestMultiplyTranslations(t *testing.T) {
	got := Translation(10, 20).Multiply(Translation(5, 3))
	assertMatrix(t, "translations", got, Translation(15, 23))
}

func TestMultiplyOrder(t *testing.T) {
	// Scale-then-translate differs from translate-then-scale.
	st := Translation(10, 0).Multiply(Scaling(2, 2))
	p := st.TransformPoint(Vec2{X: 1, Y: 1})
	assertNear(t, "st.X", p.X, 12)
	assertNear(t, "st.Y", p.Y, 2)

	ts := Scaling(2, 2).Multiply(Translation(10, 0))
	p = ts.TransformPoint(Vec2{X: 1, Y: 1})
	assertNear(t, "ts.X", p.X, 22)
	assertNear(t, "ts.Y", p.Y, 2)
}

// --- Rotation ---

func TestRotation90(t *testing.T) {
	p := Rotation(math.Pi / 2).TransformPoint(Vec2{X: 1, Y: 0})
	// Positive angle is clockwise with Y down.
	assertNear(t, "p.X", p.X, 0)
	assertNear(t, "p.Y", p.Y, 1)
}

func TestRotationAboutFixesPivot(t *testing.T) {
	m := RotationAbout(3, 4, 1.2345)
	p := m.TransformPoint(Vec2{X: 3, Y: 4})
	assertNear(t, "pivot.X", p.X, 3)
	assertNear(t, "pivot.Y", p.Y, 4)
}

func TestRotationAboutMatchesComposition(t *testing.T) {
	angle := math.Pi / 3
	want := Translation(5, 7).Multiply(Rotation(angle)).Multiply(Translation(-5, -7))
	assertMatrix(t, "about", RotationAbout(5, 7, angle), want)
}

// --- Invert ---

func TestInvertRoundTrip(t *testing.T) {
	m := Translation(10, 20).Multiply(Rotation(0.7)).Multiply(Scaling(2, 3))
	assertMatrix(t, "m*inv", m.Multiply(m.Invert()), Identity())
	assertMatrix(t, "inv*m", m.Invert().Multiply(m), Identity())
}

func TestInvertSingular(t *testing.T) {
	assertMatrix(t, "singular", Scaling(0, 0).Invert(), Identity())
}

// --- Predicates ---

func TestIsTranslation(t *testing.T) {
	if !Translation(4, 5).IsTranslation() {
		t.Error("Translation(4, 5) not recognized as translation")
	}
	if Rotation(0.1).IsTranslation() {
		t.Error("Rotation(0.1) recognized as translation")
	}
	if !Identity().IsIdentity() {
		t.Error("Identity() not recognized as identity")
	}
}
