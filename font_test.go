package graphic

import (
	"errors"
	"testing"
)

// stubHandle measures every rune as an em square.
type stubHandle struct{}

func (stubHandle) Measure(size float64, text string) (width, height float64) {
	return float64(len([]rune(text))) * size, size
}

type stubBackend struct{}

func (stubBackend) Families() []string { return []string{"Stub"} }

func (stubBackend) Lookup(name string) (FamilyHandle, bool) {
	if name != "Stub" {
		return nil, false
	}
	return stubHandle{}, true
}

// withStubBackend installs the stub for one test and restores the previous
// backend afterwards.
func withStubBackend(t *testing.T) {
	t.Helper()
	prev := fontBackend
	RegisterFontBackend(stubBackend{})
	t.Cleanup(func() { fontBackend = prev })
}

func stubFont(t *testing.T, size float64) Font {
	t.Helper()
	fam, err := GetFamily("Stub")
	if err != nil {
		t.Fatal(err)
	}
	f, err := MakeFont(fam, size)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestGetFamily(t *testing.T) {
	withStubBackend(t)

	fam, err := GetFamily("Stub")
	if err != nil {
		t.Fatal(err)
	}
	if fam.Name() != "Stub" {
		t.Errorf("Name() = %q, want Stub", fam.Name())
	}

	_, err = GetFamily("No Such Family")
	if !errors.Is(err, ErrFontFamilyNotFound) {
		t.Errorf("unknown family error = %v, want ErrFontFamilyNotFound", err)
	}
}

func TestGetFamilyNoBackend(t *testing.T) {
	prev := fontBackend
	fontBackend = nil
	t.Cleanup(func() { fontBackend = prev })

	if SystemFontNames() != nil {
		t.Error("SystemFontNames() != nil with no backend")
	}
	_, err := GetFamily("Stub")
	if !errors.Is(err, ErrFontFamilyNotFound) {
		t.Errorf("no-backend error = %v, want ErrFontFamilyNotFound", err)
	}
}

func TestMakeFontValidation(t *testing.T) {
	withStubBackend(t)
	fam, err := GetFamily("Stub")
	if err != nil {
		t.Fatal(err)
	}

	_, err = MakeFont(fam, 0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("size 0 error = %v, want ErrInvalidArgument", err)
	}
	_, err = MakeFont(nil, 12)
	if !errors.Is(err, ErrFontFamilyNotFound) {
		t.Errorf("nil family error = %v, want ErrFontFamilyNotFound", err)
	}
}

func TestMeasureText(t *testing.T) {
	withStubBackend(t)
	f := stubFont(t, 10)

	w, h := MeasureText(f, "abcd")
	assertNear(t, "width", w, 40)
	assertNear(t, "height", h, 10)

	w, h = MeasureText(Font{}, "abcd")
	assertNear(t, "zero font width", w, 0)
	assertNear(t, "zero font height", h, 0)
}

func TestTextLeafBounds(t *testing.T) {
	withStubBackend(t)
	f := stubFont(t, 10)

	leaf, err := Text(Black, 0, f, "hey")
	if err != nil {
		t.Fatal(err)
	}
	// Measured once at construction: 3 runes at size 10.
	assertRect(t, "text bounds", leaf.Bounds(), Rect{X2: 30, Y2: 10})

	cmds := Make(leaf).Commands()
	if len(cmds) != 1 || cmds[0].Kind != CommandText {
		t.Fatalf("cmds = %+v", cmds)
	}
	if cmds[0].Text != "hey" {
		t.Errorf("Text = %q", cmds[0].Text)
	}
}

func TestTextStrokeWidthValidation(t *testing.T) {
	withStubBackend(t)
	f := stubFont(t, 10)

	_, err := Text(Black, -1, f, "x")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative stroke error = %v, want ErrInvalidArgument", err)
	}
}
