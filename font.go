package graphic

import "fmt"

// FontBackend is the font-metrics collaborator. It owns family resolution
// and text measurement; the core delegates all metric queries to it.
// Backends register themselves via RegisterFontBackend, typically from an
// init function (import the typeface package for the default backend).
type FontBackend interface {
	// Families returns the ordered names of the available font families.
	Families() []string

	// Lookup resolves a family name to a handle, reporting whether the
	// name is known.
	Lookup(name string) (FamilyHandle, bool)
}

// FamilyHandle is a resolved font family. Measurement is a pure function of
// (size, text) and returns dimensions in the same coordinate units as the
// rest of the geometry.
type FamilyHandle interface {
	Measure(size float64, text string) (width, height float64)
}

// fontBackend is the registered collaborator. Registration happens at init
// time; afterwards the variable is read-only, so no synchronization is
// needed on the query path.
var fontBackend FontBackend

// RegisterFontBackend installs the font-metrics collaborator. The last
// registered backend wins; backends normally register exactly once from
// their package init.
func RegisterFontBackend(b FontBackend) {
	fontBackend = b
}

// FontFamily is an immutable handle to a named collection of font style
// variations, resolved once via GetFamily.
type FontFamily struct {
	name   string
	handle FamilyHandle
}

// Name returns the family name as known to the font backend.
func (f *FontFamily) Name() string {
	return f.name
}

// Handle returns the backend handle for the family. Backends and
// rasterizers use it to reach their own family data.
func (f *FontFamily) Handle() FamilyHandle {
	return f.handle
}

// Font is an immutable (family, size) pair. The zero Font is unresolved and
// rejected by the Text constructor.
type Font struct {
	fam  *FontFamily
	size float64
}

// Family returns the font's family, or nil for the zero Font.
func (f Font) Family() *FontFamily {
	return f.fam
}

// Size returns the font size in the same units as the rest of the geometry.
func (f Font) Size() float64 {
	return f.size
}

// SystemFontNames returns the ordered family names offered by the
// registered font backend, or nil if no backend is registered.
func SystemFontNames() []string {
	if fontBackend == nil {
		return nil
	}
	return fontBackend.Families()
}

// GetFamily resolves a family name through the registered font backend.
// Fails with ErrFontFamilyNotFound if the name is absent from
// SystemFontNames (or no backend is registered).
func GetFamily(name string) (*FontFamily, error) {
	if fontBackend == nil {
		return nil, fmt.Errorf("%w: %q (no font backend registered)", ErrFontFamilyNotFound, name)
	}
	h, ok := fontBackend.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontFamilyNotFound, name)
	}
	return &FontFamily{name: name, handle: h}, nil
}

// MakeFont creates a Font from a resolved family and a positive size.
// Fails with ErrFontFamilyNotFound for a nil family and ErrInvalidArgument
// for a non-positive size.
func MakeFont(fam *FontFamily, size float64) (Font, error) {
	if fam == nil {
		return Font{}, fmt.Errorf("%w: nil family", ErrFontFamilyNotFound)
	}
	if size <= 0 {
		return Font{}, fmt.Errorf("%w: font size %v", ErrInvalidArgument, size)
	}
	return Font{fam: fam, size: size}, nil
}

// MeasureText returns the width and height of txt rendered in f, delegated
// to the font backend. A zero Font measures as (0, 0).
func MeasureText(f Font, txt string) (width, height float64) {
	if f.fam == nil || f.fam.handle == nil {
		return 0, 0
	}
	return f.fam.handle.Measure(f.size, txt)
}
