package graphic

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

// tween progress runs through float32, so comparisons are looser here.
const frameEpsilon = 1e-5

func TestFramesCount(t *testing.T) {
	var ts []float64
	frames := Frames(2*time.Second, 10, func(tt float64) *Picture {
		ts = append(ts, tt)
		return testPicture(t, 1)
	})
	if len(frames) != 20 {
		t.Fatalf("len(frames) = %d, want 20", len(frames))
	}
	if len(ts) != 20 {
		t.Fatalf("draw called %d times, want 20", len(ts))
	}
}

func TestFramesEndpoints(t *testing.T) {
	var ts []float64
	Frames(time.Second, 5, func(tt float64) *Picture {
		ts = append(ts, tt)
		return testPicture(t, 1)
	})
	if ts[0] != 0 {
		t.Errorf("first t = %v, want 0", ts[0])
	}
	if math.Abs(ts[len(ts)-1]-1) > frameEpsilon {
		t.Errorf("last t = %v, want 1", ts[len(ts)-1])
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] < ts[i-1] {
			t.Errorf("t not monotonic at %d: %v < %v", i, ts[i], ts[i-1])
		}
	}
}

func TestFramesEaseCurve(t *testing.T) {
	var linear, eased []float64
	Frames(time.Second, 10, func(tt float64) *Picture {
		linear = append(linear, tt)
		return testPicture(t, 1)
	})
	FramesEase(time.Second, 10, ease.InQuad, func(tt float64) *Picture {
		eased = append(eased, tt)
		return testPicture(t, 1)
	})
	// InQuad starts slower than linear away from the endpoints.
	mid := len(linear) / 2
	if !(eased[mid] < linear[mid]) {
		t.Errorf("InQuad midpoint %v not below linear midpoint %v", eased[mid], linear[mid])
	}
}

func TestFramesMinimumTwo(t *testing.T) {
	frames := Frames(10*time.Millisecond, 10, func(tt float64) *Picture {
		return testPicture(t, 1)
	})
	if len(frames) != 2 {
		t.Errorf("len(frames) = %d, want 2 (first and last)", len(frames))
	}
}

func TestFramesInvalid(t *testing.T) {
	draw := func(tt float64) *Picture { return testPicture(t, 1) }
	if Frames(0, 10, draw) != nil {
		t.Error("zero duration should yield nil")
	}
	if Frames(time.Second, 0, draw) != nil {
		t.Error("zero fps should yield nil")
	}
	if Frames(time.Second, 10, nil) != nil {
		t.Error("nil draw should yield nil")
	}
}
