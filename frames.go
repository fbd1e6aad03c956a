package graphic

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Frames generates the Picture sequence for an animation of the given
// duration at the given frame rate, calling fn with the normalized time
// t in [0, 1] for each frame. The progress of t is linear; use FramesEase
// for a different easing curve. The result is suitable for AnimateToFile.
func Frames(duration time.Duration, fps int, fn func(t float64) *Picture) []*Picture {
	return FramesEase(duration, fps, ease.Linear, fn)
}

// FramesEase is Frames with an explicit easing function applied to the
// normalized time. Returns nil for a non-positive duration or frame rate.
// The first frame is always t=0 and the last t=1.
func FramesEase(duration time.Duration, fps int, fn ease.TweenFunc, draw func(t float64) *Picture) []*Picture {
	if duration <= 0 || fps <= 0 || draw == nil {
		return nil
	}
	secs := duration.Seconds()
	n := int(secs*float64(fps) + 0.5)
	if n < 2 {
		n = 2
	}

	tw := gween.New(0, 1, float32(secs), fn)
	step := float32(secs) / float32(n-1)

	out := make([]*Picture, n)
	out[0] = draw(0)
	for i := 1; i < n; i++ {
		v, _ := tw.Update(step)
		out[i] = draw(float64(v))
	}
	return out
}
