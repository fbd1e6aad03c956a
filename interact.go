package graphic

import "time"

// LoopConfig configures the interaction runtime.
type LoopConfig struct {
	// TimerInterval is the period at which EventTimerTick events are
	// synthesized by the event source. Zero disables timer events.
	TimerInterval time.Duration
}

// Interact runs the model-view-update loop: an explicit state machine with
// states Running(state) and Terminated, driven by pulling events from win.
//
// draw(state) is called once before the first event is processed and again
// after every accepted transition; the resulting Picture is handed to
// win.Present. react(state, event) returns the next state and whether a
// transition occurred: returning ok=false means the state is unchanged and
// the previous Picture stays on screen — no redraw happens.
//
// The loop is strictly single-threaded and cooperative: draw and react are
// never invoked concurrently with each other or themselves, and each event
// is fully processed before the next is pulled. A slow callback therefore
// blocks event delivery; that is the contract, not a bug. Panics raised
// inside draw or react unwind through Interact — the loop never recovers
// or retries.
//
// Interact returns when win reports close. No callbacks fire afterwards.
func Interact[S any](win Window, cfg LoopConfig, initial S, draw func(S) *Picture, react func(S, Event) (S, bool)) {
	if win == nil {
		panic("graphic: nil window")
	}
	if draw == nil || react == nil {
		panic("graphic: nil callback")
	}
	if cfg.TimerInterval > 0 {
		if tc, ok := win.(TimerConfigurator); ok {
			tc.SetTimerInterval(cfg.TimerInterval)
		} else {
			Logger().Warn("graphic: timer interval requested but event source has no timer")
		}
	}

	state := initial
	win.Present(draw(state))

	for {
		ev, ok := win.Next()
		if !ok {
			Logger().Debug("graphic: interaction loop terminated")
			return
		}
		next, changed := react(state, ev)
		if !changed {
			continue
		}
		state = next
		Logger().Debug("graphic: state transition", "event", ev.Type)
		win.Present(draw(state))
	}
}

// Render is the degenerate interaction: it calls draw once, displays the
// Picture, and waits for the close signal. No other events have any effect.
func Render(win Window, draw func() *Picture) {
	if win == nil {
		panic("graphic: nil window")
	}
	if draw == nil {
		panic("graphic: nil callback")
	}
	win.Present(draw())
	for {
		if _, ok := win.Next(); !ok {
			return
		}
	}
}
