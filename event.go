package graphic

import "time"

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventKeyDown   EventType = iota // a key was pressed; Key is valid
	EventTimerTick                  // synthesized at the configured timer interval
	EventMouseDown                  // a mouse button was pressed; X, Y are valid
	EventMouseUp                    // a mouse button was released; X, Y are valid
	EventMouseMove                  // the pointer moved; X, Y, DX, DY are valid
)

// Key is a backend-defined key code. The ebitenwin backend uses ebiten.Key
// values; see ebitenwin.KeyCode.
type Key int

// Event is a single input or timer event delivered by an EventSource.
// It is a flat struct: which fields are valid depends on Type.
type Event struct {
	Type   EventType
	Key    Key
	X, Y   float64 // pointer position in viewport coordinates
	DX, DY float64 // pointer delta since the previous move event
}

// EventSource is the collaborator delivering input and timer events.
// Next blocks until an event is available and reports false when the window
// has been closed; after that no further events are delivered.
type EventSource interface {
	Next() (Event, bool)
}

// TimerConfigurator is implemented by event sources that can interleave
// EventTimerTick events at a fixed period. The interaction runtime
// configures the source before entering its loop when a timer interval is
// requested.
type TimerConfigurator interface {
	SetTimerInterval(d time.Duration)
}

// Window is the windowing collaborator: an event source that can also
// display a Picture. Present replaces the currently displayed snapshot;
// the window owns the platform render loop and repaints as needed.
type Window interface {
	EventSource
	Present(p *Picture)
}
