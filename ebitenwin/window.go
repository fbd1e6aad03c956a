// Package ebitenwin is the windowing backend for graphic, built on
// [Ebitengine]. It implements the graphic.Window collaborator: a pull-based
// event source fed from ebiten's input state plus a display for the most
// recently presented Picture.
//
// Ebiten owns the platform render loop and pushes; the interaction runtime
// pulls. The bridge is a buffered event channel: the game adapter converts
// polled input to events on the render goroutine while the interaction loop
// runs on its own goroutine, strictly sequential from its point of view.
//
// [Ebitengine]: https://ebitengine.org
package ebitenwin

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/graphic"
)

// defaultEventBuffer is the capacity of the window's event queue. Events
// arriving while the queue is full are dropped with a warning; a blocked
// react callback must not stall the render loop.
const defaultEventBuffer = 256

// Config configures the platform window.
type Config struct {
	Title  string
	Width  int // defaults to 640
	Height int // defaults to 480

	// ClearColor fills the screen before each frame. A fully transparent
	// zero value selects white.
	ClearColor graphic.Color
}

// Window implements graphic.Window over an ebiten game. Create one with
// Open and start it with Run, or use the package-level Interact/Render
// conveniences.
type Window struct {
	cfg Config

	events    chan graphic.Event
	done      chan struct{}
	closeOnce sync.Once

	// interval is the timer period in nanoseconds; read by the render
	// goroutine, written by the interaction goroutine before its loop.
	interval atomic.Int64

	mu  sync.Mutex
	pic *graphic.Picture
}

// Open creates a window with the given configuration. The platform window
// appears once Run is called.
func Open(cfg Config) *Window {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "graphic"
	}
	if cfg.ClearColor.A == 0 {
		cfg.ClearColor = graphic.White
	}
	return &Window{
		cfg:    cfg,
		events: make(chan graphic.Event, defaultEventBuffer),
		done:   make(chan struct{}),
	}
}

// Run opens the platform window, runs app on its own goroutine, and blocks
// until the window closes. The error from ebiten is returned. Run waits for
// app to observe the close signal before returning, so no callbacks fire
// after Run.
func (w *Window) Run(app func(win *Window)) error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)

	appDone := make(chan struct{})
	go func() {
		defer close(appDone)
		app(w)
	}()

	err := ebiten.RunGame(&game{win: w})
	w.close()
	<-appDone
	return err
}

// Next implements graphic.EventSource. Pending events are delivered before
// the close signal is reported.
func (w *Window) Next() (graphic.Event, bool) {
	select {
	case ev := <-w.events:
		return ev, true
	default:
	}
	select {
	case ev := <-w.events:
		return ev, true
	case <-w.done:
		return graphic.Event{}, false
	}
}

// Present implements graphic.Window: it replaces the displayed snapshot.
// The new Picture appears on the next rendered frame.
func (w *Window) Present(p *graphic.Picture) {
	w.mu.Lock()
	w.pic = p
	w.mu.Unlock()
}

// SetTimerInterval implements graphic.TimerConfigurator.
func (w *Window) SetTimerInterval(d time.Duration) {
	w.interval.Store(int64(d))
}

func (w *Window) current() *graphic.Picture {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pic
}

func (w *Window) close() {
	w.closeOnce.Do(func() { close(w.done) })
}

// push enqueues an event without blocking the render loop; a full queue
// drops the event.
func (w *Window) push(ev graphic.Event) {
	select {
	case w.events <- ev:
	default:
		graphic.Logger().Warn("ebitenwin: event queue full, dropping event", "type", ev.Type)
	}
}

// KeyCode converts an ebiten key to the backend-defined graphic.Key code
// delivered in EventKeyDown events.
func KeyCode(k ebiten.Key) graphic.Key {
	return graphic.Key(k)
}

// game adapts the window to ebiten.Game.
type game struct {
	win *Window

	keyBuf    []ebiten.Key
	lastX     int
	lastY     int
	hasCursor bool
	timerAcc  time.Duration
}

// Update polls ebiten's input state once per tick and converts edges into
// events: just-pressed keys, mouse button transitions, cursor motion, and
// synthesized timer ticks.
func (g *game) Update() error {
	w := g.win

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		w.push(graphic.Event{Type: graphic.EventKeyDown, Key: KeyCode(k)})
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.push(graphic.Event{Type: graphic.EventMouseDown, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.push(graphic.Event{Type: graphic.EventMouseUp, X: fx, Y: fy})
	}
	if g.hasCursor && (x != g.lastX || y != g.lastY) {
		w.push(graphic.Event{
			Type: graphic.EventMouseMove,
			X:    fx, Y: fy,
			DX: float64(x - g.lastX), DY: float64(y - g.lastY),
		})
	}
	g.lastX, g.lastY, g.hasCursor = x, y, true

	if iv := time.Duration(w.interval.Load()); iv > 0 {
		g.timerAcc += advanceTick(ebiten.TPS())
		for g.timerAcc >= iv {
			g.timerAcc -= iv
			w.push(graphic.Event{Type: graphic.EventTimerTick})
		}
	}
	return nil
}

// advanceTick returns the wall time represented by one update tick.
func advanceTick(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw clears the screen and renders the most recently presented Picture.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.win.cfg.ClearColor.NRGBA())
	if pic := g.win.current(); pic != nil {
		drawCommands(screen, pic.Commands())
	}
}

// Layout reports the fixed logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.cfg.Width, g.win.cfg.Height
}

// Interact opens a window and drives graphic.Interact over it. It blocks
// until the window closes.
func Interact[S any](cfg Config, loop graphic.LoopConfig, initial S, draw func(S) *graphic.Picture, react func(S, graphic.Event) (S, bool)) error {
	w := Open(cfg)
	return w.Run(func(win *Window) {
		graphic.Interact(win, loop, initial, draw, react)
	})
}

// Render opens a window, displays the Picture returned by draw, and blocks
// until the window closes.
func Render(cfg Config, draw func() *graphic.Picture) error {
	w := Open(cfg)
	return w.Run(func(win *Window) {
		graphic.Render(win, draw)
	})
}
