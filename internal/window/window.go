// Package window turns a terminal into an event source with load and resize
// notifications, the way a browser window feeds a page.
package window

import (
	"fmt"

	"github.com/tomz197/reveal/internal/draw"
)

// Event names a window notification.
type Event int

const (
	EventLoad   Event = iota // Fired once, on the first frame
	EventResize              // Fired when the terminal size changes
)

func (e Event) String() string {
	switch e {
	case EventLoad:
		return "load"
	case EventResize:
		return "resize"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Size is the window size in sub-pixels: one column wide, half a row tall.
type Size struct {
	Cols, Rows int // Terminal cells
}

// Width returns the drawable width in sub-pixels.
func (s Size) Width() int { return s.Cols }

// Height returns the drawable height in sub-pixels.
func (s Size) Height() int { return s.Rows * 2 }

// Aspect returns width / height in sub-pixels, or 1 for an empty window.
func (s Size) Aspect() float64 {
	if s.Cols <= 0 || s.Rows <= 0 {
		return 1
	}
	return float64(s.Width()) / float64(s.Height())
}

// Handler receives the window size current at dispatch.
type Handler func(Size)

type listener struct {
	id int
	fn Handler
}

// Window polls a terminal size function and dispatches events to listeners.
// It is not safe for concurrent use; call it from the frame loop.
type Window struct {
	sizeFunc  draw.TermSizeFunc
	size      Size
	loaded    bool
	nextID    int
	listeners map[Event][]listener
}

// New creates a window reading its size from sizeFunc.
func New(sizeFunc draw.TermSizeFunc) (*Window, error) {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	w := &Window{
		sizeFunc:  sizeFunc,
		listeners: make(map[Event][]listener),
	}
	cols, rows, err := sizeFunc()
	if err != nil {
		return nil, fmt.Errorf("read terminal size: %w", err)
	}
	w.size = Size{Cols: cols, Rows: rows}
	return w, nil
}

// Size returns the last observed size.
func (w *Window) Size() Size {
	return w.size
}

// On registers fn for ev and returns a function that unregisters it.
func (w *Window) On(ev Event, fn Handler) (off func()) {
	w.nextID++
	id := w.nextID
	w.listeners[ev] = append(w.listeners[ev], listener{id: id, fn: fn})
	return func() {
		ls := w.listeners[ev]
		for i, l := range ls {
			if l.id == id {
				w.listeners[ev] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns how many handlers are registered for ev.
func (w *Window) Listeners(ev Event) int {
	return len(w.listeners[ev])
}

// Load fires the load event. Only the first call has an effect.
func (w *Window) Load() {
	if w.loaded {
		return
	}
	w.loaded = true
	w.dispatch(EventLoad)
}

// Poll reads the current size and fires resize when it changed.
// It reports whether a resize was dispatched.
func (w *Window) Poll() (bool, error) {
	cols, rows, err := w.sizeFunc()
	if err != nil {
		return false, fmt.Errorf("read terminal size: %w", err)
	}
	next := Size{Cols: cols, Rows: rows}
	if next == w.size {
		return false, nil
	}
	w.size = next
	w.dispatch(EventResize)
	return true, nil
}

// Close drops every listener.
func (w *Window) Close() {
	clear(w.listeners)
}

func (w *Window) dispatch(ev Event) {
	// Copy so handlers may unregister themselves while dispatching.
	ls := append([]listener(nil), w.listeners[ev]...)
	for _, l := range ls {
		l.fn(w.size)
	}
}
