package platform

import (
	"fmt"
	"sync"
)

// Recorder is an in-memory Backend that keeps every call. It tracks the
// resulting window state so it can answer Maximized.
type Recorder struct {
	mu        sync.Mutex
	calls     []string
	x, y      int
	maximized bool
	minimized bool

	tracksPointer      bool
	pointerX, pointerY int
	anchor             dragAnchor
}

var _ Backend = (*Recorder)(nil)

// NewRecorder returns a Recorder that, like the Fyne backend, cannot read
// the global pointer and is dragged through Move.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewPointerRecorder returns a Recorder that reads a simulated global
// pointer, like the native backends.
func NewPointerRecorder() *Recorder {
	return &Recorder{tracksPointer: true}
}

// SetPointer places the simulated pointer in screen pixels.
func (r *Recorder) SetPointer(x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pointerX, r.pointerY = x, y
}

func (r *Recorder) Name() string { return "recorder" }

func (r *Recorder) Move(dx, dy int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.x += dx
	r.y += dy
	r.calls = append(r.calls, fmt.Sprintf("move(%d,%d)", dx, dy))
	return nil
}

func (r *Recorder) SetMaximized(maximized bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maximized = maximized
	if maximized {
		r.calls = append(r.calls, "maximize")
	} else {
		r.calls = append(r.calls, "restore")
	}
	return nil
}

func (r *Recorder) Minimize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.minimized = true
	r.calls = append(r.calls, "minimize")
	return nil
}

func (r *Recorder) BeginDrag() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.tracksPointer {
		return ErrUnsupported
	}
	r.anchor = dragAnchor{pointerX: r.pointerX, pointerY: r.pointerY, windowX: r.x, windowY: r.y}
	r.calls = append(r.calls, "begin_drag")
	return nil
}

func (r *Recorder) FollowPointer() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.tracksPointer {
		return ErrUnsupported
	}
	r.x, r.y = r.anchor.target(r.pointerX, r.pointerY)
	r.calls = append(r.calls, fmt.Sprintf("follow(%d,%d)", r.x, r.y))
	return nil
}

func (r *Recorder) Maximized() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maximized, nil
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Position returns the accumulated window offset.
func (r *Recorder) Position() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.x, r.y
}

func (r *Recorder) Minimized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minimized
}
