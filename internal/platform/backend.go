// Package platform executes window manager commands for the undecorated
// main window. Native backends talk to the windowing system directly; the
// Fyne backend covers platforms where no native handle is available.
package platform

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"mru-ui/internal/logger"
)

// ErrUnsupported is returned for commands a backend cannot perform.
var ErrUnsupported = errors.New("platform: operation not supported")

// Backend abstracts the window manager operations the title bar needs.
// Move takes a displacement in physical pixels.
//
// BeginDrag records the pointer and window positions in screen pixels when
// a press starts a drag; FollowPointer then places the window so the pointer
// keeps that offset. Backends that cannot read the global pointer return
// ErrUnsupported from both and are driven through Move instead.
type Backend interface {
	Name() string
	Move(dx, dy int) error
	SetMaximized(maximized bool) error
	Minimize() error
	Maximized() (bool, error)
	BeginDrag() error
	FollowPointer() error
}

// dragAnchor is the pointer and window position, in screen pixels, at the
// start of a drag.
type dragAnchor struct {
	pointerX, pointerY int
	windowX, windowY   int
}

// target returns the window position that keeps the pointer at its press
// offset.
func (a dragAnchor) target(pointerX, pointerY int) (int, int) {
	return a.windowX + pointerX - a.pointerX, a.windowY + pointerY - a.pointerY
}

// Resolve returns a native backend for w when the windowing system exposes
// one, otherwise the Fyne fallback. It must run on the UI goroutine after
// the window has been shown, because the native handle only exists then.
func Resolve(w fyne.Window, log logger.Logger) Backend {
	fallback := NewFyneBackend(w)

	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return fallback
	}

	var backend Backend
	nw.RunNative(func(ctx any) {
		b, err := newNativeBackend(ctx)
		if err != nil {
			log.Debug("Platform", "native backend unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		backend = b
	})

	if backend == nil {
		return fallback
	}
	return backend
}

// Lazy defers Resolve until the first command. Title bar input can only
// arrive once the window is on screen, so the native handle is ready then.
type Lazy struct {
	window fyne.Window
	logger logger.Logger

	once    sync.Once
	backend Backend
}

var _ Backend = (*Lazy)(nil)

func NewLazy(w fyne.Window, log logger.Logger) *Lazy {
	return &Lazy{window: w, logger: log}
}

func (l *Lazy) get() Backend {
	l.once.Do(func() {
		l.backend = Resolve(l.window, l.logger)
		l.logger.Info("Platform", "window backend selected", map[string]interface{}{
			"backend": l.backend.Name(),
		})
	})
	return l.backend
}

func (l *Lazy) Name() string                      { return l.get().Name() }
func (l *Lazy) Move(dx, dy int) error             { return l.get().Move(dx, dy) }
func (l *Lazy) SetMaximized(maximized bool) error { return l.get().SetMaximized(maximized) }
func (l *Lazy) Minimize() error                   { return l.get().Minimize() }
func (l *Lazy) Maximized() (bool, error)          { return l.get().Maximized() }
func (l *Lazy) BeginDrag() error                  { return l.get().BeginDrag() }
func (l *Lazy) FollowPointer() error              { return l.get().FollowPointer() }

// Shutdown releases native resources held by the resolved backend.
func (l *Lazy) Shutdown() {
	if l.backend == nil {
		return
	}
	if closer, ok := l.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}
