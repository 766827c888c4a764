package platform

import "fyne.io/fyne/v2"

// FyneBackend maps what it can onto the portable fyne.Window API. Fyne has
// no notion of a window position or of iconifying, so those report
// ErrUnsupported; maximizing becomes full screen.
type FyneBackend struct {
	window fyne.Window
}

var _ Backend = (*FyneBackend)(nil)

func NewFyneBackend(w fyne.Window) *FyneBackend {
	return &FyneBackend{window: w}
}

func (b *FyneBackend) Name() string { return "fyne" }

func (b *FyneBackend) Move(dx, dy int) error { return ErrUnsupported }

func (b *FyneBackend) SetMaximized(maximized bool) error {
	b.window.SetFullScreen(maximized)
	return nil
}

func (b *FyneBackend) Minimize() error { return ErrUnsupported }

func (b *FyneBackend) BeginDrag() error { return ErrUnsupported }

func (b *FyneBackend) FollowPointer() error { return ErrUnsupported }

func (b *FyneBackend) Maximized() (bool, error) {
	return b.window.FullScreen(), nil
}
