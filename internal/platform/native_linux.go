//go:build linux

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
)

func newNativeBackend(ctx any) (Backend, error) {
	switch c := ctx.(type) {
	case driver.X11WindowContext:
		return NewX11Backend(c.WindowHandle)
	default:
		// Wayland surfaces cannot be moved by the client.
		return nil, fmt.Errorf("%w: native context %T", ErrUnsupported, ctx)
	}
}
