//go:build windows

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
)

func newNativeBackend(ctx any) (Backend, error) {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return NewWin32Backend(c.HWND)
	default:
		return nil, fmt.Errorf("%w: native context %T", ErrUnsupported, ctx)
	}
}
