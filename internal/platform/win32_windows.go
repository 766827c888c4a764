//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procShowWindow    = user32.NewProc("ShowWindow")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procGetCursorPos  = user32.NewProc("GetCursorPos")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
	procIsZoomed      = user32.NewProc("IsZoomed")
)

const (
	swMaximize = 3
	swMinimize = 6
	swRestore  = 9

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var errNoHWND = errors.New("win32: window handle is zero")

// Win32Backend drives the window through user32.
type Win32Backend struct {
	hwnd   uintptr
	anchor dragAnchor
}

var _ Backend = (*Win32Backend)(nil)

func NewWin32Backend(hwnd uintptr) (*Win32Backend, error) {
	if hwnd == 0 {
		return nil, errNoHWND
	}
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("win32: load user32: %w", err)
	}
	return &Win32Backend{hwnd: hwnd}, nil
}

func (b *Win32Backend) Name() string { return "win32" }

func (b *Win32Backend) Move(dx, dy int) error {
	x, y, err := b.position()
	if err != nil {
		return err
	}
	return b.moveTo(x+dx, y+dy)
}

func (b *Win32Backend) position() (int, int, error) {
	var rect windows.Rect
	ret, _, err := procGetWindowRect.Call(b.hwnd, uintptr(unsafe.Pointer(&rect)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("win32: GetWindowRect: %w", err)
	}
	return int(rect.Left), int(rect.Top), nil
}

func (b *Win32Backend) moveTo(x, y int) error {
	ret, _, err := procSetWindowPos.Call(
		b.hwnd,
		0,
		uintptr(x),
		uintptr(y),
		0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("win32: SetWindowPos: %w", err)
	}
	return nil
}

func (b *Win32Backend) cursor() (int, int, error) {
	var p struct{ X, Y int32 }
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("win32: GetCursorPos: %w", err)
	}
	return int(p.X), int(p.Y), nil
}

// BeginDrag anchors a drag at the current cursor and window position.
func (b *Win32Backend) BeginDrag() error {
	px, py, err := b.cursor()
	if err != nil {
		return err
	}
	wx, wy, err := b.position()
	if err != nil {
		return err
	}
	b.anchor = dragAnchor{pointerX: px, pointerY: py, windowX: wx, windowY: wy}
	return nil
}

// FollowPointer places the window so the cursor keeps its offset from the
// anchor.
func (b *Win32Backend) FollowPointer() error {
	px, py, err := b.cursor()
	if err != nil {
		return err
	}
	return b.moveTo(b.anchor.target(px, py))
}

func (b *Win32Backend) SetMaximized(maximized bool) error {
	cmd := swRestore
	if maximized {
		cmd = swMaximize
	}
	// ShowWindow returns the previous visibility, not a status.
	procShowWindow.Call(b.hwnd, uintptr(cmd))
	return nil
}

func (b *Win32Backend) Minimize() error {
	procShowWindow.Call(b.hwnd, swMinimize)
	return nil
}

func (b *Win32Backend) Maximized() (bool, error) {
	ret, _, _ := procIsZoomed.Call(b.hwnd)
	return ret != 0, nil
}
