//go:build linux

package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const (
	stateRemove = 0
	stateAdd    = 1

	maximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"
	maximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"

	iconicState = 3
)

var errNoWindow = errors.New("x11: window handle is zero")

// Rect is a window rectangle in root window pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// X11Backend drives an X11 client window through EWMH requests, which the
// window manager honours even though the window carries no decorations.
type X11Backend struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	window xproto.Window
	anchor dragAnchor

	closeOnce sync.Once
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend opens a dedicated X connection for the window with the
// given id. The GUI toolkit keeps its own connection; sharing it would mean
// interleaving requests with the toolkit's event loop.
func NewX11Backend(window uintptr) (*X11Backend, error) {
	if window == 0 {
		return nil, errNoWindow
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	return &X11Backend{
		xu:     xu,
		root:   xu.RootWin(),
		window: xproto.Window(window),
	}, nil
}

func (b *X11Backend) Name() string { return "x11" }

// Close disconnects from the X server.
func (b *X11Backend) Close() {
	b.closeOnce.Do(func() {
		b.xu.Conn().Close()
	})
}

// Move translates the window by the given pixel offset.
func (b *X11Backend) Move(dx, dy int) error {
	rect, err := b.Geometry()
	if err != nil {
		return err
	}

	b.moveTo(rect, rect.X+dx, rect.Y+dy)
	return nil
}

func (b *X11Backend) moveTo(rect Rect, x, y int) {
	if err := ewmh.MoveresizeWindow(b.xu, b.window, x, y, rect.Width, rect.Height); err != nil {
		// Fall back to a plain configure request when the window manager
		// does not support _NET_MOVERESIZE_WINDOW.
		xwindow.New(b.xu, b.window).Move(x, y)
	}
}

// pointer returns the pointer position on the root window.
func (b *X11Backend) pointer() (int, int, error) {
	reply, err := xproto.QueryPointer(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11: query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// BeginDrag anchors a drag at the current pointer and window position.
func (b *X11Backend) BeginDrag() error {
	px, py, err := b.pointer()
	if err != nil {
		return err
	}
	rect, err := b.Geometry()
	if err != nil {
		return err
	}
	b.anchor = dragAnchor{pointerX: px, pointerY: py, windowX: rect.X, windowY: rect.Y}
	return nil
}

// FollowPointer places the window so the pointer keeps its offset from the
// anchor. The target is absolute, so requests the window manager has not
// applied yet are not counted twice.
func (b *X11Backend) FollowPointer() error {
	px, py, err := b.pointer()
	if err != nil {
		return err
	}
	rect, err := b.Geometry()
	if err != nil {
		return err
	}
	x, y := b.anchor.target(px, py)
	b.moveTo(rect, x, y)
	return nil
}

func (b *X11Backend) SetMaximized(maximized bool) error {
	action := stateRemove
	if maximized {
		action = stateAdd
	}

	if err := ewmh.WmStateReq(b.xu, b.window, action, maximizedVert); err != nil {
		return fmt.Errorf("x11: %s request failed: %w", maximizedVert, err)
	}
	if err := ewmh.WmStateReq(b.xu, b.window, action, maximizedHorz); err != nil {
		return fmt.Errorf("x11: %s request failed: %w", maximizedHorz, err)
	}
	return nil
}

// Minimize iconifies the window via WM_CHANGE_STATE.
func (b *X11Backend) Minimize() error {
	reply, err := xproto.InternAtom(b.xu.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: b.window,
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		b.xu.Conn(),
		false,
		b.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Maximized reports whether the window manager lists both maximized states.
func (b *X11Backend) Maximized() (bool, error) {
	states, err := ewmh.WmStateGet(b.xu, b.window)
	if err != nil {
		return false, err
	}

	var vert, horz bool
	for _, state := range states {
		switch state {
		case maximizedVert:
			vert = true
		case maximizedHorz:
			horz = true
		}
	}
	return vert && horz, nil
}

// Geometry returns the window rectangle in root coordinates.
func (b *X11Backend) Geometry() (Rect, error) {
	geom, err := xproto.GetGeometry(b.xu.Conn(), xproto.Drawable(b.window)).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("x11: get geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(b.xu.Conn(), b.window, b.root, 0, 0).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("x11: translate coordinates: %w", err)
	}

	return Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}
