package gui

import (
	"errors"
	"image"
	"image/color"
	"math"

	"mru-ui/internal/chrome"
	"mru-ui/internal/gui/components"
	"mru-ui/internal/logger"
	"mru-ui/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	CenterPanelText    = "Center Panel"
	ConfirmCloseTitle  = "Are you sure you want to quit?"
	ConfirmCloseAccept = "Yes!"
	ConfirmCloseCancel = "Cancel"
)

// Options configures the window chrome.
type Options struct {
	Title          string
	TitleBarHeight float32
	MinSize        fyne.Size
	Runtime        chrome.Options

	// Decorated reports whether the window carries a system frame.
	Decorated bool
}

// Manager owns the window content and executes the commands produced by the
// title bar controller. All methods must run on the UI goroutine.
type Manager struct {
	window     fyne.Window
	backend    platform.Backend
	logger     logger.Logger
	controller *chrome.Controller
	state      chrome.State
	drag       dragState
	isShutdown bool
	closing    bool

	titleBar *components.TitleBar
	preview  *components.PreviewPanel
	grid     *fyne.Container
	content  *fyne.Container

	confirm *dialog.ConfirmDialog
}

func NewManager(window fyne.Window, backend platform.Backend, img image.Image, opts Options, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}

	controller := chrome.NewController(opts.Title, opts.TitleBarHeight, opts.Runtime)

	m := &Manager{
		window:     window,
		backend:    backend,
		logger:     log,
		controller: controller,
		state:      chrome.State{Decorated: opts.Decorated},
		titleBar:   components.NewTitleBar(controller.Title, controller.Height),
		preview:    components.NewPreviewPanel(img),
		grid:       components.NewPlaceholderGrid(components.GridRows),
	}
	m.titleBar.OnInput = m.HandleInput
	m.buildLayout(opts.MinSize)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"title":            controller.Title,
		"title_bar_height": controller.Height,
		"decorated":        opts.Decorated,
	})

	return m
}

func (m *Manager) buildLayout(minSize fyne.Size) {
	floor := canvas.NewRectangle(color.Transparent)
	floor.SetMinSize(minSize)

	center := container.NewVBox(widget.NewLabel(CenterPanelText))

	body := container.NewBorder(
		components.NewPanel(m.titleBar),
		nil,
		components.NewPanel(m.grid),
		components.NewPanel(m.preview.Container()),
		components.NewPanel(center),
	)

	m.content = container.NewStack(floor, body)
}

// GetMainContainer returns the window content
func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

func (m *Manager) TitleBar() *components.TitleBar {
	return m.titleBar
}

func (m *Manager) Preview() *components.PreviewPanel {
	return m.preview
}

// State returns a copy of the current chrome state
func (m *Manager) State() chrome.State {
	return m.state
}

// dragState describes the press in progress.
type dragState struct {
	// following is set when the backend places the window from the global
	// pointer; otherwise drags are executed as relative moves.
	following bool
}

// HandleInput runs one frame of title bar input through the controller.
func (m *Manager) HandleInput(in chrome.Input) {
	if m.isShutdown {
		return
	}

	if in.Pressed {
		m.beginPress(in)
	}

	// Title bar positions are relative to the window being dragged, so the
	// pointer's offset from the press is what the window still has to move.
	m.Dispatch(m.controller.Update(&m.state, in.Anchored()))
}

func (m *Manager) beginPress(in chrome.Input) {
	m.drag = dragState{}

	// A fresh press resynchronises with the window manager, which may have
	// maximized or restored the window behind our back.
	m.syncState()

	if !m.controller.Layout(in.Content).Draggable(in.PressOrigin) {
		return
	}
	err := m.backend.BeginDrag()
	m.drag.following = err == nil
	if err != nil && !errors.Is(err, platform.ErrUnsupported) {
		m.logger.Warning("GUIManager", "pointer tracking unavailable, dragging by offset", map[string]interface{}{
			"backend": m.backend.Name(),
			"error":   err.Error(),
		})
	}
}

func (m *Manager) syncState() {
	maximized, err := m.backend.Maximized()
	if err != nil {
		return
	}
	m.state.Observe(maximized, false)
	m.titleBar.SetMaximized(maximized)
}

// RequestClose routes a close request from the window manager or the
// close button through the close gate.
func (m *Manager) RequestClose() {
	m.logger.Debug("GUIManager", "close requested", map[string]interface{}{
		"phase": m.state.Close.Phase().String(),
	})
	m.Dispatch(m.controller.RequestClose(&m.state))
}

// ForceClose closes the window without consulting the close gate.
func (m *Manager) ForceClose() {
	m.closeWindow()
}

// Dispatch executes commands in order.
func (m *Manager) Dispatch(commands []chrome.Command) {
	for _, cmd := range commands {
		m.execute(cmd)
	}
}

func (m *Manager) execute(cmd chrome.Command) {
	var err error

	switch c := cmd.(type) {
	case chrome.Move:
		if m.drag.following {
			err = m.backend.FollowPointer()
			break
		}
		scale := m.canvasScale()
		dx, dy := toPixels(c.DX, scale), toPixels(c.DY, scale)
		if dx == 0 && dy == 0 {
			return
		}
		err = m.backend.Move(dx, dy)
	case chrome.SetMaximized:
		m.titleBar.SetMaximized(c.Maximized)
		err = m.backend.SetMaximized(c.Maximized)
	case chrome.Minimize:
		err = m.backend.Minimize()
	case chrome.ConfirmClose:
		m.showConfirm()
	case chrome.Close:
		m.closeWindow()
	}

	m.report(cmd, err)
}

func (m *Manager) report(cmd chrome.Command, err error) {
	fields := map[string]interface{}{
		"command": cmd.String(),
		"backend": m.backend.Name(),
	}

	switch {
	case err == nil:
		if _, isMove := cmd.(chrome.Move); !isMove {
			m.logger.Debug("GUIManager", "command executed", fields)
		}
	case errors.Is(err, platform.ErrUnsupported):
		m.logger.Debug("GUIManager", "command not supported by backend", fields)
	default:
		m.logger.Error("GUIManager", err, fields)
	}
}

func (m *Manager) canvasScale() float32 {
	if c := m.window.Canvas(); c != nil {
		if s := c.Scale(); s > 0 {
			return s
		}
	}
	return 1
}

func (m *Manager) showConfirm() {
	if m.confirm != nil {
		return
	}

	m.confirm = dialog.NewConfirm(ConfirmCloseTitle, "", m.resolveConfirm, m.window)
	m.confirm.SetConfirmText(ConfirmCloseAccept)
	m.confirm.SetDismissText(ConfirmCloseCancel)
	m.confirm.Show()
}

func (m *Manager) resolveConfirm(accepted bool) {
	m.confirm = nil
	m.logger.Info("GUIManager", "close confirmation resolved", map[string]interface{}{
		"accepted": accepted,
	})
	m.Dispatch(m.controller.Confirm(&m.state, accepted))
}

func (m *Manager) closeWindow() {
	if m.closing {
		return
	}
	m.closing = true

	m.logger.Info("GUIManager", "closing window", nil)
	m.window.Close()
}

// Closing reports whether the window has been asked to close.
func (m *Manager) Closing() bool {
	return m.closing
}

// OptionsChanged refreshes anything derived from runtime options.
func (m *Manager) OptionsChanged() {
	m.logger.Debug("GUIManager", "options changed", map[string]interface{}{
		"confirm_close": m.controller.Options.ConfirmClose(),
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

// toPixels converts canvas units to whole device pixels. Drags are issued
// as offsets from the press, so a rounded away fraction is still part of the
// next frame's offset.
func toPixels(v, scale float32) int {
	return int(math.Round(float64(v * scale)))
}
