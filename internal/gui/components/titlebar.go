package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mru-ui/internal/chrome"
)

const HintTextSize float32 = 12

// TitleBar draws the window title, the separator and the control buttons,
// and samples pointer events into chrome.Input snapshots. It makes no
// decisions itself: every snapshot goes to OnInput.
type TitleBar struct {
	widget.BaseWidget

	// OnInput receives one snapshot per pointer event.
	OnInput func(chrome.Input)

	title     string
	height    float32
	maximized bool
	hovered   chrome.Button

	pressed bool
	origin  chrome.Point
}

var (
	_ fyne.Tappable       = (*TitleBar)(nil)
	_ fyne.DoubleTappable = (*TitleBar)(nil)
	_ fyne.Draggable      = (*TitleBar)(nil)
	_ desktop.Mouseable   = (*TitleBar)(nil)
	_ desktop.Hoverable   = (*TitleBar)(nil)
)

func NewTitleBar(title string, height float32) *TitleBar {
	if height <= 0 {
		height = chrome.TitleBarHeight
	}
	t := &TitleBar{title: title, height: height}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TitleBar) Title() string { return t.title }

// SetMaximized switches the maximize button between its maximize and
// restore appearance.
func (t *TitleBar) SetMaximized(maximized bool) {
	if t.maximized == maximized {
		return
	}
	t.maximized = maximized
	t.Refresh()
}

func (t *TitleBar) Maximized() bool { return t.maximized }

// Hovered returns the control button under the pointer.
func (t *TitleBar) Hovered() chrome.Button { return t.hovered }

// Hint returns the tooltip currently shown, if any.
func (t *TitleBar) Hint() string { return t.hovered.Hint(t.maximized) }

func (t *TitleBar) bounds() chrome.Rect {
	size := t.Size()
	return chrome.NewRect(0, 0, size.Width, size.Height)
}

func (t *TitleBar) layout() chrome.Layout {
	return chrome.NewLayout(t.bounds(), t.height)
}

func (t *TitleBar) emit(in chrome.Input) {
	if t.OnInput != nil {
		t.OnInput(in)
	}
}

func toPoint(p fyne.Position) chrome.Point {
	return chrome.Point{X: p.X, Y: p.Y}
}

func (t *TitleBar) Tapped(ev *fyne.PointEvent) {
	t.emit(chrome.Click(t.bounds(), toPoint(ev.Position)))
}

func (t *TitleBar) DoubleTapped(ev *fyne.PointEvent) {
	t.emit(chrome.DoubleClick(t.bounds(), toPoint(ev.Position)))
}

func (t *TitleBar) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	t.pressed = true
	t.origin = toPoint(ev.Position)
	t.emit(chrome.Press(t.bounds(), t.origin))
}

func (t *TitleBar) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		t.pressed = false
	}
}

func (t *TitleBar) Dragged(ev *fyne.DragEvent) {
	p := toPoint(ev.Position)
	delta := chrome.Vec{DX: ev.Dragged.DX, DY: ev.Dragged.DY}

	// Touch input drags without a preceding MouseDown.
	if !t.pressed {
		t.pressed = true
		t.origin = chrome.Point{X: p.X - delta.DX, Y: p.Y - delta.DY}
		t.emit(chrome.Press(t.bounds(), t.origin))
	}

	t.emit(chrome.Drag(t.bounds(), t.origin, p, delta))
}

func (t *TitleBar) DragEnd() {
	t.pressed = false
}

func (t *TitleBar) MouseIn(ev *desktop.MouseEvent) {
	t.hover(ev.Position)
}

func (t *TitleBar) MouseMoved(ev *desktop.MouseEvent) {
	t.hover(ev.Position)
}

func (t *TitleBar) MouseOut() {
	t.setHovered(chrome.ButtonNone)
}

func (t *TitleBar) hover(p fyne.Position) {
	t.setHovered(t.layout().ButtonAt(toPoint(p)))
}

func (t *TitleBar) setHovered(b chrome.Button) {
	if t.hovered == b {
		return
	}
	t.hovered = b
	t.Refresh()
}

func (t *TitleBar) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(t.title, theme.Color(theme.ColorNameForeground))
	title.TextSize = chrome.TitleTextSize
	title.Alignment = fyne.TextAlignCenter

	hint := canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder))
	hint.TextSize = HintTextSize

	separator := canvas.NewLine(theme.Color(theme.ColorNameSeparator))
	separator.StrokeWidth = chrome.SeparatorWidth

	highlight := canvas.NewRectangle(theme.Color(theme.ColorNameHover))
	highlight.Hide()

	icons := make(map[chrome.Button]*canvas.Image, len(chrome.Buttons))
	for _, b := range chrome.Buttons {
		img := canvas.NewImageFromResource(buttonIcon(b, t.maximized))
		img.FillMode = canvas.ImageFillContain
		icons[b] = img
	}

	r := &titleBarRenderer{
		bar:       t,
		title:     title,
		hint:      hint,
		separator: separator,
		highlight: highlight,
		icons:     icons,
	}
	r.objects = []fyne.CanvasObject{highlight, title, hint, separator}
	for _, b := range chrome.Buttons {
		r.objects = append(r.objects, icons[b])
	}
	r.Refresh()
	return r
}

func buttonIcon(b chrome.Button, maximized bool) fyne.Resource {
	switch b {
	case chrome.ButtonClose:
		return theme.WindowCloseIcon()
	case chrome.ButtonMaximize:
		if maximized {
			return theme.ViewRestoreIcon()
		}
		return theme.WindowMaximizeIcon()
	case chrome.ButtonMinimize:
		return theme.WindowMinimizeIcon()
	default:
		return nil
	}
}

type titleBarRenderer struct {
	bar       *TitleBar
	title     *canvas.Text
	hint      *canvas.Text
	separator *canvas.Line
	highlight *canvas.Rectangle
	icons     map[chrome.Button]*canvas.Image
	objects   []fyne.CanvasObject
}

func (r *titleBarRenderer) Layout(size fyne.Size) {
	l := chrome.NewLayout(chrome.NewRect(0, 0, size.Width, size.Height), r.bar.height)

	center := l.Bar.Center()
	titleSize := r.title.MinSize()
	r.title.Resize(titleSize)
	r.title.Move(fyne.NewPos(center.X-titleSize.Width/2, center.Y-titleSize.Height/2))

	hintSize := r.hint.MinSize()
	r.hint.Resize(hintSize)
	r.hint.Move(fyne.NewPos(l.Bar.X+chrome.ButtonMargin, center.Y-hintSize.Height/2))

	from, to := chrome.Separator(l.Bar)
	y := from.Y - chrome.SeparatorWidth/2
	r.separator.Position1 = fyne.NewPos(from.X, y)
	r.separator.Position2 = fyne.NewPos(to.X, y)

	glyph := fyne.NewSquareSize(chrome.ButtonGlyphSize)
	for b, img := range r.icons {
		c := l.ButtonRect(b).Center()
		img.Resize(glyph)
		img.Move(fyne.NewPos(c.X-glyph.Width/2, c.Y-glyph.Height/2))
	}

	if hovered := r.bar.hovered; hovered != chrome.ButtonNone {
		rect := l.ButtonRect(hovered)
		r.highlight.Resize(fyne.NewSize(rect.Width, rect.Height))
		r.highlight.Move(fyne.NewPos(rect.X, rect.Y))
	}
}

func (r *titleBarRenderer) MinSize() fyne.Size {
	buttons := float32(len(chrome.Buttons))*chrome.ButtonWidth + chrome.ButtonMargin
	return fyne.NewSize(r.title.MinSize().Width+2*buttons, r.bar.height)
}

func (r *titleBarRenderer) Refresh() {
	r.title.Text = r.bar.title
	r.title.Color = theme.Color(theme.ColorNameForeground)
	r.hint.Text = r.bar.Hint()
	r.hint.Color = theme.Color(theme.ColorNamePlaceHolder)
	r.separator.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.highlight.FillColor = theme.Color(theme.ColorNameHover)

	if r.bar.hovered == chrome.ButtonNone {
		r.highlight.Hide()
	} else {
		r.highlight.Show()
	}

	for b, img := range r.icons {
		img.Resource = buttonIcon(b, r.bar.maximized)
		img.Refresh()
	}

	r.Layout(r.bar.Size())
	for _, o := range []fyne.CanvasObject{r.title, r.hint, r.separator, r.highlight} {
		o.Refresh()
	}
}

func (r *titleBarRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *titleBarRenderer) Destroy() {}
