package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ColorNamePanel is the fill of a panel frame. Themes that render a
// transparent window background map it to an opaque colour.
const ColorNamePanel fyne.ThemeColorName = "panel"

const (
	PanelCornerRadius float32 = 10
	PanelStrokeWidth  float32 = 1
	PanelOuterMargin  float32 = 0.5
)

// Panel draws a rounded, stroked frame behind its content.
type Panel struct {
	widget.BaseWidget

	Content fyne.CanvasObject
}

func NewPanel(content fyne.CanvasObject) *Panel {
	p := &Panel{Content: content}
	p.ExtendBaseWidget(p)
	return p
}

func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	frame := canvas.NewRectangle(theme.Color(ColorNamePanel))
	frame.CornerRadius = PanelCornerRadius
	frame.StrokeWidth = PanelStrokeWidth
	frame.StrokeColor = theme.Color(theme.ColorNameForeground)

	return &panelRenderer{panel: p, frame: frame}
}

type panelRenderer struct {
	panel *Panel
	frame *canvas.Rectangle
}

func (r *panelRenderer) padding() float32 {
	return PanelOuterMargin + PanelStrokeWidth + theme.Padding()
}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.frame.Move(fyne.NewPos(PanelOuterMargin, PanelOuterMargin))
	r.frame.Resize(size.SubtractWidthHeight(2*PanelOuterMargin, 2*PanelOuterMargin))

	if r.panel.Content == nil {
		return
	}
	pad := r.padding()
	r.panel.Content.Move(fyne.NewPos(pad, pad))
	r.panel.Content.Resize(size.SubtractWidthHeight(2*pad, 2*pad))
}

func (r *panelRenderer) MinSize() fyne.Size {
	pad := 2 * r.padding()
	if r.panel.Content == nil {
		return fyne.NewSize(pad, pad)
	}
	return r.panel.Content.MinSize().AddWidthHeight(pad, pad)
}

func (r *panelRenderer) Refresh() {
	r.frame.FillColor = theme.Color(ColorNamePanel)
	r.frame.StrokeColor = theme.Color(theme.ColorNameForeground)
	r.frame.Refresh()
	if r.panel.Content != nil {
		r.panel.Content.Refresh()
	}
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	if r.panel.Content == nil {
		return []fyne.CanvasObject{r.frame}
	}
	return []fyne.CanvasObject{r.frame, r.panel.Content}
}

func (r *panelRenderer) Destroy() {}
