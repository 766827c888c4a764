package components

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mru-ui/internal/chrome"
)

func newTitleBar(t *testing.T) (*TitleBar, *[]chrome.Input) {
	t.Helper()
	test.NewTempApp(t)

	tb := NewTitleBar("MRU-UI", chrome.TitleBarHeight)
	tb.Resize(fyne.NewSize(400, chrome.TitleBarHeight))

	var inputs []chrome.Input
	tb.OnInput = func(in chrome.Input) { inputs = append(inputs, in) }
	return tb, &inputs
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestTitleBar_DoubleTapEmitsDoubleClick(t *testing.T) {
	tb, inputs := newTitleBar(t)

	tb.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(100, 12)})

	require.Len(t, *inputs, 1)
	in := (*inputs)[0]
	assert.True(t, in.DoubleClicked)
	assert.Equal(t, chrome.Point{X: 100, Y: 12}, in.Pointer)
	assert.Equal(t, chrome.NewRect(0, 0, 400, chrome.TitleBarHeight), in.Content)
}

func TestTitleBar_DragCarriesPressOrigin(t *testing.T) {
	tb, inputs := newTitleBar(t)

	tb.MouseDown(primary(100, 12))
	tb.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(110, 15)},
		Dragged:    fyne.NewDelta(10, 3),
	})
	tb.DragEnd()

	require.Len(t, *inputs, 2)

	press := (*inputs)[0]
	assert.True(t, press.PrimaryDown)
	assert.True(t, press.Pressed)
	assert.True(t, press.Delta.IsZero())

	drag := (*inputs)[1]
	assert.True(t, drag.PrimaryDown)
	assert.False(t, drag.Pressed)
	assert.Equal(t, chrome.Point{X: 100, Y: 12}, drag.PressOrigin)
	assert.Equal(t, chrome.Vec{DX: 10, DY: 3}, drag.Delta)
}

func TestTitleBar_DragWithoutPressInfersOrigin(t *testing.T) {
	tb, inputs := newTitleBar(t)

	tb.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 10)},
		Dragged:    fyne.NewDelta(5, 2),
	})

	require.Len(t, *inputs, 2)
	assert.True(t, (*inputs)[0].Pressed)
	assert.Equal(t, chrome.Point{X: 45, Y: 8}, (*inputs)[0].PressOrigin)
	assert.False(t, (*inputs)[1].Pressed)
	assert.Equal(t, chrome.Point{X: 45, Y: 8}, (*inputs)[1].PressOrigin)
}

func TestTitleBar_SecondaryButtonIgnored(t *testing.T) {
	tb, inputs := newTitleBar(t)

	tb.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 12)},
		Button:     desktop.MouseButtonSecondary,
	})

	assert.Empty(t, *inputs)
}

func TestTitleBar_HoverShowsHint(t *testing.T) {
	tb, _ := newTitleBar(t)

	// Close occupies [368, 392) on a 400 wide bar.
	tb.MouseIn(primary(380, 12))
	assert.Equal(t, chrome.ButtonClose, tb.Hovered())
	assert.Equal(t, "Close the window", tb.Hint())

	tb.MouseMoved(primary(350, 12))
	assert.Equal(t, chrome.ButtonMaximize, tb.Hovered())
	assert.Equal(t, "Maximize window", tb.Hint())

	tb.SetMaximized(true)
	assert.Equal(t, "Restore window", tb.Hint())

	tb.MouseMoved(primary(100, 12))
	assert.Equal(t, chrome.ButtonNone, tb.Hovered())
	assert.Empty(t, tb.Hint())

	tb.MouseIn(primary(330, 12))
	tb.MouseOut()
	assert.Equal(t, chrome.ButtonNone, tb.Hovered())
}

func TestTitleBar_Renderer(t *testing.T) {
	tb, _ := newTitleBar(t)
	w := test.NewWindow(tb)
	defer w.Close()
	tb.Resize(fyne.NewSize(400, chrome.TitleBarHeight))

	r := test.WidgetRenderer(tb)
	assert.Len(t, r.Objects(), 4+len(chrome.Buttons))
	assert.Equal(t, chrome.TitleBarHeight, r.MinSize().Height)

	var title *canvas.Text
	for _, o := range r.Objects() {
		if text, ok := o.(*canvas.Text); ok && text.Text == "MRU-UI" {
			title = text
		}
	}
	require.NotNil(t, title)
	assert.Equal(t, chrome.TitleTextSize, title.TextSize)
	assert.InDelta(t, 200, title.Position().X+title.Size().Width/2, 0.5)
}

func TestPanel_PadsContent(t *testing.T) {
	test.NewTempApp(t)

	label := widget.NewLabel("Center Panel")
	p := NewPanel(label)
	p.Resize(fyne.NewSize(200, 100))

	r := test.WidgetRenderer(p)
	r.Layout(p.Size())

	assert.Len(t, r.Objects(), 2)
	assert.Greater(t, label.Position().X, float32(0))
	assert.Less(t, label.Size().Width, float32(200))
	assert.Equal(t, label.MinSize().Width+2*(PanelOuterMargin+PanelStrokeWidth)+2*theme.Padding(), p.MinSize().Width)

	frame := r.Objects()[0].(*canvas.Rectangle)
	assert.Equal(t, PanelCornerRadius, frame.CornerRadius)
	assert.Equal(t, PanelStrokeWidth, frame.StrokeWidth)
}

func TestPreviewPanel_ShowsImageAtNativeSize(t *testing.T) {
	test.NewTempApp(t)

	p := NewPreviewPanel(image.NewRGBA(image.Rect(0, 0, 320, 180)))
	assert.True(t, p.HasImage())
	assert.Equal(t, fyne.NewSize(320, 180), p.image.MinSize())
}

func TestPreviewPanel_PlaceholderWithoutImage(t *testing.T) {
	test.NewTempApp(t)

	p := NewPreviewPanel(nil)
	assert.False(t, p.HasImage())
	assert.Equal(t, fyne.NewSize(PlaceholderWidth, PlaceholderHeight), p.image.MinSize())
	assert.Same(t, p.placeholder, p.image.Image)
}

func TestPlaceholderGrid_PadsShortRows(t *testing.T) {
	test.NewTempApp(t)

	grid := NewPlaceholderGrid(GridRows)
	require.Len(t, grid.Objects, 1)

	cells := grid.Objects[0].(*fyne.Container).Objects
	assert.Len(t, cells, 9)

	labels := 0
	for _, c := range cells {
		if l, ok := c.(*widget.Label); ok {
			labels++
			assert.NotEmpty(t, l.Text)
		}
	}
	assert.Equal(t, 7, labels)
	assert.Equal(t, "First row, first column", cells[0].(*widget.Label).Text)
	assert.Equal(t, "Same cell", cells[6].(*widget.Label).Text)
}

func TestPlaceholderGrid_Empty(t *testing.T) {
	test.NewTempApp(t)
	assert.Empty(t, NewPlaceholderGrid(nil).Objects)
}
