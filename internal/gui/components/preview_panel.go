package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	PlaceholderWidth  = 480
	PlaceholderHeight = 270
)

// PreviewPanel shows a single image at its native size, anchored to the
// top right corner of the panel.
type PreviewPanel struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder image.Image

	hasImage bool
}

// NewPreviewPanel creates a preview panel for img. A nil image shows a
// neutral placeholder instead.
func NewPreviewPanel(img image.Image) *PreviewPanel {
	p := &PreviewPanel{placeholder: createPlaceholderImage(PlaceholderWidth, PlaceholderHeight)}
	p.image = canvas.NewImageFromImage(p.placeholder)
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScaleSmooth

	p.container = container.NewVBox(
		container.NewHBox(layout.NewSpacer(), p.image),
	)
	p.setImage(img)
	return p
}

// createPlaceholderImage draws a flat gray image with a one pixel border
func createPlaceholderImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	fill := color.RGBA{R: 48, G: 48, B: 48, A: 255}
	border := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.Set(x, y, border)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

// Container returns the panel content
func (p *PreviewPanel) Container() fyne.CanvasObject {
	return p.container
}

func (p *PreviewPanel) setImage(img image.Image) {
	if img == nil {
		img = p.placeholder
		p.hasImage = false
	} else {
		p.hasImage = true
	}

	p.image.Image = img
	bounds := img.Bounds()
	p.image.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
}

// HasImage reports whether a real image, not the placeholder, is shown
func (p *PreviewPanel) HasImage() bool {
	return p.hasImage
}
