// Package preview decodes the preview image that ships inside the binary.
package preview

import (
	_ "embed"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

//go:embed assets/preview.png
var embedded []byte

var ErrEmptyImage = errors.New("preview: decoded image is empty")

// Bytes returns the embedded preview image as stored in the binary.
func Bytes() []byte {
	return embedded
}

// Load decodes data and shrinks it to at most maxWidth pixels wide, keeping
// the aspect ratio. A maxWidth of zero or less keeps the native size.
func Load(data []byte, maxWidth int) (image.Image, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, fmt.Errorf("preview: decode: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, ErrEmptyImage
	}

	if maxWidth <= 0 || mat.Cols() <= maxWidth {
		return toImage(mat)
	}

	scale := float64(maxWidth) / float64(mat.Cols())
	height := int(float64(mat.Rows())*scale + 0.5)
	if height < 1 {
		height = 1
	}

	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(mat, &resized, image.Point{X: maxWidth, Y: height}, 0, 0, gocv.InterpolationArea)
	return toImage(resized)
}

func toImage(mat gocv.Mat) (image.Image, error) {
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("preview: convert: %w", err)
	}
	return img, nil
}

// MustLoad decodes the embedded preview. The bytes are fixed at build time,
// so a failure here is a packaging bug rather than a runtime condition.
func MustLoad(maxWidth int) image.Image {
	img, err := Load(Bytes(), maxWidth)
	if err != nil {
		panic(fmt.Sprintf("embedded preview image could not be decoded: %v", err))
	}
	return img
}
