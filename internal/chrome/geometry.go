package chrome

// Point is a position in content coordinates.
type Point struct {
	X, Y float32
}

// Vec is a pointer displacement between two samples.
type Vec struct {
	DX, DY float32
}

func (v Vec) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Rect is an axis aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rectangles never both claim a point.
func (r Rect) Contains(p Point) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// TopStrip returns the horizontal strip of the given height at the top of r.
// The height is clamped to r.Height.
func (r Rect) TopStrip(height float32) Rect {
	if height > r.Height {
		height = r.Height
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: height}
}

// Separator returns the end points of the line drawn under the title bar:
// the bottom edge of bar inset by one unit on each side.
func Separator(bar Rect) (Point, Point) {
	y := bar.Y + bar.Height
	return Point{X: bar.X + SeparatorInset, Y: y}, Point{X: bar.X + bar.Width - SeparatorInset, Y: y}
}
