package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 20, 100, 24)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 20}, true},
		{Point{109.9, 43.9}, true},
		{Point{110, 30}, false},
		{Point{50, 44}, false},
		{Point{9.9, 30}, false},
		{Point{50, 19.9}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.p), "%v", tt.p)
	}
	assert.False(t, NewRect(0, 0, 0, 10).Contains(Point{}))
}

func TestSeparator_InsetOnBothSides(t *testing.T) {
	bar := NewRect(0, 0, 400, TitleBarHeight)
	from, to := Separator(bar)

	assert.Equal(t, Point{X: 1, Y: 24}, from)
	assert.Equal(t, Point{X: 399, Y: 24}, to)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "move(3,-4.5)", Move{DX: 3, DY: -4.5}.String())
	assert.Equal(t, "maximize", SetMaximized{Maximized: true}.String())
	assert.Equal(t, "restore", SetMaximized{}.String())
	assert.Equal(t, "close", Close{}.String())
	assert.Equal(t, "confirm_pending", CloseConfirmPending.String())
}
