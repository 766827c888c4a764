package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPress_StartsAtPointer(t *testing.T) {
	in := Press(content, titlePoint)

	assert.True(t, in.PrimaryDown)
	assert.True(t, in.Pressed)
	assert.Equal(t, titlePoint, in.PressOrigin)
	assert.True(t, in.Delta.IsZero())

	var state State
	assert.Empty(t, newTestController(false).Update(&state, in))
}

func TestInput_Anchored(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Vec
	}{
		{
			name: "offset from press replaces frame delta",
			in:   Drag(content, titlePoint, Point{X: 110, Y: 7}, Vec{DX: 1, DY: 1}),
			want: Vec{DX: 10, DY: -3},
		},
		{
			name: "window caught up with the pointer",
			in:   Drag(content, titlePoint, titlePoint, Vec{DX: 10}),
			want: Vec{},
		},
		{
			name: "press frame untouched",
			in:   Press(content, titlePoint),
			want: Vec{},
		},
		{
			name: "released keeps frame delta",
			in:   Input{Content: content, Pointer: Point{X: 150, Y: 10}, PressOrigin: titlePoint, Delta: Vec{DX: 4}},
			want: Vec{DX: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Anchored().Delta)
		})
	}
}

// A window that follows the pointer reports every later position relative
// to where it has already moved. Anchored offsets still add up to the full
// pointer travel.
func TestInput_AnchoredFollowsMovingWindow(t *testing.T) {
	c := newTestController(false)
	var state State

	window := float32(100)
	screen := window + titlePoint.X
	c.Update(&state, Press(content, titlePoint))

	for i := 0; i < 10; i++ {
		screen += 10
		p := Point{X: screen - window, Y: titlePoint.Y}
		cmds := c.Update(&state, Drag(content, titlePoint, p, Vec{DX: p.X - titlePoint.X}).Anchored())
		for _, cmd := range cmds {
			window += cmd.(Move).DX
		}
	}

	assert.Equal(t, float32(200), window)
}
