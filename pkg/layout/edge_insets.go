package layout

import (
	"math"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// EdgeInsets represents padding on four sides.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// EdgeInsetsSymmetric returns insets with equal horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// Clamped returns the insets with negative sides raised to zero.
func (e EdgeInsets) Clamped() EdgeInsets {
	return EdgeInsets{
		Top:    math.Max(e.Top, 0),
		Left:   math.Max(e.Left, 0),
		Bottom: math.Max(e.Bottom, 0),
		Right:  math.Max(e.Right, 0),
	}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Deflate shrinks rect by the insets. The result never has negative size.
func (e EdgeInsets) Deflate(rect graphics.Rect) graphics.Rect {
	left := rect.Left + e.Left
	top := rect.Top + e.Top
	right := math.Max(rect.Right-e.Right, left)
	bottom := math.Max(rect.Bottom-e.Bottom, top)
	return graphics.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}
