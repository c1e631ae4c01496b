package pagecontrol

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// HorizontalAlignment positions the row of indicators inside the content
// rect.
type HorizontalAlignment int

const (
	AlignCenter HorizontalAlignment = iota
	AlignLeading
	AlignTrailing
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	default:
		return "center"
	}
}

// ParseAlignment converts "leading", "center" or "trailing".
func ParseAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left":
		return AlignLeading, nil
	case "", "center", "centre":
		return AlignCenter, nil
	case "trailing", "right":
		return AlignTrailing, nil
	default:
		return AlignCenter, fmt.Errorf("unknown alignment %q", s)
	}
}

// rowLayout is everything the layout engine needs to place a row.
type rowLayout struct {
	count     int
	diameter  float64
	spacing   float64
	content   graphics.Rect
	alignment HorizontalAlignment
	current   int
	normal    graphics.Size
	selected  graphics.Size
}

// startX returns the x of the first indicator.
//
// The center and trailing formulas count every indicator as diameter wide
// and add half the widest natural size; the floor divisions on count are
// part of the contract.
func (l rowLayout) startX() float64 {
	addingWidth := math.Max(l.normal.Width, l.selected.Width) / 2
	n := float64(l.count)
	switch l.alignment {
	case AlignLeading:
		return l.content.Left
	case AlignTrailing:
		return l.content.Right - (l.diameter*n + l.spacing*(n-1) + addingWidth)
	default:
		half := float64(l.count / 2)
		gaps := float64(max(l.count-1, 0) / 2)
		return l.content.Center().X - (half*l.diameter + l.spacing*gaps + addingWidth)
	}
}

// sizeAt returns the resting size of indicator i.
func (l rowLayout) sizeAt(i int) graphics.Size {
	if i == l.current {
		return l.selected
	}
	return l.normal
}

// frames lays the row out left to right: each indicator is vertically
// centered and the next starts spacing after the previous one's right edge.
func (l rowLayout) frames() []graphics.Rect {
	if l.count <= 0 {
		return nil
	}
	out := make([]graphics.Rect, l.count)
	midY := l.content.Center().Y
	x := l.startX()
	for i := range out {
		size := l.sizeAt(i)
		out[i] = graphics.RectFromLTWH(x, midY-size.Height/2, size.Width, size.Height)
		x += l.spacing + size.Width
	}
	return out
}
