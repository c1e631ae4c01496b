package pagecontrol

import (
	"github.com/go-drift/pagecontrol/pkg/animation"
	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

// scrollStep is the scroll position split into the page it is on and how
// far it has travelled toward the next one.
type scrollStep struct {
	index int
	rate  float64
}

// interpolated is the geometry and color computed for one indicator.
type interpolated struct {
	frame  graphics.Rect
	fill   graphics.ColorF
	stroke graphics.ColorF
	// state is the state whose non-interpolated attributes (shape, image,
	// opacity, transform) the indicator shows.
	state VisualState
}

// interpolate computes every indicator for a scroll step.
//
// Indicator index shrinks from selected toward normal as rate goes to 1 and
// index+1 grows toward selected; both blend their colors the same way.
// Every other indicator rests at normal size and color. Positions run left
// to right from the alignment origin, each indicator starting spacing after
// its predecessor's right edge, so the pair's size change pushes the rest
// of the row along.
func interpolate(row rowLayout, step scrollStep, normal, selected resolvedStyle) []interpolated {
	if row.count <= 0 {
		return nil
	}
	out := make([]interpolated, row.count)
	midY := row.content.Center().Y
	x := row.startX()
	for i := range out {
		var size graphics.Size
		cur := interpolated{
			fill:   normal.fill,
			stroke: normal.stroke,
			state:  StateNormal,
		}
		switch i {
		case step.index:
			t := 1 - step.rate
			size = animation.LerpSize(normal.size, selected.size, t)
			cur.fill = blendStates(selected.fill, normal.fill, t)
			cur.stroke = blendStates(selected.stroke, normal.stroke, t)
			if step.rate < 0.5 {
				cur.state = StateSelected
			}
		case step.index + 1:
			t := step.rate
			size = animation.LerpSize(normal.size, selected.size, t)
			cur.fill = blendStates(selected.fill, normal.fill, t)
			cur.stroke = blendStates(selected.stroke, normal.stroke, t)
			if step.rate >= 0.5 {
				cur.state = StateSelected
			}
		default:
			size = normal.size
		}
		cur.frame = graphics.RectFromLTWH(x, midY-size.Height/2, size.Width, size.Height)
		out[i] = cur
		x = cur.frame.Right + row.spacing
	}
	return out
}

// blendStates mixes a selected and a normal color at t, where t 0 is
// exactly normal and t 1 exactly selected, unset included. In between an
// unset side blends as transparent black in the other side's space.
func blendStates(selected, normal graphics.ColorF, t float64) graphics.ColorF {
	switch {
	case t <= 0:
		return normal
	case t >= 1:
		return selected
	case !selected.IsSet() && !normal.IsSet():
		return graphics.ColorF{}
	}
	return animation.LerpColor(transparentLike(normal, selected), transparentLike(selected, normal), t)
}

// transparentLike returns c, or transparent black in other's space when c
// is unset.
func transparentLike(c, other graphics.ColorF) graphics.ColorF {
	if c.IsSet() {
		return c
	}
	if other.Space == graphics.ColorSpaceGray {
		return graphics.GrayF(0, 0)
	}
	return graphics.RGBF(0, 0, 0, 0)
}

// stepFor turns scroll metrics into a step clamped to count indicators.
// Offsets outside the row pin to the first or last page with rate 0.
func stepFor(m scroll.Metrics, count int) (scrollStep, bool) {
	index, rate, ok := m.Position()
	if !ok {
		return scrollStep{}, false
	}
	if count <= 0 {
		return scrollStep{index: max(index, 0), rate: rate}, true
	}
	if index < 0 {
		return scrollStep{index: 0}, true
	}
	if index >= count {
		return scrollStep{index: count - 1}, true
	}
	return scrollStep{index: index, rate: rate}, true
}
