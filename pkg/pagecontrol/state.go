package pagecontrol

import (
	"image"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// VisualState is the interaction state an indicator is drawn in.
type VisualState int

const (
	// StateNormal is every page other than the current one.
	StateNormal VisualState = iota
	// StateSelected is the current page.
	StateSelected
)

const stateCount = 2

func (s VisualState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateSelected:
		return "selected"
	default:
		return "invalid"
	}
}

func (s VisualState) valid() bool {
	return s >= 0 && s < stateCount
}

// Default fills used when a state sets neither stroke nor fill.
var (
	DefaultNormalFill   = graphics.GrayF(0.5, 1)
	DefaultSelectedFill = graphics.GrayF(1, 1)
)

// StateAttributes are the visual overrides for one state. Zero values mean
// unset; consumers fall back to defaults.
type StateAttributes struct {
	StrokeColor graphics.ColorF
	FillColor   graphics.ColorF
	Path        *graphics.Path
	Image       image.Image
	Alpha       *float64
	Transform   *graphics.Transform
}

// stateStore holds attributes for both states. Setters report whether the
// stored value changed and call onChange only when it did.
type stateStore struct {
	attrs    [stateCount]StateAttributes
	onChange func()
}

func (s *stateStore) get(state VisualState) StateAttributes {
	if !state.valid() {
		return StateAttributes{}
	}
	return s.attrs[state]
}

func (s *stateStore) changed() bool {
	if s.onChange != nil {
		s.onChange()
	}
	return true
}

func (s *stateStore) setStrokeColor(c graphics.ColorF, state VisualState) bool {
	if !state.valid() || s.attrs[state].StrokeColor.Equal(c) {
		return false
	}
	s.attrs[state].StrokeColor = c
	return s.changed()
}

func (s *stateStore) setFillColor(c graphics.ColorF, state VisualState) bool {
	if !state.valid() || s.attrs[state].FillColor.Equal(c) {
		return false
	}
	s.attrs[state].FillColor = c
	return s.changed()
}

func (s *stateStore) setImage(img image.Image, state VisualState) bool {
	if !state.valid() || graphics.ImagesEqual(s.attrs[state].Image, img) {
		return false
	}
	s.attrs[state].Image = img
	return s.changed()
}

func (s *stateStore) setAlpha(alpha *float64, state VisualState) bool {
	if !state.valid() {
		return false
	}
	cur := s.attrs[state].Alpha
	if (cur == nil && alpha == nil) || (cur != nil && alpha != nil && *cur == *alpha) {
		return false
	}
	if alpha != nil {
		v := *alpha
		alpha = &v
	}
	s.attrs[state].Alpha = alpha
	return s.changed()
}

func (s *stateStore) setPath(p *graphics.Path, state VisualState) bool {
	if !state.valid() || s.attrs[state].Path.Equal(p) {
		return false
	}
	if p.IsEmpty() {
		p = nil
	}
	s.attrs[state].Path = p.Clone()
	return s.changed()
}

func (s *stateStore) setTransform(t *graphics.Transform, state VisualState) bool {
	if !state.valid() {
		return false
	}
	cur := s.attrs[state].Transform
	if (cur == nil && t == nil) || (cur != nil && t != nil && *cur == *t) {
		return false
	}
	if t != nil {
		v := *t
		t = &v
	}
	s.attrs[state].Transform = t
	return s.changed()
}

// resolvedStyle is a state's attributes with every fallback applied.
type resolvedStyle struct {
	shape     graphics.Shape
	size      graphics.Size
	fill      graphics.ColorF
	stroke    graphics.ColorF
	image     image.Image
	alpha     float64
	lineWidth float64
	transform graphics.Transform
}

func (s *stateStore) resolve(state VisualState, diameter float64) resolvedStyle {
	a := s.get(state)
	r := resolvedStyle{
		fill:      a.FillColor,
		stroke:    a.StrokeColor,
		image:     a.Image,
		alpha:     1,
		transform: graphics.IdentityTransform(),
	}
	if a.Alpha != nil {
		r.alpha = *a.Alpha
	}
	if a.Transform != nil {
		r.transform = *a.Transform
	}
	switch {
	case a.Image != nil:
		r.size = graphics.ImageSize(a.Image)
	case !a.Path.IsEmpty():
		r.shape = graphics.PathShape(a.Path)
		r.size = a.Path.Bounds().Size()
	default:
		r.shape = graphics.OvalShape()
		r.size = graphics.Size{Width: diameter, Height: diameter}
	}
	if !r.fill.IsSet() && !r.stroke.IsSet() {
		if state == StateSelected {
			r.fill = DefaultSelectedFill
		} else {
			r.fill = DefaultNormalFill
		}
	}
	return r
}
