package pagecontrol

import (
	"image"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/rendering"
)

// IndicatorState is a read-only view of one indicator as last written.
type IndicatorState struct {
	Index     int
	Frame     graphics.Rect
	Shape     graphics.Shape
	Fill      graphics.ColorF
	Stroke    graphics.ColorF
	Opacity   float64
	Transform graphics.Transform
	Image     image.Image
}

// indicatorSet owns one surface layer per page.
type indicatorSet struct {
	surface *rendering.Surface
	layers  []*rendering.Layer
}

// create replaces every layer with count fresh ones. Callers wrap it in a
// surface batch together with the update pass that follows.
func (s *indicatorSet) create(count int) {
	s.surface.RemoveAllLayers()
	s.layers = make([]*rendering.Layer, max(count, 0))
	for i := range s.layers {
		s.layers[i] = s.surface.AddLayer()
	}
}

func (s *indicatorSet) len() int {
	return len(s.layers)
}

func (s *indicatorSet) layer(i int) *rendering.Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// apply writes a state's resolved attributes to indicator i. An image
// replaces the shape and clears both colors.
func (s *indicatorSet) apply(i int, style resolvedStyle) {
	l := s.layer(i)
	if l == nil {
		return
	}
	if style.image != nil {
		l.SetShape(graphics.Shape{})
		l.SetFill(graphics.ColorF{})
		l.SetStroke(graphics.ColorF{})
		l.SetImage(style.image)
	} else {
		l.SetImage(nil)
		l.SetShape(style.shape)
		l.SetFill(style.fill)
		l.SetStroke(style.stroke)
	}
	l.SetLineWidth(style.lineWidth)
	l.SetOpacity(style.alpha)
	l.SetTransform(style.transform)
}

// place writes the geometry and colors computed by the interpolator.
// Image indicators keep their colors cleared.
func (s *indicatorSet) place(i int, geo interpolated, style resolvedStyle) {
	l := s.layer(i)
	if l == nil {
		return
	}
	s.apply(i, style)
	l.SetFrame(geo.frame)
	if style.image == nil {
		l.SetFill(geo.fill)
		l.SetStroke(geo.stroke)
	}
}

func (s *indicatorSet) states() []IndicatorState {
	out := make([]IndicatorState, len(s.layers))
	for i, l := range s.layers {
		st := l.State()
		out[i] = IndicatorState{
			Index:     i,
			Frame:     st.Frame,
			Shape:     st.Shape,
			Fill:      st.Fill,
			Stroke:    st.Stroke,
			Opacity:   st.Opacity,
			Transform: st.Transform,
			Image:     st.Image,
		}
	}
	return out
}
