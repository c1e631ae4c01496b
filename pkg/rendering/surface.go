// Package rendering is the boundary between indicator logic and whatever
// paints pixels.
//
// A [Surface] owns an ordered list of [Layer] handles. Layer mutations are
// grouped with [Surface.Batch]; observers only ever see whole committed
// [Frame] values, never an intermediate state.
package rendering

import (
	"image"
	"slices"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// LayerState is the plain-data description of one layer.
type LayerState struct {
	Frame     graphics.Rect
	Shape     graphics.Shape
	Fill      graphics.ColorF // unset means no fill
	Stroke    graphics.ColorF // unset means no stroke
	LineWidth float64
	Opacity   float64
	Transform graphics.Transform // applied around the frame center
	Image     image.Image        // when set, drawn instead of the shape
}

// DefaultLayerState returns a visible, untransformed, empty layer.
func DefaultLayerState() LayerState {
	return LayerState{
		LineWidth: 1,
		Opacity:   1,
		Transform: graphics.IdentityTransform(),
	}
}

// Frame is a committed snapshot of a surface.
type Frame struct {
	Bounds graphics.Rect
	Hidden bool
	Layers []LayerState
}

// Layer is a handle to one layer on a surface. Handles of removed layers
// ignore writes.
type Layer struct {
	surface *Surface
	state   LayerState
}

// State returns the layer's current, possibly uncommitted, state.
func (l *Layer) State() LayerState {
	return l.state
}

// Attached reports whether the layer still belongs to a surface.
func (l *Layer) Attached() bool {
	return l.surface != nil
}

func (l *Layer) update(fn func(s *LayerState)) {
	if l.surface == nil {
		return
	}
	fn(&l.state)
	l.surface.markDirty()
}

// SetFrame sets the layer's frame.
func (l *Layer) SetFrame(r graphics.Rect) {
	l.update(func(s *LayerState) { s.Frame = r })
}

// SetShape sets the outline drawn in the frame.
func (l *Layer) SetShape(shape graphics.Shape) {
	l.update(func(s *LayerState) { s.Shape = shape })
}

// SetFill sets the fill color.
func (l *Layer) SetFill(c graphics.ColorF) {
	l.update(func(s *LayerState) { s.Fill = c })
}

// SetStroke sets the stroke color.
func (l *Layer) SetStroke(c graphics.ColorF) {
	l.update(func(s *LayerState) { s.Stroke = c })
}

// SetLineWidth sets the stroke width.
func (l *Layer) SetLineWidth(w float64) {
	l.update(func(s *LayerState) { s.LineWidth = w })
}

// SetOpacity sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetOpacity(o float64) {
	l.update(func(s *LayerState) { s.Opacity = min(max(o, 0), 1) })
}

// SetTransform sets the layer transform.
func (l *Layer) SetTransform(t graphics.Transform) {
	l.update(func(s *LayerState) { s.Transform = t })
}

// SetImage sets the bitmap content. Nil clears it.
func (l *Layer) SetImage(img image.Image) {
	l.update(func(s *LayerState) { s.Image = img })
}

// Surface is a batched, observable list of layers.
//
// Outside of Batch every mutation commits immediately. Inside Batch,
// commits are deferred until the outermost Batch returns, and then happen
// at most once.
type Surface struct {
	layers     []*Layer
	bounds     graphics.Rect
	hidden     bool
	batchDepth int
	dirty      bool
	committed  Frame
	commits    int

	observers      map[int]func(Frame)
	nextObserverID int
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Batch runs fn with commits deferred, so observers see one update.
func (s *Surface) Batch(fn func()) {
	s.batchDepth++
	defer func() {
		s.batchDepth--
		if s.batchDepth == 0 && s.dirty {
			s.commit()
		}
	}()
	fn()
}

// AddLayer appends a new layer in its default state.
func (s *Surface) AddLayer() *Layer {
	l := &Layer{surface: s, state: DefaultLayerState()}
	s.layers = append(s.layers, l)
	s.markDirty()
	return l
}

// RemoveAllLayers detaches every layer.
func (s *Surface) RemoveAllLayers() {
	if len(s.layers) == 0 {
		return
	}
	for _, l := range s.layers {
		l.surface = nil
	}
	s.layers = nil
	s.markDirty()
}

// Layers returns the live layer handles in paint order.
func (s *Surface) Layers() []*Layer {
	return slices.Clone(s.layers)
}

// SetHidden hides or shows the whole surface.
func (s *Surface) SetHidden(hidden bool) {
	if s.hidden == hidden {
		return
	}
	s.hidden = hidden
	s.markDirty()
}

// Hidden reports the current, possibly uncommitted, visibility.
func (s *Surface) Hidden() bool {
	return s.hidden
}

// SetBounds sets the area the surface paints into.
func (s *Surface) SetBounds(r graphics.Rect) {
	if s.bounds == r {
		return
	}
	s.bounds = r
	s.markDirty()
}

// Bounds returns the surface bounds.
func (s *Surface) Bounds() graphics.Rect {
	return s.bounds
}

// Snapshot returns the last committed frame.
func (s *Surface) Snapshot() Frame {
	f := s.committed
	f.Layers = slices.Clone(f.Layers)
	return f
}

// Commits returns how many frames have been committed.
func (s *Surface) Commits() int {
	return s.commits
}

// AddObserver registers fn to receive every committed frame and returns a
// function that removes it.
func (s *Surface) AddObserver(fn func(Frame)) func() {
	if fn == nil {
		return func() {}
	}
	if s.observers == nil {
		s.observers = make(map[int]func(Frame))
	}
	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}

func (s *Surface) markDirty() {
	s.dirty = true
	if s.batchDepth == 0 {
		s.commit()
	}
}

func (s *Surface) commit() {
	s.dirty = false
	frame := Frame{
		Bounds: s.bounds,
		Hidden: s.hidden,
		Layers: make([]LayerState, len(s.layers)),
	}
	for i, l := range s.layers {
		frame.Layers[i] = l.state
	}
	s.committed = frame
	s.commits++
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := s.observers[id]; ok {
			fn(s.Snapshot())
		}
	}
}
