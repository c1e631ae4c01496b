package graphics

import "math"

// ShapeKind selects how a Shape outline is produced.
type ShapeKind int

const (
	// ShapeNone draws nothing.
	ShapeNone ShapeKind = iota
	// ShapeRRect draws a rounded rectangle filling the frame.
	ShapeRRect
	// ShapePath draws a path scaled from its bounds into the frame.
	ShapePath
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRRect:
		return "rrect"
	case ShapePath:
		return "path"
	default:
		return "none"
	}
}

// Shape describes an indicator outline independently of its frame, so the
// same shape can be drawn at interpolated sizes.
type Shape struct {
	Kind ShapeKind
	// CornerRadius applies to ShapeRRect and is clamped to half the shorter
	// side of the frame; a large radius yields an oval.
	CornerRadius float64
	// Path applies to ShapePath.
	Path *Path
}

// OvalShape returns a shape that draws an ellipse inscribed in its frame.
func OvalShape() Shape {
	return Shape{Kind: ShapeRRect, CornerRadius: math.Inf(1)}
}

// PathShape returns a shape drawing p.
func PathShape(p *Path) Shape {
	if p.IsEmpty() {
		return Shape{}
	}
	return Shape{Kind: ShapePath, Path: p}
}

// Equal reports whether two shapes describe the same outline.
func (s Shape) Equal(other Shape) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case ShapeRRect:
		return s.CornerRadius == other.CornerRadius
	case ShapePath:
		return s.Path.Equal(other.Path)
	default:
		return true
	}
}

// RRectIn returns the rounded rectangle for a ShapeRRect in frame.
func (s Shape) RRectIn(frame Rect) RRect {
	return RRectFromRectAndRadius(frame, CircularRadius(s.CornerRadius))
}

// Outline returns the shape's outline positioned and scaled into frame.
// ShapeNone and degenerate frames yield nil.
func (s Shape) Outline(frame Rect) *Path {
	if frame.IsEmpty() {
		return nil
	}
	switch s.Kind {
	case ShapeRRect:
		p := NewPath()
		p.AddRRect(s.RRectIn(frame))
		return p
	case ShapePath:
		b := s.Path.Bounds()
		if b.IsEmpty() {
			return nil
		}
		t := TranslateTransform(-b.Left, -b.Top).
			Concat(ScaleTransform(frame.Width()/b.Width(), frame.Height()/b.Height())).
			Concat(TranslateTransform(frame.Left, frame.Top))
		return s.Path.Transformed(t)
	default:
		return nil
	}
}
