package graphics

import (
	"fmt"
	"math"
	"slices"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path is a vector outline used as an indicator shape.
//
// Paths are compared by value: two paths built from the same commands are
// Equal even when they are distinct pointers.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// NewRRectPath returns a closed rounded rectangle of the given size anchored
// at the origin. A radius of half the shorter side produces a pill or oval.
func NewRRectPath(width, height, radius float64) *Path {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, width, height), CircularRadius(radius))
	p := NewPath()
	p.AddRRect(rr)
	return p
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// kappa is the control point distance for a quarter circle drawn with one cubic.
const kappa = 0.5522847498

// AddRRect appends a closed rounded rectangle subpath.
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	rx, ry := rr.Radius.X, rr.Radius.Y
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(r.Left+rx, r.Top)
	p.LineTo(r.Right-rx, r.Top)
	p.CubicTo(r.Right-rx+kx, r.Top, r.Right, r.Top+ry-ky, r.Right, r.Top+ry)
	p.LineTo(r.Right, r.Bottom-ry)
	p.CubicTo(r.Right, r.Bottom-ry+ky, r.Right-rx+kx, r.Bottom, r.Right-rx, r.Bottom)
	p.LineTo(r.Left+rx, r.Bottom)
	p.CubicTo(r.Left+rx-kx, r.Bottom, r.Left, r.Bottom-ry+ky, r.Left, r.Bottom-ry)
	p.LineTo(r.Left, r.Top+ry)
	p.CubicTo(r.Left, r.Top+ry-ky, r.Left+rx-kx, r.Top, r.Left+rx, r.Top)
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Bounds returns the rectangle covering every point and control point of
// the path. Control points make this a conservative box for curves.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	return b
}

// Equal reports whether two paths contain the same commands.
// A nil path equals only another nil or empty path.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	return slices.EqualFunc(p.Commands, other.Commands, func(a, b PathCommand) bool {
		return a.Op == b.Op && slices.Equal(a.Args, b.Args)
	})
}

// Clone returns a deep copy, so stored paths are not affected by later
// mutation of the caller's value.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: slices.Clone(cmd.Args)}
	}
	return out
}

// Transformed returns a copy of the path with every point mapped through t.
func (p *Path) Transformed(t Transform) *Path {
	out := p.Clone()
	if out == nil {
		return nil
	}
	for _, cmd := range out.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			pt := t.Apply(Offset{X: cmd.Args[i], Y: cmd.Args[i+1]})
			cmd.Args[i], cmd.Args[i+1] = pt.X, pt.Y
		}
	}
	return out
}
