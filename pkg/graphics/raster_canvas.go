package graphics

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// curveSegments is the number of line segments used per curve when
// flattening outlines for strokes.
const curveSegments = 16

// RasterCanvas is a software Canvas that paints into an RGBA image.
// Fills are rasterized with golang.org/x/image/vector and images are
// resampled with golang.org/x/image/draw. Layer opacity is applied per
// draw call, which matches true layer compositing for non-overlapping
// content such as a row of indicators.
type RasterCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	transform Transform
	alpha     float64
}

// NewRasterCanvas allocates a transparent canvas of the given size,
// rounded up to whole pixels.
func NewRasterCanvas(size Size) *RasterCanvas {
	w := int(math.Ceil(math.Max(size.Width, 0)))
	h := int(math.Ceil(math.Max(size.Height, 0)))
	return &RasterCanvas{
		dst:   image.NewRGBA(image.Rect(0, 0, w, h)),
		state: rasterState{transform: IdentityTransform(), alpha: 1},
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) SaveLayerAlpha(_ Rect, alpha float64) {
	c.Save()
	c.state.alpha *= clamp01(alpha)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Concat(t Transform) {
	c.state.transform = t.Concat(c.state.transform)
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toNRGBA(col, 1)), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() || c.dst.Bounds().Empty() {
		return
	}
	src := image.NewUniform(toNRGBA(paint.Color, c.state.alpha))
	outline := path.Transformed(c.state.transform)
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		z := c.newRasterizer()
		appendPath(z, outline)
		z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
	}
	if (paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke) && paint.StrokeWidth > 0 {
		t := c.state.transform
		width := paint.StrokeWidth * math.Sqrt(math.Abs(t.A*t.D-t.B*t.C))
		z := c.newRasterizer()
		for _, line := range flatten(outline) {
			appendStroke(z, line, width/2)
		}
		z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
	}
}

func (c *RasterCanvas) DrawImageRect(img image.Image, dst Rect, quality FilterQuality) {
	if img == nil || dst.IsEmpty() {
		return
	}
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	t := TranslateTransform(-float64(sb.Min.X), -float64(sb.Min.Y)).
		Concat(ScaleTransform(dst.Width()/float64(sb.Dx()), dst.Height()/float64(sb.Dy()))).
		Concat(TranslateTransform(dst.Left, dst.Top)).
		Concat(c.state.transform)
	var opts *draw.Options
	if c.state.alpha < 1 {
		opts = &draw.Options{DstMask: image.NewUniform(color.Alpha{A: unitToByte(c.state.alpha)})}
	}
	aff := f64.Aff3{t.A, t.C, t.Tx, t.B, t.D, t.Ty}
	interpolator(quality).Transform(c.dst, aff, img, sb, draw.Over, opts)
}

func (c *RasterCanvas) newRasterizer() *vector.Rasterizer {
	b := c.dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func interpolator(q FilterQuality) draw.Interpolator {
	switch q {
	case FilterQualityNone:
		return draw.NearestNeighbor
	case FilterQualityMedium:
		return draw.ApproxBiLinear
	case FilterQualityHigh:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

func toNRGBA(c Color, alpha float64) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(float64(a) * clamp01(alpha)))}
}

func appendPath(z *vector.Rasterizer, p *Path) {
	open := false
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(a[0]), float32(a[1]))
			open = true
		case PathOpLineTo:
			z.LineTo(float32(a[0]), float32(a[1]))
		case PathOpQuadTo:
			z.QuadTo(float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3]))
		case PathOpCubicTo:
			z.CubeTo(float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3]), float32(a[4]), float32(a[5]))
		case PathOpClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// flatten converts a path into polylines, one per subpath. Closed
// subpaths end at their starting point.
func flatten(p *Path) [][]Offset {
	var lines [][]Offset
	var cur []Offset
	var start, pen Offset
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			start = Offset{X: a[0], Y: a[1]}
			pen = start
			cur = []Offset{pen}
		case PathOpLineTo:
			pen = Offset{X: a[0], Y: a[1]}
			cur = append(cur, pen)
		case PathOpQuadTo:
			p0, p1, p2 := pen, Offset{X: a[0], Y: a[1]}, Offset{X: a[2], Y: a[3]}
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, Offset{
					X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
					Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
				})
			}
			pen = p2
		case PathOpCubicTo:
			p0, p1, p2, p3 := pen, Offset{X: a[0], Y: a[1]}, Offset{X: a[2], Y: a[3]}, Offset{X: a[4], Y: a[5]}
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, Offset{
					X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				})
			}
			pen = p3
		case PathOpClose:
			cur = append(cur, start)
			pen = start
			flush()
		}
	}
	flush()
	return lines
}

// appendStroke adds one quad per segment. Every quad has the same winding,
// so overlaps at joints accumulate instead of cancelling.
func appendStroke(z *vector.Rasterizer, line []Offset, half float64) {
	for i := 1; i < len(line); i++ {
		p0, p1 := line[i-1], line[i]
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		z.MoveTo(float32(p0.X+nx), float32(p0.Y+ny))
		z.LineTo(float32(p1.X+nx), float32(p1.Y+ny))
		z.LineTo(float32(p1.X-nx), float32(p1.Y-ny))
		z.LineTo(float32(p0.X-nx), float32(p0.Y-ny))
		z.ClosePath()
	}
}
