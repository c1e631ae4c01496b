package graphics

import "image"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear
	FilterQualityMedium                      // Approximate bilinear
	FilterQualityHigh                        // Catmull-Rom
)

// PaintStyle selects whether shapes are filled, stroked, or both.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
	PaintStyleFillAndStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels
}

// DefaultPaint returns an opaque white fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorWhite, Style: PaintStyleFill, StrokeWidth: 1}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and opacity state.
	Save()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() call is composited with this opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent state.
	Restore()

	// Concat multiplies the current transform by t, so t applies first.
	Concat(t Transform)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws the whole image scaled into dst.
	DrawImageRect(img image.Image, dst Rect, quality FilterQuality)

	// Size returns the canvas size.
	Size() Size
}
