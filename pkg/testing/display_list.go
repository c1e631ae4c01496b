package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// DisplayOp is a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: paramMap("bounds", serializeRect(bounds), "alpha", round2(alpha)),
	})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Concat(t graphics.Transform) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "concat",
		Params: paramMap("matrix", serializeTransform(t)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: paramMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: paramMap(
			"rect", serializeRect(rrect.Rect),
			"radius", paramMap("x", round2(rrect.Radius.X), "y", round2(rrect.Radius.Y)),
			"paint", serializePaint(paint),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawPath",
		Params: paramMap(
			"bounds", serializeRect(path.Bounds()),
			"paint", serializePaint(paint),
		),
	})
}

func (c *serializingCanvas) DrawImageRect(img image.Image, dst graphics.Rect, _ graphics.FilterQuality) {
	size := graphics.ImageSize(img)
	c.ops = append(c.ops, DisplayOp{
		Op: "drawImageRect",
		Params: paramMap(
			"dst", serializeRect(dst),
			"image", [2]float64{size.Width, size.Height},
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func serializeTransform(t graphics.Transform) [6]float64 {
	return [6]float64{round2(t.A), round2(t.B), round2(t.C), round2(t.D), round2(t.Tx), round2(t.Ty)}
}

func serializePaint(p graphics.Paint) map[string]any {
	switch p.Style {
	case graphics.PaintStyleStroke:
		return paramMap("stroke", serializeColor(p.Color), "width", round2(p.StrokeWidth))
	default:
		return paramMap("fill", serializeColor(p.Color))
	}
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func serializeColorF(c graphics.ColorF) string {
	if !c.IsSet() {
		return ""
	}
	return serializeColor(c.ToColor())
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// paramMap creates a map from alternating key-value pairs. The snapshot
// encoder writes keys in sorted order.
func paramMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
