package rendering

import "github.com/go-drift/pagecontrol/pkg/graphics"

// PaintFrame draws a committed frame onto canvas in layer order.
// Hidden frames draw nothing.
func PaintFrame(canvas graphics.Canvas, frame Frame) {
	if frame.Hidden {
		return
	}
	for _, layer := range frame.Layers {
		paintLayer(canvas, layer)
	}
}

func paintLayer(canvas graphics.Canvas, layer LayerState) {
	if layer.Opacity <= 0 || layer.Frame.IsEmpty() {
		return
	}
	canvas.Save()
	defer canvas.Restore()

	if layer.Opacity < 1 {
		canvas.SaveLayerAlpha(layer.Frame, layer.Opacity)
		defer canvas.Restore()
	}
	if !layer.Transform.IsIdentity() && layer.Transform != (graphics.Transform{}) {
		canvas.Concat(layer.Transform.AboutCenter(layer.Frame))
	}

	if layer.Image != nil {
		canvas.DrawImageRect(layer.Image, layer.Frame, graphics.FilterQualityLow)
		return
	}

	switch layer.Shape.Kind {
	case graphics.ShapeRRect:
		rr := layer.Shape.RRectIn(layer.Frame)
		if layer.Fill.IsSet() {
			canvas.DrawRRect(rr, graphics.Paint{Color: layer.Fill.ToColor(), Style: graphics.PaintStyleFill})
		}
		if layer.Stroke.IsSet() && layer.LineWidth > 0 {
			canvas.DrawRRect(rr, graphics.Paint{
				Color:       layer.Stroke.ToColor(),
				Style:       graphics.PaintStyleStroke,
				StrokeWidth: layer.LineWidth,
			})
		}
	case graphics.ShapePath:
		outline := layer.Shape.Outline(layer.Frame)
		if outline == nil {
			return
		}
		if layer.Fill.IsSet() {
			canvas.DrawPath(outline, graphics.Paint{Color: layer.Fill.ToColor(), Style: graphics.PaintStyleFill})
		}
		if layer.Stroke.IsSet() && layer.LineWidth > 0 {
			canvas.DrawPath(outline, graphics.Paint{
				Color:       layer.Stroke.ToColor(),
				Style:       graphics.PaintStyleStroke,
				StrokeWidth: layer.LineWidth,
			})
		}
	}
}
