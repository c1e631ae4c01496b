package animation

import "math"

// Easing curves map linear progress t in [0, 1] to eased progress.
// Set an [AnimationController]'s Curve field to apply one.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates, which suits settling onto a page.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1); (x1,y1) and (x2,y2) are the
// control points.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Solve x(u) = t by bisection; x is monotonic for x1, x2 in [0, 1].
		lo, hi := 0.0, 1.0
		u := t
		for range 32 {
			x := bezierComponent(x1, x2, u)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x > t {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezierComponent(y1, y2, u)
	}
}

func bezierComponent(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}
