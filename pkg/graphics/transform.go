package graphics

import "math"

// Transform is a 2D affine transform mapping (x, y) to
// (A*x + C*y + Tx, B*x + D*y + Ty).
type Transform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{A: 1, D: 1}
}

// ScaleTransform returns a scaling transform.
func ScaleTransform(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// TranslateTransform returns a translation.
func TranslateTransform(dx, dy float64) Transform {
	return Transform{A: 1, D: 1, Tx: dx, Ty: dy}
}

// RotateTransform returns a rotation by radians around the origin.
func RotateTransform(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// IsIdentity reports whether t leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Concat returns the transform that applies t first and then other.
func (t Transform) Concat(other Transform) Transform {
	return Transform{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		Tx: t.Tx*other.A + t.Ty*other.C + other.Tx,
		Ty: t.Tx*other.B + t.Ty*other.D + other.Ty,
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Offset) Offset {
	return Offset{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Invert returns the inverse transform. Singular transforms report false.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-12 {
		return Transform{}, false
	}
	inv := 1 / det
	return Transform{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		Tx: (t.C*t.Ty - t.D*t.Tx) * inv,
		Ty: (t.B*t.Tx - t.A*t.Ty) * inv,
	}, true
}

// AboutCenter conjugates t so that it applies around the center of rect
// instead of the origin, which is how layer transforms behave.
func (t Transform) AboutCenter(rect Rect) Transform {
	c := rect.Center()
	return TranslateTransform(-c.X, -c.Y).Concat(t).Concat(TranslateTransform(c.X, c.Y))
}
