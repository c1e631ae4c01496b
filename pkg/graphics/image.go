package graphics

import "image"

// ImageSize returns the pixel dimensions of img, or a zero Size for nil.
func ImageSize(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	b := img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// ImagesEqual compares two images by value: same bounds and the same
// RGBA value at every pixel.
func ImagesEqual(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return false
	}
	dx, dy := bb.Min.X-ab.Min.X, bb.Min.Y-ab.Min.Y
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			r1, g1, b1, a1 := a.At(x, y).RGBA()
			r2, g2, b2, a2 := b.At(x+dx, y+dy).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}
	return true
}
