package graphics

import (
	"fmt"
	"math"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(unitToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// RGBA8 returns the 8-bit color channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// ToF converts the color to normalized RGB components.
func (c Color) ToF() ColorF {
	r, g, b, a := c.RGBAF()
	return RGBF(r, g, b, a)
}

// String returns the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// unitToByte converts a 0-1 channel to 0-255 with proper rounding.
func unitToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorGray        = Color(0xFF808080)
)

// ColorSpace names the component layout of a ColorF.
type ColorSpace uint8

const (
	// ColorSpaceUnset marks the zero ColorF, meaning "no color".
	ColorSpaceUnset ColorSpace = iota
	// ColorSpaceRGB carries red, green, blue and alpha.
	ColorSpaceRGB
	// ColorSpaceGray carries a white level and alpha in the first two slots.
	ColorSpaceGray
)

func (s ColorSpace) String() string {
	switch s {
	case ColorSpaceRGB:
		return "rgb"
	case ColorSpaceGray:
		return "gray"
	default:
		return "unset"
	}
}

// ColorF is a color with normalized float components.
//
// Unlike Color it keeps full precision, which matters for interpolation
// between nearby shades. The zero value is an unset color.
type ColorF struct {
	Space      ColorSpace
	Components [4]float64
}

// RGBF returns an RGB color from normalized components.
func RGBF(r, g, b, a float64) ColorF {
	return ColorF{Space: ColorSpaceRGB, Components: [4]float64{r, g, b, a}}
}

// GrayF returns a grayscale color with the given white level and alpha.
func GrayF(white, alpha float64) ColorF {
	return ColorF{Space: ColorSpaceGray, Components: [4]float64{white, alpha}}
}

// IsSet reports whether c holds a color.
func (c ColorF) IsSet() bool {
	return c.Space == ColorSpaceRGB || c.Space == ColorSpaceGray
}

// RGBA returns the four RGB components, expanding gray by replicating the
// white level into red, green and blue. Unset colors report all zeros.
func (c ColorF) RGBA() (r, g, b, a float64) {
	switch c.Space {
	case ColorSpaceRGB:
		return c.Components[0], c.Components[1], c.Components[2], c.Components[3]
	case ColorSpaceGray:
		w := c.Components[0]
		return w, w, w, c.Components[1]
	default:
		return 0, 0, 0, 0
	}
}

// Equal reports whether two colors describe the same RGBA value.
// Gray and RGB colors with identical expanded components are equal.
func (c ColorF) Equal(other ColorF) bool {
	if c.IsSet() != other.IsSet() {
		return false
	}
	if !c.IsSet() {
		return true
	}
	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, a2 := other.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// ToColor converts to an 8-bit ARGB Color. Unset colors become transparent.
func (c ColorF) ToColor() Color {
	if !c.IsSet() {
		return ColorTransparent
	}
	r, g, b, a := c.RGBA()
	return RGBA8(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

func (c ColorF) String() string {
	if !c.IsSet() {
		return "unset"
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%.4g, %.4g, %.4g, %.4g)", r, g, b, a)
}

// Blend mixes two colors channel by channel as b + rate*(a-b), so rate 1
// yields a and rate 0 yields b. rate is clamped to [0, 1]. If either color
// is unset, a is returned unchanged.
func Blend(a, b ColorF, rate float64) ColorF {
	if !a.IsSet() || !b.IsSet() {
		return a
	}
	rate = clamp01(rate)
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return RGBF(
		br+rate*(ar-br),
		bg+rate*(ag-bg),
		bb+rate*(ab-bb),
		ba+rate*(aa-ba),
	)
}
