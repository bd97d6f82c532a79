package graphics

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Bytes returns the color components as bytes, for backends that
// consume byte colors directly.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha byte of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ScaleAlpha returns the color with its alpha multiplied by opacity,
// clamped to [0, 1]. Used to apply a control's opacity to themed colors.
func (c Color) ScaleAlpha(opacity float64) Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return c.WithAlpha(uint8(float64(c.Alpha()) * opacity))
}

// LerpColor linearly interpolates between two colors component-wise.
func LerpColor(a, b Color, t float64) Color {
	ar, ag, ab, aa := float64(uint8(a>>16)), float64(uint8(a>>8)), float64(uint8(a)), float64(uint8(a>>24))
	br, bg, bb, ba := float64(uint8(b>>16)), float64(uint8(b>>8)), float64(uint8(b)), float64(uint8(b>>24))
	return RGBA(
		uint8(Lerp(ar, br, t)),
		uint8(Lerp(ag, bg, t)),
		uint8(Lerp(ab, bb, t)),
		uint8(Lerp(aa, ba, t)),
	)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
