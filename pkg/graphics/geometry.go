// Package graphics provides the geometry and color value types shared by
// the sprite, theme and control packages.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or translation in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle as an origin plus a size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromLTRB constructs a Rect from left, top, right, bottom edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(offset Offset) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect positioned at the overlap origin if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{X: left, Y: top}
	}
	return RectFromLTRB(left, top, right, bottom)
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return RectFromLTRB(
		math.Min(r.X, other.X),
		math.Min(r.Y, other.Y),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
	)
}

// Equals reports whether two rectangles are approximately equal.
func (r Rect) Equals(other Rect) bool {
	return floatEqual(r.X, other.X) &&
		floatEqual(r.Y, other.Y) &&
		floatEqual(r.Width, other.Width) &&
		floatEqual(r.Height, other.Height)
}

// SideInsets holds per-side thickness values, used for borders,
// margins and padding.
type SideInsets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Horizontal returns the combined left and right thickness.
func (s SideInsets) Horizontal() float64 {
	return s.Left + s.Right
}

// Vertical returns the combined top and bottom thickness.
func (s SideInsets) Vertical() float64 {
	return s.Top + s.Bottom
}

// Shrink returns the rectangle reduced by the insets on every side.
func (s SideInsets) Shrink(r Rect) Rect {
	return Rect{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  r.Width - s.Horizontal(),
		Height: r.Height - s.Vertical(),
	}
}

// UVs holds normalized texture coordinates for a quad.
// U1/V1 address the top-left corner, U2/V2 the bottom-right.
type UVs struct {
	U1 float64
	V1 float64
	U2 float64
	V2 float64
}

// UVsFromRegion derives normalized texture coordinates from a pixel
// region of a texture with the given dimensions. A zero-sized texture
// yields zero UVs.
func UVsFromRegion(region Rect, textureWidth, textureHeight float64) UVs {
	if textureWidth <= 0 || textureHeight <= 0 {
		return UVs{}
	}
	return UVs{
		U1: region.X / textureWidth,
		V1: region.Y / textureHeight,
		U2: region.Right() / textureWidth,
		V2: region.Bottom() / textureHeight,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
