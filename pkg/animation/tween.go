package animation

import "github.com/go-ember/ember/pkg/graphics"

// Tween interpolates between Begin and End values based on animation
// progress, mapping the 0-1 range of a [Controller] to any value type.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the
	// begin value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's
// current value.
func (tw *Tween[T]) Transform(controller *Controller) T {
	return tw.Evaluate(controller.Value)
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: graphics.Lerp(a.X, b.X, t),
		Y: graphics.Lerp(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  graphics.Lerp(a.Width, b.Width, t),
		Height: graphics.Lerp(a.Height, b.Height, t),
	}
}

// LerpInsets linearly interpolates between two SideInsets values.
func LerpInsets(a, b graphics.SideInsets, t float64) graphics.SideInsets {
	return graphics.SideInsets{
		Top:    graphics.Lerp(a.Top, b.Top, t),
		Bottom: graphics.Lerp(a.Bottom, b.Bottom, t),
		Left:   graphics.Lerp(a.Left, b.Left, t),
		Right:  graphics.Lerp(a.Right, b.Right, t),
	}
}

// TweenFloat creates a tween for float64 values.
func TweenFloat(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: graphics.Lerp}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end graphics.Size) *Tween[graphics.Size] {
	return &Tween[graphics.Size]{Begin: begin, End: end, Lerp: LerpSize}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: graphics.LerpColor}
}
