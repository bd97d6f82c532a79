package animation

import "time"

// Target is the capability a type exposes to be driven by the
// animation engine. Properties are addressed by small integer ids the
// target defines; the engine needs no knowledge of the target type.
type Target interface {
	// AnimationComponentCount returns the number of float components
	// the property carries (e.g. 2 for a position, 1 for opacity).
	// Unknown property ids return 0.
	AnimationComponentCount(property int) int

	// AnimationValue writes the property's current components into out,
	// which has AnimationComponentCount(property) elements.
	AnimationValue(property int, out []float64)

	// SetAnimationValue applies new components to the property.
	// blendWeight in [0, 1] linearly blends the new components into the
	// existing ones; a weight of 1.0 overwrites.
	SetAnimationValue(property int, value []float64, blendWeight float64)
}

// PropertyAnimation drives one Target property from a Controller,
// interpolating component-wise between From and To.
type PropertyAnimation struct {
	// Controller supplies progress. Created by NewPropertyAnimation;
	// callers may adjust its Curve before playing.
	Controller *Controller

	// BlendWeight is passed through to the target on every tick.
	// Zero is treated as 1 (overwrite).
	BlendWeight float64

	target      Target
	property    int
	from        []float64
	to          []float64
	scratch     []float64
	unsubscribe func()
}

// NewPropertyAnimation binds a target property to a new controller of
// the given duration. From and To must each carry the property's
// component count; mismatched lengths are truncated to the shorter.
func NewPropertyAnimation(target Target, property int, from, to []float64, duration time.Duration) *PropertyAnimation {
	n := len(from)
	if len(to) < n {
		n = len(to)
	}
	a := &PropertyAnimation{
		Controller:  NewController(duration),
		BlendWeight: 1,
		target:      target,
		property:    property,
		from:        append([]float64(nil), from[:n]...),
		to:          append([]float64(nil), to[:n]...),
		scratch:     make([]float64, n),
	}
	a.unsubscribe = a.Controller.AddListener(a.apply)
	return a
}

func (a *PropertyAnimation) apply() {
	t := a.Controller.Value
	for i := range a.scratch {
		a.scratch[i] = a.from[i] + (a.to[i]-a.from[i])*t
	}
	weight := a.BlendWeight
	if weight <= 0 {
		weight = 1
	}
	a.target.SetAnimationValue(a.property, a.scratch, weight)
}

// Play starts the animation from its current progress toward the end.
func (a *PropertyAnimation) Play() {
	a.Controller.Forward()
}

// Reverse plays the animation back toward the start.
func (a *PropertyAnimation) Reverse() {
	a.Controller.Reverse()
}

// Stop halts the animation at its current progress.
func (a *PropertyAnimation) Stop() {
	a.Controller.Stop()
}

// Dispose releases the controller and detaches from the target.
func (a *PropertyAnimation) Dispose() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.Controller.Dispose()
}
