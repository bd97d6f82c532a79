package controls

// Animatable control properties, addressed by the ids the animation
// engine passes around.
const (
	AnimatePosition  = 1
	AnimatePositionX = 2
	AnimatePositionY = 3
	AnimateSize      = 4
	AnimateWidth     = 5
	AnimateHeight    = 6
	AnimateOpacity   = 7
)

// AnimationComponentCount implements animation.Target.
func (c *Control) AnimationComponentCount(property int) int {
	switch property {
	case AnimatePosition, AnimateSize:
		return 2
	case AnimatePositionX, AnimatePositionY, AnimateWidth, AnimateHeight, AnimateOpacity:
		return 1
	}
	return 0
}

// AnimationValue implements animation.Target.
func (c *Control) AnimationValue(property int, out []float64) {
	switch property {
	case AnimatePosition:
		out[0], out[1] = c.bounds.X, c.bounds.Y
	case AnimatePositionX:
		out[0] = c.bounds.X
	case AnimatePositionY:
		out[0] = c.bounds.Y
	case AnimateSize:
		out[0], out[1] = c.bounds.Width, c.bounds.Height
	case AnimateWidth:
		out[0] = c.bounds.Width
	case AnimateHeight:
		out[0] = c.bounds.Height
	case AnimateOpacity:
		out[0] = c.Opacity(c.state)
	}
}

// SetAnimationValue implements animation.Target. Opacity applies
// across every state so a fade is visible regardless of which overlay
// is active; geometry applies to the bounds directly.
func (c *Control) SetAnimationValue(property int, value []float64, blendWeight float64) {
	switch property {
	case AnimatePosition:
		c.SetPosition(blend(c.bounds.X, value[0], blendWeight), blend(c.bounds.Y, value[1], blendWeight))
	case AnimatePositionX:
		c.SetPosition(blend(c.bounds.X, value[0], blendWeight), c.bounds.Y)
	case AnimatePositionY:
		c.SetPosition(c.bounds.X, blend(c.bounds.Y, value[0], blendWeight))
	case AnimateSize:
		c.SetSize(blend(c.bounds.Width, value[0], blendWeight), blend(c.bounds.Height, value[1], blendWeight))
	case AnimateWidth:
		c.SetSize(blend(c.bounds.Width, value[0], blendWeight), c.bounds.Height)
	case AnimateHeight:
		c.SetSize(c.bounds.Width, blend(c.bounds.Height, value[0], blendWeight))
	case AnimateOpacity:
		c.SetOpacity(blend(c.Opacity(c.state), value[0], blendWeight), StateAll)
	}
}

// blend mixes the current and incoming component by weight; a weight
// of 1 overwrites.
func blend(current, incoming, weight float64) float64 {
	if weight >= 1 {
		return incoming
	}
	return current*(1-weight) + incoming*weight
}
