package controls

import "github.com/go-ember/ember/pkg/input"

// TouchEvent delivers a touch to the control. Coordinates are screen
// pixels.
//
// The base protocol: a press inside the bounds activates the control
// and fires EventPress; the matching release fires EventRelease, and
// additionally EventClick when it lands inside the bounds. The
// variant's touch hook runs after the base protocol.
//
// The return value reports consumption: a control with
// ConsumeTouchEvents set always reports true regardless of the hit
// outcome, blocking propagation to ancestors and the game.
func (c *Control) TouchEvent(evt input.TouchEvent, x, y float64, contactIndex int) bool {
	if c.state == StateDisabled {
		return false
	}

	inside := c.absoluteClipBounds.Contains(x, y)

	switch evt {
	case input.TouchPress:
		if inside {
			c.SetState(StateActive)
			c.notifyListeners(EventPress)
		}
	case input.TouchRelease:
		if c.state == StateActive {
			c.SetState(StateFocus)
			c.notifyListeners(EventRelease)
			if inside {
				c.notifyListeners(EventClick)
			}
		}
	}

	if c.variant != nil {
		c.variant.TouchEvent(c, evt, x, y, contactIndex)
	}

	return c.consumeTouchEvents
}

// KeyEvent delivers a key notification to the control. Pure
// notification: there is no consumption result.
func (c *Control) KeyEvent(evt input.KeyEvent, key int) {
	if c.state == StateDisabled {
		return
	}
	if c.variant != nil {
		c.variant.KeyEvent(c, evt, key)
	}
}
