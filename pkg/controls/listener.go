package controls

// EventType identifies the control events listeners can subscribe to.
// Values are bits so registrations can OR several together; dispatch
// always targets a single bit.
type EventType int

const (
	// EventPress is a mouse-down or touch-press on the control.
	EventPress EventType = 0x01
	// EventRelease is a mouse-up or touch-release on the control.
	EventRelease EventType = 0x02
	// EventClick fires after a press and release both land within the
	// control's bounds. It is a third, separate notification, not a
	// replacement for press and release.
	EventClick EventType = 0x04
	// EventValueChanged fires when a slider, check box or similar
	// control changes value.
	EventValueChanged EventType = 0x08
	// EventTextChanged fires when a control's text is modified.
	EventTextChanged EventType = 0x10
)

// eventTypes lists the individual event bits in dispatch order.
var eventTypes = [...]EventType{EventPress, EventRelease, EventClick, EventValueChanged, EventTextChanged}

// Listener receives control event notifications. Controls hold plain
// references and never manage listener lifetime; external code keeps
// the listener alive for as long as it is registered.
type Listener interface {
	// ControlEvent is called synchronously when an event the listener
	// registered for fires on the control.
	ControlEvent(c *Control, evt EventType)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(c *Control, evt EventType)

// ControlEvent calls f.
func (f ListenerFunc) ControlEvent(c *Control, evt EventType) {
	f(c, evt)
}
