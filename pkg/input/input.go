// Package input defines the touch and key event values delivered
// synchronously by the platform layer into the control tree.
package input

// TouchEvent identifies a touch or mouse interaction phase.
type TouchEvent int

const (
	// TouchPress is a mouse-down or touch-press event.
	TouchPress TouchEvent = iota
	// TouchRelease is a mouse-up or touch-release event.
	TouchRelease
	// TouchMove is a pointer move while pressed.
	TouchMove
)

// String returns a human-readable representation of the touch event.
func (e TouchEvent) String() string {
	switch e {
	case TouchPress:
		return "press"
	case TouchRelease:
		return "release"
	case TouchMove:
		return "move"
	default:
		return "unknown"
	}
}

// KeyEvent identifies a keyboard interaction phase.
type KeyEvent int

const (
	// KeyPress is a key-down event; the key argument is a key code.
	KeyPress KeyEvent = iota
	// KeyRelease is a key-up event; the key argument is a key code.
	KeyRelease
	// KeyChar is a character event; the key argument is a unicode value.
	KeyChar
)

// String returns a human-readable representation of the key event.
func (e KeyEvent) String() string {
	switch e {
	case KeyPress:
		return "press"
	case KeyRelease:
		return "release"
	case KeyChar:
		return "char"
	default:
		return "unknown"
	}
}
