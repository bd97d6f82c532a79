package controls

import "github.com/go-ember/ember/pkg/theme"

// Button is a label that consumes touches and runs the full
// press/release/click cycle.
type Button struct {
	Label
}

// NewButton builds a button with the given caption.
func NewButton(id string, style *theme.Style, text string) *Button {
	b := &Button{}
	b.Control.id = id
	b.Control.setStyle(style)
	b.Control.consumeTouchEvents = true
	b.Control.dirty = true
	b.Label.text = text
	b.Control.variant = (*labelVariant)(&b.Label)
	return b
}
