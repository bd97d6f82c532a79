// Package controls implements the retained-mode widget tree: the
// Control base with per-state theming and dirty-driven geometry,
// containers with pluggable layouts, the closed set of widget
// variants, and the form that owns a frame's update and draw walks.
package controls

import "github.com/go-ember/ember/pkg/theme"

// State is the single state a control is in at any moment.
type State uint8

const (
	// StateNormal is an enabled but inactive control.
	StateNormal State = 0x01
	// StateFocus is a control currently in focus.
	StateFocus State = 0x02
	// StateActive is a control being acted on, e.g. through a touch.
	StateActive State = 0x04
	// StateDisabled is a control that has been disabled.
	StateDisabled State = 0x08
)

// String returns the declarative name of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateFocus:
		return "focus"
	case StateActive:
		return "active"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseState maps a declarative state name to a State.
func ParseState(name string) (State, bool) {
	switch name {
	case "normal":
		return StateNormal, true
	case "focus":
		return StateFocus, true
	case "active":
		return StateActive, true
	case "disabled":
		return StateDisabled, true
	default:
		return 0, false
	}
}

// Mask returns the mask containing only this state.
func (s State) Mask() StateMask {
	return StateMask(s)
}

// overlayType maps a state to its theme overlay slot.
func (s State) overlayType() theme.OverlayType {
	switch s {
	case StateFocus:
		return theme.OverlayFocus
	case StateActive:
		return theme.OverlayActive
	case StateDisabled:
		return theme.OverlayDisabled
	default:
		return theme.OverlayNormal
	}
}

// StateMask is an OR-set of states a per-state setter applies to.
// It is a distinct type from State: a control is in exactly one State,
// while a themed property write targets a StateMask.
type StateMask uint8

// StateAll addresses all four states at once.
const StateAll = StateMask(StateNormal | StateFocus | StateActive | StateDisabled)

// Has reports whether the mask includes the given state.
func (m StateMask) Has(s State) bool {
	return m&StateMask(s) != 0
}

// allStates lists the states in canonical order for mask iteration.
var allStates = [...]State{StateNormal, StateFocus, StateActive, StateDisabled}
