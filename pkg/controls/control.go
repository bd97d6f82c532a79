package controls

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Child is a node of the control tree. *Control implements it
// directly; *Container overrides the tree-walk methods to recurse.
type Child interface {
	// Base returns the node's Control core.
	Base() *Control

	// Update revalidates the node's geometry against its parent.
	Update(parent *Container, offset graphics.Offset)

	// Draw emits the node's quads into the batch and returns whether a
	// region clear was issued during this node's subtree walk.
	Draw(batch *sprite.Batch, clip graphics.Rect, needsClear, cleared bool, targetHeight float64) bool

	// TouchEvent delivers a touch and reports whether it was consumed.
	TouchEvent(evt input.TouchEvent, x, y float64, contactIndex int) bool

	// KeyEvent delivers a key notification.
	KeyEvent(evt input.KeyEvent, key int)

	// IsDirty reports whether the node needs revalidation.
	IsDirty() bool

	// IsContainer reports whether the node holds children.
	IsContainer() bool
}

// Variant supplies the behavior that distinguishes one widget kind
// from another. A variant is installed at construction and supplies
// measuring, drawing and input hooks through composition; Control
// itself stays a single concrete type.
type Variant interface {
	// Measure returns the control's content size for auto-sizing.
	// Returning ok=false defers to the parent viewport size.
	Measure(c *Control, available graphics.Size) (size graphics.Size, ok bool)

	// Draw emits the variant's visuals (images, text, cursor) after
	// the themed skin has been drawn.
	Draw(c *Control, batch *sprite.Batch, clip graphics.Rect, targetHeight float64)

	// TouchEvent supplements the control's standard press/release
	// protocol. Returns whether the variant reacted to the event.
	TouchEvent(c *Control, evt input.TouchEvent, x, y float64, contactIndex int) bool

	// KeyEvent receives key notifications. Pure notification, no
	// consumption result.
	KeyEvent(c *Control, evt input.KeyEvent, key int)
}

// Control is the base widget: geometry in four coordinate spaces with
// their clipped counterparts, a single-state machine resolved against
// a shared theme style, listener dispatch, and the animation target
// capability.
//
// A control belongs to exactly one parent container. Collaborating
// packages drive it through Update and Draw; everything else is
// property surface.
type Control struct {
	id string

	state State

	// bounds is the desired rectangle, parent-relative, pre-clip.
	bounds graphics.Rect
	// clipBounds is bounds after clipping, parent-relative.
	clipBounds graphics.Rect
	// absoluteBounds is bounds in screen space, pre-clip.
	absoluteBounds graphics.Rect
	// absoluteClipBounds is absoluteBounds after clipping.
	absoluteClipBounds graphics.Rect
	// viewportBounds is the content area (absolute, minus border and
	// padding), pre-clip.
	viewportBounds graphics.Rect
	// viewportClipBounds is viewportBounds after clipping.
	viewportClipBounds graphics.Rect
	// clearBounds is the previous frame's absoluteClipBounds, kept so
	// draw knows what region to erase when the control shrinks or moves.
	clearBounds graphics.Rect

	dirty      bool
	needsClear bool

	consumeTouchEvents bool

	alignment  Alignment
	autoWidth  bool
	autoHeight bool

	style      *theme.Style
	styleOwned bool

	listeners map[EventType][]Listener

	zIndex int

	variant Variant
	parent  *Container
	texture *sprite.Texture
}

// New creates a control with the given id, rendering with the given
// shared style. A nil style gets an empty private one so state lookups
// always resolve.
func New(id string, style *theme.Style) *Control {
	c := &Control{
		id:                 id,
		state:              StateNormal,
		consumeTouchEvents: true,
		dirty:              true,
	}
	c.setStyle(style)
	return c
}

func (c *Control) setStyle(style *theme.Style) {
	if style == nil {
		c.style = theme.NewStyle("", nil)
		c.styleOwned = true
		return
	}
	c.style = style
	c.styleOwned = false
}

// SetVariant installs the behavior hooks that make this control a
// specific widget kind. The built-in constructors install their own;
// this is for external widget kinds built by composition.
func (c *Control) SetVariant(v Variant) {
	c.variant = v
	c.markDirty()
}

// Base returns the control itself, satisfying Child.
func (c *Control) Base() *Control { return c }

// IsContainer reports whether the control holds children.
func (c *Control) IsContainer() bool { return false }

// ID returns the control's caller-assigned identifier.
func (c *Control) ID() string { return c.id }

// Parent returns the owning container, or nil for a root.
func (c *Control) Parent() *Container { return c.parent }

// SetPosition sets the control's position relative to its parent.
func (c *Control) SetPosition(x, y float64) {
	c.bounds.X = x
	c.bounds.Y = y
	c.markDirty()
}

// SetSize sets the control's desired size, including border and
// padding, before clipping.
func (c *Control) SetSize(width, height float64) {
	c.bounds.Width = width
	c.bounds.Height = height
	c.markDirty()
}

// SetBounds sets the control's desired bounds relative to its parent,
// including border and padding, before clipping.
func (c *Control) SetBounds(bounds graphics.Rect) {
	c.bounds = bounds
	c.markDirty()
}

// Bounds returns the desired bounds relative to the parent, pre-clip.
func (c *Control) Bounds() graphics.Rect { return c.bounds }

// X returns the x coordinate of the control's bounds.
func (c *Control) X() float64 { return c.bounds.X }

// Y returns the y coordinate of the control's bounds.
func (c *Control) Y() float64 { return c.bounds.Y }

// Width returns the width of the control's bounds.
func (c *Control) Width() float64 { return c.bounds.Width }

// Height returns the height of the control's bounds.
func (c *Control) Height() float64 { return c.bounds.Height }

// SetAlignment sets how the parent layout positions this control.
func (c *Control) SetAlignment(a Alignment) {
	c.alignment = a
	c.markDirty()
}

// Alignment returns the control's alignment within its parent.
func (c *Control) Alignment() Alignment { return c.alignment }

// SetAutoWidth makes the control size its width automatically.
func (c *Control) SetAutoWidth(auto bool) {
	c.autoWidth = auto
	c.markDirty()
}

// AutoWidth reports whether the control's width is auto-sized.
func (c *Control) AutoWidth() bool { return c.autoWidth }

// SetAutoHeight makes the control size its height automatically.
func (c *Control) SetAutoHeight(auto bool) {
	c.autoHeight = auto
	c.markDirty()
}

// AutoHeight reports whether the control's height is auto-sized.
func (c *Control) AutoHeight() bool { return c.autoHeight }

// SetZIndex sets the sibling draw-order key. Higher values draw later,
// on top. Only meaningful within a container.
func (c *Control) SetZIndex(z int) {
	if z == c.zIndex {
		return
	}
	c.zIndex = z
	c.markDirty()
}

// ZIndex returns the control's z-index.
func (c *Control) ZIndex() int { return c.zIndex }

// SetState changes the control's state. Any state value is accepted at
// any time; callers are trusted. The control is marked dirty only when
// the overlay resolved for the new state differs from the old one.
func (c *Control) SetState(s State) {
	if s == c.state {
		return
	}
	oldOverlay := c.style.Overlay(c.state.overlayType())
	c.state = s
	if c.style.Overlay(s.overlayType()) != oldOverlay {
		c.markDirty()
	}
}

// State returns the control's current state.
func (c *Control) State() State { return c.state }

// Disable forces the control into the disabled state, discarding focus
// or active status until re-enabled.
func (c *Control) Disable() {
	c.SetState(StateDisabled)
}

// Enable returns a disabled control to the normal state. The
// pre-disable state is not restored.
func (c *Control) Enable() {
	if c.state == StateDisabled {
		c.SetState(StateNormal)
	}
}

// IsEnabled reports whether the control is not disabled.
func (c *Control) IsEnabled() bool {
	return c.state != StateDisabled
}

// SetConsumeTouchEvents sets whether the control consumes touch
// events, blocking their propagation to ancestors and the game.
func (c *Control) SetConsumeTouchEvents(consume bool) {
	c.consumeTouchEvents = consume
}

// ConsumeTouchEvents reports whether the control consumes touch events.
func (c *Control) ConsumeTouchEvents() bool {
	return c.consumeTouchEvents
}

// SetStyle replaces the control's style with a shared one, dropping
// any private overridden copy.
func (c *Control) SetStyle(style *theme.Style) {
	c.setStyle(style)
	c.markDirty()
}

// Style returns the style the control renders with. The result is
// shared with sibling controls unless an override promoted it to a
// private copy; treat it as read-only and use the per-state setters
// for mutation.
func (c *Control) Style() *theme.Style { return c.style }

// OverrideStyle forces promotion of the shared style to a private
// mutable copy. Normally this happens lazily on the first per-state
// setter; the explicit call exists for callers that hand the style to
// outside code.
func (c *Control) OverrideStyle() *theme.Style {
	c.ownStyle()
	return c.style
}

// ownStyle lazily clones the shared style into private storage.
func (c *Control) ownStyle() {
	if c.styleOwned {
		return
	}
	c.style = c.style.Clone()
	c.styleOwned = true
}

// overlay resolves the overlay for a state: the private override copy
// when one was written, else the shared style's overlay, falling back
// to normal for states without one.
func (c *Control) overlay(s State) *theme.Overlay {
	return c.style.Overlay(s.overlayType())
}

// AddListener registers the listener for every event bit set in
// eventFlags. The same listener may be registered for several events;
// it is invoked once per matching event bit, in registration order.
func (c *Control) AddListener(l Listener, eventFlags EventType) {
	if l == nil {
		return
	}
	if c.listeners == nil {
		c.listeners = make(map[EventType][]Listener)
	}
	for _, evt := range eventTypes {
		if eventFlags&evt != 0 {
			c.listeners[evt] = append(c.listeners[evt], l)
		}
	}
}

// RemoveListener unregisters the listener from every event bit set in
// eventFlags.
func (c *Control) RemoveListener(l Listener, eventFlags EventType) {
	for _, evt := range eventTypes {
		if eventFlags&evt == 0 {
			continue
		}
		list := c.listeners[evt]
		for i, registered := range list {
			if registered == l {
				c.listeners[evt] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// notifyListeners dispatches the event synchronously to every listener
// registered for that exact bit, in registration order. Dispatch runs
// over a snapshot so listeners may add or remove registrations without
// invalidating iteration.
func (c *Control) notifyListeners(evt EventType) {
	list := c.listeners[evt]
	if len(list) == 0 {
		return
	}
	snapshot := make([]Listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.ControlEvent(c, evt)
	}
}

// markDirty flags the control (and its ancestors) for revalidation on
// the next update pass.
func (c *Control) markDirty() {
	c.dirty = true
}

// IsDirty reports whether the control has been modified and requires
// an update.
func (c *Control) IsDirty() bool {
	return c.dirty
}
