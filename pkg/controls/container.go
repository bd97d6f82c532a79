package controls

import (
	"sort"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Container is a control that owns an ordered set of children and a
// layout that positions them. Children draw in ascending z-index
// order; touch events route in the opposite order so the topmost
// child sees the event first.
type Container struct {
	Control

	children []Child
	layout   Layout

	// pressed is the child that consumed the current press, so the
	// matching move and release route back to it regardless of where
	// the touch has wandered.
	pressed Child
}

// NewContainer builds a container with the given layout. A nil layout
// falls back to absolute positioning.
func NewContainer(id string, style *theme.Style, layout Layout) *Container {
	if layout == nil {
		layout = NewAbsoluteLayout()
	}
	ct := &Container{layout: layout}
	ct.Control.id = id
	ct.Control.setStyle(style)
	ct.Control.consumeTouchEvents = true
	ct.Control.dirty = true
	return ct
}

func (ct *Container) IsContainer() bool { return true }

// Layout returns the container's layout.
func (ct *Container) Layout() Layout { return ct.layout }

// SetLayout replaces the layout and schedules a repositioning pass.
func (ct *Container) SetLayout(layout Layout) {
	if layout == nil {
		layout = NewAbsoluteLayout()
	}
	ct.layout = layout
	ct.markDirty()
}

// Add appends a child. The child keeps its insertion order among
// children with equal z-index.
func (ct *Container) Add(child Child) {
	if child == nil {
		return
	}
	ct.children = append(ct.children, child)
	child.Base().parent = ct
	ct.markDirty()
}

// Remove detaches a child. Removing a child that is not present is a
// no-op.
func (ct *Container) Remove(child Child) {
	for i, existing := range ct.children {
		if existing == child {
			ct.children = append(ct.children[:i], ct.children[i+1:]...)
			child.Base().parent = nil
			if ct.pressed == child {
				ct.pressed = nil
			}
			ct.markDirty()
			return
		}
	}
}

// Children returns the children in insertion order.
func (ct *Container) Children() []Child { return ct.children }

// Child looks up a descendant by id, depth first.
func (ct *Container) Child(id string) Child {
	for _, child := range ct.children {
		if child.Base().ID() == id {
			return child
		}
		if nested, ok := child.(*Container); ok {
			if found := nested.Child(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// sortedChildren returns the children ordered by ascending z-index.
// The sort is stable so equal z-indices keep insertion order.
func (ct *Container) sortedChildren() []Child {
	ordered := make([]Child, len(ct.children))
	copy(ordered, ct.children)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Base().zIndex < ordered[j].Base().zIndex
	})
	return ordered
}

// Update revalidates the container's own geometry, then runs the
// layout so every child revalidates against the fresh viewport.
func (ct *Container) Update(parent *Container, offset graphics.Offset) {
	ct.Control.Update(parent, offset)
	for _, child := range ct.children {
		child.Base().texture = ct.texture
	}
	ct.layout.Update(ct)
}

// Draw emits the container's own quads, then the children's in
// ascending z-index order. Children clip against this container's
// absolute clip bounds.
//
// Each child receives the same cleared flag, reflecting ancestors
// only: a container's erase covers every descendant's previous clip,
// but a sibling's erase covers a disjoint region and must not
// suppress another child's clear.
func (ct *Container) Draw(batch *sprite.Batch, clip graphics.Rect, needsClear, cleared bool, targetHeight float64) bool {
	cleared = ct.Control.Draw(batch, clip, needsClear, cleared, targetHeight)
	childClip := ct.absoluteClipBounds
	for _, child := range ct.sortedChildren() {
		child.Draw(batch, childClip, needsClear, cleared, targetHeight)
	}
	return cleared
}

// TouchEvent routes a press to children topmost first, stopping at
// the first child that consumes it and remembering that child. The
// matching move and release go to the remembered child only; when no
// child consumed the press, the container's own protocol handles the
// whole press cycle.
func (ct *Container) TouchEvent(evt input.TouchEvent, x, y float64, contactIndex int) bool {
	if ct.state == StateDisabled {
		return false
	}
	switch evt {
	case input.TouchPress:
		ordered := ct.sortedChildren()
		for i := len(ordered) - 1; i >= 0; i-- {
			child := ordered[i]
			b := child.Base()
			if !b.IsEnabled() || !b.absoluteClipBounds.Contains(x, y) {
				continue
			}
			if child.TouchEvent(evt, x, y, contactIndex) {
				ct.pressed = child
				return true
			}
		}
		ct.pressed = nil
		return ct.Control.TouchEvent(evt, x, y, contactIndex)

	case input.TouchMove, input.TouchRelease:
		target := ct.pressed
		if evt == input.TouchRelease {
			ct.pressed = nil
		}
		if target != nil {
			return target.TouchEvent(evt, x, y, contactIndex)
		}
		return ct.Control.TouchEvent(evt, x, y, contactIndex)
	}
	return false
}

// KeyEvent forwards the key to every enabled child.
func (ct *Container) KeyEvent(evt input.KeyEvent, key int) {
	if ct.state == StateDisabled {
		return
	}
	for _, child := range ct.children {
		if child.Base().IsEnabled() {
			child.KeyEvent(evt, key)
		}
	}
	ct.Control.KeyEvent(evt, key)
}

// IsDirty reports whether the container or any descendant needs a
// geometry pass.
func (ct *Container) IsDirty() bool {
	if ct.dirty {
		return true
	}
	for _, child := range ct.children {
		if child.IsDirty() {
			return true
		}
	}
	return false
}
