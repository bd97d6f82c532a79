package controls

import (
	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Form is the root of a control tree. It owns the sprite batch, feeds
// the theme texture down the update walk, and tracks which control is
// active (pressed) and focused so releases route to the control that
// saw the press even after the touch leaves it.
type Form struct {
	Container

	theme *theme.Theme
	batch *sprite.Batch

	active  Child
	focused Child
}

// NewForm builds a form styled by the named theme style. The form
// spans the given size at the screen origin.
func NewForm(id string, th *theme.Theme, styleName string, width, height float64) *Form {
	var style *theme.Style
	if th != nil {
		style = th.Style(styleName)
	}
	f := &Form{
		theme: th,
		batch: sprite.NewBatch(),
	}
	f.Container.Control.id = id
	f.Container.Control.setStyle(style)
	f.Container.Control.consumeTouchEvents = true
	f.Container.Control.dirty = true
	f.Container.layout = NewAbsoluteLayout()
	f.Container.Control.bounds = graphics.Rect{Width: width, Height: height}
	if th != nil {
		f.Container.Control.texture = th.Texture()
	}
	return f
}

// Theme returns the theme the form draws from.
func (f *Form) Theme() *theme.Theme { return f.theme }

// Update steps the animation registry against the package clock and,
// when any control in the tree is dirty, runs a geometry pass over
// the whole tree.
// A panic in a listener or layout is reported through the errors
// package rather than unwinding the frame loop.
func (f *Form) Update() {
	defer errors.Recover("controls.Form.Update")
	animation.StepTickers()
	if f.IsDirty() {
		f.Container.Update(nil, graphics.Offset{})
	}
}

// Draw emits the whole tree into the form's batch and flushes it to
// the backend. targetHeight is the render-target height, forwarded to
// variants that need to flip coordinates.
func (f *Form) Draw(backend sprite.Backend, targetHeight float64) {
	defer errors.Recover("controls.Form.Draw")
	f.batch.Start()
	f.Container.Draw(f.batch, f.absoluteClipBounds, false, false, targetHeight)
	f.batch.Finish(backend)
}

// TouchEvent routes a touch into the tree.
//
// A press walks the tree topmost-first and remembers the consuming
// control as active. Move and release events go straight to the
// active control, wherever the touch is now, so a drag that leaves
// the control still ends its press cycle. The release clears the
// active control and records it as focused.
func (f *Form) TouchEvent(evt input.TouchEvent, x, y float64, contactIndex int) bool {
	switch evt {
	case input.TouchPress:
		target := f.hit(x, y)
		if target == nil {
			return false
		}
		if target.TouchEvent(evt, x, y, contactIndex) {
			f.active = target
			f.focused = target
			return true
		}
		// The deepest hit declined the press, so each enclosing
		// container gets a turn. Base protocol only: the children
		// were already offered the press on the way down.
		for ct := target.Base().Parent(); ct != nil; ct = ct.Control.Parent() {
			if ct.Control.TouchEvent(evt, x, y, contactIndex) {
				f.active = ct
				f.focused = ct
				return true
			}
		}
		return false

	case input.TouchMove, input.TouchRelease:
		if f.active == nil {
			return false
		}
		consumed := f.active.TouchEvent(evt, x, y, contactIndex)
		if evt == input.TouchRelease {
			f.active = nil
		}
		return consumed
	}
	return false
}

// KeyEvent routes a key to the focused control, if any.
func (f *Form) KeyEvent(evt input.KeyEvent, key int) {
	if f.focused != nil {
		f.focused.KeyEvent(evt, key)
	}
}

// Focused returns the control that saw the most recent consumed
// press, or nil.
func (f *Form) Focused() Child { return f.focused }

// ClearFocus drops keyboard focus.
func (f *Form) ClearFocus() { f.focused = nil }

// hit returns the topmost enabled leaf control containing the point,
// or the deepest container when no leaf matches.
func (f *Form) hit(x, y float64) Child {
	return hitChild(&f.Container, x, y)
}

func hitChild(ct *Container, x, y float64) Child {
	ordered := ct.sortedChildren()
	for i := len(ordered) - 1; i >= 0; i-- {
		child := ordered[i]
		b := child.Base()
		if !b.IsEnabled() || !b.absoluteClipBounds.Contains(x, y) {
			continue
		}
		if nested, ok := child.(*Container); ok {
			if found := hitChild(nested, x, y); found != nil {
				return found
			}
		}
		return child
	}
	if ct.absoluteClipBounds.Contains(x, y) && ct.IsEnabled() {
		return ct
	}
	return nil
}
