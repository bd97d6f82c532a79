package controls

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Themed image ids a check box looks up in its overlay's image list.
const (
	imageChecked   = "checked"
	imageUnchecked = "unchecked"
)

// CheckBox is a button with a boolean state, toggled on click. The
// icon comes from the overlay's "checked" and "unchecked" images and
// is drawn square, sized to the viewport height, to the left of the
// caption.
type CheckBox struct {
	Label

	checked bool
}

// NewCheckBox builds an unchecked check box with the given caption.
func NewCheckBox(id string, style *theme.Style, text string) *CheckBox {
	cb := &CheckBox{}
	cb.Control.id = id
	cb.Control.setStyle(style)
	cb.Control.consumeTouchEvents = true
	cb.Control.dirty = true
	cb.Label.text = text
	cb.Control.variant = (*checkBoxVariant)(cb)
	return cb
}

// Checked reports the toggle state.
func (cb *CheckBox) Checked() bool { return cb.checked }

// SetChecked sets the toggle state, firing EventValueChanged on a
// transition.
func (cb *CheckBox) SetChecked(checked bool) {
	if checked == cb.checked {
		return
	}
	cb.checked = checked
	cb.markDirty()
	cb.notifyListeners(EventValueChanged)
}

type checkBoxVariant CheckBox

// iconRegion resolves the themed region for the current toggle state.
func (v *checkBoxVariant) iconRegion(c *Control) graphics.Rect {
	id := imageUnchecked
	if v.checked {
		id = imageChecked
	}
	return c.ImageRegion(id, c.state)
}

func (v *checkBoxVariant) Measure(c *Control, available graphics.Size) (graphics.Size, bool) {
	size, ok := (*labelVariant)(&v.Label).Measure(c, available)
	if !ok {
		return graphics.Size{}, false
	}
	// Icon is square, as tall as the text block.
	size.Width += size.Height
	return size, true
}

func (v *checkBoxVariant) Draw(c *Control, batch *sprite.Batch, clip graphics.Rect, targetHeight float64) {
	o := c.overlay(c.state)
	viewport := c.viewportBounds
	iconSide := viewport.Height
	contentClip := clip.Intersect(c.viewportClipBounds)

	if region := v.iconRegion(c); !region.IsEmpty() {
		texture := c.styleTexture()
		var texW, texH float64
		if texture != nil {
			texW, texH = texture.Width, texture.Height
		}
		dst := graphics.Rect{X: viewport.X, Y: viewport.Y, Width: iconSide, Height: iconSide}
		uv := graphics.UVsFromRegion(region, texW, texH)
		id := imageUnchecked
		if v.checked {
			id = imageChecked
		}
		color := c.ImageColor(id, c.state).ScaleAlpha(o.Opacity)
		batch.DrawClipped(texture, dst, contentClip, uv, color)
	}

	if o.Font != nil && v.text != "" {
		textArea := graphics.Rect{
			X:      viewport.X + iconSide,
			Y:      viewport.Y,
			Width:  viewport.Width - iconSide,
			Height: viewport.Height,
		}
		color := o.TextColor.ScaleAlpha(o.Opacity)
		o.Font.DrawText(batch, v.text, textArea, contentClip, color, o.TextAlign, o.FontSize, o.TextRightToLeft)
	}
}

// TouchEvent toggles on a release inside the bounds. The base control
// protocol has already moved the state and fired the click by the
// time this hook runs.
func (v *checkBoxVariant) TouchEvent(c *Control, evt input.TouchEvent, x, y float64, contactIndex int) bool {
	if evt == input.TouchRelease && c.absoluteClipBounds.Contains(x, y) {
		(*CheckBox)(v).SetChecked(!v.checked)
		return true
	}
	return false
}

func (v *checkBoxVariant) KeyEvent(c *Control, evt input.KeyEvent, key int) {}
