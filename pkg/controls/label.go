package controls

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Label is a control that renders a string of themed text. It does
// not consume touches.
type Label struct {
	Control

	text string
}

// NewLabel builds a label with the given text.
func NewLabel(id string, style *theme.Style, text string) *Label {
	l := &Label{text: text}
	l.Control.id = id
	l.Control.setStyle(style)
	l.Control.dirty = true
	l.Control.variant = (*labelVariant)(l)
	return l
}

// Text returns the label's string.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's string and fires EventTextChanged.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.markDirty()
	l.notifyListeners(EventTextChanged)
}

// labelVariant carries the label's measure and draw hooks. A separate
// type keeps the Control surface free of the Variant methods, so
// embedding Label (as Button does) does not leak them.
type labelVariant Label

func (v *labelVariant) Measure(c *Control, available graphics.Size) (graphics.Size, bool) {
	o := c.overlay(c.state)
	if o.Font == nil || v.text == "" {
		return graphics.Size{}, false
	}
	size := o.Font.MeasureText(v.text, o.FontSize)
	inner := c.Border(c.state)
	padding := c.Padding()
	size.Width += inner.Left + inner.Right + padding.Left + padding.Right
	size.Height += inner.Top + inner.Bottom + padding.Top + padding.Bottom
	return size, true
}

func (v *labelVariant) Draw(c *Control, batch *sprite.Batch, clip graphics.Rect, targetHeight float64) {
	o := c.overlay(c.state)
	if o.Font == nil || v.text == "" {
		return
	}
	textClip := clip.Intersect(c.viewportClipBounds)
	color := o.TextColor.ScaleAlpha(o.Opacity)
	o.Font.DrawText(batch, v.text, c.viewportBounds, textClip, color, o.TextAlign, o.FontSize, o.TextRightToLeft)
}

func (v *labelVariant) TouchEvent(c *Control, evt input.TouchEvent, x, y float64, contactIndex int) bool {
	return false
}

func (v *labelVariant) KeyEvent(c *Control, evt input.KeyEvent, key int) {}
