package controls

import "github.com/go-ember/ember/pkg/graphics"

// Geometry surface. Six rectangles are recomputed on every update
// pass, in construction order: bounds (desired, parent-relative,
// pre-clip), absoluteBounds (screen-relative, pre-clip),
// viewportBounds (content area, minus border and padding), and the
// clipped counterpart of each. Clipped rectangles are always contained
// in their pre-clip counterparts and in the ancestor clip chain.

// ClipBounds returns the bounds relative to the parent, after clipping.
func (c *Control) ClipBounds() graphics.Rect { return c.clipBounds }

// AbsoluteBounds returns the screen-space bounds, before clipping.
func (c *Control) AbsoluteBounds() graphics.Rect { return c.absoluteBounds }

// AbsoluteClipBounds returns the screen-space bounds, after clipping.
func (c *Control) AbsoluteClipBounds() graphics.Rect { return c.absoluteClipBounds }

// ViewportBounds returns the screen-space content area (bounds minus
// border and padding), before clipping.
func (c *Control) ViewportBounds() graphics.Rect { return c.viewportBounds }

// ViewportClipBounds returns the screen-space content area after
// clipping. Text and images draw inside this rectangle.
func (c *Control) ViewportClipBounds() graphics.Rect { return c.viewportClipBounds }

// Update revalidates the control's geometry against its parent and
// clears the dirty flag.
//
// The parent supplies the clip chain: the control's absolute position
// is its bounds offset from the parent's viewport origin (plus the
// layout offset), and every clipped rectangle is the intersection of
// its pre-clip counterpart with the parent's absolute clip bounds. A
// nil parent means the control is a root with no clip restriction.
func (c *Control) Update(parent *Container, offset graphics.Offset) {
	c.parent = parent
	if parent != nil {
		c.texture = parent.Base().texture
	}

	var available graphics.Size
	var origin graphics.Offset
	var clip graphics.Rect
	unclipped := parent == nil
	if parent != nil {
		base := parent.Base()
		available = base.viewportBounds.Size()
		origin = base.viewportBounds.Origin()
		clip = base.absoluteClipBounds
	}

	width, height := c.bounds.Width, c.bounds.Height
	if c.autoWidth {
		width = available.Width
	}
	if c.autoHeight {
		height = available.Height
	}
	if c.variant != nil && (c.autoWidth || c.autoHeight) {
		if content, ok := c.variant.Measure(c, available); ok {
			if c.autoWidth {
				width = content.Width
			}
			if c.autoHeight {
				height = content.Height
			}
		}
	}
	c.bounds.Width, c.bounds.Height = width, height

	previousClip := c.absoluteClipBounds

	c.absoluteBounds = graphics.Rect{
		X:      origin.X + offset.X + c.bounds.X,
		Y:      origin.Y + offset.Y + c.bounds.Y,
		Width:  width,
		Height: height,
	}
	if unclipped {
		clip = c.absoluteBounds
	}
	c.absoluteClipBounds = c.absoluteBounds.Intersect(clip)

	localClip := clip.Translate(graphics.Offset{X: -(origin.X + offset.X), Y: -(origin.Y + offset.Y)})
	c.clipBounds = c.bounds.Intersect(localClip)

	inner := c.Border(c.state)
	padding := c.Padding()
	inner.Top += padding.Top
	inner.Bottom += padding.Bottom
	inner.Left += padding.Left
	inner.Right += padding.Right
	c.viewportBounds = inner.Shrink(c.absoluteBounds)
	c.viewportClipBounds = c.viewportBounds.Intersect(c.absoluteClipBounds)

	if !previousClip.Equals(c.absoluteClipBounds) {
		c.clearBounds = previousClip
		c.needsClear = true
	}

	c.dirty = false
}
