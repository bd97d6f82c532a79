package controls

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

var skinAreas = [...]theme.SkinArea{
	theme.SkinTopLeft, theme.SkinTop, theme.SkinTopRight,
	theme.SkinLeft, theme.SkinCenter, theme.SkinRight,
	theme.SkinBottomLeft, theme.SkinBottom, theme.SkinBottomRight,
}

// Draw emits the control's quads into the batch: the clear-region
// protocol first, then the themed nine-slice skin, then the variant's
// images and text. clip is the parent's absolute clip rectangle.
//
// needsClear asks for the previous frame's region to be erased because
// the control's clipped area shrank or moved; cleared reports whether
// an ancestor already erased it this frame, preventing double clears.
// The return value reports whether this control or an ancestor erased
// the region, for containers to hand down to descendants.
func (c *Control) Draw(batch *sprite.Batch, clip graphics.Rect, needsClear, cleared bool, targetHeight float64) bool {
	if needsClear || c.needsClear {
		if !cleared && !c.clearBounds.IsEmpty() && !c.clearBounds.Equals(c.absoluteClipBounds) {
			batch.Clear(c.clearBounds)
			cleared = true
		}
		c.needsClear = false
	}
	c.clearBounds = c.absoluteClipBounds

	c.drawSkin(batch, clip)
	if c.variant != nil {
		c.variant.Draw(c, batch, clip, targetHeight)
	} else {
		c.drawImages(batch, clip)
	}
	return cleared
}

// drawSkin emits the nine-slice border and background quads for the
// current state.
func (c *Control) drawSkin(batch *sprite.Batch, clip graphics.Rect) {
	o := c.overlay(c.state)
	if o.Skin == nil {
		return
	}
	texture := c.styleTexture()
	var texW, texH float64
	if texture != nil {
		texW, texH = texture.Width, texture.Height
	}
	color := o.Skin.Color.ScaleAlpha(o.Opacity)
	for _, area := range skinAreas {
		dst := theme.SkinRegion(c.absoluteBounds, o.Border, area)
		if dst.IsEmpty() {
			continue
		}
		uv := theme.SkinUVs(o.Skin.Region, o.Border, area, texW, texH)
		batch.DrawClipped(texture, dst, clip, uv, color)
	}
}

// drawImages emits the overlay's themed images, stretched across the
// viewport and clipped to the viewport clip bounds. Variants that
// place images individually (check boxes, sliders) draw their own.
func (c *Control) drawImages(batch *sprite.Batch, clip graphics.Rect) {
	o := c.overlay(c.state)
	if o.Images == nil {
		return
	}
	texture := c.styleTexture()
	var texW, texH float64
	if texture != nil {
		texW, texH = texture.Width, texture.Height
	}
	imageClip := clip.Intersect(c.viewportClipBounds)
	for _, img := range o.Images.Images {
		if img.Region.IsEmpty() {
			continue
		}
		uv := graphics.UVsFromRegion(img.Region, texW, texH)
		batch.DrawClipped(texture, c.viewportBounds, imageClip, uv, img.Color.ScaleAlpha(o.Opacity))
	}
}

// styleTexture returns the theme texture the control draws from. The
// texture is propagated down the update walk from the owning form; it
// is nil outside a form tree, in which case quads are emitted
// untextured.
func (c *Control) styleTexture() *sprite.Texture {
	return c.texture
}

// SetTexture sets the theme texture the control's themed quads sample.
// Usually propagated by the owning form; exposed for harnesses that
// drive controls without one.
func (c *Control) SetTexture(texture *sprite.Texture) {
	c.texture = texture
}
