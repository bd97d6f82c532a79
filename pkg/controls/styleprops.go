package controls

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/text"
	"github.com/go-ember/ember/pkg/theme"
)

// Per-state property surface. Each setter takes a StateMask and writes
// an override for every state in the mask, lazily promoting the shared
// style to a private copy on the first write (copy-on-write). Each
// getter takes a single State and resolves override first, then the
// style's overlay for that state, then the normal overlay.

// forStates applies fn to the overlay of every state in the mask,
// promoting the style to a private copy first.
func (c *Control) forStates(states StateMask, fn func(*theme.Overlay)) {
	c.ownStyle()
	for _, s := range allStates {
		if states.Has(s) {
			fn(c.style.EnsureOverlay(s.overlayType()))
		}
	}
	c.markDirty()
}

// SetBorder sets the thickness of the control's themed border for
// every state in the mask.
func (c *Control) SetBorder(top, bottom, left, right float64, states StateMask) {
	insets := graphics.SideInsets{Top: top, Bottom: bottom, Left: left, Right: right}
	c.forStates(states, func(o *theme.Overlay) {
		o.Border = insets
	})
}

// Border returns the control's border thickness for the given state.
func (c *Control) Border(state State) graphics.SideInsets {
	return c.overlay(state).Border
}

// SetMargin sets the control's margin, consumed by the parent layout.
// Margin is per-style, not per-state.
func (c *Control) SetMargin(top, bottom, left, right float64) {
	c.ownStyle()
	c.style.SetMargin(graphics.SideInsets{Top: top, Bottom: bottom, Left: left, Right: right})
	c.markDirty()
}

// Margin returns the control's margin.
func (c *Control) Margin() graphics.SideInsets {
	return c.style.Margin()
}

// SetPadding sets the control's padding. Padding is per-style, not
// per-state.
func (c *Control) SetPadding(top, bottom, left, right float64) {
	c.ownStyle()
	c.style.SetPadding(graphics.SideInsets{Top: top, Bottom: bottom, Left: left, Right: right})
	c.markDirty()
}

// Padding returns the control's padding.
func (c *Control) Padding() graphics.SideInsets {
	return c.style.Padding()
}

// SetSkinRegion sets the texture region of the control's skin for
// every state in the mask.
func (c *Control) SetSkinRegion(region graphics.Rect, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		if o.Skin == nil {
			o.Skin = &theme.Skin{Color: graphics.ColorWhite}
		}
		o.Skin.Region = region
	})
}

// SkinRegion returns the skin's texture region for the given state.
// A state without a skin yields the zero rectangle.
func (c *Control) SkinRegion(state State) graphics.Rect {
	if skin := c.overlay(state).Skin; skin != nil {
		return skin.Region
	}
	return graphics.Rect{}
}

// SetSkinColor sets the skin's blend color for every state in the mask.
func (c *Control) SetSkinColor(color graphics.Color, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		if o.Skin == nil {
			o.Skin = &theme.Skin{}
		}
		o.Skin.Color = color
	})
}

// SkinColor returns the skin's blend color for the given state.
// A state without a skin yields the zero color.
func (c *Control) SkinColor(state State) graphics.Color {
	if skin := c.overlay(state).Skin; skin != nil {
		return skin.Color
	}
	return graphics.ColorTransparent
}

// SkinUVs derives the texture coordinates of one nine-slice cell of
// the control's skin for the given state. Pure derivation from the
// stored region; nothing is cached.
func (c *Control) SkinUVs(area theme.SkinArea, state State, textureWidth, textureHeight float64) graphics.UVs {
	o := c.overlay(state)
	if o.Skin == nil {
		return graphics.UVs{}
	}
	return theme.SkinUVs(o.Skin.Region, o.Border, area, textureWidth, textureHeight)
}

// SetImageRegion sets the texture region of the image with the given
// id for every state in the mask. States whose image list lacks the id
// gain an entry.
func (c *Control) SetImageRegion(id string, region graphics.Rect, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		img := ensureImage(o, id)
		img.Region = region
	})
}

// ImageRegion returns the texture region of the image with the given
// id for the given state. An unknown id yields the zero rectangle;
// absence of a themed image is a normal condition, not an error.
func (c *Control) ImageRegion(id string, state State) graphics.Rect {
	img, _ := c.overlay(state).Images.Image(id)
	return img.Region
}

// SetImageColor sets the blend color of the image with the given id
// for every state in the mask.
func (c *Control) SetImageColor(id string, color graphics.Color, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		img := ensureImage(o, id)
		img.Color = color
	})
}

// ImageColor returns the blend color of the image with the given id
// for the given state. An unknown id yields the zero color.
func (c *Control) ImageColor(id string, state State) graphics.Color {
	img, _ := c.overlay(state).Images.Image(id)
	return img.Color
}

// ImageUVs derives the texture coordinates of the image with the given
// id for the given state. An unknown id yields zero UVs.
func (c *Control) ImageUVs(id string, state State, textureWidth, textureHeight float64) graphics.UVs {
	img, ok := c.overlay(state).Images.Image(id)
	if !ok {
		return graphics.UVs{}
	}
	return graphics.UVsFromRegion(img.Region, textureWidth, textureHeight)
}

// SetCursorRegion sets the texture region of the control's cursor for
// every state in the mask.
func (c *Control) SetCursorRegion(region graphics.Rect, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.Cursor.Region = region
	})
}

// CursorRegion returns the cursor's texture region for the given state.
func (c *Control) CursorRegion(state State) graphics.Rect {
	return c.overlay(state).Cursor.Region
}

// SetCursorColor sets the cursor's blend color for every state in the
// mask.
func (c *Control) SetCursorColor(color graphics.Color, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.Cursor.Color = color
	})
}

// CursorColor returns the cursor's blend color for the given state.
func (c *Control) CursorColor(state State) graphics.Color {
	return c.overlay(state).Cursor.Color
}

// CursorUVs derives the cursor's texture coordinates for the given
// state.
func (c *Control) CursorUVs(state State, textureWidth, textureHeight float64) graphics.UVs {
	return graphics.UVsFromRegion(c.overlay(state).Cursor.Region, textureWidth, textureHeight)
}

// SetFont sets the font used by the control for every state in the
// mask.
func (c *Control) SetFont(f text.Font, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.Font = f
	})
}

// Font returns the font used by the control for the given state.
func (c *Control) Font(state State) text.Font {
	return c.overlay(state).Font
}

// SetFontSize sets the text size for every state in the mask.
func (c *Control) SetFontSize(size float64, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.FontSize = size
	})
}

// FontSize returns the text size for the given state.
func (c *Control) FontSize(state State) float64 {
	return c.overlay(state).FontSize
}

// SetTextColor sets the text blend color for every state in the mask.
func (c *Control) SetTextColor(color graphics.Color, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.TextColor = color
	})
}

// TextColor returns the text blend color for the given state.
func (c *Control) TextColor(state State) graphics.Color {
	return c.overlay(state).TextColor
}

// SetTextAlignment sets how text is justified within the viewport for
// every state in the mask.
func (c *Control) SetTextAlignment(align text.Align, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.TextAlign = align
	})
}

// TextAlignment returns the text justification for the given state.
func (c *Control) TextAlignment(state State) text.Align {
	return c.overlay(state).TextAlign
}

// SetTextRightToLeft sets whether text is drawn right to left for
// every state in the mask.
func (c *Control) SetTextRightToLeft(rightToLeft bool, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.TextRightToLeft = rightToLeft
	})
}

// TextRightToLeft reports whether text is drawn right to left for the
// given state.
func (c *Control) TextRightToLeft(state State) bool {
	return c.overlay(state).TextRightToLeft
}

// SetOpacity sets the draw opacity for every state in the mask.
func (c *Control) SetOpacity(opacity float64, states StateMask) {
	c.forStates(states, func(o *theme.Overlay) {
		o.Opacity = opacity
	})
}

// Opacity returns the draw opacity for the given state.
func (c *Control) Opacity(state State) float64 {
	return c.overlay(state).Opacity
}

// ensureImage returns the overlay's image entry with the given id,
// appending one when absent.
func ensureImage(o *theme.Overlay, id string) *theme.Image {
	if o.Images == nil {
		o.Images = &theme.ImageList{}
	}
	for i := range o.Images.Images {
		if o.Images.Images[i].ID == id {
			return &o.Images.Images[i]
		}
	}
	o.Images.Images = append(o.Images.Images, theme.Image{ID: id, Color: graphics.ColorWhite})
	return &o.Images.Images[len(o.Images.Images)-1]
}
