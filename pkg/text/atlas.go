package text

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

// Glyph describes one character in a texture atlas.
type Glyph struct {
	// Region is the glyph's pixel region within the atlas texture.
	Region graphics.Rect
	// Advance is the horizontal pen advance at the font's base size.
	// Zero means the region width is used.
	Advance float64
}

// AtlasFont draws text from a pre-rasterized glyph atlas, the way game
// engines typically ship fonts. Scaling is uniform from BaseSize.
type AtlasFont struct {
	// Texture is the atlas all glyph regions address.
	Texture *sprite.Texture
	// BaseSize is the pixel height the atlas glyphs were rasterized at.
	BaseSize float64
	// LineHeight is the baseline-to-baseline distance at BaseSize.
	// Zero means BaseSize is used.
	LineHeight float64
	// Glyphs maps runes to their atlas entries. Runes absent from the
	// map are skipped with the advance of a space, if one is present.
	Glyphs map[rune]Glyph
}

func (f *AtlasFont) scale(size float64) float64 {
	if f.BaseSize <= 0 || size <= 0 {
		return 1
	}
	return size / f.BaseSize
}

func (f *AtlasFont) lineHeight() float64 {
	if f.LineHeight > 0 {
		return f.LineHeight
	}
	return f.BaseSize
}

func (f *AtlasFont) advance(g Glyph) float64 {
	if g.Advance > 0 {
		return g.Advance
	}
	return g.Region.Width
}

func (f *AtlasFont) lineWidth(line string, scale float64) float64 {
	var w float64
	for _, r := range line {
		g, ok := f.Glyphs[r]
		if !ok {
			g, ok = f.Glyphs[' ']
			if !ok {
				continue
			}
		}
		w += f.advance(g) * scale
	}
	return w
}

// MeasureText returns the pixel extent of s at the given size.
func (f *AtlasFont) MeasureText(s string, size float64) graphics.Size {
	lines := layoutLines(s)
	if len(lines) == 0 {
		return graphics.Size{}
	}
	scale := f.scale(size)
	var width float64
	for _, line := range lines {
		if w := f.lineWidth(line, scale); w > width {
			width = w
		}
	}
	return graphics.Size{
		Width:  width,
		Height: float64(len(lines)) * f.lineHeight() * scale,
	}
}

// DrawText emits one clipped quad per glyph into batch.
func (f *AtlasFont) DrawText(batch *sprite.Batch, s string, area, clip graphics.Rect, color graphics.Color, align Align, size float64, rightToLeft bool) {
	lines := layoutLines(s)
	if len(lines) == 0 {
		return
	}
	scale := f.scale(size)
	block := f.MeasureText(s, size)
	origin := alignOrigin(area, block, align)
	lineH := f.lineHeight() * scale

	y := origin.Y
	for _, line := range lines {
		lineW := f.lineWidth(line, scale)
		x := alignLineX(origin.X, block.Width, lineW, align)
		runes := []rune(line)
		if rightToLeft {
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
		}
		for _, r := range runes {
			g, ok := f.Glyphs[r]
			if !ok {
				g, ok = f.Glyphs[' ']
				if !ok {
					continue
				}
				x += f.advance(g) * scale
				continue
			}
			dst := graphics.Rect{
				X:      x,
				Y:      y,
				Width:  g.Region.Width * scale,
				Height: g.Region.Height * scale,
			}
			uv := graphics.UVsFromRegion(g.Region, f.Texture.Width, f.Texture.Height)
			batch.DrawClipped(f.Texture, dst, clip, uv, color)
			x += f.advance(g) * scale
		}
		y += lineH
	}
}
