package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

// FaceFont measures text with a golang.org/x/image/font Face.
//
// Without a glyph atlas it cannot sample a texture, so DrawText emits
// one untextured quad per glyph, sized from the face metrics. That is
// enough for layout work and for asserting draw output in tests; atlas
// fonts supply production rendering.
type FaceFont struct {
	// Face provides glyph metrics.
	Face font.Face
	// BaseSize is the pixel size Face was created at. Zero disables
	// scaling.
	BaseSize float64
}

// NewFaceFont wraps a font face created at the given pixel size.
func NewFaceFont(face font.Face, baseSize float64) *FaceFont {
	return &FaceFont{Face: face, BaseSize: baseSize}
}

func (f *FaceFont) scale(size float64) float64 {
	if f.BaseSize <= 0 || size <= 0 {
		return 1
	}
	return size / f.BaseSize
}

func (f *FaceFont) lineHeight() float64 {
	return fixedToFloat(f.Face.Metrics().Height)
}

// MeasureText returns the pixel extent of s at the given size.
func (f *FaceFont) MeasureText(s string, size float64) graphics.Size {
	lines := layoutLines(s)
	if len(lines) == 0 {
		return graphics.Size{}
	}
	scale := f.scale(size)
	var width float64
	for _, line := range lines {
		w := fixedToFloat(font.MeasureString(f.Face, line)) * scale
		if w > width {
			width = w
		}
	}
	return graphics.Size{
		Width:  width,
		Height: float64(len(lines)) * f.lineHeight() * scale,
	}
}

// DrawText emits one solid quad per glyph into batch.
func (f *FaceFont) DrawText(batch *sprite.Batch, s string, area, clip graphics.Rect, color graphics.Color, align Align, size float64, rightToLeft bool) {
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
		lineW := fixedToFloat(font.MeasureString(f.Face, line)) * scale
		x := alignLineX(origin.X, block.Width, lineW, align)
		runes := []rune(line)
		if rightToLeft {
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
		}
		for _, r := range runes {
			adv, ok := f.Face.GlyphAdvance(r)
			if !ok {
				continue
			}
			w := fixedToFloat(adv) * scale
			dst := graphics.Rect{X: x, Y: y, Width: w, Height: lineH}
			batch.DrawClipped(nil, dst, clip, graphics.UVs{}, color)
			x += w
		}
		y += lineH
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
