package text

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

// Font measures and draws text for controls.
//
// Implementations own all glyph shaping and placement. Drawing emits
// quads into the supplied sprite batch; nothing is rendered directly.
type Font interface {
	// MeasureText returns the pixel extent of s rendered at the given
	// size. Newlines split s into multiple lines.
	MeasureText(s string, size float64) graphics.Size

	// DrawText emits quads for s into batch. The text is positioned
	// within area according to align, scaled to size, clipped against
	// clip, and laid out right-to-left per line when rightToLeft is set.
	DrawText(batch *sprite.Batch, s string, area, clip graphics.Rect, color graphics.Color, align Align, size float64, rightToLeft bool)
}

// layoutLines splits s on newlines. An empty string yields no lines.
func layoutLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// alignOrigin computes the top-left origin for a block of the given
// size within area.
func alignOrigin(area graphics.Rect, size graphics.Size, align Align) graphics.Offset {
	x := area.X
	switch {
	case align&AlignHCenter != 0:
		x = area.X + (area.Width-size.Width)/2
	case align&AlignRight != 0:
		x = area.Right() - size.Width
	}
	y := area.Y
	switch {
	case align&AlignVCenter != 0:
		y = area.Y + (area.Height-size.Height)/2
	case align&AlignBottom != 0:
		y = area.Bottom() - size.Height
	}
	return graphics.Offset{X: x, Y: y}
}

// alignLineX computes the x origin for a single line within a block of
// blockWidth starting at blockX.
func alignLineX(blockX, blockWidth, lineWidth float64, align Align) float64 {
	switch {
	case align&AlignHCenter != 0:
		return blockX + (blockWidth-lineWidth)/2
	case align&AlignRight != 0:
		return blockX + blockWidth - lineWidth
	default:
		return blockX
	}
}
