package theme

import "github.com/go-ember/ember/pkg/graphics"

// SkinArea identifies one cell of a skin's nine-slice grid.
type SkinArea int

const (
	SkinTopLeft SkinArea = iota
	SkinTop
	SkinTopRight
	SkinLeft
	SkinCenter
	SkinRight
	SkinBottomLeft
	SkinBottom
	SkinBottomRight

	// SkinAreaMax is the number of nine-slice cells.
	SkinAreaMax
)

// SkinRegion returns the pixel sub-region of a skin region for one
// nine-slice cell, given the border thickness that frames the grid.
// Pure function of its inputs.
func SkinRegion(region graphics.Rect, border graphics.SideInsets, area SkinArea) graphics.Rect {
	left := region.X
	top := region.Y
	midX := region.X + border.Left
	midY := region.Y + border.Top
	rightX := region.Right() - border.Right
	bottomY := region.Bottom() - border.Bottom
	midW := region.Width - border.Horizontal()
	midH := region.Height - border.Vertical()

	switch area {
	case SkinTopLeft:
		return graphics.Rect{X: left, Y: top, Width: border.Left, Height: border.Top}
	case SkinTop:
		return graphics.Rect{X: midX, Y: top, Width: midW, Height: border.Top}
	case SkinTopRight:
		return graphics.Rect{X: rightX, Y: top, Width: border.Right, Height: border.Top}
	case SkinLeft:
		return graphics.Rect{X: left, Y: midY, Width: border.Left, Height: midH}
	case SkinCenter:
		return graphics.Rect{X: midX, Y: midY, Width: midW, Height: midH}
	case SkinRight:
		return graphics.Rect{X: rightX, Y: midY, Width: border.Right, Height: midH}
	case SkinBottomLeft:
		return graphics.Rect{X: left, Y: bottomY, Width: border.Left, Height: border.Bottom}
	case SkinBottom:
		return graphics.Rect{X: midX, Y: bottomY, Width: midW, Height: border.Bottom}
	case SkinBottomRight:
		return graphics.Rect{X: rightX, Y: bottomY, Width: border.Right, Height: border.Bottom}
	default:
		return graphics.Rect{}
	}
}

// SkinUVs derives the texture coordinates of one nine-slice cell from
// the skin's pixel region and the owning texture's dimensions.
func SkinUVs(region graphics.Rect, border graphics.SideInsets, area SkinArea, textureWidth, textureHeight float64) graphics.UVs {
	return graphics.UVsFromRegion(SkinRegion(region, border, area), textureWidth, textureHeight)
}
