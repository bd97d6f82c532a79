// Package text provides the font contract used by controls to measure
// and draw themed text. Controls defer all glyph placement to a Font;
// the package ships an atlas-backed font for production rendering and a
// face-backed font for measurement-driven layout and tests.
package text

// Align positions text within an area. Horizontal and vertical bits are
// OR-combined; unspecified axes default to left and top.
type Align int

const (
	// AlignLeft aligns text to the left edge.
	AlignLeft Align = 0x01
	// AlignHCenter centers text horizontally.
	AlignHCenter Align = 0x02
	// AlignRight aligns text to the right edge.
	AlignRight Align = 0x04
	// AlignTop aligns text to the top edge.
	AlignTop Align = 0x10
	// AlignVCenter centers text vertically.
	AlignVCenter Align = 0x20
	// AlignBottom aligns text to the bottom edge.
	AlignBottom Align = 0x40

	AlignTopLeft       = AlignTop | AlignLeft
	AlignVCenterLeft   = AlignVCenter | AlignLeft
	AlignBottomLeft    = AlignBottom | AlignLeft
	AlignTopHCenter    = AlignTop | AlignHCenter
	AlignCenter        = AlignVCenter | AlignHCenter
	AlignBottomHCenter = AlignBottom | AlignHCenter
	AlignTopRight      = AlignTop | AlignRight
	AlignVCenterRight  = AlignVCenter | AlignRight
	AlignBottomRight   = AlignBottom | AlignRight
)

// ParseAlign maps a declarative alignment name to an Align value.
// Unknown names return AlignTopLeft.
func ParseAlign(name string) Align {
	switch name {
	case "left", "top-left":
		return AlignTopLeft
	case "center-left":
		return AlignVCenterLeft
	case "bottom-left":
		return AlignBottomLeft
	case "top-center":
		return AlignTopHCenter
	case "center":
		return AlignCenter
	case "bottom-center":
		return AlignBottomHCenter
	case "top-right":
		return AlignTopRight
	case "center-right":
		return AlignVCenterRight
	case "bottom-right":
		return AlignBottomRight
	default:
		return AlignTopLeft
	}
}
