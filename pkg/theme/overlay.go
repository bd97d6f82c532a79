// Package theme holds the shared visual configuration controls render
// from: styles made of per-state overlays, nine-slice skins, image
// lists and the declarative properties used to initialize controls.
//
// Styles are owned by a Theme and shared by many controls. A control
// never mutates a shared style; it clones the style first and mutates
// its private copy (copy-on-write, driven from the controls package).
package theme

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/text"
)

// OverlayType selects which of a style's overlays applies. Each type
// corresponds to one control state.
type OverlayType int

const (
	// OverlayNormal is the overlay for an enabled, inactive control.
	OverlayNormal OverlayType = iota
	// OverlayFocus is the overlay for a focused control.
	OverlayFocus
	// OverlayActive is the overlay for a control being acted on.
	OverlayActive
	// OverlayDisabled is the overlay for a disabled control.
	OverlayDisabled

	// OverlayMax is the number of overlay types.
	OverlayMax
)

// String returns the declarative name of the overlay type.
func (t OverlayType) String() string {
	switch t {
	case OverlayNormal:
		return "normal"
	case OverlayFocus:
		return "focus"
	case OverlayActive:
		return "active"
	case OverlayDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseOverlayType maps a declarative name to an OverlayType.
func ParseOverlayType(name string) (OverlayType, bool) {
	switch name {
	case "normal":
		return OverlayNormal, true
	case "focus":
		return OverlayFocus, true
	case "active":
		return OverlayActive, true
	case "disabled":
		return OverlayDisabled, true
	default:
		return OverlayNormal, false
	}
}

// Skin is the textured background of a control: a pixel region of the
// theme texture blended with a color, stretched as a nine-slice grid.
type Skin struct {
	// Region is the skin's pixel region within the theme texture.
	Region graphics.Rect
	// Color is the blend color applied to the skin quads.
	Color graphics.Color
}

// Image is a named themed image: a texture region plus blend color.
type Image struct {
	// ID identifies the image within its list.
	ID string
	// Region is the image's pixel region within the theme texture.
	Region graphics.Rect
	// Color is the blend color applied to the image quad.
	Color graphics.Color
}

// ImageList is an ordered collection of themed images drawn by a
// control in declaration order.
type ImageList struct {
	// Images holds the list entries in draw order.
	Images []Image
}

// Image returns the entry with the given id. The second return value
// is false when no entry matches; the zero Image is a normal result,
// not an error.
func (l *ImageList) Image(id string) (Image, bool) {
	if l == nil {
		return Image{}, false
	}
	for _, img := range l.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// clone returns a deep copy of the list.
func (l *ImageList) clone() *ImageList {
	if l == nil {
		return nil
	}
	images := make([]Image, len(l.Images))
	copy(images, l.Images)
	return &ImageList{Images: images}
}

// Overlay is the full set of visual attributes for one control state.
// Overlays are value-like: controls read them every draw and only
// mutate private copies obtained through Style.Clone.
type Overlay struct {
	// Skin is the nine-slice background, nil when the state draws none.
	Skin *Skin
	// Images lists the themed images drawn inside the viewport.
	Images *ImageList
	// Cursor is the themed cursor image for this state.
	Cursor Image
	// Border is the thickness of the skin's nine-slice frame, consumed
	// by both layout and skin slicing.
	Border graphics.SideInsets
	// Font renders the control's text. May be nil for image-only styles.
	Font text.Font
	// FontSize is the text pixel size.
	FontSize float64
	// TextColor is the text blend color.
	TextColor graphics.Color
	// TextAlign positions text within the control viewport.
	TextAlign text.Align
	// TextRightToLeft lays out each text line right to left.
	TextRightToLeft bool
	// Opacity scales the alpha of everything this overlay draws.
	Opacity float64
}

// clone returns a deep copy of the overlay. The font is shared; fonts
// are immutable services, not overlay data.
func (o *Overlay) clone() *Overlay {
	if o == nil {
		return nil
	}
	dup := *o
	if o.Skin != nil {
		skin := *o.Skin
		dup.Skin = &skin
	}
	dup.Images = o.Images.clone()
	return &dup
}
