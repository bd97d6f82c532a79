package theme

import "github.com/go-ember/ember/pkg/graphics"

// Style is a named bundle of up to four overlays, one per control
// state. Every style carries a normal overlay; the others are optional
// and fall back to normal on lookup.
//
// Styles loaded from a theme are shared across controls and must be
// treated as immutable. Clone produces the private copy a control
// mutates after a per-state property override.
type Style struct {
	name     string
	margin   graphics.SideInsets
	padding  graphics.SideInsets
	overlays [OverlayMax]*Overlay
}

// NewStyle creates a style with the mandatory normal overlay.
// A nil normal overlay is replaced with an empty one so lookups always
// resolve.
func NewStyle(name string, normal *Overlay) *Style {
	if normal == nil {
		normal = &Overlay{Opacity: 1}
	}
	s := &Style{name: name}
	s.overlays[OverlayNormal] = normal
	return s
}

// Name returns the style's theme-unique name.
func (s *Style) Name() string {
	return s.name
}

// Overlay returns the overlay for the given type, falling back to the
// normal overlay when the state has none.
func (s *Style) Overlay(t OverlayType) *Overlay {
	if t >= 0 && t < OverlayMax {
		if o := s.overlays[t]; o != nil {
			return o
		}
	}
	return s.overlays[OverlayNormal]
}

// HasOverlay reports whether the style defines its own overlay for the
// given type, as opposed to falling back to normal.
func (s *Style) HasOverlay(t OverlayType) bool {
	return t >= 0 && t < OverlayMax && s.overlays[t] != nil
}

// SetOverlay installs an overlay for the given type. Setting the
// normal overlay to nil is ignored; every style keeps one.
func (s *Style) SetOverlay(t OverlayType, o *Overlay) {
	if t < 0 || t >= OverlayMax {
		return
	}
	if t == OverlayNormal && o == nil {
		return
	}
	s.overlays[t] = o
}

// EnsureOverlay returns the overlay stored for the given type,
// creating it as a copy of the normal overlay if absent. Used when a
// per-state override must materialize a previously shared state.
func (s *Style) EnsureOverlay(t OverlayType) *Overlay {
	if t < 0 || t >= OverlayMax {
		t = OverlayNormal
	}
	if s.overlays[t] == nil {
		s.overlays[t] = s.overlays[OverlayNormal].clone()
	}
	return s.overlays[t]
}

// Margin returns the style's margin, consumed by parent layouts.
func (s *Style) Margin() graphics.SideInsets {
	return s.margin
}

// SetMargin sets the style's margin.
func (s *Style) SetMargin(m graphics.SideInsets) {
	s.margin = m
}

// Padding returns the style's padding.
func (s *Style) Padding() graphics.SideInsets {
	return s.padding
}

// SetPadding sets the style's padding.
func (s *Style) SetPadding(p graphics.SideInsets) {
	s.padding = p
}

// Clone returns a deep copy of the style. The copy shares no overlay
// storage with the original, so mutating it never aliases back into
// the theme's shared style.
func (s *Style) Clone() *Style {
	dup := &Style{
		name:    s.name,
		margin:  s.margin,
		padding: s.padding,
	}
	for i, o := range s.overlays {
		dup.overlays[i] = o.clone()
	}
	return dup
}
