package theme

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/text"
)

// Theme owns a texture atlas and the styles that reference regions of
// it. Styles are handed out shared; controls clone before mutating.
type Theme struct {
	texture *sprite.Texture
	styles  map[string]*Style
	fonts   map[string]text.Font
	lists   map[string]*ImageList
}

// New creates an empty theme over the given texture atlas.
func New(texture *sprite.Texture) *Theme {
	return &Theme{
		texture: texture,
		styles:  make(map[string]*Style),
		fonts:   make(map[string]text.Font),
		lists:   make(map[string]*ImageList),
	}
}

// Texture returns the theme's texture atlas.
func (t *Theme) Texture() *sprite.Texture {
	return t.texture
}

// Style returns the shared style with the given name, or nil when the
// theme defines none. A nil result is a normal condition for callers
// that fall back to defaults.
func (t *Theme) Style(name string) *Style {
	return t.styles[name]
}

// AddStyle registers a style under its name, replacing any previous
// entry.
func (t *Theme) AddStyle(s *Style) {
	if s == nil {
		return
	}
	t.styles[s.name] = s
}

// StyleNames returns the names of all registered styles.
func (t *Theme) StyleNames() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	return names
}

// Font returns the registered font with the given name, or nil.
// Fonts are registered by the embedding application; rasterization is
// outside the theme's concern.
func (t *Theme) Font(name string) text.Font {
	return t.fonts[name]
}

// RegisterFont makes a font available to styles under the given name.
// Styles loaded before registration pick the font up on resolve.
func (t *Theme) RegisterFont(name string, f text.Font) {
	t.fonts[name] = f
}

// ImageList returns the shared image list with the given name, or nil.
func (t *Theme) ImageList(name string) *ImageList {
	return t.lists[name]
}

// AddImageList registers a named image list.
func (t *Theme) AddImageList(name string, l *ImageList) {
	if l == nil {
		return
	}
	t.lists[name] = l
}

// UVs derives normalized texture coordinates for a pixel region of the
// theme texture. A theme without a texture yields zero UVs.
func (t *Theme) UVs(region graphics.Rect) graphics.UVs {
	if t.texture == nil {
		return graphics.UVs{}
	}
	return graphics.UVsFromRegion(region, t.texture.Width, t.texture.Height)
}
