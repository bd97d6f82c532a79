package theme

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/text"
)

// SupportedFormat is the theme file format major version this loader
// accepts. Files declare their format as a semver string; only the
// major version is compared.
const SupportedFormat = "v1"

// Loader builds a Theme from a YAML theme description.
//
// Fonts are runtime objects and cannot be declared in the file; the
// loader resolves font names against the Fonts map and falls back to
// DefaultFont for styles that name no font.
type Loader struct {
	// Fonts maps declarative font names to font objects.
	Fonts map[string]text.Font
	// DefaultFont is used when an overlay names no font.
	DefaultFont text.Font
	// Texture is the atlas handle the theme draws from. The loader
	// only needs its dimensions for UV derivation.
	Texture *sprite.Texture
}

type themeFile struct {
	Format     string                 `yaml:"format"`
	Texture    textureSpec            `yaml:"texture"`
	ImageLists map[string][]imageSpec `yaml:"image-lists"`
	Styles     map[string]styleSpec   `yaml:"styles"`
}

type textureSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type imageSpec struct {
	ID     string    `yaml:"id"`
	Region []float64 `yaml:"region"`
	Color  string    `yaml:"color"`
}

type styleSpec struct {
	Margin   []float64              `yaml:"margin"`
	Padding  []float64              `yaml:"padding"`
	Overlays map[string]overlaySpec `yaml:"overlays"`
}

type skinSpec struct {
	Region []float64 `yaml:"region"`
	Color  string    `yaml:"color"`
}

type overlaySpec struct {
	Skin          *skinSpec   `yaml:"skin"`
	Border        []float64   `yaml:"border"`
	Images        []imageSpec `yaml:"images"`
	ImageList     string      `yaml:"image-list"`
	Cursor        *imageSpec  `yaml:"cursor"`
	Font          string      `yaml:"font"`
	FontSize      float64     `yaml:"font-size"`
	TextColor     string      `yaml:"text-color"`
	TextAlignment string      `yaml:"text-alignment"`
	RightToLeft   bool        `yaml:"right-to-left"`
	Opacity       *float64    `yaml:"opacity"`
}

// LoadFile reads and parses a theme description from disk.
func (l *Loader) LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{Op: "theme.LoadFile", Kind: errors.KindResource, Err: err, Path: path}
	}
	t, err := l.Load(data)
	if err != nil {
		if uiErr, ok := err.(*errors.UIError); ok {
			uiErr.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Load parses a theme description from YAML bytes.
func (l *Loader) Load(data []byte) (*Theme, error) {
	const op = "theme.Load"

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(op, errors.KindParse, err)
	}

	if !semver.IsValid(file.Format) {
		return nil, errors.Newf(op, errors.KindTheme, "invalid format version %q", file.Format)
	}
	if semver.Major(file.Format) != SupportedFormat {
		return nil, errors.Newf(op, errors.KindTheme, "unsupported format %s: this loader reads %s themes", file.Format, SupportedFormat)
	}

	texture := l.Texture
	if texture == nil {
		texture = &sprite.Texture{Width: file.Texture.Width, Height: file.Texture.Height}
	}

	t := New(texture)

	for name, specs := range file.ImageLists {
		list, err := decodeImageList(specs)
		if err != nil {
			return nil, errors.Newf(op, errors.KindTheme, "image list %q: %v", name, err)
		}
		t.AddImageList(name, list)
	}

	for name, spec := range file.Styles {
		style, err := l.decodeStyle(t, name, spec)
		if err != nil {
			return nil, errors.Newf(op, errors.KindTheme, "style %q: %v", name, err)
		}
		t.AddStyle(style)
	}

	return t, nil
}

func (l *Loader) decodeStyle(t *Theme, name string, spec styleSpec) (*Style, error) {
	normalSpec, ok := spec.Overlays[OverlayNormal.String()]
	if !ok {
		return nil, fmt.Errorf("missing mandatory %q overlay", OverlayNormal)
	}

	normal, err := l.decodeOverlay(t, normalSpec)
	if err != nil {
		return nil, fmt.Errorf("overlay %q: %w", OverlayNormal, err)
	}
	style := NewStyle(name, normal)

	if m, err := decodeInsets(spec.Margin); err != nil {
		return nil, fmt.Errorf("margin: %w", err)
	} else {
		style.SetMargin(m)
	}
	if p, err := decodeInsets(spec.Padding); err != nil {
		return nil, fmt.Errorf("padding: %w", err)
	} else {
		style.SetPadding(p)
	}

	for key, overlaySpec := range spec.Overlays {
		overlayType, ok := ParseOverlayType(key)
		if !ok {
			return nil, fmt.Errorf("unknown overlay %q", key)
		}
		if overlayType == OverlayNormal {
			continue
		}
		overlay, err := l.decodeOverlay(t, overlaySpec)
		if err != nil {
			return nil, fmt.Errorf("overlay %q: %w", key, err)
		}
		style.SetOverlay(overlayType, overlay)
	}

	return style, nil
}

func (l *Loader) decodeOverlay(t *Theme, spec overlaySpec) (*Overlay, error) {
	o := &Overlay{
		FontSize:        spec.FontSize,
		TextAlign:       text.ParseAlign(spec.TextAlignment),
		TextRightToLeft: spec.RightToLeft,
		TextColor:       graphics.ColorWhite,
		Opacity:         1,
	}
	if spec.Opacity != nil {
		o.Opacity = *spec.Opacity
	}

	if spec.Skin != nil {
		region, err := decodeRegion(spec.Skin.Region)
		if err != nil {
			return nil, fmt.Errorf("skin region: %w", err)
		}
		color, err := decodeColor(spec.Skin.Color, graphics.ColorWhite)
		if err != nil {
			return nil, fmt.Errorf("skin color: %w", err)
		}
		o.Skin = &Skin{Region: region, Color: color}
	}

	border, err := decodeInsets(spec.Border)
	if err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	o.Border = border

	switch {
	case spec.ImageList != "":
		list := t.ImageList(spec.ImageList)
		if list == nil {
			return nil, fmt.Errorf("unknown image list %q", spec.ImageList)
		}
		o.Images = list.clone()
	case len(spec.Images) > 0:
		list, err := decodeImageList(spec.Images)
		if err != nil {
			return nil, err
		}
		o.Images = list
	}

	if spec.Cursor != nil {
		cursor, err := decodeImage(*spec.Cursor)
		if err != nil {
			return nil, fmt.Errorf("cursor: %w", err)
		}
		o.Cursor = cursor
	}

	if spec.TextColor != "" {
		color, err := ParseColor(spec.TextColor)
		if err != nil {
			return nil, err
		}
		o.TextColor = color
	}

	if spec.Font != "" {
		font, ok := l.Fonts[spec.Font]
		if !ok {
			return nil, fmt.Errorf("unknown font %q", spec.Font)
		}
		o.Font = font
	} else {
		o.Font = l.DefaultFont
	}

	return o, nil
}

func decodeImageList(specs []imageSpec) (*ImageList, error) {
	list := &ImageList{}
	for _, spec := range specs {
		img, err := decodeImage(spec)
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", spec.ID, err)
		}
		list.Images = append(list.Images, img)
	}
	return list, nil
}

func decodeImage(spec imageSpec) (Image, error) {
	region, err := decodeRegion(spec.Region)
	if err != nil {
		return Image{}, err
	}
	color, err := decodeColor(spec.Color, graphics.ColorWhite)
	if err != nil {
		return Image{}, err
	}
	return Image{ID: spec.ID, Region: region, Color: color}, nil
}

func decodeRegion(v []float64) (graphics.Rect, error) {
	if len(v) != 4 {
		return graphics.Rect{}, fmt.Errorf("want [x, y, width, height], got %d values", len(v))
	}
	return graphics.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func decodeInsets(v []float64) (graphics.SideInsets, error) {
	if len(v) == 0 {
		return graphics.SideInsets{}, nil
	}
	if len(v) != 4 {
		return graphics.SideInsets{}, fmt.Errorf("want [top, bottom, left, right], got %d values", len(v))
	}
	return graphics.SideInsets{Top: v[0], Bottom: v[1], Left: v[2], Right: v[3]}, nil
}

func decodeColor(s string, def graphics.Color) (graphics.Color, error) {
	if s == "" {
		return def, nil
	}
	return ParseColor(s)
}
