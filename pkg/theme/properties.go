package theme

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
)

// Properties is a declarative key-value node parsed from a YAML
// description. Controls read their initial configuration from one of
// these at construction time.
//
// Accessors return the zero value (or the provided default) for keys
// that are absent or of the wrong shape; a missing declarative field
// is a normal condition.
type Properties map[string]any

// ParseProperties decodes a YAML document into a Properties tree.
func ParseProperties(data []byte) (Properties, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("theme.ParseProperties", errors.KindParse, err)
	}
	return Properties(raw), nil
}

// Has reports whether the key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the string value for key, or empty.
func (p Properties) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the numeric value for key, or def.
func (p Properties) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Int returns the integer value for key, or def.
func (p Properties) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

// Bool returns the boolean value for key, or def.
func (p Properties) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

// Child returns the nested Properties node for key.
func (p Properties) Child(key string) (Properties, bool) {
	switch v := p[key].(type) {
	case map[string]any:
		return Properties(v), true
	case Properties:
		return v, true
	default:
		return nil, false
	}
}

// ChildList returns the list of nested Properties nodes for key.
func (p Properties) ChildList(key string) []Properties {
	items, ok := p[key].([]any)
	if !ok {
		return nil
	}
	var children []Properties
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			children = append(children, Properties(m))
		}
	}
	return children
}

// floats extracts a fixed-length numeric list for key.
func (p Properties) floats(key string, n int) ([]float64, bool) {
	items, ok := p[key].([]any)
	if !ok || len(items) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, item := range items {
		switch v := item.(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		default:
			return nil, false
		}
	}
	return out, true
}

// Rect returns the [x, y, width, height] rectangle for key.
func (p Properties) Rect(key string) (graphics.Rect, bool) {
	v, ok := p.floats(key, 4)
	if !ok {
		return graphics.Rect{}, false
	}
	return graphics.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, true
}

// Insets returns the [top, bottom, left, right] side insets for key.
func (p Properties) Insets(key string) (graphics.SideInsets, bool) {
	v, ok := p.floats(key, 4)
	if !ok {
		return graphics.SideInsets{}, false
	}
	return graphics.SideInsets{Top: v[0], Bottom: v[1], Left: v[2], Right: v[3]}, true
}

// Color returns the "#RRGGBB" or "#RRGGBBAA" color for key.
func (p Properties) Color(key string) (graphics.Color, bool) {
	s, ok := p[key].(string)
	if !ok {
		return 0, false
	}
	c, err := ParseColor(s)
	if err != nil {
		return 0, false
	}
	return c, true
}

// ParseColor parses a "#RRGGBB" or "#RRGGBBAA" color string.
func ParseColor(s string) (graphics.Color, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(hexPart) != 6 && len(hexPart) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hexPart) == 6 {
		return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return graphics.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
