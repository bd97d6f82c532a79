package controls

import (
	"os"
	"strings"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/text"
	"github.com/go-ember/ember/pkg/theme"
)

// Initialize applies declarative properties to the control:
// geometry (position, size, bounds, auto sizing), alignment, z-index,
// enablement, and per-state style overrides.
//
// Recognized state sections are "normal", "focus", "active" and
// "disabled"; properties inside them go through the state override
// setters, so a control initialized with overrides detaches from the
// shared style.
func (c *Control) Initialize(style *theme.Style, props theme.Properties) {
	if style != nil {
		c.setStyle(style)
	}

	if pos, ok := props.Rect("bounds"); ok {
		c.SetBounds(pos)
	}
	if v, ok := props.Child("position"); ok {
		c.SetPosition(v.Float("x", c.bounds.X), v.Float("y", c.bounds.Y))
	}
	if v, ok := props.Child("size"); ok {
		c.SetSize(v.Float("width", c.bounds.Width), v.Float("height", c.bounds.Height))
	}
	c.SetAutoWidth(props.Bool("auto-width", c.autoWidth))
	c.SetAutoHeight(props.Bool("auto-height", c.autoHeight))
	if props.Has("alignment") {
		c.SetAlignment(ParseAlignment(props.String("alignment")))
	}
	if props.Has("z-index") {
		c.SetZIndex(props.Int("z-index", c.zIndex))
	}
	if props.Has("consume-touch") {
		c.SetConsumeTouchEvents(props.Bool("consume-touch", c.consumeTouchEvents))
	}
	if !props.Bool("enabled", true) {
		c.Disable()
	}

	for _, state := range allStates {
		if section, ok := props.Child(state.String()); ok {
			c.applyOverrides(section, state.Mask())
		}
	}
}

// applyOverrides routes one state section's entries through the
// override setters.
func (c *Control) applyOverrides(section theme.Properties, states StateMask) {
	if v, ok := section.Insets("border"); ok {
		c.SetBorder(v.Top, v.Bottom, v.Left, v.Right, states)
	}
	if v, ok := section.Rect("skin-region"); ok {
		c.SetSkinRegion(v, states)
	}
	if v, ok := section.Color("skin-color"); ok {
		c.SetSkinColor(v, states)
	}
	if v, ok := section.Color("text-color"); ok {
		c.SetTextColor(v, states)
	}
	if section.Has("font-size") {
		c.SetFontSize(section.Float("font-size", 0), states)
	}
	if section.Has("text-alignment") {
		c.SetTextAlignment(text.ParseAlign(section.String("text-alignment")), states)
	}
	if section.Has("right-to-left") {
		c.SetTextRightToLeft(section.Bool("right-to-left", false), states)
	}
	if section.Has("opacity") {
		c.SetOpacity(section.Float("opacity", 1), states)
	}
}

// BuildControl constructs a control from a declarative node. The
// "type" entry selects the variant; the "style" entry names a style in
// the theme; everything else flows through Initialize. Containers
// build their "children" list recursively.
func BuildControl(th *theme.Theme, props theme.Properties) (Child, error) {
	kind := strings.ToLower(props.String("type"))
	id := props.String("id")

	var style *theme.Style
	if th != nil {
		if name := props.String("style"); name != "" {
			style = th.Style(name)
			if style == nil {
				return nil, errors.Newf("controls.BuildControl", errors.KindParse,
					"control %q references unknown style %q", id, name)
			}
		}
	}

	var child Child
	switch kind {
	case "label":
		child = NewLabel(id, style, props.String("text"))
	case "button":
		child = NewButton(id, style, props.String("text"))
	case "checkbox":
		cb := NewCheckBox(id, style, props.String("text"))
		cb.SetChecked(props.Bool("checked", false))
		child = cb
	case "slider":
		s := NewSlider(id, style,
			props.Float("min", 0), props.Float("max", 1), props.Float("value", 0))
		s.SetStep(props.Float("step", 0))
		child = s
	case "container", "":
		ct := NewContainer(id, style, parseLayout(props.String("layout")))
		for _, spec := range props.ChildList("children") {
			nested, err := BuildControl(th, spec)
			if err != nil {
				return nil, err
			}
			ct.Add(nested)
		}
		child = ct
	default:
		return nil, errors.Newf("controls.BuildControl", errors.KindParse,
			"control %q has unknown type %q", id, kind)
	}

	child.Base().Initialize(style, props)
	return child, nil
}

// parseLayout maps a layout name to an instance. Unknown names fall
// back to absolute.
func parseLayout(name string) Layout {
	switch name {
	case "vertical":
		return NewVerticalLayout()
	case "flow":
		return NewFlowLayout()
	}
	return NewAbsoluteLayout()
}

// LoadForm reads a declarative form description (YAML) and builds the
// form and its control tree.
func LoadForm(path string, th *theme.Theme) (*Form, error) {
	const op = "controls.LoadForm"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{Op: op, Kind: errors.KindResource, Err: err, Path: path}
	}
	props, err := theme.ParseProperties(data)
	if err != nil {
		return nil, &errors.UIError{Op: op, Kind: errors.KindParse, Err: err, Path: path}
	}

	f := NewForm(props.String("id"), th, props.String("style"),
		props.Float("width", 0), props.Float("height", 0))
	f.SetLayout(parseLayout(props.String("layout")))
	f.Initialize(f.style, props)
	for _, spec := range props.ChildList("children") {
		child, err := BuildControl(th, spec)
		if err != nil {
			if uiErr, ok := err.(*errors.UIError); ok {
				uiErr.Path = path
			}
			return nil, err
		}
		f.Add(child)
	}
	return f, nil
}
