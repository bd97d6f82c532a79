package controls

import (
	"math"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/theme"
)

// Themed image ids a slider looks up in its overlay's image list.
const (
	imageTrack  = "track"
	imageMarker = "marker"
)

// Slider is a horizontal value control. Pressing or dragging anywhere
// on the track moves the marker to the touch position and fires
// EventValueChanged.
type Slider struct {
	Control

	min, max float64
	step     float64
	value    float64
}

// NewSlider builds a slider over [min, max] starting at value. A step
// of zero means continuous values.
func NewSlider(id string, style *theme.Style, min, max, value float64) *Slider {
	s := &Slider{min: min, max: max}
	s.Control.id = id
	s.Control.setStyle(style)
	s.Control.consumeTouchEvents = true
	s.Control.dirty = true
	s.Control.variant = (*sliderVariant)(s)
	s.value = s.clamp(value)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue clamps v to the slider's range, snaps it to the step, and
// fires EventValueChanged on a transition.
func (s *Slider) SetValue(v float64) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	s.markDirty()
	s.notifyListeners(EventValueChanged)
}

// SetStep sets the snap increment. Zero disables snapping.
func (s *Slider) SetStep(step float64) {
	s.step = step
	s.SetValue(s.value)
}

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

func (s *Slider) clamp(v float64) float64 {
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	return v
}

type sliderVariant Slider

func (v *sliderVariant) Measure(c *Control, available graphics.Size) (graphics.Size, bool) {
	return graphics.Size{}, false
}

func (v *sliderVariant) Draw(c *Control, batch *sprite.Batch, clip graphics.Rect, targetHeight float64) {
	o := c.overlay(c.state)
	viewport := c.viewportBounds
	contentClip := clip.Intersect(c.viewportClipBounds)
	texture := c.styleTexture()
	var texW, texH float64
	if texture != nil {
		texW, texH = texture.Width, texture.Height
	}

	if track := c.ImageRegion(imageTrack, c.state); !track.IsEmpty() {
		trackHeight := track.Height
		dst := graphics.Rect{
			X:      viewport.X,
			Y:      viewport.Y + (viewport.Height-trackHeight)/2,
			Width:  viewport.Width,
			Height: trackHeight,
		}
		uv := graphics.UVsFromRegion(track, texW, texH)
		color := c.ImageColor(imageTrack, c.state).ScaleAlpha(o.Opacity)
		batch.DrawClipped(texture, dst, contentClip, uv, color)
	}

	if marker := c.ImageRegion(imageMarker, c.state); !marker.IsEmpty() {
		t := 0.0
		if v.max > v.min {
			t = (v.value - v.min) / (v.max - v.min)
		}
		dst := graphics.Rect{
			X:      viewport.X + t*(viewport.Width-marker.Width),
			Y:      viewport.Y + (viewport.Height-marker.Height)/2,
			Width:  marker.Width,
			Height: marker.Height,
		}
		uv := graphics.UVsFromRegion(marker, texW, texH)
		color := c.ImageColor(imageMarker, c.state).ScaleAlpha(o.Opacity)
		batch.DrawClipped(texture, dst, contentClip, uv, color)
	}
}

// TouchEvent maps the touch x position to a value while the slider is
// pressed.
func (v *sliderVariant) TouchEvent(c *Control, evt input.TouchEvent, x, y float64, contactIndex int) bool {
	switch evt {
	case input.TouchPress, input.TouchMove:
		if evt == input.TouchMove && c.state != StateActive {
			return false
		}
		viewport := c.viewportBounds
		if viewport.Width <= 0 {
			return false
		}
		t := (x - viewport.X) / viewport.Width
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		(*Slider)(v).SetValue(v.min + t*(v.max-v.min))
		return true
	}
	return false
}

func (v *sliderVariant) KeyEvent(c *Control, evt input.KeyEvent, key int) {}
