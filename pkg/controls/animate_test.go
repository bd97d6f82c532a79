package controls_test

import (
	"testing"
	"time"

	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/controls"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/uitest"
)

func TestAnimationComponentCounts(t *testing.T) {
	c := controls.New("c", nil)
	tests := []struct {
		property int
		want     int
	}{
		{controls.AnimatePosition, 2},
		{controls.AnimateSize, 2},
		{controls.AnimatePositionX, 1},
		{controls.AnimatePositionY, 1},
		{controls.AnimateWidth, 1},
		{controls.AnimateHeight, 1},
		{controls.AnimateOpacity, 1},
		{99, 0},
	}
	for _, tt := range tests {
		if got := c.AnimationComponentCount(tt.property); got != tt.want {
			t.Errorf("component count for %d = %d, want %d", tt.property, got, tt.want)
		}
	}
}

func TestAnimationValueRoundTrip(t *testing.T) {
	c := controls.New("c", nil)
	c.SetBounds(graphics.Rect{X: 3, Y: 7, Width: 40, Height: 20})

	out := make([]float64, 2)
	c.AnimationValue(controls.AnimatePosition, out)
	if out[0] != 3 || out[1] != 7 {
		t.Errorf("position components = %v", out)
	}
	c.AnimationValue(controls.AnimateSize, out)
	if out[0] != 40 || out[1] != 20 {
		t.Errorf("size components = %v", out)
	}

	c.SetAnimationValue(controls.AnimatePosition, []float64{10, 20}, 1)
	if c.X() != 10 || c.Y() != 20 {
		t.Errorf("position after set = (%g, %g)", c.X(), c.Y())
	}
}

func TestSetAnimationValueBlendWeight(t *testing.T) {
	c := controls.New("c", nil)
	c.SetPosition(0, 0)

	// Half weight mixes the incoming value with the current one.
	c.SetAnimationValue(controls.AnimatePositionX, []float64{100}, 0.5)
	if c.X() != 50 {
		t.Errorf("x after half blend = %g, want 50", c.X())
	}
	c.SetAnimationValue(controls.AnimatePositionX, []float64{100}, 1)
	if c.X() != 100 {
		t.Errorf("x after full weight = %g, want 100", c.X())
	}
}

func TestOpacityAnimatesAcrossStates(t *testing.T) {
	c := controls.New("c", basicStyle())

	c.SetAnimationValue(controls.AnimateOpacity, []float64{0.25}, 1)
	for _, state := range []controls.State{
		controls.StateNormal, controls.StateFocus,
		controls.StateActive, controls.StateDisabled,
	} {
		if got := c.Opacity(state); got != 0.25 {
			t.Errorf("opacity for %v = %g, want 0.25", state, got)
		}
	}
}

func TestPropertyAnimationDrivesControl(t *testing.T) {
	stage := uitest.NewStage(400, 300)
	defer stage.Close()

	c := controls.New("c", nil)
	c.SetBounds(graphics.Rect{X: 0, Y: 0, Width: 50, Height: 20})
	stage.Form().Add(c)
	stage.Pump()

	anim := animation.NewPropertyAnimation(c, controls.AnimatePosition,
		[]float64{0, 0}, []float64{100, 60}, 100*time.Millisecond)
	defer anim.Dispose()
	anim.Play()

	stage.Clock().Advance(50 * time.Millisecond)
	stage.Pump()
	if c.X() != 50 || c.Y() != 30 {
		t.Errorf("midpoint position = (%g, %g), want (50, 30)", c.X(), c.Y())
	}

	stage.Clock().Advance(50 * time.Millisecond)
	stage.Pump()
	if c.X() != 100 || c.Y() != 60 {
		t.Errorf("end position = (%g, %g), want (100, 60)", c.X(), c.Y())
	}
	if got := c.AbsoluteBounds().X; got != 100 {
		t.Errorf("geometry pass did not pick up the animated position, x = %g", got)
	}
}
