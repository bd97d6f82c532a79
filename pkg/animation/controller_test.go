package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/uitest"
)

// withFakeClock installs a fake clock for the test and restores the
// real one afterwards.
func withFakeClock(t *testing.T) *uitest.FakeClock {
	t.Helper()
	clock := uitest.NewFakeClock()
	previous := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(previous) })
	return clock
}

func TestControllerForward(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if c.Status() != animation.StatusForward {
		t.Fatalf("expected forward status, got %v", c.Status())
	}
	if !animation.HasActiveTickers() {
		t.Fatal("expected an active ticker")
	}

	clock.Advance(50 * time.Millisecond)
	animation.StepTickers()
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("expected value 0.5 at midpoint, got %g", c.Value)
	}

	clock.Advance(50 * time.Millisecond)
	animation.StepTickers()
	if c.Value != 1 {
		t.Errorf("expected value 1 at end, got %g", c.Value)
	}
	if c.Status() != animation.StatusCompleted {
		t.Errorf("expected completed status, got %v", c.Status())
	}
	if c.IsAnimating() {
		t.Error("expected animation to be stopped")
	}
}

func TestControllerReverseFromCompleted(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()

	c.Reverse()
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()

	if c.Value != 0 {
		t.Errorf("expected value 0 after reverse, got %g", c.Value)
	}
	if c.Status() != animation.StatusDismissed {
		t.Errorf("expected dismissed status, got %v", c.Status())
	}
}

func TestControllerListeners(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	ticks := 0
	unsubscribe := c.AddListener(func() { ticks++ })

	c.Forward()
	clock.Advance(50 * time.Millisecond)
	animation.StepTickers()
	if ticks == 0 {
		t.Fatal("expected listener to fire on tick")
	}

	seen := ticks
	unsubscribe()
	clock.Advance(50 * time.Millisecond)
	animation.StepTickers()
	if ticks != seen {
		t.Error("expected unsubscribed listener to stay silent")
	}
}

func TestControllerZeroDurationSnaps(t *testing.T) {
	withFakeClock(t)

	c := animation.NewController(0)
	defer c.Dispose()

	c.Forward()
	animation.StepTickers()
	if c.Value != 1 {
		t.Errorf("expected immediate snap to 1, got %g", c.Value)
	}
	if animation.HasActiveTickers() {
		t.Error("expected ticker to stop after snapping")
	}
}

func TestCurves(t *testing.T) {
	for _, curve := range []func(float64) float64{
		animation.LinearCurve, animation.Ease, animation.EaseIn,
		animation.EaseOut, animation.EaseInOut,
	} {
		if got := curve(0); math.Abs(got) > 1e-6 {
			t.Errorf("curve(0) = %g, want 0", got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("curve(1) = %g, want 1", got)
		}
	}

	// Monotonic on the unit interval.
	prev := 0.0
	for i := 1; i <= 10; i++ {
		v := animation.EaseInOut(float64(i) / 10)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at %d/10: %g < %g", i, v, prev)
		}
		prev = v
	}
	if animation.EaseIn(0.25) >= 0.25 {
		t.Error("EaseIn should start slower than linear")
	}
	if animation.EaseOut(0.25) <= 0.25 {
		t.Error("EaseOut should start faster than linear")
	}
}

func TestTweenFloat(t *testing.T) {
	tw := animation.TweenFloat(10, 30)
	if got := tw.Evaluate(0.5); got != 20 {
		t.Errorf("Evaluate(0.5) = %g, want 20", got)
	}
	if got := tw.Evaluate(0); got != 10 {
		t.Errorf("Evaluate(0) = %g, want 10", got)
	}
}
