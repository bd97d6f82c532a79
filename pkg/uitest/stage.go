package uitest

import (
	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/controls"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/theme"
)

// Stage drives a form through update and draw cycles against a fake
// clock and a recording backend.
type Stage struct {
	form    *controls.Form
	clock   *FakeClock
	backend *RecordingBackend

	restore animation.Clock
	height  float64
}

// NewStage builds a stage with an unthemed form of the given size and
// installs the fake clock as the animation clock. Call Close to
// restore the real clock.
func NewStage(width, height float64) *Stage {
	return NewStageWithTheme(nil, "", width, height)
}

// NewStageWithTheme builds a stage whose form draws from the given
// theme and style.
func NewStageWithTheme(th *theme.Theme, styleName string, width, height float64) *Stage {
	s := &Stage{
		clock:   NewFakeClock(),
		backend: NewRecordingBackend(),
		height:  height,
	}
	s.restore = animation.SetClock(s.clock)
	s.form = controls.NewForm("stage", th, styleName, width, height)
	return s
}

// Close restores the animation clock the stage displaced.
func (s *Stage) Close() {
	animation.SetClock(s.restore)
}

// Form returns the stage's root form.
func (s *Stage) Form() *controls.Form { return s.form }

// Clock returns the fake clock driving animations.
func (s *Stage) Clock() *FakeClock { return s.clock }

// Backend returns the recording backend holding the last frame.
func (s *Stage) Backend() *RecordingBackend { return s.backend }

// Pump runs one frame: animations step, dirty geometry revalidates,
// and the tree draws into a fresh recording.
func (s *Stage) Pump() {
	s.form.Update()
	s.backend.Reset()
	s.form.Draw(s.backend, s.height)
}

// Press delivers a touch press at the point.
func (s *Stage) Press(x, y float64) bool {
	return s.form.TouchEvent(input.TouchPress, x, y, 0)
}

// Move delivers a touch move at the point.
func (s *Stage) Move(x, y float64) bool {
	return s.form.TouchEvent(input.TouchMove, x, y, 0)
}

// Release delivers a touch release at the point.
func (s *Stage) Release(x, y float64) bool {
	return s.form.TouchEvent(input.TouchRelease, x, y, 0)
}

// Tap delivers a press immediately followed by a release at the same
// point.
func (s *Stage) Tap(x, y float64) {
	s.Press(x, y)
	s.Release(x, y)
}

// Key delivers a key event to the focused control.
func (s *Stage) Key(evt input.KeyEvent, key int) {
	s.form.KeyEvent(evt, key)
}
