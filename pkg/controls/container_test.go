package controls_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/controls"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/uitest"
)

// coloredControl builds a control with a solid skin so its quads are
// identifiable in recorded draw output.
func coloredControl(id string, color graphics.Color) *controls.Control {
	style := theme.NewStyle(id, &theme.Overlay{
		Opacity: 1,
		Skin:    &theme.Skin{Region: graphics.Rect{Width: 8, Height: 8}, Color: color},
	})
	return controls.New(id, style)
}

func TestChildLookup(t *testing.T) {
	root := controls.NewContainer("root", nil, nil)
	inner := controls.NewContainer("inner", nil, nil)
	leaf := controls.New("leaf", nil)

	root.Add(inner)
	inner.Add(leaf)

	if got := root.Child("leaf"); got == nil || got.Base().ID() != "leaf" {
		t.Error("expected depth-first lookup to find the leaf")
	}
	if root.Child("nope") != nil {
		t.Error("unknown id should yield nil")
	}

	root.Remove(inner)
	if root.Child("leaf") != nil {
		t.Error("removed subtree still reachable")
	}
	if inner.Base().Parent() != nil {
		t.Error("removed child keeps its parent pointer")
	}
}

func TestZIndexDrawOrder(t *testing.T) {
	stage := uitest.NewStage(200, 200)
	defer stage.Close()

	red := graphics.RGB(255, 0, 0)
	blue := graphics.RGB(0, 0, 255)

	a := coloredControl("a", red)
	a.SetBounds(graphics.Rect{Width: 50, Height: 50})
	a.SetZIndex(5)
	b := coloredControl("b", blue)
	b.SetBounds(graphics.Rect{Width: 50, Height: 50})
	b.SetZIndex(1)

	// Insertion order a, b; z order must put b first.
	stage.Form().Add(a)
	stage.Form().Add(b)
	stage.Pump()

	quads := stage.Backend().Quads()
	if len(quads) == 0 {
		t.Fatal("expected skin quads")
	}
	firstRed, firstBlue := -1, -1
	for i, q := range quads {
		if q.Color == red && firstRed < 0 {
			firstRed = i
		}
		if q.Color == blue && firstBlue < 0 {
			firstBlue = i
		}
	}
	if firstBlue < 0 || firstRed < 0 {
		t.Fatal("missing colored quads")
	}
	if firstBlue > firstRed {
		t.Error("lower z-index must draw first (below)")
	}
}

func TestZIndexStableForTies(t *testing.T) {
	stage := uitest.NewStage(200, 200)
	defer stage.Close()

	red := graphics.RGB(255, 0, 0)
	blue := graphics.RGB(0, 0, 255)

	a := coloredControl("a", red)
	a.SetBounds(graphics.Rect{Width: 50, Height: 50})
	b := coloredControl("b", blue)
	b.SetBounds(graphics.Rect{Width: 50, Height: 50})

	stage.Form().Add(a)
	stage.Form().Add(b)
	stage.Pump()

	quads := stage.Backend().Quads()
	firstRed, firstBlue := -1, -1
	for i, q := range quads {
		if q.Color == red && firstRed < 0 {
			firstRed = i
		}
		if q.Color == blue && firstBlue < 0 {
			firstBlue = i
		}
	}
	if firstRed > firstBlue {
		t.Error("equal z-index must keep insertion order")
	}
}

func TestVerticalLayoutStacks(t *testing.T) {
	stage := uitest.NewStage(200, 300)
	defer stage.Close()

	ct := controls.NewContainer("col", nil, &controls.VerticalLayout{Spacing: 10})
	ct.SetBounds(graphics.Rect{Width: 200, Height: 300})
	stage.Form().Add(ct)

	a := controls.New("a", nil)
	a.SetBounds(graphics.Rect{Width: 100, Height: 20})
	b := controls.New("b", nil)
	b.SetBounds(graphics.Rect{Width: 100, Height: 30})
	ct.Add(a)
	ct.Add(b)

	stage.Pump()

	if got := a.AbsoluteBounds().Y; got != 0 {
		t.Errorf("first child y = %g, want 0", got)
	}
	if got := b.AbsoluteBounds().Y; got != 30 {
		t.Errorf("second child y = %g, want 30 (20 + spacing)", got)
	}
}

func TestVerticalLayoutHonorsMargins(t *testing.T) {
	stage := uitest.NewStage(200, 300)
	defer stage.Close()

	ct := controls.NewContainer("col", nil, controls.NewVerticalLayout())
	ct.SetBounds(graphics.Rect{Width: 200, Height: 300})
	stage.Form().Add(ct)

	a := controls.New("a", nil)
	a.SetBounds(graphics.Rect{Width: 100, Height: 20})
	a.SetMargin(5, 5, 0, 0)
	ct.Add(a)

	b := controls.New("b", nil)
	b.SetBounds(graphics.Rect{Width: 100, Height: 20})
	ct.Add(b)

	stage.Pump()

	if got := a.AbsoluteBounds().Y; got != 5 {
		t.Errorf("first child y = %g, want margin 5", got)
	}
	if got := b.AbsoluteBounds().Y; got != 30 {
		t.Errorf("second child y = %g, want 30 (5 + 20 + 5)", got)
	}
}

func TestFlowLayoutWraps(t *testing.T) {
	stage := uitest.NewStage(100, 300)
	defer stage.Close()

	ct := controls.NewContainer("flow", nil, controls.NewFlowLayout())
	ct.SetBounds(graphics.Rect{Width: 100, Height: 300})
	stage.Form().Add(ct)

	var children []*controls.Control
	for i := 0; i < 3; i++ {
		c := controls.New("c", nil)
		c.SetBounds(graphics.Rect{Width: 40, Height: 20})
		ct.Add(c)
		children = append(children, c)
	}

	stage.Pump()

	if got := children[0].AbsoluteBounds(); got.X != 0 || got.Y != 0 {
		t.Errorf("first child at %v", got.Origin())
	}
	if got := children[1].AbsoluteBounds(); got.X != 40 || got.Y != 0 {
		t.Errorf("second child at %v, want (40, 0)", got.Origin())
	}
	// Third child would end at 120 > 100, so it wraps.
	if got := children[2].AbsoluteBounds(); got.X != 0 || got.Y != 20 {
		t.Errorf("third child at %v, want (0, 20)", got.Origin())
	}
}

func TestAbsoluteLayoutAlignment(t *testing.T) {
	stage := uitest.NewStage(200, 100)
	defer stage.Close()

	c := controls.New("c", nil)
	c.SetBounds(graphics.Rect{Width: 50, Height: 20})
	c.SetAlignment(controls.AlignBottomRight)
	stage.Form().Add(c)

	stage.Pump()

	got := c.AbsoluteBounds()
	if got.X != 150 || got.Y != 80 {
		t.Errorf("aligned child at %v, want (150, 80)", got.Origin())
	}
}

func TestContainerDirtyPropagates(t *testing.T) {
	root := controls.NewContainer("root", nil, nil)
	child := controls.New("child", nil)
	root.Add(child)
	root.Update(nil, graphics.Offset{})

	if root.IsDirty() {
		t.Fatal("expected clean tree after update")
	}

	child.SetPosition(5, 5)
	if !root.IsDirty() {
		t.Error("child dirt must surface at the root")
	}
}

func TestAbsoluteLayoutLeadingMargins(t *testing.T) {
	stage := uitest.NewStage(200, 100)
	defer stage.Close()

	c := controls.New("c", nil)
	c.SetBounds(graphics.Rect{Width: 50, Height: 20})
	c.SetAlignment(controls.AlignTopLeft)
	c.SetMargin(4, 0, 6, 0)
	stage.Form().Add(c)

	stage.Pump()

	// Leading edges honor the leading margin, same as the trailing
	// edges honor theirs.
	got := c.AbsoluteBounds()
	if got.X != 6 || got.Y != 4 {
		t.Errorf("aligned child at %v, want (6, 4)", got.Origin())
	}
}
