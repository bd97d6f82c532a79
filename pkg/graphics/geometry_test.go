package graphics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ember/ember/pkg/graphics"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b graphics.Rect
		want graphics.Rect
	}{
		{
			name: "overlap",
			a:    graphics.Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    graphics.Rect{X: 50, Y: 50, Width: 100, Height: 100},
			want: graphics.Rect{X: 50, Y: 50, Width: 50, Height: 50},
		},
		{
			name: "contained",
			a:    graphics.Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    graphics.Rect{X: 10, Y: 20, Width: 30, Height: 40},
			want: graphics.Rect{X: 10, Y: 20, Width: 30, Height: 40},
		},
		{
			name: "disjoint",
			a:    graphics.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    graphics.Rect{X: 50, Y: 50, Width: 10, Height: 10},
			want: graphics.Rect{X: 50, Y: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := graphics.Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) {
		t.Error("expected top-left corner to be contained")
	}
	if !r.Contains(29, 29) {
		t.Error("expected interior point to be contained")
	}
	if r.Contains(30, 30) {
		t.Error("expected bottom-right edge to be excluded")
	}
	if r.Contains(5, 15) {
		t.Error("expected outside point to be excluded")
	}
}

func TestSideInsetsShrink(t *testing.T) {
	insets := graphics.SideInsets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	got := insets.Shrink(graphics.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	want := graphics.Rect{X: 4, Y: 2, Width: 92, Height: 46}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Shrink mismatch (-want +got):\n%s", diff)
	}
}

func TestSideInsetsShrinkOversized(t *testing.T) {
	insets := graphics.SideInsets{Top: 30, Bottom: 30, Left: 60, Right: 60}
	got := insets.Shrink(graphics.Rect{Width: 100, Height: 50})
	if !got.IsEmpty() {
		t.Errorf("expected empty rect when insets exceed size, got %v", got)
	}
}

func TestUVsFromRegion(t *testing.T) {
	uv := graphics.UVsFromRegion(graphics.Rect{X: 64, Y: 32, Width: 128, Height: 64}, 512, 256)
	want := graphics.UVs{U1: 0.125, V1: 0.125, U2: 0.375, V2: 0.375}
	if diff := cmp.Diff(want, uv); diff != "" {
		t.Errorf("UVsFromRegion mismatch (-want +got):\n%s", diff)
	}
}

func TestColorScaleAlpha(t *testing.T) {
	c := graphics.RGBA(10, 20, 30, 200)
	if got := c.ScaleAlpha(1); got != c {
		t.Errorf("full opacity should be identity, got %#x", uint32(got))
	}
	if got := c.ScaleAlpha(0.5).Alpha(); got != 100 {
		t.Errorf("expected alpha 100, got %d", got)
	}
	if got := c.ScaleAlpha(-1).Alpha(); got != 0 {
		t.Errorf("expected clamped alpha 0, got %d", got)
	}
}

func TestLerpColor(t *testing.T) {
	a := graphics.RGBA(0, 0, 0, 0)
	b := graphics.RGBA(200, 100, 50, 255)
	mid := graphics.LerpColor(a, b, 0.5)
	r, g, bl, al := mid.Bytes()
	if r != 100 || g != 50 || bl != 25 || al != 127 {
		t.Errorf("unexpected midpoint %d,%d,%d,%d", r, g, bl, al)
	}
}
