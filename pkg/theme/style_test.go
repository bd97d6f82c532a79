package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

func TestStyleOverlayFallsBackToNormal(t *testing.T) {
	normal := &theme.Overlay{Opacity: 1, TextColor: graphics.ColorWhite}
	s := theme.NewStyle("basic", normal)

	assert.Same(t, normal, s.Overlay(theme.OverlayNormal))
	assert.Same(t, normal, s.Overlay(theme.OverlayFocus), "missing overlay should fall back to normal")
	assert.Same(t, normal, s.Overlay(theme.OverlayActive))
	assert.Same(t, normal, s.Overlay(theme.OverlayDisabled))

	focus := &theme.Overlay{Opacity: 0.5}
	s.SetOverlay(theme.OverlayFocus, focus)
	assert.Same(t, focus, s.Overlay(theme.OverlayFocus))
	assert.Same(t, normal, s.Overlay(theme.OverlayActive), "other slots still fall back")
}

func TestStyleHasOverlay(t *testing.T) {
	s := theme.NewStyle("basic", &theme.Overlay{Opacity: 1})
	assert.True(t, s.HasOverlay(theme.OverlayNormal))
	assert.False(t, s.HasOverlay(theme.OverlayFocus))

	s.SetOverlay(theme.OverlayFocus, &theme.Overlay{Opacity: 1})
	assert.True(t, s.HasOverlay(theme.OverlayFocus))
}

func TestEnsureOverlayClonesNormal(t *testing.T) {
	normal := &theme.Overlay{
		Opacity:   1,
		TextColor: graphics.RGB(10, 20, 30),
		Border:    graphics.SideInsets{Top: 2, Bottom: 2, Left: 2, Right: 2},
	}
	s := theme.NewStyle("basic", normal)

	active := s.EnsureOverlay(theme.OverlayActive)
	require.NotNil(t, active)
	assert.NotSame(t, normal, active, "ensured overlay must be a copy")
	assert.Equal(t, normal.TextColor, active.TextColor)
	assert.Equal(t, normal.Border, active.Border)

	active.TextColor = graphics.ColorBlack
	assert.Equal(t, graphics.RGB(10, 20, 30), normal.TextColor, "mutation must not leak into normal")

	assert.Same(t, active, s.EnsureOverlay(theme.OverlayActive), "second ensure returns the same overlay")
}

func TestStyleCloneIsDeep(t *testing.T) {
	normal := &theme.Overlay{
		Opacity: 1,
		Skin:    &theme.Skin{Region: graphics.Rect{Width: 10, Height: 10}, Color: graphics.ColorWhite},
		Images: &theme.ImageList{Images: []theme.Image{
			{ID: "checked", Region: graphics.Rect{Width: 8, Height: 8}, Color: graphics.ColorWhite},
		}},
	}
	s := theme.NewStyle("basic", normal)
	s.SetMargin(graphics.SideInsets{Top: 1, Bottom: 1, Left: 1, Right: 1})

	dup := s.Clone()
	require.NotNil(t, dup)
	assert.Equal(t, s.Margin(), dup.Margin())

	dup.Overlay(theme.OverlayNormal).Skin.Color = graphics.ColorBlack
	assert.Equal(t, graphics.ColorWhite, normal.Skin.Color, "clone must not share skins")

	dupImg, ok := dup.Overlay(theme.OverlayNormal).Images.Image("checked")
	require.True(t, ok)
	assert.Equal(t, "checked", dupImg.ID)
}

func TestThemeStyleLookup(t *testing.T) {
	th := theme.New(nil)
	assert.Nil(t, th.Style("missing"))

	th.AddStyle(theme.NewStyle("basic", &theme.Overlay{Opacity: 1}))
	require.NotNil(t, th.Style("basic"))
	assert.Equal(t, []string{"basic"}, th.StyleNames())
}
