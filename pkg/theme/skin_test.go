package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

func TestSkinRegionNineSlice(t *testing.T) {
	region := graphics.Rect{X: 10, Y: 20, Width: 100, Height: 60}
	border := graphics.SideInsets{Top: 4, Bottom: 6, Left: 8, Right: 12}

	tests := []struct {
		area theme.SkinArea
		want graphics.Rect
	}{
		{theme.SkinTopLeft, graphics.Rect{X: 10, Y: 20, Width: 8, Height: 4}},
		{theme.SkinTop, graphics.Rect{X: 18, Y: 20, Width: 80, Height: 4}},
		{theme.SkinTopRight, graphics.Rect{X: 98, Y: 20, Width: 12, Height: 4}},
		{theme.SkinLeft, graphics.Rect{X: 10, Y: 24, Width: 8, Height: 50}},
		{theme.SkinCenter, graphics.Rect{X: 18, Y: 24, Width: 80, Height: 50}},
		{theme.SkinRight, graphics.Rect{X: 98, Y: 24, Width: 12, Height: 50}},
		{theme.SkinBottomLeft, graphics.Rect{X: 10, Y: 74, Width: 8, Height: 6}},
		{theme.SkinBottom, graphics.Rect{X: 18, Y: 74, Width: 80, Height: 6}},
		{theme.SkinBottomRight, graphics.Rect{X: 98, Y: 74, Width: 12, Height: 6}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, theme.SkinRegion(region, border, tt.area), "area %d", tt.area)
	}
}

func TestSkinRegionZeroBorderCollapsesFrame(t *testing.T) {
	region := graphics.Rect{X: 0, Y: 0, Width: 50, Height: 50}
	var border graphics.SideInsets

	assert.True(t, theme.SkinRegion(region, border, theme.SkinTopLeft).IsEmpty())
	assert.True(t, theme.SkinRegion(region, border, theme.SkinRight).IsEmpty())
	assert.Equal(t, region, theme.SkinRegion(region, border, theme.SkinCenter))
}

func TestSkinUVs(t *testing.T) {
	region := graphics.Rect{X: 0, Y: 0, Width: 64, Height: 64}
	border := graphics.SideInsets{Top: 16, Bottom: 16, Left: 16, Right: 16}

	uv := theme.SkinUVs(region, border, theme.SkinCenter, 128, 128)
	assert.Equal(t, graphics.UVs{U1: 0.125, V1: 0.125, U2: 0.375, V2: 0.375}, uv)
}
