//go:build raylib

// Package rl renders sprite batches through raylib. It is compiled
// only under the raylib build tag so headless builds and tests carry
// no cgo dependency.
package rl

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

// Backend draws batch operations into the current raylib frame. Use
// it between rl.BeginDrawing and rl.EndDrawing.
type Backend struct {
	// ClearColor fills clear regions. Defaults to transparent black.
	ClearColor graphics.Color
}

// NewBackend returns a backend with a transparent clear color.
func NewBackend() *Backend {
	return &Backend{}
}

// LoadTexture loads an image file into GPU memory and wraps it as a
// sprite texture. The raylib texture rides in the handle for DrawQuad.
func LoadTexture(path string) (*sprite.Texture, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, &loadError{path: path}
	}
	return &sprite.Texture{
		Width:  float64(tex.Width),
		Height: float64(tex.Height),
		Handle: tex,
	}, nil
}

// UnloadTexture releases the GPU texture wrapped by LoadTexture.
func UnloadTexture(t *sprite.Texture) {
	if t == nil {
		return
	}
	if tex, ok := t.Handle.(rl.Texture2D); ok {
		rl.UnloadTexture(tex)
	}
}

// DrawQuad implements sprite.Backend. Untextured quads draw as solid
// rectangles.
func (b *Backend) DrawQuad(q sprite.Quad) {
	tint := quadColor(q.Color)
	if q.Texture == nil {
		rl.DrawRectangleRec(destRect(q.Dst), tint)
		return
	}
	tex, ok := q.Texture.Handle.(rl.Texture2D)
	if !ok {
		rl.DrawRectangleRec(destRect(q.Dst), tint)
		return
	}
	src := rl.NewRectangle(
		float32(q.UV.U1*q.Texture.Width),
		float32(q.UV.V1*q.Texture.Height),
		float32((q.UV.U2-q.UV.U1)*q.Texture.Width),
		float32((q.UV.V2-q.UV.V1)*q.Texture.Height),
	)
	rl.DrawTexturePro(tex, src, destRect(q.Dst), rl.NewVector2(0, 0), 0, tint)
}

// ClearRegion implements sprite.Backend by painting the region with
// the backend's clear color.
func (b *Backend) ClearRegion(region graphics.Rect) {
	rl.DrawRectangleRec(destRect(region), quadColor(b.ClearColor))
}

func destRect(r graphics.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}

func quadColor(c graphics.Color) rl.Color {
	r, g, b, a := c.Bytes()
	return rl.NewColor(r, g, b, a)
}

type loadError struct {
	path string
}

func (e *loadError) Error() string {
	return "rl: failed to load texture " + e.path
}
