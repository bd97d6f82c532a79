// Package sprite accumulates textured quads into a batch that is
// flushed to a rendering backend once per frame.
//
// Controls never issue raw graphics calls; they emit quads into a
// Batch during the draw walk and the owning form flushes the batch
// when the walk completes. The Backend interface keeps the package
// free of any native rendering dependency; see the rl subpackage for
// a raylib-backed implementation.
package sprite

import (
	"github.com/go-ember/ember/pkg/graphics"
)

// Texture is an opaque handle to a loaded texture atlas plus its pixel
// dimensions. The Handle field is interpreted by the active backend.
type Texture struct {
	Width  float64
	Height float64
	Handle any
}

// Quad is a single textured rectangle submission.
type Quad struct {
	Texture *Texture
	Dst     graphics.Rect
	UV      graphics.UVs
	Color   graphics.Color
}

// Backend consumes the operations recorded into a Batch.
type Backend interface {
	// DrawQuad renders one textured quad. A nil texture means an
	// untextured (solid color) quad.
	DrawQuad(quad Quad)
	// ClearRegion erases a screen region to the transparent color.
	ClearRegion(region graphics.Rect)
}

type opKind int

const (
	opQuad opKind = iota
	opClear
)

type batchOp struct {
	kind  opKind
	quad  Quad
	clear graphics.Rect
}

// Batch records quad and clear operations for one frame.
//
// Operation order is preserved on flush so that region clears
// interleave correctly with quads; draw order within a frame is what
// makes the clear-bounds protocol of the control tree sound.
type Batch struct {
	ops     []batchOp
	started bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Start begins a new frame, discarding operations from the previous one.
func (b *Batch) Start() {
	b.ops = b.ops[:0]
	b.started = true
}

// IsStarted reports whether the batch is currently recording.
func (b *Batch) IsStarted() bool {
	return b.started
}

// Len returns the number of recorded operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Draw records a textured quad. Empty destination rectangles are dropped.
func (b *Batch) Draw(texture *Texture, dst graphics.Rect, uv graphics.UVs, color graphics.Color) {
	if !b.started || dst.IsEmpty() {
		return
	}
	b.ops = append(b.ops, batchOp{kind: opQuad, quad: Quad{Texture: texture, Dst: dst, UV: uv, Color: color}})
}

// DrawClipped records a quad clipped against the given rectangle.
// The UV rectangle is shrunk proportionally so the visible portion of
// the quad samples the matching portion of the texture region.
func (b *Batch) DrawClipped(texture *Texture, dst graphics.Rect, clip graphics.Rect, uv graphics.UVs, color graphics.Color) {
	if !b.started || dst.IsEmpty() {
		return
	}
	clipped := dst.Intersect(clip)
	if clipped.IsEmpty() {
		return
	}
	if clipped == dst {
		b.Draw(texture, dst, uv, color)
		return
	}
	du := uv.U2 - uv.U1
	dv := uv.V2 - uv.V1
	adjusted := graphics.UVs{
		U1: uv.U1 + du*(clipped.X-dst.X)/dst.Width,
		V1: uv.V1 + dv*(clipped.Y-dst.Y)/dst.Height,
		U2: uv.U2 - du*(dst.Right()-clipped.Right())/dst.Width,
		V2: uv.V2 - dv*(dst.Bottom()-clipped.Bottom())/dst.Height,
	}
	b.Draw(texture, clipped, adjusted, color)
}

// Clear records a region erase. Used to remove the previous frame's
// pixels when a control shrinks or moves.
func (b *Batch) Clear(region graphics.Rect) {
	if !b.started || region.IsEmpty() {
		return
	}
	b.ops = append(b.ops, batchOp{kind: opClear, clear: region})
}

// Finish replays the recorded operations onto the backend in order and
// ends the frame.
func (b *Batch) Finish(backend Backend) {
	if !b.started {
		return
	}
	for _, op := range b.ops {
		switch op.kind {
		case opQuad:
			backend.DrawQuad(op.quad)
		case opClear:
			backend.ClearRegion(op.clear)
		}
	}
	b.started = false
}
