package uitest

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

// OpKind discriminates recorded backend operations.
type OpKind int

const (
	// OpQuad is a textured quad draw.
	OpQuad OpKind = iota
	// OpClear is a clear-region erase.
	OpClear
)

// Op is one recorded backend operation, in submission order.
type Op struct {
	Kind  OpKind
	Quad  sprite.Quad
	Clear graphics.Rect
}

// RecordingBackend implements sprite.Backend by recording every
// operation instead of rendering. The zero value is ready to use.
type RecordingBackend struct {
	ops []Op
}

// NewRecordingBackend returns an empty recording backend.
func NewRecordingBackend() *RecordingBackend {
	return &RecordingBackend{}
}

// DrawQuad implements sprite.Backend.
func (b *RecordingBackend) DrawQuad(q sprite.Quad) {
	b.ops = append(b.ops, Op{Kind: OpQuad, Quad: q})
}

// ClearRegion implements sprite.Backend.
func (b *RecordingBackend) ClearRegion(region graphics.Rect) {
	b.ops = append(b.ops, Op{Kind: OpClear, Clear: region})
}

// Reset discards all recorded operations.
func (b *RecordingBackend) Reset() {
	b.ops = b.ops[:0]
}

// Ops returns every recorded operation in submission order.
func (b *RecordingBackend) Ops() []Op { return b.ops }

// Quads returns the recorded quads in submission order.
func (b *RecordingBackend) Quads() []sprite.Quad {
	var quads []sprite.Quad
	for _, op := range b.ops {
		if op.Kind == OpQuad {
			quads = append(quads, op.Quad)
		}
	}
	return quads
}

// Clears returns the recorded clear regions in submission order.
func (b *RecordingBackend) Clears() []graphics.Rect {
	var clears []graphics.Rect
	for _, op := range b.ops {
		if op.Kind == OpClear {
			clears = append(clears, op.Clear)
		}
	}
	return clears
}

// QuadsAt returns the quads whose destination contains the point, in
// submission order (back to front).
func (b *RecordingBackend) QuadsAt(x, y float64) []sprite.Quad {
	var quads []sprite.Quad
	for _, op := range b.ops {
		if op.Kind == OpQuad && op.Quad.Dst.Contains(x, y) {
			quads = append(quads, op.Quad)
		}
	}
	return quads
}

// QuadsWithColor returns the quads drawn with exactly the given color.
func (b *RecordingBackend) QuadsWithColor(color graphics.Color) []sprite.Quad {
	var quads []sprite.Quad
	for _, op := range b.ops {
		if op.Kind == OpQuad && op.Quad.Color == color {
			quads = append(quads, op.Quad)
		}
	}
	return quads
}
