package sprite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
)

type recorder struct {
	quads  []sprite.Quad
	clears []graphics.Rect
	order  []string
}

func (r *recorder) DrawQuad(q sprite.Quad) {
	r.quads = append(r.quads, q)
	r.order = append(r.order, "quad")
}

func (r *recorder) ClearRegion(region graphics.Rect) {
	r.clears = append(r.clears, region)
	r.order = append(r.order, "clear")
}

func TestBatchPreservesOperationOrder(t *testing.T) {
	b := sprite.NewBatch()
	b.Start()
	b.Draw(nil, graphics.Rect{Width: 10, Height: 10}, graphics.UVs{}, graphics.ColorWhite)
	b.Clear(graphics.Rect{Width: 5, Height: 5})
	b.Draw(nil, graphics.Rect{X: 20, Width: 10, Height: 10}, graphics.UVs{}, graphics.ColorWhite)

	rec := &recorder{}
	b.Finish(rec)

	want := []string{"quad", "clear", "quad"}
	if diff := cmp.Diff(want, rec.order); diff != "" {
		t.Errorf("operation order mismatch (-want +got):\n%s", diff)
	}
	if b.IsStarted() {
		t.Error("expected Finish to end the frame")
	}
}

func TestBatchDropsOpsOutsideFrame(t *testing.T) {
	b := sprite.NewBatch()
	b.Draw(nil, graphics.Rect{Width: 10, Height: 10}, graphics.UVs{}, graphics.ColorWhite)
	b.Clear(graphics.Rect{Width: 5, Height: 5})
	if b.Len() != 0 {
		t.Errorf("expected no ops before Start, got %d", b.Len())
	}

	b.Start()
	b.Draw(nil, graphics.Rect{}, graphics.UVs{}, graphics.ColorWhite)
	b.Clear(graphics.Rect{})
	if b.Len() != 0 {
		t.Errorf("expected empty rects to be dropped, got %d ops", b.Len())
	}
}

func TestBatchStartDiscardsPreviousFrame(t *testing.T) {
	b := sprite.NewBatch()
	b.Start()
	b.Draw(nil, graphics.Rect{Width: 10, Height: 10}, graphics.UVs{}, graphics.ColorWhite)
	b.Start()
	if b.Len() != 0 {
		t.Errorf("expected Start to discard prior ops, got %d", b.Len())
	}
}

func TestDrawClippedAdjustsUVs(t *testing.T) {
	tex := &sprite.Texture{Width: 100, Height: 100}
	b := sprite.NewBatch()
	b.Start()

	dst := graphics.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	clip := graphics.Rect{X: 50, Y: 0, Width: 100, Height: 50}
	uv := graphics.UVs{U1: 0, V1: 0, U2: 1, V2: 1}
	b.DrawClipped(tex, dst, clip, uv, graphics.ColorWhite)

	rec := &recorder{}
	b.Finish(rec)

	if len(rec.quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(rec.quads))
	}
	got := rec.quads[0]
	wantDst := graphics.Rect{X: 50, Y: 0, Width: 50, Height: 50}
	if diff := cmp.Diff(wantDst, got.Dst); diff != "" {
		t.Errorf("clipped dst mismatch (-want +got):\n%s", diff)
	}
	wantUV := graphics.UVs{U1: 0.5, V1: 0, U2: 1, V2: 0.5}
	if diff := cmp.Diff(wantUV, got.UV); diff != "" {
		t.Errorf("adjusted uv mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawClippedFullyOutside(t *testing.T) {
	b := sprite.NewBatch()
	b.Start()
	b.DrawClipped(nil,
		graphics.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		graphics.Rect{X: 50, Y: 50, Width: 10, Height: 10},
		graphics.UVs{}, graphics.ColorWhite)
	if b.Len() != 0 {
		t.Errorf("expected fully clipped quad to be dropped, got %d ops", b.Len())
	}
}
