package text_test

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/sprite"
	"github.com/go-ember/ember/pkg/text"
)

// collector implements sprite.Backend for inspecting emitted quads.
type collector struct {
	quads []sprite.Quad
}

func (c *collector) DrawQuad(q sprite.Quad)           { c.quads = append(c.quads, q) }
func (c *collector) ClearRegion(region graphics.Rect) {}

func drawInto(f text.Font, s string, area graphics.Rect, align text.Align, rtl bool) []sprite.Quad {
	b := sprite.NewBatch()
	b.Start()
	f.DrawText(b, s, area, area, graphics.ColorWhite, align, 0, rtl)
	c := &collector{}
	b.Finish(c)
	return c.quads
}

func testAtlas() *text.AtlasFont {
	return &text.AtlasFont{
		Texture:  &sprite.Texture{Width: 64, Height: 64},
		BaseSize: 8,
		Glyphs: map[rune]text.Glyph{
			'a': {Region: graphics.Rect{X: 0, Y: 0, Width: 6, Height: 8}},
			'b': {Region: graphics.Rect{X: 8, Y: 0, Width: 6, Height: 8}},
			' ': {Region: graphics.Rect{X: 16, Y: 0, Width: 4, Height: 8}},
		},
	}
}

func TestAtlasFontMeasure(t *testing.T) {
	f := testAtlas()

	got := f.MeasureText("ab", 8)
	if got.Width != 12 || got.Height != 8 {
		t.Errorf("MeasureText(ab) = %v, want 12x8", got)
	}

	got = f.MeasureText("ab\na", 8)
	if got.Width != 12 || got.Height != 16 {
		t.Errorf("multiline measure = %v, want 12x16", got)
	}

	got = f.MeasureText("ab", 16)
	if got.Width != 24 || got.Height != 16 {
		t.Errorf("scaled measure = %v, want 24x16", got)
	}

	if got := f.MeasureText("", 8); got.Width != 0 || got.Height != 0 {
		t.Errorf("empty measure = %v, want zero", got)
	}
}

func TestAtlasFontDrawLeftAligned(t *testing.T) {
	f := testAtlas()
	area := graphics.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	quads := drawInto(f, "ab", area, text.AlignTopLeft, false)
	if len(quads) != 2 {
		t.Fatalf("expected 2 glyph quads, got %d", len(quads))
	}
	if quads[0].Dst.X != 10 || quads[0].Dst.Y != 20 {
		t.Errorf("first glyph at %v, want (10, 20)", quads[0].Dst.Origin())
	}
	if quads[1].Dst.X != 16 {
		t.Errorf("second glyph at x=%g, want 16", quads[1].Dst.X)
	}
	if quads[0].Texture == nil {
		t.Error("atlas glyphs must carry the atlas texture")
	}
}

func TestAtlasFontDrawRightToLeft(t *testing.T) {
	f := testAtlas()
	area := graphics.Rect{X: 0, Y: 0, Width: 100, Height: 50}

	ltr := drawInto(f, "ab", area, text.AlignTopLeft, false)
	rtl := drawInto(f, "ab", area, text.AlignTopLeft, true)
	if len(rtl) != 2 {
		t.Fatalf("expected 2 glyph quads, got %d", len(rtl))
	}
	// Reversed rune order means 'b' is drawn first.
	if rtl[0].UV != ltr[1].UV {
		t.Error("expected first rtl glyph to sample the 'b' region")
	}
}

func TestAtlasFontDrawCentered(t *testing.T) {
	f := testAtlas()
	area := graphics.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	quads := drawInto(f, "ab", area, text.AlignCenter, false)
	if len(quads) != 2 {
		t.Fatalf("expected 2 glyph quads, got %d", len(quads))
	}
	// Block is 12x8, so centering in 100x40 starts at (44, 16).
	if quads[0].Dst.X != 44 || quads[0].Dst.Y != 16 {
		t.Errorf("first glyph at %v, want (44, 16)", quads[0].Dst.Origin())
	}
}

func TestFaceFontMeasure(t *testing.T) {
	f := text.NewFaceFont(basicfont.Face7x13, 13)

	got := f.MeasureText("abc", 13)
	if got.Width != 21 {
		t.Errorf("width = %g, want 21 (3 glyphs at 7px)", got.Width)
	}
	if got.Height <= 0 {
		t.Errorf("height = %g, want positive", got.Height)
	}

	two := f.MeasureText("a\na", 13)
	if two.Height != 2*f.MeasureText("a", 13).Height {
		t.Errorf("two lines should double the height, got %g", two.Height)
	}
}

func TestFaceFontDrawEmitsUntexturedQuads(t *testing.T) {
	f := text.NewFaceFont(basicfont.Face7x13, 13)
	area := graphics.Rect{X: 0, Y: 0, Width: 200, Height: 50}

	quads := drawInto(f, "hi", area, text.AlignTopLeft, false)
	if len(quads) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(quads))
	}
	for _, q := range quads {
		if q.Texture != nil {
			t.Error("face font quads must be untextured")
		}
	}
}

func TestParseAlign(t *testing.T) {
	if got := text.ParseAlign("top-left"); got != text.AlignTopLeft {
		t.Errorf("ParseAlign(top-left) = %v", got)
	}
	if got := text.ParseAlign("center"); got != text.AlignCenter {
		t.Errorf("ParseAlign(center) = %v", got)
	}
	if got := text.ParseAlign("nonsense"); got != text.AlignTopLeft {
		t.Errorf("unknown names default to top-left, got %v", got)
	}
}
