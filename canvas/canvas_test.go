package canvas

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"drafter/plan"
	"drafter/viewport"
)

func TestSetGetClip(t *testing.T) {
	c := New(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	c.Set(3, 2, 'x', style)
	if got := c.Get(3, 2); got.Rune != 'x' {
		t.Errorf("Get(3,2) = %q, want 'x'", got.Rune)
	}

	// Out-of-bounds writes and reads must be safe no-ops.
	c.Set(-1, 0, 'y', style)
	c.Set(10, 5, 'y', style)
	if got := c.Get(-1, -1); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := New(20, 20)
	c.DrawLine(2, 3, 15, 11, '█', tcell.StyleDefault)
	if c.Get(2, 3).Rune != '█' || c.Get(15, 11).Rune != '█' {
		t.Error("line must cover both endpoints")
	}
}

func TestDrawTextClips(t *testing.T) {
	c := New(5, 1)
	c.DrawText(3, 0, "hello", tcell.StyleDefault)
	if c.Get(3, 0).Rune != 'h' || c.Get(4, 0).Rune != 'e' {
		t.Error("text should be written up to the edge")
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		cm   float64
		want string
	}{
		{400, "4.00m"},
		{150, "1.50m"},
		{99, "99cm"},
		{10, "10cm"},
	}
	for _, tt := range tests {
		if got := FormatLength(tt.cm); got != tt.want {
			t.Errorf("FormatLength(%v) = %q, want %q", tt.cm, got, tt.want)
		}
	}
}

// renderSmoke builds a plan with one wall and renders it; the wall must
// produce visible cells somewhere on the canvas.
func TestRenderSmoke(t *testing.T) {
	p := plan.New()
	p.AddCorner(&plan.Corner{ID: "a", X: 0, Y: 0})
	p.AddCorner(&plan.Corner{ID: "b", X: 100, Y: 0})
	if err := p.AddWall(&plan.Wall{ID: "w", Start: "a", End: "b", Thickness: 10, Height: 250}); err != nil {
		t.Fatal(err)
	}

	v := viewport.New(60, 20)
	c := New(60, 20)
	Render(c, Frame{Plan: p, View: v, GridSize: 20, ShowGrid: true})

	found := false
	c.Each(func(x, y int, cell Cell) {
		if cell.Rune == '█' {
			found = true
		}
	})
	if !found {
		t.Error("rendered frame contains no wall cells")
	}
}
