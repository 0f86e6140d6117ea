package editor

import (
	"math"
	"testing"
)

func TestDragCornerRepositions(t *testing.T) {
	e := newTestEditor()
	buildWall(t, e)

	// Grab the corner at world (0,0) and drag it 10 cells right/down.
	e.MouseDown(0, 0)
	e.MouseMove(10, 10)
	e.MouseUp(10, 10)

	found := false
	for _, c := range e.Plan().Corners() {
		if c.X == 20 && c.Y == 20 { // 10 cells at 2 cm/cell
			found = true
		}
	}
	if !found {
		t.Error("dragged corner should sit at the pointer's world position (20,20)")
	}
}

func TestDragWallTranslatesPreservingLength(t *testing.T) {
	e := newTestEditor()
	id := buildWall(t, e)

	x, y := deviceFor(e, 50, 0)
	e.MouseDown(x, y)
	e.MouseMove(x+5, y+10)
	e.MouseUp(x+5, y+10)

	if got := e.Plan().WallLength(id); math.Abs(got-100) > 1e-9 {
		t.Errorf("wall drag changed length to %v, want 100", got)
	}
	w := e.Plan().Wall(id)
	start := e.Plan().Corner(w.Start)
	end := e.Plan().Corner(w.End)
	// Both endpoints shifted by the same world delta: 5 cells = 10cm,
	// 10 cells = 20cm.
	if start.Y != 20 || end.Y != 20 {
		t.Errorf("endpoints at Y %v and %v, want both 20", start.Y, end.Y)
	}
	if end.X-start.X != 100 {
		t.Error("wall orientation must be preserved")
	}
}

func TestDragEmptySpacePans(t *testing.T) {
	e := newTestEditor()

	before := e.View().WorldFromDevice(80, 30)
	e.MouseDown(80, 30)
	e.MouseMove(90, 25)
	e.MouseUp(90, 25)
	after := e.View().WorldFromDevice(90, 25)

	if math.Abs(after.X-before.X) > 1e-9 || math.Abs(after.Y-before.Y) > 1e-9 {
		t.Errorf("content should follow the drag: %v vs %v", before, after)
	}
}

func TestDeleteModeCornerCascades(t *testing.T) {
	e := newTestEditor()
	buildWall(t, e)
	e.SetMode(ModeDelete)

	e.MouseDown(0, 0) // corner at world (0,0)
	e.MouseUp(0, 0)

	if got := e.Plan().CornerCount(); got != 1 {
		t.Errorf("corner count = %d, want 1", got)
	}
	if got := e.Plan().WallCount(); got != 0 {
		t.Errorf("deleting a corner must remove its walls, got %d", got)
	}
}

func TestDeleteModeWallKeepsCorners(t *testing.T) {
	e := newTestEditor()
	buildWall(t, e)
	e.SetMode(ModeDelete)

	x, y := deviceFor(e, 50, 0)
	e.MouseDown(x, y)
	e.MouseUp(x, y)

	if got := e.Plan().WallCount(); got != 0 {
		t.Errorf("wall count = %d, want 0", got)
	}
	if got := e.Plan().CornerCount(); got != 2 {
		t.Errorf("deleting a wall must keep its corners, got %d", got)
	}
}

func TestWheelZoomKeepsPointerWorldPoint(t *testing.T) {
	e := newTestEditor()
	before := e.View().WorldFromDevice(42, 17)
	e.Wheel(1, 42, 17)
	after := e.View().WorldFromDevice(42, 17)
	if math.Abs(after.X-before.X) > 1e-6 || math.Abs(after.Y-before.Y) > 1e-6 {
		t.Errorf("zoom moved the world point under the cursor: %v -> %v", before, after)
	}
}

func TestResetViewRestoresDefaults(t *testing.T) {
	e := newTestEditor()
	e.Wheel(1, 42, 17)
	e.MouseDown(10, 10)
	e.MouseMove(35, 28) // drag empty space, so this pans
	e.MouseUp(35, 28)

	e.ResetView()
	v := e.View()
	if v.Zoom != 1.0 || v.OriginX != 0 || v.OriginY != 0 {
		t.Errorf("view after reset: origin (%v, %v) zoom %v, want origin (0, 0) zoom 1",
			v.OriginX, v.OriginY, v.Zoom)
	}
}

func TestFrameCarriesPreviewWhileDrawing(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)
	click(e, 0, 0)
	e.MouseMove(25, 0)

	f := e.Frame()
	if f.Preview == nil {
		t.Fatal("frame should carry a preview while a chain is pending")
	}
	if f.Preview.From != (e.Plan().Corner(e.pendingLast).Point()) {
		t.Error("preview must start at the last committed corner")
	}

	e.Escape()
	if e.Frame().Preview != nil {
		t.Error("no preview after the chain is aborted")
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMove, "MOVE"},
		{ModeDraw, "DRAW"},
		{ModeDelete, "DELETE"},
		{ModeLength, "LENGTH"},
		{Mode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
