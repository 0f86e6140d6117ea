package editor

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"drafter/config"
	"drafter/geometry"
)

// newTestEditor uses a 25-cell grid: at zoom 1 (2 cm/cell) the world snap
// granularity is 50cm, which divides the 100cm test square evenly.
func newTestEditor() *Editor {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()
	cfg.GridSize = 25
	return New(cfg, log, 120, 40)
}

// click simulates a full press/release at a device position.
func click(e *Editor, x, y int) {
	e.MouseDown(x, y)
	e.MouseUp(x, y)
}

// deviceFor converts a world position to device cells at the editor's
// current viewport.
func deviceFor(e *Editor, wx, wy float64) (int, int) {
	dx, dy := e.View().DeviceFromWorld(wx, wy)
	return int(dx), int(dy)
}

func TestDrawSquareEndToEnd(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)

	for _, p := range []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}} {
		x, y := deviceFor(e, p.X, p.Y)
		click(e, x, y)
	}
	// Close by clicking within snap tolerance of the first corner.
	x, y := deviceFor(e, 10, 10)
	click(e, x, y)

	if got := e.Plan().CornerCount(); got != 4 {
		t.Errorf("corner count = %d, want 4", got)
	}
	if got := e.Plan().WallCount(); got != 4 {
		t.Errorf("wall count = %d, want 4", got)
	}
	if got := len(e.Plan().Rooms()); got != 1 {
		t.Errorf("room count = %d, want 1", got)
	}
	for _, r := range e.Plan().Rooms() {
		if len(r.Corners) != 4 {
			t.Errorf("room cycle has %d corners, want 4", len(r.Corners))
		}
	}
	if e.Mode() != ModeMove {
		t.Errorf("closing a room must switch to move mode, got %v", e.Mode())
	}
	if e.Drawing() {
		t.Error("chain must be idle after closing")
	}
}

func TestFirstClickAdoptsExistingCorner(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)
	click(e, 0, 0) // creates the sole corner
	e.Escape()     // abort, keep the corner

	if got := e.Plan().CornerCount(); got != 1 {
		t.Fatalf("corner count = %d, want 1", got)
	}

	e.SetMode(ModeDraw)
	click(e, 0, 0) // clicking the sole corner must seed from it
	if got := e.Plan().CornerCount(); got != 1 {
		t.Errorf("seeding from an existing corner created a duplicate: %d corners", got)
	}
	if !e.Drawing() {
		t.Error("chain should be pending after seeding")
	}
}

func TestChainExtendsOntoExistingCorner(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)

	click(e, 0, 0)
	x, y := deviceFor(e, 100, 0)
	click(e, x, y)
	e.Escape()

	// New chain from a fresh corner into the existing one at (100,0).
	e.SetMode(ModeDraw)
	x, y = deviceFor(e, 100, 100)
	click(e, x, y)
	x, y = deviceFor(e, 100, 0)
	click(e, x, y)

	if got := e.Plan().CornerCount(); got != 3 {
		t.Errorf("corner count = %d, want 3 (no duplicate at the junction)", got)
	}
	if got := e.Plan().WallCount(); got != 2 {
		t.Errorf("wall count = %d, want 2", got)
	}
}

func TestEscapeAbortsChainKeepsCommitted(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)

	click(e, 0, 0)
	x, y := deviceFor(e, 100, 0)
	click(e, x, y)
	x, y = deviceFor(e, 100, 100)
	click(e, x, y)

	e.Escape()

	if e.Mode() != ModeMove {
		t.Errorf("escape must force move mode, got %v", e.Mode())
	}
	if e.Drawing() {
		t.Error("escape must discard the pending chain")
	}
	if got := e.Plan().CornerCount(); got != 3 {
		t.Errorf("committed corners must survive the abort, got %d", got)
	}
	if got := e.Plan().WallCount(); got != 2 {
		t.Errorf("committed walls must survive the abort, got %d", got)
	}
}

func TestDragDoesNotCommitWhileDrawing(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)

	e.MouseDown(10, 10)
	e.MouseMove(30, 10)
	e.MouseUp(30, 10)

	if got := e.Plan().CornerCount(); got != 0 {
		t.Errorf("a drag must not commit points while drawing, got %d corners", got)
	}
}

func TestAxisLockClampsNearAxis(t *testing.T) {
	e := newTestEditor()
	e.SetMode(ModeDraw)
	click(e, 0, 0) // chain seeded at (0,0)

	// 10cm off the x axis is inside the 25cm snap tolerance.
	target := e.ResolveTarget(geometry.Point{X: 200, Y: 10})
	if target.Y != 0 {
		t.Errorf("Y should clamp to the last corner, got %v", target.Y)
	}
	if target.X != 200 {
		t.Errorf("X should stay free (then grid-snap), got %v", target.X)
	}

	// 30cm off is outside the tolerance; only the grid applies.
	target = e.ResolveTarget(geometry.Point{X: 200, Y: 30})
	if target.Y == 0 {
		t.Error("Y outside snap tolerance must not clamp to the axis")
	}
}

func TestResolveTargetGridScalesWithZoom(t *testing.T) {
	e := newTestEditor()

	// At zoom 1, 25 cells of grid is 50 world-cm.
	got := e.ResolveTarget(geometry.Point{X: 60, Y: 0})
	if got.X != 50 {
		t.Errorf("snap at zoom 1: X = %v, want 50", got.X)
	}

	// Zoomed in 2x the world granularity halves.
	e.View().SetZoom(2)
	got = e.ResolveTarget(geometry.Point{X: 60, Y: 0})
	if got.X != 50 {
		t.Errorf("snap at zoom 2: X = %v, want 50 (25cm grid)", got.X)
	}
	got = e.ResolveTarget(geometry.Point{X: 40, Y: 0})
	if got.X != 50 {
		t.Errorf("snap at zoom 2: X = %v, want 50", got.X)
	}
}
