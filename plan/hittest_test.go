package plan

import "testing"

func TestWallHitTolerance(t *testing.T) {
	p := New()
	addTestCorner(p, "a", 0, 0)
	addTestCorner(p, "b", 100, 0)
	addTestWall(t, p, "w", "a", "b")

	// 15 device cells at 2 cm/cell is a 30cm world tolerance.
	const tolerancePx, cmPerPixel = 15, 2.0

	if w := p.WallAt(50, 20, tolerancePx, cmPerPixel); w == nil {
		t.Error("point 20cm from the wall should hit at 30cm tolerance")
	}
	if w := p.WallAt(50, 40, tolerancePx, cmPerPixel); w != nil {
		t.Error("point 40cm from the wall should miss at 30cm tolerance")
	}
}

func TestCornerHit(t *testing.T) {
	p := New()
	addTestCorner(p, "a", 0, 0)

	if c := p.CornerAt(10, 10, 15, 2.0); c == nil {
		t.Error("corner within tolerance should be found")
	}
	if c := p.CornerAt(100, 100, 15, 2.0); c != nil {
		t.Error("distant point should not hit the corner")
	}
}

func TestWallAtSkipsBrokenWalls(t *testing.T) {
	p := New()
	addTestCorner(p, "a", 0, 0)
	addTestCorner(p, "b", 100, 0)
	addTestWall(t, p, "w", "a", "b")

	// Simulate a wall whose endpoint disappeared out from under it; the
	// hit test must not crash on it.
	delete(p.corners, "b")
	if got := p.WallAt(50, 0, 15, 2.0); got != nil {
		t.Error("wall with a missing endpoint should not be hit")
	}
}
