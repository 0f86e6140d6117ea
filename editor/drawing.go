package editor

import (
	"math"

	"github.com/sirupsen/logrus"

	"drafter/geometry"
	"drafter/plan"
)

// The drawing state machine has two states: Idle (no pending chain) and
// Pending (an open path of at least one committed corner). pendingLast and
// pendingFirst hold the chain ends; both empty means Idle.

// Drawing reports whether a chain is pending.
func (e *Editor) Drawing() bool {
	return e.pendingLast != ""
}

func (e *Editor) resetChain() {
	e.pendingLast = ""
	e.pendingFirst = ""
}

// ResolveTarget turns a raw world pointer position into the point a click
// would commit. While a chain is pending, either axis within snap tolerance
// of the last corner is clamped to it (axis-locked walls); the result is
// then snapped to the grid. Grid spacing is defined in device cells and
// converted at the current zoom, so the on-screen grid is constant while the
// world-unit granularity scales with zoom.
func (e *Editor) ResolveTarget(raw geometry.Point) geometry.Point {
	target := raw
	if e.pendingLast != "" {
		if last := e.plan.Corner(e.pendingLast); last != nil {
			if math.Abs(target.X-last.X) <= snapTolerance {
				target.X = last.X
			}
			if math.Abs(target.Y-last.Y) <= snapTolerance {
				target.Y = last.Y
			}
		}
	}
	gridWorld := float64(e.cfg.GridSize) * e.view.CmPerPixel
	return geometry.SnapToGrid(target, gridWorld)
}

// drawClick commits one drawing-mode click.
func (e *Editor) drawClick() {
	target := e.ResolveTarget(e.world)
	hit := e.plan.CornerAt(target.X, target.Y, hitTolerancePx, e.view.CmPerPixel)

	// Idle: seed the chain, creating a corner only if none was hit.
	if e.pendingLast == "" {
		if hit != nil {
			e.pendingLast = hit.ID
			e.pendingFirst = hit.ID
			return
		}
		c := e.newCorner(target)
		e.pendingLast = c.ID
		e.pendingFirst = c.ID
		return
	}

	// Closing the chain onto its first corner requires both a hit and real
	// proximity to the corner's true position, then ends draw mode.
	if first := e.plan.Corner(e.pendingFirst); first != nil &&
		e.pendingLast != e.pendingFirst &&
		hit != nil && hit.ID == e.pendingFirst &&
		geometry.Distance(target, first.Point()) <= snapTolerance {
		e.commitWall(e.pendingLast, e.pendingFirst)
		e.resetChain()
		e.mode = ModeMove
		e.log.WithField("rooms", len(e.plan.Rooms())).Debug("chain closed")
		return
	}

	// Extend the chain: onto an existing corner, or a freshly created one.
	if hit != nil {
		if hit.ID != e.pendingLast {
			e.commitWall(e.pendingLast, hit.ID)
			e.pendingLast = hit.ID
		}
		return
	}
	c := e.newCorner(target)
	e.commitWall(e.pendingLast, c.ID)
	e.pendingLast = c.ID
}

func (e *Editor) newCorner(at geometry.Point) *plan.Corner {
	c := &plan.Corner{ID: plan.NewID(), X: at.X, Y: at.Y}
	e.plan.AddCorner(c)
	e.dirty = true
	return c
}

// commitWall creates a wall between two existing corners using the
// configured thickness and height. Config is consulted here, at creation
// time only; config changes never rewrite existing walls.
func (e *Editor) commitWall(startID, endID string) {
	w := &plan.Wall{
		ID:        plan.NewID(),
		Start:     startID,
		End:       endID,
		Thickness: e.cfg.WallThickness,
		Height:    e.cfg.WallHeight,
	}
	if err := e.plan.AddWall(w); err != nil {
		// Both corners are committed before any wall references them, so
		// this only fires if the chain state went stale.
		e.log.WithError(err).WithFields(logrus.Fields{
			"start": startID,
			"end":   endID,
		}).Error("wall rejected")
		e.resetChain()
		return
	}
	e.dirty = true
	e.plan.UpdateRooms()
}
