package plan

import "drafter/geometry"

// CornerAt returns the first corner within tolerancePx device cells of the
// world point, with the tolerance scaled to world centimeters by cmPerPixel.
// First match wins, not nearest: with the small tolerances the editor uses,
// overlapping candidates are rare enough that the simpler scan is fine.
func (p *Plan) CornerAt(wx, wy, tolerancePx, cmPerPixel float64) *Corner {
	tolerance := tolerancePx * cmPerPixel
	target := geometry.Point{X: wx, Y: wy}
	for _, c := range p.corners {
		if geometry.Distance(c.Point(), target) < tolerance {
			return c
		}
	}
	return nil
}

// WallAt returns the first wall whose segment passes within tolerancePx
// device cells of the world point. Callers that also hit-test corners must
// check corners first so they take priority over the walls they sit on.
func (p *Plan) WallAt(wx, wy, tolerancePx, cmPerPixel float64) *Wall {
	tolerance := tolerancePx * cmPerPixel
	target := geometry.Point{X: wx, Y: wy}
	for _, w := range p.walls {
		start, end := p.corners[w.Start], p.corners[w.End]
		if start == nil || end == nil {
			continue
		}
		if geometry.PointToSegmentDistance(target, start.Point(), end.Point()) < tolerance {
			return w
		}
	}
	return nil
}
