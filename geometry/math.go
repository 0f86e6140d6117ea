// Package geometry contains the pure point/segment/polygon math used by the
// plan graph, hit testing and the renderer. Everything here is a total
// function over world-centimeter coordinates; degenerate inputs produce a
// defined zero result rather than an error.
package geometry

import "math"

// Point represents a 2D position or vector in world centimeters.
type Point struct {
	X, Y float64
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q as vectors.
func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Lerp(a, b, 0.5)
}

// Lerp linearly interpolates from a to b; t outside [0,1] extrapolates.
func Lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Scale(t))
}

// PointToSegmentDistance returns the distance from p to the segment ab. The
// projection parameter is clamped to [0,1] so endpoints act as caps. A
// degenerate segment (a == b) falls back to plain point distance.
func PointToSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := Dot(ab, ab)
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := Dot(p.Sub(a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return Distance(p, closest)
}

// Normal returns the unit normal of segment ab, perpendicular to its
// direction. Returns the zero vector for a degenerate segment.
func Normal(a, b Point) Point {
	d := b.Sub(a)
	length := math.Sqrt(d.X*d.X + d.Y*d.Y)
	if length == 0 {
		return Point{}
	}
	return Point{-d.Y / length, d.X / length}
}

// PointInPolygon reports whether p lies inside the polygon using ray-casting
// parity. Polygons with fewer than 3 vertices contain nothing.
func PointInPolygon(p Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PolygonArea returns the absolute area of the polygon via the shoelace
// formula. Fewer than 3 points yields 0.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	j := len(points) - 1
	for i := 0; i < len(points); i++ {
		sum += (points[j].X + points[i].X) * (points[j].Y - points[i].Y)
		j = i
	}
	return math.Abs(sum / 2)
}

// PolygonCentroid returns the arithmetic mean of the vertices. This is not
// the area-weighted centroid; it is only used to place labels, where the
// cheaper mean is good enough. An empty slice yields the origin.
func PolygonCentroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(points))
	c.Y /= float64(len(points))
	return c
}

// SnapToGrid rounds each axis of p to the nearest multiple of gridSize.
// A non-positive gridSize returns p unchanged.
func SnapToGrid(p Point, gridSize float64) Point {
	if gridSize <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}

// RotatePoint rotates p by angle radians around origin.
func RotatePoint(p Point, angle float64, origin Point) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - origin.X
	dy := p.Y - origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}
