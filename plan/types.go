// Package plan holds the floor plan document: a planar graph of corners and
// walls, derived rooms, and placed items. All positions are world
// centimeters. The Plan owns the maps and the adjacency bookkeeping; other
// packages mutate it only through its methods.
package plan

import (
	"github.com/google/uuid"

	"drafter/geometry"
)

// Corner is a graph node: a vertex of the wall network at a fixed world
// position. Walls lists the ids of every wall referencing this corner.
type Corner struct {
	ID    string   `json:"-"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Walls []string `json:"adjacentWalls"`
}

// Point returns the corner position as a geometry point.
func (c *Corner) Point() geometry.Point {
	return geometry.Point{X: c.X, Y: c.Y}
}

// Wall is a graph edge between two corners, carrying the physical dimensions
// the 3D collaborator expects (centimeters).
type Wall struct {
	ID           string  `json:"-"`
	Start        string  `json:"startCorner"`
	End          string  `json:"endCorner"`
	Thickness    float64 `json:"thickness"`
	Height       float64 `json:"height"`
	FrontTexture string  `json:"frontTexture,omitempty"`
	BackTexture  string  `json:"backTexture,omitempty"`
}

// Room is a closed cycle of corners interpreted as an enclosed floor area.
// Rooms are derived from the wall graph and cached, never authored directly.
type Room struct {
	ID      string   `json:"-"`
	Corners []string `json:"corners"`
	Name    string   `json:"name,omitempty"`
	Texture string   `json:"texture,omitempty"`
}

// Item is a placed furnishing. The editor treats it as opaque: it is carried
// through load/save for the 3D collaborator but never interpreted here.
type Item struct {
	ID       string         `json:"-"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Z        float64        `json:"z"`
	Rotation float64        `json:"rotation"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Depth    float64        `json:"depth"`
	Name     string         `json:"name,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Plan is the mutable floor plan document.
type Plan struct {
	corners map[string]*Corner
	walls   map[string]*Wall
	rooms   map[string]*Room
	items   map[string]*Item
}

// New returns an empty plan.
func New() *Plan {
	return &Plan{
		corners: make(map[string]*Corner),
		walls:   make(map[string]*Wall),
		rooms:   make(map[string]*Room),
		items:   make(map[string]*Item),
	}
}

// NewID returns a fresh unique id for corners, walls and rooms.
func NewID() string {
	return uuid.NewString()
}

// Corner returns the corner with the given id, or nil.
func (p *Plan) Corner(id string) *Corner { return p.corners[id] }

// Wall returns the wall with the given id, or nil.
func (p *Plan) Wall(id string) *Wall { return p.walls[id] }

// Corners returns the live corner map. Callers must not mutate it.
func (p *Plan) Corners() map[string]*Corner { return p.corners }

// Walls returns the live wall map. Callers must not mutate it.
func (p *Plan) Walls() map[string]*Wall { return p.walls }

// Rooms returns the cached room map. It reflects the last extraction, not
// necessarily the live graph.
func (p *Plan) Rooms() map[string]*Room { return p.rooms }

// Items returns the live item map.
func (p *Plan) Items() map[string]*Item { return p.items }

// CornerCount returns the number of corners.
func (p *Plan) CornerCount() int { return len(p.corners) }

// WallCount returns the number of walls.
func (p *Plan) WallCount() int { return len(p.walls) }

// WallLength returns the current length of a wall in centimeters, or 0 if
// the wall or either endpoint is missing.
func (p *Plan) WallLength(id string) float64 {
	w := p.walls[id]
	if w == nil {
		return 0
	}
	a, b := p.corners[w.Start], p.corners[w.End]
	if a == nil || b == nil {
		return 0
	}
	return geometry.Distance(a.Point(), b.Point())
}

// RoomPolygon returns the world-space polygon of a cached room, skipping any
// corner ids that no longer exist.
func (p *Plan) RoomPolygon(r *Room) []geometry.Point {
	pts := make([]geometry.Point, 0, len(r.Corners))
	for _, id := range r.Corners {
		if c := p.corners[id]; c != nil {
			pts = append(pts, c.Point())
		}
	}
	return pts
}
