package plan

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownCorner is returned when a wall references a corner id that is not
// in the plan. Adding such a wall is a hard precondition failure; it is never
// allowed to create adjacency entries for corners that do not exist.
var ErrUnknownCorner = errors.New("plan: wall endpoint references unknown corner")

// AddCorner inserts a corner under its own id. Inserting an id that already
// exists overwrites the previous corner; callers that care must check first.
func (p *Plan) AddCorner(c *Corner) {
	if c.Walls == nil {
		c.Walls = []string{}
	}
	p.corners[c.ID] = c
}

// MoveCorner updates a corner's position. It deliberately performs no
// geometry validation: walls may become zero-length or cross each other.
// No-op if the id is absent.
func (p *Plan) MoveCorner(id string, x, y float64) {
	c := p.corners[id]
	if c == nil {
		return
	}
	c.X = x
	c.Y = y
}

// RemoveCorner deletes a corner and every wall attached to it, pruning the
// adjacency of each removed wall's other endpoint. No-op if absent.
func (p *Plan) RemoveCorner(id string) {
	c := p.corners[id]
	if c == nil {
		return
	}
	// Copy: RemoveWall mutates c.Walls while we iterate.
	for _, wallID := range slices.Clone(c.Walls) {
		p.RemoveWall(wallID)
	}
	delete(p.corners, id)
}

// AddWall inserts a wall and records its id in both endpoints' adjacency
// lists. Both corners must already exist; otherwise ErrUnknownCorner is
// returned and the plan is left untouched.
func (p *Plan) AddWall(w *Wall) error {
	start := p.corners[w.Start]
	end := p.corners[w.End]
	if start == nil {
		return fmt.Errorf("%w: start %q", ErrUnknownCorner, w.Start)
	}
	if end == nil {
		return fmt.Errorf("%w: end %q", ErrUnknownCorner, w.End)
	}

	p.walls[w.ID] = w
	start.Walls = append(start.Walls, w.ID)
	if end != start {
		end.Walls = append(end.Walls, w.ID)
	}
	return nil
}

// RemoveWall deletes a wall and prunes its id from both endpoints' adjacency
// lists. The corners themselves are kept. No-op if absent.
func (p *Plan) RemoveWall(id string) {
	w := p.walls[id]
	if w == nil {
		return
	}
	p.pruneAdjacency(w.Start, id)
	p.pruneAdjacency(w.End, id)
	delete(p.walls, id)
}

func (p *Plan) pruneAdjacency(cornerID, wallID string) {
	c := p.corners[cornerID]
	if c == nil {
		return
	}
	c.Walls = slices.DeleteFunc(c.Walls, func(id string) bool { return id == wallID })
}

// AddItem inserts an item under its own id.
func (p *Plan) AddItem(it *Item) {
	p.items[it.ID] = it
}

// RemoveItem deletes an item. No-op if absent.
func (p *Plan) RemoveItem(id string) {
	delete(p.items, id)
}

// SetRooms replaces the cached room set with a freshly extracted one.
func (p *Plan) SetRooms(rooms []*Room) {
	p.rooms = make(map[string]*Room, len(rooms))
	for _, r := range rooms {
		p.rooms[r.ID] = r
	}
}
