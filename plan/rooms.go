package plan

import (
	"slices"
	"sort"
	"strings"
)

// ExtractRooms derives closed rooms from the wall graph. Corners are nodes
// and walls undirected edges; a depth-first walk keeps an explicit path
// stack, and when it reaches a node already on the stack the sub-path from
// that node to the top becomes a room if it has at least 3 corners. All
// nodes reached by a walk are excluded from later walks, so at most one
// simple cycle is found per connected region: two rooms sharing a wall will
// not both be detected. This is a heuristic, not a planar face enumeration.
func (p *Plan) ExtractRooms() []*Room {
	// Deterministic seed and neighbor order so repeated extraction of the
	// same graph yields the same rooms.
	seeds := make([]string, 0, len(p.corners))
	for id := range p.corners {
		seeds = append(seeds, id)
	}
	sort.Strings(seeds)

	visited := make(map[string]bool, len(p.corners))
	var rooms []*Room

	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		if cycle := p.findCycleFrom(seed, visited); len(cycle) >= 3 {
			rooms = append(rooms, &Room{ID: NewID(), Corners: cycle})
		}
	}
	return rooms
}

// findCycleFrom walks the region containing seed and returns the first cycle
// of length >= 3, or nil. Every node it touches is marked visited.
func (p *Plan) findCycleFrom(seed string, visited map[string]bool) []string {
	var path []string
	onPath := make(map[string]int)
	var cycle []string

	var dfs func(node, viaWall string) bool
	dfs = func(node, viaWall string) bool {
		onPath[node] = len(path)
		path = append(path, node)
		visited[node] = true

		c := p.corners[node]
		wallIDs := slices.Clone(c.Walls)
		sort.Strings(wallIDs)
		for _, wid := range wallIDs {
			if wid == viaWall {
				continue
			}
			w := p.walls[wid]
			if w == nil {
				continue
			}
			other := w.End
			if other == node {
				other = w.Start
			}
			if idx, on := onPath[other]; on {
				if len(path)-idx >= 3 {
					cycle = slices.Clone(path[idx:])
					return true
				}
				continue
			}
			if visited[other] {
				continue
			}
			if dfs(other, wid) {
				return true
			}
		}

		delete(onPath, node)
		path = path[:len(path)-1]
		return false
	}

	dfs(seed, "")
	return cycle
}

// UpdateRooms re-extracts rooms and replaces the cache. A new room covering
// the same corner set as an old one keeps the old id, name and texture, so
// labels and fill colors stay stable across recomputes.
func (p *Plan) UpdateRooms() {
	old := make(map[string]*Room, len(p.rooms))
	for _, r := range p.rooms {
		old[roomKey(r.Corners)] = r
	}

	rooms := p.ExtractRooms()
	for _, r := range rooms {
		if prev, ok := old[roomKey(r.Corners)]; ok {
			r.ID = prev.ID
			r.Name = prev.Name
			r.Texture = prev.Texture
		}
	}
	p.SetRooms(rooms)
}

func roomKey(cornerIDs []string) string {
	ids := slices.Clone(cornerIDs)
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
