package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// document is the persisted shape: four id-keyed maps. The rooms map is the
// last-computed cache and is not guaranteed consistent with the live graph;
// items are opaque and carried through untouched.
type document struct {
	Corners map[string]*Corner `json:"corners"`
	Walls   map[string]*Wall   `json:"walls"`
	Rooms   map[string]*Room   `json:"rooms"`
	Items   map[string]*Item   `json:"items"`
}

// Decode parses a persisted plan. A malformed document returns an error and
// no plan, so callers keep whatever they had loaded before. Walls whose
// endpoints are missing from the corner map are dropped rather than crashing
// the load; their ids are returned so the caller can report them. Adjacency
// is rebuilt from the surviving walls and never trusted from the file.
func Decode(data []byte) (*Plan, []string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("plan: malformed document: %w", err)
	}

	p := New()
	for id, c := range doc.Corners {
		if c == nil {
			return nil, nil, fmt.Errorf("plan: malformed document: null corner %q", id)
		}
		c.ID = id
		c.Walls = []string{} // rebuilt below
		p.corners[id] = c
	}

	var dropped []string
	wallIDs := make([]string, 0, len(doc.Walls))
	for id := range doc.Walls {
		wallIDs = append(wallIDs, id)
	}
	sort.Strings(wallIDs)
	for _, id := range wallIDs {
		w := doc.Walls[id]
		if w == nil {
			return nil, nil, fmt.Errorf("plan: malformed document: null wall %q", id)
		}
		w.ID = id
		if err := p.AddWall(w); err != nil {
			dropped = append(dropped, id)
		}
	}

	for id, r := range doc.Rooms {
		if r == nil {
			return nil, nil, fmt.Errorf("plan: malformed document: null room %q", id)
		}
		r.ID = id
		p.rooms[id] = r
	}
	for id, it := range doc.Items {
		if it == nil {
			return nil, nil, fmt.Errorf("plan: malformed document: null item %q", id)
		}
		it.ID = id
		p.items[id] = it
	}
	return p, dropped, nil
}

// Encode serializes the plan as an indented JSON document.
func (p *Plan) Encode() ([]byte, error) {
	doc := document{
		Corners: p.corners,
		Walls:   p.walls,
		Rooms:   p.rooms,
		Items:   p.items,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// LoadFile reads and decodes a plan file.
func LoadFile(path string) (*Plan, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Decode(data)
}

// SaveFile encodes the plan and writes it to path.
func (p *Plan) SaveFile(path string) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
