// Package palette assigns stable fill colors to rooms. Colors are generated
// in HSV so fills stay muted enough to keep wall and label glyphs readable
// on top of them.
package palette

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RoomFill returns a deterministic background color for the given room id.
// The hue is derived from the id so a room keeps its color across
// re-extractions as long as its id is carried over.
func RoomFill(id string) tcell.Color {
	h := fnv.New32a()
	h.Write([]byte(id))
	hue := float64(h.Sum32()%360)

	c := colorful.Hsv(hue, 0.25, 0.30)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// WallColor is the foreground used for committed walls.
func WallColor() tcell.Color {
	c := colorful.Hsv(0, 0, 0.9)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// PreviewColor is the foreground used for the in-progress drawing preview.
func PreviewColor() tcell.Color {
	c := colorful.Hsv(200, 0.6, 0.9)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// GridColor is the foreground used for grid lines.
func GridColor() tcell.Color {
	c := colorful.Hsv(0, 0, 0.35)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
