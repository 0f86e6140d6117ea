// Package canvas provides the cell-matrix drawing surface the editor renders
// into, plus the scene pass that turns a plan + viewport into cells. The
// canvas itself knows nothing about plans; it is a styled rune matrix with
// line and text primitives.
//
// Coordinate system: origin top-left, X rightward, Y downward, all
// coordinates in device cells.
package canvas

import "github.com/gdamore/tcell/v2"

// Cell is a single drawing surface cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Canvas is a rune/style matrix. It is not safe for concurrent writes; the
// editor renders synchronously from the event loop, so no locking is needed.
type Canvas struct {
	cells  [][]Cell
	width  int
	height int
}

// New creates a canvas with the given dimensions. Non-positive dimensions
// yield a usable zero-size canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	c := &Canvas{cells: cells, width: width, height: height}
	c.Clear(tcell.StyleDefault)
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear fills the canvas with spaces in the given style.
func (c *Canvas) Clear(style tcell.Style) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Style: style}
		}
	}
}

// Set writes a rune and style at (x, y). Out-of-bounds writes are clipped.
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), or a space cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return c.cells[y][x]
}

// SetBackground recolors the background of the cell at (x, y) without
// touching its rune. Used for room fills under wall and label glyphs.
func (c *Canvas) SetBackground(x, y int, color tcell.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x].Style = c.cells[y][x].Style.Background(color)
}

// DrawLine draws a Bresenham line of the given rune between two cells.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, r rune, style tcell.Style) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		c.Set(x, y, r, style)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawText writes a string starting at (x, y), clipping at the edges.
func (c *Canvas) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, r, style)
	}
}

// Each calls fn for every cell, row by row. Used to blit onto a screen.
func (c *Canvas) Each(fn func(x, y int, cell Cell)) {
	for y := range c.cells {
		for x := range c.cells[y] {
			fn(x, y, c.cells[y][x])
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
