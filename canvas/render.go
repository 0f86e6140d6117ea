package canvas

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"drafter/geometry"
	"drafter/palette"
	"drafter/plan"
	"drafter/viewport"
)

// Frame describes one render pass: the document, the view, and the transient
// editor state that affects what is drawn.
type Frame struct {
	Plan     *plan.Plan
	View     *viewport.Viewport
	GridSize int // device cells between grid lines
	ShowGrid bool

	HoverCorner string // corner id under the pointer, or ""
	HoverWall   string // wall id under the pointer, or ""

	// Preview is the live segment from the last committed corner of the
	// drawing chain to the resolved target. Nil when not drawing.
	Preview *Preview
}

// Preview is the in-progress drawing segment.
type Preview struct {
	From, To geometry.Point
}

// Render draws a complete frame onto the canvas: grid, room fills and names,
// walls with length labels, corner markers, then the drawing preview on top.
func Render(c *Canvas, f Frame) {
	c.Clear(tcell.StyleDefault)
	if f.ShowGrid {
		drawGrid(c, f)
	}
	drawRooms(c, f)
	drawWalls(c, f)
	drawCorners(c, f)
	if f.Preview != nil {
		drawPreview(c, f)
	}
}

// FormatLength renders a centimeter length for labels, switching to meters
// for anything a meter or longer.
func FormatLength(cm float64) string {
	if cm >= 100 {
		return fmt.Sprintf("%.2fm", cm/100)
	}
	return fmt.Sprintf("%.0fcm", cm)
}

func drawGrid(c *Canvas, f Frame) {
	w, h := c.Size()
	g := f.GridSize
	if g <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(palette.GridColor())

	// Grid lines are spaced in device cells and offset by the viewport
	// origin modulo the spacing, so the grid appears fixed to the world
	// while staying equally dense at every zoom.
	onLine := func(device int, origin float64) bool {
		v := int(math.Round(float64(device) + origin))
		return ((v%g)+g)%g == 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col := onLine(x, f.View.OriginX)
			row := onLine(y, f.View.OriginY)
			switch {
			case col && row:
				c.Set(x, y, '┼', style)
			case col:
				c.Set(x, y, '│', style)
			case row:
				c.Set(x, y, '─', style)
			}
		}
	}
}

func drawRooms(c *Canvas, f Frame) {
	w, h := c.Size()
	for _, room := range f.Plan.Rooms() {
		polygon := f.Plan.RoomPolygon(room)
		if len(polygon) < 3 {
			continue
		}
		fill := palette.RoomFill(room.ID)

		// Fill every cell whose world position falls inside the polygon.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := f.View.WorldFromDevice(float64(x), float64(y))
				if geometry.PointInPolygon(p, polygon) {
					c.SetBackground(x, y, fill)
				}
			}
		}

		label := room.Name
		area := geometry.PolygonArea(polygon) / 10000 // cm² to m²
		if label == "" {
			label = fmt.Sprintf("%.1fm²", area)
		} else {
			label = fmt.Sprintf("%s %.1fm²", label, area)
		}
		center := geometry.PolygonCentroid(polygon)
		dx, dy := f.View.DeviceFromWorld(center.X, center.Y)
		style := tcell.StyleDefault.Background(fill).Foreground(tcell.ColorWhite)
		c.DrawText(int(math.Round(dx))-len([]rune(label))/2, int(math.Round(dy)), label, style)
	}
}

func drawWalls(c *Canvas, f Frame) {
	for id, wall := range f.Plan.Walls() {
		start := f.Plan.Corner(wall.Start)
		end := f.Plan.Corner(wall.End)
		if start == nil || end == nil {
			continue
		}

		color := palette.WallColor()
		if id == f.HoverWall {
			color = tcell.ColorYellow
		}
		style := tcell.StyleDefault.Foreground(color)

		x1, y1 := f.View.DeviceFromWorld(start.X, start.Y)
		x2, y2 := f.View.DeviceFromWorld(end.X, end.Y)
		c.DrawLine(round(x1), round(y1), round(x2), round(y2), '█', style)

		drawWallLabel(c, f, start.Point(), end.Point(), style)
	}
}

// drawWallLabel places the wall's length label one step off the midpoint
// along the wall normal so it does not sit on the wall itself.
func drawWallLabel(c *Canvas, f Frame, a, b geometry.Point, style tcell.Style) {
	length := geometry.Distance(a, b)
	if length == 0 {
		return
	}
	mid := geometry.Midpoint(a, b)
	normal := geometry.Normal(a, b)

	// Offset in device space so the gap is constant on screen.
	labelAt := mid.Add(normal.Scale(2 * f.View.CmPerPixel))
	dx, dy := f.View.DeviceFromWorld(labelAt.X, labelAt.Y)
	label := FormatLength(length)
	c.DrawText(round(dx)-len([]rune(label))/2, round(dy), label, style)
}

func drawCorners(c *Canvas, f Frame) {
	if f.HoverCorner == "" {
		return
	}
	corner := f.Plan.Corner(f.HoverCorner)
	if corner == nil {
		return
	}
	dx, dy := f.View.DeviceFromWorld(corner.X, corner.Y)
	c.Set(round(dx), round(dy), '◉', tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func drawPreview(c *Canvas, f Frame) {
	style := tcell.StyleDefault.Foreground(palette.PreviewColor())
	a, b := f.Preview.From, f.Preview.To

	x1, y1 := f.View.DeviceFromWorld(a.X, a.Y)
	x2, y2 := f.View.DeviceFromWorld(b.X, b.Y)
	c.DrawLine(round(x1), round(y1), round(x2), round(y2), '░', style)
	c.Set(round(x2), round(y2), '◆', style)

	if length := geometry.Distance(a, b); length > 0 {
		drawWallLabel(c, f, a, b, style)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
