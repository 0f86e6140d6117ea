// Package editor owns all interactive state: the current mode, the drawing
// state machine, hover and drag tracking, and inline length editing. Every
// mutation of the plan goes through here, synchronously, from the event loop.
package editor

import (
	"time"

	"github.com/sirupsen/logrus"

	"drafter/canvas"
	"drafter/config"
	"drafter/geometry"
	"drafter/plan"
	"drafter/viewport"
)

const (
	// hitTolerancePx is the pick radius for corners and walls, in device
	// cells; it is scaled to world units by the current zoom.
	hitTolerancePx = 15

	// snapTolerance is the world-cm distance for axis locking against the
	// last drawn corner and for closing a chain onto its first corner.
	snapTolerance = 25

	// minWallLength is the shortest wall a length edit may produce, in cm.
	minWallLength = 10

	// doubleClickWindow is how close together two clicks must land to count
	// as a double click.
	doubleClickWindow = 400 * time.Millisecond
)

// Editor is the interactive controller over one plan document.
type Editor struct {
	plan *plan.Plan
	view *viewport.Viewport
	cfg  *config.Config
	log  *logrus.Logger

	mode     Mode
	showGrid bool
	dirty    bool

	// Pointer state, updated on every motion event.
	deviceX, deviceY int
	world            geometry.Point
	hoverCorner      string
	hoverWall        string

	// Drawing chain. Empty ids mean Idle; both set means Pending.
	pendingLast  string
	pendingFirst string

	// Drag state (move mode). Exactly one of dragCorner/dragWall is set
	// while dragging geometry; neither set means the drag pans the view.
	pressed    bool
	dragMoved  bool
	dragCorner string
	dragWall   string
	lastDragX  int
	lastDragY  int

	// Inline length editing.
	editWall   string
	textBuffer []rune

	// Double-click detection.
	lastClickAt   time.Time
	lastClickX    int
	lastClickY    int
	lastClickWall string
}

// New creates an editor over an empty plan.
func New(cfg *config.Config, log *logrus.Logger, width, height int) *Editor {
	return &Editor{
		plan:     plan.New(),
		view:     viewport.New(width, height),
		cfg:      cfg,
		log:      log,
		mode:     ModeMove,
		showGrid: true,
	}
}

// SetPlan replaces the edited document, e.g. after loading a file.
func (e *Editor) SetPlan(p *plan.Plan) {
	e.plan = p
	e.resetChain()
	e.editWall = ""
	e.hoverCorner = ""
	e.hoverWall = ""
	e.dirty = false
	e.plan.UpdateRooms()
}

// Plan returns the edited document.
func (e *Editor) Plan() *plan.Plan { return e.plan }

// View returns the viewport owned by this editor.
func (e *Editor) View() *viewport.Viewport { return e.view }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Dirty reports whether the plan changed since the last save or load.
func (e *Editor) Dirty() bool { return e.dirty }

// ClearDirty marks the document saved.
func (e *Editor) ClearDirty() { e.dirty = false }

// ToggleGrid flips grid rendering.
func (e *Editor) ToggleGrid() { e.showGrid = !e.showGrid }

// SetMode switches modes. Leaving draw mode discards the pending chain but
// keeps already-committed corners and walls; leaving length mode discards
// the edit.
func (e *Editor) SetMode(m Mode) {
	if e.mode == ModeDraw && m != ModeDraw {
		e.resetChain()
	}
	if e.mode == ModeLength && m != ModeLength {
		e.editWall = ""
		e.textBuffer = nil
	}
	e.mode = m
}

// Escape aborts any pending draw chain or inline edit and forces move mode.
func (e *Editor) Escape() {
	e.SetMode(ModeMove)
}

// Resize updates the device surface dimensions.
func (e *Editor) Resize(width, height int) {
	e.view.Resize(width, height)
}

// ResetView restores the default pan and zoom.
func (e *Editor) ResetView() {
	e.view.Reset()
	e.world = e.view.WorldFromDevice(float64(e.deviceX), float64(e.deviceY))
	e.updateHover()
}

// MouseMove handles pointer motion. While a button is held in move mode it
// drags the grabbed corner or wall, or pans; otherwise it updates hover
// state and the drawing preview.
func (e *Editor) MouseMove(x, y int) {
	prevX, prevY := e.deviceX, e.deviceY
	e.deviceX, e.deviceY = x, y
	e.world = e.view.WorldFromDevice(float64(x), float64(y))

	if e.pressed && (x != prevX || y != prevY) {
		// A drag never commits points while drawing; MouseUp checks this
		// flag before treating the release as a click.
		e.dragMoved = true
	}
	if e.pressed && e.mode == ModeMove {
		e.dragTo(x, y)
		return
	}
	e.updateHover()
}

// MouseDown handles a button press at the current pointer position.
func (e *Editor) MouseDown(x, y int) {
	e.MouseMove(x, y)
	e.pressed = true
	e.dragMoved = false
	e.lastDragX, e.lastDragY = x, y

	switch e.mode {
	case ModeMove:
		// Corners take priority over the walls they terminate.
		e.dragCorner = e.hoverCorner
		e.dragWall = ""
		if e.dragCorner == "" {
			e.dragWall = e.hoverWall
		}
	case ModeDelete:
		e.deleteHovered()
	}
}

// MouseUp handles the button release. A press/release pair with no motion in
// between is a click.
func (e *Editor) MouseUp(x, y int) {
	wasDrag := e.dragMoved
	e.pressed = false
	e.dragCorner = ""
	e.dragWall = ""

	if wasDrag {
		if e.mode == ModeMove {
			e.plan.UpdateRooms()
		}
		return
	}

	switch e.mode {
	case ModeDraw:
		e.drawClick()
	case ModeMove:
		e.moveClick(x, y)
	}
}

// Wheel applies one zoom step at the pointer position.
func (e *Editor) Wheel(delta float64, x, y int) {
	e.view.ZoomAt(delta, float64(x), float64(y))
	e.world = e.view.WorldFromDevice(float64(x), float64(y))
	e.updateHover()
}

// moveClick checks for a double click on a wall and opens the inline length
// editor.
func (e *Editor) moveClick(x, y int) {
	now := time.Now()
	isDouble := e.hoverWall != "" &&
		e.hoverWall == e.lastClickWall &&
		x == e.lastClickX && y == e.lastClickY &&
		now.Sub(e.lastClickAt) <= doubleClickWindow

	e.lastClickAt = now
	e.lastClickX, e.lastClickY = x, y
	e.lastClickWall = e.hoverWall

	if isDouble {
		e.startLengthEdit(e.hoverWall)
	}
}

func (e *Editor) updateHover() {
	e.hoverCorner = ""
	e.hoverWall = ""
	if c := e.plan.CornerAt(e.world.X, e.world.Y, hitTolerancePx, e.view.CmPerPixel); c != nil {
		e.hoverCorner = c.ID
		return
	}
	if w := e.plan.WallAt(e.world.X, e.world.Y, hitTolerancePx, e.view.CmPerPixel); w != nil {
		e.hoverWall = w.ID
	}
}

// dragTo applies a move-mode drag step: reposition the grabbed corner,
// translate the grabbed wall, or pan the viewport.
func (e *Editor) dragTo(x, y int) {
	dx := x - e.lastDragX
	dy := y - e.lastDragY
	e.lastDragX, e.lastDragY = x, y

	switch {
	case e.dragCorner != "":
		e.plan.MoveCorner(e.dragCorner, e.world.X, e.world.Y)
		e.dirty = true
	case e.dragWall != "":
		// Translate both endpoints by the world delta so length and
		// orientation are preserved.
		w := e.plan.Wall(e.dragWall)
		if w == nil {
			return
		}
		wdx := float64(dx) * e.view.CmPerPixel
		wdy := float64(dy) * e.view.CmPerPixel
		for _, cid := range []string{w.Start, w.End} {
			if c := e.plan.Corner(cid); c != nil {
				e.plan.MoveCorner(cid, c.X+wdx, c.Y+wdy)
			}
		}
		e.dirty = true
	default:
		e.view.Pan(float64(dx), float64(dy))
		e.world = e.view.WorldFromDevice(float64(x), float64(y))
	}
}

func (e *Editor) deleteHovered() {
	switch {
	case e.hoverCorner != "":
		e.plan.RemoveCorner(e.hoverCorner)
		e.dirty = true
	case e.hoverWall != "":
		e.plan.RemoveWall(e.hoverWall)
		e.dirty = true
	default:
		return
	}
	e.plan.UpdateRooms()
	e.updateHover()
}

// Frame assembles the render pass input for the current state.
func (e *Editor) Frame() canvas.Frame {
	f := canvas.Frame{
		Plan:        e.plan,
		View:        e.view,
		GridSize:    e.cfg.GridSize,
		ShowGrid:    e.showGrid,
		HoverCorner: e.hoverCorner,
		HoverWall:   e.hoverWall,
	}
	if e.mode == ModeDraw && e.pendingLast != "" {
		if last := e.plan.Corner(e.pendingLast); last != nil {
			f.Preview = &canvas.Preview{
				From: last.Point(),
				To:   e.ResolveTarget(e.world),
			}
		}
	}
	return f
}
