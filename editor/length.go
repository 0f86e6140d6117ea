package editor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"drafter/geometry"
)

const (
	cmPerInch = 2.54
	cmPerFoot = 30.48
)

var errBadLength = errors.New("editor: unparsable length")

var (
	feetInchesRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)'\s*(?:(\d+(?:\.\d+)?)(?:"|''))?\s*$`)
	inchesRe     = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)(?:"|'')\s*$`)
	plainRe      = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:cm)?\s*$`)
)

// ParseLength converts user-entered length text to centimeters. Accepted
// forms: feet with optional inches (12'6", 12.5'), bare inches (150"), and
// bare numbers read as centimeters (150, 150cm).
func ParseLength(text string) (float64, error) {
	if m := feetInchesRe.FindStringSubmatch(text); m != nil {
		feet, _ := strconv.ParseFloat(m[1], 64)
		cm := feet * cmPerFoot
		if m[2] != "" {
			inches, _ := strconv.ParseFloat(m[2], 64)
			cm += inches * cmPerInch
		}
		return cm, nil
	}
	if m := inchesRe.FindStringSubmatch(text); m != nil {
		inches, _ := strconv.ParseFloat(m[1], 64)
		return inches * cmPerInch, nil
	}
	if m := plainRe.FindStringSubmatch(text); m != nil {
		cm, _ := strconv.ParseFloat(m[1], 64)
		return cm, nil
	}
	return 0, fmt.Errorf("%w: %q", errBadLength, text)
}

// startLengthEdit opens the inline editor for a wall, seeding the buffer
// with the current length in whole centimeters.
func (e *Editor) startLengthEdit(wallID string) {
	if e.plan.Wall(wallID) == nil {
		return
	}
	e.mode = ModeLength
	e.editWall = wallID
	e.textBuffer = []rune(fmt.Sprintf("%.0f", e.plan.WallLength(wallID)))
}

// EditingWall returns the wall id under inline length editing, or "".
func (e *Editor) EditingWall() string { return e.editWall }

// LengthText returns the inline editor's current buffer.
func (e *Editor) LengthText() string { return string(e.textBuffer) }

// LengthInput appends a typed rune to the inline editor buffer.
func (e *Editor) LengthInput(r rune) {
	if e.mode != ModeLength {
		return
	}
	e.textBuffer = append(e.textBuffer, r)
}

// LengthBackspace removes the last buffered rune.
func (e *Editor) LengthBackspace() {
	if e.mode != ModeLength || len(e.textBuffer) == 0 {
		return
	}
	e.textBuffer = e.textBuffer[:len(e.textBuffer)-1]
}

// LengthCancel closes the inline editor without touching the wall.
func (e *Editor) LengthCancel() {
	e.editWall = ""
	e.textBuffer = nil
	e.mode = ModeMove
}

// LengthCommit applies the buffered text to the edited wall: the end corner
// moves along the wall's existing direction so the wall reaches the
// requested length, with the start corner fixed. Unparsable text, lengths
// under the minimum, and degenerate walls discard the edit silently.
func (e *Editor) LengthCommit() {
	text := string(e.textBuffer)
	wallID := e.editWall
	e.LengthCancel()

	cm, err := ParseLength(text)
	if err != nil {
		e.log.WithField("text", text).Debug("length edit discarded: unparsable")
		return
	}
	if cm < minWallLength {
		e.log.WithField("cm", cm).Debug("length edit discarded: below minimum")
		return
	}

	w := e.plan.Wall(wallID)
	if w == nil {
		return
	}
	start, end := e.plan.Corner(w.Start), e.plan.Corner(w.End)
	if start == nil || end == nil {
		return
	}
	current := geometry.Distance(start.Point(), end.Point())
	if current == 0 {
		// No direction to extend along.
		e.log.WithField("wall", wallID).Debug("length edit discarded: zero-length wall")
		return
	}

	dir := end.Point().Sub(start.Point()).Scale(1 / current)
	target := start.Point().Add(dir.Scale(cm))
	e.plan.MoveCorner(end.ID, target.X, target.Y)
	e.dirty = true
	e.plan.UpdateRooms()
}
