package main

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"drafter/canvas"
	"drafter/config"
	"drafter/editor"
	"drafter/plan"
)

const defaultFilename = "plan.json"

// planChangedEvent is posted into the tcell event queue by the file watcher
// goroutine, so all state is still touched only from the event loop.
type planChangedEvent struct {
	at time.Time
}

func (e *planChangedEvent) When() time.Time { return e.at }

type ui struct {
	screen   tcell.Screen
	ed       *editor.Editor
	log      *logrus.Logger
	filename string

	canvas      *canvas.Canvas
	prevButtons tcell.ButtonMask
	notice      string
	lastSaveAt  time.Time
}

// runUI owns the screen and the synchronous event loop: one event at a time,
// a render pass after each, no other goroutine touches editor state.
func runUI(cfg *config.Config, log *logrus.Logger, filename string, loaded *plan.Plan) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	width, height := screen.Size()
	ed := editor.New(cfg, log, width, height-1) // bottom row is the status line
	if loaded != nil {
		ed.SetPlan(loaded)
	}

	u := &ui{
		screen:   screen,
		ed:       ed,
		log:      log,
		filename: filename,
		canvas:   canvas.New(width, height-1),
	}

	if filename != "" {
		if stop := u.watchFile(filename); stop != nil {
			defer stop()
		}
	}

	for {
		u.draw()
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := u.handle(ev); quit {
			return nil
		}
	}
}

func (u *ui) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		u.ed.Resize(w, h-1)
		u.canvas = canvas.New(w, h-1)
		u.screen.Sync()

	case *tcell.EventMouse:
		u.handleMouse(ev)

	case *tcell.EventKey:
		return u.handleKey(ev)

	case *planChangedEvent:
		// Ignore the echo of our own save.
		if ev.When().Sub(u.lastSaveAt) > 2*time.Second {
			u.notice = "file changed on disk (s overwrites)"
			u.log.WithField("file", u.filename).Warn("plan file changed externally")
		}
	}
	return false
}

func (u *ui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		u.ed.Wheel(1, x, y)
	}
	if buttons&tcell.WheelDown != 0 {
		u.ed.Wheel(-1, x, y)
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := u.prevButtons&tcell.Button1 != 0
	switch {
	case pressed && !wasPressed:
		u.ed.MouseDown(x, y)
	case !pressed && wasPressed:
		u.ed.MouseUp(x, y)
	default:
		u.ed.MouseMove(x, y)
	}
	u.prevButtons = buttons
}

func (u *ui) handleKey(ev *tcell.EventKey) (quit bool) {
	// Inline length editing swallows everything except its own keys.
	if u.ed.Mode() == editor.ModeLength {
		switch ev.Key() {
		case tcell.KeyEnter:
			u.ed.LengthCommit()
		case tcell.KeyEscape:
			u.ed.LengthCancel()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			u.ed.LengthBackspace()
		case tcell.KeyRune:
			u.ed.LengthInput(ev.Rune())
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		u.ed.Escape()
		return false
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'd':
			u.ed.SetMode(editor.ModeDraw)
		case 'm':
			u.ed.SetMode(editor.ModeMove)
		case 'x':
			u.ed.SetMode(editor.ModeDelete)
		case 'g':
			u.ed.ToggleGrid()
		case '0':
			u.ed.ResetView()
		case 's':
			u.save()
		}
	}
	return false
}

func (u *ui) save() {
	name := u.filename
	if name == "" {
		name = defaultFilename
		u.filename = name
	}
	u.lastSaveAt = time.Now()
	if err := u.ed.Plan().SaveFile(name); err != nil {
		u.notice = "save failed: " + err.Error()
		u.log.WithError(err).WithField("file", name).Error("save failed")
		return
	}
	u.ed.ClearDirty()
	u.notice = "saved " + name
	u.log.WithFields(logrus.Fields{
		"file":  name,
		"walls": u.ed.Plan().WallCount(),
	}).Info("plan saved")
}

// watchFile posts a planChangedEvent whenever the plan file is rewritten on
// disk. Returns a stop func, or nil if the watch could not be set up.
func (u *ui) watchFile(path string) func() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		u.log.WithError(err).Warn("file watching disabled")
		return nil
	}
	if err := watcher.Add(path); err != nil {
		// Most likely the file does not exist yet.
		u.log.WithError(err).WithField("file", path).Debug("file watching disabled")
		watcher.Close()
		return nil
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					u.screen.PostEvent(&planChangedEvent{at: time.Now()})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				u.log.WithError(err).Warn("file watcher error")
			}
		}
	}()
	return func() { watcher.Close() }
}

func (u *ui) draw() {
	canvas.Render(u.canvas, u.ed.Frame())
	u.canvas.Each(func(x, y int, cell canvas.Cell) {
		u.screen.SetContent(x, y, cell.Rune, nil, cell.Style)
	})
	u.drawStatusLine()
	u.screen.Show()
}

func (u *ui) drawStatusLine() {
	w, h := u.screen.Size()
	y := h - 1
	style := tcell.StyleDefault.Reverse(true)

	name := u.filename
	if name == "" {
		name = defaultFilename
	}
	dirty := ""
	if u.ed.Dirty() {
		dirty = "*"
	}

	var line string
	if u.ed.Mode() == editor.ModeLength {
		line = fmt.Sprintf(" length: %s_  (Enter commits, Esc cancels)", u.ed.LengthText())
	} else {
		line = fmt.Sprintf(" %s | %.1fx | %s%s", u.ed.Mode(), u.ed.View().Zoom, name, dirty)
		if u.notice != "" {
			line += " | " + u.notice
		}
	}

	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		u.screen.SetContent(x, y, r, nil, style)
	}
}
