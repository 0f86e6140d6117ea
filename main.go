// drafter is an interactive terminal floor plan editor: draw walls with the
// mouse, drag corners around, and get rooms detected from the wall graph.
//
// Usage:
//
//	drafter [options] [plan.json]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"drafter/config"
	"drafter/plan"
)

func main() {
	var (
		gridSize = flag.Int("grid", 0, "Grid spacing in cells (overrides config)")
		logFile  = flag.String("log", "", "Log file path (overrides config)")
		help     = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [plan.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive terminal floor plan editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  d          draw mode: click out wall chains, close on the first corner\n")
		fmt.Fprintf(os.Stderr, "  m          move mode: drag corners/walls, drag empty space to pan\n")
		fmt.Fprintf(os.Stderr, "  x          delete mode: click corners or walls to remove them\n")
		fmt.Fprintf(os.Stderr, "  g          toggle grid\n")
		fmt.Fprintf(os.Stderr, "  0          reset pan and zoom\n")
		fmt.Fprintf(os.Stderr, "  s          save\n")
		fmt.Fprintf(os.Stderr, "  Esc        abort drawing, back to move mode\n")
		fmt.Fprintf(os.Stderr, "  q          quit\n")
		fmt.Fprintf(os.Stderr, "\nDouble-click a wall to edit its length (150, 12'6\", 12.5', 150\").\n")
	}
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *gridSize > 0 {
		cfg.GridSize = *gridSize
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	log := newLogger(cfg.LogFile)

	var filename string
	var loaded *plan.Plan
	if args := flag.Args(); len(args) > 0 {
		filename = args[0]
		p, dropped, err := plan.LoadFile(filename)
		switch {
		case os.IsNotExist(err):
			// A fresh file: start empty, save will create it.
			log.WithField("file", filename).Info("starting new plan")
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
			os.Exit(1)
		default:
			loaded = p
			if len(dropped) > 0 {
				log.WithFields(logrus.Fields{
					"file":  filename,
					"walls": dropped,
				}).Warn("dropped walls with missing endpoints")
			}
			log.WithFields(logrus.Fields{
				"file":    filename,
				"corners": p.CornerCount(),
				"walls":   p.WallCount(),
			}).Info("plan loaded")
		}
	}

	if err := runUI(cfg, log, filename, loaded); err != nil {
		log.WithError(err).Error("editor exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the session logger. The terminal belongs to the UI, so
// everything goes to a rotated file.
func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	})
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
	return log
}
