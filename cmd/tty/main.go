// Command tty plays minerunner in a terminal. Arrow keys or w/s/space jump
// and duck; mouse drags act as swipes and a click restarts after a loss.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/minerunner/prefabs"
	"github.com/milk9111/minerunner/scene"
)

func main() {
	seed := flag.Uint64("seed", 1, "spawn generator seed")
	fps := flag.Int("fps", 60, "frames per second")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if *fps <= 0 {
		*fps = 60
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("tty: %v", err)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("tty: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("tty: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("tty: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	input := newTermInput()
	sc, err := scene.New(spec, scene.WithSeed(*seed), scene.WithInput(input))
	if err != nil {
		screen.Fini()
		log.Fatalf("tty: %v", err)
	}

	view := newView(screen, spec)
	if err := run(screen, sc, input, view, *fps); err != nil {
		screen.Fini()
		log.Fatalf("tty: %v", err)
	}
	screen.Fini()
}

func run(screen tcell.Screen, sc *scene.Scene, input *termInput, view *view, fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				input.key(ev)
			case *tcell.EventMouse:
				input.mouse(ev, view)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := sc.Tick(); err != nil {
				return err
			}
			view.draw(sc)
		}
	}
}
