// Command smtdemo is an interactive terminal harness for the tap/hold
// key-resolution core, adapted from cmd/keystorm/main.go's flag parsing
// and application lifecycle and internal/renderer/backend/terminal.go's
// tcell screen handling.
//
// A real keyboard controller delivers discrete press/release matrix
// events; a terminal only delivers repeated EventKey while the OS repeats
// a held key, with no explicit release. terminalHost.handleKeyEvent turns
// that stream back into press/release pairs by scheduling a release a
// short window after the most recent repeat of the same key, extending it
// on every further repeat, so holding a key down in the terminal behaves
// like holding it down on the keyboard this core was designed for.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/classifier"
	"github.com/dshills/smtd/internal/smtd/config"
	"github.com/dshills/smtd/internal/smtd/diag"
)

func main() {
	os.Exit(run())
}

func run() int {
	var tappingTermMS uint
	var logLevel string
	var configPath string

	flag.UintVar(&tappingTermMS, "tapping-term", 200, "tapping term in milliseconds")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn)")
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.Parse()

	base := smtd.DefaultConfig(uint32(tappingTermMS))
	mgr := config.NewManager(base)
	if configPath != "" {
		loaded, err := config.LoadFile(configPath, base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "smtdemo: %v\n", err)
			return 1
		}
		mgr = loaded
	}
	mgr.ApplyEnv()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smtdemo: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "smtdemo: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	log := diag.New(diag.Config{Level: diag.ParseLevel(logLevel), Output: newScreenLogWriter(screen)})

	table := defaultKeyTable()
	reg := classifier.NewRegistry()
	th := newTerminalHost(screen, table, log, mgr)
	layers := classifier.NewLayerStack(th)

	reg.Bind(table.mustLookup("f"), classifier.ModTap(th, table.mustLookup("f"), smtd.ModShift, 1))
	reg.Bind(table.mustLookup("j"), classifier.LayerTap(th, layers, table.mustLookup("j"), 1, 1))
	reg.Bind(table.mustLookup("d"), classifier.EagerModTap(th, table.mustLookup("d"), smtd.ModCtrl, 1))
	reg.Bind(table.mustLookup("k"), classifier.TapDance2(th, table.mustLookup("k"), table.mustLookup("escape"), 1))

	core := smtd.New(th, th, th, reg, mgr.Base, log, diag.NewMetrics())
	th.core = core

	render(screen, "smtdemo: hold f/d/j/k, tap others. Ctrl+C to quit.")

	// tcell's PollEvent blocks on its own goroutine; forward its events
	// onto a channel so run()'s select loop can interleave them with
	// th.fireCh and keep every call into core and th on one goroutine.
	events := make(chan tcell.Event)
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
				return 0
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC {
					return 0
				}
				th.handleKeyEvent(e, table)
			case *tcell.EventResize:
				screen.Sync()
			}
		case f := <-th.fireCh:
			runFiring(f)
		}
	}
}

func render(screen tcell.Screen, msg string) {
	screen.Clear()
	for i, r := range msg {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
