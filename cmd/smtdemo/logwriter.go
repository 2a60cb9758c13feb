package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// screenLogWriter renders each log line onto the bottom row of the
// terminal, replacing the previous line, so diag.Logger output is visible
// without disturbing the demo's own status line. Grounded on
// internal/renderer/backend/terminal.go's SetContent/Show usage.
type screenLogWriter struct {
	screen tcell.Screen
}

func newScreenLogWriter(screen tcell.Screen) *screenLogWriter {
	return &screenLogWriter{screen: screen}
}

func (w *screenLogWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	_, height := w.screen.Size()
	row := height - 1
	if row < 0 {
		row = 0
	}

	width, _ := w.screen.Size()
	for x := 0; x < width; x++ {
		w.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	for i, r := range line {
		if i >= width {
			break
		}
		w.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	w.screen.Show()

	return len(p), nil
}
