// Terminal is a pager built on a virtualized text flow: it displays a file
// (or generated sample text) in a tcell screen, wrapping each line to the
// terminal width. Only the visible lines have cells, so arbitrarily large
// files scroll at constant cost.
//
//	go run ./example/terminal [file]
//
// Scroll with the mouse wheel, j/k or the arrow keys, PageUp/PageDown,
// g/Home and G/End; click the scrollbar to jump. Quit with q or Escape.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-virtual-flow/flow"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	lines, err := loadLines()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// a terminal is a character grid: one column, one row per unit
	items := flow.NewItems(lines...)
	pane := flow.NewScrollPane(
		flow.NewVertical[string, *flow.TextCell](items, flow.NewTextCellFactory(1, 1)),
		flow.WithBarThickness(1),
	)

	for {
		w, h := screen.Size()
		pane.Layout(float32(w), float32(h))
		draw(screen, pane)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventMouse:
			switch ev.Buttons() {
			case tcell.WheelUp:
				pane.Scroll(0, 3)
			case tcell.WheelDown:
				pane.Scroll(0, -3)
			case tcell.Button1:
				x, y := ev.Position()
				click := flow.Vec2{X: float32(x), Y: float32(y)}
				if track := pane.VBarRect(); track.Contains(click) {
					vbar := pane.VBar()
					frac := (click.Y - track.Y) / track.H
					pane.SetVerticalValue(vbar.Min + frac*(vbar.Max-vbar.Min))
				}
			}

		case *tcell.EventKey:
			vbar := pane.VBar()
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				pane.Scroll(0, 1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				pane.Scroll(0, -1)
			case ev.Key() == tcell.KeyPgUp:
				pane.SetVerticalValue(vbar.Value - vbar.BlockIncrement)
			case ev.Key() == tcell.KeyPgDn || ev.Rune() == ' ':
				pane.SetVerticalValue(vbar.Value + vbar.BlockIncrement)
			case ev.Key() == tcell.KeyHome || ev.Rune() == 'g':
				pane.SetVerticalValue(vbar.Min)
			case ev.Key() == tcell.KeyEnd || ev.Rune() == 'G':
				pane.SetVerticalValue(vbar.Max)
			}
		}
	}
}

// draw paints the visible cells and the scrollbar.
func draw(screen tcell.Screen, pane *flow.ScrollPane[string, *flow.TextCell]) {
	screen.Clear()

	content := pane.ContentRect()
	for _, cell := range pane.Flow().VisibleCells() {
		b := cell.Bounds()
		for li, line := range cell.Lines(b.W) {
			row := int(b.Y) + li
			if row < 0 || row >= int(content.H) {
				continue
			}
			drawText(screen, 0, row, line)
		}
	}

	if vbar := pane.VBar(); vbar.Visible {
		track := pane.VBarRect()
		start, size := vbar.ThumbSpan(track.H)
		thumbStyle := tcell.StyleDefault.Reverse(true)
		for row := 0; row < int(track.H); row++ {
			style := tcell.StyleDefault
			if row >= int(start) && row < int(start+size)+1 {
				style = thumbStyle
			}
			screen.SetContent(int(track.X), row, '│', nil, style)
		}
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}

// loadLines reads the file named on the command line, or builds sample text.
func loadLines() ([]string, error) {
	if len(os.Args) < 2 {
		lines := make([]string, 10000)
		for i := range lines {
			lines[i] = fmt.Sprintf("%5d  the quick brown fox jumps over the lazy dog", i)
		}
		return lines, nil
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", os.Args[1], err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", os.Args[1], err)
	}
	return lines, nil
}
