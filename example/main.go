// Example demonstrates a virtualized list in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window and a vertical flow over 100000 text
// items. Visible cells are drawn as colored bars with a width proportional
// to their text, so scrolling makes the virtualization visible: only the
// bars in the viewport exist as cells at any time. Scroll with the mouse
// wheel, arrow keys, PageUp/PageDown, Home and End.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-virtual-flow/flow"
	"github.com/go-virtual-flow/flow/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "flow example"

	itemCount  = 100000
	charWidth  = 9
	lineHeight = 18
	wheelSpeed = 3 * lineHeight
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	flow.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	// The virtualized list: every item is one line of text; a few are long
	// enough to wrap, which gives the rows varying heights.
	items := flow.NewItems(makeItems(itemCount)...)
	pane := flow.NewScrollPane(
		flow.NewVertical[string, *flow.TextCell](items, flow.NewTextCellFactory(charWidth, lineHeight)),
	)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		pane.Layout(float32(w), float32(h))

		if dx, dy := inputAdapter.Wheel(); dx != 0 || dy != 0 {
			pane.Scroll(dx*wheelSpeed, dy*wheelSpeed)
		}
		for _, key := range inputAdapter.Keys() {
			applyNavKey(pane, key)
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.Render(buildQuads(pane)); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %06d %s", i, strings.Repeat("lorem ipsum ", 1+i%7))
	}
	return items
}

func applyNavKey[T any, C flow.Cell](pane *flow.ScrollPane[T, C], key opengl.NavKey) {
	vbar := pane.VBar()
	switch key {
	case opengl.NavLineUp:
		pane.SetVerticalValue(vbar.Value - vbar.UnitIncrement)
	case opengl.NavLineDown:
		pane.SetVerticalValue(vbar.Value + vbar.UnitIncrement)
	case opengl.NavPageUp:
		pane.SetVerticalValue(vbar.Value - vbar.BlockIncrement)
	case opengl.NavPageDown:
		pane.SetVerticalValue(vbar.Value + vbar.BlockIncrement)
	case opengl.NavHome:
		pane.SetVerticalValue(vbar.Min)
	case opengl.NavEnd:
		pane.SetVerticalValue(vbar.Max)
	}
}

// buildQuads turns the pane's visible cells and scrollbars into draw quads.
func buildQuads(pane *flow.ScrollPane[string, *flow.TextCell]) []opengl.Quad {
	var quads []opengl.Quad

	content := pane.ContentRect()
	for _, cell := range pane.Flow().VisibleCells() {
		b := cell.Bounds()
		if !b.Intersects(content) {
			continue
		}

		// the bar's width mirrors the text extent, its hue cycles by index
		width := cell.PrefWidth(-1)
		if width > b.W {
			width = b.W
		}
		r, g, bl := rowColor(cell.Index())
		quads = append(quads, opengl.Quad{
			X: b.X + 2, Y: b.Y + 2, W: width - 4, H: b.H - 4,
			R: r, G: g, B: bl, A: 1,
		})
	}

	for _, bar := range []*flow.ScrollBar{pane.HBar(), pane.VBar()} {
		if !bar.Visible {
			continue
		}

		if bar == pane.VBar() {
			track := pane.VBarRect()
			quads = append(quads, opengl.Quad{
				X: track.X, Y: track.Y, W: track.W, H: track.H,
				R: 0.2, G: 0.2, B: 0.22, A: 1,
			})
			start, size := bar.ThumbSpan(track.H)
			quads = append(quads, opengl.Quad{
				X: track.X + 2, Y: track.Y + start, W: track.W - 4, H: size,
				R: 0.5, G: 0.5, B: 0.55, A: 1,
			})
		} else {
			track := pane.HBarRect()
			quads = append(quads, opengl.Quad{
				X: track.X, Y: track.Y, W: track.W, H: track.H,
				R: 0.2, G: 0.2, B: 0.22, A: 1,
			})
			start, size := bar.ThumbSpan(track.W)
			quads = append(quads, opengl.Quad{
				X: track.X + start, Y: track.Y + 2, W: size, H: track.H - 4,
				R: 0.5, G: 0.5, B: 0.55, A: 1,
			})
		}
	}

	return quads
}

func rowColor(index int) (r, g, b float32) {
	switch index % 3 {
	case 0:
		return 0.35, 0.55, 0.85
	case 1:
		return 0.35, 0.75, 0.55
	default:
		return 0.75, 0.55, 0.35
	}
}
