package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NavKey is a navigation key press relevant to a scrollable viewport.
type NavKey int

const (
	NavNone NavKey = iota
	NavLineUp
	NavLineDown
	NavPageUp
	NavPageDown
	NavHome
	NavEnd
)

// GLFWInputAdapter collects GLFW scroll and navigation input for one frame.
type GLFWInputAdapter struct {
	window *glfw.Window

	wheelX, wheelY float64
	keys           []NavKey
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetScrollCallback(adapter.scrollCallback)

	return adapter
}

// Wheel returns the accumulated scroll wheel deltas and resets them.
// Call this once per frame after glfw.PollEvents.
func (a *GLFWInputAdapter) Wheel() (dx, dy float32) {
	dx, dy = float32(a.wheelX), float32(a.wheelY)
	a.wheelX, a.wheelY = 0, 0
	return dx, dy
}

// Keys returns the navigation keys pressed since the last call and resets
// the queue.
func (a *GLFWInputAdapter) Keys() []NavKey {
	keys := a.keys
	a.keys = nil
	return keys
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	navKey := glfwKeyToNavKey(key)
	if navKey == NavNone {
		return
	}
	a.keys = append(a.keys, navKey)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.wheelX += xoff
	a.wheelY += yoff
}

// glfwKeyToNavKey maps GLFW keys to navigation keys.
func glfwKeyToNavKey(key glfw.Key) NavKey {
	switch key {
	case glfw.KeyUp, glfw.KeyK:
		return NavLineUp
	case glfw.KeyDown, glfw.KeyJ:
		return NavLineDown
	case glfw.KeyPageUp:
		return NavPageUp
	case glfw.KeyPageDown, glfw.KeySpace:
		return NavPageDown
	case glfw.KeyHome:
		return NavHome
	case glfw.KeyEnd:
		return NavEnd
	default:
		return NavNone
	}
}
