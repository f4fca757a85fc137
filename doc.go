/*
Package flow virtualizes large scrollable sequences: it renders only the
items in and around the viewport as visual cells, recycling cells as the
content scrolls or mutates, so rendering work and memory stay proportional
to the viewport size rather than the item count.

# Overview

A Flow observes an Items sequence and maintains a window of rendered cells
over it. The window is kept just large enough to cover the viewport; cells
scrolled out of it go into a pool and are offered back to the CellFactory
when new ones are needed. Because the total content extent is generally
unknown (cells are measured lazily), scrollbar ranges and positions are
estimates extrapolated from the cells rendered so far.

The same windowing algorithm drives both orientations: a vertical flow
stacks cells top to bottom and scrolls along Y, a horizontal flow stacks
them left to right and scrolls along X. Internally the two are a single
implementation parameterized by a small geometry adapter.

# Quick Start

	items := flow.NewItems("alpha", "beta", "gamma")
	factory := flow.NewTextCellFactory(1, 1)

	f := flow.NewVertical[string, *flow.TextCell](items, factory)
	f.Resize(80, 24)

	for _, cell := range f.VisibleCells() {
	    b := cell.Bounds()
	    // draw cell.Lines(b.W) at b.X, b.Y
	}

	// react to mutations: the flow updates incrementally
	items.InsertAt(1, "beta prime")

	// scroll
	f.ScrollVertically(-3)

# Cells

Cells are supplied by a CellFactory and sized through the two-pass
preferred-size contract: the preferred extent along one axis may depend on
the extent given along the other, as with word-wrapped text. TextCell is a
ready-made implementation for string items on a character grid; any widget
that implements Cell works.

Cells must not take part in a host toolkit's own layout pass: the flow
positions them manually through Resize and Relocate.

# Scrollbars

ScrollPane wraps a Flow together with two ScrollBar value models and
resolves the mutual dependency between scrollbar visibility and viewport
size with a bounded fixed-point iteration. The models carry range, value,
visible amount and increments; rendering the bars and feeding gestures back
through SetHorizontalValue/SetVerticalValue is the host's business. See
example/ for an OpenGL host and example/terminal for a tcell host.

# Threading

The package is strictly single-threaded: every operation runs synchronously
inside whatever event delivers it, and nothing blocks. Drive a Flow and its
Items from one event loop only.
*/
package flow
