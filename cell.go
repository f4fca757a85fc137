package flow

// Cell is a visual widget bound to exactly one item of the flow. The engine
// never constructs cells itself; it obtains them from a CellFactory and then
// owns their membership in the rendered set, sizing and positioning them
// manually. A cell must therefore not participate in any layout pass of the
// host toolkit.
//
// Sizing queries follow the usual two-pass contract: the preferred extent
// along one axis may depend on the extent given along the other (word-wrapped
// text is the canonical example). Pass a negative value for "unconstrained".
type Cell interface {
	// MinWidth returns the smallest width the cell can be given.
	MinWidth() float32
	// MinHeight returns the smallest height the cell can be given.
	MinHeight() float32
	// PrefWidth returns the preferred width for the given height,
	// or the natural width if height is negative.
	PrefWidth(height float32) float32
	// PrefHeight returns the preferred height for the given width,
	// or the natural height if width is negative.
	PrefHeight(width float32) float32

	// Resize sets the cell's size.
	Resize(width, height float32)
	// Relocate sets the cell's position.
	Relocate(x, y float32)
	// Bounds returns the position and size last set on the cell.
	Bounds() Rect

	// Visible reports whether the cell is currently positioned in the
	// viewport. Invisible rendered cells exist only as measurement
	// placeholders at the fringes of the rendered window.
	Visible() bool
	// SetVisible flips the visibility flag. Called only by the engine.
	SetVisible(visible bool)
}

// CellFactory creates, recycles and disposes cells for a flow. Implementations
// own the cells' internal construction and teardown; the engine owns when each
// of these methods is called.
type CellFactory[T any, C Cell] interface {
	// CreateCell returns a fresh cell displaying item at the given index.
	CreateCell(index int, item T) C

	// ReuseCell is offered a previously pooled cell as a reuse candidate.
	// It may rebind and return the candidate itself, or return a different
	// instance, in which case the engine disposes the declined candidate.
	ReuseCell(index int, item T, candidate C) C

	// ResetCell clears item-specific state before the cell enters the pool.
	ResetCell(cell C)

	// DisposeCell releases a cell that will never be used again.
	DisposeCell(cell C)

	// UpdateIndex re-stamps the logical position of a retained cell after
	// a sequence mutation shifted item indices.
	UpdateIndex(cell C, newIndex int)
}
