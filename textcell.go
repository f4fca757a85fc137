package flow

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapWord wraps at word boundaries (default for Latin text).
	WrapWord TextWrapMode = iota
	// WrapChar wraps at grapheme-cluster boundaries (for CJK or dense text).
	WrapChar
	// WrapAuto detects the text type and chooses the appropriate mode.
	WrapAuto
)

// TextCell is a ready-made Cell displaying one string item on a character
// grid. Its preferred height depends on the width it is given, because the
// text wraps: that coupling is exactly what the flow's breadth handling
// exists for. Widths are measured in grapheme clusters scaled by CharWidth,
// so double-width CJK runes and emoji sequences take correct space.
//
// With CharWidth and LineHeight of 1 the cell's geometry is a terminal
// grid; with font-derived values it approximates a monospaced pixel layout.
type TextCell struct {
	text  string
	index int

	charWidth  float32
	lineHeight float32
	wrapMode   TextWrapMode

	bounds  Rect
	visible bool
}

// Text returns the displayed string.
func (c *TextCell) Text() string { return c.text }

// Index returns the item index the cell is currently bound to.
func (c *TextCell) Index() int { return c.index }

// MinWidth returns the narrowest width the text can wrap into: the widest
// word for word wrapping, the widest single grapheme cluster otherwise.
func (c *TextCell) MinWidth() float32 {
	mode := c.effectiveWrapMode()
	max := 0
	if mode == WrapWord {
		for _, word := range strings.Fields(c.text) {
			if w := runewidth.StringWidth(word); w > max {
				max = w
			}
		}
	} else {
		g := uniseg.NewGraphemes(c.text)
		for g.Next() {
			if w := runewidth.StringWidth(g.Str()); w > max {
				max = w
			}
		}
	}
	return float32(max) * c.charWidth
}

// MinHeight returns the height of a single line.
func (c *TextCell) MinHeight() float32 { return c.lineHeight }

// PrefWidth returns the natural width: the widest unwrapped line.
func (c *TextCell) PrefWidth(height float32) float32 {
	max := 0
	for _, line := range strings.Split(c.text, "\n") {
		if w := runewidth.StringWidth(line); w > max {
			max = w
		}
	}
	return float32(max) * c.charWidth
}

// PrefHeight returns the height of the text wrapped to the given width, or
// of the unwrapped text if width is negative.
func (c *TextCell) PrefHeight(width float32) float32 {
	return float32(len(c.Lines(width))) * c.lineHeight
}

// Lines returns the text wrapped to the given width, one string per
// display line. A negative width disables wrapping.
func (c *TextCell) Lines(width float32) []string {
	paragraphs := strings.Split(c.text, "\n")
	if width < 0 || c.charWidth <= 0 {
		return paragraphs
	}
	maxCols := int(width / c.charWidth)
	if maxCols < 1 {
		maxCols = 1
	}

	mode := c.effectiveWrapMode()
	var lines []string
	for _, para := range paragraphs {
		switch mode {
		case WrapChar:
			lines = append(lines, wrapByChar(para, maxCols)...)
		default:
			lines = append(lines, wrapByWord(para, maxCols)...)
		}
	}
	return lines
}

func (c *TextCell) effectiveWrapMode() TextWrapMode {
	if c.wrapMode != WrapAuto {
		return c.wrapMode
	}
	if containsCJK(c.text) {
		return WrapChar
	}
	return WrapWord
}

// Resize sets the cell's size.
func (c *TextCell) Resize(width, height float32) {
	c.bounds.W, c.bounds.H = width, height
}

// Relocate sets the cell's position.
func (c *TextCell) Relocate(x, y float32) {
	c.bounds.X, c.bounds.Y = x, y
}

// Bounds returns the position and size last set.
func (c *TextCell) Bounds() Rect { return c.bounds }

// Visible reports whether the flow positioned the cell in the viewport.
func (c *TextCell) Visible() bool { return c.visible }

// SetVisible flips the visibility flag.
func (c *TextCell) SetVisible(visible bool) { c.visible = visible }

// wrapByWord wraps a single paragraph at word boundaries.
func wrapByWord(text string, maxCols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string

	for _, word := range words {
		test := current
		if test != "" {
			test += " "
		}
		test += word

		if runewidth.StringWidth(test) > maxCols && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// wrapByChar wraps a single paragraph at grapheme-cluster boundaries.
func wrapByChar(text string, maxCols int) []string {
	if text == "" {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	cols := 0

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if cols+w > maxCols && cols > 0 {
			lines = append(lines, current.String())
			current.Reset()
			cols = 0
		}
		current.WriteString(cluster)
		cols += w
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hangul, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

// TextCellFactory creates and recycles TextCells. The zero value is not
// usable; construct with NewTextCellFactory.
type TextCellFactory struct {
	charWidth  float32
	lineHeight float32
	wrap       TextWrapMode
}

// NewTextCellFactory returns a factory producing cells on a grid with the
// given column width and line height. Use 1 and 1 for terminal grids.
func NewTextCellFactory(charWidth, lineHeight float32) *TextCellFactory {
	return &TextCellFactory{charWidth: charWidth, lineHeight: lineHeight, wrap: WrapAuto}
}

// SetWrapMode overrides the default WrapAuto mode for new cells.
func (f *TextCellFactory) SetWrapMode(mode TextWrapMode) {
	f.wrap = mode
}

// CreateCell returns a fresh cell for the given item.
func (f *TextCellFactory) CreateCell(index int, item string) *TextCell {
	return &TextCell{
		text:       item,
		index:      index,
		charWidth:  f.charWidth,
		lineHeight: f.lineHeight,
		wrapMode:   f.wrap,
	}
}

// ReuseCell rebinds a pooled cell to a new item. TextCells are always
// reusable, so the candidate is never declined.
func (f *TextCellFactory) ReuseCell(index int, item string, candidate *TextCell) *TextCell {
	candidate.text = item
	candidate.index = index
	return candidate
}

// ResetCell clears item state before pooling.
func (f *TextCellFactory) ResetCell(cell *TextCell) {
	cell.text = ""
	cell.index = -1
}

// DisposeCell releases a declined cell. TextCells hold no resources.
func (f *TextCellFactory) DisposeCell(cell *TextCell) {}

// UpdateIndex re-stamps the cell's item index.
func (f *TextCellFactory) UpdateIndex(cell *TextCell, newIndex int) {
	cell.index = newIndex
}
