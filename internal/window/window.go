package window

import (
	"errors"
	"fmt"
)

// DefaultTabSize is the tab stop interval used when a window has none set.
const DefaultTabSize = 8

var (
	// ErrOutOfBounds is returned by Move when the target is outside the window.
	ErrOutOfBounds = errors.New("window: position out of bounds")
	// ErrCursor is returned by InsertChar when the cursor is not on a cell.
	ErrCursor = errors.New("window: cursor outside window")
	// ErrInvalidRune is returned by InsertChar for values outside the
	// Unicode code space.
	ErrInvalidRune = errors.New("window: invalid rune")
)

// Window is a rectangular grid of character cells with its own cursor.
// A Window is not safe for concurrent use.
type Window struct {
	// Cell rows, Lines[y][x]
	Lines [][]Cell

	// Cursor position (0-indexed)
	CursorX, CursorY int

	// Dimensions
	Width, Height int

	// Style applied to inserted characters
	Style Style

	// Background fills cleared cells and replaces inserted spaces
	Background Cell

	TabSize int

	dirty   []bool
	version uint64
}

// New creates a blank window with the given number of rows and columns.
func New(rows, cols int) *Window {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	w := &Window{
		Width:      cols,
		Height:     rows,
		Background: DefaultCell(),
		TabSize:    DefaultTabSize,
		dirty:      make([]bool, rows),
	}
	w.Lines = make([][]Cell, rows)
	for y := range w.Lines {
		w.Lines[y] = blankLine(cols, w.Background)
	}
	return w
}

// Move sets the cursor position. The cursor is left untouched when (y, x)
// is outside the window.
func (w *Window) Move(y, x int) error {
	if y < 0 || y >= w.Height || x < 0 || x >= w.Width {
		return fmt.Errorf("move to (%d,%d) in %dx%d: %w", y, x, w.Height, w.Width, ErrOutOfBounds)
	}
	prevX, prevY := w.CursorX, w.CursorY
	w.CursorY = y
	w.CursorX = x
	w.bumpVersionIfCursorMoved(prevX, prevY)
	return nil
}

// Cursor returns the cursor position as (y, x).
func (w *Window) Cursor() (int, int) {
	return w.CursorY, w.CursorX
}

// PutString writes text starting at (y, x) without shifting, clipping at
// the right edge. The cursor does not move.
func (w *Window) PutString(y, x int, text string) {
	if y < 0 || y >= w.Height {
		return
	}
	line := w.Lines[y]
	col := x
	for _, r := range text {
		if col >= w.Width {
			break
		}
		width := cellWidth(r)
		if width <= 0 {
			continue
		}
		if col+width > w.Width {
			break
		}
		if col >= 0 {
			line[col] = Cell{Rune: r, Style: w.Style, Width: width}
			if width == 2 {
				line[col+1] = Cell{Style: w.Style, Width: 0}
			}
		}
		col += width
	}
	normalizeLine(line, w.Background)
	w.markDirtyLine(y)
}

// Clear blanks every cell and homes the cursor.
func (w *Window) Clear() {
	for y := range w.Lines {
		w.Lines[y] = blankLine(w.Width, w.Background)
	}
	w.CursorX, w.CursorY = 0, 0
	w.markDirtyRange(0, w.Height-1)
}

func (w *Window) tabSize() int {
	if w.TabSize < 1 {
		return DefaultTabSize
	}
	return w.TabSize
}
