package window

import (
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// cellWidth is the number of cells r occupies. C1 controls and the soft
// hyphen have no terminal width but still take one cell, as curses stores
// every non-C0 character.
func cellWidth(r rune) int {
	if (r >= 0x80 && r < 0xa0) || r == 0xad {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// InsertChar inserts r at the cursor and shifts the rest of the line right.
// Cells pushed past the right edge are lost and the cursor does not move.
//
// Control characters are translated before insertion: a tab becomes spaces
// up to the next tab stop, a newline clears to the end of the line, DEL
// becomes "^?" and other C0 controls become caret notation. Values outside
// the Unicode code space fail with ErrInvalidRune.
func (w *Window) InsertChar(r rune) error {
	x, y := w.CursorX, w.CursorY
	if y < 0 || y >= w.Height || x < 0 || x >= w.Width || y >= len(w.Lines) {
		return ErrCursor
	}
	if r < 0 || r > unicode.MaxRune {
		return fmt.Errorf("%w: %d", ErrInvalidRune, r)
	}

	if r < ' ' || r == 0x7f {
		switch r {
		case '\t':
			stop := (x/w.tabSize() + 1) * w.tabSize()
			for ; x < stop; x++ {
				if err := w.InsertChar(' '); err != nil {
					return err
				}
			}
			return nil
		case '\n':
			w.clearToEOL()
			return nil
		case 0x7f:
			if err := w.InsertChar('?'); err != nil {
				return err
			}
			return w.InsertChar('^')
		default:
			if err := w.InsertChar(r + '@'); err != nil {
				return err
			}
			return w.InsertChar('^')
		}
	}

	width := cellWidth(r)
	if width <= 0 {
		// Combining marks have no cell of their own.
		return nil
	}

	cell := Cell{Rune: r, Style: w.Style, Width: width}
	if r == ' ' {
		cell.Rune = w.Background.Rune
	}
	if width == 2 && x+1 >= w.Width {
		// No room for the continuation cell.
		cell = Cell{Rune: w.Background.Rune, Style: w.Style, Width: 1}
		width = 1
	}

	line := w.Lines[y]
	copy(line[x+width:], line[x:len(line)-width])
	line[x] = cell
	if width == 2 {
		line[x+1] = Cell{Style: w.Style, Width: 0}
	}
	normalizeLine(line, w.Background)
	w.markDirtyLine(y)
	return nil
}

// clearToEOL blanks the cursor line from the cursor to the right edge.
func (w *Window) clearToEOL() {
	line := w.Lines[w.CursorY]
	for x := w.CursorX; x < len(line); x++ {
		line[x] = w.Background
	}
	normalizeLine(line, w.Background)
	w.markDirtyLine(w.CursorY)
}
