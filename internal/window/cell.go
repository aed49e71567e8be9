package window

// Color represents a cell color
type Color struct {
	Type  ColorType
	Value uint32 // Indexed: 0-255, RGB: 0xRRGGBB
}

type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorIndexed
	ColorRGB
)

// Style holds the rendition attributes applied to inserted cells
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Blink     bool
	Reverse   bool
	Strike    bool
}

// Cell is a single character cell of a window
type Cell struct {
	Rune  rune
	Style Style
	Width int // 1 normal, 2 wide, 0 continuation
}

// DefaultCell returns a blank cell
func DefaultCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

func blankLine(width int, bg Cell) []Cell {
	line := make([]Cell, width)
	for i := range line {
		line[i] = bg
	}
	return line
}

// normalizeLine repairs wide glyphs (Width==2) and continuation cells
// (Width==0) that were split apart by a shift.
func normalizeLine(line []Cell, bg Cell) {
	for i := 0; i < len(line); i++ {
		switch line[i].Width {
		case 0:
			if i == 0 || line[i-1].Width != 2 {
				line[i] = bg
			}
		case 2:
			if i+1 >= len(line) || line[i+1].Width != 0 {
				line[i] = bg
			}
		}
	}
}
