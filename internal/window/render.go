package window

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Line returns row y as plain text, one rune per glyph.
func (w *Window) Line(y int) string {
	if y < 0 || y >= len(w.Lines) {
		return ""
	}
	var b strings.Builder
	for _, cell := range w.Lines[y] {
		if cell.Width == 0 {
			continue
		}
		if cell.Rune == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

// Render returns the window content as a string with SGR sequences.
func (w *Window) Render() string {
	var b strings.Builder
	b.Grow(w.Width * w.Height * 2)

	var last Style
	first := true
	for y, row := range w.Lines {
		for _, cell := range row {
			if first || cell.Style != last {
				b.WriteString(sgr(cell.Style))
				last = cell.Style
				first = false
			}
			if cell.Width == 0 {
				continue
			}
			if cell.Rune == 0 {
				b.WriteRune(' ')
			} else {
				b.WriteRune(cell.Rune)
			}
		}
		if y < len(w.Lines)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(ansi.ResetStyle)
	return b.String()
}

func sgr(s Style) string {
	codes := []string{"0"}
	flags := []struct {
		on   bool
		code string
	}{
		{s.Bold, "1"},
		{s.Dim, "2"},
		{s.Italic, "3"},
		{s.Underline, "4"},
		{s.Blink, "5"},
		{s.Reverse, "7"},
		{s.Strike, "9"},
	}
	for _, f := range flags {
		if f.on {
			codes = append(codes, f.code)
		}
	}
	codes = append(codes, colorCodes(s.Fg, true)...)
	codes = append(codes, colorCodes(s.Bg, false)...)
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCodes(c Color, fg bool) []string {
	itoa := func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
	base := uint32(30)
	ext := "38"
	if !fg {
		base = 40
		ext = "48"
	}
	switch c.Type {
	case ColorIndexed:
		switch {
		case c.Value < 8:
			return []string{itoa(base + c.Value)}
		case c.Value < 16:
			return []string{itoa(base + 60 + c.Value - 8)}
		default:
			return []string{ext, "5", itoa(c.Value)}
		}
	case ColorRGB:
		return []string{ext, "2", itoa((c.Value >> 16) & 0xFF), itoa((c.Value >> 8) & 0xFF), itoa(c.Value & 0xFF)}
	}
	return nil
}
