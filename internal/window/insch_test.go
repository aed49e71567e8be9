package window

import (
	"errors"
	"math"
	"testing"
	"unicode"
)

func TestInsertCharShiftsRight(t *testing.T) {
	w := New(1, 6)
	w.PutString(0, 0, "BC")
	if err := w.InsertChar('A'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "ABC   " {
		t.Fatalf("Line(0) = %q, want %q", got, "ABC   ")
	}
	if y, x := w.Cursor(); y != 0 || x != 0 {
		t.Fatalf("cursor moved to (%d,%d)", y, x)
	}
}

func TestInsertCharDropsRightmost(t *testing.T) {
	w := New(1, 4)
	w.PutString(0, 0, "abcd")
	_ = w.Move(0, 1)
	if err := w.InsertChar('X'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "aXbc" {
		t.Fatalf("Line(0) = %q, want %q", got, "aXbc")
	}
}

func TestInsertCharAtLastColumn(t *testing.T) {
	w := New(1, 3)
	w.PutString(0, 0, "abc")
	_ = w.Move(0, 2)
	if err := w.InsertChar('Z'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "abZ" {
		t.Fatalf("Line(0) = %q, want %q", got, "abZ")
	}
}

func TestInsertCharControls(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want string
	}{
		{"tab", '\t', "    ab  "},
		{"newline", '\n', "        "},
		{"del", 0x7f, "^?ab    "},
		{"ctrl-a", 0x01, "^Aab    "},
		{"escape", 0x1b, "^[ab    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(1, 8)
			w.TabSize = 4
			w.PutString(0, 0, "ab")
			if err := w.InsertChar(tt.r); err != nil {
				t.Fatalf("InsertChar(%q) failed: %v", tt.r, err)
			}
			if got := w.Line(0); got != tt.want {
				t.Fatalf("Line(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertCharNewlineClearsFromCursor(t *testing.T) {
	w := New(1, 5)
	w.PutString(0, 0, "abcde")
	_ = w.Move(0, 2)
	if err := w.InsertChar('\n'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "ab   " {
		t.Fatalf("Line(0) = %q, want %q", got, "ab   ")
	}
}

func TestInsertCharWide(t *testing.T) {
	w := New(1, 4)
	w.PutString(0, 0, "abcd")
	if err := w.InsertChar('中'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "中ab" {
		t.Fatalf("Line(0) = %q, want %q", got, "中ab")
	}
	if w.Lines[0][0].Width != 2 || w.Lines[0][1].Width != 0 {
		t.Fatalf("expected glyph+continuation, got widths %d,%d", w.Lines[0][0].Width, w.Lines[0][1].Width)
	}
}

func TestInsertCharWideAtEdgeBecomesBlank(t *testing.T) {
	w := New(1, 3)
	w.PutString(0, 0, "abc")
	_ = w.Move(0, 2)
	if err := w.InsertChar('中'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "ab " {
		t.Fatalf("Line(0) = %q, want %q", got, "ab ")
	}
}

func TestInsertCharSplitsWideAtRightEdge(t *testing.T) {
	w := New(1, 3)
	w.PutString(0, 0, "a中")
	if err := w.InsertChar('X'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "Xa " {
		t.Fatalf("Line(0) = %q, want %q", got, "Xa ")
	}
	for i, c := range w.Lines[0] {
		if c.Width != 1 {
			t.Fatalf("cell %d width = %d, want 1", i, c.Width)
		}
	}
}

func TestInsertCharIntoContinuationCell(t *testing.T) {
	w := New(1, 5)
	w.PutString(0, 0, "中ab")
	_ = w.Move(0, 1)
	if err := w.InsertChar('X'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != " X ab" {
		t.Fatalf("Line(0) = %q, want %q", got, " X ab")
	}
}

func TestInsertCharCombiningIgnored(t *testing.T) {
	w := New(1, 3)
	w.PutString(0, 0, "ab")
	before := w.Version()
	if err := w.InsertChar('\u0301'); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	if got := w.Line(0); got != "ab " {
		t.Fatalf("Line(0) = %q, want %q", got, "ab ")
	}
	if w.Version() != before {
		t.Fatalf("zero-width rune changed the window")
	}
}

func TestInsertCharStyleAndBackground(t *testing.T) {
	w := New(1, 3)
	w.Background = Cell{Rune: '.', Width: 1}
	w.Style = Style{Underline: true}
	if err := w.InsertChar(' '); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}
	cell := w.Lines[0][0]
	if cell.Rune != '.' || !cell.Style.Underline {
		t.Fatalf("cell = %+v, want background rune with window style", cell)
	}
}

func TestInsertCharCursorOutside(t *testing.T) {
	w := New(2, 2)
	w.PutString(0, 0, "ab")
	w.CursorX = 5
	err := w.InsertChar('x')
	if !errors.Is(err, ErrCursor) {
		t.Fatalf("InsertChar = %v, want ErrCursor", err)
	}
	if got := w.Line(0); got != "ab" {
		t.Fatalf("failed insert mutated line: %q", got)
	}
}

func TestInsertCharRejectsInvalidRunes(t *testing.T) {
	for _, r := range []rune{-1, -1000, math.MinInt32, unicode.MaxRune + 1, math.MaxInt32} {
		w := New(1, 4)
		w.PutString(0, 0, "ab")
		before := w.Version()
		err := w.InsertChar(r)
		if !errors.Is(err, ErrInvalidRune) {
			t.Fatalf("InsertChar(%d) = %v, want ErrInvalidRune", r, err)
		}
		if got := w.Line(0); got != "ab  " {
			t.Fatalf("InsertChar(%d) mutated line: %q", r, got)
		}
		if w.Version() != before {
			t.Fatalf("InsertChar(%d) bumped version", r)
		}
	}
}

func TestInsertCharC1AndSoftHyphenTakeACell(t *testing.T) {
	for _, r := range []rune{0x80, 0x9b, 0x9f, 0xad} {
		w := New(1, 3)
		w.PutString(0, 0, "ab")
		if err := w.InsertChar(r); err != nil {
			t.Fatalf("InsertChar(%U) failed: %v", r, err)
		}
		cell := w.Lines[0][0]
		if cell.Rune != r || cell.Width != 1 {
			t.Fatalf("InsertChar(%U) cell = %+v, want rune in a single cell", r, cell)
		}
		if got := w.Lines[0][1].Rune; got != 'a' {
			t.Fatalf("InsertChar(%U) did not shift: next cell %q", r, got)
		}
	}
}
