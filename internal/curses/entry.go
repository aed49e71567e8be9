package curses

import (
	"github.com/andyrewlee/cellwin/internal/logging"
	"github.com/andyrewlee/cellwin/internal/window"
)

// Op describes one string insertion. Every public entry point below is a
// fixed Op shape passed to Insert.
type Op struct {
	// Window is the target; the implicit-window entry points pass Stdscr.
	Window *window.Window

	// Move relocates the cursor to (Y, X) before inserting.
	Move bool
	Y, X int

	// N bounds the insertion: bytes scanned for narrow strings, characters
	// for wide ones. Negative inserts the whole string.
	N int

	// Wide selects WStr instead of Str.
	Wide bool
	Str  []byte
	WStr []rune
}

// Insert inserts op's string at the cursor of op.Window, shifting the rest
// of the line right. The cursor ends where it started (after the move, if
// any). A failed move aborts before anything is inserted.
func (s *Screen) Insert(op Op) error {
	if s == nil || op.Window == nil {
		return ErrInvalidArgument
	}
	if op.Move {
		if err := op.Window.Move(op.Y, op.X); err != nil {
			return err
		}
	}
	if op.Wide {
		return s.winsnwstr(op.Window, op.WStr, op.N)
	}
	return s.winsnstr(op.Window, op.Str, op.N)
}

func (s *Screen) stdscr() *window.Window {
	if s == nil {
		return nil
	}
	return s.Stdscr
}

// InsStr inserts str into the standard window.
func (s *Screen) InsStr(str []byte) error {
	logging.Debug("insstr() - called: string=%q", str)
	return s.Insert(Op{Window: s.stdscr(), N: -1, Str: str})
}

// InsNStr inserts at most n bytes' worth of str into the standard window.
func (s *Screen) InsNStr(str []byte, n int) error {
	logging.Debug("insnstr() - called: string=%q n %d", str, n)
	return s.Insert(Op{Window: s.stdscr(), N: n, Str: str})
}

// WInsStr inserts str into win.
func (s *Screen) WInsStr(win *window.Window, str []byte) error {
	logging.Debug("winsstr() - called: string=%q", str)
	return s.Insert(Op{Window: win, N: -1, Str: str})
}

// WInsNStr inserts at most n bytes' worth of str into win.
func (s *Screen) WInsNStr(win *window.Window, str []byte, n int) error {
	logging.Debug("winsnstr() - called: string=%q n %d", str, n)
	return s.Insert(Op{Window: win, N: n, Str: str})
}

// MvInsStr moves the standard window's cursor to (y, x) and inserts str.
func (s *Screen) MvInsStr(y, x int, str []byte) error {
	logging.Debug("mvinsstr() - called: y %d x %d string=%q", y, x, str)
	return s.Insert(Op{Window: s.stdscr(), Move: true, Y: y, X: x, N: -1, Str: str})
}

// MvInsNStr moves the standard window's cursor to (y, x) and inserts at
// most n bytes' worth of str.
func (s *Screen) MvInsNStr(y, x int, str []byte, n int) error {
	logging.Debug("mvinsnstr() - called: y %d x %d string=%q n %d", y, x, str, n)
	return s.Insert(Op{Window: s.stdscr(), Move: true, Y: y, X: x, N: n, Str: str})
}

// MvWInsStr moves win's cursor to (y, x) and inserts str.
func (s *Screen) MvWInsStr(win *window.Window, y, x int, str []byte) error {
	logging.Debug("mvwinsstr() - called: y %d x %d string=%q", y, x, str)
	return s.Insert(Op{Window: win, Move: true, Y: y, X: x, N: -1, Str: str})
}

// MvWInsNStr moves win's cursor to (y, x) and inserts at most n bytes'
// worth of str.
func (s *Screen) MvWInsNStr(win *window.Window, y, x int, str []byte, n int) error {
	logging.Debug("mvwinsnstr() - called: y %d x %d string=%q n %d", y, x, str, n)
	return s.Insert(Op{Window: win, Move: true, Y: y, X: x, N: n, Str: str})
}

// InsWStr inserts wstr into the standard window.
func (s *Screen) InsWStr(wstr []rune) error {
	logging.Debug("ins_wstr() - called")
	return s.Insert(Op{Window: s.stdscr(), N: -1, Wide: true, WStr: wstr})
}

// InsNWStr inserts at most n characters of wstr into the standard window.
func (s *Screen) InsNWStr(wstr []rune, n int) error {
	logging.Debug("ins_nwstr() - called: n %d", n)
	return s.Insert(Op{Window: s.stdscr(), N: n, Wide: true, WStr: wstr})
}

// WInsWStr inserts wstr into win.
func (s *Screen) WInsWStr(win *window.Window, wstr []rune) error {
	logging.Debug("wins_wstr() - called")
	return s.Insert(Op{Window: win, N: -1, Wide: true, WStr: wstr})
}

// WInsNWStr inserts at most n characters of wstr into win.
func (s *Screen) WInsNWStr(win *window.Window, wstr []rune, n int) error {
	logging.Debug("wins_nwstr() - called: n %d", n)
	return s.Insert(Op{Window: win, N: n, Wide: true, WStr: wstr})
}

// MvInsWStr moves the standard window's cursor to (y, x) and inserts wstr.
func (s *Screen) MvInsWStr(y, x int, wstr []rune) error {
	logging.Debug("mvins_wstr() - called: y %d x %d", y, x)
	return s.Insert(Op{Window: s.stdscr(), Move: true, Y: y, X: x, N: -1, Wide: true, WStr: wstr})
}

// MvInsNWStr moves the standard window's cursor to (y, x) and inserts at
// most n characters of wstr.
func (s *Screen) MvInsNWStr(y, x int, wstr []rune, n int) error {
	logging.Debug("mvins_nwstr() - called: y %d x %d n %d", y, x, n)
	return s.Insert(Op{Window: s.stdscr(), Move: true, Y: y, X: x, N: n, Wide: true, WStr: wstr})
}

// MvWInsWStr moves win's cursor to (y, x) and inserts wstr.
func (s *Screen) MvWInsWStr(win *window.Window, y, x int, wstr []rune) error {
	logging.Debug("mvwins_wstr() - called: y %d x %d", y, x)
	return s.Insert(Op{Window: win, Move: true, Y: y, X: x, N: -1, Wide: true, WStr: wstr})
}

// MvWInsNWStr moves win's cursor to (y, x) and inserts at most n
// characters of wstr.
func (s *Screen) MvWInsNWStr(win *window.Window, y, x int, wstr []rune, n int) error {
	logging.Debug("mvwins_nwstr() - called: y %d x %d n %d", y, x, n)
	return s.Insert(Op{Window: win, Move: true, Y: y, X: x, N: n, Wide: true, WStr: wstr})
}
