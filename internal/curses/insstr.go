package curses

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/andyrewlee/cellwin/internal/mbcs"
	"github.com/andyrewlee/cellwin/internal/window"
)

// DefaultCeiling is the most characters one narrow insertion decodes.
const DefaultCeiling = 512

// Binary status codes for callers that only distinguish success from failure.
const (
	OK  = 0
	ERR = -1
)

var (
	// ErrInvalidArgument is returned for a nil screen, window or string.
	ErrInvalidArgument = errors.New("curses: invalid argument")
	// ErrShift wraps a failure of the single-character insert.
	ErrShift = errors.New("curses: character insert failed")
)

// Status maps an error from any entry point to OK or ERR.
func Status(err error) int {
	if err != nil {
		return ERR
	}
	return OK
}

// charInserter is the single-character shift-insert primitive.
type charInserter interface {
	InsertChar(r rune) error
}

// resolveBound applies the count convention shared by every entry point:
// a negative n, or one past the natural length, means the whole string.
func resolveBound(n, natural int) int {
	if n < 0 || n > natural {
		return natural
	}
	return n
}

// narrowLen is the byte length up to the first NUL.
func narrowLen(str []byte) int {
	if i := bytes.IndexByte(str, 0); i >= 0 {
		return i
	}
	return len(str)
}

// wideLen is the character count up to the first NUL.
func wideLen(wstr []rune) int {
	for i, r := range wstr {
		if r == 0 {
			return i
		}
	}
	return len(wstr)
}

// decodeNarrow decodes at most n bytes of str into buf. A negative ceiling
// disables the ceiling clamp.
//
// An invalid or truncated sequence ends the result silently: everything
// decoded before it is kept and the caller still reports success. This is
// unlike relocation and insert failures, which abort the call.
func decodeNarrow(dec mbcs.Decoder, str []byte, n, ceiling int, buf []rune) []rune {
	n = resolveBound(n, narrowLen(str))
	if ceiling >= 0 && n > ceiling {
		n = ceiling
	}

	seq := buf[:0]
	for i := 0; i < n && str[i] != 0; {
		r, size := dec.DecodeOne(str[i:n])
		if size <= 0 {
			break
		}
		seq = append(seq, r)
		i += size
	}
	return seq
}

// boundWide returns the first n characters of wstr without copying.
func boundWide(wstr []rune, n int) []rune {
	return wstr[:resolveBound(n, wideLen(wstr))]
}

// insertReverse inserts seq at the cursor, last character first, so that
// each shift leaves seq in its original order. A failed insert aborts;
// characters already inserted stay.
func insertReverse(win charInserter, seq []rune) error {
	for i := len(seq) - 1; i >= 0; i-- {
		if err := win.InsertChar(seq[i]); err != nil {
			return fmt.Errorf("%w: character %d of %d: %w", ErrShift, i, len(seq), err)
		}
	}
	return nil
}

// winsnstr is the narrow pipeline.
func (s *Screen) winsnstr(win *window.Window, str []byte, n int) error {
	if win == nil || str == nil {
		return ErrInvalidArgument
	}

	// Without a locale codeset every byte is a character and no ceiling
	// applies.
	ceiling := s.ceiling
	if s.decoder == mbcs.Bytes {
		ceiling = -1
	}

	var stack [DefaultCeiling]rune
	buf := stack[:0]
	if need := resolveBound(n, narrowLen(str)); need > len(stack) && (ceiling < 0 || ceiling > len(stack)) {
		buf = make([]rune, 0, need)
	}
	return insertReverse(win, decodeNarrow(s.decoder, str, n, ceiling, buf))
}

// winsnwstr is the wide pipeline.
func (s *Screen) winsnwstr(win *window.Window, wstr []rune, n int) error {
	if win == nil || wstr == nil {
		return ErrInvalidArgument
	}
	return insertReverse(win, boundWide(wstr, n))
}
