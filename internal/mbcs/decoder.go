// Package mbcs decodes single display characters from locale-encoded bytes.
package mbcs

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// MaxCharLen is the longest byte sequence probed for one character.
const MaxCharLen = 4

// ErrUnknownCodeset is returned when a locale names an unsupported codeset.
var ErrUnknownCodeset = errors.New("mbcs: unknown codeset")

// Decoder decodes one character from the front of a byte slice.
type Decoder interface {
	// DecodeOne returns the character at the start of b and the number of
	// bytes it occupies. A size <= 0 means b does not start with a valid,
	// complete character.
	DecodeOne(b []byte) (r rune, size int)
	// Name returns the codeset name.
	Name() string
}

// Bytes is the C/POSIX decoder: every byte is its own character.
var Bytes Decoder = bytesDecoder{}

// UTF8 decodes UTF-8.
var UTF8 Decoder = utf8Decoder{}

type bytesDecoder struct{}

func (bytesDecoder) DecodeOne(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	return rune(b[0]), 1
}

func (bytesDecoder) Name() string { return "ANSI_X3.4-1968" }

type utf8Decoder struct{}

func (utf8Decoder) DecodeOne(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, -1
	}
	return r, size
}

func (utf8Decoder) Name() string { return "UTF-8" }

// Charset decodes through an x/text encoding. Bytes the encoding maps to
// the replacement character count as invalid, unless they are the
// encoding's own spelling of U+FFFD (GB18030 has one).
type Charset struct {
	name string
	dec  *encoding.Decoder
	out  [2 * utf8.UTFMax]byte
	// fffd is the encoded form of U+FFFD, empty if enc cannot encode it.
	fffd []byte
}

// NewCharset wraps enc under the given codeset name.
func NewCharset(name string, enc encoding.Encoding) *Charset {
	c := &Charset{name: name, dec: enc.NewDecoder()}
	if b, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError))); err == nil {
		c.fffd = b
	}
	return c
}

// DecodeOne probes prefixes of b, one byte longer each time, until the
// encoding yields a character or MaxCharLen bytes have been tried.
func (c *Charset) DecodeOne(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	limit := min(len(b), MaxCharLen)
	for k := 1; k <= limit; k++ {
		c.dec.Reset()
		nDst, nSrc, err := c.dec.Transform(c.out[:], b[:k], false)
		if errors.Is(err, transform.ErrShortSrc) || nDst == 0 || nSrc == 0 {
			continue
		}
		r, _ := utf8.DecodeRune(c.out[:nDst])
		if r == utf8.RuneError && !c.isReplacement(b[:nSrc]) {
			return 0, -1
		}
		return r, nSrc
	}
	return 0, -1
}

// Name returns the codeset name.
func (c *Charset) Name() string { return c.name }

func (c *Charset) isReplacement(src []byte) bool {
	return len(c.fffd) > 0 && bytes.Equal(src, c.fffd)
}
