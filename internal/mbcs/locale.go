package mbcs

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// codesets maps normalized glibc codeset names to encodings. Names not
// listed here fall back to the WHATWG label index.
var codesets = map[string]encoding.Encoding{
	"iso88591":  charmap.ISO8859_1,
	"iso88592":  charmap.ISO8859_2,
	"iso88595":  charmap.ISO8859_5,
	"iso88597":  charmap.ISO8859_7,
	"iso885915": charmap.ISO8859_15,
	"koi8r":     charmap.KOI8R,
	"koi8u":     charmap.KOI8U,
	"cp1251":    charmap.Windows1251,
	"cp1252":    charmap.Windows1252,
	"cp437":     charmap.CodePage437,
	"eucjp":     japanese.EUCJP,
	"sjis":      japanese.ShiftJIS,
	"shiftjis":  japanese.ShiftJIS,
	"euckr":     korean.EUCKR,
	"gb2312":    simplifiedchinese.GBK,
	"gbk":       simplifiedchinese.GBK,
	"gb18030":   simplifiedchinese.GB18030,
	"big5":      traditionalchinese.Big5,
}

// Lookup returns the decoder for a locale string of the form
// language[_territory][.codeset][@modifier]. The empty, "C" and "POSIX"
// locales select Bytes; a locale without a codeset selects UTF8.
func Lookup(locale string) (Decoder, error) {
	locale = strings.TrimSpace(locale)
	if at := strings.IndexByte(locale, '@'); at >= 0 {
		locale = locale[:at]
	}
	switch locale {
	case "", "C", "POSIX":
		return Bytes, nil
	}

	dot := strings.IndexByte(locale, '.')
	if dot < 0 {
		return UTF8, nil
	}
	codeset := locale[dot+1:]
	norm := normalizeCodeset(codeset)
	switch norm {
	case "utf8":
		return UTF8, nil
	case "ascii", "ansix3.41968", "usascii":
		return Bytes, nil
	}
	if enc, ok := codesets[norm]; ok {
		return NewCharset(codeset, enc), nil
	}
	enc, err := htmlindex.Get(codeset)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, ErrUnknownCodeset)
	}
	name, err := htmlindex.Name(enc)
	switch {
	case err != nil:
		return nil, fmt.Errorf("locale %q: %w", locale, ErrUnknownCodeset)
	case name == "utf-8":
		return UTF8, nil
	case stateful[name] || !asciiCompatible(enc):
		return nil, fmt.Errorf("locale %q: %w: %s cannot be decoded one character at a time",
			locale, ErrUnknownCodeset, name)
	}
	return NewCharset(codeset, enc), nil
}

// stateful lists encodings whose meaning depends on earlier shift
// sequences. DecodeOne starts from the initial state on every call, so
// they are refused.
var stateful = map[string]bool{
	"iso-2022-jp": true,
	"replacement": true,
}

// asciiCompatible reports whether enc decodes printable ASCII to itself.
func asciiCompatible(enc encoding.Encoding) bool {
	const probe = " 0Az~"
	out, err := enc.NewDecoder().String(probe)
	return err == nil && out == probe
}

// FromEnv resolves the character-type locale from LC_ALL, LC_CTYPE and
// LANG, in that order of precedence.
func FromEnv() (Decoder, error) {
	return Lookup(EnvLocale())
}

// EnvLocale returns the first non-empty of LC_ALL, LC_CTYPE and LANG.
func EnvLocale() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func normalizeCodeset(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
