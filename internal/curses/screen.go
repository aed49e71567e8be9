// Package curses implements curses-style string insertion into windows.
package curses

import (
	"fmt"

	"github.com/andyrewlee/cellwin/internal/config"
	"github.com/andyrewlee/cellwin/internal/mbcs"
	"github.com/andyrewlee/cellwin/internal/window"
)

// Screen is the per-terminal context: it owns the standard window used by
// the implicit-window entry points and the decoder for narrow strings.
// A Screen is not safe for concurrent use.
type Screen struct {
	Stdscr *window.Window

	decoder mbcs.Decoder
	ceiling int
}

// Options configures NewScreen.
type Options struct {
	Rows, Cols int
	TabSize    int
	// Ceiling caps the characters buffered by one narrow insertion.
	// Zero means DefaultCeiling.
	Ceiling int
	// Decoder decodes narrow strings. Nil means mbcs.Bytes.
	Decoder mbcs.Decoder
}

// NewScreen creates a screen with a blank standard window.
func NewScreen(opts Options) *Screen {
	stdscr := window.New(opts.Rows, opts.Cols)
	if opts.TabSize > 0 {
		stdscr.TabSize = opts.TabSize
	}
	dec := opts.Decoder
	if dec == nil {
		dec = mbcs.Bytes
	}
	ceiling := opts.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return &Screen{Stdscr: stdscr, decoder: dec, ceiling: ceiling}
}

// FromConfig creates a screen sized and localized from cfg. An empty
// cfg.Locale falls back to the process locale environment.
func FromConfig(cfg *config.Config) (*Screen, error) {
	locale := cfg.Locale
	if locale == "" {
		locale = mbcs.EnvLocale()
	}
	dec, err := mbcs.Lookup(locale)
	if err != nil {
		return nil, fmt.Errorf("screen locale: %w", err)
	}
	return NewScreen(Options{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		TabSize: cfg.TabSize,
		Ceiling: cfg.DecodeCeiling,
		Decoder: dec,
	}), nil
}

// NewWindow creates a window sharing the screen's tab size.
func (s *Screen) NewWindow(rows, cols int) *window.Window {
	w := window.New(rows, cols)
	w.TabSize = s.Stdscr.TabSize
	return w
}

// Decoder returns the decoder used for narrow strings.
func (s *Screen) Decoder() mbcs.Decoder {
	return s.decoder
}

// Ceiling returns the narrow decode ceiling.
func (s *Screen) Ceiling() int {
	return s.ceiling
}
