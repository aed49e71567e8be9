package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/cellwin/internal/config"
	"github.com/andyrewlee/cellwin/internal/curses"
	"github.com/andyrewlee/cellwin/internal/logging"
)

// Version info set via ldflags
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("cellwin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.Int("rows", cfg.Rows, "window rows")
	cols := fs.Int("cols", cfg.Cols, "window columns")
	locale := fs.String("locale", cfg.Locale, "locale used to decode narrow strings (default: LC_ALL/LC_CTYPE/LANG)")
	fill := fs.String("fill", "", "text written on the cursor row before inserting")
	y := fs.Int("y", -1, "move to this row before inserting (requires -x)")
	x := fs.Int("x", -1, "move to this column before inserting (requires -y)")
	n := fs.Int("n", -1, "insert at most n bytes (narrow) or characters (-wide); negative inserts everything")
	wide := fs.Bool("wide", false, "insert arguments as wide-character strings")
	plain := fs.Bool("plain", false, "print the window without frame or styling")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	saveConfig := fs.Bool("save-config", false, "write -rows, -cols, -locale and -log-level to the config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "cellwin %s\n", version)
		return 0
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(stderr, "Warning: could not create %s: %v\n", cfg.Paths.Home, err)
	}
	if _, err := logging.Initialize(cfg.Paths.LogsRoot, level); err != nil {
		fmt.Fprintf(stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg.Rows, cfg.Cols, cfg.Locale, cfg.LogLevel = *rows, *cols, *locale, *logLevel
	if *saveConfig {
		if err := cfg.Save(); err != nil {
			logging.WithError(err, "save config")
			fmt.Fprintf(stderr, "Error saving config: %v\n", err)
			return 1
		}
		logging.Info("Saved config to %s", cfg.Paths.ConfigPath)
	}
	scr, err := curses.FromConfig(cfg)
	if err != nil {
		logging.Error("Failed to create screen: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logging.Info("Screen %dx%d locale %s", *rows, *cols, scr.Decoder().Name())

	move := *y >= 0 || *x >= 0
	if move && (*y < 0 || *x < 0) {
		logging.Warn("relocation needs both -y and -x, got y %d x %d", *y, *x)
	}
	win := scr.Stdscr
	if *fill != "" {
		row := 0
		if move {
			row = *y
		}
		win.PutString(row, 0, *fill)
	}

	var lastErr error
	for _, arg := range fs.Args() {
		op := curses.Op{Window: win, Move: move, Y: *y, X: *x, N: *n, Wide: *wide}
		if *wide {
			op.WStr = []rune(arg)
		} else {
			op.Str = []byte(arg)
		}
		if err := scr.Insert(op); err != nil {
			logging.WithError(err, "insert "+arg)
			fmt.Fprintf(stderr, "insert %q: %v\n", arg, err)
			lastErr = err
		}
	}

	code := 0
	if lastErr != nil {
		code = 1
	}

	cy, cx := win.Cursor()
	if *plain {
		fmt.Fprintln(stdout, ansi.Strip(win.Render()))
		return code
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#565f89"))
	fmt.Fprintln(stdout, frame.Render(win.Render()))
	fmt.Fprintf(stdout, "cursor (%d,%d) status %d\n", cy, cx, curses.Status(lastErr))
	return code
}
