package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/olivier-w/wavescope/internal/termview"
	"github.com/olivier-w/wavescope/internal/view"
)

const usageLine = "usage: wavescope <audio-file-path> [width] [height]"

var errUsage = errors.New(usageLine)

// Default window geometry when no size is given.
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 512
)

// options is the parsed command line. Width and height are pixel buffer
// dimensions; zero means "fit the output".
type options struct {
	path   string
	width  int
	height int

	window    bool
	blocks    bool
	scale     int
	pan       float64
	zoom      float64
	precision float64
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	defaults := view.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("wavescope", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.window, "window", false, "open a window instead of drawing in the terminal")
	fs.BoolVar(&opts.blocks, "blocks", false, "draw with half blocks instead of braille")
	fs.IntVar(&opts.scale, "scale", 1, "window pixels per buffer pixel")
	fs.Float64Var(&opts.pan, "pan", defaults.PanStep, "pan step as a fraction of the visible radius")
	fs.Float64Var(&opts.zoom, "zoom", defaults.ZoomStep, "zoom step as a fraction of the visible radius")
	fs.Float64Var(&opts.precision, "precision", defaults.Precision, "step multiplier while the precision modifier is held")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 3 {
		return options{}, errUsage
	}
	opts.path = rest[0]

	if len(rest) > 1 {
		w, err := strconv.Atoi(rest[1])
		if err != nil || w < 1 {
			return options{}, fmt.Errorf("%w: invalid width %q", errUsage, rest[1])
		}
		opts.width = w
	}
	if len(rest) > 2 {
		h, err := strconv.Atoi(rest[2])
		if err != nil || h < 2 {
			return options{}, fmt.Errorf("%w: invalid height %q", errUsage, rest[2])
		}
		opts.height = h
	}

	switch {
	case opts.scale < 1:
		return options{}, fmt.Errorf("%w: scale must be at least 1", errUsage)
	case opts.pan <= 0 || opts.zoom <= 0 || opts.precision <= 0:
		return options{}, fmt.Errorf("%w: steps must be positive", errUsage)
	}
	return opts, nil
}

func (o options) viewConfig() view.Config {
	cfg := view.DefaultConfig()
	cfg.PanStep = o.pan
	cfg.ZoomStep = o.zoom
	cfg.Precision = o.precision
	return cfg
}

func (o options) mode() termview.Mode {
	if o.blocks {
		return termview.Blocks
	}
	return termview.Braille
}
