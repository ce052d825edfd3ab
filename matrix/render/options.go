// SPDX-License-Identifier: MIT

package render

import (
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

// Defaults for a rendered heat map.
const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Panic messages for nonsensical option values.
const (
	panicSizeInvalid    = "render: width and height must be positive"
	panicPaletteInvalid = "render: palette must have at least one color"
)

// Option configures a heat map.
type Option func(*Options)

// Options holds rendering settings. Use the WithX constructors.
type Options struct {
	title   string
	width   vg.Length
	height  vg.Length
	palette palette.Palette
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSize sets the image size. Panics unless both sides are positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithPalette sets the cell colors, lowest value first. Panics on an empty palette.
func WithPalette(p palette.Palette) Option {
	if p == nil || len(p.Colors()) == 0 {
		panic(panicPaletteInvalid)
	}

	return func(o *Options) { o.palette = p }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		width:   DefaultWidth,
		height:  DefaultHeight,
		palette: defaultPalette(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
