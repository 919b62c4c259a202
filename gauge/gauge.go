// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gauge draws a distance as a one line bar on a terminal using ANSI
// color codes.
//
// The bar is redrawn in place on every Show, which makes it handy to watch
// a ranging sensor from a shell.
package gauge

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the gauge.
type Opts struct {
	// Width is the number of cells of the bar. Defaults to 50.
	Width int
	// Max is the distance of a full bar. Defaults to 5m.
	Max     physic.Distance
	Palette *ansi256.Palette
	// Writer defaults to stdout. Color is forced on when stdout is a terminal.
	Writer io.Writer
	Color  bool

	_ struct{}
}

// Dev is a distance gauge that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	max     physic.Distance
	color   bool
	palette ansi256.Palette

	buf bytes.Buffer
}

// off is the color of unlit cells.
var off = color.NRGBA{0x20, 0x20, 0x20, 0xff}

// New returns a gauge. The Opts can be nil.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       opts.Writer,
		width:   opts.Width,
		max:     opts.Max,
		color:   opts.Color,
		palette: *p,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
		fd := os.Stdout.Fd()
		d.color = d.color || isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if d.width <= 0 {
		d.width = 50
	}
	if d.max <= 0 {
		d.max = 5 * physic.Metre
	}
	return d
}

func (d *Dev) String() string {
	return "Gauge"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and moves to the next line.
func (d *Dev) Halt() error {
	if !d.color {
		_, err := io.WriteString(d.w, "\n")
		return err
	}
	_, err := io.WriteString(d.w, "\n\033[0m")
	return err
}

// Show redraws the bar for distance v. Negative distances, which the sensor
// reports when it has no echo, draw an empty bar.
func (d *Dev) Show(v physic.Distance) error {
	lit := d.Lit(v)
	d.buf.Reset()
	if d.color {
		_, _ = d.buf.WriteString("\r\033[0m")
	} else {
		_ = d.buf.WriteByte('\r')
	}
	c := d.shade(v)
	for i := 0; i < d.width; i++ {
		switch {
		case d.color && i < lit:
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		case d.color:
			_, _ = io.WriteString(&d.buf, d.palette.Block(off))
		case i < lit:
			_ = d.buf.WriteByte('#')
		default:
			_ = d.buf.WriteByte('.')
		}
	}
	if d.color {
		_, _ = d.buf.WriteString("\033[0m")
	}
	if v < 0 {
		_, _ = d.buf.WriteString(" ---     ")
	} else {
		_, _ = fmt.Fprintf(&d.buf, " %-8s", v)
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Lit returns the number of cells lit for distance v.
func (d *Dev) Lit(v physic.Distance) int {
	if v <= 0 {
		return 0
	}
	if v >= d.max {
		return d.width
	}
	return int(int64(v) * int64(d.width) / int64(d.max))
}

// shade goes from red for a close target to green for a far one.
func (d *Dev) shade(v physic.Distance) color.NRGBA {
	f := float64(v) / float64(d.max)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.NRGBA{R: uint8(255 * (1 - f)), G: uint8(255 * f), A: 0xff}
}

var _ fmt.Stringer = &Dev{}
