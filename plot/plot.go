// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package plot renders a series of distance samples as a line chart.
package plot

import (
	"errors"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
)

var (
	// ErrNoSamples is returned when there is nothing to draw.
	ErrNoSamples = errors.New("plot: no samples")
	// ErrBadSize is returned when the image is too small to hold the chart.
	ErrBadSize = errors.New("plot: image too small")
)

const (
	marginLeft   = 48
	marginRight  = 8
	marginTop    = 8
	marginBottom = 20

	fontSize = 11
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = err
			return
		}
		face = truetype.NewFace(f, &truetype.Options{Size: fontSize})
	})
	return face, faceErr
}

// Render draws samples, oldest first, scaled so that top is the upper edge of
// the chart. Negative samples mark a missing echo and leave a gap in the line.
func Render(samples []physic.Distance, top physic.Distance, width, height int) (image.Image, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	w := width - marginLeft - marginRight
	h := height - marginTop - marginBottom
	if w < 2 || h < 2 {
		return nil, ErrBadSize
	}
	if top <= 0 {
		for _, s := range samples {
			if s > top {
				top = s
			}
		}
		if top <= 0 {
			top = physic.Metre
		}
	}
	f, err := loadFace()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes.
	x0, y0 := float64(marginLeft), float64(marginTop+h)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawLine(x0, float64(marginTop), x0, y0)
	dc.DrawLine(x0, y0, float64(marginLeft+w), y0)
	dc.Stroke()

	dc.SetFontFace(f)
	dc.DrawStringAnchored(top.String(), x0-4, float64(marginTop), 1, 1)
	dc.DrawStringAnchored("0", x0-4, y0, 1, 0)
	dc.DrawStringAnchored("samples", float64(marginLeft+w/2), float64(height-4), 0.5, 0)

	// Series.
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(1.5)
	step := float64(w)
	if len(samples) > 1 {
		step = float64(w) / float64(len(samples)-1)
	}
	pen := false
	for i, s := range samples {
		if s < 0 {
			pen = false
			continue
		}
		if s > top {
			s = top
		}
		x := x0 + float64(i)*step
		y := y0 - float64(h)*float64(s)/float64(top)
		if pen {
			dc.LineTo(x, y)
		} else {
			dc.MoveTo(x, y)
			pen = true
		}
	}
	dc.Stroke()
	return dc.Image(), nil
}

// Save renders samples and writes the chart as a PNG file.
func Save(path string, samples []physic.Distance, top physic.Distance, width, height int) error {
	img, err := Render(samples, top, width, height)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
