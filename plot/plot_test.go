// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestRender(t *testing.T) {
	samples := []physic.Distance{physic.Metre, 2 * physic.Metre, -1, 3 * physic.Metre}
	img, err := Render(samples, 5*physic.Metre, 320, 120)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 120 {
		t.Fatalf("bounds = %v", b)
	}
	// The top right corner is outside the chart.
	r, g, b, _ := img.At(319, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("background = %v", img.At(319, 0))
	}
	// The x axis runs along the bottom of the chart area.
	if c := color.GrayModel.Convert(img.At(marginLeft+10, marginTop+(120-marginTop-marginBottom))).(color.Gray); c.Y > 0x80 {
		t.Errorf("x axis pixel = %v", c)
	}
}

func TestRenderAutoScale(t *testing.T) {
	if _, err := Render([]physic.Distance{-1, -1}, 0, 100, 60); err != nil {
		t.Fatal(err)
	}
	if _, err := Render([]physic.Distance{physic.Metre}, 0, 100, 60); err != nil {
		t.Fatal(err)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, physic.Metre, 100, 100); !errors.Is(err, ErrNoSamples) {
		t.Errorf("Render(nil) = %v", err)
	}
	if _, err := Render([]physic.Distance{1}, physic.Metre, 10, 10); !errors.Is(err, ErrBadSize) {
		t.Errorf("Render(10x10) = %v", err)
	}
}

func TestSave(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history.png")
	if err := Save(p, []physic.Distance{physic.Metre, 2 * physic.Metre}, 5*physic.Metre, 200, 100); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Error("not a PNG file")
	}
}
