// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gauge

import (
	"bytes"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestShowPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	d := New(&Opts{Width: 10, Max: physic.Metre, Writer: buf})
	if err := d.Show(50 * physic.MilliMetre * 10); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "\r#####.....") {
		t.Errorf("Show(50cm) = %q", got)
	}
	buf.Reset()
	if err := d.Show(-10 * physic.MilliMetre); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "\r..........") || !strings.Contains(got, "---") {
		t.Errorf("Show(-1cm) = %q", got)
	}
	buf.Reset()
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n" {
		t.Errorf("Halt() wrote %q", buf.String())
	}
}

func TestShowColor(t *testing.T) {
	buf := &bytes.Buffer{}
	d := New(&Opts{Width: 4, Max: physic.Metre, Writer: buf, Color: true})
	if err := d.Show(physic.Metre); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "\r\033[0m") || !strings.Contains(got, "\033[0m ") {
		t.Errorf("Show(1m) = %q", got)
	}
	want := d.palette.Block(d.shade(physic.Metre))
	if n := strings.Count(got, want); n != 4 {
		t.Errorf("got %d lit cells, want 4 in %q", n, got)
	}
}

func TestLit(t *testing.T) {
	d := New(&Opts{Width: 50, Writer: &bytes.Buffer{}})
	tests := []struct {
		v    physic.Distance
		want int
	}{
		{0, 0},
		{-physic.Metre, 0},
		{physic.Metre, 10},
		{5 * physic.Metre, 50},
		{10 * physic.Metre, 50},
	}
	for _, test := range tests {
		if got := d.Lit(test.v); got != test.want {
			t.Errorf("Lit(%s) = %d, want %d", test.v, got, test.want)
		}
	}
	if d.String() != "Gauge" {
		t.Error(d.String())
	}
}

func TestShade(t *testing.T) {
	d := New(&Opts{Max: physic.Metre, Writer: &bytes.Buffer{}})
	if c := d.shade(0); c.R != 255 || c.G != 0 {
		t.Errorf("shade(0) = %v", c)
	}
	if c := d.shade(2 * physic.Metre); c.R != 0 || c.G != 255 {
		t.Errorf("shade(2m) = %v", c)
	}
}
