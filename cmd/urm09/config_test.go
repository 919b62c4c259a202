// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GermanBionicSystems/devices/urm09"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "urm09.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, `
bus: "1"
address: 0x12
range_cm: 150
mode: passive
samples: 20
plot: out.png
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Bus:        "1",
		Address:    0x12,
		RangeCM:    150,
		Mode:       "passive",
		IntervalMs: 100,
		SettleMs:   100,
		Samples:    20,
		Plot:       "out.png",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if r, _ := cfg.Range(); r != urm09.Range150 {
		t.Errorf("Range() = %s", r)
	}
	if m, _ := cfg.ModeValue(); m != urm09.ModePassive {
		t.Errorf("ModeValue() = %s", m)
	}
	if cfg.Interval() != 100*time.Millisecond || cfg.Settle() != 100*time.Millisecond {
		t.Errorf("Interval() = %s, Settle() = %s", cfg.Interval(), cfg.Settle())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "range_cm: [")); err == nil {
		t.Error("expected error for bad YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(c *Config)
	}{
		{"address zero", func(c *Config) { c.Address = 0 }},
		{"address too large", func(c *Config) { c.Address = 0x80 }},
		{"range", func(c *Config) { c.RangeCM = 200 }},
		{"mode", func(c *Config) { c.Mode = "burst" }},
		{"interval", func(c *Config) { c.IntervalMs = -1 }},
		{"samples", func(c *Config) { c.Samples = -5 }},
	}
	for _, test := range tests {
		cfg := DefaultConfig()
		test.mod(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
	cfg.Mode = "Automatic"
	if m, err := cfg.ModeValue(); err != nil || m != urm09.ModeAutomatic {
		t.Errorf("ModeValue(Automatic) = %s, %v", m, err)
	}
}

func TestApplyFlags(t *testing.T) {
	fs := newFlagSet()
	if err := fs.Parse([]string{"-mode", "passive", "-n", "3", "-addr", "0x20", "-gauge"}); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.RangeCM = 300
	applyFlags(fs, &cfg)
	want := DefaultConfig()
	want.RangeCM = 300 // not set on the command line, kept from the file
	want.Mode = "passive"
	want.Samples = 3
	want.Address = 0x20
	want.Gauge = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMainImplArgs(t *testing.T) {
	if err := mainImpl([]string{"extra"}); err == nil {
		t.Error("expected error for positional argument")
	}
	if err := mainImpl([]string{"-range", "42"}); err == nil {
		t.Error("expected validation error")
	}
}
