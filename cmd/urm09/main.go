// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// urm09 reads distance and temperature from a DFRobot URM09 ultrasonic
// sensor, or changes its I²C address.
//
// Settings come from an optional YAML file given with -config; flags that are
// set explicitly override the file:
//
//	bus: "1"
//	address: 0x11
//	range_cm: 500
//	mode: passive
//	interval_ms: 100
//	settle_ms: 100
//	samples: 0
//	gauge: true
//	plot: history.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/GermanBionicSystems/devices/gauge"
	"github.com/GermanBionicSystems/devices/plot"
	"github.com/GermanBionicSystems/devices/urm09"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// applyFlags copies the flags set on the command line into cfg.
func applyFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := g.Get(); f.Name {
		case "bus":
			cfg.Bus = v.(string)
		case "addr":
			cfg.Address = uint16(v.(uint))
		case "range":
			cfg.RangeCM = v.(int)
		case "mode":
			cfg.Mode = v.(string)
		case "interval":
			cfg.IntervalMs = v.(int)
		case "settle":
			cfg.SettleMs = v.(int)
		case "n":
			cfg.Samples = v.(int)
		case "gauge":
			cfg.Gauge = v.(bool)
		case "plot":
			cfg.Plot = v.(string)
		}
	})
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("urm09", flag.ContinueOnError)
	fs.String("config", "", "YAML configuration file")
	fs.String("bus", "", "I²C bus to use")
	fs.Uint("addr", uint(urm09.DefaultAddress), "I²C address of the sensor")
	fs.Int("range", 500, "maximum range in cm: 150, 300 or 500")
	fs.String("mode", "auto", "measurement mode: auto or passive")
	fs.Int("interval", 100, "delay between readings in ms")
	fs.Int("settle", 100, "delay between trigger and reading in passive mode, in ms")
	fs.Int("n", 0, "number of readings, 0 to run until interrupted")
	fs.Bool("gauge", false, "draw the distance as a bar instead of printing it")
	fs.String("plot", "", "write the distance history to this PNG file on exit")
	fs.Bool("get-address", false, "print the address register and exit")
	fs.Uint("set-address", 0, "write a new address (1..127) to the sensor and exit")
	fs.Bool("v", false, "verbose mode")
	return fs
}

func mainImpl(args []string) error {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	lookup := func(name string) interface{} {
		return fs.Lookup(name).Value.(flag.Getter).Get()
	}
	if !lookup("v").(bool) {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	cfg := DefaultConfig()
	if p := lookup("config").(string); p != "" {
		var err error
		if cfg, err = LoadConfig(p); err != nil {
			return err
		}
	}
	applyFlags(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Printf("config %+v", cfg)

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return err
	}
	defer b.Close()

	// Bus faults are reported even without -v.
	d, err := urm09.NewI2C(b, cfg.Address, &urm09.Opts{Logger: log.New(os.Stderr, "", log.LstdFlags)})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if lookup("get-address").(bool) {
		showAddress(os.Stdout, d)
		return nil
	}
	if a := lookup("set-address").(uint); a != 0 {
		if a > 127 {
			return fmt.Errorf("set-address %#x: %w", a, urm09.ErrInvalidAddress)
		}
		return changeAddress(ctx, os.Stdout, d, uint8(a))
	}

	r, _ := cfg.Range()
	m, _ := cfg.ModeValue()
	if err := d.Configure(r, m); err != nil {
		return err
	}
	if pid, err := d.ProductID(); err == nil {
		v, _ := d.Version()
		log.Printf("%s product %#x version %#x, %s, %s", d, pid, v, r, m)
	}

	p := &poller{d: d, mode: m, cfg: cfg, out: os.Stdout}
	if cfg.Gauge {
		p.gauge = gauge.New(&gauge.Opts{Max: r.MaxDistance()})
		defer p.gauge.Halt()
	}
	if err := p.run(ctx); err != nil {
		return err
	}
	if cfg.Plot != "" {
		if err := plot.Save(cfg.Plot, p.history, r.MaxDistance(), 640, 240); err != nil {
			return err
		}
		log.Printf("wrote %d samples to %s", len(p.history), cfg.Plot)
	}
	return nil
}

func main() {
	if err := mainImpl(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "urm09: %s.\n", err)
		os.Exit(1)
	}
}
