// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/GermanBionicSystems/devices/gauge"
	"github.com/GermanBionicSystems/devices/urm09"
	"periph.io/x/conn/v3/physic"
)

// maxHistory bounds the samples kept for the plot.
const maxHistory = 1000

// poller reads the sensor until ctx is done or cfg.Samples readings were
// taken. It owns the timing the driver leaves to its caller.
type poller struct {
	d     *urm09.Dev
	mode  urm09.Mode
	cfg   Config
	out   io.Writer
	gauge *gauge.Dev

	history []physic.Distance
}

func (p *poller) run(ctx context.Context) error {
	for i := 0; p.cfg.Samples == 0 || i < p.cfg.Samples; i++ {
		if p.mode == urm09.ModePassive {
			p.d.StartMeasurement()
			if !sleep(ctx, p.cfg.Settle()) {
				return nil
			}
		}
		cm := p.d.Distance()
		temp := p.d.Temperature()
		p.record(physic.Distance(cm) * 10 * physic.MilliMetre)

		if p.gauge != nil {
			if err := p.gauge.Show(p.history[len(p.history)-1]); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(p.out, "Distance is %d cm\nTemperature is %.2f °C\n", cm, temp); err != nil {
				return err
			}
		}
		if !sleep(ctx, p.cfg.Interval()) {
			return nil
		}
	}
	return nil
}

func (p *poller) record(v physic.Distance) {
	if len(p.history) == maxHistory {
		copy(p.history, p.history[1:])
		p.history = p.history[:maxHistory-1]
	}
	p.history = append(p.history, v)
}

// sleep waits for d and returns false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// showAddress prints the address register.
func showAddress(w io.Writer, d *urm09.Dev) {
	fmt.Fprintf(w, "The device address for i2c is at %#x\n", d.DeviceAddress())
}

// changeAddress writes addr to the sensor and prints the result. The new
// address is only used by the sensor after a power cycle.
func changeAddress(ctx context.Context, w io.Writer, d *urm09.Dev, addr uint8) error {
	fmt.Fprintf(w, "The old device address for i2c is at %#x\n", d.DeviceAddress())
	if err := d.WriteDeviceAddress(addr); err != nil {
		return err
	}
	sleep(ctx, 100*time.Millisecond)
	fmt.Fprintf(w, "The new device address for i2c is at %#x\n", d.DeviceAddress())
	fmt.Fprintln(w, "The new address needs to be powered off and reconnected to take effect")
	return nil
}
