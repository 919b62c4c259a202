// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinygobus exposes a TinyGo I²C bus as a periph i2c.Bus.
//
// On a microcontroller the bus is a machine.I2C configured by the
// application. Wrapping it lets the periph style drivers of this repository,
// urm09 included, run unchanged under TinyGo:
//
//	i2c := machine.I2C0
//	i2c.Configure(machine.I2CConfig{SDA: machine.GP16, SCL: machine.GP17})
//	d, err := urm09.NewI2C(tinygobus.New(i2c, "I2C0"), urm09.DefaultAddress, nil)
package tinygobus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// ErrSetSpeed is returned by SetSpeed. The clock of a TinyGo bus is part of
// its machine.I2CConfig and is set before the bus is wrapped.
var ErrSetSpeed = errors.New("tinygobus: bus speed is set by machine.I2CConfig")

// Bus adapts a drivers.I2C.
type Bus struct {
	d    drivers.I2C
	name string
}

// New wraps d. name is only used by String.
func New(d drivers.I2C, name string) *Bus {
	return &Bus{d: d, name: name}
}

func (b *Bus) String() string {
	if b.name == "" {
		return "tinygo-i2c"
	}
	return b.name
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if err := b.d.Tx(addr, w, r); err != nil {
		return fmt.Errorf("%s: tx %#x: %w", b, addr, err)
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return ErrSetSpeed
}

// Close implements i2c.BusCloser. The underlying bus stays configured.
func (b *Bus) Close() error {
	return nil
}

var _ i2c.BusCloser = &Bus{}
