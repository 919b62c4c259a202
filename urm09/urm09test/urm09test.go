// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package urm09test is meant to be used to test code that talks to an URM09
// without the hardware.
//
// Sensor is an i2c.Bus backed by the nine register file of the device.
// Writes are stored, reads return what was stored, so a value written to the
// config register reads back unchanged.
package urm09test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// Register offsets, mirrored from the device.
const (
	RegAddress     = 0
	RegProductID   = 1
	RegVersion     = 2
	RegDistance    = 3
	RegTemperature = 5
	RegConfig      = 7
	RegCommand     = 8

	// NumRegs is the size of the register file.
	NumRegs = 9

	// ProductID is the value preset in RegProductID by New.
	ProductID = 0x01
	// Version is the value preset in RegVersion by New.
	Version = 0x10
)

// ErrNoDevice is returned for a transaction to an address nobody answers on.
var ErrNoDevice = errors.New("urm09test: no device at address")

// Sensor emulates one URM09 on an I²C bus.
type Sensor struct {
	sync.Mutex
	// Addr is the address the sensor answers on.
	Addr uint16
	// Regs is the register file.
	Regs [NumRegs]byte
	// Err, when set, is returned by every Tx.
	Err error
	// Triggers counts the measurement commands received.
	Triggers int
	// Ops records every transaction, successful or not.
	Ops []i2ctest.IO
}

// New returns a Sensor at addr with the identity registers preset.
func New(addr uint16) *Sensor {
	s := &Sensor{Addr: addr}
	s.Regs[RegAddress] = byte(addr)
	s.Regs[RegProductID] = ProductID
	s.Regs[RegVersion] = Version
	return s
}

// SetDistance stores cm in the distance registers the way the device does,
// negative values as two's complement.
func (s *Sensor) SetDistance(cm int) {
	s.Lock()
	defer s.Unlock()
	v := uint16(int16(cm))
	s.Regs[RegDistance] = byte(v >> 8)
	s.Regs[RegDistance+1] = byte(v)
}

// SetTemperature stores tenths of a degree Celsius in the temperature
// registers.
func (s *Sensor) SetTemperature(tenths uint16) {
	s.Lock()
	defer s.Unlock()
	s.Regs[RegTemperature] = byte(tenths >> 8)
	s.Regs[RegTemperature+1] = byte(tenths)
}

func (s *Sensor) String() string {
	return fmt.Sprintf("urm09test(%#x)", s.Addr)
}

// Tx implements i2c.Bus.
//
// w[0] selects the first register, the rest of w is written from there and r
// is then read from the same offset.
func (s *Sensor) Tx(addr uint16, w, r []byte) error {
	s.Lock()
	defer s.Unlock()
	io := i2ctest.IO{Addr: addr, W: append([]byte(nil), w...)}
	err := s.tx(addr, w, r)
	if err == nil {
		io.R = append([]byte(nil), r...)
	}
	s.Ops = append(s.Ops, io)
	return err
}

func (s *Sensor) tx(addr uint16, w, r []byte) error {
	if s.Err != nil {
		return s.Err
	}
	if addr != s.Addr {
		return ErrNoDevice
	}
	if len(w) == 0 {
		return errors.New("urm09test: missing register offset")
	}
	reg := int(w[0])
	if reg+len(w)-1 > NumRegs || reg+len(r) > NumRegs {
		return fmt.Errorf("urm09test: access past register %d", NumRegs-1)
	}
	for i, b := range w[1:] {
		if reg+i == RegCommand && b == 0x01 {
			s.Triggers++
		}
		s.Regs[reg+i] = b
	}
	copy(r, s.Regs[reg:])
	return nil
}

// SetSpeed implements i2c.Bus.
func (s *Sensor) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
func (s *Sensor) Close() error {
	return nil
}

var _ i2c.BusCloser = &Sensor{}
