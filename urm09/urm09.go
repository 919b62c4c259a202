// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package urm09

import (
	"encoding/binary"
	"fmt"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Range selects the maximum measuring distance.
type Range byte

// Mode selects passive (triggered) or automatic (continuous) ranging.
type Mode byte

const (
	// Range150 limits ranging to 150cm.
	Range150 Range = 0x00
	// Range300 limits ranging to 300cm.
	Range300 Range = 0x10
	// Range500 limits ranging to 500cm.
	Range500 Range = 0x20

	// ModePassive ranges once per StartMeasurement.
	ModePassive Mode = 0x00
	// ModeAutomatic ranges continuously.
	ModeAutomatic Mode = 0x80

	// DefaultAddress is the factory I²C address.
	DefaultAddress uint16 = 0x11

	// DistanceUnavailable is returned by Distance when the bus fails.
	DistanceUnavailable = -1
	// TemperatureFallback is returned by Temperature when the bus fails.
	TemperatureFallback = 25.0
)

// Register map.
const (
	regSlaveAddress    byte = 0
	regProductID       byte = 1
	regVersion         byte = 2
	regDistanceHigh    byte = 3
	regDistanceLow     byte = 4
	regTemperatureHigh byte = 5
	regTemperatureLow  byte = 6
	regConfig          byte = 7
	regCommand         byte = 8

	cmdDistanceMeasure byte = 0x01

	rangeMask byte = 0x30
	modeMask  byte = 0x80

	minAddress = 1
	maxAddress = 127
)

// MaxDistance returns the upper bound of the range.
func (r Range) MaxDistance() physic.Distance {
	switch r {
	case Range150:
		return centimetres(150)
	case Range300:
		return centimetres(300)
	case Range500:
		return centimetres(500)
	}
	return 0
}

func (r Range) String() string {
	switch r {
	case Range150:
		return "150cm"
	case Range300:
		return "300cm"
	case Range500:
		return "500cm"
	}
	return fmt.Sprintf("Range(%#x)", byte(r))
}

func (m Mode) String() string {
	switch m {
	case ModePassive:
		return "passive"
	case ModeAutomatic:
		return "automatic"
	}
	return fmt.Sprintf("Mode(%#x)", byte(m))
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Logger receives one line per failed bus transaction. Nil means
	// log.Default().
	Logger *log.Logger
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Measurement is one distance and temperature reading.
type Measurement struct {
	Distance    physic.Distance
	Temperature physic.Temperature
}

// Snapshot is the content of registers 0 to 7 read in a single transaction.
type Snapshot struct {
	Address   uint8
	ProductID uint8
	Version   uint8
	// Distance is the raw register value, see decodeDistance.
	Distance uint16
	// Temperature is in tenths of a degree Celsius.
	Temperature uint16
	Range       Range
	Mode        Mode
}

// Dev is a handle to an URM09 sensor.
//
// Dev holds no register state and does no locking. It is not safe for
// concurrent use; callers sharing a bus serialize access themselves.
type Dev struct {
	d   *i2c.Dev
	log *log.Logger
}

// NewI2C returns a Dev bound to addr on bus b. No transaction is issued. The
// Opts can be nil.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr < minAddress || addr > maxAddress {
		return nil, ErrInvalidAddress
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	l := opts.Logger
	if l == nil {
		l = log.Default()
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, log: l}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("urm09{%s}", d.d)
}

// Halt implements conn.Resource. The sensor has nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

// SetModeRange writes r|m to the config register. Neither value is checked
// and a failed write is logged and ignored. Use Configure to get an error.
func (d *Dev) SetModeRange(r Range, m Mode) {
	if err := d.writeReg(regConfig, []byte{byte(r) | byte(m)}); err != nil {
		d.log.Print(err)
	}
}

// StartMeasurement requests one ranging cycle in passive mode. It has no
// effect in automatic mode. A failed write is logged and ignored.
func (d *Dev) StartMeasurement() {
	if err := d.Trigger(); err != nil {
		d.log.Print(err)
	}
}

// Distance returns the last measured distance in centimetres, or
// DistanceUnavailable if the bus failed.
func (d *Dev) Distance() int {
	cm, err := d.ReadDistance()
	if err != nil {
		d.log.Print(err)
		return DistanceUnavailable
	}
	return cm
}

// Temperature returns the sensor temperature in degrees Celsius, or
// TemperatureFallback if the bus failed.
func (d *Dev) Temperature() float64 {
	c, err := d.ReadTemperature()
	if err != nil {
		d.log.Print(err)
		return TemperatureFallback
	}
	return c
}

// ChangeDeviceAddress writes a new bus address to the sensor. The address is
// not checked and a failed write is logged and ignored.
//
// The sensor only answers on the new address after a power cycle. d keeps
// using the address it was created with.
func (d *Dev) ChangeDeviceAddress(addr uint8) {
	if err := d.writeReg(regSlaveAddress, []byte{addr}); err != nil {
		d.log.Print(err)
	}
}

// DeviceAddress returns the content of the address register, or 0 if the bus
// failed.
func (d *Dev) DeviceAddress() uint8 {
	a, err := d.ReadDeviceAddress()
	if err != nil {
		d.log.Print(err)
		return 0
	}
	return a
}

// Configure validates r and m and writes them to the config register.
func (d *Dev) Configure(r Range, m Mode) error {
	if r != Range150 && r != Range300 && r != Range500 {
		return ErrInvalidRange
	}
	if m != ModePassive && m != ModeAutomatic {
		return ErrInvalidMode
	}
	return d.writeReg(regConfig, []byte{byte(r) | byte(m)})
}

// ReadConfig returns the range and mode currently set in the sensor.
func (d *Dev) ReadConfig() (Range, Mode, error) {
	b, err := d.readReg(regConfig, 1)
	if err != nil {
		return 0, 0, err
	}
	return Range(b[0] & rangeMask), Mode(b[0] & modeMask), nil
}

// Trigger writes the measurement command.
func (d *Dev) Trigger() error {
	return d.writeReg(regCommand, []byte{cmdDistanceMeasure})
}

// ReadDistance returns the distance register in centimetres.
func (d *Dev) ReadDistance() (int, error) {
	b, err := d.readReg(regDistanceHigh, 2)
	if err != nil {
		return 0, err
	}
	return decodeDistance(binary.BigEndian.Uint16(b)), nil
}

// ReadTemperature returns the temperature register in degrees Celsius.
func (d *Dev) ReadTemperature() (float64, error) {
	b, err := d.readReg(regTemperatureHigh, 2)
	if err != nil {
		return 0, err
	}
	return decodeTemperature(binary.BigEndian.Uint16(b)), nil
}

// ReadDeviceAddress returns the address register.
func (d *Dev) ReadDeviceAddress() (uint8, error) {
	b, err := d.readReg(regSlaveAddress, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteDeviceAddress writes addr to the address register after checking it
// is a valid 7 bit address. See ChangeDeviceAddress.
func (d *Dev) WriteDeviceAddress(addr uint8) error {
	if addr < minAddress || addr > maxAddress {
		return ErrInvalidAddress
	}
	return d.writeReg(regSlaveAddress, []byte{addr})
}

// ProductID returns the product identifier register.
func (d *Dev) ProductID() (uint8, error) {
	b, err := d.readReg(regProductID, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Version returns the firmware version register.
func (d *Dev) Version() (uint8, error) {
	b, err := d.readReg(regVersion, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadSnapshot reads every readable register in one transaction.
func (d *Dev) ReadSnapshot() (Snapshot, error) {
	b, err := d.readReg(regSlaveAddress, int(regConfig)+1)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Address:     b[regSlaveAddress],
		ProductID:   b[regProductID],
		Version:     b[regVersion],
		Distance:    binary.BigEndian.Uint16(b[regDistanceHigh : regDistanceLow+1]),
		Temperature: binary.BigEndian.Uint16(b[regTemperatureHigh : regTemperatureLow+1]),
		Range:       Range(b[regConfig] & rangeMask),
		Mode:        Mode(b[regConfig] & modeMask),
	}, nil
}

// Sense reads distance and temperature in one transaction. m is left
// untouched on error.
func (d *Dev) Sense(m *Measurement) error {
	b, err := d.readReg(regDistanceHigh, 4)
	if err != nil {
		return err
	}
	m.Distance = centimetres(decodeDistance(binary.BigEndian.Uint16(b[0:2])))
	m.Temperature = tenthsCelsius(binary.BigEndian.Uint16(b[2:4]))
	return nil
}

// Precision returns the resolution of the sensor: 1cm and 0.1°C.
func (d *Dev) Precision(m *Measurement) {
	m.Distance = 10 * physic.MilliMetre
	m.Temperature = 100 * physic.MilliKelvin
}

// DistanceCM returns the decoded distance of the snapshot in centimetres.
func (s *Snapshot) DistanceCM() int {
	return decodeDistance(s.Distance)
}

// Celsius returns the decoded temperature of the snapshot.
func (s *Snapshot) Celsius() float64 {
	return decodeTemperature(s.Temperature)
}

// writeReg sends reg followed by data.
func (d *Dev) writeReg(reg byte, data []byte) error {
	w := make([]byte, 0, len(data)+1)
	w = append(w, reg)
	w = append(w, data...)
	if err := d.d.Tx(w, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// readReg sends reg then reads n consecutive registers.
func (d *Dev) readReg(reg byte, n int) ([]byte, error) {
	r := make([]byte, n)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return nil, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return r, nil
}

// decodeDistance reinterprets the register as two's complement: values from
// 0x8000 up are negative.
func decodeDistance(v uint16) int {
	return int(int16(v))
}

func decodeTemperature(v uint16) float64 {
	return float64(v) / 10.0
}

func centimetres(cm int) physic.Distance {
	return physic.Distance(cm) * 10 * physic.MilliMetre
}

func tenthsCelsius(v uint16) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(v)*100*physic.MilliKelvin
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
