// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package urm09

import (
	"errors"
	"fmt"
)

var (
	// ErrBus is matched by every *BusError with errors.Is.
	ErrBus = errors.New("urm09: bus transaction failed")
	// ErrInvalidAddress is returned for addresses outside 1..127.
	ErrInvalidAddress = errors.New("urm09: address must be in range 1..127")
	// ErrInvalidRange is returned by Configure for an unknown Range.
	ErrInvalidRange = errors.New("urm09: invalid measurement range")
	// ErrInvalidMode is returned by Configure for an unknown Mode.
	ErrInvalidMode = errors.New("urm09: invalid measurement mode")
)

// BusError reports a failed register transaction. The sensor protocol does
// not tell a NACK from a timeout or a disconnect, neither does BusError; Err
// holds whatever the bus returned.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("urm09: %s reg %#x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrBus) true for any *BusError.
func (e *BusError) Is(target error) bool {
	return target == ErrBus
}
