// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package urm09 controls a DFRobot URM09 ultrasonic distance sensor over I²C.
//
// The sensor exposes nine one byte registers. Distance is reported in
// centimetres as a big-endian signed 16 bit value, temperature in tenths of a
// degree Celsius as a big-endian unsigned 16 bit value.
//
// # Modes
//
// In ModeAutomatic the sensor ranges continuously and the distance register
// always holds the latest result. In ModePassive a measurement is started by
// StartMeasurement (or Trigger) and the result is available once the sensor
// has settled, which takes up to 100ms at Range500. The driver never sleeps;
// the caller owns the delay.
//
// # Errors
//
// Distance, Temperature, DeviceAddress, SetModeRange, StartMeasurement and
// ChangeDeviceAddress never return an error. Bus faults are logged and
// replaced by a fixed value: DistanceUnavailable, TemperatureFallback and 0
// respectively, while writes become no-ops. A reading of exactly -1cm or
// 25.0°C is therefore ambiguous. Callers that need to tell a fault from a
// reading use the Read*, Configure, Trigger and WriteDeviceAddress methods,
// which return a *BusError.
//
// # Address change
//
// ChangeDeviceAddress only takes effect after the sensor is power cycled. The
// Dev keeps talking to the address it was created with; create a new Dev with
// NewI2C once the sensor has been restarted.
//
// # Datasheet
//
// https://wiki.dfrobot.com/URM09_Ultrasonic_Sensor_Gravity_Trig_SKU_SEN0304
package urm09
