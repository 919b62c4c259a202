// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the URM09 ultrasonic sensor driver and
// its support packages.
//
// The driver lives in urm09. tinygobus lets it run on a microcontroller,
// gauge and plot present its readings and cmd/urm09 ties them together.
package devices
