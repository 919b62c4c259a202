// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package urm09_test

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/devices/urm09"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := urm09.NewI2C(b, urm09.DefaultAddress, nil)
	if err != nil {
		log.Fatal(err)
	}

	// Range up to 5m, one measurement per trigger.
	d.SetModeRange(urm09.Range500, urm09.ModePassive)
	for i := 0; i < 10; i++ {
		d.StartMeasurement()
		time.Sleep(100 * time.Millisecond)
		fmt.Printf("Distance is %d cm\n", d.Distance())
		fmt.Printf("Temperature is %.2f °C\n", d.Temperature())
	}
}

func ExampleDev_ReadDistance() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := urm09.NewI2C(b, urm09.DefaultAddress, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Configure(urm09.Range300, urm09.ModeAutomatic); err != nil {
		log.Fatal(err)
	}
	cm, err := d.ReadDistance()
	if errors.Is(err, urm09.ErrBus) {
		log.Fatalf("sensor not responding: %v", err)
	}
	fmt.Printf("%d cm\n", cm)
}

func ExampleDev_ChangeDeviceAddress() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := urm09.NewI2C(b, urm09.DefaultAddress, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("The old device address is %#x\n", d.DeviceAddress())
	d.ChangeDeviceAddress(0x12)
	fmt.Printf("The address register now holds %#x\n", d.DeviceAddress())
	fmt.Println("Power cycle the sensor for the new address to take effect.")
}
