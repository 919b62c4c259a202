// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/GermanBionicSystems/devices/urm09"
	"gopkg.in/yaml.v3"
)

// Config is the content of the optional YAML configuration file.
type Config struct {
	Bus        string `yaml:"bus"`
	Address    uint16 `yaml:"address"`
	RangeCM    int    `yaml:"range_cm"`
	Mode       string `yaml:"mode"`
	IntervalMs int    `yaml:"interval_ms"`
	SettleMs   int    `yaml:"settle_ms"`
	// Samples is the number of readings to take, 0 means until interrupted.
	Samples int    `yaml:"samples"`
	Gauge   bool   `yaml:"gauge"`
	Plot    string `yaml:"plot"`
}

// DefaultConfig matches the sensor's factory settings and the timing used by
// the vendor examples.
func DefaultConfig() Config {
	return Config{
		Address:    urm09.DefaultAddress,
		RangeCM:    500,
		Mode:       "auto",
		IntervalMs: 100,
		SettleMs:   100,
	}
}

// LoadConfig reads path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that the driver would otherwise send to the
// sensor unchecked.
func (c *Config) Validate() error {
	if c.Address < 1 || c.Address > 127 {
		return fmt.Errorf("address %#x: must be in range 0x01..0x7f", c.Address)
	}
	if _, err := c.Range(); err != nil {
		return err
	}
	if _, err := c.ModeValue(); err != nil {
		return err
	}
	if c.IntervalMs < 0 || c.SettleMs < 0 {
		return errors.New("interval_ms and settle_ms must not be negative")
	}
	if c.Samples < 0 {
		return errors.New("samples must not be negative")
	}
	return nil
}

// Range maps range_cm to the sensor setting.
func (c *Config) Range() (urm09.Range, error) {
	switch c.RangeCM {
	case 150:
		return urm09.Range150, nil
	case 300:
		return urm09.Range300, nil
	case 500:
		return urm09.Range500, nil
	}
	return 0, fmt.Errorf("range_cm %d: must be 150, 300 or 500", c.RangeCM)
}

// ModeValue maps mode to the sensor setting.
func (c *Config) ModeValue() (urm09.Mode, error) {
	switch strings.ToLower(c.Mode) {
	case "auto", "automatic":
		return urm09.ModeAutomatic, nil
	case "passive":
		return urm09.ModePassive, nil
	}
	return 0, fmt.Errorf("mode %q: must be auto or passive", c.Mode)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

func (c *Config) Settle() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}
