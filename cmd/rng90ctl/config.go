// drivers-crypto-rng90
// Copyright (c) 2026 The drivers-crypto-rng90 Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of drivers-crypto-rng90.
//
// drivers-crypto-rng90 is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published
// by the Free Software Foundation; either version 3 of the License, or
// (at your option) any later version.
//
// drivers-crypto-rng90 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with drivers-crypto-rng90; if not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration file. Flags override
// anything set here.
type fileConfig struct {
	// Bus is the I2C bus to open, e.g. /dev/i2c-1. Empty means
	// auto-detection.
	Bus string `yaml:"bus"`
	// Address is the 7-bit device address; 0 selects the default.
	Address uint16 `yaml:"address"`
	// Debug enables driver debug output.
	Debug bool `yaml:"debug"`
}

// loadConfig reads and parses the YAML file at path.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Address > 0x7F {
		return nil, fmt.Errorf("config %s: address 0x%X is not a 7-bit address", path, cfg.Address)
	}
	return &cfg, nil
}

// merge applies the file configuration underneath the flag values:
// a flag left at its zero value takes the file's setting.
func (c *fileConfig) merge(bus string, address uint16, debug bool) (string, uint16, bool) {
	if bus == "" {
		bus = c.Bus
	}
	if address == 0 {
		address = c.Address
	}
	return bus, address, debug || c.Debug
}
