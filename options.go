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

package rng90

import (
	"errors"
	"time"
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithConfig replaces the device processing delays.
func WithConfig(config *Config) Option {
	return func(d *Device) error {
		if config == nil {
			return errors.New("rng90: nil config")
		}
		d.config = config
		return nil
	}
}

// WithWait replaces the blocking wait primitive used between command
// and response. The default is time.Sleep; tests inject a recorder.
func WithWait(wait func(time.Duration)) Option {
	return func(d *Device) error {
		if wait == nil {
			return errors.New("rng90: nil wait func")
		}
		d.wait = wait
		return nil
	}
}
