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

package frame

// Polynomial is the 16-bit CRC polynomial of the RNG90 frame checksum.
const Polynomial = 0x8005

// Checksum is a rolling CRC16 over frame bytes. The zero value is ready
// to use; Reset rewinds it for the next frame. Data bits enter the
// register least significant first, matching the device.
type Checksum struct {
	crc uint16
}

// Reset rewinds the checksum to its initial state.
func (c *Checksum) Reset() {
	c.crc = 0
}

// Update folds one byte into the running checksum.
func (c *Checksum) Update(b byte) {
	for mask := byte(0x01); mask != 0; mask <<= 1 {
		var dataBit uint16
		if b&mask != 0 {
			dataBit = 1
		}
		crcBit := c.crc >> 15
		c.crc <<= 1
		if dataBit != crcBit {
			c.crc ^= Polynomial
		}
	}
}

// Sum16 returns the current checksum value. It is transmitted on the
// wire low byte first.
func (c *Checksum) Sum16() uint16 {
	return c.crc
}

// Sum computes the checksum of data in one shot.
func Sum(data []byte) uint16 {
	var c Checksum
	for _, b := range data {
		c.Update(b)
	}
	return c.Sum16()
}
