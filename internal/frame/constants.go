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

// Package frame provides frame-level protocol constants and the CRC
// engine shared by the codec and the transports.
package frame

// CRCSize is the width of the trailing frame checksum in bytes.
const CRCSize = 2

// HeaderOverhead is added to a command's declared payload count before
// transmission. It covers the count byte, opcode, param1, the 16-bit
// param2 and the 16-bit CRC.
const HeaderOverhead = 7

// Response frame sizes as declared in the first received byte. Every
// response is self-describing, so one decode path serves all shapes.
const (
	// StatusFrameSize is a status-only response: length, status, CRC.
	StatusFrameSize = 4
	// InfoFrameSize carries the four identification bytes.
	InfoFrameSize = 7
	// SerialFrameSize carries the serial-number block.
	SerialFrameSize = 19
	// RandomFrameSize carries one block of generated random bytes.
	RandomFrameSize = 35
)

// MaxFrameSize is the capacity of the shared response buffer, sized
// past the largest response the device can produce.
const MaxFrameSize = 87
