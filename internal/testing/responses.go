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

// Package testing provides canned RNG90 wire responses for tests.
package testing

import "github.com/0x007E/drivers-crypto-rng90/internal/frame"

// BuildFrame wraps payload bytes in a wire response frame: the length
// byte, the payload and the CRC16 over both, little endian.
func BuildFrame(payload []byte) []byte {
	length := byte(1 + len(payload) + frame.CRCSize)
	frm := append([]byte{length}, payload...)
	crc := frame.Sum(frm)
	return append(frm, byte(crc), byte(crc>>8))
}

// BuildStatusFrame creates a 4-byte status-only response.
func BuildStatusFrame(status byte) []byte {
	return BuildFrame([]byte{status})
}

// BuildInfoFrame creates a 7-byte info response.
func BuildInfoFrame(rfu, deviceID, siliconID, revision byte) []byte {
	return BuildFrame([]byte{rfu, deviceID, siliconID, revision})
}

// BuildRandomFrame creates a 35-byte random response carrying the given
// 32 data bytes.
func BuildRandomFrame(data []byte) []byte {
	payload := make([]byte, 32)
	copy(payload, data)
	return BuildFrame(payload)
}

// BuildSerialFrame creates a 19-byte serial response whose first eight
// payload bytes are the serial number.
func BuildSerialFrame(serial []byte) []byte {
	payload := make([]byte, 16)
	copy(payload, serial)
	return BuildFrame(payload)
}

// CorruptCRC returns a copy of frm with its final CRC byte flipped.
func CorruptCRC(frm []byte) []byte {
	out := append([]byte(nil), frm...)
	out[len(out)-1] ^= 0xFF
	return out
}
