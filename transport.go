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

// Direction selects the transfer direction of an addressed bus transaction.
type Direction byte

const (
	// Write addresses the device for a host-to-device transfer.
	Write Direction = iota
	// Read addresses the device for a device-to-host transfer.
	Read
)

// Transport defines the byte-level two-wire bus primitives the driver
// consumes. A transaction runs from Start to Stop; Address selects the
// device for the given direction inside an open transaction.
//
// WriteByte returns a nil error only when the device acknowledged the
// byte. ReadByte reads one byte, acknowledging it when ack is true; the
// final byte of a read transaction is read with ack set to false.
type Transport interface {
	// Start opens a bus transaction.
	Start() error

	// Stop closes the current bus transaction.
	Stop() error

	// Address selects the device on the bus for the given direction.
	Address(dir Direction) error

	// WriteByte transmits one byte and reports its acknowledgement.
	WriteByte(b byte) error

	// ReadByte receives one byte, acknowledging it unless ack is false.
	ReadByte(ack bool) (byte, error)

	// Close releases the transport.
	Close() error

	// Type returns the transport type.
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportI2C represents I2C/TWI bus transport.
	TransportI2C TransportType = "i2c"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)
