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

import "time"

// DefaultAddress is the 7-bit bus address of the RNG90.
const DefaultAddress = 0x40

// Word-address bytes sent as the first byte of a transaction. Execute
// starts command processing; the others are single-byte control
// transactions with no response.
const (
	wordReset   = 0x00
	wordSleep   = 0x01
	wordIdle    = 0x02
	wordExecute = 0x03
)

// RNG90 operation codes
const (
	opRead     = 0x02
	opRandom   = 0x16
	opInfo     = 0x30
	opSelfTest = 0x77
)

// Fixed command parameters
const (
	infoParam1     byte   = 0x00
	infoParam2     uint16 = 0x0000
	randomParam1   byte   = 0x00
	randomParam2   uint16 = 0x0000
	readParam1     byte   = 0x01
	readParam2     uint16 = 0x0000
	selfTestParam2 uint16 = 0x0000
)

// Random command payload: the host streams a fixed number of filler
// bytes after the packet header.
const (
	randomDataSize = 20
	randomFiller   = 0x00
)

// Output sizes of the data-bearing operations.
const (
	// RandomSize is the number of random bytes one Random call yields.
	RandomSize = 32
	// SerialSize is the number of serial-number bytes Serial yields.
	SerialSize = 8
)

// Device processing delays between command and response, measured
// device timing rather than anything the protocol negotiates.
const (
	selfTestDelay = 32 * time.Millisecond
	infoDelay     = 1 * time.Millisecond
	randomDelay   = 75 * time.Millisecond
	readDelay     = 1 * time.Millisecond
)

// WatchdogInterval is the device watchdog window: the RNG90 resets
// itself after this long awake. Callers holding the device out of sleep
// longer than this must expect an after-wake status.
const WatchdogInterval = 1300 * time.Millisecond
