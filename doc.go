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

/*
Package rng90 drives the RNG90 crypto/TRNG chip over a two-wire bus.

The RNG90 is an I2C-attached random-number and crypto-authentication
device. Every logical operation is one bus transaction: the host sends
a command packet sealed with a CRC16, waits out a fixed device
processing delay, then reads back a self-describing response frame
whose first byte declares its own length. A short status frame can
substitute for any expected data response, which lets one decode path
serve every operation.

Basic Usage:

	import (
	    rng90 "github.com/0x007E/drivers-crypto-rng90"
	    "github.com/0x007E/drivers-crypto-rng90/transport/i2c"
	)

	transport, err := i2c.New("/dev/i2c-1")
	if err != nil {
	    log.Fatal(err)
	}

	device, err := rng90.New(transport)
	if err != nil {
	    log.Fatal(err)
	}
	defer device.Close()

	if err := device.Init(); err != nil {
	    log.Fatal(err)
	}

	random, err := device.Random()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("%x\n", random)

Operations:

  - Init: runs the DRBG self-test and verifies it passed
  - SelfTest: runs the DRBG and/or SHA-256 self-tests
  - Info: reads the RFU/DeviceID/SiliconID/Revision block
  - Random: fetches 32 random bytes
  - Serial: reads the 8-byte device serial number
  - Reset, Sleep, Idle: single-byte control transactions

Error Handling:

Transport failures surface as *TransportError, device-reported status
bytes as *StatusError and protocol failures (CRC mismatch or unexpected
frame length, deliberately not distinguished) as ErrCommunication:

	if errors.Is(err, rng90.ErrCommunication) {
	    // corrupt or unexpected response
	}

The driver performs no retries; IsRetryable and GetErrorType help
callers build their own policy. StatusOf collapses any operation error
into the device status taxonomy.

Thread Safety:

Device operations are not thread-safe. One transaction buffer is reused
across operations, so a second operation must not start before the
previous result has been consumed.
*/
package rng90
