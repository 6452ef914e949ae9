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

import "fmt"

// Status is the coarse result of an operation. Values below 0xF0 are
// status bytes reported by the device itself; StatusBusError and
// StatusCommError are produced locally by the driver.
type Status byte

const (
	// StatusSuccess indicates successful command execution.
	StatusSuccess Status = 0x00
	// StatusParseError indicates the device could not parse the command.
	StatusParseError Status = 0x03
	// StatusSelfTestError indicates a self-test reported an error.
	StatusSelfTestError Status = 0x07
	// StatusHealthTestError indicates a health test reported an error.
	StatusHealthTestError Status = 0x08
	// StatusExecutionError indicates the command failed during execution.
	StatusExecutionError Status = 0x0F
	// StatusAfterWake indicates the device has just woken up.
	StatusAfterWake Status = 0x11
	// StatusBusError indicates a failure on the two-wire bus itself.
	StatusBusError Status = 0xF0
	// StatusCommError indicates a CRC mismatch or other unspecified
	// communication error. CRC and frame-length failures are not
	// distinguished.
	StatusCommError Status = 0xFF
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusParseError:
		return "parse error"
	case StatusSelfTestError:
		return "self-test error"
	case StatusHealthTestError:
		return "health test error"
	case StatusExecutionError:
		return "execution error"
	case StatusAfterWake:
		return "after wake"
	case StatusBusError:
		return "bus error"
	case StatusCommError:
		return "communication error"
	}
	return fmt.Sprintf("unknown status 0x%02X", byte(s))
}

// SelfTest selects which internal self-tests a SelfTest call runs. The
// DRBG and the SHA-256 core are independently testable.
type SelfTest byte

const (
	// SelfTestDRBG runs only the DRBG self-test.
	SelfTestDRBG SelfTest = 0x01
	// SelfTestSHA256 runs only the SHA-256 self-test.
	SelfTestSHA256 SelfTest = 0x20
	// SelfTestBoth runs the DRBG and SHA-256 self-tests combined.
	SelfTestBoth SelfTest = 0x21
)

func (t SelfTest) String() string {
	switch t {
	case SelfTestDRBG:
		return "drbg"
	case SelfTestSHA256:
		return "sha256"
	case SelfTestBoth:
		return "drbg+sha256"
	}
	return fmt.Sprintf("unknown self-test 0x%02X", byte(t))
}

// SelfTestStatus is the per-test result byte of a self-test run,
// reported by the device as a bit field over both test cores.
type SelfTestStatus byte

const (
	// SelfTestPassed means every requested self-test passed.
	SelfTestPassed SelfTestStatus = 0x00
	// SelfTestFailedDRBG means the DRBG self-test failed.
	SelfTestFailedDRBG SelfTestStatus = 0x01
	// SelfTestNotRunDRBG means the DRBG self-test was not executed.
	SelfTestNotRunDRBG SelfTestStatus = 0x02
	// SelfTestNotRunSHA256 means the SHA-256 self-test was not executed.
	SelfTestNotRunSHA256 SelfTestStatus = 0x10
	// SelfTestNotRunAny means neither self-test was executed.
	SelfTestNotRunAny SelfTestStatus = 0x12
	// SelfTestFailedSHA256 means the SHA-256 self-test failed.
	SelfTestFailedSHA256 SelfTestStatus = 0x20
	// SelfTestFailedBoth means both self-tests failed.
	SelfTestFailedBoth SelfTestStatus = 0x21
	// SelfTestInvalid is reported locally when no usable self-test
	// response was received.
	SelfTestInvalid SelfTestStatus = 0xFF
)

func (s SelfTestStatus) String() string {
	switch s {
	case SelfTestPassed:
		return "passed"
	case SelfTestFailedDRBG:
		return "drbg failed"
	case SelfTestNotRunDRBG:
		return "drbg not run"
	case SelfTestNotRunSHA256:
		return "sha256 not run"
	case SelfTestNotRunAny:
		return "not run"
	case SelfTestFailedSHA256:
		return "sha256 failed"
	case SelfTestFailedBoth:
		return "drbg and sha256 failed"
	case SelfTestInvalid:
		return "invalid"
	}
	return fmt.Sprintf("unknown self-test status 0x%02X", byte(s))
}
