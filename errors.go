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
	"fmt"
)

// Transport and protocol errors
var (
	// ErrNoACK indicates the device did not acknowledge a transmitted byte.
	ErrNoACK = errors.New("byte not acknowledged")
	// ErrTransportWrite indicates a failure transmitting on the bus.
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTransportRead indicates a failure receiving from the bus.
	ErrTransportRead = errors.New("transport read failed")
	// ErrCommunication indicates a CRC mismatch or an unexpected frame
	// length. The two causes are deliberately not distinguished; the
	// device protocol does not expose which one occurred.
	ErrCommunication = errors.New("checksum or communication error")
)

// ErrorType classifies errors for callers that implement their own
// retry policy. The driver itself never retries.
type ErrorType int

const (
	// ErrorTypeTransient marks errors that may succeed on retry.
	ErrorTypeTransient ErrorType = iota
	// ErrorTypePermanent marks errors that will not succeed on retry.
	ErrorTypePermanent
	// ErrorTypeDevice marks statuses reported by the device itself.
	ErrorTypeDevice
)

// TransportError wraps a bus-level failure with the operation and bus
// it occurred on.
type TransportError struct {
	Err       error
	Op        string
	Bus       string
	Type      ErrorType
	Retryable bool
}

func (e *TransportError) Error() string {
	if e.Bus != "" {
		return fmt.Sprintf("transport %s on %s: %v", e.Op, e.Bus, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with retryability derived
// from the error type.
func NewTransportError(op, bus string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Op:        op,
		Bus:       bus,
		Err:       err,
		Type:      errType,
		Retryable: errType == ErrorTypeTransient,
	}
}

// StatusError carries a status byte reported by the device in a
// status-only response frame. The byte is passed through verbatim.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("device status: %s", e.Status)
}

// IsRetryable reports whether an operation that failed with err might
// succeed if repeated. Device-reported statuses are never retryable
// here; whether they clear is command dependent.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Retryable
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return false
	}

	switch {
	case errors.Is(err, ErrNoACK),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrCommunication):
		return true
	}
	return false
}

// GetErrorType returns the classification of err.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Type
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return ErrorTypeDevice
	}

	if IsRetryable(err) {
		return ErrorTypeTransient
	}
	return ErrorTypePermanent
}

// StatusOf collapses an operation error into the coarse Status
// taxonomy: nil maps to StatusSuccess, device-reported statuses pass
// through, bus failures map to StatusBusError and everything else to
// StatusCommError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return StatusBusError
	}
	if errors.Is(err, ErrNoACK) || errors.Is(err, ErrTransportWrite) || errors.Is(err, ErrTransportRead) {
		return StatusBusError
	}
	return StatusCommError
}
