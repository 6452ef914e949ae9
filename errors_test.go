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
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "no ACK retryable",
			err:  ErrNoACK,
			want: true,
		},
		{
			name: "transport write retryable",
			err:  ErrTransportWrite,
			want: true,
		},
		{
			name: "transport read retryable",
			err:  ErrTransportRead,
			want: true,
		},
		{
			name: "communication error retryable",
			err:  ErrCommunication,
			want: true,
		},
		{
			name: "wrapped communication error retryable",
			err:  fmt.Errorf("info: %w", ErrCommunication),
			want: true,
		},
		{
			name: "device status not retryable",
			err:  &StatusError{Status: StatusExecutionError},
			want: false,
		},
		{
			name: "transport error carries its own flag",
			err: &TransportError{
				Err:       errors.New("bus stuck"),
				Op:        "write",
				Type:      ErrorTypePermanent,
				Retryable: false,
			},
			want: false,
		},
		{
			name: "constructed transient transport error",
			err:  NewTransportError("write", "i2c", ErrNoACK, ErrorTypeTransient),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("something else"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want ErrorType
	}{
		{
			name: "nil error",
			err:  nil,
			want: ErrorTypePermanent,
		},
		{
			name: "transport error type passes through",
			err:  NewTransportError("read", "i2c", ErrTransportRead, ErrorTypeTransient),
			want: ErrorTypeTransient,
		},
		{
			name: "device status",
			err:  &StatusError{Status: StatusParseError},
			want: ErrorTypeDevice,
		},
		{
			name: "communication error transient",
			err:  ErrCommunication,
			want: ErrorTypeTransient,
		},
		{
			name: "unknown error permanent",
			err:  errors.New("unknown"),
			want: ErrorTypePermanent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GetErrorType(tt.err); got != tt.want {
				t.Errorf("GetErrorType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want Status
	}{
		{
			name: "nil is success",
			err:  nil,
			want: StatusSuccess,
		},
		{
			name: "device status passes through verbatim",
			err:  &StatusError{Status: StatusAfterWake},
			want: StatusAfterWake,
		},
		{
			name: "transport error is a bus error",
			err:  NewTransportError("write", "i2c", ErrNoACK, ErrorTypeTransient),
			want: StatusBusError,
		},
		{
			name: "bare no-ACK is a bus error",
			err:  ErrNoACK,
			want: StatusBusError,
		},
		{
			name: "communication error",
			err:  ErrCommunication,
			want: StatusCommError,
		},
		{
			name: "anything else is a communication error",
			err:  errors.New("unexpected"),
			want: StatusCommError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportError_Error(t *testing.T) {
	t.Parallel()

	withBus := NewTransportError("write", "/dev/i2c-1", ErrNoACK, ErrorTypeTransient)
	if got := withBus.Error(); got != "transport write on /dev/i2c-1: byte not acknowledged" {
		t.Errorf("Error() = %q", got)
	}

	withoutBus := NewTransportError("read", "", ErrTransportRead, ErrorTypeTransient)
	if got := withoutBus.Error(); got != "transport read: transport read failed" {
		t.Errorf("Error() = %q", got)
	}

	if !errors.Is(withBus, ErrNoACK) {
		t.Error("TransportError must unwrap to its cause")
	}
}
