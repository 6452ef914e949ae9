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

package i2c

import (
	"errors"
	"testing"

	rng90 "github.com/0x007E/drivers-crypto-rng90"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

// fakeBus implements i2c.Bus for tests.
type fakeBus struct {
	txErr    error
	readData []byte
	writes   [][]byte
	lastAddr uint16
}

func (*fakeBus) String() string { return "fake" }

func (*fakeBus) SetSpeed(_ physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.lastAddr = addr
	if f.txErr != nil {
		return f.txErr
	}
	if len(w) > 0 {
		f.writes = append(f.writes, append([]byte(nil), w...))
	}
	if len(r) > 0 {
		copy(r, f.readData)
	}
	return nil
}

func TestNewFromBus(t *testing.T) {
	t.Parallel()

	t.Run("Default_Address", func(t *testing.T) {
		t.Parallel()
		transport, err := NewFromBus(&fakeBus{})
		require.NoError(t, err)
		assert.Equal(t, uint16(rng90.DefaultAddress), transport.addr)
		assert.Equal(t, rng90.TransportI2C, transport.Type())
	})

	t.Run("Nil_Bus", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromBus(nil)
		require.Error(t, err)
	})

	t.Run("Invalid_Address", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromBus(&fakeBus{}, WithAddress(0x80))
		require.Error(t, err)
	})

	t.Run("Custom_Address", func(t *testing.T) {
		t.Parallel()
		transport, err := NewFromBus(&fakeBus{}, WithAddress(0x41))
		require.NoError(t, err)
		assert.Equal(t, uint16(0x41), transport.addr)
	})
}

func TestTransport_WriteTransaction(t *testing.T) {
	t.Parallel()

	bus := &fakeBus{}
	transport, err := NewFromBus(bus)
	require.NoError(t, err)

	require.NoError(t, transport.Start())
	require.NoError(t, transport.Address(rng90.Write))
	require.NoError(t, transport.WriteByte(0x03))
	require.NoError(t, transport.WriteByte(0x07))
	require.NoError(t, transport.WriteByte(0x30))

	// Nothing hits the bus until the transaction closes.
	assert.Empty(t, bus.writes)

	require.NoError(t, transport.Stop())
	require.Len(t, bus.writes, 1)
	assert.Equal(t, []byte{0x03, 0x07, 0x30}, bus.writes[0])
	assert.Equal(t, uint16(rng90.DefaultAddress), bus.lastAddr)
}

func TestTransport_ReadTransaction(t *testing.T) {
	t.Parallel()

	bus := &fakeBus{readData: []byte{0x04, 0x00, 0x03, 0x40}}
	transport, err := NewFromBus(bus)
	require.NoError(t, err)

	require.NoError(t, transport.Start())
	require.NoError(t, transport.Address(rng90.Read))

	for i, want := range []byte{0x04, 0x00, 0x03} {
		got, readErr := transport.ReadByte(true)
		require.NoError(t, readErr)
		assert.Equal(t, want, got, "byte %d", i)
	}
	got, err := transport.ReadByte(false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x40), got)

	require.NoError(t, transport.Stop())
}

func TestTransport_WriteNACKSurfacesOnStop(t *testing.T) {
	t.Parallel()

	bus := &fakeBus{txErr: errors.New("device did not respond")}
	transport, err := NewFromBus(bus)
	require.NoError(t, err)

	require.NoError(t, transport.Start())
	require.NoError(t, transport.Address(rng90.Write))
	require.NoError(t, transport.WriteByte(0x03))

	err = transport.Stop()
	require.Error(t, err)
	assert.ErrorIs(t, err, rng90.ErrNoACK)
}

func TestTransport_ReadFailure(t *testing.T) {
	t.Parallel()

	bus := &fakeBus{txErr: errors.New("bus fault")}
	transport, err := NewFromBus(bus)
	require.NoError(t, err)

	require.NoError(t, transport.Start())
	err = transport.Address(rng90.Read)
	require.Error(t, err)
	assert.ErrorIs(t, err, rng90.ErrTransportRead)
}

func TestTransport_PrimitivesOutsideTransaction(t *testing.T) {
	t.Parallel()

	transport, err := NewFromBus(&fakeBus{})
	require.NoError(t, err)

	// Writes and reads without an open transaction must fail.
	require.Error(t, transport.WriteByte(0x00))
	_, err = transport.ReadByte(true)
	require.Error(t, err)
}
