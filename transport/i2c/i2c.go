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

// Package i2c provides the I2C transport implementation for the RNG90
package i2c

import (
	"errors"
	"fmt"
	"io"
	"time"

	rng90 "github.com/0x007E/drivers-crypto-rng90"
	"github.com/0x007E/drivers-crypto-rng90/internal/frame"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// Max clock frequency (400 kHz).
	maxClockFreq = 400 * physic.KiloHertz

	// busGuardTime is the minimum gap the device needs between two bus
	// transactions.
	busGuardTime = 2 * time.Microsecond
)

// Transport implements rng90.Transport over a periph.io I2C bus.
//
// The byte-level primitives are emulated on top of periph's
// transaction-oriented API: bytes written between Start and Stop are
// buffered and flushed as a single bus write on Stop, and addressing
// for read fetches a full maximum-size frame up front, serving ReadByte
// from that buffer. Write acknowledgement failures therefore surface on
// Stop rather than per byte.
type Transport struct {
	bus      i2c.Bus
	busName  string
	addr     uint16
	wbuf     []byte
	rbuf     []byte
	rpos     int
	started  bool
	reading  bool
	lastStop time.Time
}

// Option is a functional option for configuring the transport
type Option func(*Transport) error

// WithAddress overrides the default device bus address.
func WithAddress(addr uint16) Option {
	return func(t *Transport) error {
		if addr == 0 || addr > 0x7F {
			return fmt.Errorf("i2c: invalid 7-bit address 0x%02X", addr)
		}
		t.addr = addr
		return nil
	}
}

// New creates a new I2C transport on the named bus.
func New(busName string, opts ...Option) (*Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", busName, err)
	}

	// Ignore error, continue with the default speed.
	_ = bus.SetSpeed(maxClockFreq)

	return NewFromBus(bus, append([]Option{func(t *Transport) error {
		t.busName = busName
		return nil
	}}, opts...)...)
}

// NewFromBus creates a transport on an already opened bus.
func NewFromBus(bus i2c.Bus, opts ...Option) (*Transport, error) {
	if bus == nil {
		return nil, errors.New("i2c: nil bus")
	}

	transport := &Transport{
		bus:     bus,
		busName: bus.String(),
		addr:    rng90.DefaultAddress,
	}
	for _, opt := range opts {
		if err := opt(transport); err != nil {
			return nil, err
		}
	}
	return transport, nil
}

// Start opens a bus transaction, honoring the device's minimum gap
// since the previous one.
func (t *Transport) Start() error {
	if t.bus == nil {
		return rng90.ErrTransportWrite
	}
	if !t.lastStop.IsZero() {
		if gap := time.Since(t.lastStop); gap < busGuardTime {
			time.Sleep(busGuardTime - gap)
		}
	}
	t.started = true
	t.reading = false
	t.wbuf = t.wbuf[:0]
	t.rbuf = nil
	t.rpos = 0
	return nil
}

// Address selects the transfer direction. Addressing for read performs
// the bus read immediately, fetching the largest possible frame.
func (t *Transport) Address(dir rng90.Direction) error {
	if !t.started {
		return rng90.ErrTransportWrite
	}
	if dir != rng90.Read {
		return nil
	}

	t.reading = true
	buf := make([]byte, frame.MaxFrameSize)
	if err := t.bus.Tx(t.addr, nil, buf); err != nil {
		return fmt.Errorf("%w: %w", rng90.ErrTransportRead, err)
	}
	t.rbuf = buf
	return nil
}

// WriteByte buffers one byte of the open write transaction.
func (t *Transport) WriteByte(b byte) error {
	if !t.started || t.reading {
		return rng90.ErrTransportWrite
	}
	t.wbuf = append(t.wbuf, b)
	return nil
}

// ReadByte serves the next byte of the fetched frame. The ack directive
// is satisfied by the up-front fetch.
func (t *Transport) ReadByte(_ bool) (byte, error) {
	if !t.reading || t.rpos >= len(t.rbuf) {
		return 0, rng90.ErrTransportRead
	}
	b := t.rbuf[t.rpos]
	t.rpos++
	return b, nil
}

// Stop flushes any buffered write as one bus transaction and closes it.
// A device that stopped acknowledging surfaces here as ErrNoACK.
func (t *Transport) Stop() error {
	defer func() {
		t.started = false
		t.reading = false
		t.lastStop = time.Now()
	}()

	if t.started && !t.reading && len(t.wbuf) > 0 {
		if err := t.bus.Tx(t.addr, t.wbuf, nil); err != nil {
			return fmt.Errorf("%w: %w", rng90.ErrNoACK, err)
		}
	}
	return nil
}

// Close releases the bus.
func (t *Transport) Close() error {
	if closer, ok := t.bus.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close I2C bus: %w", err)
		}
	}
	t.bus = nil
	return nil
}

// Type returns the transport type
func (*Transport) Type() rng90.TransportType {
	return rng90.TransportI2C
}
