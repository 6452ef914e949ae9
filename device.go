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
	"time"

	"github.com/0x007E/drivers-crypto-rng90/internal/frame"
)

// Config contains the per-operation device processing delays. The
// device gives no ready indication; the host simply waits out the
// measured processing time before reading the response.
type Config struct {
	SelfTestDelay time.Duration
	InfoDelay     time.Duration
	RandomDelay   time.Duration
	ReadDelay     time.Duration
}

// DefaultConfig returns the measured RNG90 processing delays.
func DefaultConfig() *Config {
	return &Config{
		SelfTestDelay: selfTestDelay,
		InfoDelay:     infoDelay,
		RandomDelay:   randomDelay,
		ReadDelay:     readDelay,
	}
}

// Info holds the identification block returned by the info operation.
type Info struct {
	RFU       byte
	DeviceID  byte
	SiliconID byte
	Revision  byte
}

// Device drives a single RNG90 crypto/TRNG chip over a byte-level bus
// transport.
//
// Thread Safety: Device is NOT thread-safe. It owns one transaction
// buffer that every operation reuses, so a second operation must not
// begin before the previous result has been consumed. For concurrent
// access, wrap the Device with a mutex or use separate Devices on
// separate buses.
type Device struct {
	transport Transport
	config    *Config
	wait      func(time.Duration)
	txn       transaction
}

// New creates a new RNG90 device on the given transport.
func New(transport Transport, opts ...Option) (*Device, error) {
	if transport == nil {
		return nil, errors.New("rng90: nil transport")
	}

	device := &Device{
		transport: transport,
		config:    DefaultConfig(),
		wait:      time.Sleep,
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}
	return device, nil
}

// Transport returns the transport the device was created with.
func (d *Device) Transport() Transport {
	return d.transport
}

// Close releases the underlying transport.
func (d *Device) Close() error {
	return d.transport.Close()
}

// Init checks the device is operational by running the DRBG self-test.
// A self-test result other than passed is reported as a self-test
// error status.
func (d *Device) Init() error {
	status, err := d.SelfTest(SelfTestDRBG)
	if err != nil {
		return err
	}
	if status != SelfTestPassed {
		return &StatusError{Status: StatusSelfTestError}
	}
	return nil
}

// SelfTest runs the selected internal self-tests and returns the raw
// per-test result byte. A response that is not a valid status frame
// yields SelfTestInvalid and ErrCommunication.
func (d *Device) SelfTest(run SelfTest) (SelfTestStatus, error) {
	p := packet{opcode: opSelfTest, param1: byte(run), param2: selfTestParam2}
	if err := d.command(&p); err != nil {
		return SelfTestInvalid, err
	}
	d.wait(d.config.SelfTestDelay)

	if _, err := d.readFrame(); err != nil {
		return SelfTestInvalid, err
	}
	resp := d.txn.classify(frame.StatusFrameSize)
	if resp.kind != responseShortStatus {
		return SelfTestInvalid, ErrCommunication
	}
	return SelfTestStatus(resp.status), nil
}

// Info reads the device identification block. A status-only response
// is passed through as a StatusError carrying the verbatim status byte.
func (d *Device) Info() (*Info, error) {
	p := packet{opcode: opInfo, param1: infoParam1, param2: infoParam2}
	if err := d.command(&p); err != nil {
		return nil, err
	}
	d.wait(d.config.InfoDelay)

	if _, err := d.readFrame(); err != nil {
		return nil, err
	}
	switch resp := d.txn.classify(frame.InfoFrameSize); resp.kind {
	case responseShortStatus:
		return nil, &StatusError{Status: Status(resp.status)}
	case responsePayload:
		return &Info{
			RFU:       resp.data[0],
			DeviceID:  resp.data[1],
			SiliconID: resp.data[2],
			Revision:  resp.data[3],
		}, nil
	default:
		return nil, ErrCommunication
	}
}

// Random requests one block of random data and returns RandomSize
// bytes. The command carries a streamed filler payload; a missing
// acknowledgement on any payload byte aborts the transaction
// immediately without reading a response.
func (d *Device) Random() ([]byte, error) {
	p := packet{
		count:  randomDataSize,
		opcode: opRandom,
		param1: randomParam1,
		param2: randomParam2,
	}
	if err := d.writeCommand(&p); err != nil {
		return nil, err
	}
	for i := 0; i < randomDataSize; i++ {
		if err := d.writeByte(randomFiller); err != nil {
			debugf("random payload byte %d rejected", i)
			return nil, err
		}
		d.txn.sum.Update(randomFiller)
	}
	if err := d.finishCommand(); err != nil {
		return nil, err
	}
	d.wait(d.config.RandomDelay)

	if _, err := d.readFrame(); err != nil {
		return nil, err
	}
	switch resp := d.txn.classify(frame.RandomFrameSize); resp.kind {
	case responseShortStatus:
		return nil, &StatusError{Status: Status(resp.status)}
	case responsePayload:
		out := make([]byte, RandomSize)
		copy(out, resp.data)
		return out, nil
	default:
		return nil, ErrCommunication
	}
}

// Serial reads the device serial number and returns SerialSize bytes.
func (d *Device) Serial() ([]byte, error) {
	p := packet{opcode: opRead, param1: readParam1, param2: readParam2}
	if err := d.command(&p); err != nil {
		return nil, err
	}
	d.wait(d.config.ReadDelay)

	if _, err := d.readFrame(); err != nil {
		return nil, err
	}
	switch resp := d.txn.classify(frame.SerialFrameSize); resp.kind {
	case responseShortStatus:
		return nil, &StatusError{Status: Status(resp.status)}
	case responsePayload:
		out := make([]byte, SerialSize)
		copy(out, resp.data[:SerialSize])
		return out, nil
	default:
		return nil, ErrCommunication
	}
}

// Reset restarts the device's command interpreter.
func (d *Device) Reset() error {
	return d.control(wordReset)
}

// Sleep puts the device into its low-power sleep state.
func (d *Device) Sleep() error {
	return d.control(wordSleep)
}

// Idle puts the device into its idle state, keeping volatile state
// alive across the watchdog window.
func (d *Device) Idle() error {
	return d.control(wordIdle)
}

// control issues a single word-address transaction with no response.
func (d *Device) control(word byte) error {
	if err := d.openWrite(); err != nil {
		return err
	}
	if err := d.writeByte(word); err != nil {
		return err
	}
	if err := d.transport.Stop(); err != nil {
		return NewTransportError("stop", d.busName(), err, ErrorTypeTransient)
	}
	return nil
}
