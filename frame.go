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
	"github.com/0x007E/drivers-crypto-rng90/internal/frame"
)

// packet is one outbound command: the declared payload count, the
// opcode and two parameters. The CRC is computed over the transmitted
// header (and any streamed payload) and appended on the wire; it is not
// part of the struct.
type packet struct {
	count  byte
	opcode byte
	param1 byte
	param2 uint16
}

// header returns the packet bytes in wire order, param2 low byte first.
func (p *packet) header() [5]byte {
	return [5]byte{p.count, p.opcode, p.param1, byte(p.param2), byte(p.param2 >> 8)}
}

// Frame describes one received response: the length declared in its
// first byte and whether the trailing CRC matched.
type Frame struct {
	Length byte
	Valid  bool
}

// transaction owns the response buffer, frame descriptor and CRC engine
// for a single in-flight exchange. One transaction is reused across all
// operations of a Device; its contents are only meaningful until the
// next operation begins.
type transaction struct {
	sum   frame.Checksum
	frame Frame
	buf   [frame.MaxFrameSize]byte
}

// responseKind tags the decoded shape of a response frame.
type responseKind int

const (
	// responseProtocolError covers CRC mismatches and unexpected frame
	// lengths alike; the root cause is not distinguished.
	responseProtocolError responseKind = iota
	// responseShortStatus is a status-only frame carrying one byte.
	responseShortStatus
	// responsePayload is a data frame of the operation's expected size.
	responsePayload
)

// response is the classified result of one decoded frame.
type response struct {
	data   []byte
	status byte
	kind   responseKind
}

// classify maps the received frame onto the operation's expected data
// size. A valid short status frame substitutes for any expected data
// response; any other shape, or an invalid CRC, is a protocol error.
func (t *transaction) classify(expected int) response {
	if !t.frame.Valid {
		return response{kind: responseProtocolError}
	}
	switch int(t.frame.Length) {
	case frame.StatusFrameSize:
		return response{kind: responseShortStatus, status: t.buf[0]}
	case expected:
		return response{kind: responsePayload, data: t.buf[:expected-1-frame.CRCSize]}
	}
	return response{kind: responseProtocolError}
}

// writeCommand opens a bus transaction and transmits the execute marker
// followed by the packet header, folding every header byte into the
// running CRC. The CRC bytes and the closing stop are left to the
// caller so operations with streamed payloads can extend the
// transaction before sealing it with finishCommand.
func (d *Device) writeCommand(p *packet) error {
	p.count += frame.HeaderOverhead

	d.txn.sum.Reset()

	if err := d.openWrite(); err != nil {
		return err
	}
	if err := d.writeByte(wordExecute); err != nil {
		return err
	}

	for _, b := range p.header() {
		d.txn.sum.Update(b)
		if err := d.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}

// finishCommand appends the running CRC, low byte first, and closes the
// bus transaction.
func (d *Device) finishCommand() error {
	crc := d.txn.sum.Sum16()
	if err := d.writeByte(byte(crc)); err != nil {
		return err
	}
	if err := d.writeByte(byte(crc >> 8)); err != nil {
		return err
	}
	if err := d.transport.Stop(); err != nil {
		return NewTransportError("stop", d.busName(), err, ErrorTypeTransient)
	}
	return nil
}

// command transmits a complete packet in one transaction.
func (d *Device) command(p *packet) error {
	if err := d.writeCommand(p); err != nil {
		return err
	}
	return d.finishCommand()
}

// readFrame reads one response frame into the transaction buffer. The
// first received byte declares the frame length and is folded into the
// CRC but not stored; the payload lands at buffer offset zero. The
// final two bytes carry the frame CRC little endian, the last of them
// read without acknowledgement to end the transaction. The frame is
// valid only when the received CRC matches the computed one and the
// declared length fits the buffer.
func (d *Device) readFrame() (Frame, error) {
	d.txn.sum.Reset()
	d.txn.frame = Frame{}

	if err := d.transport.Start(); err != nil {
		return Frame{}, NewTransportError("start", d.busName(), err, ErrorTypeTransient)
	}
	if err := d.transport.Address(Read); err != nil {
		_ = d.transport.Stop()
		return Frame{}, NewTransportError("address", d.busName(), err, ErrorTypeTransient)
	}

	length, err := d.readByte(true)
	if err != nil {
		return Frame{}, err
	}
	d.txn.sum.Update(length)
	d.txn.frame.Length = length

	payload := int(length) - 1 - frame.CRCSize
	truncated := payload < 0 || payload > len(d.txn.buf)
	if truncated {
		payload = 0
	}

	for i := 0; i < payload; i++ {
		b, err := d.readByte(true)
		if err != nil {
			return Frame{}, err
		}
		d.txn.sum.Update(b)
		d.txn.buf[i] = b
	}

	low, err := d.readByte(true)
	if err != nil {
		return Frame{}, err
	}
	high, err := d.readByte(false)
	if err != nil {
		return Frame{}, err
	}
	if err := d.transport.Stop(); err != nil {
		return Frame{}, NewTransportError("stop", d.busName(), err, ErrorTypeTransient)
	}

	received := uint16(low) | uint16(high)<<8
	d.txn.frame.Valid = !truncated && received == d.txn.sum.Sum16()
	if !d.txn.frame.Valid {
		debugf("frame invalid: length=%d crc=%04X computed=%04X", length, received, d.txn.sum.Sum16())
	}
	return d.txn.frame, nil
}

// openWrite starts a transaction and addresses the device for writing.
func (d *Device) openWrite() error {
	if err := d.transport.Start(); err != nil {
		return NewTransportError("start", d.busName(), err, ErrorTypeTransient)
	}
	if err := d.transport.Address(Write); err != nil {
		_ = d.transport.Stop()
		return NewTransportError("address", d.busName(), err, ErrorTypeTransient)
	}
	return nil
}

// writeByte transmits one byte, aborting the transaction on a missing
// acknowledgement.
func (d *Device) writeByte(b byte) error {
	if err := d.transport.WriteByte(b); err != nil {
		_ = d.transport.Stop()
		return NewTransportError("write", d.busName(), err, ErrorTypeTransient)
	}
	return nil
}

// readByte receives one byte, aborting the transaction on failure.
func (d *Device) readByte(ack bool) (byte, error) {
	b, err := d.transport.ReadByte(ack)
	if err != nil {
		_ = d.transport.Stop()
		return 0, NewTransportError("read", d.busName(), err, ErrorTypeTransient)
	}
	return b, nil
}

func (d *Device) busName() string {
	return string(d.transport.Type())
}
