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

import "sync"

// MockTransport is a scripted transport for tests. It records every
// acknowledged written byte and serves read transactions from a queue
// of canned response frames. Individual writes can be made to fail
// their acknowledgement to exercise abort paths.
type MockTransport struct {
	mu          sync.Mutex
	written     []byte
	responses   [][]byte
	current     []byte
	pos         int
	failWriteAt int
	writeCount  int
	starts      int
	stops       int
	reads       int
	closed      bool
}

// NewMockTransport creates a mock transport with no scripted responses.
func NewMockTransport() *MockTransport {
	return &MockTransport{failWriteAt: -1}
}

// SetResponse replaces the response queue with a single frame.
func (m *MockTransport) SetResponse(frm []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = [][]byte{append([]byte(nil), frm...)}
}

// QueueResponse appends a frame to the response queue; each read
// transaction consumes one queued frame.
func (m *MockTransport) QueueResponse(frm []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, append([]byte(nil), frm...))
}

// FailWriteAt makes the n-th WriteByte (counted from zero across all
// transactions) report a missing acknowledgement.
func (m *MockTransport) FailWriteAt(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWriteAt = n
}

// Written returns every acknowledged byte written so far.
func (m *MockTransport) Written() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.written...)
}

// Starts returns the number of Start calls.
func (m *MockTransport) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Stops returns the number of Stop calls.
func (m *MockTransport) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// ReadTransactions returns how many read transactions were begun.
func (m *MockTransport) ReadTransactions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// Start opens a bus transaction.
func (m *MockTransport) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrTransportWrite
	}
	m.starts++
	return nil
}

// Stop closes the current bus transaction.
func (m *MockTransport) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	return nil
}

// Address selects the device; addressing for read consumes the next
// queued response frame.
func (m *MockTransport) Address(dir Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dir == Read {
		m.reads++
		m.current = nil
		m.pos = 0
		if len(m.responses) > 0 {
			m.current = m.responses[0]
			m.responses = m.responses[1:]
		}
	}
	return nil
}

// WriteByte records the byte, or reports a missing acknowledgement if
// scripted to fail at this position.
func (m *MockTransport) WriteByte(b byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := m.writeCount
	m.writeCount++
	if index == m.failWriteAt {
		return ErrNoACK
	}
	m.written = append(m.written, b)
	return nil
}

// ReadByte serves the next byte of the current response frame.
func (m *MockTransport) ReadByte(_ bool) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pos >= len(m.current) {
		return 0, ErrTransportRead
	}
	b := m.current[m.pos]
	m.pos++
	return b, nil
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Type returns TransportMock
func (*MockTransport) Type() TransportType {
	return TransportMock
}
