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

package frame

import "testing"

func TestSum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{
			name: "empty data",
			data: []byte{},
			want: 0x0000,
		},
		{
			name: "zero byte keeps register clear",
			data: []byte{0x00},
			want: 0x0000,
		},
		{
			name: "single 0xFF",
			data: []byte{0xFF},
			want: 0x0202,
		},
		{
			name: "ascii abc",
			data: []byte("abc"),
			want: 0x1CE9,
		},
		{
			// The chip family's canonical after-wake frame is
			// 04 11 33 43: length, status, CRC low, CRC high.
			name: "after-wake status frame",
			data: []byte{0x04, 0x11},
			want: 0x4333,
		},
		{
			name: "self-test command header",
			data: []byte{0x07, 0x77, 0x21, 0x00, 0x00},
			want: 0x7F7E,
		},
		{
			name: "info command header",
			data: []byte{0x07, 0x30, 0x00, 0x00, 0x00},
			want: 0x5D03,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sum(tt.data); got != tt.want {
				t.Errorf("Sum() = %04X, want %04X", got, tt.want)
			}
		})
	}
}

func TestChecksumRollingMatchesSum(t *testing.T) {
	t.Parallel()
	data := []byte{0x1B, 0x16, 0x00, 0x00, 0x00, 0xAA, 0x55, 0xFF}

	var c Checksum
	for _, b := range data {
		c.Update(b)
	}

	if c.Sum16() != Sum(data) {
		t.Errorf("rolling = %04X, one-shot = %04X", c.Sum16(), Sum(data))
	}
}

func TestChecksumReset(t *testing.T) {
	t.Parallel()

	var c Checksum
	c.Update(0xFF)
	c.Reset()

	if c.Sum16() != 0 {
		t.Errorf("Sum16() after Reset = %04X, want 0", c.Sum16())
	}

	c.Update(0xFF)
	if c.Sum16() != 0x0202 {
		t.Errorf("Sum16() after Reset+Update = %04X, want 0202", c.Sum16())
	}
}
