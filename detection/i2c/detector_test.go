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

import "testing"

func TestBusNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want int
	}{
		{"/dev/i2c-0", 0},
		{"/dev/i2c-1", 1},
		{"/dev/i2c-12", 12},
		{"/dev/i2c-", -1},
		{"/dev/i2c-x", -1},
		{"/dev/spidev0.0", -1},
		{"/dev/ttyUSB0", -1},
	}

	for _, tt := range tests {
		if got := busNumber(tt.path); got != tt.want {
			t.Errorf("busNumber(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestDetectorTransport(t *testing.T) {
	t.Parallel()

	if got := New().Transport(); got != "i2c" {
		t.Errorf("Transport() = %q, want i2c", got)
	}
}
