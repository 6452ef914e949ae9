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
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebugEnabled toggles debug output for the whole package. Debug
// output goes to the standard logger; normal operation emits nothing.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("rng90: "+format, args...)
	}
}
