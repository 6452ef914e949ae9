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

//go:build linux

package i2c

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/0x007E/drivers-crypto-rng90/detection"
	"golang.org/x/sys/unix"
)

// i2cSlave is the ioctl command to bind a file descriptor to a slave
// address.
const i2cSlave = 0x0703

// detectLinux enumerates /dev/i2c-* and probes each bus for a device
// at the configured address.
func detectLinux(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	paths, err := filepath.Glob("/dev/i2c-*")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate I2C buses: %w", err)
	}

	var devices []detection.DeviceInfo
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}

		number := busNumber(path)
		if number < 0 {
			continue
		}
		if opts.Mode != detection.Passive && !probe(path, opts.Address) {
			continue
		}
		devices = append(devices, detection.DeviceInfo{
			Path:      path,
			Transport: "i2c",
			Metadata: map[string]string{
				"bus":     fmt.Sprintf("%d", number),
				"address": fmt.Sprintf("0x%02X", opts.Address),
			},
		})
	}
	return devices, nil
}

// probe reports whether something acknowledges a read at addr on the
// bus. A one-byte read is harmless to the RNG90; it returns its ready
// byte without starting a command.
func probe(busPath string, addr uint8) bool {
	fd, err := unix.Open(busPath, unix.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer func() { _ = unix.Close(fd) }()

	if err := unix.IoctlSetInt(fd, i2cSlave, int(addr)); err != nil {
		return false
	}

	buf := make([]byte, 1)
	n, err := unix.Read(fd, buf)
	return err == nil && n == 1
}
