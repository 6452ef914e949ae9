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

// Package detection locates buses that carry an RNG90 device.
package detection

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Detection errors
var (
	// ErrUnsupportedPlatform indicates detection is not available on
	// this operating system.
	ErrUnsupportedPlatform = errors.New("detection not supported on this platform")
	// ErrNoDeviceFound indicates no responding device was located.
	ErrNoDeviceFound = errors.New("no device found")
)

// Mode controls how intrusive detection may be.
type Mode int

const (
	// Safe actively probes candidate buses with a harmless read.
	Safe Mode = iota
	// Passive only enumerates candidate buses without touching them.
	Passive
)

// Options configures a detection run.
type Options struct {
	// Mode selects probing behavior.
	Mode Mode
	// Timeout bounds the whole detection run.
	Timeout time.Duration
	// Address is the 7-bit device address to probe for.
	Address uint8
}

// DefaultOptions returns options probing for the RNG90 default address.
func DefaultOptions() *Options {
	return &Options{
		Mode:    Safe,
		Timeout: 2 * time.Second,
		Address: 0x40,
	}
}

// DeviceInfo describes one detected device candidate.
type DeviceInfo struct {
	// Path is the bus device path, e.g. /dev/i2c-1.
	Path string
	// Transport names the transport type able to open Path.
	Transport string
	// Metadata carries transport-specific details.
	Metadata map[string]string
}

// Detector searches one transport type for devices.
type Detector interface {
	// Transport returns the transport type this detector covers.
	Transport() string
	// Detect searches for devices and returns the candidates found.
	Detect(ctx context.Context, opts *Options) ([]DeviceInfo, error)
}

var (
	registryMu sync.RWMutex
	registry   []Detector
)

// RegisterDetector adds a detector to the global registry. Detector
// packages register themselves on import.
func RegisterDetector(d Detector) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, d)
}

// Detect runs every registered detector and returns all candidates.
// Unsupported platforms are skipped silently; other detector errors
// abort the run.
func Detect(ctx context.Context, opts *Options) ([]DeviceInfo, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	registryMu.RLock()
	detectors := append([]Detector(nil), registry...)
	registryMu.RUnlock()

	var devices []DeviceInfo
	for _, d := range detectors {
		found, err := d.Detect(ctx, opts)
		if err != nil {
			if errors.Is(err, ErrUnsupportedPlatform) {
				continue
			}
			return nil, err
		}
		devices = append(devices, found...)
	}
	return devices, nil
}
