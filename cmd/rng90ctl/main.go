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

// rng90ctl exercises an RNG90 device from the command line.
//
// Usage:
//
//	rng90ctl [flags] <info|serial|random|selftest|reset|sleep|idle>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	rng90 "github.com/0x007E/drivers-crypto-rng90"
	"github.com/0x007E/drivers-crypto-rng90/detection"

	// Import the detector so it registers itself.
	_ "github.com/0x007E/drivers-crypto-rng90/detection/i2c"
	"github.com/0x007E/drivers-crypto-rng90/transport/i2c"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rng90ctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	bus := flag.String("bus", "", "I2C bus (e.g. /dev/i2c-1); empty for auto-detection")
	address := flag.Uint("addr", 0, "7-bit device address (default 0x40)")
	configPath := flag.String("config", "", "optional YAML config file")
	debug := flag.Bool("debug", false, "enable debug output")
	selftest := flag.String("test", "both", "self-tests to run: drbg, sha256 or both")
	flag.Parse()

	busName, addr, debugOn := *bus, uint16(*address), *debug
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		busName, addr, debugOn = cfg.merge(busName, addr, debugOn)
	}
	if debugOn {
		rng90.SetDebugEnabled(true)
	}

	command := flag.Arg(0)
	if command == "" {
		return errors.New("no command given (info, serial, random, selftest, reset, sleep, idle)")
	}

	if busName == "" {
		detected, err := detection.Detect(context.Background(), detection.DefaultOptions())
		if err != nil {
			return fmt.Errorf("auto-detection failed: %w", err)
		}
		if len(detected) == 0 {
			return detection.ErrNoDeviceFound
		}
		busName = detected[0].Path
		fmt.Printf("using detected device on %s\n", busName)
	}

	var opts []i2c.Option
	if addr != 0 {
		opts = append(opts, i2c.WithAddress(addr))
	}
	transport, err := i2c.New(busName, opts...)
	if err != nil {
		return err
	}

	device, err := rng90.New(transport)
	if err != nil {
		_ = transport.Close()
		return err
	}
	defer func() { _ = device.Close() }()

	return execute(device, command, *selftest)
}

func execute(device *rng90.Device, command, selftest string) error {
	switch command {
	case "info":
		info, err := device.Info()
		if err != nil {
			return err
		}
		fmt.Printf("DeviceID:  0x%02X\n", info.DeviceID)
		fmt.Printf("SiliconID: 0x%02X\n", info.SiliconID)
		fmt.Printf("Revision:  0x%02X\n", info.Revision)
		fmt.Printf("RFU:       0x%02X\n", info.RFU)
	case "serial":
		serial, err := device.Serial()
		if err != nil {
			return err
		}
		fmt.Printf("%X\n", serial)
	case "random":
		random, err := device.Random()
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", random)
	case "selftest":
		run, err := parseSelfTest(selftest)
		if err != nil {
			return err
		}
		status, err := device.SelfTest(run)
		if err != nil {
			return err
		}
		fmt.Printf("self-test %s: %s\n", run, status)
		if status != rng90.SelfTestPassed {
			os.Exit(1)
		}
	case "reset":
		return device.Reset()
	case "sleep":
		return device.Sleep()
	case "idle":
		return device.Idle()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func parseSelfTest(name string) (rng90.SelfTest, error) {
	switch name {
	case "drbg":
		return rng90.SelfTestDRBG, nil
	case "sha256":
		return rng90.SelfTestSHA256, nil
	case "both":
		return rng90.SelfTestBoth, nil
	}
	return 0, fmt.Errorf("unknown self-test %q (drbg, sha256 or both)", name)
}
