// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spilcd

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/WangodaFrancis667/SPI-Hardware-Prototyping/hd44780"
	"github.com/WangodaFrancis667/SPI-Hardware-Prototyping/sr595"
)

// Bus parameters required by the 74HC595 and the board wiring. The
// register samples data MSB-first on the rising clock edge with the
// clock idle low (Mode0, the periph default bit order is MSB-first).
// Faster clocks work on short traces, but above ~1 MHz breadboard
// wiring starts to corrupt the latch timing.
const (
	BusSpeed = 500 * physic.KiloHertz
	BusMode  = spi.Mode0
	BusBits  = 8
)

// New connects to the shift register on port, wires the hd44780 driver
// on top of it, and runs the display power-on initialization. latch is
// the GPIO pin connected to the register's storage clock (RCLK/STCP).
func New(port spi.Port, latch gpio.PinOut, rows, cols int) (*hd44780.Dev, error) {
	conn, err := port.Connect(BusSpeed, BusMode, BusBits)
	if err != nil {
		return nil, err
	}
	sr, err := sr595.New(conn, latch)
	if err != nil {
		return nil, err
	}
	return hd44780.New(sr, rows, cols)
}
