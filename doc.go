// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package spilcd drives an HD44780 character LCD through a 74HC595
// serial-in/parallel-out shift register, so the display needs only the
// SPI bus plus one latch pin instead of the six to eleven GPIO lines of
// the LCD's native parallel interface.
//
// The module is split into two layers:
//
//   - [github.com/WangodaFrancis667/SPI-Hardware-Prototyping/sr595]
//     owns the SPI bus and the latch pin and commits one 8-bit value to
//     the register's parallel outputs per transaction.
//   - [github.com/WangodaFrancis667/SPI-Hardware-Prototyping/hd44780]
//     implements the HD44780 4-bit bus protocol on top of that, and
//     exposes a character display API.
//
// This package is the glue: it configures the SPI port with the bus
// parameters the register wiring requires and returns an initialized
// display.
package spilcd
