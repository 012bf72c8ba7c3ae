// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sr595_test

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/WangodaFrancis667/SPI-Hardware-Prototyping/sr595"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open the SPI bus.
	port, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()
	conn, err := port.Connect(500*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		log.Fatal(err)
	}
	// The register's storage clock (RCLK/STCP) pin.
	latch := gpioreg.ByName("GPIO10")
	dev, err := sr595.New(conn, latch)
	if err != nil {
		log.Fatal(err)
	}
	// Walk a one-hot pattern across the eight outputs.
	for i := range 8 {
		if err := dev.Commit(1 << i); err != nil {
			log.Fatal(err)
		}
	}
	if err := dev.Halt(); err != nil {
		log.Fatal(err)
	}
}
