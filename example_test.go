// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spilcd_test

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	spilcd "github.com/WangodaFrancis667/SPI-Hardware-Prototyping"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	port, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()
	dev, err := spilcd.New(port, gpioreg.ByName("GPIO10"), 2, 16)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := dev.WriteString("SPI Interface"); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetCursor(0, 1); err != nil {
		log.Fatal(err)
	}
	if _, err := dev.WriteString("By Francis"); err != nil {
		log.Fatal(err)
	}
}
