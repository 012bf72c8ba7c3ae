// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import "time"

// Timings collects every delay the driver inserts while talking to the
// controller. The link is write-only, with no busy flag to poll, so
// correctness rests entirely on these waits. The defaults carry
// comfortable margin over the HD44780U datasheet minimums; trim them
// only if your specific controller and wiring are known to keep up.
type Timings struct {
	// EnablePulse is how long E is held high. The controller needs
	// ~450 ns; anything the bus round trip doesn't already cover.
	EnablePulse time.Duration
	// NibbleSetup holds the data lines stable before E rises.
	NibbleSetup time.Duration
	// NibbleSettle follows the falling edge of E, covering the
	// controller's instruction execution time (~37 µs minimum).
	NibbleSettle time.Duration
	// InterNibble separates the two nibbles of one byte.
	InterNibble time.Duration
	// CharSettle follows a complete byte.
	CharSettle time.Duration
	// LongCommand follows clear-display and return-home, which busy
	// the controller for at least 1.52 ms.
	LongCommand time.Duration
	// PowerOn is the wait before the first transmission after reset.
	// The controller ignores the bus for ~40 ms after power-up.
	PowerOn time.Duration
	// ResetRetry separates the first reset nibbles of the power-on
	// sequence, when the controller may still be in an unknown state.
	ResetRetry time.Duration
	// ResetSettle follows the later reset nibbles.
	ResetSettle time.Duration
}

// DefaultTimings returns the reference values, tuned for reliable
// operation on breadboard wiring at 500 kHz.
func DefaultTimings() Timings {
	return Timings{
		EnablePulse:  2 * time.Microsecond,
		NibbleSetup:  10 * time.Microsecond,
		NibbleSettle: 100 * time.Microsecond,
		InterNibble:  10 * time.Microsecond,
		CharSettle:   50 * time.Microsecond,
		LongCommand:  3 * time.Millisecond,
		PowerOn:      50 * time.Millisecond,
		ResetRetry:   5 * time.Millisecond,
		ResetSettle:  time.Millisecond,
	}
}
