// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hd44780 controls a Hitachi HD44780-family LCD controller in
// 4-bit mode through an 8-bit output register such as a 74HC595.
//
// The register's eight outputs carry the whole LCD bus in one byte:
// output 0 drives RS, output 1 drives E, and outputs 4-7 drive D4-D7
// (outputs 2-3 are unused). Each nibble reaches the controller as three
// committed bytes implementing the enable handshake: data with E low,
// data with E high, data with E low again. The controller latches on
// the falling edge.
//
// The link is write-only. The R/W line is not connected, so the busy
// flag can never be read and the driver paces itself with fixed delays
// instead; see Timings.
//
// Implements periph.io/x/conn/v3/display.TextDisplay.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package hd44780

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Transport delivers one byte to the eight parallel lines driving the
// LCD bus, atomically from the controller's point of view.
// sr595.Dev is the reference implementation.
type Transport interface {
	Commit(value byte) error
}

// Bit positions within a committed byte, fixed by the board wiring.
// Rewiring the register outputs means changing these.
const (
	rsBit     byte = 0x01 // output 0 -> RS
	enableBit byte = 0x02 // output 1 -> E
	dataMask  byte = 0xf0 // outputs 4-7 -> D4-D7
)

// HD44780 instruction set.
const (
	cmdClearDisplay   byte = 0x01
	cmdReturnHome     byte = 0x02
	cmdEntryModeSet   byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdCursorShift    byte = 0x10
	cmdFunctionSet    byte = 0x20
	cmdSetDDRAMAddr   byte = 0x80

	entryIncrement byte = 0x02

	displayOn  byte = 0x04
	cursorOn   byte = 0x02
	blinkOn    byte = 0x01

	function2Line byte = 0x08

	shiftRight byte = 0x04
)

// DDRAM base address for each display row. Rows 2 and 3 only exist on
// 4-line modules.
var rowOffsets = [4]byte{0x00, 0x40, 0x14, 0x54}

// Dev is a handle to an initialized display.
type Dev struct {
	t       Transport
	rows    int
	cols    int
	timings Timings

	on     bool
	cursor bool
	blink  bool

	// Swapped out by tests to observe the protocol's pacing.
	sleep func(time.Duration)
}

// New runs the power-on initialization sequence on the display behind t
// and returns a ready device, using DefaultTimings. rows and cols
// describe the physical module, e.g. 2 and 16.
func New(t Transport, rows, cols int) (*Dev, error) {
	return NewWithTimings(t, DefaultTimings(), rows, cols)
}

// NewWithTimings is New with caller-supplied protocol delays.
func NewWithTimings(t Transport, timings Timings, rows, cols int) (*Dev, error) {
	if rows < 1 || rows > len(rowOffsets) {
		return nil, fmt.Errorf("hd44780: unsupported row count %d", rows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("hd44780: unsupported column count %d", cols)
	}
	dev := &Dev{
		t:       t,
		rows:    rows,
		cols:    cols,
		timings: timings,
		sleep:   time.Sleep,
	}
	return dev, dev.init()
}

// packPacket builds the register byte for one bus state. It is a pure
// function of its arguments: the register is write-only and nothing is
// ever read back, so every commit carries the complete output state.
func packPacket(nibble byte, rs, enable bool) byte {
	packet := nibble & dataMask
	if rs {
		packet |= rsBit
	}
	if enable {
		packet |= enableBit
	}
	return packet
}

// writeNibble presents one nibble (already positioned in bits 4-7) to
// the controller via the three-step enable handshake. Nothing else may
// touch the transport between the three commits.
func (dev *Dev) writeNibble(nibble byte, rs bool) error {
	packet := packPacket(nibble, rs, false)
	// Data stable before E rises.
	if err := dev.t.Commit(packet); err != nil {
		return err
	}
	dev.sleep(dev.timings.NibbleSetup)
	if err := dev.t.Commit(packet | enableBit); err != nil {
		return err
	}
	dev.sleep(dev.timings.EnablePulse)
	// The controller latches the nibble on this falling edge.
	if err := dev.t.Commit(packet); err != nil {
		return err
	}
	dev.sleep(dev.timings.NibbleSettle)
	return nil
}

// writeByte sends a full byte as two nibbles, high first.
func (dev *Dev) writeByte(value byte, rs bool) error {
	if err := dev.writeNibble(value&dataMask, rs); err != nil {
		return err
	}
	dev.sleep(dev.timings.InterNibble)
	if err := dev.writeNibble((value<<4)&dataMask, rs); err != nil {
		return err
	}
	dev.sleep(dev.timings.CharSettle)
	return nil
}

// longCommand reports whether cmd busies the controller for
// milliseconds rather than microseconds. Only clear-display and
// return-home do: both rewrite the whole DDRAM internally.
func longCommand(cmd byte) bool {
	return cmd == cmdClearDisplay || cmd == cmdReturnHome
}

// WriteCommand sends one instruction byte (RS low) and waits out its
// timing class.
func (dev *Dev) WriteCommand(cmd byte) error {
	if err := dev.writeByte(cmd, false); err != nil {
		return err
	}
	if longCommand(cmd) {
		dev.sleep(dev.timings.LongCommand)
	}
	return nil
}

// WriteChar sends one data byte (RS high) to the current DDRAM address.
func (dev *Dev) WriteChar(c byte) error {
	return dev.writeByte(c, true)
}

// SetCursor moves the cursor to the zero-based column and row. Unlike
// the controller itself, which would happily accept an address off the
// visible area, out-of-range coordinates are rejected.
func (dev *Dev) SetCursor(col, row int) error {
	if row < 0 || row >= dev.rows {
		return fmt.Errorf("hd44780: row %d out of range 0-%d", row, dev.rows-1)
	}
	if col < 0 || col >= dev.cols {
		return fmt.Errorf("hd44780: column %d out of range 0-%d", col, dev.cols-1)
	}
	return dev.WriteCommand(cmdSetDDRAMAddr | (byte(col) + rowOffsets[row]))
}

// Write sends p to the display as character data, in order, stopping at
// the first NUL byte. It returns the number of characters written.
func (dev *Dev) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if c == 0 {
			return
		}
		if err = dev.WriteChar(c); err != nil {
			return
		}
		n++
	}
	return
}

// WriteString writes text at the current cursor position.
func (dev *Dev) WriteString(text string) (int, error) {
	return dev.Write([]byte(text))
}

// Clear clears the screen and moves the cursor to the first position.
func (dev *Dev) Clear() error {
	return dev.WriteCommand(cmdClearDisplay)
}

// Home moves the cursor to (MinRow(), MinCol()) and undoes any display
// shift.
func (dev *Dev) Home() error {
	return dev.WriteCommand(cmdReturnHome)
}

// MinCol returns the min column position.
func (dev *Dev) MinCol() int {
	return 1
}

// MinRow returns the min row position.
func (dev *Dev) MinRow() int {
	return 1
}

// Cols returns the number of columns the display supports.
func (dev *Dev) Cols() int {
	return dev.cols
}

// Rows returns the number of rows the display supports.
func (dev *Dev) Rows() int {
	return dev.rows
}

// MoveTo moves the cursor to the one-based row and column.
func (dev *Dev) MoveTo(row, col int) error {
	if row < dev.MinRow() || row > dev.rows || col < dev.MinCol() || col > dev.cols {
		return fmt.Errorf("hd44780: MoveTo(%d, %d) out of range", row, col)
	}
	return dev.SetCursor(col-1, row-1)
}

// Move moves the cursor forward or backward one position.
func (dev *Dev) Move(dir display.CursorDirection) error {
	cmd := cmdCursorShift
	switch dir {
	case display.Backward:
	case display.Forward:
		cmd |= shiftRight
	default:
		return fmt.Errorf("hd44780: %w", display.ErrNotImplemented)
	}
	return dev.WriteCommand(cmd)
}

// Cursor sets the cursor mode. Multiple modes can be combined, e.g.
// Cursor(display.CursorUnderline, display.CursorBlink).
func (dev *Dev) Cursor(modes ...display.CursorMode) error {
	dev.cursor = false
	dev.blink = false
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
		case display.CursorUnderline:
			dev.cursor = true
		case display.CursorBlink, display.CursorBlock:
			// No block cursor on this controller, blink is the
			// closest it has.
			dev.cursor = true
			dev.blink = true
		default:
			return fmt.Errorf("hd44780: %w", display.ErrInvalidCommand)
		}
	}
	return dev.writeDisplayControl()
}

// Display turns the display on or off without clearing DDRAM.
func (dev *Dev) Display(on bool) error {
	dev.on = on
	return dev.writeDisplayControl()
}

// AutoScroll is not supported by this device.
func (dev *Dev) AutoScroll(enabled bool) error {
	return fmt.Errorf("hd44780: %w", display.ErrNotImplemented)
}

func (dev *Dev) writeDisplayControl() error {
	cmd := cmdDisplayControl
	if dev.on {
		cmd |= displayOn
	}
	if dev.cursor {
		cmd |= cursorOn
	}
	if dev.blink {
		cmd |= blinkOn
	}
	return dev.WriteCommand(cmd)
}

// Halt clears and blanks the display, then halts the transport if it is
// a conn.Resource.
func (dev *Dev) Halt() error {
	if err := dev.Clear(); err != nil {
		return err
	}
	if err := dev.Display(false); err != nil {
		return err
	}
	if r, ok := dev.t.(conn.Resource); ok {
		return r.Halt()
	}
	return nil
}

// String returns info about the display.
func (dev *Dev) String() string {
	return fmt.Sprintf("HD44780 %dx%d on %v", dev.cols, dev.rows, dev.t)
}

// init runs the fixed power-on sequence from the HD44780U datasheet.
// There is no feedback from the controller at any point; the sequence
// works purely by exceeding the documented wait times.
func (dev *Dev) init() error {
	dev.sleep(dev.timings.PowerOn)

	// The controller may be in 8-bit mode, in 4-bit mode, or halfway
	// through a 4-bit transfer. Three function-set nibbles force it
	// into a known 8-bit state regardless, then a fourth switches it
	// to 4-bit mode. These are single raw nibbles, not byte pairs.
	for _, pause := range []time.Duration{
		dev.timings.ResetRetry,
		dev.timings.ResetRetry,
		dev.timings.ResetSettle,
	} {
		if err := dev.writeNibble(0x30, false); err != nil {
			return err
		}
		dev.sleep(pause)
	}
	if err := dev.writeNibble(0x20, false); err != nil {
		return err
	}
	dev.sleep(dev.timings.ResetSettle)

	// From here on, the normal two-nibble protocol applies.
	function := cmdFunctionSet // 4-bit bus, 5x8 font
	if dev.rows > 1 {
		function |= function2Line
	}
	dev.on = true
	for _, cmd := range []byte{
		function,
		cmdDisplayControl | displayOn,
		cmdEntryModeSet | entryIncrement,
		cmdClearDisplay,
	} {
		if err := dev.WriteCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
