// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package riot

import (
	"github.com/kessler-labs/retrocore/errors"
)

// RIOT emulates a 6532 chip: 128 bytes of RAM, an interval timer and the
// two 8 bit I/O ports. It implements bus.CPUBus and bus.DebuggerBus.
type RIOT struct {
	peripheral Peripheral
	panel      Panel

	ram [128]uint8

	ddra     uint8
	ddrb     uint8
	writtenA uint8
	writtenB uint8

	timer timer

	lastRead string
}

// NewRIOT is the preferred method of initialisation for RIOT. peripheral
// and panel may be nil, in which case their ports read as all lines
// inactive; AttachPeripheral and AttachPanel can supply them later.
func NewRIOT(peripheral Peripheral, panel Panel) *RIOT {
	r := &RIOT{peripheral: peripheral, panel: panel}
	r.Reset()
	return r
}

// AttachPeripheral connects (or disconnects, with nil) whatever drives
// SWCHA's input lines.
func (r *RIOT) AttachPeripheral(peripheral Peripheral) {
	r.peripheral = peripheral
}

// AttachPanel connects (or disconnects, with nil) whatever drives SWCHB's
// input lines.
func (r *RIOT) AttachPanel(panel Panel) {
	r.panel = panel
}

// Reset returns the chip to its power-on state. RAM is cleared, both ports
// read as pure input, and the timer is set to its slowest (1024 cycle)
// divider with INTIM and TIMINT undefined until first written.
func (r *RIOT) Reset() {
	r.ram = [128]uint8{}
	r.ddra = 0
	r.ddrb = 0
	r.writtenA = 0
	r.writtenB = 0
	r.timer.reset()
	r.lastRead = ""
}

// Step advances the interval timer by one CPU cycle. It should be called
// once for every cycle the CPU executes, regardless of whether the RIOT is
// addressed that cycle.
func (r *RIOT) Step() {
	r.timer.step()
}

// Read implements bus.CPUBus. addr is the full CPU address; bit 0x0200
// selects between RAM and the I/O/timer registers, as on real hardware.
func (r *RIOT) Read(addr uint16) (uint8, error) {
	if addr&0x0200 == 0 {
		r.lastRead = "RAM"
		return r.ram[addr&0x7f], nil
	}

	switch addr & 0x07 {
	case 0:
		r.lastRead = "SWCHA"
		return r.readPortA(), nil
	case 1:
		r.lastRead = "SWACNT"
		return r.ddra, nil
	case 2:
		r.lastRead = "SWCHB"
		return r.readPortB(), nil
	case 3:
		r.lastRead = "SWBCNT"
		return 0, nil
	case 4, 6:
		r.lastRead = "INTIM"
		return r.timer.readValue(), nil
	default:
		r.lastRead = "TIMINT"
		return r.timer.readInterruptFlag(), nil
	}
}

// Write implements bus.CPUBus.
func (r *RIOT) Write(addr uint16, data uint8) error {
	if addr&0x0200 == 0 {
		r.ram[addr&0x7f] = data
		return nil
	}

	if addr&0x04 != 0 {
		if addr&0x10 != 0 {
			r.timer.write(data, uint8(addr))
		}
		// addr&0x10 clear selects edge-detect control, unused on System-A
		return nil
	}

	switch addr & 0x03 {
	case 0:
		r.writtenA = data
	case 1:
		r.ddra = data
	case 2:
		r.writtenB = data
	default:
		r.ddrb = data
	}
	return nil
}

// Peek implements bus.DebuggerBus: it reads without disturbing the
// interrupt flag's latching behaviour.
func (r *RIOT) Peek(addr uint16) (uint8, error) {
	if addr&0x0200 == 0 {
		return r.ram[addr&0x7f], nil
	}

	switch addr & 0x07 {
	case 0:
		return r.readPortA(), nil
	case 1:
		return r.ddra, nil
	case 2:
		return r.readPortB(), nil
	case 3:
		return 0, nil
	case 4, 6:
		return r.timer.readValue(), nil
	default:
		return r.timer.readInterruptFlag(), nil
	}
}

// Poke implements bus.DebuggerBus, writing directly into RAM or the
// latched port/DDR values. Poking the timer region is not supported because
// there is no way to express it without also advancing the chip's state.
func (r *RIOT) Poke(addr uint16, data uint8) error {
	if addr&0x0200 == 0 {
		r.ram[addr&0x7f] = data
		return nil
	}

	switch addr & 0x07 {
	case 0:
		r.writtenA = data
	case 1:
		r.ddra = data
	case 2:
		r.writtenB = data
	case 3:
		r.ddrb = data
	default:
		return errors.Errorf(errors.UnpokeableAddress, addr)
	}
	return nil
}

// LastReadRegister returns the name of the register last read by the CPU,
// for debugger display.
func (r *RIOT) LastReadRegister() string {
	return r.lastRead
}
