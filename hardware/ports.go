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

package hardware

import (
	"github.com/kessler-labs/retrocore/hardware/input"
	"github.com/kessler-labs/retrocore/hardware/spec"
)

// vcsPorts adapts a shared input.State into the two narrow interfaces
// riot.RIOT expects of whatever drives its I/O ports, following the same
// dependency-inversion idiom the TIA's InputSource already uses for
// paddles and triggers.
type vcsPorts struct {
	state *input.State
}

func newVCSPorts(state *input.State) *vcsPorts {
	return &vcsPorts{state: state}
}

// stickBits packs one jack's up/down/left/right state into a nibble, with
// inactive lines high, matching the polarity SWCHA presents on real
// hardware. A Driving controller replaces the usual direction bits with
// its quadrature gray code.
func stickBits(state *input.State, player int) uint8 {
	if state.Jack(player) == spec.Driving {
		return state.DrivingState(player)
	}

	bits := uint8(0x0f)
	if state.ActionState(player, spec.ActionUp) {
		bits &^= 0x08
	}
	if state.ActionState(player, spec.ActionDown) {
		bits &^= 0x04
	}
	if state.ActionState(player, spec.ActionLeft) {
		bits &^= 0x02
	}
	if state.ActionState(player, spec.ActionRight) {
		bits &^= 0x01
	}
	return bits
}

// SWCHA implements riot.Peripheral: player 0's nibble in the upper four
// bits, player 1's in the lower four, both active low.
func (p *vcsPorts) SWCHA() uint8 {
	return stickBits(p.state, 0)<<4 | stickBits(p.state, 1)
}

// SWCHB implements riot.Panel. Every switch is active low; the two
// difficulty switches read high (easy/amateur) when not held down.
func (p *vcsPorts) SWCHB() uint8 {
	bits := uint8(0xff)
	if p.state.ConsoleSwitch(spec.GameReset) {
		bits &^= 0x01
	}
	if p.state.ConsoleSwitch(spec.GameSelect) {
		bits &^= 0x02
	}
	if p.state.ConsoleSwitch(spec.GameBW) {
		bits &^= 0x08
	}
	if p.state.ConsoleSwitch(spec.LeftDifficultyA) {
		bits &^= 0x40
	}
	if p.state.ConsoleSwitch(spec.RightDifficultyA) {
		bits &^= 0x80
	}
	return bits
}
