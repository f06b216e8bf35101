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

// prosystemPorts adapts a shared input.State into the interfaces System-B's
// PIA (a reused riot.RIOT) and Maria expect of whatever drives a jack,
// following the same dependency-inversion idiom vcsPorts uses for
// System-A.
type prosystemPorts struct {
	state *input.State
}

func newProsystemPorts(state *input.State) *prosystemPorts {
	return &prosystemPorts{state: state}
}

// SWCHA implements riot.Peripheral: both jacks' digital directions, a
// ProLine joystick presenting the same four direction lines as a regular
// one.
func (p *prosystemPorts) SWCHA() uint8 {
	return stickBits(p.state, 0)<<4 | stickBits(p.state, 1)
}

// SWCHB implements riot.Panel. System-B's front panel has Reset, Select
// and Pause rather than System-A's difficulty switches, but Pause reuses
// the same GameBW line both systems' panel logic already understands.
func (p *prosystemPorts) SWCHB() uint8 {
	bits := uint8(0xff)
	if p.state.ConsoleSwitch(spec.GameReset) {
		bits &^= 0x01
	}
	if p.state.ConsoleSwitch(spec.GameSelect) {
		bits &^= 0x02
	}
	if p.state.ConsoleSwitch(spec.Pause) {
		bits &^= 0x08
	}
	return bits
}

// Jack implements maria.InputSource.
func (p *prosystemPorts) Jack(player int) spec.Controller {
	return p.state.Jack(player)
}

// ActionState implements maria.InputSource.
func (p *prosystemPorts) ActionState(player int, action spec.ControllerAction) bool {
	return p.state.ActionState(player, action)
}

// LightGun implements maria.InputSource.
func (p *prosystemPorts) LightGun(player int) (scanline, hpos int) {
	return p.state.LightGun(player)
}
