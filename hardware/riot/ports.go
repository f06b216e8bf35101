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

// Peripheral supplies the value of SWCHA's input lines, as driven by
// whatever is plugged into the two controller jacks. A nil Peripheral reads
// as all lines high, as if nothing were connected.
type Peripheral interface {
	SWCHA() uint8
}

// Panel supplies the value of SWCHB's input lines: the console's Reset,
// Select, Color/BW and difficulty switches. A nil Panel reads as all
// switches in their inactive position.
type Panel interface {
	SWCHB() uint8
}

func (r *RIOT) readPortA() uint8 {
	input := uint8(0xff)
	if r.peripheral != nil {
		input = r.peripheral.SWCHA()
	}
	return (r.writtenA & r.ddra) | (input &^ r.ddra)
}

func (r *RIOT) readPortB() uint8 {
	input := uint8(0xff)
	if r.panel != nil {
		input = r.panel.SWCHB()
	}
	return (r.writtenB & r.ddrb) | (input &^ r.ddrb)
}
