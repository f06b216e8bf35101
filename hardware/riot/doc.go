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

// Package riot emulates the 6532 RIOT (RAM-I/O-Timer) chip found in
// System-A. It provides 128 bytes of static RAM, a four-speed interval
// timer, and the two 8 bit ports (SWCHA, SWCHB) that connect the controller
// jacks and the console switches to the CPU.
//
// The chip's own address decoding is reproduced directly: bit 0x0200 of the
// address chooses between the RAM and the I/O/timer registers, matching the
// real 6532's internal chip-select logic. Mirroring of that decode across
// the wider address space is the job of whatever composes RIOT into the
// full memory map.
package riot
