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

// Package spec collects the small closed enumerations shared across the
// rest of the hardware tree: which machine and television spec is being
// emulated, what kind of controller is plugged into a jack, which console
// switch or controller action an input event refers to, the cartridge
// mapper scheme a ROM uses, and the bit layout of the TIA's collision
// registers. None of these carry behaviour of their own; they exist so that
// the packages that do (riot, tia, cartridge, input) can talk about the
// same concepts by name instead of by magic number.
package spec
