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

// Package television owns the two flat byte arrays a frame step writes
// into: a palette-indexed video buffer and a 16-bit-per-scanline PCM audio
// buffer. Video chips (hardware/tia, hardware/maria) address it by
// scanline and column; a host front end (out of scope here, see
// hardware/television/limiter for the only host-facing concern this tree
// keeps) reads the buffers back out once a frame is complete.
package television
