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

// Package maria implements System-B's DMA-driven display processor.
// Unlike System-A's TIA, which a ROM drives register-by-register every
// scanline, Maria is handed a two-level display list (a Display List
// List pointing at per-zone Display Lists) once and then walks it
// itself, stealing CPU cycles to do so. The chip derives its own notion
// of the current scanline from elapsed CPU clocks rather than being told
// explicitly, and forwards its six audio registers through to a
// TIA's sound side, since System-B keeps the older chip around purely as
// an audio snoop.
package maria
