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

// Package pokey implements the secondary four-channel audio chip some
// System-B cartridges map into the address space alongside the console's
// own video/sound chip. Unlike that chip, Pokey is clocked directly by
// CPU cycles rather than by a lazily-caught-up colour clock: TickCPUCycle
// advances its four dividers, two linkable 16-bit counter pairs, and
// polynomial noise generators one CPU cycle at a time, matching the real
// chip's clock-derived (not colour-clock-derived) timing.
package pokey
