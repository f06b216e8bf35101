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

// Package tia implements the System-A video/sound chip: a 64-register
// memory-mapped device that renders player, missile, ball and playfield
// graphics into a shared frame buffer one colour clock at a time, tracks
// the fifteen possible object-pair collisions, and produces two channels
// of distortion-driven audio. Rendering is lazy: a register access first
// catches video output up to the chip's current colour clock before
// reading or modifying state, so that the effect of a write lands on
// exactly the right pixel.
package tia
