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

package tia

import "github.com/kessler-labs/retrocore/hardware/spec"

// copyOffsets gives, for each of the eight NUSIZ copy-count encodings, the
// pixel offsets at which a player/missile repeats its graphic across one
// scanline.
var copyOffsets = [8][]int{
	{0},
	{0, 16},
	{0, 32},
	{0, 16, 32},
	{0, 64},
	{0},
	{0, 32, 64},
	{0},
}

// playerWidth and playerStretch give the on-screen pixel width of a player
// graphic and how many screen pixels correspond to one graphic bit, indexed
// the same way as copyOffsets.
var playerWidth = [8]int{8, 8, 8, 8, 8, 16, 8, 32}
var playerStretch = [8]int{1, 1, 1, 1, 1, 2, 1, 4}

// cxTable maps every 6-bit combination of the object-presence flags
// (spec.CxObject) to the set of pair collisions (spec.CxPair) that
// combination implies. Built once at package init so renderPixel's hot path
// is a single table lookup rather than six comparisons per pixel.
var cxTable [64]spec.CxPair

func init() {
	for mask := 0; mask < 64; mask++ {
		pf := mask&int(spec.CxPlayfield) != 0
		bl := mask&int(spec.CxBall) != 0
		m0 := mask&int(spec.CxMissile0) != 0
		m1 := mask&int(spec.CxMissile1) != 0
		p0 := mask&int(spec.CxPlayer0) != 0
		p1 := mask&int(spec.CxPlayer1) != 0

		var cx spec.CxPair
		if m0 && p1 {
			cx |= spec.CxMissile0Player1
		}
		if m0 && p0 {
			cx |= spec.CxMissile0Player0
		}
		if m1 && p0 {
			cx |= spec.CxMissile1Player0
		}
		if m1 && p1 {
			cx |= spec.CxMissile1Player1
		}
		if p0 && pf {
			cx |= spec.CxPlayer0Playfield
		}
		if p0 && bl {
			cx |= spec.CxPlayer0Ball
		}
		if p1 && pf {
			cx |= spec.CxPlayer1Playfield
		}
		if p1 && bl {
			cx |= spec.CxPlayer1Ball
		}
		if m0 && pf {
			cx |= spec.CxMissile0Playfield
		}
		if m0 && bl {
			cx |= spec.CxMissile0Ball
		}
		if m1 && pf {
			cx |= spec.CxMissile1Playfield
		}
		if m1 && bl {
			cx |= spec.CxMissile1Ball
		}
		if bl && pf {
			cx |= spec.CxBallPlayfield
		}
		if p0 && p1 {
			cx |= spec.CxPlayer0Player1
		}
		if m0 && m1 {
			cx |= spec.CxMissile0Missile1
		}
		cxTable[mask] = cx
	}
}

// playfieldColumnBit reports whether playfield column col (0..19, each
// covering four screen pixels) is set, given the three playfield
// registers. Column 0-3 come from PF0 bits 4-7, column 4-11 from PF1
// bits 7 down to 0, column 12-19 from PF2 bits 0 up to 7.
func playfieldColumnBit(pf0, pf1, pf2 uint8, col int) bool {
	switch {
	case col < 4:
		return pf0&(1<<uint(4+col)) != 0
	case col < 12:
		return pf1&(1<<uint(11-col)) != 0
	default:
		return pf2&(1<<uint(col-12)) != 0
	}
}

// playfieldPixelOn reports whether the playfield is lit at visible pixel
// x (0..159). The right half of the screen either mirrors or repeats the
// left half's 20 columns depending on reflect.
func playfieldPixelOn(pf0, pf1, pf2 uint8, x int, reflect bool) bool {
	col := x / 4
	if col < 20 {
		return playfieldColumnBit(pf0, pf1, pf2, col)
	}
	rightCol := col - 20
	if reflect {
		return playfieldColumnBit(pf0, pf1, pf2, 19-rightCol)
	}
	return playfieldColumnBit(pf0, pf1, pf2, rightCol)
}

// playerPixelOn reports whether a player graphic is lit at visible pixel
// x, given its position, 8-bit graphic byte, NUSIZ copy/stretch selector
// and reflection flag.
func playerPixelOn(x, pos int, grp uint8, nusiz int, reflected bool) bool {
	if grp == 0 {
		return false
	}
	nt := nusiz & 0x07
	width := playerWidth[nt]
	stretch := playerStretch[nt]
	for _, off := range copyOffsets[nt] {
		d := mod160(x - (pos + off))
		if d < width {
			bit := d / stretch
			bitIdx := 7 - bit
			if reflected {
				bitIdx = bit
			}
			if grp&(1<<uint(bitIdx)) != 0 {
				return true
			}
		}
	}
	return false
}

// missilePixelOn reports whether a missile is lit at visible pixel x,
// sharing its parent player's NUSIZ copy offsets but with its own width.
func missilePixelOn(x, pos, nusiz, size int) bool {
	nt := nusiz & 0x07
	for _, off := range copyOffsets[nt] {
		d := mod160(x - (pos + off))
		if d < size {
			return true
		}
	}
	return false
}

// ballPixelOn reports whether the ball is lit at visible pixel x.
func ballPixelOn(x, pos, size int) bool {
	return mod160(x-pos) < size
}

func mod160(v int) int {
	v %= visiblePixels
	if v < 0 {
		v += visiblePixels
	}
	return v
}

// hmoveThreshold turns the upper nibble of an HMxx register — a two's
// complement motion value of -8..+7 — into the 0..15 unsigned comparison
// threshold HMOVE's 16-tick countdown checks each object against.
func hmoveThreshold(v uint8) int {
	return int((v>>4)&0x0f) ^ 8
}
