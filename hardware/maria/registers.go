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

package maria

// Register offsets within the 64-byte register block, decoded from
// addr & 0x3f. Palette colour registers and the handful of registers
// with no special behaviour (DPPH/DPPL, CHARBASE) fall straight
// through to the backing array; everything else gets bespoke peek/poke
// handling (writes to OFFSET are ignored).
const (
	regINPTCTRL = 0x01
	regINPT0    = 0x08
	regINPT1    = 0x09
	regINPT2    = 0x0a
	regINPT3    = 0x0b
	regINPT4    = 0x0c
	regINPT5    = 0x0d
	regAUDC0    = 0x15
	regAUDC1    = 0x16
	regAUDF0    = 0x17
	regAUDF1    = 0x18
	regAUDV0    = 0x19
	regAUDV1    = 0x1a
	regBACKGRND = 0x20
	regWSYNC    = 0x24
	regMSTAT    = 0x28
	regDPPH     = 0x2c
	regDPPL     = 0x30
	regCHARBASE = 0x34
	regOFFSET   = 0x38
	regCTRL     = 0x3c
)

// CTRL register bit masks.
const (
	ctrlColorKill = 0x80
	ctrlDMAMask   = 0x60
	ctrlDMAOn     = 0x40
	ctrlCWidth    = 0x10
	ctrlBCntl     = 0x08
	ctrlKangaroo  = 0x04
	ctrlRMMask    = 0x03
)

// paletteAddrs is the set of background and per-palette colour registers,
// which all just store whatever was last written.
var paletteAddrs = [...]bool{
	regBACKGRND: true,
	0x21:        true, 0x22: true, 0x23: true,
	0x25: true, 0x26: true, 0x27: true,
	0x29: true, 0x2a: true, 0x2b: true,
	0x2d: true, 0x2e: true, 0x2f: true,
	0x31: true, 0x32: true, 0x33: true,
	0x35: true, 0x36: true, 0x37: true,
	0x39: true, 0x3a: true, 0x3b: true,
	0x3d: true, 0x3e: true, 0x3f: true,
}

// audioAddrs is the set of register offsets forwarded verbatim to the
// audio sink (the legacy TIA, retained purely for its sound side).
var audioAddrs = [...]bool{
	regAUDC0: true, regAUDC1: true,
	regAUDF0: true, regAUDF1: true,
	regAUDV0: true, regAUDV1: true,
}

// clocksPerScanline is the number of CPU cycles Maria derives a scanline
// boundary from: 114 colour clocks at the 7800's pixel rate, matching the
// 4x relationship between the 6502C's cycle and Maria's colour clock.
const clocksPerScanline = 114

// firstVisibleScanline is constant across both television standards;
// only the last visible scanline differs, by the extra PAL lines.
const firstVisibleScanline = 11
