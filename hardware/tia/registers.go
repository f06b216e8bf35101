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

// Write-side register addresses, decoded from addr & 0x3f. Read and write
// share the same 64-register address block but name different registers
// on each side, the same way the real chip's R/W line disambiguates them.
const (
	regVSYNC = 0x00
	regVBLANK = 0x01
	regWSYNC = 0x02
	regRSYNC = 0x03
	regNUSIZ0 = 0x04
	regNUSIZ1 = 0x05
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0a
	regREFP0 = 0x0b
	regREFP1 = 0x0c
	regPF0 = 0x0d
	regPF1 = 0x0e
	regPF2 = 0x0f
	regRESP0 = 0x10
	regRESP1 = 0x11
	regRESM0 = 0x12
	regRESM1 = 0x13
	regRESBL = 0x14
	regAUDC0 = 0x15
	regAUDC1 = 0x16
	regAUDF0 = 0x17
	regAUDF1 = 0x18
	regAUDV0 = 0x19
	regAUDV1 = 0x1a
	regGRP0 = 0x1b
	regGRP1 = 0x1c
	regENAM0 = 0x1d
	regENAM1 = 0x1e
	regENABL = 0x1f
	regHMP0 = 0x20
	regHMP1 = 0x21
	regHMM0 = 0x22
	regHMM1 = 0x23
	regHMBL = 0x24
	regVDELP0 = 0x25
	regVDELP1 = 0x26
	regVDELBL = 0x27
	regRESMP0 = 0x28
	regRESMP1 = 0x29
	regHMOVE = 0x2a
	regHMCLR = 0x2b
	regCXCLR = 0x2c
)

// Read-side register addresses.
const (
	regCXM0P = 0x00
	regCXM1P = 0x01
	regCXP0FB = 0x02
	regCXP1FB = 0x03
	regCXM0FB = 0x04
	regCXM1FB = 0x05
	regCXBLPF = 0x06
	regCXPPMM = 0x07
	regINPT0 = 0x08
	regINPT1 = 0x09
	regINPT2 = 0x0a
	regINPT3 = 0x0b
	regINPT4 = 0x0c
	regINPT5 = 0x0d
)

const (
	hblankClocks  = 68
	scanlineClocks = 228
	visiblePixels = 160
)
