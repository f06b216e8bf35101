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

package pokey

// Register offsets, decoded from the low nibble of the cartridge-mapped
// address (0x4000 or 0x0450 depending on the mapper that installed this
// chip).
const (
	regAUDF1  = 0x00
	regAUDC1  = 0x01
	regAUDF2  = 0x02
	regAUDC2  = 0x03
	regAUDF3  = 0x04
	regAUDC3  = 0x05
	regAUDF4  = 0x06
	regAUDC4  = 0x07
	regAUDCTL = 0x08
	regSTIMER = 0x09
	regSKCTL  = 0x0f
)

// AUDCTL bit masks.
const (
	audctlPoly9   = 0x80
	audctlCh1Fast = 0x40
	audctlCh3Fast = 0x20
	audctlLink12  = 0x10
	audctlLink34  = 0x08
	audctlHPFCh1  = 0x04
	audctlHPFCh2  = 0x02
	audctlClk15   = 0x01
)

// AUDC bit masks.
const (
	audcPoly5     = 0x80
	audcPoly4Gate = 0x40
	audcPureTone  = 0x20
	audcVolOnly   = 0x10
	audcVolMask   = 0x0f
)

const (
	div64kHz  = 28
	div15kHz  = 114
	div179MHz = 1

	numChannels = 4
)
