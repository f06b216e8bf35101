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

package spec

// CartType names a cartridge's bankswitching scheme, as recorded in a ROM
// file's header or database entry. It is a closed tag, not behaviour: the
// mapper that actually implements a scheme lives in hardware/memory/cartridge
// and is selected from the format string returned by FormatString.
type CartType int

const (
	UnknownCart CartType = iota

	// System-A (2600) schemes
	A2K
	A4K
	A8K
	A8KSuperchip
	A16K
	A16KSuperchip
	DC8K
	PB8K
	TV8K
	CBS12K
	A32K
	A32KSuperchip
	MN16K
	DPC

	// System-B (7800) schemes
	A7808
	A7816
	A7832
	A7848
	A78SG
	A78SGRAM
	A78S9
	A78S4
	A78S4RAM
	A78AB
	A78AC
	A78BB
	A78BBRAM
	A78BBROM
)

// formatStrings maps each CartType to the format tag understood by
// cartridge.Cartridge.Attach.
var formatStrings = map[CartType]string{
	A2K:            "2K",
	A4K:            "4K",
	A8K:            "F8",
	A8KSuperchip:   "F8+SC",
	A16K:           "F6",
	A16KSuperchip:  "F6+SC",
	DC8K:           "DPC",
	PB8K:           "E0",
	TV8K:           "3F",
	CBS12K:         "FA",
	A32K:           "F4",
	A32KSuperchip:  "F4+SC",
	MN16K:          "E7",
	DPC:            "DPC",
	A7808:          "7808",
	A7816:          "7816",
	A7832:          "7832",
	A7848:          "7848",
	A78SG:          "SUPERGAME",
	A78SGRAM:       "SUPERGAME+RAM",
	A78S9:          "SUPERGAME9",
	A78S4:          "SUPERGAME4",
	A78S4RAM:       "SUPERGAME4+RAM",
	A78AB:          "ABSOLUTE",
	A78AC:          "ACTIVISION",
	A78BB:          "BANKSWITCHBOARD",
	A78BBRAM:       "BANKSWITCHBOARD+RAM",
	A78BBROM:       "BANKSWITCHBOARD+ROM",
}

// FormatString returns the format tag cartridge.Cartridge.Attach expects
// for this scheme, or "" for UnknownCart (which fingerprinting handles by
// guessing from ROM size instead).
func (ct CartType) FormatString() string {
	return formatStrings[ct]
}
