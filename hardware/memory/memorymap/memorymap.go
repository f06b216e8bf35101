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

// Package memorymap describes System-A's page-granularity address decode:
// the 6507's 13 address lines are incompletely decoded, so TIA, RIOT and RAM
// are all mirrored repeatedly through the bottom 4K, with the cartridge
// occupying the top half.
package memorymap

import (
	"fmt"
	"strings"
)

const pageSize = 0x80
const lowMemSize = 0x1000

// Summary renders the page decode table for the bottom 4K of address space,
// followed by the cartridge's range, in ascending address order.
func Summary() string {
	b := strings.Builder{}

	for base := 0; base < lowMemSize; base += pageSize {
		idx := (base / pageSize) % 16

		var label string
		switch {
		case idx%2 == 0:
			label = "TIA"
		case idx&4 == 0:
			label = "RAM"
		default:
			label = "RIOT"
		}

		fmt.Fprintf(&b, "%04x -> %04x\t%s\n", base, base+pageSize-1, label)
	}

	fmt.Fprintf(&b, "%04x -> %04x\tCartridge\n", lowMemSize, 0x1fff)

	return b.String()
}
