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

// generatePoly builds a maximal-length LFSR sequence of 2^bits - 1 terms,
// seeded all-ones, tapping bits tapA and tapB for feedback.
func generatePoly(bits, tapA, tapB uint) []uint8 {
	size := (1 << bits) - 1
	reg := uint((1 << bits) - 1)
	seq := make([]uint8, size)
	for i := 0; i < size; i++ {
		seq[i] = uint8(reg & 1)
		feedback := ((reg >> tapA) ^ (reg >> tapB)) & 1
		reg = (reg >> 1) | (feedback << (bits - 1))
	}
	return seq
}

var (
	poly4  = generatePoly(4, 0, 1)
	poly5  = generatePoly(5, 0, 2)
	poly9  = generatePoly(9, 0, 4)
	poly17 = generatePoly(17, 0, 5)
)
