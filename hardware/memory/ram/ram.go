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

// Package ram implements a flat, mirrored block of read/write memory.
// System-A has no device like this of its own (RIOT's 128 bytes are part
// of that chip); System-B's composer uses two of these, one for each of
// its 2K work-RAM blocks.
package ram

// RAM is a block of size bytes, addressed modulo size so that a composer
// can map it across an address range wider than the physical chip and
// get the documented mirroring for free.
type RAM struct {
	data []uint8
}

// New allocates a RAM of size bytes, zeroed.
func New(size int) *RAM {
	return &RAM{data: make([]uint8, size)}
}

// Reset zeroes every byte.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Read implements bus.Device.
func (r *RAM) Read(addr uint16) (uint8, error) {
	return r.data[int(addr)%len(r.data)], nil
}

// Write implements bus.Device.
func (r *RAM) Write(addr uint16, data uint8) error {
	r.data[int(addr)%len(r.data)] = data
	return nil
}
