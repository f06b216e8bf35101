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

package ram

import "fmt"

// NVRAMSize is the capacity of the battery-backed RAM a System-B
// high-score-cartridge-style device carries, matching the 2 KB of the
// hardware it models.
const NVRAMSize = 0x800

// NVRAM is a battery-backed RAM block whose contents are loaded from, and
// can be saved back to, a host-supplied persistence callback. Unlike
// plain RAM, Reset overlays whatever the load callback returns after
// clearing the block: the whole point is that the console sees whatever
// was there before it was last powered off.
type NVRAM struct {
	RAM
	onLoad func() []byte
	onSave func([]byte)
}

// NewNVRAM allocates a zeroed NVRAM block. onLoad, if non-nil, is called
// once per Reset and its result (if exactly NVRAMSize bytes) replaces the
// block's contents; a nil result or wrong-sized slice leaves the block
// zeroed, matching a cartridge seen for the first time. onSave, if
// non-nil, is invoked by Save with a fresh copy of the current contents.
func NewNVRAM(onLoad func() []byte, onSave func([]byte)) *NVRAM {
	return &NVRAM{
		RAM:    RAM{data: make([]uint8, NVRAMSize)},
		onLoad: onLoad,
		onSave: onSave,
	}
}

// Reset clears the block to zero, then overlays any previously saved
// contents the onLoad callback returns.
func (n *NVRAM) Reset() {
	n.RAM.Reset()
	if n.onLoad == nil {
		return
	}
	saved := n.onLoad()
	if len(saved) != NVRAMSize {
		return
	}
	copy(n.data, saved)
}

// Save hands a copy of the current contents to the onSave callback, a
// no-op if none was supplied.
func (n *NVRAM) Save() {
	if n.onSave == nil {
		return
	}
	snapshot := make([]byte, NVRAMSize)
	copy(snapshot, n.data)
	n.onSave(snapshot)
}

// GetSnapshot returns an immutable copy of the current contents, for the
// composer's save-state accessor (§8's round-trip property).
func (n *NVRAM) GetSnapshot() []byte {
	snapshot := make([]byte, NVRAMSize)
	copy(snapshot, n.data)
	return snapshot
}

// RestoreSnapshot replaces the contents with data, which must be exactly
// NVRAMSize bytes.
func (n *NVRAM) RestoreSnapshot(data []byte) error {
	if len(data) != NVRAMSize {
		return fmt.Errorf("ram: NVRAM snapshot size mismatch: expected %d, got %d", NVRAMSize, len(data))
	}
	copy(n.data, data)
	return nil
}
