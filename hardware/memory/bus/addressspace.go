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

package bus

import (
	"github.com/kessler-labs/retrocore/errors"
)

// Device is anything that can be mapped into an AddressSpace page: the
// CPU's view of cartridges, the I/O timer chip, and the video/display
// chips all satisfy this through their own Read/Write methods.
type Device interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
}

// AddressSpace routes CPU accesses to whichever Device is mapped at
// page granularity, optionally fans reads and writes out to a single
// snooping device, and latches the last byte observed on the bus. Its
// width is a construction parameter: 13 bits for System-A, 16 bits for
// System-B.
type AddressSpace struct {
	addrBits int
	pageBits int
	pages    []Device

	snooper Device

	lastValue uint8
}

// NewAddressSpace builds an AddressSpace of addrBits address lines, paged
// at a granularity of pageBits bits. Every page starts unmapped (reads as
// zero, writes discarded).
func NewAddressSpace(addrBits, pageBits int) *AddressSpace {
	return &AddressSpace{
		addrBits: addrBits,
		pageBits: pageBits,
		pages:    make([]Device, 1<<uint(addrBits-pageBits)),
	}
}

// PageCount returns the number of page slots, always (1<<addrBits)/(1<<pageBits).
func (as *AddressSpace) PageCount() int {
	return len(as.pages)
}

// Map installs device at every page in [base, base+length). length must be
// a multiple of the page size; a later Map call covering a page overwrites
// whatever was mapped there before, which is how fine-grained mirrors are
// expressed (many small ranges mapped individually).
func (as *AddressSpace) Map(base, length uint32, device Device) error {
	pageSize := uint32(1) << uint(as.pageBits)
	if length%pageSize != 0 {
		return errors.Errorf(errors.MemoryBusError, "map length is not a multiple of the page size")
	}

	for a := base; a < base+length; a += pageSize {
		idx := a >> uint(as.pageBits)
		if int(idx) >= len(as.pages) {
			return errors.Errorf(errors.MemoryBusError, "map address out of range")
		}
		as.pages[idx] = device
	}
	return nil
}

// InstallSnooper attaches device as the address space's single snooper,
// replacing whatever was installed before. Passing nil removes it.
func (as *AddressSpace) InstallSnooper(device Device) {
	as.snooper = device
}

// mirror masks addr down to addrBits wide. The 6507 used by System-A only
// brings 13 address lines out of the package, so any address above 0x1fff
// a program presents (the interrupt vectors at 0xfffa-0xffff, most
// famously) actually lands on whichever page those low 13 bits decode to
// — on real hardware because the missing lines simply aren't wired to
// anything, here because every access is routed through this mask first.
func (as *AddressSpace) mirror(addr uint16) uint16 {
	return addr & uint16((1<<uint(as.addrBits))-1)
}

func (as *AddressSpace) page(addr uint16) Device {
	idx := int(addr) >> uint(as.pageBits)
	if idx >= len(as.pages) {
		return nil
	}
	return as.pages[idx]
}

// Read implements bus.CPUBus. An unmapped page reads as zero. When a
// snooper is installed it is also read, for its side effects only — its
// return value is discarded in favour of the primary device's.
func (as *AddressSpace) Read(addr uint16) (uint8, error) {
	addr = as.mirror(addr)

	var value uint8

	if dev := as.page(addr); dev != nil {
		v, err := dev.Read(addr)
		if err != nil {
			return 0, err
		}
		value = v
	}

	if as.snooper != nil {
		_, _ = as.snooper.Read(addr)
	}

	as.lastValue = value
	return value, nil
}

// Write implements bus.CPUBus. An unmapped page discards the write. When a
// snooper is installed it receives every write in addition to the primary
// device.
func (as *AddressSpace) Write(addr uint16, data uint8) error {
	addr = as.mirror(addr)

	if dev := as.page(addr); dev != nil {
		if err := dev.Write(addr, data); err != nil {
			return err
		}
	}

	if as.snooper != nil {
		_ = as.snooper.Write(addr, data)
	}

	as.lastValue = data
	return nil
}

// BusValue returns the last byte observed on the bus, updated by every
// read and every write. Cartridges that snoop the data bus (rather than a
// dedicated address) sample this latch.
func (as *AddressSpace) BusValue() uint8 {
	return as.lastValue
}
