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

// Package cpubus defines the memory interface seen by the CPU and the fixed
// vector addresses it reads out of cartridge space on reset and interrupt.
package cpubus

// Memory is the interface the CPU requires of whatever it is plumbed into.
// The address space behind it may be System-A's or System-B's; the CPU does
// not need to know which.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is returned by a Memory implementation when the address is
// outside of any mapped device or outside of the range the implementation is
// prepared to service.
const AddressError = "address error: %v"

// NMI is the address of the non-maskable interrupt vector.
const NMI = uint16(0xfffa)

// Reset is the address of the reset vector, read by the CPU on power-on and
// whenever the console resets.
const Reset = uint16(0xfffc)

// IRQ is the address of the maskable interrupt vector.
const IRQ = uint16(0xfffe)

// BRK is, confusingly, the same address as IRQ: a BRK instruction loads the
// program counter from the same vector as a hardware interrupt request.
const BRK = uint16(0xfffe)
