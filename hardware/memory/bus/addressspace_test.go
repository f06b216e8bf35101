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

package bus_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/hardware/memory/bus"
)

type ramDevice struct {
	data []uint8
}

func (r *ramDevice) Read(addr uint16) (uint8, error) {
	return r.data[addr&0x7f], nil
}

func (r *ramDevice) Write(addr uint16, data uint8) error {
	r.data[addr&0x7f] = data
	return nil
}

type snoop struct {
	reads, writes []uint16
}

func (s *snoop) Read(addr uint16) (uint8, error) {
	s.reads = append(s.reads, addr)
	return 0xff, nil // result is expected to be discarded by AddressSpace
}

func (s *snoop) Write(addr uint16, data uint8) error {
	s.writes = append(s.writes, addr)
	return nil
}

func TestUnmappedPageReadsZero(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)

	got, err := as.Read(0x1000)
	if err != nil || got != 0 {
		t.Fatalf("got (%#02x, %v), wanted (0x00, nil) from an unmapped page", got, err)
	}
}

func TestMapAndMirror(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	ram := &ramDevice{data: make([]uint8, 128)}

	if err := as.Map(0x0080, 0x0080, ram); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := as.Write(0x0080, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := as.Read(0x0080)
	if err != nil || got != 0x42 {
		t.Fatalf("got (%#02x, %v), wanted (0x42, nil)", got, err)
	}
}

func TestMapLengthMustBePageMultiple(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	ram := &ramDevice{data: make([]uint8, 128)}

	if err := as.Map(0x0080, 0x0040, ram); err == nil {
		t.Fatalf("expected error mapping a non-page-multiple length")
	}
}

func TestSnooperObservesEveryTransactionButDoesNotOverrideTheValue(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	ram := &ramDevice{data: make([]uint8, 128)}
	snp := &snoop{}

	if err := as.Map(0x0000, 0x2000, ram); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	as.InstallSnooper(snp)

	if err := as.Write(0x0010, 0x07); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := as.Read(0x0010)
	if err != nil || got != 0x07 {
		t.Fatalf("got (%#02x, %v), wanted (0x07, nil) — snooper must not override the primary device's value", got, err)
	}

	if len(snp.reads) != 1 || snp.reads[0] != 0x0010 {
		t.Fatalf("snooper did not observe the read: %v", snp.reads)
	}
	if len(snp.writes) != 1 || snp.writes[0] != 0x0010 {
		t.Fatalf("snooper did not observe the write: %v", snp.writes)
	}
}

func TestBusValueLatchesLastTransaction(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	ram := &ramDevice{data: make([]uint8, 128)}
	if err := as.Map(0x0000, 0x2000, ram); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := as.Write(0x0001, 0x99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := as.BusValue(); got != 0x99 {
		t.Fatalf("got %#02x, wanted 0x99 after write", got)
	}

	if _, err := as.Read(0x0002); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := as.BusValue(); got != 0x00 {
		t.Fatalf("got %#02x, wanted 0x00 after reading unwritten RAM", got)
	}
}

func TestAddressAboveAddrBitsMirrorsDownToTheDecodedRange(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	ram := &ramDevice{data: make([]uint8, 128)}

	if err := as.Map(0x1000, 0x1000, ram); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0xfffc (a reset vector) has the same low 13 bits as 0x1ffc, so a
	// 6507 with only 13 address lines wired up lands on the same page
	// either way.
	if err := as.Write(0x1ffc, 0x55); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := as.Read(0xfffc)
	if err != nil || got != 0x55 {
		t.Fatalf("got (%#02x, %v), wanted (0x55, nil) mirrored from 0x1ffc", got, err)
	}
}

func TestPageCount(t *testing.T) {
	as := bus.NewAddressSpace(13, 7)
	if got, want := as.PageCount(), (1<<13)/(1<<7); got != want {
		t.Fatalf("got %d pages, wanted %d", got, want)
	}
}
