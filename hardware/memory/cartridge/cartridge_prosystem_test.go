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

package cartridge

import "testing"

func TestFlat7832(t *testing.T) {
	data := make([]byte, 32768)
	data[0] = 0x7e

	cart, err := newFlat7832(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cart.read(0x8000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x7e {
		t.Fatalf("got %#02x, wanted %#02x", got, 0x7e)
	}

	if _, err := cart.read(0x4000); err == nil {
		t.Fatalf("expected error reading below a 32k flat cart's origin")
	}
}

func TestAbsolute78BankSwitch(t *testing.T) {
	data := make([]byte, 16384*4)
	data[16384*1] = 0x01   // mid bank 0
	data[16384*2] = 0x02   // mid bank 1
	data[16384*3] = 0x03   // high (fixed)

	cart, err := newAbsolute78(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cart.read(0x8000)
	if err != nil || got != 0x01 {
		t.Fatalf("got (%#02x, %v), wanted (0x01, nil)", got, err)
	}

	if err := cart.write(0x8000, 0x02); err != nil {
		t.Fatalf("unexpected error selecting bank: %v", err)
	}

	got, err = cart.read(0x8000)
	if err != nil || got != 0x02 {
		t.Fatalf("got (%#02x, %v), wanted (0x02, nil) after bank switch", got, err)
	}

	got, err = cart.read(0xc000)
	if err != nil || got != 0x03 {
		t.Fatalf("got (%#02x, %v), wanted (0x03, nil) from fixed high bank", got, err)
	}
}

func TestActivision78BankSwitch(t *testing.T) {
	data := make([]byte, 16384*8)
	for bank := 0; bank < 8; bank++ {
		data[16384*bank] = byte(bank)
	}

	cart, err := newActivision78(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cart.write(0xff85, 0x00); err != nil {
		t.Fatalf("unexpected error selecting bank: %v", err)
	}

	got, err := cart.read(0xc000)
	if err != nil || got != 5 {
		t.Fatalf("got (%d, %v), wanted (5, nil) from selected high bank", got, err)
	}

	got, err = cart.read(0x8000)
	if err != nil || got != 3 {
		t.Fatalf("got (%d, %v), wanted (3, nil) from low bank (selected-2)", got, err)
	}
}

func TestSuperGame128BankSwitch(t *testing.T) {
	data := make([]byte, 16384*8)
	for bank := 0; bank < 8; bank++ {
		data[16384*bank] = byte(bank)
	}

	cart, err := newSuperGame128(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cart.write(0x8000, 0x03); err != nil {
		t.Fatalf("unexpected error selecting bank: %v", err)
	}

	got, err := cart.read(0x8000)
	if err != nil || got != 3 {
		t.Fatalf("got (%d, %v), wanted (3, nil)", got, err)
	}

	got, err = cart.read(0xc000)
	if err != nil || got != 7 {
		t.Fatalf("got (%d, %v), wanted (7, nil) from fixed last bank", got, err)
	}
}

func TestSuperGameRAMOverlay(t *testing.T) {
	data := make([]byte, 16384*8)

	cart, err := newSuperGame128RAM(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cart.(*superGame78).read(0x4000); err == nil {
		t.Fatalf("expected error reading RAM overlay region before it is enabled")
	}

	if err := cart.write(0x8000, 0x10); err != nil {
		t.Fatalf("unexpected error enabling RAM overlay: %v", err)
	}

	if err := cart.write(0x4000, 0x99); err != nil {
		t.Fatalf("unexpected error writing RAM overlay: %v", err)
	}

	got, err := cart.read(0x4000)
	if err != nil || got != 0x99 {
		t.Fatalf("got (%#02x, %v), wanted (0x99, nil) from RAM overlay", got, err)
	}
}

func TestBankswitchBoardExtraROM(t *testing.T) {
	const bankSize = 16384
	data := make([]byte, bankSize+bankSize*4)
	data[0] = 0x55 // extra low ROM

	cart, err := newBankswitchBoardExtraROM(data, "BankswitchBoard 64k + extra ROM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cart.read(0x4000)
	if err != nil || got != 0x55 {
		t.Fatalf("got (%#02x, %v), wanted (0x55, nil) from extra low ROM", got, err)
	}
}
