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

package riot_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/hardware/riot"
)

type fakeStick struct{ swcha uint8 }

func (f fakeStick) SWCHA() uint8 { return f.swcha }

type fakePanel struct{ swchb uint8 }

func (f fakePanel) SWCHB() uint8 { return f.swchb }

func TestRAMReadWrite(t *testing.T) {
	r := riot.NewRIOT(nil, nil)

	if err := r.Write(0x0050, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Read(0x0050)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x42 {
		t.Fatalf("got %#02x, wanted %#02x", got, 0x42)
	}

	// the RIOT only has 128 bytes, so it mirrors at the next power of two
	got, err = r.Read(0x00d0)
	if err != nil || got != 0x42 {
		t.Fatalf("got (%#02x, %v), wanted (0x42, nil) from RAM mirror", got, err)
	}
}

func TestSWCHADefaultsToAllInput(t *testing.T) {
	r := riot.NewRIOT(fakeStick{swcha: 0x0f}, nil)

	got, err := r.Read(0x0280)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x0f {
		t.Fatalf("got %#02x, wanted %#02x", got, 0x0f)
	}
}

func TestSWCHAOutputOverridesInput(t *testing.T) {
	r := riot.NewRIOT(fakeStick{swcha: 0xff}, nil)

	// configure all 8 bits as output, then write a value the peripheral
	// would never drive
	if err := r.Write(0x0281, 0xff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Write(0x0280, 0x55); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Read(0x0280)
	if err != nil || got != 0x55 {
		t.Fatalf("got (%#02x, %v), wanted (0x55, nil)", got, err)
	}
}

func TestSWCHBConsoleSwitches(t *testing.T) {
	r := riot.NewRIOT(nil, fakePanel{swchb: 0xf6}) // reset + select pulled low

	got, err := r.Read(0x0282)
	if err != nil || got != 0xf6 {
		t.Fatalf("got (%#02x, %v), wanted (0xf6, nil)", got, err)
	}
}

func TestTimerCountsDownAtSelectedDivider(t *testing.T) {
	r := riot.NewRIOT(nil, nil)

	// TIM8T: divider of 8, addr&0x04 and addr&0x10 set, addr&0x03==1
	if err := r.Write(0x0295, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Read(0x0284)
	if err != nil || got != 10 {
		t.Fatalf("got (%d, %v), wanted (10, nil) immediately after write", got, err)
	}

	for i := 0; i < 8; i++ {
		r.Step()
	}

	got, err = r.Read(0x0284)
	if err != nil || got != 9 {
		t.Fatalf("got (%d, %v), wanted (9, nil) after 8 steps", got, err)
	}
}

func TestTimerUnderflowSetsInterruptAndFreeRuns(t *testing.T) {
	r := riot.NewRIOT(nil, nil)

	// TIM1T: divider of 1, addr&0x03==0
	if err := r.Write(0x0294, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Step() // value counts 1 -> 0

	flag, err := r.Read(0x0285)
	if err != nil || flag != 0x00 {
		t.Fatalf("got (%#02x, %v), wanted (0x00, nil) before underflow", flag, err)
	}

	r.Step() // value underflows, wraps to 0xff

	flag, err = r.Read(0x0285)
	if err != nil || flag != 0x80 {
		t.Fatalf("got (%#02x, %v), wanted (0x80, nil) after underflow", flag, err)
	}

	value, err := r.Read(0x0284)
	if err != nil || value != 0xff {
		t.Fatalf("got (%d, %v), wanted (255, nil) after underflow", value, err)
	}
}

func TestPeekDoesNotDisturbState(t *testing.T) {
	r := riot.NewRIOT(nil, nil)

	if err := r.Write(0x0050, 0x11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Peek(0x0050); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Read(0x0050)
	if err != nil || got != 0x11 {
		t.Fatalf("got (%#02x, %v), wanted (0x11, nil) unchanged after peek", got, err)
	}
}

func TestPokeTimerRegisterIsUnsupported(t *testing.T) {
	r := riot.NewRIOT(nil, nil)

	if err := r.Poke(0x0284, 0x01); err == nil {
		t.Fatalf("expected error poking the timer region")
	}
}
