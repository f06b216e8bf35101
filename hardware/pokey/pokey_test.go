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

package pokey_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/hardware/pokey"
)

func TestVolumeOnlyModeOutputsDirectlyWithoutClocking(t *testing.T) {
	p := pokey.NewPokey()

	if err := p.Write(0x01, 0x10|0x0a); err != nil { // AUDC1: vol-only, volume 10
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Sample(); got != 10 {
		t.Fatalf("got sample %d, wanted 10 with no ticking at all", got)
	}
}

func TestSTIMERReloadsEveryChannelCounter(t *testing.T) {
	p := pokey.NewPokey()

	_ = p.Write(0x00, 5) // AUDF1
	_ = p.Write(0x09, 0) // STIMER

	// A single tick should never be enough to overflow a counter just
	// reloaded to divNMax = AUDF1+1 = 6.
	p.TickCPUCycle()
	if got := p.Sample(); got != 0 {
		t.Fatalf("got sample %d immediately after STIMER reload, wanted 0", got)
	}
}

func TestPureToneChannelTogglesOutputOnEveryDividerExpiry(t *testing.T) {
	p := pokey.NewPokey()

	_ = p.Write(0x00, 0)                // AUDF1: divider period 1 (fastest)
	_ = p.Write(0x08, 0x01)              // AUDCTL: 15kHz base clock, divider 114
	_ = p.Write(0x01, 0x20|0x0f)         // AUDC1: pure tone, max volume

	found := false
	for i := 0; i < 114*4; i++ {
		p.TickCPUCycle()
		if p.Sample() != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected channel 1 to produce a non-zero sample within a few base-clock periods")
	}
}

func TestSKCTLIsReadableAndDefaultsToPowerOnValue(t *testing.T) {
	p := pokey.NewPokey()

	got, err := p.Read(0x0f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x03 {
		t.Fatalf("got SKCTL %#02x, wanted power-on default 0x03", got)
	}

	_ = p.Write(0x0f, 0x07)
	got, err = p.Read(0x0f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x07 {
		t.Fatalf("got SKCTL %#02x after write, wanted 0x07", got)
	}
}

func TestLinkedChannelsCombineTwoAUDFRegistersIntoA16BitPeriod(t *testing.T) {
	p := pokey.NewPokey()

	_ = p.Write(0x08, 0x10) // AUDCTL: link channels 1+2
	_ = p.Write(0x00, 0x02) // AUDF1 (low byte of the combined period)
	_ = p.Write(0x02, 0x01) // AUDF2 (high byte)

	// Nothing here asserts on Sample() directly (channel 1's output is
	// folded into channel 2 and never itself emitted); the test exists to
	// confirm Write/TickCPUCycle never panics with linking enabled and
	// channel 1's own divNMax forced to zero.
	for i := 0; i < 2000; i++ {
		p.TickCPUCycle()
	}
}
