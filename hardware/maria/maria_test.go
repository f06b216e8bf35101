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

package maria_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/hardware/maria"
	"github.com/kessler-labs/retrocore/hardware/spec"
)

// fakeDMABus is a trivial address space a test wires Maria's DMA reads
// through: any address not explicitly set reads as zero, the same way
// bus.AddressSpace treats an unmapped page.
type fakeDMABus map[uint16]uint8

func (f fakeDMABus) Read(addr uint16) (uint8, error) { return f[addr], nil }

type fakeAudioSink struct {
	addr uint16
	data uint8
}

func (f *fakeAudioSink) Write(addr uint16, data uint8) error {
	f.addr = addr
	f.data = data
	return nil
}

type fakeInput struct {
	jack       spec.Controller
	triggered  map[spec.ControllerAction]bool
	lgScanline int
	lgHpos     int
}

func (f *fakeInput) Jack(player int) spec.Controller { return f.jack }

func (f *fakeInput) ActionState(player int, action spec.ControllerAction) bool {
	return f.triggered[action]
}

func (f *fakeInput) LightGun(player int) (scanline, hpos int) {
	return f.lgScanline, f.lgHpos
}

// Register offsets, mirrored from registers.go since they are
// unexported.
const (
	regINPTCTRL = 0x01
	regINPT0    = 0x08
	regAUDC0    = 0x15
	regBACKGRND = 0x20
	regWSYNC    = 0x24
	regDPPH     = 0x2c
	regDPPL     = 0x30
	regCTRL     = 0x3c
)

func TestMariaRegisterWriteReadRoundTrip(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	if err := m.Write(regBACKGRND, 0x2a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := m.Read(regBACKGRND)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x2a {
		t.Fatalf("got %#02x from BACKGRND, wanted 0x2a", got)
	}
}

func TestMariaWSYNCStallAlignsToNextScanlineBoundary(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	m.NewFrame()
	m.Step(50)

	if err := m.Write(regWSYNC, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := m.TakeWSYNCCycles(), 114-50; got != want {
		t.Fatalf("got %d WSYNC stall cycles, wanted %d", got, want)
	}
	if got := m.TakeWSYNCCycles(); got != 0 {
		t.Fatalf("got %d WSYNC stall cycles on second call, wanted 0 (already drained)", got)
	}
}

func TestMariaAudioRegisterWritesForwardVerbatimToSink(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	sink := &fakeAudioSink{}
	m.AttachAudioSink(sink)

	if err := m.Write(regAUDC0, 0x05); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.addr != regAUDC0 || sink.data != 0x05 {
		t.Fatalf("got sink write (%#02x, %#02x), wanted (%#02x, 0x05)", sink.addr, sink.data, uint16(regAUDC0))
	}
}

func TestMariaINPT0ReflectsCapturedTriggerState(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	in := &fakeInput{jack: spec.Joystick, triggered: map[spec.ControllerAction]bool{
		spec.ActionTrigger: true,
	}}
	m.AttachInput(in)

	got, err := m.Read(regINPT0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x80 {
		t.Fatalf("got %#02x from INPT0 with trigger held, wanted 0x80", got)
	}

	in.triggered[spec.ActionTrigger] = false
	got, err = m.Read(regINPT0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x00 {
		t.Fatalf("got %#02x from INPT0 with trigger released, wanted 0x00", got)
	}
}

func TestMariaINPTCTRLLockBlocksFurtherWrites(t *testing.T) {
	m := maria.NewMaria(nil, 262)

	// Bit 0 locks the register against further writes.
	if err := m.Write(regINPTCTRL, 0x01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.BIOSDisabled() {
		t.Fatalf("got BIOS disabled after a lock-only write, wanted still enabled")
	}

	// This write should now be ignored entirely, including its bit 2.
	if err := m.Write(regINPTCTRL, 0x04); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.BIOSDisabled() {
		t.Fatalf("got BIOS disabled after a write that should have been locked out")
	}
}

func TestMariaBIOSDisabledReflectsINPTCTRLBit2(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	if m.BIOSDisabled() {
		t.Fatalf("got BIOS disabled at power-on, wanted enabled")
	}

	if err := m.Write(regINPTCTRL, 0x04); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.BIOSDisabled() {
		t.Fatalf("got BIOS still enabled after INPTCTRL bit 2 was set")
	}
}

func TestMariaResetClearsDMAEnabled(t *testing.T) {
	m := maria.NewMaria(nil, 262)
	if err := m.Write(regCTRL, 0x40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.DMAEnabled() {
		t.Fatalf("expected DMA to be enabled after the CTRL write")
	}

	m.Reset()
	if m.DMAEnabled() {
		t.Fatalf("got DMA still enabled after Reset, wanted disabled")
	}
}

// TestMariaDLIFlaggedDLLEntryRequestsNMIAndChargesDMACycles hand-builds a
// one-entry display list behind a fake DMA bus and steps Maria across the
// VBLANK/visible-area boundary, checking that the DLL walk both requests
// an NMI and charges the composer for the colour clocks it consumed.
func TestMariaDLIFlaggedDLLEntryRequestsNMIAndChargesDMACycles(t *testing.T) {
	bus := fakeDMABus{
		// DLL entry at 0x2000: DLI set, no holey DMA, zone offset 0,
		// pointing its DL at 0x3000.
		0x2000: 0x80,
		0x2001: 0x30,
		0x2002: 0x00,

		// DL entry at 0x3000: short (4-byte) header, width 1, palette 0,
		// hpos 0, graphic address 0x0000.
		0x3000: 0x00,
		0x3001: 0x1f,
		0x3002: 0x00,
		0x3003: 0x00,
	}

	m := maria.NewMaria(nil, 262)
	m.AttachDMABus(bus)
	m.NewFrame()

	if err := m.Write(regCTRL, 0x40); err != nil { // enable DMA
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Write(regDPPL, 0x00); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Write(regDPPH, 0x20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 11 scanlines of 114 cycles each reaches the first visible scanline
	// exactly, where DMA processing for the new line begins.
	m.Step(11 * 114)

	if !m.TakeNMIRequest() {
		t.Fatalf("expected the DLI-flagged DLL entry to request an NMI")
	}
	if got := m.TakeDMACycles(); got <= 0 {
		t.Fatalf("got %d DMA cycles charged, wanted more than 0", got)
	}
}
