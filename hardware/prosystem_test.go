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

package hardware_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/cartridgeloader"
	"github.com/kessler-labs/retrocore/diagnostics"
	"github.com/kessler-labs/retrocore/hardware"
	"github.com/kessler-labs/retrocore/hardware/spec"
	"github.com/kessler-labs/retrocore/hardware/television"
)

// tight8KLoopROM builds an 8K image, mapped flat at 0xe000-0xffff by the
// "7808" cartridge format, that spins forever touching Maria's WSYNC
// register (address 0x24, reachable through its zero-page mirror) each
// pass.
func tight8KLoopROM() []byte {
	rom := make([]byte, 8192)
	for i := range rom {
		rom[i] = 0xea // NOP
	}

	rom[0] = 0x85 // STA $24 (WSYNC)
	rom[1] = 0x24

	rom[2] = 0x4c // JMP $e000
	rom[3] = 0x00
	rom[4] = 0xe0

	rom[0x1ffc] = 0x00 // reset vector low
	rom[0x1ffd] = 0xe0 // reset vector high
	rom[0x1ffe] = 0x00 // IRQ/BRK vector low
	rom[0x1fff] = 0xe0 // IRQ/BRK vector high

	return rom
}

func newTestProSystem(t *testing.T) *hardware.ProSystem {
	t.Helper()

	ld, err := cartridgeloader.NewLoaderFromData("tight-loop", tight8KLoopROM(), "7808")
	if err != nil {
		t.Fatalf("unexpected error building loader: %v", err)
	}

	tv := television.NewTelevision(320, 263, 0)
	ps := hardware.NewProSystem(tv)
	if err := ps.Attach(ld); err != nil {
		t.Fatalf("unexpected error attaching cartridge: %v", err)
	}
	return ps
}

func TestProSystemResetVectorIsMirroredThroughToCartridgeSpace(t *testing.T) {
	ps := newTestProSystem(t)
	if got, want := ps.CPU.PC.Address(), uint16(0xe000); got != want {
		t.Fatalf("got PC %#04x after reset, wanted %#04x", got, want)
	}
}

func TestProSystemStepDrainsTheWSYNCStallAgainstThePIATimer(t *testing.T) {
	ps := newTestProSystem(t)

	// TIM1T, divider of 1: INTIM decrements once per CPU cycle. The PIA's
	// first mirror window (0x0280-0x2ff) decodes exactly like System-A's
	// RIOT mirror, so the same offsets apply.
	if err := ps.Mem.Write(0x0294, 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The instruction at the reset vector is STA WSYNC (3 cycles); Step
	// must also drain however many extra idle cycles Maria's WSYNC
	// request asked the composer to stall for, so INTIM should fall by
	// well more than 3.
	if err := ps.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intim, err := ps.Mem.Read(0x0284)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spent := 200 - int(intim); spent <= 3 {
		t.Fatalf("got INTIM spend of %d cycles, wanted more than the instruction's own 3 — WSYNC stall was not drained", spent)
	}

	if got := ps.Maria.TakeWSYNCCycles(); got != 0 {
		t.Fatalf("got %d pending WSYNC cycles after Step, wanted 0 (already drained)", got)
	}
}

func TestProSystemRunFrameCapturesInputBeforeSteppingAndCompletesOnKeepGoingFalse(t *testing.T) {
	ps := newTestProSystem(t)
	if err := ps.Input.RaiseInput(0, spec.ActionTrigger, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	instructions := 0
	err := ps.RunFrame(func() bool {
		instructions++
		return instructions < 500
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if instructions != 500 {
		t.Fatalf("got %d instructions, wanted exactly 500", instructions)
	}

	if !ps.Input.ActionState(0, spec.ActionTrigger) {
		t.Fatalf("expected captured input to retain the staged action")
	}
}

func TestProSystemFrameSelfTerminatesOnScanlineCountAloneWithNoCallerInput(t *testing.T) {
	ps := newTestProSystem(t)

	if err := ps.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ps.Maria.Scanline(), 262; got != want {
		t.Fatalf("got scanline %d after Frame, wanted %d (last scanline of a 263-line frame)", got, want)
	}
}

func TestProSystemEjectedCartridgeReadsAsStubBeforeAttach(t *testing.T) {
	tv := television.NewTelevision(320, 263, 0)
	ps := hardware.NewProSystem(tv)

	if _, err := ps.Cart.Read(0x4000); err == nil {
		t.Fatalf("expected an error reading an ejected cartridge")
	}
}

func TestProSystemAttachedDiagnosticsReceivesOneFrameStatPerRunFrame(t *testing.T) {
	ps := newTestProSystem(t)

	diag := diagnostics.New("127.0.0.1:0")
	ps.AttachDiagnostics(diag)

	instructions := 0
	err := ps.RunFrame(func() bool {
		instructions++
		return instructions < 50
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := diag.Pending(); got != 1 {
		t.Fatalf("got %d pending frame stats after one RunFrame, wanted 1", got)
	}
}

// jmpToSelfROM builds a flat ROM of size bytes that immediately jumps to
// its own origin, with marker set at offset 0xf00 so a test can tell two
// otherwise-identical images apart without disturbing the reset loop.
func jmpToSelfROM(size int, origin uint16, marker uint8) []byte {
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = 0xea
	}

	rom[0] = 0x4c // JMP origin
	rom[1] = uint8(origin)
	rom[2] = uint8(origin >> 8)

	rom[0xf00] = marker

	vec := len(rom) - 4
	rom[vec] = uint8(origin)
	rom[vec+1] = uint8(origin >> 8)
	rom[vec+2] = uint8(origin)
	rom[vec+3] = uint8(origin >> 8)

	return rom
}

func TestProSystemBIOSOverlaySwapsOutWhenINPTCTRLDisablesIt(t *testing.T) {
	tv := television.NewTelevision(320, 263, 0)
	ps := hardware.NewProSystem(tv)

	bios := jmpToSelfROM(0x4000, 0xc000, 0xaa)
	if err := ps.AttachBIOS(bios); err != nil {
		t.Fatalf("unexpected error attaching bios: %v", err)
	}

	cart := jmpToSelfROM(0x4000, 0xc000, 0xbb)
	ld, err := cartridgeloader.NewLoaderFromData("test-cart", cart, "7816")
	if err != nil {
		t.Fatalf("unexpected error building loader: %v", err)
	}
	if err := ps.Attach(ld); err != nil {
		t.Fatalf("unexpected error attaching cartridge: %v", err)
	}

	before, err := ps.Mem.Read(0xcf00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before != 0xaa {
		t.Fatalf("got marker byte %#02x before disabling the BIOS, wanted 0xaa (BIOS should be mapped by default)", before)
	}

	// INPTCTRL bit 2: disable BIOS, swap in the cartridge. Address 0x0001
	// reaches Maria through its zero-page mirror.
	if err := ps.Mem.Write(0x0001, 0x04); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ps.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := ps.Mem.Read(0xcf00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != 0xbb {
		t.Fatalf("got marker byte %#02x after disabling the BIOS, wanted 0xbb (cartridge should now be mapped)", after)
	}
}

func TestNVRAMPersistsThroughResetViaLoadCallback(t *testing.T) {
	ps := newTestProSystem(t)

	saved := make([]byte, 0)
	onLoad := func() []byte {
		if len(saved) == 0 {
			return nil
		}
		return saved
	}
	onSave := func(data []byte) {
		saved = data
	}

	if err := ps.AttachNVRAM(onLoad, onSave); err != nil {
		t.Fatalf("unexpected error attaching NVRAM: %v", err)
	}

	if err := ps.Mem.Write(0x1000, 0x7e); err != nil {
		t.Fatalf("unexpected error writing NVRAM: %v", err)
	}
	ps.NVRAM.Save()

	if err := ps.Reset(); err != nil {
		t.Fatalf("unexpected error resetting: %v", err)
	}

	got, err := ps.Mem.Read(0x1000)
	if err != nil {
		t.Fatalf("unexpected error reading NVRAM: %v", err)
	}
	if got != 0x7e {
		t.Fatalf("got %#02x reading NVRAM after reset, wanted 0x7e (saved contents should survive reset via the load callback)", got)
	}
}

func TestNVRAMWithoutSaveResetsToZero(t *testing.T) {
	ps := newTestProSystem(t)

	if err := ps.AttachNVRAM(nil, nil); err != nil {
		t.Fatalf("unexpected error attaching NVRAM: %v", err)
	}

	if err := ps.Mem.Write(0x1000, 0x7e); err != nil {
		t.Fatalf("unexpected error writing NVRAM: %v", err)
	}
	if err := ps.Reset(); err != nil {
		t.Fatalf("unexpected error resetting: %v", err)
	}

	got, err := ps.Mem.Read(0x1000)
	if err != nil {
		t.Fatalf("unexpected error reading NVRAM: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %#02x reading NVRAM after reset with no load callback, wanted 0", got)
	}
}
