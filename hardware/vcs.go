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

package hardware

import (
	"github.com/kessler-labs/retrocore/cartridgeloader"
	"github.com/kessler-labs/retrocore/diagnostics"
	"github.com/kessler-labs/retrocore/errors"
	"github.com/kessler-labs/retrocore/hardware/cpu"
	"github.com/kessler-labs/retrocore/hardware/input"
	"github.com/kessler-labs/retrocore/hardware/memory/bus"
	"github.com/kessler-labs/retrocore/hardware/memory/cartridge"
	"github.com/kessler-labs/retrocore/hardware/memory/cpubus"
	"github.com/kessler-labs/retrocore/hardware/riot"
	"github.com/kessler-labs/retrocore/hardware/television"
	"github.com/kessler-labs/retrocore/hardware/tia"
	"github.com/kessler-labs/retrocore/random"
)

// vcsAddrBits is the width of the 6507's address bus: 13 lines, giving an
// 8K address space: the mirrored chips in the bottom 4K and the cartridge
// in the top 4K.
const vcsAddrBits = 13

// vcsPageBits is the page granularity the address decode mirrors TIA, RAM
// and RIOT at, matching the hardware's incomplete decode (see
// memorymap.Summary).
const vcsPageBits = 7

// vcsPageSize is 1<<vcsPageBits, in address units.
const vcsPageSize = 1 << vcsPageBits

// vcsLowMem is the size of the mirrored region below the cartridge.
const vcsLowMem = 0x1000

// VCS is the root of a System-A emulation: it owns the address space and
// every chip wired onto it, and exposes a CPU-instruction-granularity
// frame loop. From here the emulation can be run continuously or stepped
// one instruction at a time.
type VCS struct {
	Mem   *bus.AddressSpace
	TV    *television.Television
	CPU   *cpu.CPU
	RIOT  *riot.RIOT
	TIA   *tia.TIA
	Cart  *cartridge.Cartridge
	Input *input.State

	ports *vcsPorts

	diag      *diagnostics.Server
	frameNum  int
	cpuCycles int
	wsyncTick int
}

// NewVCS builds a complete, wired-together System-A machine rendering
// into tv. The cartridge slot starts ejected; call Attach to load a ROM.
func NewVCS(tv *television.Television) *VCS {
	vcs := &VCS{
		Mem:   bus.NewAddressSpace(vcsAddrBits, vcsPageBits),
		TV:    tv,
		RIOT:  riot.NewRIOT(nil, nil),
		TIA:   tia.NewTIA(tv),
		Cart:  cartridge.NewCartridge(),
		Input: input.NewState(),
	}

	vcs.ports = newVCSPorts(vcs.Input)
	vcs.RIOT.AttachPeripheral(vcs.ports)
	vcs.RIOT.AttachPanel(vcs.ports)
	vcs.TIA.AttachInput(vcs.Input)

	vcs.CPU = cpu.NewCPU(random.NewRandom(0), nil, vcs.Mem)

	vcs.mapAddressSpace()

	return vcs
}

// mapAddressSpace installs the incomplete page decode of the bottom 4K
// (TIA mirrored on every even page; RIOT, whose own address decode covers
// both its 128 bytes of RAM and its I/O/timer registers, on every odd
// one; see memorymap.Summary) and the cartridge's 4K window above it.
func (vcs *VCS) mapAddressSpace() {
	for base := 0; base < vcsLowMem; base += vcsPageSize {
		idx := (base / vcsPageSize) % 16

		dev := bus.Device(vcs.RIOT)
		if idx%2 == 0 {
			dev = vcs.TIA
		}

		if err := vcs.Mem.Map(uint32(base), vcsPageSize, dev); err != nil {
			panic(err)
		}
	}

	if err := vcs.Mem.Map(vcsLowMem, 0x1000, vcs.Cart); err != nil {
		panic(err)
	}
}

// Attach loads cartload into the cartridge slot and resets the machine,
// ready to begin execution from the new ROM's reset vector.
func (vcs *VCS) Attach(cartload cartridgeloader.Loader) error {
	if err := vcs.Cart.Attach(cartload); err != nil {
		return errors.Errorf(errors.PlayError, err)
	}
	return vcs.Reset()
}

// Reset returns every chip to its power-on state and loads the program
// counter from the cartridge's reset vector.
func (vcs *VCS) Reset() error {
	vcs.Cart.Initialise()
	vcs.RIOT.Reset()
	vcs.TIA.Reset()
	vcs.CPU.Reset()

	if err := vcs.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return errors.Errorf(errors.PlayError, err)
	}
	return nil
}

// cycleCallback is invoked once per CPU cycle while an instruction
// executes, stepping every chip that advances on the system clock: three
// colour clocks per cycle for TIA, and one tick for RIOT's interval timer.
// A WSYNC write leaves colour clocks banked in the TIA for TakeWSYNCCycles
// to drain as extra stalled cycles once the instruction completes.
func (vcs *VCS) cycleCallback() error {
	vcs.TIA.Step(3)
	vcs.RIOT.Step()
	return nil
}

// AttachDiagnostics wires a diagnostics.Server to receive one FrameStat
// per completed frame. Never called by the engine itself; a host wanting
// the performance dashboard builds the server and attaches it before
// running frames.
func (vcs *VCS) AttachDiagnostics(d *diagnostics.Server) {
	vcs.diag = d
}

// Step executes a single CPU instruction, draining any WSYNC stall the
// instruction incurred by stepping the idle cycles it banked.
func (vcs *VCS) Step() error {
	if err := vcs.CPU.ExecuteInstruction(vcs.cycleCallback); err != nil {
		return errors.Errorf(errors.PlayError, err)
	}
	vcs.cpuCycles += vcs.CPU.LastResult.Cycles

	for n := vcs.TIA.TakeWSYNCCycles(); n > 0; n-- {
		vcs.wsyncTick++
		if err := vcs.cycleCallback(); err != nil {
			return err
		}
	}
	return nil
}

// FrameBegin captures the current input state and starts a new television
// frame.
func (vcs *VCS) FrameBegin() {
	vcs.Input.Capture()
	vcs.TV.FrameBegin()
	vcs.TIA.NewFrame()
	vcs.cpuCycles = 0
	vcs.wsyncTick = 0
}

// FrameEnd flushes any unrendered colour clocks, completes the television
// frame, and, if a diagnostics.Server is attached, posts this frame's
// cycle accounting to it.
func (vcs *VCS) FrameEnd() {
	vcs.TIA.Flush()
	vcs.TV.FrameEnd()

	if vcs.diag != nil {
		vcs.frameNum++
		vcs.diag.Post(diagnostics.FrameStat{
			Frame:       vcs.frameNum,
			CPUCycles:   vcs.cpuCycles,
			WSYNCCycles: vcs.wsyncTick,
		})
	}
}

// Frame runs the machine for exactly one video frame, with no input beyond
// the machine's own state: it steps instructions until TIA's colour-clock
// cursor reaches the television's last scanline, the same boundary a real
// set would recognise from the VSYNC pulses a ROM emits on its own
// schedule.
func (vcs *VCS) Frame() error {
	vcs.FrameBegin()
	defer vcs.FrameEnd()

	last := vcs.TV.FrameBuffer.Scanlines - 1
	for vcs.TIA.Scanline() < last {
		if err := vcs.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrame is a debugger convenience built on top of Frame: keepGoing is
// consulted after every instruction instead of the scanline count, letting
// a caller stop a frame early (a breakpoint, say) or run past where Frame
// itself would normally return.
func (vcs *VCS) RunFrame(keepGoing func() bool) error {
	vcs.FrameBegin()
	defer vcs.FrameEnd()

	for keepGoing() {
		if err := vcs.Step(); err != nil {
			return err
		}
	}
	return nil
}
