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
	"github.com/kessler-labs/retrocore/hardware/maria"
	"github.com/kessler-labs/retrocore/hardware/memory/bus"
	"github.com/kessler-labs/retrocore/hardware/memory/cartridge"
	"github.com/kessler-labs/retrocore/hardware/memory/cpubus"
	"github.com/kessler-labs/retrocore/hardware/memory/ram"
	"github.com/kessler-labs/retrocore/hardware/pokey"
	"github.com/kessler-labs/retrocore/hardware/riot"
	"github.com/kessler-labs/retrocore/hardware/television"
	"github.com/kessler-labs/retrocore/hardware/tia"
	"github.com/kessler-labs/retrocore/random"
)

// prosystemAddrBits is the 6502C's full 16 address lines; unlike System-A,
// nothing is left undecoded.
const prosystemAddrBits = 16

// prosystemPageBits is 64-byte granularity, the finest window any device
// in the map below needs (Maria's four register mirrors).
const prosystemPageBits = 6

// nvramOrigin is the address a System-B high-score-cartridge-style
// battery-backed RAM is conventionally wired at: below the work-RAM
// chips and the cartridge's own 0x4000-0xffff window, in a range this
// composer otherwise leaves unmapped.
const nvramOrigin = 0x1000

// nvramWindow is the span nvramOrigin is mapped across; NVRAM is 2 KB
// (ram.NVRAMSize) but this is also its own natural mirror period.
const nvramWindow = ram.NVRAMSize

// pokeyCartPage is the page-aligned base of the window some System-B
// cartridges wire an onboard second sound chip into when their header
// requests "+POKEY @ 0x0450" (see spec table 4.6); Pokey itself only
// decodes the low 4 bits of an address, so mapping the whole 64-byte page
// that 0x0450 falls in reaches it correctly from any address in that
// range. The alternative location, 0x4000, falls inside cartridge space
// proper and would need the mapper itself to own the chip, which the
// cartridge package does not yet model (see DESIGN.md) — this composer
// always exposes one console-side Pokey at the fixed address instead,
// regardless of what the attached cartridge's header says it has.
const pokeyCartPage = 0x0440

// ProSystem is the root of a System-B emulation: Maria owns the display,
// a reused RIOT stands in for the 6532 PIA, two independent RAM chips
// cover the console's 4K of work RAM, and a TIA is kept wired up purely
// as an audio snoop, forwarded Maria's AUDC/AUDF/AUDV writes.
type ProSystem struct {
	Mem   *bus.AddressSpace
	TV    *television.Television
	CPU   *cpu.CPU
	Maria *maria.Maria
	PIA   *riot.RIOT
	TIA   *tia.TIA
	Pokey *pokey.Pokey
	RAM0  *ram.RAM
	RAM1  *ram.RAM
	Cart  *cartridge.Cartridge
	Input *input.State

	ports *prosystemPorts

	bios         []uint8
	biosOrigin   uint16
	biosDisabled bool

	NVRAM *ram.NVRAM

	diag      *diagnostics.Server
	frameNum  int
	cpuCycles int
	dmaTick   int
	wsyncTick int
}

// NewProSystem builds a complete, wired-together System-B machine
// rendering into tv. The cartridge slot starts ejected; call Attach to
// load a ROM, and AttachBIOS beforehand if a boot ROM is available.
func NewProSystem(tv *television.Television) *ProSystem {
	ps := &ProSystem{
		Mem:   bus.NewAddressSpace(prosystemAddrBits, prosystemPageBits),
		TV:    tv,
		PIA:   riot.NewRIOT(nil, nil),
		TIA:   tia.NewTIA(nil),
		Pokey: pokey.NewPokey(),
		RAM0:  ram.New(0x0800),
		RAM1:  ram.New(0x0800),
		Cart:  cartridge.NewCartridgeProSystem(),
		Input: input.NewState(),

		biosDisabled: true,
	}

	ps.ports = newProsystemPorts(ps.Input)
	ps.PIA.AttachPeripheral(ps.ports)
	ps.PIA.AttachPanel(ps.ports)

	ps.Maria = maria.NewMaria(tv, tv.Scanlines)
	ps.Maria.AttachDMABus(ps.Mem)
	ps.Maria.AttachAudioSink(ps.TIA)
	ps.Maria.AttachInput(ps.ports)

	ps.CPU = cpu.NewCPU(random.NewRandom(0), nil, ps.Mem)

	ps.mapAddressSpace()

	return ps
}

// mapAddressSpace installs the fixed part of System-B's decode: Maria's
// four register mirrors, the PIA's three (which, thanks to the 6532's own
// RAM/IO select line landing on a different real address bit in each
// mirror, naturally reproduces the real console's odd habit of exposing
// the chip's internal 128 bytes of scratch RAM at 0x0480 and 0x0580 while
// the 0x0280 mirror presents its I/O registers), both work-RAM chips at their
// primary address and every documented mirror, the cartridge's fallback
// mapping across the whole of 0x4000-0xffff, and the onboard Pokey some
// cartridges are documented to carry.
func (ps *ProSystem) mapAddressSpace() {
	mustMap := func(base, length uint32, dev bus.Device) {
		if err := ps.Mem.Map(base, length, dev); err != nil {
			panic(err)
		}
	}

	for _, base := range []uint32{0x0000, 0x0100, 0x0200, 0x0300} {
		mustMap(base, 0x0040, ps.Maria)
	}

	for _, base := range []uint32{0x0280, 0x0480, 0x0580} {
		mustMap(base, 0x0080, ps.PIA)
	}

	mustMap(0x1800, 0x0800, ps.RAM0)

	mustMap(0x2000, 0x0800, ps.RAM1)
	for _, base := range []uint32{0x0040, 0x0140, 0x2040, 0x2140} {
		mustMap(base, 0x00c0, ps.RAM1)
	}
	for _, base := range []uint32{0x2800, 0x3000, 0x3800} {
		mustMap(base, 0x0800, ps.RAM1)
	}

	mustMap(pokeyCartPage, 0x0040, ps.Pokey)

	mustMap(0x4000, 0xc000, ps.Cart)
}

// AttachBIOS loads a boot ROM image, 4K (overlaying 0xf000-0xffff) or 16K
// (overlaying 0xc000-0xffff), to be swapped in ahead of the cartridge
// until software disables it through Maria's INPTCTRL bit 2.
func (ps *ProSystem) AttachBIOS(data []byte) error {
	switch len(data) {
	case 0x1000:
		ps.biosOrigin = 0xf000
	case 0x4000:
		ps.biosOrigin = 0xc000
	default:
		return errors.Errorf(errors.ProSystemError, "bios image must be 4K or 16K")
	}
	ps.bios = data
	ps.biosDisabled = false
	ps.refreshBIOSOverlay()
	return nil
}

// refreshBIOSOverlay re-maps the BIOS window over the cartridge, or the
// cartridge back over it, whenever Maria's recorded INPTCTRL intent has
// changed since the last check.
func (ps *ProSystem) refreshBIOSOverlay() {
	if ps.bios == nil {
		return
	}

	disabled := ps.Maria.BIOSDisabled()
	if disabled == ps.biosDisabled {
		return
	}
	ps.biosDisabled = disabled

	if disabled {
		if err := ps.Mem.Map(uint32(ps.biosOrigin), uint32(len(ps.bios)), ps.Cart); err != nil {
			panic(err)
		}
		return
	}

	if err := ps.Mem.Map(uint32(ps.biosOrigin), uint32(len(ps.bios)), biosDevice(ps.bios)); err != nil {
		panic(err)
	}
}

// biosDevice is a read-only flat ROM image wrapped up as a bus.Device,
// addressed relative to its own origin the same way cartridge.Cartridge
// rebases Family A addresses.
type biosDevice []uint8

func (b biosDevice) Read(addr uint16) (uint8, error) {
	return b[int(addr)%len(b)], nil
}

func (b biosDevice) Write(addr uint16, data uint8) error {
	return nil
}

// AttachNVRAM installs a 2 KB battery-backed RAM device at the address a
// high-score-cartridge-style accessory occupies, below the work-RAM chips
// and the cartridge's own window. onLoad/onSave are the host's
// persistence hooks; see ram.NewNVRAM. Call before Reset (or call Reset
// again afterwards) so the device's initial load actually happens.
func (ps *ProSystem) AttachNVRAM(onLoad func() []byte, onSave func([]byte)) error {
	ps.NVRAM = ram.NewNVRAM(onLoad, onSave)
	return ps.Mem.Map(nvramOrigin, nvramWindow, ps.NVRAM)
}

// Attach loads cartload into the cartridge slot and resets the machine,
// ready to begin execution from the new ROM's (or BIOS's) reset vector.
func (ps *ProSystem) Attach(cartload cartridgeloader.Loader) error {
	if err := ps.Cart.Attach(cartload); err != nil {
		return errors.Errorf(errors.ProSystemError, err)
	}
	return ps.Reset()
}

// Reset returns every chip to its power-on state, re-establishes the BIOS
// overlay if one is attached (BIOS enabled is the console's power-on
// default), and loads the program counter from whichever of BIOS or
// cartridge is currently mapped at the reset vector.
func (ps *ProSystem) Reset() error {
	ps.Cart.Initialise()
	ps.PIA.Reset()
	ps.Maria.Reset()
	ps.TIA.Reset()
	ps.Pokey.Reset()
	ps.CPU.Reset()

	if ps.NVRAM != nil {
		ps.NVRAM.Reset()
	}

	if ps.bios != nil {
		ps.biosDisabled = true // force refreshBIOSOverlay to re-map it
		ps.refreshBIOSOverlay()
	}

	if err := ps.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return errors.Errorf(errors.ProSystemError, err)
	}
	return nil
}

// cycleCallback is invoked once per CPU cycle while an instruction
// executes: Maria derives its own scanline from the cycle count, the PIA's
// interval timer ticks once, the audio-only TIA advances at the same 3
// colour-clocks-per-cycle ratio System-A uses, and Pokey advances its
// polynomial counters. The two chips' samples are mixed and written to
// whichever scanline Maria's cursor currently derives.
func (ps *ProSystem) cycleCallback() error {
	ps.Maria.Step(1)
	ps.PIA.Step()
	ps.TIA.Step(3)
	ps.Pokey.TickCPUCycle()

	sample := ps.TIA.Sample() + uint16(ps.Pokey.Sample())
	_ = ps.TV.SetAudioSample(ps.Maria.Scanline(), sample)
	return nil
}

// Step executes a single CPU instruction, draining any WSYNC stall and any
// DMA cycles Maria's display list processing stole during the instruction,
// then servicing a pending display-list-interrupt NMI request and checking
// whether software has just flipped the BIOS overlay.
//
// A DLI is serviced with the same push-PC/push-status/set-I/load-vector
// sequence real NMOS silicon runs for any NMI, via CPU.NMI(), so that a
// handler entered through the vector can RTI back into the code Maria
// interrupted.
func (ps *ProSystem) Step() error {
	if err := ps.CPU.ExecuteInstruction(ps.cycleCallback); err != nil {
		return errors.Errorf(errors.ProSystemError, err)
	}
	ps.cpuCycles += ps.CPU.LastResult.Cycles

	for n := ps.Maria.TakeWSYNCCycles(); n > 0; n-- {
		ps.wsyncTick++
		if err := ps.cycleCallback(); err != nil {
			return err
		}
	}
	for n := ps.Maria.TakeDMACycles(); n > 0; n-- {
		ps.dmaTick++
		if err := ps.cycleCallback(); err != nil {
			return err
		}
	}

	if ps.Maria.TakeNMIRequest() {
		if err := ps.CPU.NMI(ps.cycleCallback); err != nil {
			return errors.Errorf(errors.ProSystemError, err)
		}
		ps.cpuCycles += ps.CPU.LastResult.Cycles
	}

	ps.refreshBIOSOverlay()
	return nil
}

// FrameBegin captures the current input state, starts a new television
// frame, and resets Maria's and the audio-only TIA's clock cursors.
func (ps *ProSystem) FrameBegin() {
	ps.Input.Capture()
	ps.TV.FrameBegin()
	ps.Maria.NewFrame()
	ps.TIA.NewFrame()
	ps.cpuCycles = 0
	ps.dmaTick = 0
	ps.wsyncTick = 0
}

// AttachDiagnostics wires a diagnostics.Server to receive one FrameStat
// per completed frame, mirroring VCS.AttachDiagnostics.
func (ps *ProSystem) AttachDiagnostics(d *diagnostics.Server) {
	ps.diag = d
}

// FrameEnd completes the television frame and, if a diagnostics.Server is
// attached, posts this frame's CPU/DMA/WSYNC cycle accounting to it.
func (ps *ProSystem) FrameEnd() {
	ps.TV.FrameEnd()

	if ps.diag != nil {
		ps.frameNum++
		ps.diag.Post(diagnostics.FrameStat{
			Frame:       ps.frameNum,
			CPUCycles:   ps.cpuCycles,
			DMACycles:   ps.dmaTick,
			WSYNCCycles: ps.wsyncTick,
		})
	}
}

// Frame runs the machine for exactly one video frame, with no input beyond
// the machine's own state: it steps instructions until Maria's CPU-clock
// scanline cursor reaches the television's last scanline.
func (ps *ProSystem) Frame() error {
	ps.FrameBegin()
	defer ps.FrameEnd()

	last := ps.TV.FrameBuffer.Scanlines - 1
	for ps.Maria.Scanline() < last {
		if err := ps.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrame is a debugger convenience built on top of Frame: keepGoing is
// consulted after every instruction instead of Maria's scanline cursor,
// letting a caller stop a frame early (a breakpoint, say) or run past
// where Frame itself would normally return.
func (ps *ProSystem) RunFrame(keepGoing func() bool) error {
	ps.FrameBegin()
	defer ps.FrameEnd()

	for keepGoing() {
		if err := ps.Step(); err != nil {
			return err
		}
	}
	return nil
}
