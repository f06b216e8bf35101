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

package maria

import (
	"github.com/kessler-labs/retrocore/hardware/spec"
	"github.com/kessler-labs/retrocore/hardware/television"
	"github.com/kessler-labs/retrocore/logger"
)

// DMABus is the address-space view Maria reads DLL entries, DL entries
// and graphic data through. Kept as an interface, rather than importing
// bus.AddressSpace directly, so this package doesn't need to know which
// concrete address space it has been wired into.
type DMABus interface {
	Read(addr uint16) (uint8, error)
}

// AudioSink receives the six audio register writes (0x15-0x1a)
// forwarded through Maria's register window, unchanged. Satisfied by
// *tia.TIA.
type AudioSink interface {
	Write(addr uint16, data uint8) error
}

// InputSource supplies the captured controller state INPT0-5 sample.
// Satisfied by *input.State.
type InputSource interface {
	Jack(player int) spec.Controller
	ActionState(player int, action spec.ControllerAction) bool
	LightGun(player int) (scanline, hpos int)
}

// Maria is the System-B DMA display processor.
type Maria struct {
	tv    *television.Television
	dma   DMABus
	audio AudioSink
	input InputSource

	registers [0x40]uint8
	lineRAM   [512]uint8

	lastVisibleScanline int

	ctrlLock   bool
	colorKill  bool
	dmaEnabled bool
	cwidth     bool
	bcntl      bool
	kangaroo   bool
	rm         uint8

	dll    uint16
	dl     uint16
	offset int
	holey  uint8
	wm     bool
	indMode bool
	width   int
	hpos    int
	paletteNo uint8

	clock    int
	scanline int

	pendingDMACycles int
	nmiRequested     bool
	wsyncRequested   bool
}

// NewMaria builds a Maria rendering into tv. scanlines is the television's
// total scanline count (262 for NTSC, 312 for PAL), used only to derive
// the last visible scanline; the first is always 11.
func NewMaria(tv *television.Television, scanlines int) *Maria {
	last := firstVisibleScanline + 242
	if scanlines > 262 {
		last += 50
	}
	return &Maria{tv: tv, lastVisibleScanline: last}
}

// AttachDMABus wires the address space Maria performs DMA reads through.
func (m *Maria) AttachDMABus(bus DMABus) { m.dma = bus }

// AttachAudioSink wires the chip audio register writes are forwarded to.
func (m *Maria) AttachAudioSink(sink AudioSink) { m.audio = sink }

// AttachInput wires the captured input state INPTn reads sample.
func (m *Maria) AttachInput(src InputSource) { m.input = src }

// Reset returns Maria to its power-on state: DMA disabled, CTRL zeroed,
// INPTCTRL unlocked.
func (m *Maria) Reset() {
	m.ctrlLock = false
	m.dmaEnabled = false
	m.colorKill = false
	m.cwidth = false
	m.bcntl = false
	m.kangaroo = false
	m.rm = 0
}

// NewFrame resets the CPU-clock-derived scanline cursor for a new frame.
func (m *Maria) NewFrame() {
	m.clock = 0
	m.scanline = 0
}

// Scanline returns the scanline Maria's CPU-clock cursor currently derives,
// for a composer mixing audio per scanline the way this chip derives video
// timing.
func (m *Maria) Scanline() int { return m.scanline }

// TakeDMACycles returns and clears the number of CPU cycles DMA
// processing has stolen since the last call.
func (m *Maria) TakeDMACycles() int {
	c := m.pendingDMACycles
	m.pendingDMACycles = 0
	return c
}

// TakeNMIRequest returns and clears whether a DLI-flagged DLL entry
// requested an NMI since the last call.
func (m *Maria) TakeNMIRequest() bool {
	r := m.nmiRequested
	m.nmiRequested = false
	return r
}

// TakeWSYNCCycles returns and clears the number of CPU cycles a WSYNC
// write has asked the composer to stall for, bringing the clock forward
// to the next scanline boundary.
func (m *Maria) TakeWSYNCCycles() int {
	if !m.wsyncRequested {
		return 0
	}
	m.wsyncRequested = false
	return clocksPerScanline - m.clock%clocksPerScanline
}

// Step advances the chip's CPU-clock cursor by n cycles, running one
// scanline's worth of DMA processing each time a 114-cycle scanline
// boundary is crossed.
func (m *Maria) Step(n int) {
	for i := 0; i < n; i++ {
		m.clock++
		if m.clock%clocksPerScanline == 0 {
			m.scanline = m.clock / clocksPerScanline
			m.pendingDMACycles += m.doDMAProcessing()
		}
	}
}

// doDMAProcessing outputs the previous scanline's line-RAM, then (if DMA
// is enabled and the new scanline is visible) walks the display list to
// build the next one. Returns the number of DMA colour clocks consumed,
// in the composer's CPU-cycle terms (the caller treats Maria's clock as
// already 1:1 with CPU cycles per clocksPerScanline, so these are charged
// directly as additional stolen cycles).
func (m *Maria) doDMAProcessing() int {
	m.outputLineRAM()

	sl := m.scanline
	if !m.dmaEnabled || sl < firstVisibleScanline || sl >= m.lastVisibleScanline {
		return 0
	}

	dmaClocks := 0

	if sl == firstVisibleScanline {
		// End of VBLANK: DMA startup plus a long shutdown.
		dmaClocks += 15
		m.dll = word(m.registers[regDPPL], m.registers[regDPPH])
		dmaClocks += m.consumeNextDLLEntry()
	}

	// DMA startup for this line.
	dmaClocks += 5
	dmaClocks += m.buildLineRAM()

	m.offset--
	if m.offset < 0 {
		dmaClocks += m.consumeNextDLLEntry()
		dmaClocks += 10 // shutdown: last line of zone
	} else {
		dmaClocks += 4 // shutdown: other line of zone
	}

	return m.clampDMAClocks(dmaClocks)
}

// clampDMAClocks is a robustness valve against display lists that
// mis-declare their zone height: a scanline's DMA debit should never
// exceed what one scanline's worth of CPU time could plausibly spend, so
// a clock count beyond clocksPerScanline is capped there instead of
// driving the CPU's cycle budget deeply negative for the rest of the
// frame. This is a generic clamp, not a per-title patch.
func (m *Maria) clampDMAClocks(dmaClocks int) int {
	if dmaClocks <= clocksPerScanline {
		return dmaClocks
	}
	logger.Logf("MARIA", "scanline %d DMA cost %d clamped to %d", m.scanline, dmaClocks, clocksPerScanline)
	return clocksPerScanline
}

// outputLineRAM converts the previous scanline's line-RAM colour indices
// to palette register values, writes them to the frame buffer, and
// clears line-RAM behind it.
func (m *Maria) outputLineRAM() {
	if m.tv == nil {
		return
	}
	pitch := m.tv.FrameBuffer.Pitch
	target := (m.scanline + 1) % m.tv.FrameBuffer.Scanlines

	for i := 0; i < pitch; i++ {
		colorIndex := m.lineRAM[i]
		var value uint8
		if colorIndex&3 == 0 {
			value = m.registers[regBACKGRND]
		} else {
			value = m.registers[regBACKGRND+int(colorIndex)]
		}
		m.tv.SetPixel(target, i, value)
		m.lineRAM[i] = 0
	}
}

// consumeNextDLLEntry reads the next 3-byte DLL entry, advances the DLL
// pointer, and updates the current DL pointer, zone offset and holey DMA
// mode. Raising the DLI bit requests an NMI and costs one extra clock.
func (m *Maria) consumeNextDLLEntry() int {
	dll0 := m.dmaRead(m.dll)
	m.dll++
	dll1 := m.dmaRead(m.dll)
	m.dll++
	dll2 := m.dmaRead(m.dll)
	m.dll++

	dli := dll0&0x80 != 0
	m.holey = (dll0 & 0x60) >> 5
	m.offset = int(dll0 & 0x0f)
	m.dl = word(dll2, dll1)

	if dli {
		m.nmiRequested = true
		return 1
	}
	return 0
}

// dmaRead performs a single DMA byte read from the address space Maria
// was wired to. A failed read (an address outside of any mapped device)
// is treated the same as the rest of the system treats an unmapped
// address: it reads as zero.
func (m *Maria) dmaRead(addr uint16) uint8 {
	if m.dma == nil {
		return 0
	}
	v, _ := m.dma.Read(addr)
	return v
}

// word combines two bytes into a 16-bit little-endian value.
func word(lsb, msb uint8) uint16 {
	return uint16(msb)<<8 | uint16(lsb)
}

// isHole reports whether dataaddr falls in one of holey DMA's two
// address "holes", in which case the graphic byte there reads as
// transparent without ever being fetched.
func isHole(holey uint8, dataaddr uint16) bool {
	switch holey {
	case 0x02:
		return dataaddr&0x9000 == 0x9000
	case 0x01:
		return dataaddr&0x8800 == 0x8800
	default:
		return false
	}
}

// Read implements bus.Device for the CPU-visible register window.
func (m *Maria) Read(addr uint16) (uint8, error) {
	addr &= 0x3f

	switch addr {
	case regMSTAT:
		sl := m.scanline
		if sl < firstVisibleScanline || sl >= m.lastVisibleScanline {
			return 0x80, nil
		}
		return 0x00, nil
	case regINPT0:
		return triggerBit(m.input != nil && m.input.ActionState(0, spec.ActionTrigger)), nil
	case regINPT1:
		return triggerBit(m.input != nil && m.input.ActionState(0, spec.ActionTrigger2)), nil
	case regINPT2:
		return triggerBit(m.input != nil && m.input.ActionState(1, spec.ActionTrigger)), nil
	case regINPT3:
		return triggerBit(m.input != nil && m.input.ActionState(1, spec.ActionTrigger2)), nil
	case regINPT4:
		return triggerBit(!m.sampleINPTLatched(0)), nil
	case regINPT5:
		return triggerBit(!m.sampleINPTLatched(1)), nil
	default:
		return m.registers[addr], nil
	}
}

// triggerBit maps a boolean trigger state to a bit-7 flag, matching the
// polarity the CPU-visible register presents.
func triggerBit(active bool) uint8 {
	if active {
		return 0x80
	}
	return 0x00
}

// LightGunAdjustment is the empirically tuned factor applied to a light
// gun's reported horizontal position to account for the overhead of
// successive beam-position samples against this display processor's
// timing; §9 notes the source's value of ≈2.135 as target-dependent and
// possibly needing retuning, so it is kept as an overridable package
// variable rather than an inline literal.
var LightGunAdjustment = 2.135

// lightGunScanlineCycle converts a captured light-gun horizontal
// position, in pixel units, to the DMA colour-clock count it should be
// compared against, applying LightGunAdjustment.
func lightGunScanlineCycle(hpos int) int {
	return int(float64(hpos) * LightGunAdjustment)
}

// sampleINPTLatched reports whether player's latched fire input (INPT4 /
// INPT5) is active. A Lightgun jack instead compares the DMA-derived
// current beam position against the captured gun position.
func (m *Maria) sampleINPTLatched(player int) bool {
	if m.input == nil {
		return false
	}
	switch m.input.Jack(player) {
	case spec.Lightgun:
		sl, hp := m.input.LightGun(player)
		return m.scanline >= sl && (m.clock%clocksPerScanline) >= lightGunScanlineCycle(hp)
	default:
		return m.input.ActionState(player, spec.ActionTrigger) ||
			m.input.ActionState(player, spec.ActionTrigger2)
	}
}

// Write implements bus.Device for the CPU-visible register window.
func (m *Maria) Write(addr uint16, data uint8) error {
	addr &= 0x3f

	switch {
	case addr == regINPTCTRL:
		if m.ctrlLock {
			return nil
		}
		m.ctrlLock = data&0x01 != 0
		// Bit 2 (BIOS disable) is the composer's concern: it owns the
		// cartridge/BIOS overlay, so this register only records intent
		// through the registers array for the composer to observe.
		m.registers[addr] = data
	case addr == regWSYNC:
		m.wsyncRequested = true
		m.registers[addr] = data
	case addr == regCTRL:
		m.colorKill = data&ctrlColorKill != 0
		m.dmaEnabled = data&ctrlDMAMask == ctrlDMAOn
		m.cwidth = data&ctrlCWidth != 0
		m.bcntl = data&ctrlBCntl != 0
		m.kangaroo = data&ctrlKangaroo != 0
		m.rm = data & ctrlRMMask
		m.registers[addr] = data
	case addr == regMSTAT:
		// Writes to MSTAT are ignored; it is read-only.
	case addr == regOFFSET:
		// Reserved for future expansion; writes are noted but ignored.
	case paletteAddrs[addr]:
		m.registers[addr] = data
	case int(addr) < len(audioAddrs) && audioAddrs[addr]:
		if m.audio != nil {
			return m.audio.Write(addr, data)
		}
	default:
		m.registers[addr] = data
	}
	return nil
}

// DMAEnabled reports whether DMA is currently enabled.
func (m *Maria) DMAEnabled() bool { return m.dmaEnabled }

// BIOSDisabled reports the intent most recently written to INPTCTRL's bit
// 2: false swaps the BIOS into the address space, true swaps in the
// cartridge in its place. Maria only records this bit; the composer owns
// the actual address space and must act on it.
func (m *Maria) BIOSDisabled() bool {
	return m.registers[regINPTCTRL]&0x04 != 0
}
