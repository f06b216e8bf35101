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

package tia

import (
	"github.com/kessler-labs/retrocore/errors"
	"github.com/kessler-labs/retrocore/hardware/spec"
	"github.com/kessler-labs/retrocore/hardware/television"
	"github.com/kessler-labs/retrocore/hardware/tia/future"
)

// InputSource supplies the captured paddle resistance and trigger state
// the INPTn registers sample. Satisfied by *input.State; kept as an
// interface so this package does not import hardware/input directly,
// following the same dependency-inversion idiom as riot.Peripheral.
type InputSource interface {
	Ohms(player int) int32
	ActionState(player int, action spec.ControllerAction) bool
}

// paddleChargeThreshold is the charge value, in ticks, a fully-discharged
// pot capacitor needs to accumulate before its INPTn bit reads high. This
// is this session's own simplification of the real RC charge curve the
// hardware implements, chosen only to give a monotonic "further turn,
// later trigger" relationship between Ohms() and the bit it drives.
const paddleChargeThreshold = 1_000_000

// TIA is the System-A video/sound chip.
type TIA struct {
	tv    *television.Television
	input InputSource

	ticker *future.Ticker

	clock    int // colour clocks the composer has stepped us to
	cursor   int // colour clocks actually rendered so far
	hsync    int // 0..227, position within the current scanline
	scanline int

	vsync  uint8
	vblank uint8
	ctrlpf uint8

	nusiz0, nusiz1 uint8
	colup0, colup1, colupf, colubk uint8
	refp0, refp1 bool

	pf0, pf1, pf2 uint8

	p0Pos, p1Pos, m0Pos, m1Pos, blPos int

	grp0New, grp0Old uint8
	grp1New, grp1Old uint8
	enablNew, enablOld bool
	vdelp0, vdelp1, vdelbl bool

	enam0, enam1 bool
	resmp0, resmp1 bool

	hmp0, hmp1, hmm0, hmm1, hmbl uint8
	hmove hmoveState

	audio0, audio1 audioChannel

	cx spec.CxPair

	paddleCharge [4]int

	wsyncColorClocks int

	lastSample uint16
}

type hmoveState struct {
	active     bool
	elapsed    int
	thresholds [5]int
	lateBlank  bool
}

// NewTIA builds a TIA rendering into tv, with every register zeroed.
func NewTIA(tv *television.Television) *TIA {
	return &TIA{
		tv:     tv,
		ticker: future.NewTicker("tia"),
	}
}

// AttachInput wires the captured input state INPTn reads sample from.
func (t *TIA) AttachInput(src InputSource) { t.input = src }

// Reset zeroes every register and rendering position, ready for a new
// frame from scanline zero.
func (t *TIA) Reset() {
	*t = TIA{tv: t.tv, input: t.input, ticker: future.NewTicker("tia")}
}

// NewFrame resets the colour-clock cursor and scanline counter for a new
// frame without otherwise disturbing register contents, called by the
// composer at FrameBegin.
func (t *TIA) NewFrame() {
	t.clock = 0
	t.cursor = 0
	t.hsync = 0
	t.scanline = 0
}

// Step advances the chip's notion of the current colour clock by n
// (typically 3 per CPU cycle) without rendering anything; rendering only
// catches up lazily, on the next register access or Flush.
func (t *TIA) Step(n int) { t.clock += n }

// Scanline returns the scanline the colour-clock cursor currently derives,
// for a composer recognising the end of a video frame without any outside
// input beyond the chip's own state.
func (t *TIA) Scanline() int { return t.scanline }

// Flush catches rendering up to the chip's current colour clock. The
// composer calls this once at FrameEnd so that any scanlines a ROM never
// touched a register during still get painted.
func (t *TIA) Flush() {
	t.renderTo(t.clock)
}

// TakeWSYNCCycles returns and clears the number of CPU cycles the last
// WSYNC write asked the composer to stall for.
func (t *TIA) TakeWSYNCCycles() int {
	c := t.wsyncColorClocks / 3
	t.wsyncColorClocks = 0
	return c
}

// renderTo advances rendering one colour clock at a time until the
// cursor reaches target.
func (t *TIA) renderTo(target int) {
	for t.cursor < target {
		t.tickColorClock()
		t.cursor++
		t.ticker.Tick()
	}
}

func (t *TIA) tickColorClock() {
	if t.hsync >= scanlineClocks {
		t.hsync = 0
		t.hmove.lateBlank = false
		t.scanline++
		t.stepAudio()
	}

	if t.hmove.active {
		t.applyHMOVETick()
	}

	if t.resmp0 {
		t.m0Pos = t.p0Pos
	}
	if t.resmp1 {
		t.m1Pos = t.p1Pos
	}

	if t.hsync >= hblankClocks {
		x := t.hsync - hblankClocks
		if !(t.hmove.lateBlank && x < 8) && t.vblank&0x02 == 0 {
			t.renderPixel(x)
		} else if t.tv != nil {
			t.tv.SetPixel(t.scanline, x, t.colubk)
		}
	}

	t.hsync++
}

func (t *TIA) renderPixel(x int) {
	grp0 := t.grp0New
	if t.vdelp0 {
		grp0 = t.grp0Old
	}
	grp1 := t.grp1New
	if t.vdelp1 {
		grp1 = t.grp1Old
	}
	enabl := t.enablNew
	if t.vdelbl {
		enabl = t.enablOld
	}

	pf := playfieldPixelOn(t.pf0, t.pf1, t.pf2, x, t.ctrlpf&0x01 != 0)
	bl := enabl && ballPixelOn(x, t.blPos, 1<<uint((t.ctrlpf>>4)&0x03))
	m0 := t.enam0 && missilePixelOn(x, t.m0Pos, int(t.nusiz0), 1<<uint((t.nusiz0>>4)&0x03))
	m1 := t.enam1 && missilePixelOn(x, t.m1Pos, int(t.nusiz1), 1<<uint((t.nusiz1>>4)&0x03))
	p0 := playerPixelOn(x, t.p0Pos, grp0, int(t.nusiz0), t.refp0)
	p1 := playerPixelOn(x, t.p1Pos, grp1, int(t.nusiz1), t.refp1)

	mask := 0
	if pf {
		mask |= int(spec.CxPlayfield)
	}
	if bl {
		mask |= int(spec.CxBall)
	}
	if m0 {
		mask |= int(spec.CxMissile0)
	}
	if m1 {
		mask |= int(spec.CxMissile1)
	}
	if p0 {
		mask |= int(spec.CxPlayer0)
	}
	if p1 {
		mask |= int(spec.CxPlayer1)
	}
	t.cx |= cxTable[mask]

	playfieldPriority := t.ctrlpf&0x04 != 0
	scoreMode := t.ctrlpf&0x02 != 0 && !playfieldPriority

	var color uint8
	switch {
	case playfieldPriority && (pf || bl):
		color = t.colupf
	case p0:
		color = t.colup0
	case m0:
		color = t.colup0
	case p1:
		color = t.colup1
	case m1:
		color = t.colup1
	case pf && scoreMode:
		if x < 80 {
			color = t.colup0
		} else {
			color = t.colup1
		}
	case pf || bl:
		color = t.colupf
	default:
		color = t.colubk
	}

	if t.tv != nil {
		t.tv.SetPixel(t.scanline, x, color)
	}
}

func (t *TIA) applyHMOVETick() {
	for i, pos := range []*int{&t.p0Pos, &t.p1Pos, &t.m0Pos, &t.m1Pos, &t.blPos} {
		if t.hmove.thresholds[i] > t.hmove.elapsed-1 {
			*pos = mod160(*pos - 1)
		}
	}
	t.hmove.elapsed++
	if t.hmove.elapsed >= 16 {
		t.hmove.active = false
	}
}

func (t *TIA) stepAudio() {
	t.audio0.step()
	t.audio1.step()
	t.lastSample = t.audio0.sample() + t.audio1.sample()
	if t.tv == nil {
		return
	}
	_ = t.tv.SetAudioSample(t.scanline, t.lastSample)
}

// Sample returns the most recently mixed two-channel sample, independent
// of whether this TIA is driving a television's audio track itself. Used
// by System-B's composer, which keeps a TIA around purely as an audio
// snoop and mixes its output with Pokey's second sound chip by hand.
func (t *TIA) Sample() uint16 {
	return t.lastSample
}

func hsyncToPixel(hsync int) int {
	if hsync < hblankClocks {
		return 0
	}
	if hsync-hblankClocks >= visiblePixels {
		return visiblePixels - 1
	}
	return hsync - hblankClocks
}

// Write implements bus.CPUBus for the 64-register write side.
func (t *TIA) Write(addr uint16, data uint8) error {
	t.renderTo(t.clock)

	delay := 0
	switch addr & 0x3f {
	case regPF0, regPF1, regPF2, regGRP0, regGRP1:
		delay = 1
	}

	apply := func() { t.applyWrite(addr, data) }
	if delay > 0 {
		t.ticker.Schedule(delay, apply, "write")
	} else {
		apply()
	}
	return nil
}

func (t *TIA) applyWrite(addr uint16, data uint8) {
	switch addr & 0x3f {
	case regVSYNC:
		t.vsync = data
	case regVBLANK:
		t.vblank = data
		if data&0x80 != 0 {
			t.paddleCharge = [4]int{}
		}
	case regWSYNC:
		t.wsyncColorClocks = scanlineClocks - t.hsync
	case regRSYNC:
		t.hsync = 0
	case regNUSIZ0:
		t.nusiz0 = data
	case regNUSIZ1:
		t.nusiz1 = data
	case regCOLUP0:
		t.colup0 = data
	case regCOLUP1:
		t.colup1 = data
	case regCOLUPF:
		t.colupf = data
	case regCOLUBK:
		t.colubk = data
	case regCTRLPF:
		t.ctrlpf = data
	case regREFP0:
		t.refp0 = data&0x08 != 0
	case regREFP1:
		t.refp1 = data&0x08 != 0
	case regPF0:
		t.pf0 = data
	case regPF1:
		t.pf1 = data
	case regPF2:
		t.pf2 = data
	case regRESP0:
		t.p0Pos = hsyncToPixel(t.hsync)
	case regRESP1:
		t.p1Pos = hsyncToPixel(t.hsync)
	case regRESM0:
		t.m0Pos = hsyncToPixel(t.hsync)
	case regRESM1:
		t.m1Pos = hsyncToPixel(t.hsync)
	case regRESBL:
		t.blPos = hsyncToPixel(t.hsync)
	case regAUDC0:
		t.audio0.writeAUDC(data)
	case regAUDC1:
		t.audio1.writeAUDC(data)
	case regAUDF0:
		t.audio0.writeAUDF(data)
	case regAUDF1:
		t.audio1.writeAUDF(data)
	case regAUDV0:
		t.audio0.writeAUDV(data)
	case regAUDV1:
		t.audio1.writeAUDV(data)
	case regGRP0:
		t.grp0New = data
		t.grp1Old = t.grp1New
	case regGRP1:
		t.grp1New = data
		t.grp0Old = t.grp0New
		t.enablOld = t.enablNew
	case regENAM0:
		t.enam0 = data&0x02 != 0
	case regENAM1:
		t.enam1 = data&0x02 != 0
	case regENABL:
		t.enablNew = data&0x02 != 0
	case regHMP0:
		t.hmp0 = data
	case regHMP1:
		t.hmp1 = data
	case regHMM0:
		t.hmm0 = data
	case regHMM1:
		t.hmm1 = data
	case regHMBL:
		t.hmbl = data
	case regVDELP0:
		t.vdelp0 = data&0x01 != 0
	case regVDELP1:
		t.vdelp1 = data&0x01 != 0
	case regVDELBL:
		t.vdelbl = data&0x01 != 0
	case regRESMP0:
		t.resmp0 = data&0x02 != 0
	case regRESMP1:
		t.resmp1 = data&0x02 != 0
	case regHMOVE:
		t.hmove = hmoveState{
			active: true,
			thresholds: [5]int{
				hmoveThreshold(t.hmp0),
				hmoveThreshold(t.hmp1),
				hmoveThreshold(t.hmm0),
				hmoveThreshold(t.hmm1),
				hmoveThreshold(t.hmbl),
			},
			lateBlank: true,
		}
	case regHMCLR:
		t.hmp0, t.hmp1, t.hmm0, t.hmm1, t.hmbl = 0, 0, 0, 0, 0
	case regCXCLR:
		t.cx = 0
	}
}

// Read implements bus.CPUBus for the 64-register read side.
func (t *TIA) Read(addr uint16) (uint8, error) {
	t.renderTo(t.clock)

	switch addr & 0x3f {
	case regCXM0P:
		return collisionByte(t.cx&spec.CxMissile0Player1 != 0, t.cx&spec.CxMissile0Player0 != 0), nil
	case regCXM1P:
		return collisionByte(t.cx&spec.CxMissile1Player0 != 0, t.cx&spec.CxMissile1Player1 != 0), nil
	case regCXP0FB:
		return collisionByte(t.cx&spec.CxPlayer0Playfield != 0, t.cx&spec.CxPlayer0Ball != 0), nil
	case regCXP1FB:
		return collisionByte(t.cx&spec.CxPlayer1Playfield != 0, t.cx&spec.CxPlayer1Ball != 0), nil
	case regCXM0FB:
		return collisionByte(t.cx&spec.CxMissile0Playfield != 0, t.cx&spec.CxMissile0Ball != 0), nil
	case regCXM1FB:
		return collisionByte(t.cx&spec.CxMissile1Playfield != 0, t.cx&spec.CxMissile1Ball != 0), nil
	case regCXBLPF:
		return collisionByte(false, t.cx&spec.CxBallPlayfield != 0), nil
	case regCXPPMM:
		return collisionByte(t.cx&spec.CxMissile0Missile1 != 0, t.cx&spec.CxPlayer0Player1 != 0), nil
	case regINPT0, regINPT1, regINPT2, regINPT3:
		return t.readPaddle(int(addr&0x3f) - regINPT0), nil
	case regINPT4:
		return t.readTrigger(0), nil
	case regINPT5:
		return t.readTrigger(1), nil
	}
	return 0, nil
}

func collisionByte(bit6, bit7 bool) uint8 {
	var v uint8
	if bit6 {
		v |= 0x40
	}
	if bit7 {
		v |= 0x80
	}
	return v
}

func (t *TIA) readPaddle(n int) uint8 {
	if t.input == nil {
		return 0x80
	}
	if t.vblank&0x80 != 0 {
		t.paddleCharge[n] = 0
		return 0
	}
	ohms := t.input.Ohms(n)
	if ohms <= 0 {
		return 0
	}
	t.paddleCharge[n]++
	threshold := paddleChargeThreshold / int(ohms)
	if t.paddleCharge[n] >= threshold {
		return 0x80
	}
	return 0
}

func (t *TIA) readTrigger(player int) uint8 {
	if t.input == nil {
		return 0x80
	}
	if t.input.ActionState(player, spec.ActionTrigger) {
		return 0x00
	}
	return 0x80
}

// Peek implements bus.DebuggerBus: a non-destructive read that does not
// advance rendering or perturb paddle charge state.
func (t *TIA) Peek(addr uint16) (uint8, error) {
	switch addr & 0x3f {
	case regCXM0P, regCXM1P, regCXP0FB, regCXP1FB, regCXM0FB, regCXM1FB, regCXBLPF, regCXPPMM:
		return t.peekCollision(addr)
	}
	return 0, nil
}

func (t *TIA) peekCollision(addr uint16) (uint8, error) {
	cx := t.cx
	switch addr & 0x3f {
	case regCXM0P:
		return collisionByte(cx&spec.CxMissile0Player1 != 0, cx&spec.CxMissile0Player0 != 0), nil
	case regCXM1P:
		return collisionByte(cx&spec.CxMissile1Player0 != 0, cx&spec.CxMissile1Player1 != 0), nil
	case regCXP0FB:
		return collisionByte(cx&spec.CxPlayer0Playfield != 0, cx&spec.CxPlayer0Ball != 0), nil
	case regCXP1FB:
		return collisionByte(cx&spec.CxPlayer1Playfield != 0, cx&spec.CxPlayer1Ball != 0), nil
	case regCXM0FB:
		return collisionByte(cx&spec.CxMissile0Playfield != 0, cx&spec.CxMissile0Ball != 0), nil
	case regCXM1FB:
		return collisionByte(cx&spec.CxMissile1Playfield != 0, cx&spec.CxMissile1Ball != 0), nil
	case regCXBLPF:
		return collisionByte(false, cx&spec.CxBallPlayfield != 0), nil
	case regCXPPMM:
		return collisionByte(cx&spec.CxMissile0Missile1 != 0, cx&spec.CxPlayer0Player1 != 0), nil
	}
	return 0, nil
}

// Poke implements bus.DebuggerBus: writes are not supported on this
// device outside of normal register writes, matching riot.RIOT's stance
// on its timer region.
func (t *TIA) Poke(addr uint16, data uint8) error {
	return errors.Errorf(errors.UnpokeableAddress, addr)
}
