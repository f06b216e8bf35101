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

package instructions

import "fmt"

// Stability classifies how reliably an undocumented opcode behaves across
// real NMOS 6502/6507 silicon. Stable opcodes (the bulk of the
// undocumented set) combine two documented operations in a predictable
// way; Magic opcodes depend on bus capacitance effects that vary between
// individual chips and are emulated here as a fixed approximation rather
// than a guaranteed match to any particular unit.
type Stability int

const (
	Stable Stability = iota
	Unstable
	Magic
)

// Cycles records an instruction's base cycle count, before any extra
// cycle an addressing mode's page-cross or a taken branch might add.
type Cycles struct {
	Value int
}

func (c Cycles) String() string {
	return fmt.Sprintf("%d", c.Value)
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         Cycles
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
	Stability      Stability
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%s cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

func def(operator Operator, bytes int, cycles int, mode AddressingMode, pageSensitive bool, effect EffectCategory) Definition {
	return Definition{Operator: operator, Bytes: bytes, Cycles: Cycles{Value: cycles}, AddressingMode: mode, PageSensitive: pageSensitive, Effect: effect}
}

func undoc(operator Operator, bytes int, cycles int, mode AddressingMode, pageSensitive bool, effect EffectCategory, stability Stability) Definition {
	d := def(operator, bytes, cycles, mode, pageSensitive, effect)
	d.Undocumented = true
	d.Stability = stability
	return d
}

// table is the complete 256-entry NMOS 6502/6507 opcode table, including
// the illegal opcodes real cartridges occasionally rely on. Addressing
// mode, cycle count and undocumented-opcode behaviour follow the
// well-documented NMOS decode table; PageSensitive marks only the
// instructions whose extra cycle is conditional on an actual page cross —
// stores and read-modify-write instructions in indexed addressing always
// pay the extra cycle outright, so their Cycles value already includes it.
var table = [256]Definition{
	0x00: def(Brk, 1, 7, Implied, false, Interrupt),
	0x01: def(Ora, 2, 6, IndexedIndirect, false, Read),
	0x02: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x03: undoc(SLO, 2, 8, IndexedIndirect, false, RMW, Stable),
	0x04: undoc(NOP, 2, 3, ZeroPage, false, Read, Stable),
	0x05: def(Ora, 2, 3, ZeroPage, false, Read),
	0x06: def(Asl, 2, 5, ZeroPage, false, RMW),
	0x07: undoc(SLO, 2, 5, ZeroPage, false, RMW, Stable),
	0x08: def(Php, 1, 3, Implied, false, Read),
	0x09: def(Ora, 2, 2, Immediate, false, Read),
	0x0a: def(Asl, 1, 2, Implied, false, Read),
	0x0b: undoc(ANC, 2, 2, Immediate, false, Read, Stable),
	0x0c: undoc(NOP, 3, 4, Absolute, false, Read, Stable),
	0x0d: def(Ora, 3, 4, Absolute, false, Read),
	0x0e: def(Asl, 3, 6, Absolute, false, RMW),
	0x0f: undoc(SLO, 3, 6, Absolute, false, RMW, Stable),

	0x10: def(Bpl, 2, 2, Relative, true, Flow),
	0x11: def(Ora, 2, 5, IndirectIndexed, true, Read),
	0x12: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x13: undoc(SLO, 2, 8, IndirectIndexed, false, RMW, Stable),
	0x14: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0x15: def(Ora, 2, 4, ZeroPageIndexedX, false, Read),
	0x16: def(Asl, 2, 6, ZeroPageIndexedX, false, RMW),
	0x17: undoc(SLO, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0x18: def(Clc, 1, 2, Implied, false, Read),
	0x19: def(Ora, 3, 4, AbsoluteIndexedY, true, Read),
	0x1a: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0x1b: undoc(SLO, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0x1c: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0x1d: def(Ora, 3, 4, AbsoluteIndexedX, true, Read),
	0x1e: def(Asl, 3, 7, AbsoluteIndexedX, false, RMW),
	0x1f: undoc(SLO, 3, 7, AbsoluteIndexedX, false, RMW, Stable),

	0x20: def(Jsr, 3, 6, Absolute, false, Subroutine),
	0x21: def(And, 2, 6, IndexedIndirect, false, Read),
	0x22: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x23: undoc(RLA, 2, 8, IndexedIndirect, false, RMW, Stable),
	0x24: def(Bit, 2, 3, ZeroPage, false, Read),
	0x25: def(And, 2, 3, ZeroPage, false, Read),
	0x26: def(Rol, 2, 5, ZeroPage, false, RMW),
	0x27: undoc(RLA, 2, 5, ZeroPage, false, RMW, Stable),
	0x28: def(Plp, 1, 4, Implied, false, Read),
	0x29: def(And, 2, 2, Immediate, false, Read),
	0x2a: def(Rol, 1, 2, Implied, false, Read),
	0x2b: undoc(ANC, 2, 2, Immediate, false, Read, Stable),
	0x2c: def(Bit, 3, 4, Absolute, false, Read),
	0x2d: def(And, 3, 4, Absolute, false, Read),
	0x2e: def(Rol, 3, 6, Absolute, false, RMW),
	0x2f: undoc(RLA, 3, 6, Absolute, false, RMW, Stable),

	0x30: def(Bmi, 2, 2, Relative, true, Flow),
	0x31: def(And, 2, 5, IndirectIndexed, true, Read),
	0x32: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x33: undoc(RLA, 2, 8, IndirectIndexed, false, RMW, Stable),
	0x34: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0x35: def(And, 2, 4, ZeroPageIndexedX, false, Read),
	0x36: def(Rol, 2, 6, ZeroPageIndexedX, false, RMW),
	0x37: undoc(RLA, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0x38: def(Sec, 1, 2, Implied, false, Read),
	0x39: def(And, 3, 4, AbsoluteIndexedY, true, Read),
	0x3a: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0x3b: undoc(RLA, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0x3c: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0x3d: def(And, 3, 4, AbsoluteIndexedX, true, Read),
	0x3e: def(Rol, 3, 7, AbsoluteIndexedX, false, RMW),
	0x3f: undoc(RLA, 3, 7, AbsoluteIndexedX, false, RMW, Stable),

	0x40: def(Rti, 1, 6, Implied, false, Interrupt),
	0x41: def(Eor, 2, 6, IndexedIndirect, false, Read),
	0x42: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x43: undoc(SRE, 2, 8, IndexedIndirect, false, RMW, Stable),
	0x44: undoc(NOP, 2, 3, ZeroPage, false, Read, Stable),
	0x45: def(Eor, 2, 3, ZeroPage, false, Read),
	0x46: def(Lsr, 2, 5, ZeroPage, false, RMW),
	0x47: undoc(SRE, 2, 5, ZeroPage, false, RMW, Stable),
	0x48: def(Pha, 1, 3, Implied, false, Read),
	0x49: def(Eor, 2, 2, Immediate, false, Read),
	0x4a: def(Lsr, 1, 2, Implied, false, Read),
	0x4b: undoc(ASR, 2, 2, Immediate, false, Read, Stable),
	0x4c: def(Jmp, 3, 3, Absolute, false, Flow),
	0x4d: def(Eor, 3, 4, Absolute, false, Read),
	0x4e: def(Lsr, 3, 6, Absolute, false, RMW),
	0x4f: undoc(SRE, 3, 6, Absolute, false, RMW, Stable),

	0x50: def(Bvc, 2, 2, Relative, true, Flow),
	0x51: def(Eor, 2, 5, IndirectIndexed, true, Read),
	0x52: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x53: undoc(SRE, 2, 8, IndirectIndexed, false, RMW, Stable),
	0x54: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0x55: def(Eor, 2, 4, ZeroPageIndexedX, false, Read),
	0x56: def(Lsr, 2, 6, ZeroPageIndexedX, false, RMW),
	0x57: undoc(SRE, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0x58: def(Cli, 1, 2, Implied, false, Read),
	0x59: def(Eor, 3, 4, AbsoluteIndexedY, true, Read),
	0x5a: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0x5b: undoc(SRE, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0x5c: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0x5d: def(Eor, 3, 4, AbsoluteIndexedX, true, Read),
	0x5e: def(Lsr, 3, 7, AbsoluteIndexedX, false, RMW),
	0x5f: undoc(SRE, 3, 7, AbsoluteIndexedX, false, RMW, Stable),

	0x60: def(Rts, 1, 6, Implied, false, Interrupt),
	0x61: def(Adc, 2, 6, IndexedIndirect, false, Read),
	0x62: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x63: undoc(RRA, 2, 8, IndexedIndirect, false, RMW, Stable),
	0x64: undoc(NOP, 2, 3, ZeroPage, false, Read, Stable),
	0x65: def(Adc, 2, 3, ZeroPage, false, Read),
	0x66: def(Ror, 2, 5, ZeroPage, false, RMW),
	0x67: undoc(RRA, 2, 5, ZeroPage, false, RMW, Stable),
	0x68: def(Pla, 1, 4, Implied, false, Read),
	0x69: def(Adc, 2, 2, Immediate, false, Read),
	0x6a: def(Ror, 1, 2, Implied, false, Read),
	0x6b: undoc(ARR, 2, 2, Immediate, false, Read, Stable),
	0x6c: def(Jmp, 3, 5, Indirect, false, Flow),
	0x6d: def(Adc, 3, 4, Absolute, false, Read),
	0x6e: def(Ror, 3, 6, Absolute, false, RMW),
	0x6f: undoc(RRA, 3, 6, Absolute, false, RMW, Stable),

	0x70: def(Bvs, 2, 2, Relative, true, Flow),
	0x71: def(Adc, 2, 5, IndirectIndexed, true, Read),
	0x72: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x73: undoc(RRA, 2, 8, IndirectIndexed, false, RMW, Stable),
	0x74: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0x75: def(Adc, 2, 4, ZeroPageIndexedX, false, Read),
	0x76: def(Ror, 2, 6, ZeroPageIndexedX, false, RMW),
	0x77: undoc(RRA, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0x78: def(Sei, 1, 2, Implied, false, Read),
	0x79: def(Adc, 3, 4, AbsoluteIndexedY, true, Read),
	0x7a: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0x7b: undoc(RRA, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0x7c: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0x7d: def(Adc, 3, 4, AbsoluteIndexedX, true, Read),
	0x7e: def(Ror, 3, 7, AbsoluteIndexedX, false, RMW),
	0x7f: undoc(RRA, 3, 7, AbsoluteIndexedX, false, RMW, Stable),

	0x80: undoc(NOP, 2, 2, Immediate, false, Read, Stable),
	0x81: def(Sta, 2, 6, IndexedIndirect, false, Write),
	0x82: undoc(NOP, 2, 2, Immediate, false, Read, Stable),
	0x83: undoc(SAX, 2, 6, IndexedIndirect, false, Write, Stable),
	0x84: def(Sty, 2, 3, ZeroPage, false, Write),
	0x85: def(Sta, 2, 3, ZeroPage, false, Write),
	0x86: def(Stx, 2, 3, ZeroPage, false, Write),
	0x87: undoc(SAX, 2, 3, ZeroPage, false, Write, Stable),
	0x88: def(Dey, 1, 2, Implied, false, Read),
	0x89: undoc(NOP, 2, 2, Immediate, false, Read, Stable),
	0x8a: def(Txa, 1, 2, Implied, false, Read),
	0x8b: undoc(XAA, 2, 2, Immediate, false, Read, Magic),
	0x8c: def(Sty, 3, 4, Absolute, false, Write),
	0x8d: def(Sta, 3, 4, Absolute, false, Write),
	0x8e: def(Stx, 3, 4, Absolute, false, Write),
	0x8f: undoc(SAX, 3, 4, Absolute, false, Write, Stable),

	0x90: def(Bcc, 2, 2, Relative, true, Flow),
	0x91: def(Sta, 2, 6, IndirectIndexed, false, Write),
	0x92: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0x93: undoc(AHX, 2, 6, IndirectIndexed, false, Write, Magic),
	0x94: def(Sty, 2, 4, ZeroPageIndexedX, false, Write),
	0x95: def(Sta, 2, 4, ZeroPageIndexedX, false, Write),
	0x96: def(Stx, 2, 4, ZeroPageIndexedY, false, Write),
	0x97: undoc(SAX, 2, 4, ZeroPageIndexedY, false, Write, Stable),
	0x98: def(Tya, 1, 2, Implied, false, Read),
	0x99: def(Sta, 3, 5, AbsoluteIndexedY, false, Write),
	0x9a: def(Txs, 1, 2, Implied, false, Read),
	0x9b: undoc(TAS, 3, 5, AbsoluteIndexedY, false, Write, Magic),
	0x9c: undoc(SHY, 3, 5, AbsoluteIndexedX, false, Write, Magic),
	0x9d: def(Sta, 3, 5, AbsoluteIndexedX, false, Write),
	0x9e: undoc(SHX, 3, 5, AbsoluteIndexedY, false, Write, Magic),
	0x9f: undoc(AHX, 3, 5, AbsoluteIndexedY, false, Write, Magic),

	0xa0: def(Ldy, 2, 2, Immediate, false, Read),
	0xa1: def(Lda, 2, 6, IndexedIndirect, false, Read),
	0xa2: def(Ldx, 2, 2, Immediate, false, Read),
	0xa3: undoc(LAX, 2, 6, IndexedIndirect, false, Read, Stable),
	0xa4: def(Ldy, 2, 3, ZeroPage, false, Read),
	0xa5: def(Lda, 2, 3, ZeroPage, false, Read),
	0xa6: def(Ldx, 2, 3, ZeroPage, false, Read),
	0xa7: undoc(LAX, 2, 3, ZeroPage, false, Read, Stable),
	0xa8: def(Tay, 1, 2, Implied, false, Read),
	0xa9: def(Lda, 2, 2, Immediate, false, Read),
	0xaa: def(Tax, 1, 2, Implied, false, Read),
	0xab: undoc(LAX, 2, 2, Immediate, false, Read, Magic),
	0xac: def(Ldy, 3, 4, Absolute, false, Read),
	0xad: def(Lda, 3, 4, Absolute, false, Read),
	0xae: def(Ldx, 3, 4, Absolute, false, Read),
	0xaf: undoc(LAX, 3, 4, Absolute, false, Read, Stable),

	0xb0: def(Bcs, 2, 2, Relative, true, Flow),
	0xb1: def(Lda, 2, 5, IndirectIndexed, true, Read),
	0xb2: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0xb3: undoc(LAX, 2, 5, IndirectIndexed, true, Read, Stable),
	0xb4: def(Ldy, 2, 4, ZeroPageIndexedX, false, Read),
	0xb5: def(Lda, 2, 4, ZeroPageIndexedX, false, Read),
	0xb6: def(Ldx, 2, 4, ZeroPageIndexedY, false, Read),
	0xb7: undoc(LAX, 2, 4, ZeroPageIndexedY, false, Read, Stable),
	0xb8: def(Clv, 1, 2, Implied, false, Read),
	0xb9: def(Lda, 3, 4, AbsoluteIndexedY, true, Read),
	0xba: def(Tsx, 1, 2, Implied, false, Read),
	0xbb: undoc(LAS, 3, 4, AbsoluteIndexedY, true, Read, Unstable),
	0xbc: def(Ldy, 3, 4, AbsoluteIndexedX, true, Read),
	0xbd: def(Lda, 3, 4, AbsoluteIndexedX, true, Read),
	0xbe: def(Ldx, 3, 4, AbsoluteIndexedY, true, Read),
	0xbf: undoc(LAX, 3, 4, AbsoluteIndexedY, true, Read, Stable),

	0xc0: def(Cpy, 2, 2, Immediate, false, Read),
	0xc1: def(Cmp, 2, 6, IndexedIndirect, false, Read),
	0xc2: undoc(NOP, 2, 2, Immediate, false, Read, Stable),
	0xc3: undoc(DCP, 2, 8, IndexedIndirect, false, RMW, Stable),
	0xc4: def(Cpy, 2, 3, ZeroPage, false, Read),
	0xc5: def(Cmp, 2, 3, ZeroPage, false, Read),
	0xc6: def(Dec, 2, 5, ZeroPage, false, RMW),
	0xc7: undoc(DCP, 2, 5, ZeroPage, false, RMW, Stable),
	0xc8: def(Iny, 1, 2, Implied, false, Read),
	0xc9: def(Cmp, 2, 2, Immediate, false, Read),
	0xca: def(Dex, 1, 2, Implied, false, Read),
	0xcb: undoc(AXS, 2, 2, Immediate, false, Read, Stable),
	0xcc: def(Cpy, 3, 4, Absolute, false, Read),
	0xcd: def(Cmp, 3, 4, Absolute, false, Read),
	0xce: def(Dec, 3, 6, Absolute, false, RMW),
	0xcf: undoc(DCP, 3, 6, Absolute, false, RMW, Stable),

	0xd0: def(Bne, 2, 2, Relative, true, Flow),
	0xd1: def(Cmp, 2, 5, IndirectIndexed, true, Read),
	0xd2: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0xd3: undoc(DCP, 2, 8, IndirectIndexed, false, RMW, Stable),
	0xd4: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0xd5: def(Cmp, 2, 4, ZeroPageIndexedX, false, Read),
	0xd6: def(Dec, 2, 6, ZeroPageIndexedX, false, RMW),
	0xd7: undoc(DCP, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0xd8: def(Cld, 1, 2, Implied, false, Read),
	0xd9: def(Cmp, 3, 4, AbsoluteIndexedY, true, Read),
	0xda: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0xdb: undoc(DCP, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0xdc: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0xdd: def(Cmp, 3, 4, AbsoluteIndexedX, true, Read),
	0xde: def(Dec, 3, 7, AbsoluteIndexedX, false, RMW),
	0xdf: undoc(DCP, 3, 7, AbsoluteIndexedX, false, RMW, Stable),

	0xe0: def(Cpx, 2, 2, Immediate, false, Read),
	0xe1: def(Sbc, 2, 6, IndexedIndirect, false, Read),
	0xe2: undoc(NOP, 2, 2, Immediate, false, Read, Stable),
	0xe3: undoc(ISC, 2, 8, IndexedIndirect, false, RMW, Stable),
	0xe4: def(Cpx, 2, 3, ZeroPage, false, Read),
	0xe5: def(Sbc, 2, 3, ZeroPage, false, Read),
	0xe6: def(Inc, 2, 5, ZeroPage, false, RMW),
	0xe7: undoc(ISC, 2, 5, ZeroPage, false, RMW, Stable),
	0xe8: def(Inx, 1, 2, Implied, false, Read),
	0xe9: def(Sbc, 2, 2, Immediate, false, Read),
	0xea: def(Nop, 1, 2, Implied, false, Read),
	0xeb: undoc(SBC, 2, 2, Immediate, false, Read, Stable),
	0xec: def(Cpx, 3, 4, Absolute, false, Read),
	0xed: def(Sbc, 3, 4, Absolute, false, Read),
	0xee: def(Inc, 3, 6, Absolute, false, RMW),
	0xef: undoc(ISC, 3, 6, Absolute, false, RMW, Stable),

	0xf0: def(Beq, 2, 2, Relative, true, Flow),
	0xf1: def(Sbc, 2, 5, IndirectIndexed, true, Read),
	0xf2: undoc(KIL, 1, 2, Implied, false, Read, Stable),
	0xf3: undoc(ISC, 2, 8, IndirectIndexed, false, RMW, Stable),
	0xf4: undoc(NOP, 2, 4, ZeroPageIndexedX, false, Read, Stable),
	0xf5: def(Sbc, 2, 4, ZeroPageIndexedX, false, Read),
	0xf6: def(Inc, 2, 6, ZeroPageIndexedX, false, RMW),
	0xf7: undoc(ISC, 2, 6, ZeroPageIndexedX, false, RMW, Stable),
	0xf8: def(Sed, 1, 2, Implied, false, Read),
	0xf9: def(Sbc, 3, 4, AbsoluteIndexedY, true, Read),
	0xfa: undoc(NOP, 1, 2, Implied, false, Read, Stable),
	0xfb: undoc(ISC, 3, 7, AbsoluteIndexedY, false, RMW, Stable),
	0xfc: undoc(NOP, 3, 4, AbsoluteIndexedX, true, Read, Stable),
	0xfd: def(Sbc, 3, 4, AbsoluteIndexedX, true, Read),
	0xfe: def(Inc, 3, 7, AbsoluteIndexedX, false, RMW),
	0xff: undoc(ISC, 3, 7, AbsoluteIndexedX, false, RMW, Stable),
}

// Definitions holds the fully-populated 256-entry opcode table, indexed by
// opcode value.
var Definitions [256]Definition

func init() {
	for i := range table {
		d := table[i]
		d.OpCode = uint8(i)
		Definitions[i] = d
	}
}

// GetDefinitions returns the opcode table as a slice of pointers, indexed
// by opcode value, for a CPU instance's per-instruction lookup.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(Definitions))
	for i := range Definitions {
		defs[i] = &Definitions[i]
	}
	return defs
}
