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

// Operator identifies the operation an opcode performs. Documented
// operators use the 6502's own mnemonic case; the NMOS chip's undocumented
// opcodes are given upper-case names and kept as distinct constants from
// any same-effect documented operator, even where the executing code
// folds the two together (SBC and SBC's illegal twin at 0xeb, for
// example), so that Definitions can still record which byte pattern was
// actually decoded.
type Operator int

const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators, named after the NMOS 6502's illegal opcode
	// mnemonics. kept upper-case to set them visually apart from the
	// documented instruction set above.
	AHX
	ANC
	ARR
	ASR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	NOP
	RLA
	RRA
	SAX
	SBC
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA
)

func (op Operator) String() string {
	switch op {
	case Nop:
		return "nop"
	case Adc:
		return "adc"
	case And:
		return "and"
	case Asl:
		return "asl"
	case Bcc:
		return "bcc"
	case Bcs:
		return "bcs"
	case Beq:
		return "beq"
	case Bit:
		return "bit"
	case Bmi:
		return "bmi"
	case Bne:
		return "bne"
	case Bpl:
		return "bpl"
	case Brk:
		return "brk"
	case Bvc:
		return "bvc"
	case Bvs:
		return "bvs"
	case Clc:
		return "clc"
	case Cld:
		return "cld"
	case Cli:
		return "cli"
	case Clv:
		return "clv"
	case Cmp:
		return "cmp"
	case Cpx:
		return "cpx"
	case Cpy:
		return "cpy"
	case Dec:
		return "dec"
	case Dex:
		return "dex"
	case Dey:
		return "dey"
	case Eor:
		return "eor"
	case Inc:
		return "inc"
	case Inx:
		return "inx"
	case Iny:
		return "iny"
	case Jmp:
		return "jmp"
	case Jsr:
		return "jsr"
	case Lda:
		return "lda"
	case Ldx:
		return "ldx"
	case Ldy:
		return "ldy"
	case Lsr:
		return "lsr"
	case Ora:
		return "ora"
	case Pha:
		return "pha"
	case Php:
		return "php"
	case Pla:
		return "pla"
	case Plp:
		return "plp"
	case Rol:
		return "rol"
	case Ror:
		return "ror"
	case Rti:
		return "rti"
	case Rts:
		return "rts"
	case Sbc:
		return "sbc"
	case Sec:
		return "sec"
	case Sed:
		return "sed"
	case Sei:
		return "sei"
	case Sta:
		return "sta"
	case Stx:
		return "stx"
	case Sty:
		return "sty"
	case Tax:
		return "tax"
	case Tay:
		return "tay"
	case Tsx:
		return "tsx"
	case Txa:
		return "txa"
	case Txs:
		return "txs"
	case Tya:
		return "tya"
	case AHX:
		return "ahx"
	case ANC:
		return "anc"
	case ARR:
		return "arr"
	case ASR:
		return "asr"
	case AXS:
		return "axs"
	case DCP:
		return "dcp"
	case ISC:
		return "isc"
	case KIL:
		return "kil"
	case LAS:
		return "las"
	case LAX:
		return "lax"
	case NOP:
		return "nop*"
	case RLA:
		return "rla"
	case RRA:
		return "rra"
	case SAX:
		return "sax"
	case SBC:
		return "sbc*"
	case SHX:
		return "shx"
	case SHY:
		return "shy"
	case SLO:
		return "slo"
	case SRE:
		return "sre"
	case TAS:
		return "tas"
	case XAA:
		return "xaa"
	default:
		return fmt.Sprintf("unknown operator (%d)", int(op))
	}
}
