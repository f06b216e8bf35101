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

// Package cpu emulates the 6507/6502 microprocessor shared by both supported
// consoles. Like all 8-bit processors of the era, it executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// A CPU is created with NewCPU, which takes a cpubus.Memory implementation
// (the CPU's view of the address space) plus optional randomisation sources
// used only for power-on register state. See the bus package for the memory
// interface and the random/prefs packages for the randomisation sources.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle boundary
// of the instruction.
//
// Let's assume mem is an implementation of the cpubus.Memory interface loaded
// with instructions.
//
//	mc := cpu.NewCPU(nil, nil, mem)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The composer uses this to advance the video chip several times
// for every CPU cycle - the CPU clock runs at a fraction of the video chip's
// colour clock. See the tia and maria packages for details.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for more
// information. Very useful for debuggers.
//
// The NoFlowControl flag is used by the disassembly package to prevent the CPU
// from honouring "flow control" functions (ie. JMP, BNE, BEQ, etc.). See
// instructions package for classifications.
package cpu
