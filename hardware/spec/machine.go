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

package spec

// MachineType identifies the system and television spec an instance is
// emulating: System-A (2600) or System-B (7800), each in an NTSC or PAL
// variant, with three optional 7800 hardware revisions (bios, high-score
// cartridge, expansion module).
type MachineType int

const (
	UnknownMachine MachineType = iota
	A2600NTSC
	A2600PAL
	A7800NTSC
	A7800NTSCBios
	A7800NTSCHSC
	A7800NTSCXM
	A7800PAL
	A7800PALBios
	A7800PALHSC
	A7800PALXM
)

var machineTypeNames = map[MachineType]string{
	UnknownMachine: "unknown",
	A2600NTSC:      "2600 NTSC",
	A2600PAL:       "2600 PAL",
	A7800NTSC:      "7800 NTSC",
	A7800NTSCBios:  "7800 NTSC (BIOS)",
	A7800NTSCHSC:   "7800 NTSC (high score cart)",
	A7800NTSCXM:    "7800 NTSC (expansion module)",
	A7800PAL:       "7800 PAL",
	A7800PALBios:   "7800 PAL (BIOS)",
	A7800PALHSC:    "7800 PAL (high score cart)",
	A7800PALXM:     "7800 PAL (expansion module)",
}

func (mt MachineType) String() string {
	if s, ok := machineTypeNames[mt]; ok {
		return s
	}
	return "unknown"
}

// Is2600 returns true for any System-A variant.
func (mt MachineType) Is2600() bool {
	return mt == A2600NTSC || mt == A2600PAL
}

// Is7800 returns true for any System-B variant.
func (mt MachineType) Is7800() bool {
	switch mt {
	case A7800NTSC, A7800NTSCBios, A7800NTSCHSC, A7800NTSCXM,
		A7800PAL, A7800PALBios, A7800PALHSC, A7800PALXM:
		return true
	default:
		return false
	}
}

// IsNTSC returns true for any NTSC variant, of either system.
func (mt MachineType) IsNTSC() bool {
	switch mt {
	case A2600NTSC, A7800NTSC, A7800NTSCBios, A7800NTSCHSC, A7800NTSCXM:
		return true
	default:
		return false
	}
}

// IsPAL returns true for any PAL variant, of either system.
func (mt MachineType) IsPAL() bool {
	switch mt {
	case A2600PAL, A7800PAL, A7800PALBios, A7800PALHSC, A7800PALXM:
		return true
	default:
		return false
	}
}
