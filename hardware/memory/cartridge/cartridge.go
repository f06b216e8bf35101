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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package cartridge

import (
	"fmt"
	"strings"

	"github.com/kessler-labs/retrocore/cartridgeloader"
	"github.com/kessler-labs/retrocore/errors"
)

// Cartridge defines the information and operations for a VCS cartridge. It
// implements bus.CPUBus and bus.DebuggerBus, mapping addresses into whatever
// cartMapper the attached ROM data turned out to need.
type Cartridge struct {
	origin uint16
	memtop uint16

	// rebase is true for Family A mappers, which expect addresses
	// normalised to 0x0000-0x0fff (cartmapper's documented convention).
	// Family B mappers are written against the real CPU address instead
	// (see the comment at the top of cartridge_prosystem.go) so the
	// second system's Cartridge leaves addresses untouched.
	rebase bool

	// full path to the cartridge as stored on disk, or the descriptive name
	// given to in-memory data
	Filename string

	// the format requested when the cartridge was attached. "" or "AUTO"
	// means the format was decided by fingerprinting
	RequestedFormat string

	// hash of the binary as loaded. subsequent pokes to cartridge memory are
	// not reflected in this value
	Hash string

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for a System-A
// Cartridge, addressed as a 4K window at 0x1000-0x1fff.
func NewCartridge() *Cartridge {
	cart := &Cartridge{
		origin: 0x1000,
		memtop: 0x1fff,
		rebase: true,
	}
	cart.Eject()
	return cart
}

// NewCartridgeProSystem is the preferred method of initialisation for a
// System-B Cartridge, addressed over the full 0x4000-0xffff window. Unlike
// System-A, Family B mappers are written against the real CPU address, so
// this constructor leaves Read/Write/Peek/Poke addresses unrebased.
func NewCartridgeProSystem() *Cartridge {
	cart := &Cartridge{
		origin: 0x4000,
		memtop: 0xffff,
		rebase: false,
	}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.Filename, cart.mapper)
}

// Origin returns the first address of cartridge space.
func (cart *Cartridge) Origin() uint16 {
	return cart.origin
}

// Memtop returns the last address of cartridge space.
func (cart Cartridge) Memtop() uint16 {
	return cart.memtop
}

// Eject removes the attached ROM and replaces it with a stub mapper that
// errors on every access.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.RequestedFormat = ""
	cart.mapper = newEjected()
}

func (cart *Cartridge) normalise(addr uint16) uint16 {
	if cart.rebase {
		return addr & (cart.origin - 1)
	}
	return addr
}

// Read implements bus.CPUBus.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(cart.normalise(addr))
}

// Write implements bus.CPUBus.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(cart.normalise(addr), data)
}

// Peek implements bus.DebuggerBus. It reads without triggering any of the
// mapper's access side-effects such as bank switching.
func (cart Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.read(cart.normalise(addr))
}

// Poke implements bus.DebuggerBus, writing directly into the currently
// selected bank regardless of whether the address is normally writable.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.poke(cart.normalise(addr), data)
}

// Patch alters the cartridge data as though it had been different on disk,
// rather than performing a live write.
func (cart *Cartridge) Patch(offset uint16, data uint8) error {
	return cart.mapper.patch(offset, data)
}

// fingerprint8k decides between the handful of mapper schemes that are
// indistinguishable by size alone at 8192 bytes.
func (cart Cartridge) fingerprint8k(data []byte) func([]byte) (cartMapper, error) {
	if fingerprintTigervision(data) {
		return newTigervision
	}

	if fingerprintParkerBros(data) {
		return newparkerBros
	}

	return newAtari8k
}

// fingerprint16k decides between the mapper schemes possible at 16384 bytes.
func (cart Cartridge) fingerprint16k(data []byte) func([]byte) (cartMapper, error) {
	if fingerprintMnetwork(data) {
		return newMnetwork
	}

	return newAtari16k
}

// fingerprint guesses at a suitable cartMapper purely from the size of the
// ROM data, consulting the byte-pattern heuristics above to break ties.
func (cart *Cartridge) fingerprint(data []byte) error {
	var err error

	switch len(data) {
	case 2048:
		cart.mapper, err = newAtari2k(data)

	case 4096:
		cart.mapper, err = newAtari4k(data)

	case 8192:
		cart.mapper, err = cart.fingerprint8k(data)(data)

	case 12288:
		cart.mapper, err = newCBS(data)

	case 16384:
		cart.mapper, err = cart.fingerprint16k(data)(data)

	case 32768:
		cart.mapper, err = newAtari32k(data)

	default:
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("unrecognised cartridge size (%d bytes)", len(data)))
	}

	if err != nil {
		return err
	}

	if superchip, ok := cart.mapper.(optionalSuperchip); ok {
		superchip.addSuperchip()
	}

	return nil
}

// Attach loads the bytes described by cartload and maps them using either
// the requested format or, if none was given, fingerprinting.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	data, err := cartload.Load()
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.RequestedFormat = cartload.Format
	cart.mapper = newEjected()
	cart.Hash = cartload.Hash

	format := strings.ToUpper(strings.TrimSpace(cartload.Format))

	if format == "" || format == "AUTO" {
		return cart.fingerprint(data)
	}

	addSuperchip := false
	baseFormat := format
	if strings.HasSuffix(format, "+SC") {
		addSuperchip = true
		baseFormat = strings.TrimSuffix(format, "+SC")
	}

	switch baseFormat {
	case "2K":
		cart.mapper, err = newAtari2k(data)
	case "4K":
		cart.mapper, err = newAtari4k(data)
	case "F8":
		cart.mapper, err = newAtari8k(data)
	case "F6":
		cart.mapper, err = newAtari16k(data)
	case "F4":
		cart.mapper, err = newAtari32k(data)
	case "FA":
		cart.mapper, err = newCBS(data)
	case "E0":
		cart.mapper, err = newparkerBros(data)
	case "E7":
		cart.mapper, err = newMnetwork(data)
	case "3F":
		cart.mapper, err = newTigervision(data)
	case "DPC":
		cart.mapper, err = newDPC(data)

	case "7808":
		cart.mapper, err = newFlat7808(data)
	case "7816":
		cart.mapper, err = newFlat7816(data)
	case "7832":
		cart.mapper, err = newFlat7832(data)
	case "7848":
		cart.mapper, err = newFlat7848(data)
	case "ABSOLUTE":
		cart.mapper, err = newAbsolute78(data)
	case "ACTIVISION":
		cart.mapper, err = newActivision78(data)
	case "SUPERGAME":
		cart.mapper, err = newSuperGame128(data)
	case "SUPERGAME+RAM":
		cart.mapper, err = newSuperGame128RAM(data)
	case "SUPERGAME9":
		cart.mapper, err = newSuperGame9Bank(data)
	case "SUPERGAME4":
		cart.mapper, err = newSuperGame4Bank(data)
	case "SUPERGAME4+RAM":
		cart.mapper, err = newSuperGame4BankRAM(data)
	case "BANKSWITCHBOARD":
		cart.mapper, err = newBankswitchBoard(data, "BankswitchBoard")
	case "BANKSWITCHBOARD+RAM":
		cart.mapper, err = newBankswitchBoardRAM(data, "BankswitchBoard (+ RAM)")
	case "BANKSWITCHBOARD+ROM":
		cart.mapper, err = newBankswitchBoardExtraROM(data, "BankswitchBoard (+ extra ROM @ 0x4000)")

	default:
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("unsupported cartridge format (%s)", cartload.Format))
	}

	if err != nil {
		return err
	}

	if addSuperchip {
		superchip, ok := cart.mapper.(optionalSuperchip)
		if !ok || !superchip.addSuperchip() {
			return errors.Errorf(errors.CartridgeError, "error adding superchip")
		}
	}

	return nil
}

// Initialise resets the current mapper to its power-on state.
func (cart *Cartridge) Initialise() {
	cart.mapper.initialise()
}

// NumBanks returns the number of banks the attached ROM is divided into.
func (cart Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// GetBank returns the bank currently mapped to addr.
func (cart Cartridge) GetBank(addr uint16) int {
	return cart.mapper.getBank(cart.normalise(addr))
}

// SetBank maps bank to addr, if the mapper supports direct bank selection.
func (cart *Cartridge) SetBank(addr uint16, bank int) error {
	return cart.mapper.setBank(cart.normalise(addr), bank)
}

// SaveState returns an opaque snapshot of the mapper's internal state.
func (cart *Cartridge) SaveState() interface{} {
	return cart.mapper.saveState()
}

// RestoreState restores a snapshot previously returned by SaveState.
func (cart *Cartridge) RestoreState(state interface{}) error {
	return cart.mapper.restoreState(state)
}

// RAMInfo describes any cartridge RAM the attached mapper exposes.
func (cart Cartridge) RAMInfo() []RAMinfo {
	return cart.mapper.getRAMinfo()
}

// Listen notifies the cartridge of a write to an address outside of
// cartridge space. Tigervision cartridges bank switch this way.
func (cart *Cartridge) Listen(addr uint16, data uint8) {
	cart.mapper.listen(addr, data)
}
