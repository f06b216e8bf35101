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

package cartridge

import (
	"fmt"

	"github.com/kessler-labs/retrocore/errors"
)

// The mappers in this file serve the second system's much larger (48K)
// cartridge window. Unlike the Family A mappers above, addresses here are
// the real CPU address (0x4000-0xffff) and are not rebased to zero - the
// window is too big, and too irregularly carved up between fixed and
// switchable regions, for that convention to simplify anything.

// flat78 is the non-bankswitched case: 8K, 16K or 32K of ROM mapped flat
// somewhere below 0xffff, and the 48K case where two fixed regions meet at
// 0x8000.
type flat78 struct {
	description string
	origin      uint16
	rom         []uint8
}

func newFlat78(data []byte, origin uint16, description string) (cartMapper, error) {
	cart := &flat78{
		description: description,
		origin:      origin,
		rom:         make([]uint8, len(data)),
	}
	copy(cart.rom, data)
	return cart, nil
}

func newFlat7808(data []byte) (cartMapper, error) {
	if len(data) != 8192 {
		return nil, errors.Errorf(errors.CartridgeError, "7808: wrong number of bytes in the cartridge file")
	}
	return newFlat78(data, 0xe000, "7800 8k flat")
}

func newFlat7816(data []byte) (cartMapper, error) {
	if len(data) != 16384 {
		return nil, errors.Errorf(errors.CartridgeError, "7816: wrong number of bytes in the cartridge file")
	}
	return newFlat78(data, 0xc000, "7800 16k flat")
}

func newFlat7832(data []byte) (cartMapper, error) {
	if len(data) != 32768 {
		return nil, errors.Errorf(errors.CartridgeError, "7832: wrong number of bytes in the cartridge file")
	}
	return newFlat78(data, 0x8000, "7800 32k flat")
}

func newFlat7848(data []byte) (cartMapper, error) {
	if len(data) != 49152 {
		return nil, errors.Errorf(errors.CartridgeError, "7848: wrong number of bytes in the cartridge file")
	}
	return newFlat78(data, 0x4000, "7800 48k flat")
}

func (cart flat78) String() string {
	return cart.description
}

func (cart *flat78) initialise() {
}

func (cart *flat78) read(addr uint16) (uint8, error) {
	if addr < cart.origin {
		return 0, errors.Errorf(errors.UnreadableAddress, addr)
	}
	idx := int(addr - cart.origin)
	if idx >= len(cart.rom) {
		return 0, errors.Errorf(errors.UnreadableAddress, addr)
	}
	return cart.rom[idx], nil
}

func (cart *flat78) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.UnwritableAddress, addr)
}

func (cart flat78) numBanks() int {
	return 1
}

func (cart flat78) getBank(addr uint16) int {
	return 0
}

func (cart *flat78) setBank(addr uint16, bank int) error {
	if bank != 0 {
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("%s: invalid bank [%d]", cart.description, bank))
	}
	return nil
}

func (cart *flat78) saveState() interface{} {
	return nil
}

func (cart *flat78) restoreState(state interface{}) error {
	return nil
}

func (cart *flat78) listen(addr uint16, data uint8) {
}

func (cart *flat78) poke(addr uint16, data uint8) error {
	if addr < cart.origin || int(addr-cart.origin) >= len(cart.rom) {
		return errors.Errorf(errors.UnpokeableAddress, addr)
	}
	cart.rom[addr-cart.origin] = data
	return nil
}

func (cart *flat78) patch(offset uint16, data uint8) error {
	if int(offset) >= len(cart.rom) {
		return errors.Errorf(errors.UnpatchableCartType, cart.description)
	}
	cart.rom[offset] = data
	return nil
}

func (cart flat78) getRAMinfo() []RAMinfo {
	return nil
}

// superGame78 implements the SuperGame and BankswitchBoard families. Both
// bank switch a 16K window at 0x8000-0xbfff by writing anywhere in that same
// range, select the bank from the low bits of the value written, and fix
// 0xc000-0xffff to the cartridge's last bank. They differ only in bank
// count, and in the optional extra ROM/RAM/POKEY trimmings described by
// spec table 4.6, which is what the constructor functions below configure.
type superGame78 struct {
	description string

	banks [][]uint8
	bank  int

	bankMask int

	// when non-nil, 0x4000-0x7fff is a fixed extra ROM bank (BankswitchBoard's
	// "extra ROM in low region") rather than being left unmapped for the
	// POKEY/RAM overlay below
	lowROM []uint8

	// when true, 0x4000-0x7fff is 16K of cartridge RAM whenever bit 4 of the
	// most recently written bank-select value is set
	ramOverlay    bool
	ramOverlayOn  bool
	ram           []uint8
	ramInfo       []RAMinfo
}

func newSuperGame78(data []byte, bankSize int, description string, lowROM []uint8, ramOverlay bool) (*superGame78, error) {
	if bankSize <= 0 || len(data)%bankSize != 0 {
		return nil, errors.Errorf(errors.CartridgeError, fmt.Sprintf("%s: wrong number of bytes in the cartridge file", description))
	}

	numBanks := len(data) / bankSize

	cart := &superGame78{
		description: description,
		banks:       make([][]uint8, numBanks),
		bankMask:    numBanks - 1,
		lowROM:      lowROM,
		ramOverlay:  ramOverlay,
	}

	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, bankSize)
		offset := k * bankSize
		copy(cart.banks[k], data[offset:offset+bankSize])
	}

	if ramOverlay {
		cart.ram = make([]uint8, 16384)
		cart.ramInfo = []RAMinfo{{
			Label:       "SuperGame RAM",
			Active:      false,
			ReadOrigin:  0x4000,
			ReadMemtop:  0x7fff,
			WriteOrigin: 0x4000,
			WriteMemtop: 0x7fff,
		}}
	}

	cart.initialise()

	return cart, nil
}

func newSuperGame128(data []byte) (cartMapper, error) {
	return newSuperGame78(data, 16384, "SuperGame 128k", nil, false)
}

func newSuperGame128RAM(data []byte) (cartMapper, error) {
	return newSuperGame78(data, 16384, "SuperGame 128k (+ RAM @ 0x4000)", nil, true)
}

func newSuperGame9Bank(data []byte) (cartMapper, error) {
	return newSuperGame78(data, 16384, "SuperGame 9-bank 144k", nil, false)
}

func newSuperGame4Bank(data []byte) (cartMapper, error) {
	return newSuperGame78(data, 16384, "SuperGame 4-bank 64k", nil, false)
}

func newSuperGame4BankRAM(data []byte) (cartMapper, error) {
	return newSuperGame78(data, 16384, "SuperGame 4-bank 64k (+ RAM @ 0x4000)", nil, true)
}

func newBankswitchBoard(data []byte, description string) (cartMapper, error) {
	return newSuperGame78(data, 16384, description, nil, false)
}

func newBankswitchBoardRAM(data []byte, description string) (cartMapper, error) {
	return newSuperGame78(data, 16384, description, nil, true)
}

// newBankswitchBoardExtraROM handles the BankswitchBoard variant that ships
// a fixed extra 16K of ROM at 0x4000-0x7fff (the header's "Bank6@0x4000"
// bit) ahead of the switchable banks.
func newBankswitchBoardExtraROM(data []byte, description string) (cartMapper, error) {
	const bankSize = 16384
	if len(data) < bankSize {
		return nil, errors.Errorf(errors.CartridgeError, fmt.Sprintf("%s: wrong number of bytes in the cartridge file", description))
	}

	lowROM := make([]uint8, bankSize)
	copy(lowROM, data[:bankSize])

	return newSuperGame78(data[bankSize:], bankSize, description, lowROM, false)
}

func (cart superGame78) String() string {
	return fmt.Sprintf("%s bank: %d", cart.description, cart.bank)
}

func (cart *superGame78) initialise() {
	cart.bank = 0
	cart.ramOverlayOn = false
	for i := range cart.ram {
		cart.ram[i] = 0x00
	}
}

func (cart *superGame78) read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0xc000:
		last := cart.banks[len(cart.banks)-1]
		return last[addr-0xc000], nil

	case addr >= 0x8000:
		bank := cart.banks[cart.bank]
		return bank[addr-0x8000], nil

	case addr >= 0x4000:
		if cart.ramOverlay && cart.ramOverlayOn {
			return cart.ram[addr-0x4000], nil
		}
		if cart.lowROM != nil {
			return cart.lowROM[addr-0x4000], nil
		}
		return 0, errors.Errorf(errors.UnreadableAddress, addr)
	}

	return 0, errors.Errorf(errors.UnreadableAddress, addr)
}

func (cart *superGame78) write(addr uint16, data uint8) error {
	switch {
	case addr >= 0x8000 && addr <= 0xbfff:
		cart.bank = int(data) & cart.bankMask
		if cart.ramOverlay {
			cart.ramOverlayOn = data&0x10 != 0
			if len(cart.ramInfo) == 1 {
				cart.ramInfo[0].Active = cart.ramOverlayOn
			}
		}
		return nil

	case addr >= 0x4000 && addr < 0x8000 && cart.ramOverlay && cart.ramOverlayOn:
		cart.ram[addr-0x4000] = data
		return nil
	}

	return errors.Errorf(errors.UnwritableAddress, addr)
}

func (cart superGame78) numBanks() int {
	return len(cart.banks)
}

func (cart superGame78) getBank(addr uint16) int {
	if addr >= 0xc000 {
		return len(cart.banks) - 1
	}
	return cart.bank
}

func (cart *superGame78) setBank(addr uint16, bank int) error {
	if bank < 0 || bank >= len(cart.banks) {
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("%s: invalid bank [%d]", cart.description, bank))
	}
	cart.bank = bank
	return nil
}

func (cart *superGame78) saveState() interface{} {
	ram := make([]uint8, len(cart.ram))
	copy(ram, cart.ram)
	return []interface{}{cart.bank, cart.ramOverlayOn, ram}
}

func (cart *superGame78) restoreState(state interface{}) error {
	s := state.([]interface{})
	cart.bank = s[0].(int)
	cart.ramOverlayOn = s[1].(bool)
	copy(cart.ram, s[2].([]uint8))
	return nil
}

func (cart *superGame78) listen(addr uint16, data uint8) {
}

func (cart *superGame78) poke(addr uint16, data uint8) error {
	if addr >= 0x8000 {
		bank := cart.banks[cart.getBank(addr)]
		var idx uint16
		if addr >= 0xc000 {
			idx = addr - 0xc000
		} else {
			idx = addr - 0x8000
		}
		bank[idx] = data
		return nil
	}
	return errors.Errorf(errors.UnpokeableAddress, addr)
}

func (cart *superGame78) patch(offset uint16, data uint8) error {
	bankSize := len(cart.banks[0])
	bank := int(offset) / bankSize
	if bank >= len(cart.banks) {
		return errors.Errorf(errors.UnpatchableCartType, cart.description)
	}
	cart.banks[bank][int(offset)%bankSize] = data
	return nil
}

func (cart superGame78) getRAMinfo() []RAMinfo {
	return cart.ramInfo
}

// absolute78 implements the Absolute / F18 Hornet 64K scheme: a fixed low
// 16K, a 2-bank switched mid 16K selected by bit 1 of any write to
// 0x8000-0xbfff, and a fixed high 16K.
type absolute78 struct {
	low  []uint8
	mid  [2][]uint8
	high []uint8
	bank int
}

func newAbsolute78(data []byte) (cartMapper, error) {
	const bankSize = 16384
	if len(data) != bankSize*4 {
		return nil, errors.Errorf(errors.CartridgeError, "Absolute (78AB): wrong number of bytes in the cartridge file")
	}

	cart := &absolute78{}
	cart.low = make([]uint8, bankSize)
	copy(cart.low, data[0:bankSize])
	cart.mid[0] = make([]uint8, bankSize)
	copy(cart.mid[0], data[bankSize:bankSize*2])
	cart.mid[1] = make([]uint8, bankSize)
	copy(cart.mid[1], data[bankSize*2:bankSize*3])
	cart.high = make([]uint8, bankSize)
	copy(cart.high, data[bankSize*3:bankSize*4])

	return cart, nil
}

func (cart absolute78) String() string {
	return fmt.Sprintf("Absolute (F18 Hornet) bank: %d", cart.bank)
}

func (cart *absolute78) initialise() {
	cart.bank = 0
}

func (cart *absolute78) read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0xc000:
		return cart.high[addr-0xc000], nil
	case addr >= 0x8000:
		return cart.mid[cart.bank][addr-0x8000], nil
	case addr >= 0x4000:
		return cart.low[addr-0x4000], nil
	}
	return 0, errors.Errorf(errors.UnreadableAddress, addr)
}

func (cart *absolute78) write(addr uint16, data uint8) error {
	if addr >= 0x8000 && addr <= 0xbfff {
		cart.bank = int(data>>1) & 0x01
		return nil
	}
	return errors.Errorf(errors.UnwritableAddress, addr)
}

func (cart absolute78) numBanks() int {
	return 2
}

func (cart absolute78) getBank(addr uint16) int {
	return cart.bank
}

func (cart *absolute78) setBank(addr uint16, bank int) error {
	if bank < 0 || bank > 1 {
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("Absolute (78AB): invalid bank [%d]", bank))
	}
	cart.bank = bank
	return nil
}

func (cart *absolute78) saveState() interface{} {
	return cart.bank
}

func (cart *absolute78) restoreState(state interface{}) error {
	cart.bank = state.(int)
	return nil
}

func (cart *absolute78) listen(addr uint16, data uint8) {
}

func (cart *absolute78) poke(addr uint16, data uint8) error {
	switch {
	case addr >= 0xc000:
		cart.high[addr-0xc000] = data
	case addr >= 0x8000:
		cart.mid[cart.bank][addr-0x8000] = data
	case addr >= 0x4000:
		cart.low[addr-0x4000] = data
	default:
		return errors.Errorf(errors.UnpokeableAddress, addr)
	}
	return nil
}

func (cart *absolute78) patch(offset uint16, data uint8) error {
	const bankSize = 16384
	switch {
	case offset < bankSize:
		cart.low[offset] = data
	case offset < bankSize*2:
		cart.mid[0][offset-bankSize] = data
	case offset < bankSize*3:
		cart.mid[1][offset-bankSize*2] = data
	case int(offset) < bankSize*4:
		cart.high[offset-bankSize*3] = data
	default:
		return errors.Errorf(errors.UnpatchableCartType, "Absolute (78AB)")
	}
	return nil
}

func (cart absolute78) getRAMinfo() []RAMinfo {
	return nil
}

// activision78 implements the Activision / Double Dragon 128K scheme: eight
// 16K banks, selected by writing to any of 0xff80-0xff87 (the low three
// bits of the address pick the bank). 0xc000-0xffff shows the selected
// bank; 0x8000-0xbfff always shows the bank two behind the selected one,
// wrapping, giving each of the eight banks a fixed neighbour relationship.
type activision78 struct {
	banks [][]uint8
	bank  int
}

func newActivision78(data []byte) (cartMapper, error) {
	const bankSize = 16384
	const numBanks = 8
	if len(data) != bankSize*numBanks {
		return nil, errors.Errorf(errors.CartridgeError, "Activision (78AC): wrong number of bytes in the cartridge file")
	}

	cart := &activision78{banks: make([][]uint8, numBanks)}
	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, bankSize)
		offset := k * bankSize
		copy(cart.banks[k], data[offset:offset+bankSize])
	}

	return cart, nil
}

func (cart activision78) String() string {
	return fmt.Sprintf("Activision (Double Dragon) bank: %d", cart.bank)
}

func (cart *activision78) initialise() {
	cart.bank = 0
}

func (cart *activision78) lowBank() int {
	return ((cart.bank - 2) + len(cart.banks)) % len(cart.banks)
}

func (cart *activision78) read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0xc000:
		return cart.banks[cart.bank][addr-0xc000], nil
	case addr >= 0x8000:
		return cart.banks[cart.lowBank()][addr-0x8000], nil
	}
	return 0, errors.Errorf(errors.UnreadableAddress, addr)
}

func (cart *activision78) write(addr uint16, data uint8) error {
	if addr >= 0xff80 && addr <= 0xff87 {
		cart.bank = int(addr - 0xff80)
		return nil
	}
	return errors.Errorf(errors.UnwritableAddress, addr)
}

func (cart activision78) numBanks() int {
	return len(cart.banks)
}

func (cart activision78) getBank(addr uint16) int {
	if addr >= 0x8000 && addr < 0xc000 {
		return cart.lowBank()
	}
	return cart.bank
}

func (cart *activision78) setBank(addr uint16, bank int) error {
	if bank < 0 || bank >= len(cart.banks) {
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("Activision (78AC): invalid bank [%d]", bank))
	}
	cart.bank = bank
	return nil
}

func (cart *activision78) saveState() interface{} {
	return cart.bank
}

func (cart *activision78) restoreState(state interface{}) error {
	cart.bank = state.(int)
	return nil
}

func (cart *activision78) listen(addr uint16, data uint8) {
}

func (cart *activision78) poke(addr uint16, data uint8) error {
	switch {
	case addr >= 0xc000:
		cart.banks[cart.bank][addr-0xc000] = data
	case addr >= 0x8000:
		cart.banks[cart.lowBank()][addr-0x8000] = data
	default:
		return errors.Errorf(errors.UnpokeableAddress, addr)
	}
	return nil
}

func (cart *activision78) patch(offset uint16, data uint8) error {
	const bankSize = 16384
	bank := int(offset) / bankSize
	if bank >= len(cart.banks) {
		return errors.Errorf(errors.UnpatchableCartType, "Activision (78AC)")
	}
	cart.banks[bank][int(offset)%bankSize] = data
	return nil
}

func (cart activision78) getRAMinfo() []RAMinfo {
	return nil
}
