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

package input

import (
	"sync"

	"github.com/kessler-labs/retrocore/errors"
	"github.com/kessler-labs/retrocore/hardware/spec"
)

// stateSize is the width of both the staging and captured arrays. Slots
// 11-14 are reserved and currently unused, but the array is kept at its
// full width so a later addition doesn't reshape either buffer.
const stateSize = 15

const (
	slotLeftJack = iota
	slotRightJack
	slotConsoleSwitches
	slotAction0
	slotAction1
	slotAction2
	slotAction3
)

// slotAuxiliary returns the ohms/light-gun slot for player (0-3).
func slotAuxiliary(player int) int { return 7 + player }

// slotAction returns the controller-action bitmask slot for player (0-3).
func slotAction(player int) int { return slotAction0 + player }

// rotationGrayCodes are the four quadrature positions a driving controller
// cycles through, read back out of State.DrivingState. The top two bits
// are held high to match the idle level of the other SWCHA lines they
// share a nibble with.
var rotationGrayCodes = [4]uint8{0x0f, 0x0d, 0x0c, 0x0e}

// State is the double-buffered input model shared by both systems: a
// staging array the host writes into, and a captured array the hardware
// reads during a frame. Capture is the only place the two ever touch.
type State struct {
	mu      sync.Mutex
	staging [stateSize]int32
	captured [stateSize]int32

	// rotation holds the latched driving-controller quadrant per jack
	// (player 0 and 1 only; players 2-3 have no driving-controller slot
	// on either system).
	rotation [2]int
}

// NewState returns a State with both jacks set to NoController and every
// other slot zeroed.
func NewState() *State {
	return &State{}
}

// SetJack assigns the controller type plugged into player's jack (0 or 1).
// Jack assignment takes effect immediately; it is not staged, since it
// models a cable being plugged in rather than a per-frame sample.
func (s *State) SetJack(player int, c spec.Controller) error {
	if player != 0 && player != 1 {
		return errors.Errorf(errors.InputError, "controller jacks are only defined for players 0 and 1")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging[player] = int32(c)
	s.captured[player] = int32(c)
	return nil
}

// RaiseInput sets or clears a single controller-action bit in the staging
// buffer for player (0-3).
func (s *State) RaiseInput(player int, action spec.ControllerAction, down bool) error {
	if player < 0 || player > 3 {
		return errors.Errorf(errors.InputError, "player out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bit := int32(1) << uint(action)
	if down {
		s.staging[slotAction(player)] |= bit
	} else {
		s.staging[slotAction(player)] &^= bit
	}
	return nil
}

// SetConsoleSwitch sets or clears a front-panel switch in the staging
// buffer. Console switches are shared by all players, hence the single
// slot regardless of player index.
func (s *State) SetConsoleSwitch(sw spec.ConsoleSwitch, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bit := int32(1) << uint(sw)
	if down {
		s.staging[slotConsoleSwitches] |= bit
	} else {
		s.staging[slotConsoleSwitches] &^= bit
	}
}

// SetOhms stages a paddle's potentiometer resistance for player (0-3).
func (s *State) SetOhms(player int, ohms int32) error {
	if player < 0 || player > 3 {
		return errors.Errorf(errors.InputError, "player out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging[slotAuxiliary(player)] = ohms
	return nil
}

// SetLightGun stages a light-gun screen position for player (0-3), packed
// as (scanline<<16 | hpos&0xffff) into the same slot SetOhms uses; a jack
// carries one or the other, never both.
func (s *State) SetLightGun(player, scanline, hpos int) error {
	if player < 0 || player > 3 {
		return errors.Errorf(errors.InputError, "player out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging[slotAuxiliary(player)] = int32(scanline)<<16 | int32(hpos&0xffff)
	return nil
}

// ClearPlayer zeroes a single player's action and auxiliary state in the
// staging buffer, leaving jack assignment and console switches untouched.
func (s *State) ClearPlayer(player int) error {
	if player < 0 || player > 3 {
		return errors.Errorf(errors.InputError, "player out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging[slotAction(player)] = 0
	s.staging[slotAuxiliary(player)] = 0
	return nil
}

// Capture atomically snapshots the staging buffer into the captured
// buffer. Called once at the start of a frame, before anything reads
// captured state for that frame.
func (s *State) Capture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = s.staging
}

// Jack returns the controller type captured for player's jack (0 or 1).
func (s *State) Jack(player int) spec.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player != 0 && player != 1 {
		return spec.NoController
	}
	return spec.Controller(s.captured[player])
}

// ConsoleSwitch reports whether a front-panel switch is active in the
// captured state.
func (s *State) ConsoleSwitch(sw spec.ConsoleSwitch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured[slotConsoleSwitches]&(int32(1)<<uint(sw)) != 0
}

// ActionState reports whether a controller action is active for player in
// the captured state.
func (s *State) ActionState(player int, action spec.ControllerAction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player < 0 || player > 3 {
		return false
	}
	return s.captured[slotAction(player)]&(int32(1)<<uint(action)) != 0
}

// Ohms returns the captured paddle resistance for player.
func (s *State) Ohms(player int) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player < 0 || player > 3 {
		return 0
	}
	return s.captured[slotAuxiliary(player)]
}

// LightGun returns the captured (scanline, hpos) light-gun position for
// player.
func (s *State) LightGun(player int) (scanline, hpos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player < 0 || player > 3 {
		return 0, 0
	}
	packed := s.captured[slotAuxiliary(player)]
	return int(packed >> 16), int(packed & 0xffff)
}

// DrivingState returns the 4-bit quadrature gray code for the driving
// controller on player's jack (0 or 1). If any of the four driving
// actions is active in the captured state, the latched rotation quadrant
// advances to the highest-numbered one found; otherwise the previously
// latched quadrant is reused, matching a real wheel that stays put
// between clicks.
func (s *State) DrivingState(player int) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player != 0 && player != 1 {
		return 0
	}
	actions := s.captured[slotAction(player)]
	for i := 0; i < 4; i++ {
		if actions&(int32(1)<<uint(int(spec.ActionDriving0)+i)) != 0 {
			s.rotation[player] = i
		}
	}
	return rotationGrayCodes[s.rotation[player]]
}
