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

// Package polycounter provides the divide-by-four counter that drives the
// colour clock of the video chips: every four calls to Tick() advance Count
// by one, and Count wraps back to zero (reporting true) once it passes the
// value set by SetResetPattern.
package polycounter

import (
	"fmt"
	"strconv"
)

// Polycounter is a six bit counter, ticked at four times the rate of Count.
type Polycounter struct {
	Count int
	Phase int

	maxCount   int
	resetPoint int
}

// New6Bit creates a Polycounter with the default six bit (0-63) reset
// pattern.
func New6Bit() *Polycounter {
	return &Polycounter{maxCount: 63}
}

// SetResetPattern sets the maximum count value, expressed as a binary
// string (eg. "111111" for the default six bit range).
func (pk *Polycounter) SetResetPattern(pattern string) {
	v, err := strconv.ParseInt(pattern, 2, 64)
	if err != nil {
		return
	}
	pk.maxCount = int(v)
}

// SetResetPoint records the count value used as the anchor for Sync() when
// called with a positive adjustment.
func (pk *Polycounter) SetResetPoint(resetPoint int) {
	pk.resetPoint = resetPoint
}

// Tick advances the counter by one phase, returning true if the advance
// wrapped Count back around to zero.
func (pk *Polycounter) Tick() bool {
	pk.Phase++
	if pk.Phase > 3 {
		pk.Phase = 0
		pk.Count++
		if pk.Count > pk.maxCount {
			pk.Count = 0
			return true
		}
	}
	return false
}

// Sync sets pk's Count/Phase to match ref's reset point, adjusted by adj
// clocks. A zero or negative adj counts forward from zero; a positive adj
// counts backward from ref's reset point.
func (pk *Polycounter) Sync(ref *Polycounter, adj int) {
	raw := -adj

	if raw >= 0 {
		pk.Count = raw / 4
		pk.Phase = raw % 4
		return
	}

	pk.Count = ref.resetPoint - adj/4
	pk.Phase = ((raw % 4) + 4) % 4
}

// MachineInfoTerse returns a compact "count@phase" representation.
func (pk *Polycounter) MachineInfoTerse() string {
	return fmt.Sprintf("%d@%d", pk.Count, pk.Phase)
}
