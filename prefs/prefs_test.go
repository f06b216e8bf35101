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

package prefs_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/prefs"
)

func TestNewPreferencesDefaultsDeterministic(t *testing.T) {
	p := prefs.NewPreferences(prefs.ConsoleA, prefs.NTSC)
	if p.RandomState {
		t.Fatalf("expected RandomState false by default")
	}
	if p.Console != prefs.ConsoleA {
		t.Fatalf("got console %s, want %s", p.Console, prefs.ConsoleA)
	}
	if p.TV != prefs.NTSC {
		t.Fatalf("got TV standard %s, want %s", p.TV, prefs.NTSC)
	}
}

func TestConsoleString(t *testing.T) {
	if prefs.ConsoleA.String() != "System-A" {
		t.Fatalf("unexpected ConsoleA string: %q", prefs.ConsoleA.String())
	}
	if prefs.ConsoleB.String() != "System-B" {
		t.Fatalf("unexpected ConsoleB string: %q", prefs.ConsoleB.String())
	}
}

func TestTVStandardString(t *testing.T) {
	cases := map[prefs.TVStandard]string{
		prefs.NTSC:  "NTSC",
		prefs.PAL:   "PAL",
		prefs.PALM:  "PAL-M",
		prefs.SECAM: "SECAM",
	}
	for standard, want := range cases {
		if got := standard.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
