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

package soundfixture_test

import (
	"path/filepath"
	"testing"

	"github.com/kessler-labs/retrocore/hardware/television"
	"github.com/kessler-labs/retrocore/soundfixture"
)

func TestWriteAndReadWAVRoundTripsSamples(t *testing.T) {
	tv := television.NewTelevision(160, 8, 0)
	tv.FrameBegin()
	for s := 0; s < tv.Scanlines; s++ {
		if err := tv.SetAudioSample(s, uint16(s*1000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := soundfixture.WriteWAV(path, tv, 31440); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	got, err := soundfixture.ReadWAV(path)
	if err != nil {
		t.Fatalf("unexpected error reading fixture: %v", err)
	}

	want := soundfixture.ExtractSamples(tv)
	if len(got) != len(want) {
		t.Fatalf("sample count mismatch: got %d, wanted %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d mismatch: got %d, wanted %d", i, got[i], want[i])
		}
	}
}

func TestExtractSamplesPacksLittleEndianPairs(t *testing.T) {
	tv := television.NewTelevision(160, 2, 0)
	tv.FrameBegin()
	if err := tv.SetAudioSample(0, 0x1234); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tv.SetAudioSample(1, 0x2bcd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := soundfixture.ExtractSamples(tv)
	if got[0] != 0x1234 {
		t.Fatalf("got %#x, wanted 0x1234", got[0])
	}
	if got[1] != 0x2bcd {
		t.Fatalf("got %#x, wanted 0x2bcd", got[1])
	}
}
