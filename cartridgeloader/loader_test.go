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

package cartridgeloader_test

import (
	"testing"

	"github.com/kessler-labs/retrocore/cartridgeloader"
)

func TestLoaderFromData(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("test", []byte{1, 2, 3, 4}, "F8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ld.Format != "F8" {
		t.Fatalf("got format %q, wanted F8", ld.Format)
	}

	data, err := ld.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("got %d bytes, wanted 4", len(data))
	}
	if ld.Hash == "" {
		t.Fatalf("expected hash to be populated")
	}
}

func TestLoaderFromDataEmpty(t *testing.T) {
	if _, err := cartridgeloader.NewLoaderFromData("test", nil, ""); err == nil {
		t.Fatalf("expected error for empty data")
	}
}

func TestLoaderFromFilenameEmpty(t *testing.T) {
	if _, err := cartridgeloader.NewLoaderFromFilename("  ", ""); err == nil {
		t.Fatalf("expected error for empty filename")
	}
}

func TestLoaderHashMismatch(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("test", []byte{1, 2, 3, 4}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ld.Hash = "0000000000000000000000000000000000000000"

	if _, err := ld.Load(); err == nil {
		t.Fatalf("expected hash mismatch error")
	}
}
