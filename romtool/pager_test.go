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

package romtool_test

import (
	"strings"
	"testing"

	"github.com/kessler-labs/retrocore/romtool"
)

func TestNewPagerCoversAPartialFinalPageWithOneExtraPage(t *testing.T) {
	rom := make([]byte, romtool.BytesPerLine*romtool.LinesPerPage+1)
	p := romtool.NewPager(rom)

	if got := p.NumPages(); got != 2 {
		t.Fatalf("got %d pages for one byte past a full page, wanted 2", got)
	}
}

func TestEmptyROMStillReportsOnePage(t *testing.T) {
	p := romtool.NewPager(nil)
	if got := p.NumPages(); got != 1 {
		t.Fatalf("got %d pages for an empty ROM, wanted 1", got)
	}
}

func TestNextAndPrevPageClampAtTheEnds(t *testing.T) {
	rom := make([]byte, romtool.BytesPerLine*romtool.LinesPerPage*3)
	p := romtool.NewPager(rom)

	if !p.AtFirstPage() {
		t.Fatalf("expected a fresh pager to start on the first page")
	}

	p.PrevPage()
	if p.Page() != 0 {
		t.Fatalf("got page %d after PrevPage from page 0, wanted 0", p.Page())
	}

	p.NextPage()
	p.NextPage()
	if !p.AtLastPage() {
		t.Fatalf("expected page %d to be the last of %d", p.Page(), p.NumPages())
	}

	p.NextPage()
	if p.Page() != p.NumPages()-1 {
		t.Fatalf("got page %d after NextPage past the end, wanted clamped to %d", p.Page(), p.NumPages()-1)
	}
}

func TestRenderShowsAddressHexAndASCIIGutter(t *testing.T) {
	rom := make([]byte, romtool.BytesPerLine)
	rom[0] = 0x41 // 'A'
	rom[1] = 0x00

	out := romtool.NewPager(rom).Render()

	if !strings.Contains(out, "0000 ") {
		t.Fatalf("expected rendered page to contain the address column, got:\n%s", out)
	}
	if !strings.Contains(out, "41 00") {
		t.Fatalf("expected rendered page to contain the hex byte pair '41 00', got:\n%s", out)
	}
	if !strings.Contains(out, "A.") {
		t.Fatalf("expected rendered page's ASCII gutter to show 'A.' for 0x41,0x00, got:\n%s", out)
	}
}
