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

// Package romtool is a small developer CLI for hex-dump paging of
// cartridge ROM images from a raw terminal, entirely outside the
// emulation core (§1 names command-line tooling as an external
// collaborator). Pager holds the paging logic as plain, terminal-free
// state so it can be unit tested; the raw-mode keyboard driver in
// terminal.go is the only part of the package that touches a real tty.
package romtool

import (
	"fmt"
	"strings"
)

// BytesPerLine is the number of ROM bytes shown on one hex-dump line.
const BytesPerLine = 16

// LinesPerPage is the number of hex-dump lines shown per page.
const LinesPerPage = 16

// bytesPerPage is the number of ROM bytes one page covers.
const bytesPerPage = BytesPerLine * LinesPerPage

// Pager holds an immutable ROM image and the byte offset of the page
// currently on screen.
type Pager struct {
	rom    []byte
	offset int
}

// NewPager wraps rom for paged hex-dump display, starting at offset 0.
func NewPager(rom []byte) *Pager {
	return &Pager{rom: rom}
}

// NumPages is the total number of pages needed to cover the ROM, at
// least 1 even for an empty image.
func (p *Pager) NumPages() int {
	n := (len(p.rom) + bytesPerPage - 1) / bytesPerPage
	if n == 0 {
		return 1
	}
	return n
}

// Page is the index of the page currently on screen, 0-based.
func (p *Pager) Page() int {
	return p.offset / bytesPerPage
}

// NextPage advances one page, clamped to the last page.
func (p *Pager) NextPage() {
	if p.Page() < p.NumPages()-1 {
		p.offset += bytesPerPage
	}
}

// PrevPage retreats one page, clamped to the first page.
func (p *Pager) PrevPage() {
	p.offset -= bytesPerPage
	if p.offset < 0 {
		p.offset = 0
	}
}

// AtFirstPage reports whether PrevPage would be a no-op.
func (p *Pager) AtFirstPage() bool {
	return p.Page() == 0
}

// AtLastPage reports whether NextPage would be a no-op.
func (p *Pager) AtLastPage() bool {
	return p.Page() == p.NumPages()-1
}

// Render formats the current page as a classic hex-dump: an address
// column, sixteen space-separated hex byte pairs, and an ASCII gutter
// showing printable bytes or a dot for anything outside 0x20-0x7e.
func (p *Pager) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "page %d/%d\n", p.Page()+1, p.NumPages())

	end := p.offset + bytesPerPage
	if end > len(p.rom) {
		end = len(p.rom)
	}

	for lineStart := p.offset; lineStart < end; lineStart += BytesPerLine {
		lineEnd := lineStart + BytesPerLine
		if lineEnd > end {
			lineEnd = end
		}
		line := p.rom[lineStart:lineEnd]

		fmt.Fprintf(&b, "%04x ", lineStart)
		for i := 0; i < BytesPerLine; i++ {
			if i < len(line) {
				fmt.Fprintf(&b, "%02x ", line[i])
			} else {
				b.WriteString("   ")
			}
		}

		b.WriteByte(' ')
		for _, v := range line {
			if v >= 0x20 && v < 0x7f {
				b.WriteByte(v)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
