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

package maria

// buildLineRAM walks the display list starting at m.dl, decoding each
// entry's header (4 or 5 bytes, depending on whether byte 1's low five
// bits are all zero) and dispatching to the render mode the header and
// CTRL.RM together select. A DL entry with byte1&0x5f == 0 terminates the
// list. Returns the DMA colour clocks the walk consumed.
func (m *Maria) buildLineRAM() int {
	dmaClocks := 0
	dl := m.dl

	for {
		modeByte := m.dmaRead(dl + 1)
		if modeByte&0x5f == 0 {
			break
		}

		m.indMode = false

		var graphAddr uint16
		if modeByte&0x1f == 0 {
			dl0 := m.dmaRead(dl)
			dl1 := m.dmaRead(dl + 1)
			dl2 := m.dmaRead(dl + 2)
			dl3 := m.dmaRead(dl + 3)
			dl4 := m.dmaRead(dl + 4)
			dl += 5

			graphAddr = word(dl0, dl2)
			m.wm = dl1&0x80 != 0
			m.indMode = dl1&0x20 != 0
			m.paletteNo = (dl3 & 0xe0) >> 3
			m.width = int(^dl3&0x1f) + 1
			m.hpos = int(dl4)

			dmaClocks += 10
		} else {
			dl0 := m.dmaRead(dl)
			dl1 := m.dmaRead(dl + 1)
			dl2 := m.dmaRead(dl + 2)
			dl3 := m.dmaRead(dl + 3)
			dl += 4

			graphAddr = word(dl0, dl2)
			m.paletteNo = (dl1 & 0xe0) >> 3
			m.width = int(^dl1&0x1f) + 1
			m.hpos = int(dl3)

			dmaClocks += 8
		}

		if m.rm != 1 {
			if m.indMode {
				if m.cwidth {
					dmaClocks += m.width * 9
				} else {
					dmaClocks += m.width * 6
				}
			} else {
				dmaClocks += m.width * 3
			}
		}

		switch m.rm {
		case 0:
			if m.wm {
				m.buildLineRAM160B(graphAddr)
			} else {
				m.buildLineRAM160A(graphAddr)
			}
		case 1:
			// Render mode 1 ignores this entry entirely.
		case 2:
			if m.wm {
				m.buildLineRAM320B(graphAddr)
			} else {
				m.buildLineRAM320D(graphAddr)
			}
		case 3:
			if m.wm {
				m.buildLineRAM320C(graphAddr)
			} else {
				m.buildLineRAM320A(graphAddr)
			}
		}
	}

	m.dl = dl
	return dmaClocks
}

// indirectBytes reports how many graphic bytes indirect/character mode
// reads per DL-entry byte: two when character-width-2 is also set.
func (m *Maria) indirectBytes() int {
	if m.indMode && m.cwidth {
		return 2
	}
	return 1
}

// nextDataAddr advances dataaddr for indirect mode by re-deriving it from
// CHARBASE, the current zone offset, and the graphic-index byte at
// graphaddr+i; in direct mode it is left untouched (the caller already
// advanced it after the previous byte).
func (m *Maria) nextDataAddr(graphaddr uint16, i int, dataaddr uint16) uint16 {
	if !m.indMode {
		return dataaddr
	}
	return word(m.dmaRead(graphaddr+uint16(i)), m.registers[regCHARBASE]+uint8(m.offset))
}

func (m *Maria) put(hpos int, value uint8) {
	m.lineRAM[hpos&0x1ff] = value
}

// buildLineRAM160A renders 160A: 2 bits per pixel, 4 pixels per byte,
// each pixel doubled horizontally, coloured from the DL-header palette.
func (m *Maria) buildLineRAM160A(graphaddr uint16) {
	indbytes := m.indirectBytes()
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		for j := 0; j < indbytes; j++ {
			if isHole(m.holey, dataaddr) {
				hpos += 8
				dataaddr++
				continue
			}

			d := m.dmaRead(dataaddr)
			dataaddr++

			for shift := 6; shift >= 0; shift -= 2 {
				c := (d >> uint(shift)) & 0x03
				if c != 0 {
					val := m.paletteNo | c
					m.put(hpos, val)
					m.put(hpos+1, val)
				}
				hpos += 2
			}
		}
	}
}

// buildLineRAM160B renders 160B: per-pixel palette, 2 pixels per byte,
// each doubled horizontally. Kangaroo mode clears transparent pixels.
func (m *Maria) buildLineRAM160B(graphaddr uint16) {
	indbytes := m.indirectBytes()
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		for j := 0; j < indbytes; j++ {
			if isHole(m.holey, dataaddr) {
				hpos += 4
				dataaddr++
				continue
			}

			d := m.dmaRead(dataaddr)
			dataaddr++

			// Upper pixel: colour from bits 7-6, palette low bits from 3-2.
			c := (d & 0xc0) >> 6
			if c != 0 {
				p := ((m.paletteNo >> 2) & 0x04) | ((d & 0x0c) >> 2)
				val := (p << 2) | c
				m.put(hpos, val)
				m.put(hpos+1, val)
			} else if m.kangaroo {
				m.put(hpos, 0)
				m.put(hpos+1, 0)
			}
			hpos += 2

			// Lower pixel: colour from bits 5-4, palette low bits from 1-0.
			c = (d & 0x30) >> 4
			if c != 0 {
				p := ((m.paletteNo >> 2) & 0x04) | (d & 0x03)
				val := (p << 2) | c
				m.put(hpos, val)
				m.put(hpos+1, val)
			} else if m.kangaroo {
				m.put(hpos, 0)
				m.put(hpos+1, 0)
			}
			hpos += 2
		}
	}
}

// buildLineRAM320A renders 320A: 1 bit per pixel, 8 pixels per byte, a
// single colour (palette colour 2) from the DL-header palette.
func (m *Maria) buildLineRAM320A(graphaddr uint16) {
	color := m.paletteNo | 2
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		if isHole(m.holey, dataaddr) {
			hpos += 8
			dataaddr++
			continue
		}

		d := m.dmaRead(dataaddr)
		dataaddr++

		for bit := 7; bit >= 0; bit-- {
			if d&(1<<uint(bit)) != 0 {
				m.put(hpos, color)
			} else if m.kangaroo {
				m.put(hpos, 0)
			}
			hpos++
		}
	}
}

// buildLineRAM320B renders 320B: 2-bit colour, 4 pixels per byte, with
// the colour bits for each pixel interleaved across the upper and lower
// nibbles. Transparency and Kangaroo handling follow the grouped
// upper/lower-nibble rule real hardware exhibits here.
func (m *Maria) buildLineRAM320B(graphaddr uint16) {
	indbytes := m.indirectBytes()
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		for j := 0; j < indbytes; j++ {
			if isHole(m.holey, dataaddr) {
				hpos += 4
				dataaddr++
				continue
			}

			d := m.dmaRead(dataaddr)
			dataaddr++

			pixel := func(c uint8, groupMask, zeroMask uint8) {
				switch {
				case c != 0:
					if d&groupMask != 0 || m.kangaroo {
						m.put(hpos, m.paletteNo|c)
					}
				case m.kangaroo:
					m.put(hpos, 0)
				case d&zeroMask != 0:
					m.put(hpos, 0)
				}
				hpos++
			}

			pixel(((d&0x80)>>6)|((d&0x08)>>3), 0xc0, 0xcc)
			pixel(((d&0x40)>>5)|((d&0x04)>>2), 0xc0, 0xcc)
			pixel(((d&0x20)>>4)|((d&0x02)>>1), 0x30, 0x33)
			pixel(((d&0x10)>>3)|(d&0x01), 0x30, 0x33)
		}
	}
}

// buildLineRAM320C renders 320C: 1 bit per pixel with per-pixel palette
// selection, 4 pixels per byte grouped in pairs sharing a palette.
func (m *Maria) buildLineRAM320C(graphaddr uint16) {
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		if isHole(m.holey, dataaddr) {
			hpos += 4
			dataaddr++
			continue
		}

		d := m.dmaRead(dataaddr)
		dataaddr++

		upper := (((d&0x0c)>>2)|((m.paletteNo>>2)&0x04))<<2 | 2
		if d&0x80 != 0 {
			m.put(hpos, upper)
		} else if m.kangaroo {
			m.put(hpos, 0)
		}
		hpos++
		if d&0x40 != 0 {
			m.put(hpos, upper)
		} else if m.kangaroo {
			m.put(hpos, 0)
		}
		hpos++

		lower := ((d&0x03)|((m.paletteNo>>2)&0x04))<<2 | 2
		if d&0x20 != 0 {
			m.put(hpos, lower)
		} else if m.kangaroo {
			m.put(hpos, 0)
		}
		hpos++
		if d&0x10 != 0 {
			m.put(hpos, lower)
		} else if m.kangaroo {
			m.put(hpos, 0)
		}
		hpos++
	}
}

// buildLineRAM320D renders 320D: 1 bit of graphic data per pixel, 8
// pixels per byte, combined with an alternating pair of DL-header
// palette bits to form a 2-bit colour index.
func (m *Maria) buildLineRAM320D(graphaddr uint16) {
	indbytes := m.indirectBytes()
	hpos := m.hpos << 1
	dataaddr := graphaddr + uint16(m.offset)<<8

	for i := 0; i < m.width; i++ {
		dataaddr = m.nextDataAddr(graphaddr, i, dataaddr)

		for j := 0; j < indbytes; j++ {
			if isHole(m.holey, dataaddr) {
				hpos += 8
				dataaddr++
				continue
			}

			d := m.dmaRead(dataaddr)
			dataaddr++

			paletteBit := func(odd bool) uint8 {
				if odd {
					return (m.paletteNo >> 2) & 1
				}
				return ((m.paletteNo >> 2) & 2) >> 1
			}

			shifts := [8]uint{6, 5, 4, 3, 2, 1, 0, 1}
			masks := [8]uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}
			for p := 0; p < 8; p++ {
				var bit uint8
				if p == 7 {
					bit = (d & masks[p]) << 1
				} else {
					bit = (d & masks[p]) >> shifts[p]
				}
				c := bit | paletteBit(p%2 != 0)
				if c != 0 {
					m.put(hpos, (m.paletteNo&0x10)|c)
				} else if m.kangaroo {
					m.put(hpos, 0)
				}
				hpos++
			}
		}
	}
}
