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

package television

import "github.com/kessler-labs/retrocore/errors"

// FrameBuffer owns the two byte arrays a frame step fills: a palette
// indexed video image of Pitch*Scanlines bytes, and one little-endian
// 16 bit PCM sample per scanline. Both are rewritten in place every frame
// rather than reallocated.
type FrameBuffer struct {
	Pitch     int
	Scanlines int

	Video []uint8
	Audio []uint8
}

// NewFrameBuffer allocates a FrameBuffer sized for pitch columns (160 for
// System-A, 320 for System-B's widest render modes) by scanlines rows.
func NewFrameBuffer(pitch, scanlines int) *FrameBuffer {
	return &FrameBuffer{
		Pitch:     pitch,
		Scanlines: scanlines,
		Video:     make([]uint8, pitch*scanlines),
		Audio:     make([]uint8, 2*scanlines),
	}
}

// Clear zeroes both arrays in place without reallocating, ready for the
// next frame step to write into.
func (fb *FrameBuffer) Clear() {
	for i := range fb.Video {
		fb.Video[i] = 0
	}
	for i := range fb.Audio {
		fb.Audio[i] = 0
	}
}

// SetPixel writes a palette index at (scanline, x). Coordinates outside
// the buffer are silently discarded, matching the frame-buffer invariant
// that array lengths never change: a renderer driven by a chip's own
// hsync counter may occasionally compute a position one step ahead of
// the declared scanline range during HMOVE/DMA edge cases.
func (fb *FrameBuffer) SetPixel(scanline, x int, colorIndex uint8) {
	if scanline < 0 || scanline >= fb.Scanlines || x < 0 || x >= fb.Pitch {
		return
	}
	fb.Video[scanline*fb.Pitch+x] = colorIndex
}

// SetAudioSample writes one little-endian 16 bit PCM sample for scanline.
func (fb *FrameBuffer) SetAudioSample(scanline int, sample uint16) error {
	if scanline < 0 || scanline >= fb.Scanlines {
		return errors.Errorf(errors.Television, "audio sample scanline out of range")
	}
	fb.Audio[scanline*2] = uint8(sample)
	fb.Audio[scanline*2+1] = uint8(sample >> 8)
	return nil
}
