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

import (
	"github.com/kessler-labs/retrocore/hardware/television/coords"
	"github.com/kessler-labs/retrocore/hardware/television/limiter"
)

// Television owns the frame buffer a video chip renders into, tracks which
// frame is currently being produced, and optionally paces frame delivery
// to a real-world refresh rate through a limiter.Limiter.
type Television struct {
	*FrameBuffer

	limiter *limiter.Limiter
	frame   int
}

// NewTelevision builds a Television with a freshly allocated FrameBuffer.
// refreshHz of zero leaves frame delivery unpaced, suitable for batch
// regression tests that want every frame as fast as possible.
func NewTelevision(pitch, scanlines int, refreshHz float32) *Television {
	tv := &Television{
		FrameBuffer: NewFrameBuffer(pitch, scanlines),
		frame:       coords.FrameIsUndefined,
	}
	if refreshHz > 0 {
		tv.limiter = limiter.NewLimiter()
		tv.limiter.SetRefreshRate(refreshHz)
	}
	return tv
}

// FrameBegin starts a new frame: the frame counter advances and the frame
// buffer is cleared in place so the outgoing frame's bytes never leak into
// the next one.
func (tv *Television) FrameBegin() {
	tv.frame++
	tv.FrameBuffer.Clear()
}

// FrameEnd completes the current frame, blocking on the configured refresh
// rate if one was set.
func (tv *Television) FrameEnd() {
	if tv.limiter != nil {
		tv.limiter.CheckFrame()
	}
}

// Frame returns the index of the frame currently being produced, or the
// last completed frame if called between FrameEnd and the next FrameBegin.
func (tv *Television) Frame() int {
	return tv.frame
}
