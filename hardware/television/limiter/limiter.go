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

// Package limiter paces frame delivery to a target refresh rate and reports
// the rate actually achieved, so a host loop can throttle itself to the
// console's real broadcast rate without drifting.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter blocks CheckFrame() calls so that they occur, on average, at the
// rate set by SetRefreshRate.
type Limiter struct {
	period time.Duration
	last   time.Time

	windowStart time.Time
	frameCount  int

	// Measured holds the most recently computed actual rate, as a
	// float32, safe to read concurrently with MeasureActual.
	Measured atomic.Value
}

// NewLimiter creates a Limiter with no refresh rate set.
func NewLimiter() *Limiter {
	l := &Limiter{}
	l.Measured.Store(float32(0))
	return l
}

// SetRefreshRate sets the target rate, in Hz, and resets the measurement
// window.
func (l *Limiter) SetRefreshRate(hz float32) {
	l.period = time.Duration(float64(time.Second) / float64(hz))
	l.last = time.Now()
	l.windowStart = l.last
	l.frameCount = 0
}

// CheckFrame blocks until the next frame boundary is due.
func (l *Limiter) CheckFrame() {
	next := l.last.Add(l.period)
	if d := time.Until(next); d > 0 {
		time.Sleep(d)
		l.last = next
	} else {
		l.last = time.Now()
	}
	l.frameCount++
}

// MeasureActual recomputes the achieved rate over the frames seen since the
// last SetRefreshRate call and stores it in Measured.
func (l *Limiter) MeasureActual() {
	elapsed := time.Since(l.windowStart)
	if elapsed <= 0 {
		return
	}
	rate := float32(float64(l.frameCount) / elapsed.Seconds())
	l.Measured.Store(rate)
}
