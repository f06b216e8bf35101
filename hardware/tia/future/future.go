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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package future implements delayed writes: a register write that should
// not take effect until some number of colour clocks after the write
// instruction, such as a strobed reset or an HMOVE-delayed value.
package future

import (
	"fmt"
	"strings"
)

// Event is a payload scheduled to run after some number of Tick() calls.
type Event struct {
	ticker  *Ticker
	label   string
	payload func()

	remaining int
	ticks     int
	done      bool
}

// JustStarted returns true if the event has not yet observed a Tick() call.
func (ev *Event) JustStarted() bool {
	return ev.ticks == 0
}

// AboutToEnd returns true if the event will run on the next Tick() call.
func (ev *Event) AboutToEnd() bool {
	return ev.remaining <= 0
}

// RemainingCycles returns the number of Tick() calls before the event runs.
func (ev *Event) RemainingCycles() int {
	return ev.remaining
}

// Force runs the event's payload immediately and removes it from its ticker.
func (ev *Event) Force() {
	if ev.done {
		return
	}
	if ev.payload != nil {
		ev.payload()
	}
	ev.remaining = -1
	ev.done = true
	ev.ticker.remove(ev)
}

// Drop removes the event from its ticker without running its payload.
func (ev *Event) Drop() {
	if ev.done {
		return
	}
	ev.remaining = -1
	ev.done = true
	ev.ticker.remove(ev)
}

// Ticker holds the events currently scheduled under a single label.
type Ticker struct {
	label  string
	events []*Event
}

// NewTicker creates an empty Ticker identified by label (used only for
// String()'s output).
func NewTicker(label string) *Ticker {
	return &Ticker{label: label}
}

// Schedule adds payload to run after delay calls to Tick(). A negative delay
// runs payload immediately and schedules nothing.
func (tck *Ticker) Schedule(delay int, payload func(), label string) *Event {
	if delay < 0 {
		if payload != nil {
			payload()
		}
		return &Event{ticker: tck, label: label, payload: payload, remaining: -1, done: true}
	}

	ev := &Event{ticker: tck, label: label, payload: payload, remaining: delay}
	tck.events = append(tck.events, ev)
	return ev
}

// Tick advances every scheduled event by one, running and removing any whose
// countdown has reached zero. Returns true if at least one event ran.
func (tck *Ticker) Tick() bool {
	completed := false
	remaining := tck.events[:0]

	for _, ev := range tck.events {
		ev.ticks++

		if ev.remaining <= 0 {
			if ev.payload != nil {
				ev.payload()
			}
			ev.done = true
			completed = true
			continue
		}

		ev.remaining--
		remaining = append(remaining, ev)
	}

	tck.events = remaining
	return completed
}

func (tck *Ticker) remove(target *Event) {
	for i, ev := range tck.events {
		if ev == target {
			tck.events = append(tck.events[:i], tck.events[i+1:]...)
			return
		}
	}
}

// String lists every still-pending event, one per line, in schedule order.
func (tck *Ticker) String() string {
	b := strings.Builder{}
	for i, ev := range tck.events {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s -> %d", tck.label, ev.label, ev.remaining)
	}
	return b.String()
}
