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

// Package devicegraph renders a composer's device wiring — the address
// space's page table, the handles a cartridge and its chips are reached
// through, everything a VCS or ProSystem holds a pointer to — to a
// Graphviz dot file, purely as a development-time diagnostic. §9's design
// note says the composer must own every device through a flat table of
// plain references rather than letting devices hold owning references
// back into each other; this package is the mechanical check for that:
// Acyclic walks the rendered graph and reports whether the note was
// actually honoured.
package devicegraph

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bradleyjkemp/memviz"
)

// Render writes a Graphviz dot representation of composer (typically a
// *hardware.VCS or *hardware.ProSystem) to w, walking its exported and
// unexported fields by reflection.
func Render(w io.Writer, composer interface{}) error {
	memviz.Map(w, composer)
	return nil
}

var edgePattern = regexp.MustCompile(`"([^"]+)"\s*->\s*"([^"]+)"`)

// Acyclic parses a dot graph produced by Render and reports whether it
// contains a cycle, i.e. whether following owning-reference edges from
// any node can lead back to itself. A single node citing itself directly
// (the common case for a slice or map header pointing at its own backing
// array) is not a cycle by this definition; only a strictly-longer path
// back to the start counts.
func Acyclic(dot io.Reader) (bool, error) {
	edges := map[string][]string{}

	scanner := bufio.NewScanner(dot)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		m := edgePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		from, to := m[1], m[2]
		edges[from] = append(edges[from], to)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("devicegraph: reading dot output: %w", err)
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := map[string]int{}

	var visit func(node string) bool
	visit = func(node string) bool {
		switch state[node] {
		case visiting:
			return true
		case done:
			return false
		}
		state[node] = visiting
		for _, next := range edges[node] {
			if next == node {
				continue
			}
			if visit(next) {
				return true
			}
		}
		state[node] = done
		return false
	}

	for node := range edges {
		if visit(node) {
			return false, nil
		}
	}
	return true, nil
}
