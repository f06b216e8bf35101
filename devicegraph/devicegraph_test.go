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

package devicegraph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kessler-labs/retrocore/devicegraph"
	"github.com/kessler-labs/retrocore/hardware"
	"github.com/kessler-labs/retrocore/hardware/television"
)

func TestAcyclicDetectsAStraightforwardCycle(t *testing.T) {
	dot := `digraph {
	"a" -> "b";
	"b" -> "c";
	"c" -> "a";
}`
	ok, err := devicegraph.Acyclic(strings.NewReader(dot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("got acyclic=true for a graph with an a->b->c->a cycle")
	}
}

func TestAcyclicIgnoresSelfEdges(t *testing.T) {
	dot := `digraph {
	"a" -> "a";
	"a" -> "b";
}`
	ok, err := devicegraph.Acyclic(strings.NewReader(dot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("got acyclic=false for a graph whose only self-reference is a node citing itself")
	}
}

func TestVCSDeviceWiringIsAcyclic(t *testing.T) {
	vcs := hardware.NewVCS(television.NewTelevision(160, 262, 0))

	var buf bytes.Buffer
	if err := devicegraph.Render(&buf, vcs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := devicegraph.Acyclic(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("got a cyclic owning-reference graph for VCS; §9 requires the composer to own devices through a flat table, not mutual references")
	}
}

func TestProSystemDeviceWiringIsAcyclic(t *testing.T) {
	ps := hardware.NewProSystem(television.NewTelevision(320, 263, 0))

	var buf bytes.Buffer
	if err := devicegraph.Render(&buf, ps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := devicegraph.Acyclic(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("got a cyclic owning-reference graph for ProSystem; §9 requires the composer to own devices through a flat table, not mutual references")
	}
}
