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

// Command romtool pages a cartridge ROM image as a hex dump in a raw
// terminal. It is a developer convenience entirely outside the emulation
// core (§1 names command-line tooling as an external collaborator).
package main

import (
	"fmt"
	"os"

	"github.com/kessler-labs/retrocore/cartridgeloader"
	"github.com/kessler-labs/retrocore/romtool"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <rom-file>\n", os.Args[0])
		os.Exit(1)
	}

	ld, err := cartridgeloader.NewLoaderFromFilename(os.Args[1], "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rom, err := ld.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := romtool.Run(rom, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
