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

package romtool

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Keys recognised by Run while paging.
const (
	keyNextPage = 'n'
	keyPrevPage = 'p'
	keyQuit     = 'q'
)

// rawTerm puts in into cbreak mode (unbuffered, unechoed single-keystroke
// reads) for the duration of a Run call, restoring the original mode on
// Restore. Modeled on the teacher debugger's easyterm helper, trimmed to
// the one mode this tool needs.
type rawTerm struct {
	fd      uintptr
	canAttr syscall.Termios
}

func newRawTerm(in *os.File) (*rawTerm, error) {
	rt := &rawTerm{fd: in.Fd()}
	if err := termios.Tcgetattr(rt.fd, &rt.canAttr); err != nil {
		return nil, fmt.Errorf("romtool: reading terminal attributes: %w", err)
	}

	cbreak := rt.canAttr
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(rt.fd, termios.TCIFLUSH, &cbreak); err != nil {
		return nil, fmt.Errorf("romtool: entering cbreak mode: %w", err)
	}
	return rt, nil
}

func (rt *rawTerm) Restore() {
	_ = termios.Tcsetattr(rt.fd, termios.TCIFLUSH, &rt.canAttr)
}

// Run pages rom on screen, reading single keystrokes from in: 'n'/space
// for the next page, 'p' for the previous, 'q' or ctrl-C to quit. It
// returns once the user quits or in is closed.
func Run(rom []byte, in *os.File, out *os.File) error {
	rt, err := newRawTerm(in)
	if err != nil {
		return err
	}
	defer rt.Restore()

	pager := NewPager(rom)
	buf := make([]byte, 1)

	for {
		fmt.Fprint(out, "\x1b[2J\x1b[H")
		fmt.Fprint(out, pager.Render())
		fmt.Fprint(out, "\n[n]ext  [p]rev  [q]uit\n")

		n, err := in.Read(buf)
		if err != nil || n == 0 {
			return nil
		}

		switch buf[0] {
		case keyNextPage, ' ':
			pager.NextPage()
		case keyPrevPage:
			pager.PrevPage()
		case keyQuit, 0x03: // ctrl-C
			return nil
		}
	}
}
