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

package logger_test

import (
	"strings"
	"testing"

	"github.com/kessler-labs/retrocore/logger"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	logger.Log("test", "this is a test")
	w.Reset()
	logger.Write(w)
	if w.String() != "test: this is a test\n" {
		t.Fatalf("unexpected log content: %q", w.String())
	}

	logger.Log("test2", "this is another test")
	w.Reset()
	logger.Write(w)
	want := "test: this is a test\ntest2: this is another test\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	w.Reset()
	logger.Tail(w, 1)
	if w.String() != "test2: this is another test\n" {
		t.Fatalf("unexpected tail: %q", w.String())
	}

	w.Reset()
	logger.Tail(w, 0)
	if w.String() != "" {
		t.Fatalf("expected empty tail, got %q", w.String())
	}
}

func TestLogf(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf("CPU", "KIL instruction (%#04x)", 0x1234)
	logger.Write(w)
	if w.String() != "CPU: KIL instruction (0x1234)\n" {
		t.Fatalf("unexpected formatted log: %q", w.String())
	}
}
