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

// Package soundfixture turns a television's per-scanline audio buffer into
// WAV fixtures for regression comparison, and decodes WAV or MP3 reference
// fixtures back into sample slices to compare against. It exists so that a
// cycle-accurate change to a sound-producing component can be checked
// against a recording of known-good output rather than only against the
// byte layout of the live buffer.
package soundfixture
