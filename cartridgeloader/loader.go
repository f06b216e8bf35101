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

// Package cartridgeloader hands a (bytes, cart-type tag) pair to the
// cartridge package. It is a thin adapter over the filesystem and over
// embedded data, not part of the emulation core.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"strings"
)

// Loader describes a cartridge image prior to mapper fingerprinting.
type Loader struct {
	// Filename is the path the image was (or will be) read from. When the
	// Loader was created from in-memory data this is a descriptive name
	// only, not a path.
	Filename string

	// Format requests a specific mapper by its ID (eg. "F8", "E0", "3F").
	// The empty string or "AUTO" means the cartridge package should
	// fingerprint the data itself.
	Format string

	// Hash is the expected SHA1 digest of the data. Empty means the digest
	// is not checked. After a call to Load the field holds the digest of
	// the data actually read.
	Hash string

	data []byte
}

// NewLoaderFromFilename creates a Loader that reads its data from disk on
// the first call to Load.
func NewLoaderFromFilename(filename, format string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no filename")
	}

	return Loader{
		Filename: filename,
		Format:   strings.TrimSpace(strings.ToUpper(format)),
	}, nil
}

// NewLoaderFromData creates a Loader around data already held in memory,
// for example a ROM embedded into the binary with go:embed.
func NewLoaderFromData(name string, data []byte, format string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: no data")
	}

	return Loader{
		Filename: name,
		Format:   strings.TrimSpace(strings.ToUpper(format)),
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		data:     data,
	}, nil
}

// Load returns the cartridge's raw bytes, reading them from disk the first
// time it is called on a filename-backed Loader.
func (ld *Loader) Load() ([]byte, error) {
	if ld.data == nil {
		data, err := os.ReadFile(ld.Filename)
		if err != nil {
			return nil, fmt.Errorf("cartridgeloader: %w", err)
		}
		ld.data = data
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.data))
	if ld.Hash != "" && ld.Hash != hash {
		return nil, fmt.Errorf("cartridgeloader: unexpected hash value")
	}
	ld.Hash = hash

	return ld.data, nil
}
