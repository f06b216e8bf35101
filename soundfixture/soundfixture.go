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

package soundfixture

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/kessler-labs/retrocore/errors"
	"github.com/kessler-labs/retrocore/hardware/television"
)

// ExtractSamples unpacks a television's one-sample-per-scanline audio
// buffer into a plain int slice, widening each little-endian 16 bit PCM
// sample the way go-audio's IntBuffer expects its Data field.
func ExtractSamples(tv *television.Television) []int {
	samples := make([]int, tv.Scanlines)
	for i := range samples {
		lo := tv.Audio[i*2]
		hi := tv.Audio[i*2+1]
		samples[i] = int(uint16(lo) | uint16(hi)<<8)
	}
	return samples
}

// WriteWAV encodes a television's current audio buffer to path as a mono
// 16-bit PCM WAV fixture, sampled at sampleRate.
func WriteWAV(path string, tv *television.Television, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf(errors.Television, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           ExtractSamples(tv),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Errorf(errors.Television, err)
	}
	return enc.Close()
}

// ReadWAV decodes a mono 16-bit PCM WAV fixture back into a sample slice,
// for comparison against a freshly recorded ExtractSamples result.
func ReadWAV(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf(errors.Television, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Errorf(errors.Television, err)
	}
	return buf.Data, nil
}

// ReadMP3 decodes a compressed reference fixture (an original-hardware
// recording, typically) into 16-bit PCM samples so it can be compared
// against emulated output at a coarser tolerance than the lossless WAV
// fixtures ReadWAV loads.
func ReadMP3(r io.Reader) ([]int16, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Errorf(errors.Television, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Errorf(errors.Television, err)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
	}
	return samples, nil
}
