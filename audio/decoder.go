// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
)

// Decoder turns an audio file into a mono Clip. Implementations must
// down-mix multi-channel material to mono by averaging the channels.
type Decoder interface {
	Decode(path string) (*Clip, error)
}

// WAVDecoder decodes RIFF/WAV files using go-audio. It handles any PCM bit
// depth the container declares and normalizes samples to [−1, 1].
type WAVDecoder struct{}

// Decode reads the WAV file at path.
func (WAVDecoder) Decode(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: %s is not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: decoding %s: %w", path, err)
	}
	if buf.NumFrames() == 0 {
		return nil, fmt.Errorf("audio: %s: %w", path, ErrNoSamples)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	channels := buf.Format.NumChannels
	frames := buf.NumFrames()
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var acc float64
		for ch := 0; ch < channels; ch++ {
			acc += float64(buf.Data[i*channels+ch])
		}
		samples[i] = acc / float64(channels) * scale
	}

	base := filepath.Base(path)
	clip, err := NewClip(samples, buf.Format.SampleRate, base)
	if err != nil {
		return nil, err
	}
	clip.Filename = base

	return clip, nil
}

// Load decodes path with the built-in WAV decoder.
func Load(path string) (*Clip, error) {
	return WAVDecoder{}.Decode(path)
}
