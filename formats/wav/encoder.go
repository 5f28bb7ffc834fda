// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/utils"
)

// Encode writes b as a PCM WAV file at sampleRate and bitDepth (8, 16,
// 24 or 32). Samples are expected in [-1, 1]; anything outside is
// clamped.
func Encode(w io.WriteSeeker, b buf.FrameBuf[float32], sampleRate, bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}

	frames := b.Frames()
	channels := b.Channels()

	data := make([]int, frames*channels)
	for ch := range channels {
		view := b.Channel(ch)
		for i := range frames {
			data[i*channels+ch] = utils.DenormalizeFloat32(view.At(i), bitDepth)
		}
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, channels, 1)
	err := enc.Write(&goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
