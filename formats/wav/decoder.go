// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
	"github.com/ik5/pcmbuf/utils"
)

// wavReader is an interface for gowav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement driver.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadFrames decodes into the writable remainder of dst, normalizing
// integer PCM to float32 by the stream's bit depth.
func (s *source) ReadFrames(dst *pcmio.Write[float32]) (int, error) {
	frames := dst.RemainingMut()
	if frames == 0 {
		return 0, nil
	}

	samples := frames * s.channels
	if s.intBuf == nil || cap(s.intBuf.Data) < samples {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, samples),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:samples]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	got := n / s.channels
	for ch := range s.channels {
		view := dst.ChannelMut(ch)
		for i := range got {
			view.Set(i, utils.NormalizeInt(s.intBuf.Data[i*s.channels+ch], s.bitDepth))
		}
	}
	dst.AdvanceMut(got)

	// A short read with no error means the stream ended.
	if got < frames && err == nil {
		return got, io.EOF
	}

	return got, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (driver.Source[float32], error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   bitDepth,
	}, nil
}
