// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadFrames decodes into the writable remainder of dst. Vorbis samples
// are already float32 in [-1, 1].
func (s *source) ReadFrames(dst *pcmio.Write[float32]) (int, error) {
	frames := dst.RemainingMut()
	if frames == 0 {
		return 0, nil
	}

	samples := frames * s.channels
	if cap(s.frameBuf) < samples {
		s.frameBuf = make([]float32, samples)
	}
	s.frameBuf = s.frameBuf[:samples]

	// oggvorbis reports the number of float values read, always a
	// multiple of the channel count.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	got := n / s.channels
	for ch := range s.channels {
		view := dst.ChannelMut(ch)
		for i := range got {
			view.Set(i, s.frameBuf[i*s.channels+ch])
		}
	}
	dst.AdvanceMut(got)

	return got, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (driver.Source[float32], error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
