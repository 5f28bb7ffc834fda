// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
	"github.com/ik5/pcmbuf/utils"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadFrames decodes into the writable remainder of dst.
// go-mp3 produces 16-bit little-endian interleaved PCM bytes.
func (s *source) ReadFrames(dst *pcmio.Write[float32]) (int, error) {
	frames := dst.RemainingMut()
	if frames == 0 {
		return 0, nil
	}

	bytesNeeded := frames * s.channels * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	// go-mp3 reads are frame aligned, so n is a multiple of the
	// 2-byte-per-channel frame size.
	got := n / (s.channels * 2)
	for ch := range s.channels {
		view := dst.ChannelMut(ch)
		for i := range got {
			off := (i*s.channels + ch) * 2
			v := int16(uint16(s.buf[off]) | uint16(s.buf[off+1])<<8)
			view.Set(i, utils.Int16ToFloat32(v))
		}
	}
	dst.AdvanceMut(got)

	return got, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (driver.Source[float32], error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 always outputs stereo
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}, nil
}
