// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
	"github.com/ik5/pcmbuf/utils"
)

// aiffReader is an interface for goaiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement driver.Source
type source struct {
	dec        aiffReader
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
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}
