// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"io"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// BufSource serves an in-memory buffer as a stream, producing its
// frames once across as many passes as the destinations allow.
type BufSource[T buf.Sample] struct {
	rd       *pcmio.Read[T]
	rate     int
	channels int
}

// NewBufSource wraps b as a Source playing at sampleRate.
func NewBufSource[T buf.Sample](b buf.FrameBuf[T], sampleRate int) *BufSource[T] {
	return &BufSource[T]{
		rd:       pcmio.NewRead[T](b),
		rate:     sampleRate,
		channels: b.Channels(),
	}
}

func (s *BufSource[T]) SampleRate() int { return s.rate }
func (s *BufSource[T]) Channels() int   { return s.channels }
func (s *BufSource[T]) Close() error    { return nil }

// Remaining reports how many frames are still unserved.
func (s *BufSource[T]) Remaining() int { return s.rd.Remaining() }

// ReadFrames copies the next run of frames into dst.
func (s *BufSource[T]) ReadFrames(dst *pcmio.Write[T]) (int, error) {
	n := pcmio.CopyRemaining[T](s.rd, dst)
	if s.rd.Remaining() == 0 {
		return n, io.EOF
	}
	return n, nil
}
