// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// CollectSink accumulates every frame written to it into a growing
// interleaved buffer. It is the in-memory stand-in for a device sink
// and doubles as the collector behind pcmbuf.ReadAll.
type CollectSink[T buf.Sample] struct {
	channels int
	data     []T

	// PerCall caps the frames consumed by a single WriteFrames call.
	// Zero means no cap. Useful for exercising multi-pass draining the
	// way a period-sized device buffer would.
	PerCall int
}

// NewCollectSink returns a sink accumulating channels-wide frames.
func NewCollectSink[T buf.Sample](channels int) *CollectSink[T] {
	if channels < 0 {
		channels = 0
	}
	return &CollectSink[T]{channels: channels}
}

// Buffer borrows the collected frames as an interleaved buffer.
func (s *CollectSink[T]) Buffer() *buf.Interleaved[T] {
	return buf.WrapInterleaved[T](s.data, s.channels)
}

// Frames reports how many frames have been collected.
func (s *CollectSink[T]) Frames() int {
	if s.channels == 0 {
		return 0
	}
	return len(s.data) / s.channels
}

func (s *CollectSink[T]) Close() error { return nil }

// WriteFrames consumes up to PerCall frames from src. Source channels
// beyond the sink's width are left unread; missing ones stay zero.
func (s *CollectSink[T]) WriteFrames(src *pcmio.Read[T]) (int, error) {
	n := src.Remaining()
	if s.PerCall > 0 && n > s.PerCall {
		n = s.PerCall
	}
	if n == 0 || s.channels == 0 {
		return 0, nil
	}

	base := len(s.data)
	s.data = append(s.data, make([]T, n*s.channels)...)

	channels := min(s.channels, src.Channels())
	for ch := range channels {
		view := src.Channel(ch)
		for i := range n {
			s.data[base+i*s.channels+ch] = view.At(i)
		}
	}

	src.Advance(n)
	return n, nil
}
