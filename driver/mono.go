// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"fmt"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// Mono wraps a source and mixes its channels down to one by averaging.
// Mono sources pass through untouched.
type Mono struct {
	src Source[float32]
	tmp *buf.Interleaved[float32]
}

// NewMono returns a single-channel view of src.
func NewMono(src Source[float32]) *Mono {
	return &Mono{src: src}
}

func (m *Mono) SampleRate() int { return m.src.SampleRate() }
func (m *Mono) Channels() int   { return 1 }

func (m *Mono) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadFrames fills dst with averaged frames from the wrapped source.
func (m *Mono) ReadFrames(dst *pcmio.Write[float32]) (int, error) {
	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadFrames(dst)
	}

	want := dst.RemainingMut()
	if want == 0 || channels == 0 {
		return 0, nil
	}

	// Scratch grows to the largest pass seen, never shrinks.
	if m.tmp == nil || m.tmp.Frames() < want || m.tmp.Channels() != channels {
		m.tmp = buf.NewInterleaved[float32](channels, want)
	}

	wr := pcmio.NewWrite[float32](buf.LimitMut[float32](m.tmp, want))
	n, err := m.src.ReadFrames(wr)
	if n == 0 {
		return 0, err
	}

	out := dst.ChannelMut(0)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // stereo, the common case
		left := m.tmp.Channel(0)
		right := m.tmp.Channel(1)
		for i := range n {
			out.Set(i, (left.At(i)+right.At(i))*0.5)
		}
	default:
		for i := range n {
			var sum float32
			for ch := range channels {
				sum += m.tmp.Channel(ch).At(i)
			}
			out.Set(i, sum*inv)
		}
	}

	dst.AdvanceMut(n)
	return n, err
}
