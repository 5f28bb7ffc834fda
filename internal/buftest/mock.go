// SPDX-License-Identifier: EPL-2.0

package buftest

import (
	"io"
	"math"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// MockSource is a test helper that generates frames for testing. It
// implements the driver.Source interface (without importing it to avoid
// cycles in callers' test setups).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate
	generated   int // frames generated so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a new mock frame source. totalFrames is the
// total number of frames to generate. waveform generates sample values
// given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated frame counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

// ReadFrames fills dst's remaining capacity with generated frames.
func (m *MockSource) ReadFrames(dst *pcmio.Write[float32]) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(dst.RemainingMut(), m.totalFrames-m.generated)

	for ch := range m.channels {
		view := dst.ChannelMut(ch)
		for i := range frames {
			view.Set(i, m.waveform(m.generated+i, ch))
		}
	}

	m.generated += frames
	dst.AdvanceMut(frames)

	if m.generated >= m.totalFrames {
		return frames, io.EOF
	}

	return frames, nil
}

// Pattern builds an interleaved buffer whose sample at (frame, ch) is
// gen(frame, ch).
func Pattern[T buf.Sample](channels, frames int, gen func(frame, ch int) T) *buf.Interleaved[T] {
	b := buf.NewInterleaved[T](channels, frames)
	fill[T](b, channels, frames, gen)
	return b
}

// PatternSequential is Pattern for planar storage.
func PatternSequential[T buf.Sample](channels, frames int, gen func(frame, ch int) T) *buf.Sequential[T] {
	b := buf.NewSequential[T](channels, frames)
	fill[T](b, channels, frames, gen)
	return b
}

func fill[T buf.Sample](b buf.MutChannelBuf[T], channels, frames int, gen func(frame, ch int) T) {
	for ch := range channels {
		view := b.ChannelMut(ch)
		for i := range frames {
			view.Set(i, gen(i, ch))
		}
	}
}

// ChannelData copies a channel view out into a plain slice for
// assertions.
func ChannelData[T buf.Sample](c buf.Channel[T]) []T {
	out := make([]T, c.Len())
	c.CopyInto(out)
	return out
}
