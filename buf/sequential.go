// SPDX-License-Identifier: EPL-2.0

package buf

// Sequential stores each channel's frames contiguously (planar layout).
type Sequential[T Sample] struct {
	data     []T
	channels int
}

// NewSequential allocates a zeroed planar buffer of channels x frames
// samples.
func NewSequential[T Sample](channels, frames int) *Sequential[T] {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	return &Sequential[T]{
		data:     make([]T, channels*frames),
		channels: channels,
	}
}

// WrapSequential borrows data as a planar buffer without copying. The
// first len(data)/channels samples are channel 0, the next run channel
// 1, and so on. A trailing partial channel run is not exposed.
func WrapSequential[T Sample](data []T, channels int) *Sequential[T] {
	if channels < 0 {
		channels = 0
	}
	return &Sequential[T]{data: data, channels: channels}
}

// Slice returns the backing samples of all full frames, channel-major.
func (b *Sequential[T]) Slice() []T {
	return b.data[:b.Frames()*b.channels]
}

// FramesHint reports the exact frame count.
func (b *Sequential[T]) FramesHint() (int, bool) { return b.Frames(), true }

// Channels reports the number of channels.
func (b *Sequential[T]) Channels() int { return b.channels }

// Frames reports the number of full frames.
func (b *Sequential[T]) Frames() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.data) / b.channels
}

// Channel returns a read-only view over channel ch.
func (b *Sequential[T]) Channel(ch int) Channel[T] {
	b.check(ch)
	f := b.Frames()
	return Channel[T]{data: b.data[ch*f : (ch+1)*f], stride: 1, n: f}
}

// ChannelMut returns a mutable view over channel ch.
func (b *Sequential[T]) ChannelMut(ch int) MutChannel[T] {
	b.check(ch)
	f := b.Frames()
	return MutChannel[T]{data: b.data[ch*f : (ch+1)*f], stride: 1, n: f}
}

func (b *Sequential[T]) check(ch int) {
	if ch < 0 || ch >= b.channels {
		panic("buf: channel out of range")
	}
}
