// SPDX-License-Identifier: EPL-2.0

package buf

// Interleaved stores all channels of a frame contiguously, the way most
// device and file formats lay PCM out on the wire.
type Interleaved[T Sample] struct {
	data     []T
	channels int
}

// NewInterleaved allocates a zeroed buffer of channels x frames samples.
func NewInterleaved[T Sample](channels, frames int) *Interleaved[T] {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	return &Interleaved[T]{
		data:     make([]T, channels*frames),
		channels: channels,
	}
}

// WrapInterleaved borrows data as an interleaved buffer without copying.
// Mutations through the buffer are visible in data and vice versa. A
// trailing partial frame (len(data) not a multiple of channels) is not
// exposed.
func WrapInterleaved[T Sample](data []T, channels int) *Interleaved[T] {
	if channels < 0 {
		channels = 0
	}
	return &Interleaved[T]{data: data, channels: channels}
}

// Slice returns the backing samples of all full frames, frame-major.
func (b *Interleaved[T]) Slice() []T {
	return b.data[:b.Frames()*b.channels]
}

// FramesHint reports the exact frame count.
func (b *Interleaved[T]) FramesHint() (int, bool) { return b.Frames(), true }

// Channels reports the number of channels.
func (b *Interleaved[T]) Channels() int { return b.channels }

// Frames reports the number of full frames.
func (b *Interleaved[T]) Frames() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.data) / b.channels
}

// Channel returns a read-only view over channel ch.
func (b *Interleaved[T]) Channel(ch int) Channel[T] {
	b.check(ch)
	f := b.Frames()
	if f == 0 {
		return Channel[T]{stride: b.channels}
	}
	return Channel[T]{data: b.data[ch:], stride: b.channels, n: f}
}

// ChannelMut returns a mutable view over channel ch.
func (b *Interleaved[T]) ChannelMut(ch int) MutChannel[T] {
	b.check(ch)
	f := b.Frames()
	if f == 0 {
		return MutChannel[T]{stride: b.channels}
	}
	return MutChannel[T]{data: b.data[ch:], stride: b.channels, n: f}
}

func (b *Interleaved[T]) check(ch int) {
	if ch < 0 || ch >= b.channels {
		panic("buf: channel out of range")
	}
}
