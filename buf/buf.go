// SPDX-License-Identifier: EPL-2.0

package buf

// Sample is the set of numeric types a buffer may hold.
type Sample interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Buf is the base capability shared by every buffer kind.
type Buf interface {
	// FramesHint reports a best-effort frame count. Streaming buffers of
	// unknown length report ok == false.
	FramesHint() (frames int, ok bool)
	// Channels reports the number of channels.
	Channels() int
}

// ExactSizeBuf is implemented by buffers whose frame count is known
// exactly. Every channel view handed out by such a buffer has exactly
// Frames() elements.
type ExactSizeBuf interface {
	Buf
	Frames() int
}

// ChannelBuf exposes read access to individual channels.
type ChannelBuf[T Sample] interface {
	Buf
	// Channel returns a read-only view over channel ch.
	// ch must be in [0, Channels()); anything else panics.
	Channel(ch int) Channel[T]
}

// MutChannelBuf exposes write access to individual channels.
type MutChannelBuf[T Sample] interface {
	Buf
	// ChannelMut returns a mutable view over channel ch.
	// ch must be in [0, Channels()); anything else panics.
	ChannelMut(ch int) MutChannel[T]
}

// FrameBuf is a readable buffer with an exact frame count. It is what
// the read-side adapters and the windowing wrappers require.
type FrameBuf[T Sample] interface {
	ExactSizeBuf
	ChannelBuf[T]
}

// MutFrameBuf is a readable and writable buffer with an exact frame
// count. It is what the write-side adapters require.
type MutFrameBuf[T Sample] interface {
	FrameBuf[T]
	MutChannelBuf[T]
}
