// SPDX-License-Identifier: EPL-2.0

package buf

// Window narrows the visible frame range of a readable buffer without
// copying sample data. Windows compose: the visible range is always the
// intersection of every applied window, clamped at zero.
type Window[T Sample] struct {
	buf FrameBuf[T]
	off int
	n   int
}

// Skip returns a window over b with the first n frames dropped.
func Skip[T Sample](b FrameBuf[T], n int) Window[T] {
	f := b.Frames()
	n = clampFrames(n, f)
	return Window[T]{buf: b, off: n, n: f - n}
}

// Limit returns a window over b keeping only the first n frames.
func Limit[T Sample](b FrameBuf[T], n int) Window[T] {
	return Window[T]{buf: b, off: 0, n: clampFrames(n, b.Frames())}
}

// Tail returns a window over b keeping only the last n frames.
func Tail[T Sample](b FrameBuf[T], n int) Window[T] {
	f := b.Frames()
	n = clampFrames(n, f)
	return Window[T]{buf: b, off: f - n, n: n}
}

// FramesHint reports the exact frame count of the window.
func (w Window[T]) FramesHint() (int, bool) { return w.n, true }

// Channels reports the channel count of the underlying buffer.
func (w Window[T]) Channels() int { return w.buf.Channels() }

// Frames reports the number of frames visible through the window.
func (w Window[T]) Frames() int { return w.n }

// Channel returns the windowed view over channel ch.
func (w Window[T]) Channel(ch int) Channel[T] {
	return w.buf.Channel(ch).Tail(w.off).Limit(w.n)
}

// Skip drops the first n visible frames.
func (w Window[T]) Skip(n int) Window[T] { return Skip[T](w, n) }

// Limit keeps the first n visible frames.
func (w Window[T]) Limit(n int) Window[T] { return Limit[T](w, n) }

// Tail keeps the last n visible frames.
func (w Window[T]) Tail(n int) Window[T] { return Tail[T](w, n) }

// MutWindow is a Window over a writable buffer.
type MutWindow[T Sample] struct {
	buf MutFrameBuf[T]
	off int
	n   int
}

// SkipMut returns a writable window over b with the first n frames
// dropped.
func SkipMut[T Sample](b MutFrameBuf[T], n int) MutWindow[T] {
	f := b.Frames()
	n = clampFrames(n, f)
	return MutWindow[T]{buf: b, off: n, n: f - n}
}

// LimitMut returns a writable window over b keeping only the first n
// frames.
func LimitMut[T Sample](b MutFrameBuf[T], n int) MutWindow[T] {
	return MutWindow[T]{buf: b, off: 0, n: clampFrames(n, b.Frames())}
}

// TailMut returns a writable window over b keeping only the last n
// frames.
func TailMut[T Sample](b MutFrameBuf[T], n int) MutWindow[T] {
	f := b.Frames()
	n = clampFrames(n, f)
	return MutWindow[T]{buf: b, off: f - n, n: n}
}

// FramesHint reports the exact frame count of the window.
func (w MutWindow[T]) FramesHint() (int, bool) { return w.n, true }

// Channels reports the channel count of the underlying buffer.
func (w MutWindow[T]) Channels() int { return w.buf.Channels() }

// Frames reports the number of frames visible through the window.
func (w MutWindow[T]) Frames() int { return w.n }

// Channel returns the windowed read-only view over channel ch.
func (w MutWindow[T]) Channel(ch int) Channel[T] {
	return w.buf.Channel(ch).Tail(w.off).Limit(w.n)
}

// ChannelMut returns the windowed mutable view over channel ch.
func (w MutWindow[T]) ChannelMut(ch int) MutChannel[T] {
	return w.buf.ChannelMut(ch).Tail(w.off).Limit(w.n)
}

// Skip drops the first n visible frames.
func (w MutWindow[T]) Skip(n int) MutWindow[T] { return SkipMut[T](w, n) }

// Limit keeps the first n visible frames.
func (w MutWindow[T]) Limit(n int) MutWindow[T] { return LimitMut[T](w, n) }

// Tail keeps the last n visible frames.
func (w MutWindow[T]) Tail(n int) MutWindow[T] { return TailMut[T](w, n) }

func clampFrames(n, frames int) int {
	if n < 0 {
		return 0
	}
	if n > frames {
		return frames
	}
	return n
}
