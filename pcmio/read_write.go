// SPDX-License-Identifier: EPL-2.0

package pcmio

import "github.com/ik5/pcmbuf/buf"

// ReadWrite tracks consumption and production independently over a
// single buffer that is drained and refilled in the same pass. The read
// cursor and the write cursor never affect one another; it is the
// caller's job to keep the writer ahead of or behind the reader as its
// use case requires.
type ReadWrite[T buf.Sample] struct {
	buf     buf.MutFrameBuf[T]
	read    int
	written int
}

// NewReadWrite wraps b with both cursors at the front: the whole buffer
// is readable and the whole buffer is writable.
func NewReadWrite[T buf.Sample](b buf.MutFrameBuf[T]) *ReadWrite[T] {
	return &ReadWrite[T]{buf: b}
}

// Buf returns the underlying buffer.
func (rw *ReadWrite[T]) Buf() buf.MutFrameBuf[T] { return rw.buf }

// Clear resets both cursors to the front of the buffer.
func (rw *ReadWrite[T]) Clear() {
	rw.read = 0
	rw.written = 0
}

// Remaining reports the number of unread frames.
func (rw *ReadWrite[T]) Remaining() int { return rw.buf.Frames() - rw.read }

// Advance marks n frames as read, saturating.
func (rw *ReadWrite[T]) Advance(n int) {
	rw.read = clampCursor(rw.read+n, rw.read, rw.buf.Frames())
}

// SetRead sets absolute read progress.
func (rw *ReadWrite[T]) SetRead(n int) {
	rw.read = clampCursor(n, 0, rw.buf.Frames())
}

// RemainingMut reports the number of unwritten frames.
func (rw *ReadWrite[T]) RemainingMut() int { return rw.buf.Frames() - rw.written }

// AdvanceMut marks n frames as written, saturating.
func (rw *ReadWrite[T]) AdvanceMut(n int) {
	rw.written = clampCursor(rw.written+n, rw.written, rw.buf.Frames())
}

// SetWritten sets absolute write progress.
func (rw *ReadWrite[T]) SetWritten(n int) {
	rw.written = clampCursor(n, 0, rw.buf.Frames())
}

// Channels reports the channel count of the underlying buffer.
func (rw *ReadWrite[T]) Channels() int { return rw.buf.Channels() }

// Channel returns the unread portion of channel ch.
func (rw *ReadWrite[T]) Channel(ch int) buf.Channel[T] {
	return rw.buf.Channel(ch).Tail(rw.read)
}

// ChannelMut returns the unwritten portion of channel ch.
func (rw *ReadWrite[T]) ChannelMut(ch int) buf.MutChannel[T] {
	return rw.buf.ChannelMut(ch).Tail(rw.written)
}

// clampCursor moves a cursor to v bounded by [lo, hi]. Negative and
// overflowing values saturate instead of failing.
func clampCursor(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
