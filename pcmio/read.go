// SPDX-License-Identifier: EPL-2.0

package pcmio

import "github.com/ik5/pcmbuf/buf"

// Reader is the source side of a streaming copy: a buffer with
// remaining-frame bookkeeping layered on top.
type Reader[T buf.Sample] interface {
	// Remaining reports the number of unread frames.
	Remaining() int
	// Advance marks n frames as read, saturating at zero.
	Advance(n int)
	// Channels reports the channel count.
	Channels() int
	// Channel returns the unread portion of channel ch.
	Channel(ch int) buf.Channel[T]
}

// Read adapts a fixed-size buffer so it can be drained across repeated
// copy passes. It behaves as if already-read frames had been removed
// from the front of the buffer.
type Read[T buf.Sample] struct {
	buf       buf.FrameBuf[T]
	available int
}

// NewRead wraps b in a read adapter. The adapter borrows b; it holds no
// sample memory of its own.
func NewRead[T buf.Sample](b buf.FrameBuf[T]) *Read[T] {
	return &Read[T]{buf: b, available: b.Frames()}
}

// Buf returns the underlying buffer.
func (r *Read[T]) Buf() buf.FrameBuf[T] { return r.buf }

// Remaining reports the number of unread frames.
func (r *Read[T]) Remaining() int { return r.available }

// Advance marks n frames as read. Over-advancing clamps to zero rather
// than failing; callers must not rely on Advance rejecting a large n.
func (r *Read[T]) Advance(n int) {
	if n < 0 {
		return
	}
	r.available -= n
	if r.available < 0 {
		r.available = 0
	}
}

// SetRead sets absolute progress: n frames have been read.
func (r *Read[T]) SetRead(n int) {
	if n < 0 {
		n = 0
	}
	r.available = r.buf.Frames() - n
	if r.available < 0 {
		r.available = 0
	}
}

// FramesHint reports the logical frame count.
func (r *Read[T]) FramesHint() (int, bool) { return r.available, true }

// Channels reports the channel count of the underlying buffer.
func (r *Read[T]) Channels() int { return r.buf.Channels() }

// Frames reports the logical frame count: the frames still in front of
// the cursor, not the raw size of the underlying buffer.
func (r *Read[T]) Frames() int { return r.available }

// Channel returns the unread portion of channel ch. Already-consumed
// frames are excluded from the view.
func (r *Read[T]) Channel(ch int) buf.Channel[T] {
	return r.buf.Channel(ch).Tail(r.buf.Frames() - r.available)
}
