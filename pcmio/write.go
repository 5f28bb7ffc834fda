// SPDX-License-Identifier: EPL-2.0

package pcmio

import "github.com/ik5/pcmbuf/buf"

// Writer is the destination side of a streaming copy: a buffer with
// remaining-capacity bookkeeping layered on top.
type Writer[T buf.Sample] interface {
	// RemainingMut reports the number of unwritten frames.
	RemainingMut() int
	// AdvanceMut marks n frames as written, saturating at zero capacity.
	AdvanceMut(n int)
	// Channels reports the channel count.
	Channels() int
	// ChannelMut returns the unwritten portion of channel ch.
	ChannelMut(ch int) buf.MutChannel[T]
}

// Write adapts a fixed-size buffer so it can be filled across repeated
// copy passes, tracking remaining capacity the way Read tracks
// remaining frames.
type Write[T buf.Sample] struct {
	buf       buf.MutFrameBuf[T]
	available int
}

// NewWrite wraps b in a write adapter. The adapter borrows b.
func NewWrite[T buf.Sample](b buf.MutFrameBuf[T]) *Write[T] {
	return &Write[T]{buf: b, available: b.Frames()}
}

// Buf returns the underlying buffer.
func (w *Write[T]) Buf() buf.MutFrameBuf[T] { return w.buf }

// RemainingMut reports the number of unwritten frames.
func (w *Write[T]) RemainingMut() int { return w.available }

// AdvanceMut marks n frames as written, clamping at zero capacity.
func (w *Write[T]) AdvanceMut(n int) {
	if n < 0 {
		return
	}
	w.available -= n
	if w.available < 0 {
		w.available = 0
	}
}

// SetWritten sets absolute progress: n frames have been written.
func (w *Write[T]) SetWritten(n int) {
	if n < 0 {
		n = 0
	}
	w.available = w.buf.Frames() - n
	if w.available < 0 {
		w.available = 0
	}
}

// Written reports how many frames have been written so far.
func (w *Write[T]) Written() int { return w.buf.Frames() - w.available }

// FramesHint reports the logical remaining capacity.
func (w *Write[T]) FramesHint() (int, bool) { return w.available, true }

// Channels reports the channel count of the underlying buffer.
func (w *Write[T]) Channels() int { return w.buf.Channels() }

// Frames reports the logical remaining capacity.
func (w *Write[T]) Frames() int { return w.available }

// ChannelMut returns the unwritten portion of channel ch.
// Already-written frames are excluded from the view.
func (w *Write[T]) ChannelMut(ch int) buf.MutChannel[T] {
	return w.buf.ChannelMut(ch).Tail(w.buf.Frames() - w.available)
}
