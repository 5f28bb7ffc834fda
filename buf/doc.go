// SPDX-License-Identifier: EPL-2.0

// Package buf provides generic multi-channel sample buffers.
//
// A buffer holds channels x frames samples of one numeric type. Two
// physical layouts are provided, Interleaved and Sequential (planar),
// but all consumers work against capability interfaces so the layout
// never leaks:
//   - Buf: frame-count hint and channel count
//   - ExactSizeBuf: exact frame count
//   - ChannelBuf: per-channel read access
//   - MutChannelBuf: per-channel write access
//
// Which capabilities a consumer needs is expressed in its signature, so
// passing a buffer that lacks one is a compile error, not a runtime
// check.
//
// # Channel Views
//
// Channel and MutChannel are borrowed, possibly strided views over one
// channel's samples. They are sub-sliceable without copying:
//
//	c := b.Channel(0)
//	c = c.Tail(2)  // drop the first two frames
//	c = c.Limit(1) // keep one frame
//
// Tail and Limit clamp instead of panicking; windowing never produces a
// negative length and composes associatively, c.Tail(a).Tail(b) is
// c.Tail(a+b).
//
// # Windowing
//
// Skip, Limit and Tail narrow a whole buffer's visible frame range
// before any channel is materialized:
//
//	w := buf.Skip[int16](b, 2).Limit(1)
//
// The views handed out by w.Channel already reflect the composed
// window. Windows describe a range over a borrowed buffer; they never
// copy or own sample memory.
//
// # Ownership
//
// Buffers either allocate their storage (NewInterleaved, NewSequential)
// or borrow caller-owned slices (WrapInterleaved, WrapSequential).
// Views and windows always borrow; they must not outlive the buffer
// they were taken from.
//
// The package performs no locking. A buffer instance assumes a single
// writer and single reader per pass; callers sharing a buffer across
// goroutines must serialize access themselves.
package buf
