// SPDX-License-Identifier: EPL-2.0

// Package driver defines the boundary between the buffer framework and
// whatever produces or consumes frames: a sound device, a decoder, a
// network stream.
//
// The OS layer itself (device enumeration, poll/event readiness) lives
// outside this module. What crosses the boundary here is one
// synchronous transfer pass at a time: a Source fills the writable
// remainder of a pcmio.Write, a Sink drains the readable remainder of a
// pcmio.Read. Because the adapters carry their cursors across calls,
// either side may handle only part of a pass and be re-invoked.
//
// BufSource and CollectSink are in-memory implementations, enough to
// run a full pipeline without hardware. Mono is a channel-averaging
// source wrapper.
package driver
