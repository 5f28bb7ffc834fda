// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// Source is the producing side of the device boundary. One ReadFrames
// call corresponds to one readiness pass: the source fills as much of
// dst's remaining capacity as it can and reports the frame count.
//
// A source must make progress: n == 0 with a nil error is reserved for
// a destination with no remaining capacity. When the stream ends the
// source returns io.EOF, possibly alongside the final frames.
type Source[T buf.Sample] interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadFrames produces frames into the writable remainder of dst.
	ReadFrames(dst *pcmio.Write[T]) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Sink is the consuming side of the device boundary. One WriteFrames
// call corresponds to one readiness pass: the sink drains as much of
// src's remaining frames as it can and reports the frame count. A sink
// may consume less than src has left; the caller re-invokes it with the
// same adapter until Remaining reaches zero.
type Sink[T buf.Sample] interface {
	// WriteFrames consumes frames from the readable remainder of src.
	WriteFrames(src *pcmio.Read[T]) (n int, err error)
	// Close releases any resources.
	Close() error
}
