// SPDX-License-Identifier: EPL-2.0

// Package pcmbuf provides generic multi-channel audio sample buffers
// and the streaming machinery to move frames between them.
//
// The module is split by concern:
//   - buf: buffer types, channel views and windowing
//   - pcmio: read/write adapters and the streaming copy
//   - driver: the source/sink boundary to devices and decoders
//   - formats: WAV, MP3, Ogg Vorbis and AIFF decoders
//   - utils: sample format conversions
//
// # Quick Start
//
// Copying between two buffers, regardless of their physical layout:
//
//	from := buf.WrapInterleaved([]int16{1, 1, 2, 2, 3, 3, 4, 4}, 2)
//	to := buf.NewSequential[int16](2, 4)
//
//	n := pcmio.CopyRemaining[int16](pcmio.NewRead[int16](from), pcmio.NewWrite[int16](to))
//	// n == 4, to now holds the same frames planar
//
// # Streaming
//
// Decoders and devices meet through the driver boundary. Pump drives
// period-sized passes from a Source into a Sink until the source is
// drained:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	sink := driver.NewCollectSink[float32](src.Channels())
//	frames, err := pcmbuf.Pump[float32](src, sink, 4096)
//
// ReadAll is the shorthand when all you want is the whole stream in one
// buffer.
//
// # Windowing
//
// Sub-ranges are views, not copies. Skip, Limit and Tail narrow what a
// copy sees:
//
//	part := buf.Skip[int16](from, 2).Limit(1) // frame 2 only
//
// # Sample Types
//
// Buffers are generic over the numeric sample type. Same-type copies
// are exact; cross-type copies go through pcmio.TranslateRemaining with
// an explicit conversion, the stock ones living in utils. The policy:
// float to int clamps to [-1, 1] and scales to the integer width, int
// to float divides by the width, float to float is a direct cast.
//
// # Decoders
//
// Each format package wraps its upstream decoder as a driver.Source
// producing normalized float32 frames in [-1, 1]:
//
//	registry := pcmbuf.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//
// # Concurrency
//
// Nothing here locks. Buffers, adapters and copies are plain data
// movement over caller-owned memory; callers sharing a buffer between
// goroutines serialize access themselves. The Registry is the one
// exception and is safe for concurrent use.
package pcmbuf
