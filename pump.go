// SPDX-License-Identifier: EPL-2.0

package pcmbuf

import (
	"fmt"
	"io"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
)

// DefaultPeriod is the per-pass frame count used when the caller does
// not pick one.
const DefaultPeriod = 4096

// Pump drives frames from src into sink, one period-sized pass at a
// time, until the source is drained. It allocates a single scratch
// buffer up front and reuses it for every pass.
//
// Each pass wraps the scratch in a fresh write adapter for the source
// to fill, then in a read adapter that the sink drains across as many
// calls as it needs; a sink consuming less than a full period per call
// is re-invoked with the same adapter until the pass is empty.
//
// Returns the total frames moved. A sink or source that stops making
// progress without signaling the end of the stream fails with
// io.ErrNoProgress.
//
// Parameters:
//   - src: the frame producer (decoder, device capture, BufSource)
//   - sink: the frame consumer (device playback, CollectSink)
//   - period: frames per pass; 0 or less selects DefaultPeriod
func Pump[T buf.Sample](src driver.Source[T], sink driver.Sink[T], period int) (int, error) {
	if period <= 0 {
		period = DefaultPeriod
	}

	scratch := buf.NewInterleaved[T](src.Channels(), period)
	total := 0

	for {
		wr := pcmio.NewWrite[T](scratch)
		n, err := src.ReadFrames(wr)

		if n > 0 {
			rd := pcmio.NewRead[T](buf.Limit[T](scratch, n))
			for rd.Remaining() > 0 {
				m, werr := sink.WriteFrames(rd)
				if werr != nil {
					return total, fmt.Errorf("%w", werr)
				}
				if m == 0 {
					return total, io.ErrNoProgress
				}
			}
			total += n
		}

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return total, io.ErrNoProgress
		}
	}
}

// ReadAll collects the whole stream from src into one interleaved
// buffer. The buffer grows as frames arrive; for bounded memory use
// Pump with a custom sink instead.
func ReadAll[T buf.Sample](src driver.Source[T]) (*buf.Interleaved[T], error) {
	sink := driver.NewCollectSink[T](src.Channels())

	if _, err := Pump[T](src, sink, DefaultPeriod); err != nil {
		return sink.Buffer(), fmt.Errorf("%w", err)
	}

	return sink.Buffer(), nil
}
