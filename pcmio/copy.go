// SPDX-License-Identifier: EPL-2.0

package pcmio

import "github.com/ik5/pcmbuf/buf"

// CopyRemaining moves as many frames as possible from src to dst in one
// pass and reports how many were moved. Both adapters are advanced by
// exactly the reported count, after the transfer, so a subsequent call
// resumes where this one stopped.
//
// A zero result is not an error: it means one side is exhausted and the
// caller should stop or re-arm. When the channel counts differ, only
// the shared min(src, dst) channels are copied; extra destination
// channels are left untouched and extra source channels are never read.
// Source and destination must not alias the same memory.
func CopyRemaining[T buf.Sample](src Reader[T], dst Writer[T]) int {
	n := min(src.Remaining(), dst.RemainingMut())
	if n == 0 {
		return 0
	}

	channels := min(src.Channels(), dst.Channels())
	if channels == 0 {
		return 0
	}

	for ch := range channels {
		dst.ChannelMut(ch).Limit(n).CopyFrom(src.Channel(ch))
	}

	src.Advance(n)
	dst.AdvanceMut(n)
	return n
}

// TranslateRemaining is CopyRemaining across differing sample types,
// converting each sample with fn. The utils package provides the stock
// conversions.
func TranslateRemaining[F, T buf.Sample](src Reader[F], dst Writer[T], fn func(F) T) int {
	n := min(src.Remaining(), dst.RemainingMut())
	if n == 0 {
		return 0
	}

	channels := min(src.Channels(), dst.Channels())
	if channels == 0 {
		return 0
	}

	for ch := range channels {
		from := src.Channel(ch)
		to := dst.ChannelMut(ch)
		for i := range n {
			to.Set(i, fn(from.At(i)))
		}
	}

	src.Advance(n)
	dst.AdvanceMut(n)
	return n
}
