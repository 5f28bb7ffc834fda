// SPDX-License-Identifier: EPL-2.0

// Package pcmio moves frames between buffers while tracking how much of
// each side has been consumed or produced.
//
// # Adapters
//
// Read and Write wrap any exact-size buffer with a frame cursor:
//
//	src := pcmio.NewRead[int16](from)
//	dst := pcmio.NewWrite[int16](to)
//
// Remaining and RemainingMut report how much is left on each side, and
// Advance and AdvanceMut move the cursors. Advancing saturates at zero
// instead of failing; the adapters behave as if consumed frames had been
// removed from the front of the buffer, so the channel views they hand
// out always start at the cursor. ReadWrite composes both cursors
// independently over one buffer for in-place processing.
//
// Adapters borrow caller-owned buffers and are meant to be short-lived,
// typically one per transfer pass.
//
// # Streaming copy
//
// CopyRemaining drains a Reader into a Writer one channel at a time,
// bounded by whichever side has less left, and advances both sides by
// the count it returns:
//
//	for pcmio.CopyRemaining[int16](src, dst) > 0 {
//	}
//
// Because the cursors persist across calls, a transfer interrupted by a
// full destination resumes correctly on the next pass with a fresh
// destination. A return of 0 signals exhaustion, not an error.
//
// TranslateRemaining does the same across differing sample types given
// a per-sample conversion function; see the utils package for the stock
// conversion policy.
package pcmio
