// SPDX-License-Identifier: EPL-2.0

package driver_test

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/internal/buftest"
	"github.com/ik5/pcmbuf/pcmio"
)

func TestBufSource_ServesAcrossPasses(t *testing.T) {
	t.Parallel()

	data := buftest.Pattern[float32](2, 5, func(frame, ch int) float32 {
		return float32(frame+1) * float32(ch+1)
	})
	src := driver.NewBufSource[float32](data, 8000)

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	// Drain two frames at a time. The source must carry its position
	// between calls and signal io.EOF with or after the final frames.
	out := buf.NewInterleaved[float32](2, 5)
	served := 0
	for served < 5 {
		w := pcmio.NewWrite[float32](buf.SkipMut[float32](out, served).Limit(2))
		n, err := src.ReadFrames(w)
		if n == 0 && err == nil {
			t.Fatal("ReadFrames made no progress without an error")
		}
		served += n
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if served != 5 {
		t.Fatalf("served %d frames, want 5", served)
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}

	want := data.Slice()
	for i, v := range out.Slice() {
		if v != want[i] {
			t.Fatalf("collected %v, want %v", out.Slice(), want)
		}
	}
}

func TestBufSource_EOFAfterDrained(t *testing.T) {
	t.Parallel()

	src := driver.NewBufSource[float32](buf.NewInterleaved[float32](1, 2), 8000)

	w := pcmio.NewWrite[float32](buf.NewInterleaved[float32](1, 8))
	if n, err := src.ReadFrames(w); n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadFrames() = %d, %v, want 2, io.EOF", n, err)
	}
	if n, err := src.ReadFrames(w); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadFrames() after drain = %d, %v, want 0, io.EOF", n, err)
	}
}
