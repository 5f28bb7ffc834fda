// SPDX-License-Identifier: EPL-2.0

package pcmio_test

import (
	"testing"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

func TestWrite_RemainingAfterNew(t *testing.T) {
	t.Parallel()

	w := pcmio.NewWrite[int16](buf.NewInterleaved[int16](2, 4))

	if w.RemainingMut() != 4 {
		t.Errorf("RemainingMut() = %d, want 4", w.RemainingMut())
	}
	if w.Written() != 0 {
		t.Errorf("Written() = %d, want 0", w.Written())
	}
}

func TestWrite_AdvanceMutSaturates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		advance []int
		want    int
	}{
		{name: "partial", advance: []int{3}, want: 1},
		{name: "over", advance: []int{9}, want: 0},
		{name: "repeated over", advance: []int{2, 7}, want: 0},
		{name: "negative is ignored", advance: []int{-1}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := pcmio.NewWrite[int16](buf.NewInterleaved[int16](2, 4))
			for _, n := range tt.advance {
				w.AdvanceMut(n)
			}
			if w.RemainingMut() != tt.want {
				t.Errorf("RemainingMut() = %d, want %d", w.RemainingMut(), tt.want)
			}
		})
	}
}

func TestWrite_SetWritten(t *testing.T) {
	t.Parallel()

	w := pcmio.NewWrite[int16](buf.NewInterleaved[int16](1, 4))

	w.SetWritten(3)
	if w.RemainingMut() != 1 {
		t.Errorf("RemainingMut() after SetWritten(3) = %d, want 1", w.RemainingMut())
	}

	w.SetWritten(9)
	if w.RemainingMut() != 0 {
		t.Errorf("RemainingMut() after SetWritten(9) = %d, want 0", w.RemainingMut())
	}
}

// Writes always land past the frames already produced.
func TestWrite_ChannelMutExcludesWritten(t *testing.T) {
	t.Parallel()

	b := buf.NewInterleaved[int16](1, 4)
	w := pcmio.NewWrite[int16](b)
	w.AdvanceMut(2)

	view := w.ChannelMut(0)
	if view.Len() != 2 {
		t.Fatalf("ChannelMut(0).Len() = %d, want 2", view.Len())
	}
	view.Set(0, 7)

	want := []int16{0, 0, 7, 0}
	for i, v := range b.Slice() {
		if v != want[i] {
			t.Fatalf("Slice() = %v, want %v", b.Slice(), want)
		}
	}
}
