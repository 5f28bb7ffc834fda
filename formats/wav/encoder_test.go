// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// seekBuffer is an in-memory io.WriteSeeker for the encoder, which
// rewinds to patch the RIFF header on Close.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		b.data = append(b.data, make([]byte, need-len(b.data))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("seek: invalid whence %d", whence)
	}
	if pos < 0 {
		return 0, errors.New("seek: negative position")
	}
	b.pos = int(pos)
	return pos, nil
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	err := Encode(&seekBuffer{}, buf.NewInterleaved[float32](1, 4), 8000, 12)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

// Encode a buffer to an in-memory WAV file and decode it back through
// the real go-audio round trip.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	const frames = 64

	orig := buf.NewInterleaved[float32](2, frames)
	for ch := range 2 {
		view := orig.ChannelMut(ch)
		for i := range frames {
			view.Set(i, float32(math.Sin(2*math.Pi*float64(i)/float64(frames)))*float32(ch+1)*0.4)
		}
	}

	var file seekBuffer
	if err := Encode(&file, orig, 44100, 16); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(file.data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", src.Channels())
	}

	out := buf.NewInterleaved[float32](2, frames)
	w := pcmio.NewWrite[float32](out)
	for w.RemainingMut() > 0 {
		n, err := src.ReadFrames(w)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrames() error: %v", err)
		}
		if n == 0 {
			t.Fatal("ReadFrames made no progress")
		}
	}
	if w.Written() != frames {
		t.Fatalf("decoded %d frames, want %d", w.Written(), frames)
	}

	// Scaling by 32767 on the way out and 32768 on the way back costs
	// up to two quantization steps per sample.
	const tolerance = 2.0 / 32768.0
	for ch := range 2 {
		want := orig.Channel(ch)
		got := out.Channel(ch)
		for i := range frames {
			if diff := math.Abs(float64(got.At(i) - want.At(i))); diff > tolerance {
				t.Fatalf("channel %d frame %d = %v, want %v (±%v)", ch, i, got.At(i), want.At(i), tolerance)
			}
		}
	}
}
