// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/pcmio"
)

// mockOggReader simulates the oggvorbis.Reader for testing
type mockOggReader struct {
	sampleRate  int
	channels    int
	samples     []float32 // interleaved
	offset      int
	perRead     int // cap on float values per Read, 0 for unlimited
	returnError error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.returnError != nil {
		return 0, m.returnError
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(p), len(m.samples)-m.offset)
	if m.perRead > 0 && n > m.perRead {
		n = m.perRead
	}
	// Reads stay frame aligned.
	n = (n / m.channels) * m.channels

	copy(p, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestSource_ReadFrames(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}
	src := &source{dec: mock, sampleRate: 48000, channels: 2}

	out := buf.NewInterleaved[float32](2, 3)
	n, err := src.ReadFrames(pcmio.NewWrite[float32](out))
	if err != nil {
		t.Fatalf("ReadFrames() error: %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadFrames() = %d, want 3", n)
	}

	for i, want := range []float32{0.1, 0.2, 0.3} {
		if got := out.Channel(0).At(i); got != want {
			t.Errorf("left frame %d = %v, want %v", i, got, want)
		}
		if got := out.Channel(1).At(i); got != -want {
			t.Errorf("right frame %d = %v, want %v", i, got, -want)
		}
	}
}

// A reader returning fewer values than asked still yields whole frames.
func TestSource_ReadFramesPartial(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    make([]float32, 2*6),
		perRead:    4, // two frames per underlying read
	}
	src := &source{dec: mock, sampleRate: 48000, channels: 2}

	out := buf.NewInterleaved[float32](2, 6)
	total := 0
	for total < 6 {
		w := pcmio.NewWrite[float32](buf.SkipMut[float32](out, total))
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
		if n > 2 {
			t.Fatalf("ReadFrames() = %d frames from a 2-frame read", n)
		}
		total += n
	}

	if total != 6 {
		t.Fatalf("decoded %d frames, want 6", total)
	}
}

func TestSource_EndOfStream(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 1},
		sampleRate: 48000,
		channels:   1,
	}

	n, err := src.ReadFrames(pcmio.NewWrite[float32](buf.NewInterleaved[float32](1, 4)))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadFrames() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadFramesDecodeError(t *testing.T) {
	t.Parallel()

	decodeErr := errors.New("corrupt ogg page")
	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 1, returnError: decodeErr},
		sampleRate: 48000,
		channels:   1,
	}

	_, err := src.ReadFrames(pcmio.NewWrite[float32](buf.NewInterleaved[float32](1, 4)))
	if !errors.Is(err, decodeErr) {
		t.Errorf("ReadFrames() error = %v, want wrapped %v", err, decodeErr)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not Ogg data")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
