// SPDX-License-Identifier: EPL-2.0

package buf

// Channel is a read-only view over one channel's samples. Consecutive
// frames are stride elements apart in the backing slice, so the same
// view type serves both interleaved and planar storage. A zero Channel
// is an empty view.
type Channel[T Sample] struct {
	data   []T
	stride int
	n      int
}

// Len reports the number of frames visible through the view.
func (c Channel[T]) Len() int { return c.n }

// At returns the sample at frame i. i must be in [0, Len()).
func (c Channel[T]) At(i int) T {
	if i < 0 || i >= c.n {
		panic("buf: channel index out of range")
	}
	return c.data[i*c.stride]
}

// Tail drops the first n frames of the view without moving memory.
// n larger than Len() yields an empty view; negative n is treated as 0.
func (c Channel[T]) Tail(n int) Channel[T] {
	if n <= 0 {
		return c
	}
	if n >= c.n {
		return Channel[T]{stride: c.stride}
	}
	return Channel[T]{data: c.data[n*c.stride:], stride: c.stride, n: c.n - n}
}

// Limit keeps the first n frames of the view.
func (c Channel[T]) Limit(n int) Channel[T] {
	if n < 0 {
		n = 0
	}
	if n >= c.n {
		return c
	}
	return Channel[T]{data: c.data, stride: c.stride, n: n}
}

// CopyInto copies min(Len, dst cap) samples into dst and reports how
// many were copied.
func (c Channel[T]) CopyInto(dst []T) int {
	n := min(c.n, len(dst))
	if c.stride == 1 {
		copy(dst[:n], c.data[:n])
		return n
	}
	for i := range n {
		dst[i] = c.data[i*c.stride]
	}
	return n
}

// MutChannel is a mutable view over one channel's samples. It has the
// same windowing semantics as Channel.
type MutChannel[T Sample] struct {
	data   []T
	stride int
	n      int
}

// Len reports the number of frames visible through the view.
func (m MutChannel[T]) Len() int { return m.n }

// At returns the sample at frame i.
func (m MutChannel[T]) At(i int) T {
	if i < 0 || i >= m.n {
		panic("buf: channel index out of range")
	}
	return m.data[i*m.stride]
}

// Set stores v at frame i. i must be in [0, Len()).
func (m MutChannel[T]) Set(i int, v T) {
	if i < 0 || i >= m.n {
		panic("buf: channel index out of range")
	}
	m.data[i*m.stride] = v
}

// Tail drops the first n frames of the view without moving memory.
func (m MutChannel[T]) Tail(n int) MutChannel[T] {
	if n <= 0 {
		return m
	}
	if n >= m.n {
		return MutChannel[T]{stride: m.stride}
	}
	return MutChannel[T]{data: m.data[n*m.stride:], stride: m.stride, n: m.n - n}
}

// Limit keeps the first n frames of the view.
func (m MutChannel[T]) Limit(n int) MutChannel[T] {
	if n < 0 {
		n = 0
	}
	if n >= m.n {
		return m
	}
	return MutChannel[T]{data: m.data, stride: m.stride, n: n}
}

// CopyFrom copies min(Len, src.Len) samples from src and reports how
// many were copied. Fast path when both sides are contiguous.
func (m MutChannel[T]) CopyFrom(src Channel[T]) int {
	n := min(m.n, src.n)
	if m.stride == 1 && src.stride == 1 {
		copy(m.data[:n], src.data[:n])
		return n
	}
	for i := range n {
		m.data[i*m.stride] = src.data[i*src.stride]
	}
	return n
}

// Fill stores v at every visible frame.
func (m MutChannel[T]) Fill(v T) {
	for i := range m.n {
		m.data[i*m.stride] = v
	}
}

// AsChannel returns the read-only form of the view.
func (m MutChannel[T]) AsChannel() Channel[T] {
	return Channel[T]{data: m.data, stride: m.stride, n: m.n}
}
