// SPDX-License-Identifier: EPL-2.0

package pcmbuf

import (
	"io"
	"sync"

	"github.com/ik5/pcmbuf/driver"
)

// Decoder constructs a frame source from an input reader. Decoded
// samples are normalized float32 in [-1, 1].
type Decoder interface {
	Decode(r io.Reader) (driver.Source[float32], error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
