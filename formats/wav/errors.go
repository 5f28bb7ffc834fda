// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a wav file")
	ErrOnlyPCMSupported    = errors.New("only PCM wav is supported")
	ErrUnsupportedBitDepth = errors.New("unsupported wav bit depth")
)
