// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: ErrNotWavFile, want: "not a wav file"},
		{err: ErrOnlyPCMSupported, want: "only PCM wav is supported"},
		{err: ErrUnsupportedBitDepth, want: "unsupported wav bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("sentinel is nil")
			}
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
			if !errors.Is(tt.err, tt.err) {
				t.Error("errors.Is does not match the sentinel itself")
			}
		})
	}
}
