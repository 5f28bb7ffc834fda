// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 maps a 16-bit PCM sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// NormalizeInt maps an integer PCM sample of the given bit depth into
// [-1, 1). Unknown depths fall back to 16-bit.
func NormalizeInt(v int, bitDepth int) float32 {
	return float32(v) / intScale(bitDepth)
}

// DenormalizeFloat32 maps x in [-1, 1] to an integer PCM sample of the
// given bit depth. Out-of-range input is clamped, and the positive max
// is one below the scale so +1.0 never overflows.
func DenormalizeFloat32(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int(x * (intScale(bitDepth) - 1))
}

func intScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
