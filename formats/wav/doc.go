// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV audio into sample buffer frames and encodes
// buffers back to WAV.
//
// It uses the github.com/go-audio library for WAV file handling.
package wav
