// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into sample buffer frames.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
package aiff
