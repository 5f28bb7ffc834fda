// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into sample buffer frames.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files.
package vorbis
