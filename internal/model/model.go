// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package model holds the data types shared across the ID3v1, ID3v2,
// and MPEG-frame decoders: the scratchpad both tag parsers write into,
// and the frame/triple shapes the decoders and emitter agree on.
package model

// TagSet is the result of parsing an ID3v1 trailer. Every field is
// already valid UTF-8 and NUL/space-trimmed.
type TagSet struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	TrackNo string
	Genre   string
}

// AlbumArt is the embedded-picture payload kept from an ID3v2
// APIC/PIC frame, per the front-cover-wins policy on FileData.AlbumArt.
type AlbumArt struct {
	MIME  string
	Bytes []byte
}

// FileData is the scratchpad threaded through ID3v2 parsing and the
// MPEG frame scanner for a single file.
type FileData struct {
	TotalSize int64

	// ID3v2Size is the cumulative number of bytes consumed by the
	// stacked ID3v2 headers; the MPEG scanner's start offset equals
	// it exactly. Monotone non-decreasing as tags stack.
	ID3v2Size int

	// DurationSecs is set from a TLEN frame, when present, and
	// overrides the MPEG scanner's own duration estimate.
	DurationSecs *int

	// AlbumArt: a pic_type==3 frame replaces any art captured before
	// it, so when a tag holds several front covers the last one is
	// kept; a pic_type==0 frame is accepted only if no art has been
	// captured yet.
	AlbumArt *AlbumArt
}

// Frame is one parsed ID3v2 frame: a 3-byte id in v2.2, 4-byte in
// v2.3/v2.4.
type Frame struct {
	ID      string
	Size    uint32
	Flags   uint16
	HasFlag bool // false for v2.2, which has no frame-flags field
	Data    []byte
}

// MPEGFrameDesc describes one decoded MPEG audio frame header.
type MPEGFrameDesc struct {
	Version      string // "1", "2", or "2.5"
	Layer        int    // 1, 2, or 3
	BitrateKbps  int
	SampleRateHz int
	Channels     int // 1 (mono) or 2 (stereo/joint-stereo/dual-mono)
	Padding      int // 0 or 1
}

// Triple is an RDF-style (subject, predicate, object) statement. The
// object is either a string/int literal or a URI string.
type Triple struct {
	Subject   string
	Predicate string
	Object    interface{}
}
