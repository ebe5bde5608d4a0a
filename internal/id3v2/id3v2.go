// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package id3v2 detects and parses stacked ID3v2.2/2.3/2.4 tag blocks
// at the start of an MP3 file, pushing the triples they describe
// through a triples.Emitter and capturing embedded album art and a
// TLEN-derived duration override into a model.FileData.
package id3v2

import (
	"strconv"

	"github.com/tracker-project/mp3extract/internal/extracterr"
	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/observability"
	"github.com/tracker-project/mp3extract/internal/triples"
	"github.com/tracker-project/mp3extract/internal/unsync"
)

const outerHeaderLen = 10

// version identifies which ID3v2 revision a header belongs to.
type version int

const (
	v22 version = iota
	v23
	v24
)

// ParseStacked walks zero or more concatenated ID3v2 tag blocks
// starting at offset 0 of head, in the order v2.4, v2.3, v2.2 at each
// position. It mutates fd in place (ID3v2Size, DurationSecs,
// AlbumArt) and pushes triples for every recognized frame through
// emitter. obs may be nil.
func ParseStacked(head []byte, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) {
	pos := 0
	for {
		adv, ok := parseHeaderAt(head, pos, fileSubject, fd, emitter, obs)
		if !ok || adv <= 0 {
			break
		}
		pos += adv
		logDetail(obs, "id3v2", "stacked tag consumed, cumulative offset now "+strconv.Itoa(pos))
	}
	fd.ID3v2Size = pos
}

func parseHeaderAt(data []byte, pos int, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) (int, bool) {
	if adv, ok := parseVersionAt(data, pos, v24, fileSubject, fd, emitter, obs); ok {
		return adv, true
	}
	if adv, ok := parseVersionAt(data, pos, v23, fileSubject, fd, emitter, obs); ok {
		return adv, true
	}
	if adv, ok := parseVersionAt(data, pos, v22, fileSubject, fd, emitter, obs); ok {
		return adv, true
	}
	return 0, false
}

func versionByte(v version) byte {
	switch v {
	case v22:
		return 0x02
	case v23:
		return 0x03
	default:
		return 0x04
	}
}

func parseVersionAt(data []byte, pos int, v version, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) (int, bool) {
	remaining := data[pos:]
	if len(remaining) < 16 {
		return 0, false
	}
	if remaining[0] != 'I' || remaining[1] != 'D' || remaining[2] != '3' {
		return 0, false
	}
	if remaining[3] != versionByte(v) {
		return 0, false
	}
	if remaining[4] != 0x00 { // revision must be 0
		return 0, false
	}

	flags := remaining[5]
	tsize := int(syncsafe28(remaining[6], remaining[7], remaining[8], remaining[9]))
	total := outerHeaderLen + tsize
	if total > len(remaining) {
		return 0, false
	}

	unsyncFlag := flags&0x80 != 0
	var extendedFlag, experimentalFlag bool
	if v != v22 {
		extendedFlag = flags&0x40 != 0
		experimentalFlag = flags&0x20 != 0
	}

	if experimentalFlag {
		logDetail(obs, "id3v2", "experimental tag skipped")
		return total, true
	}

	content := remaining[outerHeaderLen : outerHeaderLen+tsize]
	framesFrom := 0
	frameLen := len(content)

	if extendedFlag {
		switch v {
		case v23:
			skip, trimmedLen, ok := parseV23ExtendedHeader(content)
			if !ok {
				logDetail(obs, "id3v2", extracterr.New(extracterr.KindMalformedTag, "id3v2", "v2.3 extended header padding exceeds tag size, tag abandoned").Error())
				return 0, false
			}
			framesFrom = skip
			frameLen = trimmedLen
		case v24:
			skip, ok := parseV24ExtendedHeader(content)
			if !ok {
				logDetail(obs, "id3v2", extracterr.New(extracterr.KindMalformedTag, "id3v2", "v2.4 extended header malformed, frames skipped").Error())
				return total, true
			}
			framesFrom = skip
		}
	}

	if framesFrom > frameLen || frameLen > len(content) {
		return total, true
	}
	frameRegion := content[framesFrom:frameLen]
	if unsyncFlag {
		frameRegion = unsync.Reverse(frameRegion)
	}

	switch v {
	case v22:
		walkFramesV22(frameRegion, fileSubject, fd, emitter, obs)
	default:
		walkFramesV2x(frameRegion, v, fileSubject, fd, emitter, obs)
	}

	return total, true
}

// parseV23ExtendedHeader reproduces the reference decoder's
// ehdrSize typo: the third and fourth bytes of the 4-byte size field
// are both read from content[2] (content[3] is never read). Padding
// is read from content[5:9], matching the same reference offsets.
// Returns (framesFrom, trimmedContentLen, ok).
func parseV23ExtendedHeader(content []byte) (int, int, bool) {
	if len(content) < 9 {
		return 0, 0, false
	}
	ehdrSize := uint32(content[0])<<24 | uint32(content[1])<<16 | uint32(content[2])<<8 | uint32(content[2])
	padding := uint32(content[5])<<24 | uint32(content[6])<<16 | uint32(content[7])<<8 | uint32(content[8])

	framesFrom := 4 + int(ehdrSize)
	if padding >= uint32(len(content)) {
		return 0, 0, false
	}
	trimmedLen := len(content) - int(padding)
	if framesFrom > trimmedLen {
		framesFrom = trimmedLen
	}
	return framesFrom, trimmedLen, true
}

// parseV24ExtendedHeader reads the syncsafe 28-bit extended header
// size correctly (no reference typo exists for v2.4).
func parseV24ExtendedHeader(content []byte) (int, bool) {
	if len(content) < 4 {
		return 0, false
	}
	ehdrSize := int(syncsafe28(content[0], content[1], content[2], content[3]))
	if ehdrSize < 0 || ehdrSize > len(content) {
		return 0, false
	}
	return ehdrSize, true
}

func syncsafe28(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0&0x7F)<<21 | uint32(b1&0x7F)<<14 | uint32(b2&0x7F)<<7 | uint32(b3&0x7F)
}

func beU32(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

func logDetail(obs *observability.StandardObserver, component, detail string) {
	if obs != nil && obs.DebugObserver != nil {
		obs.DebugObserver.LogDetail(component, detail)
	}
}

