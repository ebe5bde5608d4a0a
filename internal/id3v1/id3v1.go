// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package id3v1 parses the fixed-layout 128-byte ID3v1 trailer found
// at the end of many MP3 files.
package id3v1

import (
	"strconv"
	"strings"

	"github.com/tracker-project/mp3extract/internal/genre"
	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/textdecode"
)

const trailerLen = 128

// Field byte offsets within the 128-byte trailer.
const (
	offMagic   = 0
	offTitle   = 3
	offArtist  = 33
	offAlbum   = 63
	offYear    = 93
	offComment = 97
	offGenre   = 127

	commentLen      = 30
	commentTrackOff = 28 // offset within the comment region
	commentTextLen  = 28
)

// Parse decodes the trailing 128 bytes of an MP3 file into a TagSet.
// It returns (nil, false) if trailer is not exactly 128 bytes or the
// leading "TAG" magic does not match.
func Parse(trailer []byte) (*model.TagSet, bool) {
	if len(trailer) != trailerLen {
		return nil, false
	}
	if string(trailer[offMagic:offMagic+3]) != "TAG" {
		return nil, false
	}

	tags := &model.TagSet{
		Title:  latin1Field(trailer[offTitle : offTitle+30]),
		Artist: latin1Field(trailer[offArtist : offArtist+30]),
		Album:  latin1Field(trailer[offAlbum : offAlbum+30]),
		Year:   latin1Field(trailer[offYear : offYear+4]),
	}

	comment := trailer[offComment : offComment+commentLen]
	if comment[commentTrackOff] == 0x00 {
		tags.Comment = latin1Field(comment[:commentTextLen])
		if comment[commentTrackOff+1] != 0x00 {
			tags.TrackNo = strconv.Itoa(int(comment[commentTrackOff+1]))
		}
	} else {
		tags.Comment = latin1Field(comment)
	}

	genreCode := int(trailer[offGenre])
	if name, ok := genre.Resolve(strconv.Itoa(genreCode)); ok {
		tags.Genre = name
	}

	return tags, true
}

func latin1Field(raw []byte) string {
	return strings.TrimRight(textdecode.Decode(textdecode.EncodingISO8859_1, raw), " \x00")
}
