// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package genre maps the numeric and textual genre forms found in
// ID3v1 and ID3v2 TCON frames to the canonical ID3v1/Winamp genre
// name table.
package genre

import (
	"regexp"
	"strconv"
	"strings"
)

// Names is the canonical 148-entry ID3v1/Winamp genre name table,
// indexed by the numeric genre code.
var Names = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native American", "Cabaret", "New Wave",
	"Psychedelic", "Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal",
	"Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll",
	"Hard Rock", "Folk", "Folk-Rock", "National Folk", "Swing",
	"Fast Fusion", "Bebop", "Latin", "Revival", "Celtic", "Bluegrass",
	"Avantgarde", "Gothic Rock", "Progressive Rock", "Psychedelic Rock",
	"Symphonic Rock", "Slow Rock", "Big Band", "Chorus", "Easy Listening",
	"Acoustic", "Humour", "Speech", "Chanson", "Opera", "Chamber Music",
	"Sonata", "Symphony", "Booty Bass", "Primus", "Porn Groove", "Satire",
	"Slow Jam", "Club", "Tango", "Samba", "Folklore", "Ballad",
	"Power Ballad", "Rhythmic Soul", "Freestyle", "Duet", "Punk Rock",
	"Drum Solo", "A capella", "Euro-House", "Dance Hall", "Goa",
	"Drum & Bass", "Club-House", "Hardcore", "Terror", "Indie", "BritPop",
	"Negerpunk", "Polsk Punk", "Beat", "Christian Gangsta Rap",
	"Heavy Metal", "Black Metal", "Crossover", "Contemporary Christian",
	"Christian Rock", "Merengue", "Salsa", "Thrash Metal", "Anime", "J-Pop",
	"Synthpop",
}

var (
	prefixCode   = regexp.MustCompile(`^\((\d+)\)`)
	trailingCode = regexp.MustCompile(`(\d+)$`)
)

// Resolve maps a raw genre string to its canonical name. It tries a
// parenthesised prefix code first ("(17)Rock"), then a bare or
// trailing numeric code ("17"); either, if in range, yields
// Names[n]. A string that matches neither form passes through
// unchanged. The returned bool is false when the raw value is the
// case-insensitive word "unknown", in which case the caller must drop
// the genre frame entirely rather than emit the empty result.
func Resolve(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "unknown") {
		return "", false
	}

	if m := prefixCode.FindStringSubmatch(trimmed); m != nil {
		if name, ok := lookup(m[1]); ok {
			return name, true
		}
	}
	if m := trailingCode.FindStringSubmatch(trimmed); m != nil {
		if name, ok := lookup(m[1]); ok {
			return name, true
		}
	}
	return trimmed, true
}

func lookup(numeral string) (string, bool) {
	n, err := strconv.Atoi(numeral)
	if err != nil || n < 0 || n >= len(Names) {
		return "", false
	}
	return Names[n], true
}
