// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package id3v2

// ruleKind selects how a frame's decoded text is turned into triples.
type ruleKind int

const (
	kindLiteral  ruleKind = iota // emit predicate(fileSubject, text)
	kindMinted                   // mint an entity and link it
	kindGenre                    // route text through the genre resolver
	kindTrack                    // split "n/total", keep leading n
	kindDuration                 // milliseconds -> seconds, overrides scanner estimate
	kindComment                  // encoding+language+desc+text payload
)

// frameRule describes the triple(s) one frame id produces.
type frameRule struct {
	kind          ruleKind
	predicate     string // literal predicate, or the link predicate when minted
	urnKind       string // "artist" / "album" / "publisher", when kind == kindMinted
	rdfType       string
	namePredicate string
}

// predicateTable maps a v2.2 (3-byte) or v2.3/v2.4 (4-byte) frame id
// to its triple-emission rule. Unlisted ids are skipped silently —
// the reference decoder only ever recognized this fixed set.
//
// TOAL/TIT1/TIT3/TENC are carried over from the reference decoder's
// v2.3/v2.4 table even though spec.md's own table omits them. The
// v2.2-only rows (TT1/TT3/WCM/TEN/SLT/TOA/TOT/TOL) are the same kind
// of supplement, taken from get_id3v20_tags's tmap
// (tracker-extract-mp3.c:1260-1281) rather than the v2.3/v2.4 tmap.
var predicateTable = map[string]frameRule{
	"TIT2": {kind: kindLiteral, predicate: "nie:title"},
	"TT2":  {kind: kindLiteral, predicate: "nie:title"},
	"TT3":  {kind: kindLiteral, predicate: "nie:title"},
	"TOT":  {kind: kindLiteral, predicate: "nie:title"},

	"TPE1": {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TPE2": {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TPE3": {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TP1":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TP2":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TP3":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TT1":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TEN":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TOA":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},
	"TOL":  {kind: kindMinted, predicate: "nmm:performer", urnKind: "artist", rdfType: "nmm:Artist", namePredicate: "nmm:artistName"},

	"TALB": {kind: kindMinted, predicate: "nmm:musicAlbum", urnKind: "album", rdfType: "nmm:MusicAlbum", namePredicate: "nie:title"},
	"TOAL": {kind: kindMinted, predicate: "nmm:musicAlbum", urnKind: "album", rdfType: "nmm:MusicAlbum", namePredicate: "nie:title"},
	"TAL":  {kind: kindMinted, predicate: "nmm:musicAlbum", urnKind: "album", rdfType: "nmm:MusicAlbum", namePredicate: "nie:title"},

	"TRCK": {kind: kindTrack, predicate: "nmm:trackNumber"},

	"TCON": {kind: kindGenre, predicate: "nfo:genre"},
	"TCO":  {kind: kindGenre, predicate: "nfo:genre"},
	"TIT1": {kind: kindGenre, predicate: "nfo:genre"},

	"TYER": {kind: kindLiteral, predicate: "nie:contentCreated"},
	"TDRC": {kind: kindLiteral, predicate: "nie:contentCreated"},
	"TDRL": {kind: kindLiteral, predicate: "nie:contentCreated"},
	"TDAT": {kind: kindLiteral, predicate: "nie:contentCreated"},
	"TYE":  {kind: kindLiteral, predicate: "nie:contentCreated"},

	"TCOP": {kind: kindLiteral, predicate: "nie:copyright"},
	"TCR":  {kind: kindLiteral, predicate: "nie:copyright"},

	"TLAN": {kind: kindLiteral, predicate: "nie:language"},
	"TLA":  {kind: kindLiteral, predicate: "nie:language"},

	"TPUB": {kind: kindMinted, predicate: "nco:publisher", urnKind: "publisher", rdfType: "nco:Contact", namePredicate: "nco:fullname"},
	"TENC": {kind: kindMinted, predicate: "nco:publisher", urnKind: "publisher", rdfType: "nco:Contact", namePredicate: "nco:fullname"},
	"TPB":  {kind: kindMinted, predicate: "nco:publisher", urnKind: "publisher", rdfType: "nco:Contact", namePredicate: "nco:fullname"},

	"TLEN": {kind: kindDuration, predicate: "nmm:length"},
	"TLE":  {kind: kindDuration, predicate: "nmm:length"},

	"COMM": {kind: kindComment, predicate: "nie:comment"},
	"COM":  {kind: kindComment, predicate: "nie:comment"},

	"TIT3": {kind: kindLiteral, predicate: "nie:comment"},

	"WCM": {kind: kindLiteral, predicate: "nie:license"},
	"SLT": {kind: kindLiteral, predicate: "nie:plainTextContent"},

	// Preserved copy-paste defect from the reference decoder's v2.3/v2.4
	// table: this row never minted anything even in the original.
	"TEXT": {kind: kindLiteral, predicate: "nie:plainTextContent"},

	// v2.2's own tmap maps TXT to nie:comment, a different row from the
	// v2.3/v2.4 TEXT defect above — not the same quirk, not preserved.
	"TXT": {kind: kindLiteral, predicate: "nie:comment"},
}
