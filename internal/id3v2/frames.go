// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package id3v2

import (
	"strconv"
	"strings"

	"github.com/tracker-project/mp3extract/internal/genre"
	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/observability"
	"github.com/tracker-project/mp3extract/internal/textdecode"
	"github.com/tracker-project/mp3extract/internal/triples"
)

// walkFramesV2x walks a v2.3/v2.4 frame region: id(4) + size(4) +
// flags(2) + payload. Stops on fewer than 10 remaining bytes, a
// zero-length frame, or a declared size exceeding what remains.
func walkFramesV2x(region []byte, v version, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) {
	pos := 0
	for {
		remaining := len(region) - pos
		if remaining < 10 {
			return
		}
		id := string(region[pos : pos+4])
		var size uint32
		if v == v24 {
			size = syncsafe28(region[pos+4], region[pos+5], region[pos+6], region[pos+7])
		} else {
			size = beU32(region[pos+4], region[pos+5], region[pos+6], region[pos+7])
		}
		if size == 0 {
			return
		}
		if int(size) > remaining-10 {
			return
		}
		flagsHi, flagsLo := region[pos+8], region[pos+9] // flagsHi (status flags) carries no bits this decoder acts on
		frameStart := pos + 10
		payload := region[frameStart : frameStart+int(size)]
		pos = frameStart + int(size)

		if flagsLo&0x80 != 0 || flagsLo&0x40 != 0 {
			logDetail(obs, "id3v2", "frame "+id+" skipped: compression or encryption flag set")
			continue
		}

		if flagsLo&0x20 != 0 {
			if len(payload) < 1 {
				continue
			}
			payload = payload[1:] // grouping identifier byte
		}

		frame := model.Frame{ID: id, Size: size, Flags: uint16(flagsHi)<<8 | uint16(flagsLo), HasFlag: true, Data: payload}
		dispatchFrame(frame, v == v23, fileSubject, fd, emitter, obs)
	}
}

// walkFramesV22 walks a v2.2 frame region: id(3) + size(3), no flags.
func walkFramesV22(region []byte, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) {
	pos := 0
	for {
		remaining := len(region) - pos
		if remaining < 6 {
			return
		}
		id := string(region[pos : pos+3])
		size := uint32(region[pos+3])<<16 | uint32(region[pos+4])<<8 | uint32(region[pos+5])
		if size == 0 {
			return
		}
		if int(size) > remaining-6 {
			return
		}
		frameStart := pos + 6
		payload := region[frameStart : frameStart+int(size)]
		pos = frameStart + int(size)

		frame := model.Frame{ID: id, Size: size, Data: payload}
		dispatchFrame(frame, false, fileSubject, fd, emitter, obs)
	}
}

func dispatchFrame(frame model.Frame, isV23 bool, fileSubject string, fd *model.FileData, emitter *triples.Emitter, obs *observability.StandardObserver) {
	id, payload := frame.ID, frame.Data

	if id == "APIC" || id == "PIC" {
		parseAPIC(id, payload, fd)
		return
	}

	rule, ok := predicateTable[id]
	if !ok || len(payload) < 1 {
		return
	}

	if rule.kind == kindComment {
		text := parseCOMM(payload, isV23)
		if text != "" {
			emitter.Insert(fileSubject, rule.predicate, text)
		}
		return
	}

	encodingByte := payload[0]
	text := textdecode.Decode(encodingByte, payload[1:])
	if text == "" {
		return
	}

	switch rule.kind {
	case kindLiteral:
		emitter.Insert(fileSubject, rule.predicate, text)
	case kindMinted:
		emitter.MintAndLink(fileSubject, rule.urnKind, text, rule.predicate, rule.rdfType, rule.namePredicate)
	case kindGenre:
		if name, keep := genre.Resolve(text); keep && name != "" {
			emitter.Insert(fileSubject, rule.predicate, name)
		}
	case kindTrack:
		n := text
		if idx := strings.IndexByte(text, '/'); idx >= 0 {
			n = text[:idx]
		}
		n = strings.TrimSpace(n)
		if iv, err := strconv.Atoi(n); err == nil {
			emitter.Insert(fileSubject, rule.predicate, iv)
		} else if n != "" {
			emitter.Insert(fileSubject, rule.predicate, n)
		}
	case kindDuration:
		if ms, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			secs := ms / 1000
			fd.DurationSecs = &secs
			emitter.Insert(fileSubject, rule.predicate, secs)
		}
	}
}

// parseCOMM decodes a COMM/COM payload: encoding(1) + language(3) +
// NUL-terminated short description + full text. Only the full text
// is returned. For v2.3 frames with encoding byte 0x01, this
// intentionally re-reads from the language offset (payload[1:])
// instead of the correctly-computed text offset, reproducing the
// reference decoder's divergence between its v2.3 and v2.4 branches;
// v2.4 and v2.2 frames always read from the correct offset.
func parseCOMM(payload []byte, isV23 bool) string {
	if len(payload) < 5 {
		return ""
	}
	encodingByte := payload[0]
	descRegion := payload[4:]

	nulIdx := indexTerminator(descRegion, encodingByte)
	if nulIdx < 0 {
		return ""
	}
	textOffset := 4 + nulIdx + terminatorWidth(encodingByte)
	if textOffset > len(payload) {
		return ""
	}
	text := payload[textOffset:]

	if isV23 && encodingByte == 0x01 {
		start := 1
		length := len(text)
		end := start + length
		if end > len(payload) {
			end = len(payload)
		}
		if start > end {
			start = end
		}
		text = payload[start:end]
	}

	return textdecode.Decode(encodingByte, text)
}

// parseAPIC decodes an APIC (v2.3/v2.4) or PIC (v2.2) payload and
// captures the image bytes into fd.AlbumArt under the front-cover-
// wins policy: pic_type 3 always overwrites, pic_type 0 only fills an
// empty slot.
func parseAPIC(id string, payload []byte, fd *model.FileData) {
	if id == "APIC" {
		if len(payload) < 2 {
			return
		}
		encodingByte := payload[0]
		rest := payload[1:]
		mimeEnd := indexByte(rest, 0x00)
		if mimeEnd < 0 || mimeEnd+1 >= len(rest) {
			return
		}
		mime := string(rest[:mimeEnd])
		rest2 := rest[mimeEnd+1:]
		if len(rest2) < 1 {
			return
		}
		picType := rest2[0]
		descRegion := rest2[1:]
		descEnd := indexTerminator(descRegion, encodingByte)
		if descEnd < 0 {
			return
		}
		imgStart := descEnd + terminatorWidth(encodingByte)
		if imgStart > len(descRegion) {
			return
		}
		captureAlbumArt(fd, mime, picType, descRegion[imgStart:])
		return
	}

	// PIC (v2.2): encoding(1) + format(3, not NUL-terminated) + pic_type(1) + desc + image.
	if len(payload) < 5 {
		return
	}
	encodingByte := payload[0]
	format := string(payload[1:4])
	picType := payload[4]
	descRegion := payload[5:]
	descEnd := indexTerminator(descRegion, encodingByte)
	if descEnd < 0 {
		return
	}
	imgStart := descEnd + terminatorWidth(encodingByte)
	if imgStart > len(descRegion) {
		return
	}
	captureAlbumArt(fd, formatToMIME(format), picType, descRegion[imgStart:])
}

func captureAlbumArt(fd *model.FileData, mime string, picType byte, imageBytes []byte) {
	captured := make([]byte, len(imageBytes))
	copy(captured, imageBytes)

	if picType == 3 {
		fd.AlbumArt = &model.AlbumArt{MIME: mime, Bytes: captured}
	} else if picType == 0 && fd.AlbumArt == nil {
		fd.AlbumArt = &model.AlbumArt{MIME: mime, Bytes: captured}
	}
}

func formatToMIME(format string) string {
	switch strings.ToUpper(strings.TrimRight(format, "\x00")) {
	case "JPG", "JPEG":
		return "image/jpeg"
	case "PNG":
		return "image/png"
	case "GIF":
		return "image/gif"
	case "BMP":
		return "image/bmp"
	default:
		return "image/unknown"
	}
}

// terminatorWidth returns the NUL-terminator width for a text
// encoding: 2 bytes for the UTF-16 variants, 1 otherwise.
func terminatorWidth(encodingByte byte) int {
	if encodingByte == textdecode.EncodingUTF16BOM || encodingByte == textdecode.EncodingUTF16BE {
		return 2
	}
	return 1
}

// indexTerminator finds the offset of a NUL terminator appropriate to
// encodingByte: a single 0x00 byte for single-byte/UTF-8 encodings,
// or the first 0x00 0x00 pair aligned on an even offset for UTF-16.
func indexTerminator(data []byte, encodingByte byte) int {
	width := terminatorWidth(encodingByte)
	if width == 1 {
		return indexByte(data, 0x00)
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0x00 && data[i+1] == 0x00 {
			return i
		}
	}
	return -1
}

func indexByte(data []byte, b byte) int {
	for i, v := range data {
		if v == b {
			return i
		}
	}
	return -1
}
