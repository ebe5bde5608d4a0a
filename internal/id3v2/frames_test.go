// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package id3v2

import (
	"bytes"
	"testing"

	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/triples"
)

func buildAPICPayload(mime string, picType byte, desc string, image []byte) []byte {
	payload := []byte{0x00} // encoding
	payload = append(payload, []byte(mime)...)
	payload = append(payload, 0x00)
	payload = append(payload, picType)
	payload = append(payload, []byte(desc)...)
	payload = append(payload, 0x00)
	payload = append(payload, image...)
	return payload
}

func TestParseStacked_APICFrontCoverCaptured(t *testing.T) {
	image := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	frames := buildV24Frame("APIC", buildAPICPayload("image/jpeg", 3, "cover", image))
	head := wrapV24Tag(0x00, frames)

	fd := &model.FileData{}
	sink := triples.NewMapSink()
	emitter := triples.NewEmitter(sink)
	ParseStacked(head, "file:1", fd, emitter, nil)

	if fd.AlbumArt == nil {
		t.Fatal("expected album art to be captured")
	}
	if fd.AlbumArt.MIME != "image/jpeg" {
		t.Errorf("got mime %q", fd.AlbumArt.MIME)
	}
	if !bytes.Equal(fd.AlbumArt.Bytes, image) {
		t.Errorf("got image bytes %v, want %v", fd.AlbumArt.Bytes, image)
	}
}

func TestParseStacked_APICFrontCoverOverwritesOther(t *testing.T) {
	other := []byte{0x01}
	cover := []byte{0x02, 0x03}
	frames := append(
		buildV24Frame("APIC", buildAPICPayload("image/png", 0, "other", other)),
		buildV24Frame("APIC", buildAPICPayload("image/jpeg", 3, "cover", cover))...,
	)
	head := wrapV24Tag(0x00, frames)

	fd := &model.FileData{}
	sink := triples.NewMapSink()
	emitter := triples.NewEmitter(sink)
	ParseStacked(head, "file:1", fd, emitter, nil)

	if !bytes.Equal(fd.AlbumArt.Bytes, cover) {
		t.Errorf("expected front cover to win, got %v", fd.AlbumArt.Bytes)
	}
}

func TestParseStacked_APICOtherDoesNotOverwriteCover(t *testing.T) {
	cover := []byte{0x02, 0x03}
	other := []byte{0x01}
	frames := append(
		buildV24Frame("APIC", buildAPICPayload("image/jpeg", 3, "cover", cover)),
		buildV24Frame("APIC", buildAPICPayload("image/png", 0, "other", other))...,
	)
	head := wrapV24Tag(0x00, frames)

	fd := &model.FileData{}
	sink := triples.NewMapSink()
	emitter := triples.NewEmitter(sink)
	ParseStacked(head, "file:1", fd, emitter, nil)

	if !bytes.Equal(fd.AlbumArt.Bytes, cover) {
		t.Errorf("expected first-captured front cover to remain, got %v", fd.AlbumArt.Bytes)
	}
}

func TestParseStacked_PICv22ThreeByteFormat(t *testing.T) {
	image := []byte{0x9, 0x8, 0x7}
	payload := []byte{0x00, 'J', 'P', 'G', 0x03}
	payload = append(payload, 0x00) // empty description
	payload = append(payload, image...)
	frames := buildV22Frame("PIC", payload)
	head := wrapV22Tag(0x00, frames)

	fd := &model.FileData{}
	sink := triples.NewMapSink()
	emitter := triples.NewEmitter(sink)
	ParseStacked(head, "file:1", fd, emitter, nil)

	if fd.AlbumArt == nil || fd.AlbumArt.MIME != "image/jpeg" {
		t.Fatalf("expected captured jpeg album art, got %+v", fd.AlbumArt)
	}
	if !bytes.Equal(fd.AlbumArt.Bytes, image) {
		t.Errorf("got %v, want %v", fd.AlbumArt.Bytes, image)
	}
}

func TestParseCOMM_V23Encoding01ReadsFromLanguageOffset(t *testing.T) {
	// UTF-16 (with BOM) text "Hi", correctly placed after description.
	utf16Text := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00, 0x00, 0x00}
	payload := []byte{0x01, 'e', 'n', 'g', 0x00, 0x00} // encoding 0x01, lang, empty desc (UTF-16 NUL pair)
	payload = append(payload, utf16Text...)

	gotV23 := parseCOMM(payload, true)
	gotV24 := parseCOMM(payload, false)

	if gotV24 != "Hi" {
		t.Errorf("expected v2.4 branch to decode correctly, got %q", gotV24)
	}
	if gotV23 == "Hi" {
		t.Errorf("expected v2.3 encoding-0x01 quirk to diverge from the correct decode, got %q", gotV23)
	}
}

func TestFormatToMIME(t *testing.T) {
	cases := map[string]string{
		"JPG": "image/jpeg",
		"PNG": "image/png",
		"GIF": "image/gif",
		"BMP": "image/bmp",
		"XYZ": "image/unknown",
	}
	for in, want := range cases {
		if got := formatToMIME(in); got != want {
			t.Errorf("formatToMIME(%q) = %q, want %q", in, got, want)
		}
	}
}
