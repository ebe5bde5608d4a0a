// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package albumart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNoopCollaborator_AlwaysSucceeds(t *testing.T) {
	var c Collaborator = NoopCollaborator{}
	if err := c.ProcessArt(Request{Bytes: []byte{1, 2, 3}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := c.ProcessArt(Request{}); err != nil {
		t.Errorf("unexpected error on empty request: %v", err)
	}
}

func TestDiskWriter_WritesContentAddressedFile(t *testing.T) {
	dir := t.TempDir()
	w := NewDiskWriter(dir, nil)

	req := Request{Bytes: []byte{0xDE, 0xAD, 0xBE, 0xEF}, MIME: "image/jpeg", SourceFilename: "song.mp3"}
	if err := w.ProcessArt(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 file written, got %d", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".jpg" {
		t.Errorf("expected .jpg extension, got %q", entries[0].Name())
	}
}

func TestDiskWriter_EmptyBytesIsNoop(t *testing.T) {
	dir := t.TempDir()
	w := NewDiskWriter(dir, nil)

	if err := w.ProcessArt(Request{SourceFilename: "song.mp3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err == nil {
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Error("expected no files written for an empty request")
		}
	}
}

func TestDiskWriter_DuplicateContentWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	w := NewDiskWriter(dir, nil)
	bytesIn := []byte{1, 2, 3, 4}

	if err := w.ProcessArt(Request{Bytes: bytesIn, MIME: "image/png", SourceFilename: "a.mp3"}); err != nil {
		t.Fatal(err)
	}
	if err := w.ProcessArt(Request{Bytes: bytesIn, MIME: "image/png", SourceFilename: "b.mp3"}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected identical content to collapse to 1 file, got %d", len(entries))
	}
}
