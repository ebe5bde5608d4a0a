// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bytesource

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.mp3")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestOpen_EmptyFileFails(t *testing.T) {
	path := writeTempFile(t, nil)
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestOpen_MissingFileFails(t *testing.T) {
	if _, err := Open("/nonexistent/path/does-not-exist.mp3"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpen_ShortFileNoTrailer(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 64)
	path := writeTempFile(t, data)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(src.Head(), data) {
		t.Error("expected head to equal full file for short file")
	}
	if _, ok := src.Trailer128(); ok {
		t.Error("expected no trailer for file shorter than 128 bytes")
	}
}

func TestOpen_ExactTrailerBoundary(t *testing.T) {
	data := make([]byte, 128)
	copy(data, "TAG")
	path := writeTempFile(t, data)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trailer, ok := src.Trailer128()
	if !ok {
		t.Fatal("expected trailer present for exactly 128-byte file")
	}
	if !bytes.Equal(trailer, data) {
		t.Error("expected trailer to equal entire 128-byte file")
	}
}

func TestOpen_HeadCappedAt5MiB(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, MaxHeadBytes+1024)
	path := writeTempFile(t, data)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.Head()) != MaxHeadBytes {
		t.Errorf("expected head length %d, got %d", MaxHeadBytes, len(src.Head()))
	}
	if src.Size() != int64(len(data)) {
		t.Errorf("expected size %d, got %d", len(data), src.Size())
	}
	trailer, ok := src.Trailer128()
	if !ok {
		t.Fatal("expected trailer present for large file")
	}
	if !bytes.Equal(trailer, data[len(data)-128:]) {
		t.Error("expected trailer to be the file's final 128 bytes")
	}
}
