// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracker-project/mp3extract/internal/config"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

func TestCollectFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "song.mp3")

	cfg := &config.Config{}
	files, err := collectFiles([]string{path}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("got %v, want [%s]", files, path)
	}
}

func TestCollectFiles_DirectoryNonRecursiveSkipsSubdir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.mp3")
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "deep.mp3")

	cfg := &config.Config{}
	files, err := collectFiles([]string{dir}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (non-recursive walk must not descend): %v", len(files), files)
	}
}

func TestCollectFiles_DirectoryRecursiveDescends(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.mp3")
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "deep.mp3")

	cfg := &config.Config{}
	cfg.Defaults.Recursive = true
	files, err := collectFiles([]string{dir}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2: %v", len(files), files)
	}
}

func TestCollectFiles_ExcludePatternFiltersMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.mp3")
	writeFile(t, dir, "skip.tmp")

	cfg := &config.Config{}
	cfg.Defaults.ExcludePatterns = []string{"*.tmp"}
	files, err := collectFiles([]string{dir}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.mp3" {
		t.Errorf("got %v, want only keep.mp3 excluded by *.tmp pattern", files)
	}
}

func TestCollectFiles_NonexistentPathErrors(t *testing.T) {
	cfg := &config.Config{}
	if _, err := collectFiles([]string{"/nonexistent/path/xyz"}, cfg); err == nil {
		t.Error("expected an error for a nonexistent path")
	}
}

func TestIsExcluded(t *testing.T) {
	cases := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"/a/b/song.mp3", nil, false},
		{"/a/b/song.mp3", []string{"*.mp3"}, true},
		{"/a/b/song.wav", []string{"*.mp3"}, false},
		{"/a/b/._song.mp3", []string{"._*"}, true},
	}
	for _, c := range cases {
		if got := isExcluded(c.path, c.patterns); got != c.want {
			t.Errorf("isExcluded(%q, %v) = %v, want %v", c.path, c.patterns, got, c.want)
		}
	}
}
