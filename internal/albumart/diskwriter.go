// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package albumart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tracker-project/mp3extract/internal/observability"
)

var mimeExt = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/bmp":     ".bmp",
	"image/unknown": ".bin",
}

// DiskWriter writes captured album art under a base directory, one
// file per request, named by a content hash so identical art captured
// from different files collapses to a single copy on disk.
type DiskWriter struct {
	baseDir  string
	observer *observability.StandardObserver
}

// NewDiskWriter creates a DiskWriter rooted at baseDir. The directory
// is created lazily on the first ProcessArt call that has bytes to
// write.
func NewDiskWriter(baseDir string, observer *observability.StandardObserver) *DiskWriter {
	return &DiskWriter{baseDir: baseDir, observer: observer}
}

// ProcessArt writes req.Bytes to disk under a content-addressed name.
// A request with no bytes (no art found for the file) is a no-op, not
// an error, matching the "invoked once per file either way" contract.
func (w *DiskWriter) ProcessArt(req Request) error {
	if len(req.Bytes) == 0 {
		logDetail(w.observer, "albumart", "no art captured for "+req.SourceFilename+", nothing written")
		return nil
	}

	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return fmt.Errorf("albumart: creating output dir: %w", err)
	}

	sum := sha256.Sum256(req.Bytes)
	name := hex.EncodeToString(sum[:16]) + extFor(req.MIME)
	path := filepath.Join(w.baseDir, name)

	if _, err := os.Stat(path); err == nil {
		logDetail(w.observer, "albumart", "art already present at "+path+", skipping write")
		return nil
	}

	if err := os.WriteFile(path, req.Bytes, 0o644); err != nil {
		return fmt.Errorf("albumart: writing %s: %w", path, err)
	}
	logDetail(w.observer, "albumart", "wrote "+fmt.Sprintf("%d", len(req.Bytes))+" bytes to "+path)
	return nil
}

func extFor(mime string) string {
	if ext, ok := mimeExt[strings.ToLower(mime)]; ok {
		return ext
	}
	return ".bin"
}
