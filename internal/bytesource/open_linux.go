// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package bytesource

import (
	"os"

	"golang.org/x/sys/unix"
)

// openNoAtime opens path without updating its access time, so that
// indexing a large media library doesn't dirty every file's atime. It
// falls back to a plain open when the filesystem or permission set
// doesn't allow O_NOATIME (EPERM is common on filesystems where the
// caller doesn't own the file).
func openNoAtime(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_NOATIME, 0)
	if err == nil {
		return f, nil
	}
	return os.Open(path)
}
