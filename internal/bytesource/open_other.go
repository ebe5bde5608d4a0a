// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package bytesource

import "os"

// openNoAtime opens path normally: O_NOATIME is a Linux-only open
// flag, so every other platform pays the atime update.
func openNoAtime(path string) (*os.File, error) {
	return os.Open(path)
}
