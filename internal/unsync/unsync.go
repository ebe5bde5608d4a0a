// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package unsync reverses ID3's unsynchronisation byte-stuffing, which
// prevents false MPEG sync words from appearing inside tag bytes.
package unsync

// Reverse replaces every occurrence of the two-byte sequence 0xFF 0x00
// with the single byte 0xFF. It is idempotent on input that contains
// no 0xFF 0x00 pair.
func Reverse(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i++
		}
	}
	return out
}

// Apply is the inverse of Reverse: it unconditionally stuffs a 0x00
// after every 0xFF byte, including one already followed by 0x00 in
// the source data (ID3v2.4 §6.1 requires this so that a genuine FF 00
// pair in the original data isn't later mistaken for a stuffing
// marker). It exists only to build round-trip test fixtures; the
// decoder itself never stuffs bytes.
func Apply(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		out = append(out, b)
		if b == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}
