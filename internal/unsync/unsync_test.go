// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package unsync

import (
	"bytes"
	"testing"
)

func TestReverse_CollapsesStuffedPairs(t *testing.T) {
	data := []byte{0x41, 0xFF, 0x00, 0x42, 0xFF, 0x00, 0xFF, 0x00}
	got := Reverse(data)
	want := []byte{0x41, 0xFF, 0x42, 0xFF, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReverse_IdempotentWithoutStuffing(t *testing.T) {
	data := []byte{0x41, 0x42, 0xFF, 0x43}
	got := Reverse(data)
	if !bytes.Equal(got, data) {
		t.Errorf("got %v, want unchanged %v", got, data)
	}
	got2 := Reverse(got)
	if !bytes.Equal(got2, got) {
		t.Errorf("Reverse not idempotent: %v vs %v", got2, got)
	}
}

func TestReverse_TrailingFF(t *testing.T) {
	data := []byte{0x41, 0xFF}
	got := Reverse(data)
	if !bytes.Equal(got, data) {
		t.Errorf("got %v, want %v", got, data)
	}
}

func TestRoundTrip_ArbitraryByteStrings(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xFF, 0x00},
		{0xFF, 0xFF, 0x00, 0x00},
		{0x41, 0xFF, 0xE0, 0x42},
		bytes.Repeat([]byte{0xFF}, 10),
		[]byte("Tracker Project MP3 Extractor \xFF\x00 payload"),
	}
	for _, c := range cases {
		stuffed := Apply(c)
		got := Reverse(stuffed)
		if !bytes.Equal(got, c) {
			t.Errorf("round trip failed for %v: got %v after stuffing %v", c, got, stuffed)
		}
	}
}
