// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package genre

import "testing"

func TestResolve_NumericOnly(t *testing.T) {
	got, ok := Resolve("17")
	if !ok || got != "Rock" {
		t.Errorf("got (%q, %v), want (Rock, true)", got, ok)
	}
}

func TestResolve_ParenthesisedPrefix(t *testing.T) {
	got, ok := Resolve("(17)Rock")
	if !ok || got != "Rock" {
		t.Errorf("got (%q, %v), want (Rock, true)", got, ok)
	}
}

func TestResolve_TrailingDigitForm(t *testing.T) {
	got, ok := Resolve("Something9")
	if !ok || got != "Metal" {
		t.Errorf("got (%q, %v), want (Metal, true)", got, ok)
	}
}

func TestResolve_OutOfRangePassesThrough(t *testing.T) {
	got, ok := Resolve("(9999)Whatever")
	if !ok || got != "(9999)Whatever" {
		t.Errorf("got (%q, %v), want unchanged passthrough", got, ok)
	}
}

func TestResolve_PlainNamePassesThrough(t *testing.T) {
	got, ok := Resolve("My Custom Genre")
	if !ok || got != "My Custom Genre" {
		t.Errorf("got (%q, %v), want unchanged passthrough", got, ok)
	}
}

func TestResolve_UnknownIsDropped(t *testing.T) {
	if _, ok := Resolve("Unknown"); ok {
		t.Error("expected Resolve to report drop for \"Unknown\"")
	}
	if _, ok := Resolve("UNKNOWN"); ok {
		t.Error("expected case-insensitive match for \"UNKNOWN\"")
	}
}

func TestResolve_LastIndexIsSynthpop(t *testing.T) {
	got, ok := Resolve("147")
	if !ok || got != "Synthpop" {
		t.Errorf("got (%q, %v), want (Synthpop, true)", got, ok)
	}
}

func TestNamesTableHas148Entries(t *testing.T) {
	if len(Names) != 148 {
		t.Errorf("got %d genre names, want 148", len(Names))
	}
}
