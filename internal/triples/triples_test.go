// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package triples

import "testing"

func TestEmitter_Insert(t *testing.T) {
	sink := NewMapSink()
	e := NewEmitter(sink)
	e.Insert("file:1", "nie:title", "Some Title")

	got, ok := sink.Find("file:1", "nie:title")
	if !ok || got != "Some Title" {
		t.Errorf("got (%v, %v), want (Some Title, true)", got, ok)
	}
}

func TestEmitter_MintAndLink_MintsURN(t *testing.T) {
	sink := NewMapSink()
	e := NewEmitter(sink)

	urn := e.MintAndLink("file:1", "artist", "Daft Punk", "nmm:performer", "nmm:Artist", "nmm:artistName")
	if urn != "urn:artist:Daft%20Punk" {
		t.Errorf("got urn %q", urn)
	}

	typ, ok := sink.Find(urn, "rdf:type")
	if !ok || typ != "nmm:Artist" {
		t.Errorf("expected minted entity typed nmm:Artist, got (%v, %v)", typ, ok)
	}
	name, ok := sink.Find(urn, "nmm:artistName")
	if !ok || name != "Daft Punk" {
		t.Errorf("expected name triple, got (%v, %v)", name, ok)
	}
	link, ok := sink.Find("file:1", "nmm:performer")
	if !ok || link != urn {
		t.Errorf("expected file linked to urn, got (%v, %v)", link, ok)
	}
}

func TestEmitter_MintAndLink_IdempotentForSameValue(t *testing.T) {
	sink := NewMapSink()
	e := NewEmitter(sink)

	e.MintAndLink("file:1", "artist", "Daft Punk", "nmm:performer", "nmm:Artist", "nmm:artistName")
	e.MintAndLink("file:1", "artist", "Daft Punk", "nmm:performer", "nmm:Artist", "nmm:artistName")

	count := 0
	for _, row := range sink.All() {
		if row.Predicate == "nmm:artistName" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one name triple after duplicate calls, got %d", count)
	}
}

func TestEmitter_MintAndLink_DistinctValuesMintDistinctURNs(t *testing.T) {
	sink := NewMapSink()
	e := NewEmitter(sink)

	u1 := e.MintAndLink("file:1", "artist", "Daft Punk", "nmm:performer", "nmm:Artist", "nmm:artistName")
	u2 := e.MintAndLink("file:1", "artist", "Justice", "nmm:performer", "nmm:Artist", "nmm:artistName")
	if u1 == u2 {
		t.Errorf("expected distinct URNs, got %q for both", u1)
	}
}
