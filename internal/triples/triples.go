// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package triples provides the thin emitter shim the ID3v1/ID3v2/MPEG
// decoders push their RDF-style statements through. The actual sink —
// a triple store, a database writer, whatever the host application
// uses — is an external collaborator; this package only knows how to
// mint artist/album/publisher URNs and dedupe them per file.
package triples

import "net/url"

// Sink is the external triple store. Insert records one statement;
// Find looks one up, e.g. to check whether a subject already carries
// a given predicate before emitting a duplicate.
type Sink interface {
	Insert(subject, predicate string, object interface{})
	Find(subject, predicate string) (interface{}, bool)
}

// Emitter wraps a Sink and adds URN minting with per-(kind,value)
// idempotence, so parsing the same artist name twice in one file
// (e.g. TPE1 and TPE2 both set) doesn't emit duplicate type/name
// triples for the minted entity.
type Emitter struct {
	sink Sink
	seen map[string]bool
}

// NewEmitter wraps sink in a fresh Emitter with an empty dedup set.
func NewEmitter(sink Sink) *Emitter {
	return &Emitter{sink: sink, seen: make(map[string]bool)}
}

// Insert forwards a literal statement to the underlying sink.
func (e *Emitter) Insert(subject, predicate string, object interface{}) {
	e.sink.Insert(subject, predicate, object)
}

// MintAndLink mints urn:<kind>:<percent-escaped value>, types it
// rdfType, assigns value to it via namePredicate, and links it from
// fileSubject via linkPredicate. The type/name triples are only
// inserted the first time a given (kind, value) pair is seen by this
// Emitter; the link triple is inserted on every call, so a sink that
// records every statement (such as MapSink) holds one link row per
// call.
func (e *Emitter) MintAndLink(fileSubject, kind, value, linkPredicate, rdfType, namePredicate string) string {
	urn := "urn:" + kind + ":" + url.PathEscape(value)

	key := kind + "\x00" + value
	if !e.seen[key] {
		e.seen[key] = true
		e.Insert(urn, "rdf:type", rdfType)
		e.Insert(urn, namePredicate, value)
	}
	e.Insert(fileSubject, linkPredicate, urn)
	return urn
}
