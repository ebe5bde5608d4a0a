// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package triples

// MapSink is an in-memory Sink, ordered by insertion, used by the CLI
// to collect a single file's triples before rendering them and by
// tests that need to assert on emitted statements. Production hosts
// are expected to supply their own Sink backed by a real triple
// store; MapSink is a standalone convenience, not a reference
// implementation of one.
type MapSink struct {
	rows  []Triple
	index map[string]interface{}
}

// Triple is one (subject, predicate, object) row as recorded by
// MapSink.
type Triple struct {
	Subject   string
	Predicate string
	Object    interface{}
}

// NewMapSink returns an empty MapSink.
func NewMapSink() *MapSink {
	return &MapSink{index: make(map[string]interface{})}
}

// Insert appends the statement and indexes it for Find.
func (m *MapSink) Insert(subject, predicate string, object interface{}) {
	m.rows = append(m.rows, Triple{Subject: subject, Predicate: predicate, Object: object})
	m.index[subject+"\x00"+predicate] = object
}

// Find returns the most recently inserted object for (subject,
// predicate), if any.
func (m *MapSink) Find(subject, predicate string) (interface{}, bool) {
	v, ok := m.index[subject+"\x00"+predicate]
	return v, ok
}

// All returns every row in insertion order.
func (m *MapSink) All() []Triple {
	return m.rows
}
