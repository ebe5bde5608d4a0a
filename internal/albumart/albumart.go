// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package albumart defines the external collaborator that receives an
// embedded cover-art payload after a file's ID3v2 tags have been
// parsed. spec.md §6 treats thumbnailing/post-processing as out of
// scope for the extractor itself; this package only owns the handoff.
package albumart

import "github.com/tracker-project/mp3extract/internal/observability"

// Request is the full context the collaborator needs to place one
// piece of album art: the raw bytes (empty when no art was found,
// per spec.md §6 — the collaborator is invoked once per file either
// way), its MIME type, and enough of the parsed tag set to name the
// output.
type Request struct {
	Bytes          []byte
	MIME           string
	ArtistName     string
	AlbumTitle     string
	TrackHint      string
	SourceFilename string
}

// Collaborator receives one Request per processed file. Implementations
// decide whether and where to persist the bytes; this package makes no
// assumption about storage.
type Collaborator interface {
	ProcessArt(req Request) error
}

// NoopCollaborator discards every request. It is the default when no
// output directory is configured.
type NoopCollaborator struct{}

func (NoopCollaborator) ProcessArt(Request) error { return nil }

func logDetail(obs *observability.StandardObserver, component, detail string) {
	if obs != nil && obs.DebugObserver != nil {
		obs.DebugObserver.LogDetail(component, detail)
	}
}
