// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package mp3meta wires the byte source, ID3v1 reader, ID3v2 parser,
// and MPEG frame scanner together into the single per-file extraction
// pipeline: Extract reads one file and pushes every triple it can
// discover through a triples.Sink, then hands any captured album art
// to an albumart.Collaborator exactly once.
package mp3meta

import (
	"strconv"
	"strings"

	"github.com/tracker-project/mp3extract/internal/albumart"
	"github.com/tracker-project/mp3extract/internal/bytesource"
	"github.com/tracker-project/mp3extract/internal/config"
	"github.com/tracker-project/mp3extract/internal/extracterr"
	"github.com/tracker-project/mp3extract/internal/id3v1"
	"github.com/tracker-project/mp3extract/internal/id3v2"
	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/mpegscan"
	"github.com/tracker-project/mp3extract/internal/observability"
	"github.com/tracker-project/mp3extract/internal/triples"
)

// Extract opens path, decodes its ID3v1 trailer, stacked ID3v2 tags,
// and trailing MPEG stream, and pushes the resulting triples through
// sink. An unreadable source emits nothing and returns nil, per
// spec.md §7.1 — the caller is expected to log the skip itself if it
// cares. collab may be nil, in which case captured art is discarded.
func Extract(path string, cfg *config.Config, sink triples.Sink, collab albumart.Collaborator, obs *observability.StandardObserver) error {
	if collab == nil {
		collab = albumart.NoopCollaborator{}
	}

	var doneTiming func(success bool, metadata map[string]interface{})
	if obs != nil {
		doneTiming = obs.StartTiming("mp3meta", "extract", path)
	}

	src, err := bytesource.Open(path)
	if err != nil {
		wrapped := extracterr.Wrap(extracterr.KindUnreadable, "mp3meta", "emitting nothing for "+path, err)
		logDetail(obs, "mp3meta", wrapped.Error())
		if doneTiming != nil {
			doneTiming(false, map[string]interface{}{"error": wrapped.Error()})
		}
		return nil
	}

	fileSubject := fileURI(path)
	emitter := triples.NewEmitter(sink)
	emitter.Insert(fileSubject, "rdf:type", "nmm:MusicPiece")

	fd := &model.FileData{TotalSize: src.Size()}
	head := src.Head()

	endID3v1 := startStep(obs, "mp3meta", "id3v1", path)
	trailerHadTag := false
	if trailer, ok := src.Trailer128(); ok {
		if tags, ok := id3v1.Parse(trailer); ok {
			emitID3v1(fileSubject, tags, emitter)
			trailerHadTag = true
		} else {
			logDetail(obs, "mp3meta", "trailer present but magic did not match, no ID3v1 tag")
		}
	}
	endID3v1(true, "tag found: "+strconv.FormatBool(trailerHadTag))

	endID3v2 := startStep(obs, "mp3meta", "id3v2", path)
	id3v2.ParseStacked(head, fileSubject, fd, emitter, obs)
	endID3v2(true, "tag size "+strconv.Itoa(fd.ID3v2Size))

	budget := mpegscan.DefaultBudget()
	if cfg != nil {
		budget.MaxScanDeep = cfg.Extraction.MaxScanDeep
		budget.MaxFramesScan = cfg.Extraction.MaxFramesScan
		budget.VBRThreshold = cfg.Extraction.VBRThreshold
	}

	endScan := startStep(obs, "mp3meta", "mpegscan", path)
	framesScanned := 0
	if res, ok := mpegscan.ScanWithBudget(head, fd.ID3v2Size, fd.TotalSize, budget, obs); ok {
		emitStreamTriples(fileSubject, res, fd, emitter, cfg)
		framesScanned = res.FramesScanned
		logMetric(obs, "mpegscan", "frames_scanned", framesScanned)
		logMetric(obs, "mpegscan", "bitrate_kbps", res.BitrateKbps)
		endScan(true, "frames="+strconv.Itoa(framesScanned))
	} else {
		logDetail(obs, "mp3meta", "fewer than 2 confirmed MPEG frames, stream triples omitted")
		endScan(false, "frames=0")
	}

	deliverAlbumArt(path, fileSubject, fd, sink, collab)

	if doneTiming != nil {
		doneTiming(true, map[string]interface{}{"frames_scanned": framesScanned, "total_size": fd.TotalSize})
	}
	return nil
}

// startStep wraps obs.DebugObserver.StartStep so call sites don't need
// to nil-check the observer or its debug sub-observer themselves; the
// returned end function is always safe to call.
func startStep(obs *observability.StandardObserver, component, step, filePath string) func(success bool, details string) {
	if obs == nil || obs.DebugObserver == nil {
		return func(bool, string) {}
	}
	return obs.DebugObserver.StartStep(component, step, filePath)
}

func logMetric(obs *observability.StandardObserver, component, metric string, value interface{}) {
	if obs != nil && obs.DebugObserver != nil {
		obs.DebugObserver.LogMetric(component, metric, value)
	}
}

func emitID3v1(fileSubject string, tags *model.TagSet, emitter *triples.Emitter) {
	if tags.Title != "" {
		emitter.Insert(fileSubject, "nie:title", tags.Title)
	}
	if tags.Artist != "" {
		emitter.MintAndLink(fileSubject, "artist", tags.Artist, "nmm:performer", "nmm:Artist", "nmm:artistName")
	}
	if tags.Album != "" {
		emitter.MintAndLink(fileSubject, "album", tags.Album, "nmm:musicAlbum", "nmm:MusicAlbum", "nie:title")
	}
	if tags.Year != "" {
		emitter.Insert(fileSubject, "nie:contentCreated", tags.Year)
	}
	if tags.Comment != "" {
		emitter.Insert(fileSubject, "nie:comment", tags.Comment)
	}
	if tags.TrackNo != "" {
		if n, err := strconv.Atoi(tags.TrackNo); err == nil {
			emitter.Insert(fileSubject, "nmm:trackNumber", n)
		}
	}
	if tags.Genre != "" {
		emitter.Insert(fileSubject, "nfo:genre", tags.Genre)
	}
}

func emitStreamTriples(fileSubject string, res *mpegscan.Result, fd *model.FileData, emitter *triples.Emitter, cfg *config.Config) {
	emitter.Insert(fileSubject, "nfo:codec", "MPEG")
	emitter.Insert(fileSubject, "nfo:channels", res.Channels)
	emitter.Insert(fileSubject, "nfo:sampleRate", res.SampleRateHz)
	emitter.Insert(fileSubject, "nfo:averageBitrate", res.BitrateKbps*1000)

	followTLEN := cfg == nil || cfg.Extraction.FollowTLEN
	if fd.DurationSecs != nil && followTLEN {
		// TLEN already emitted nmm:length while walking ID3v2 frames;
		// the scanner's own estimate must not overwrite it.
		return
	}
	emitter.Insert(fileSubject, "nmm:length", res.LengthSecs)
}

func deliverAlbumArt(path, fileSubject string, fd *model.FileData, sink triples.Sink, collab albumart.Collaborator) {
	req := albumart.Request{SourceFilename: path}
	if fd.AlbumArt != nil {
		req.Bytes = fd.AlbumArt.Bytes
		req.MIME = fd.AlbumArt.MIME
	}
	if title, ok := sink.Find(fileSubject, "nie:title"); ok {
		if s, ok := title.(string); ok {
			req.TrackHint = s
		}
	}
	if artistURN, ok := sink.Find(fileSubject, "nmm:performer"); ok {
		if urn, ok := artistURN.(string); ok {
			if name, ok := sink.Find(urn, "nmm:artistName"); ok {
				if s, ok := name.(string); ok {
					req.ArtistName = s
				}
			}
		}
	}
	if albumURN, ok := sink.Find(fileSubject, "nmm:musicAlbum"); ok {
		if urn, ok := albumURN.(string); ok {
			if name, ok := sink.Find(urn, "nie:title"); ok {
				if s, ok := name.(string); ok {
					req.AlbumTitle = s
				}
			}
		}
	}
	collab.ProcessArt(req)
}

func fileURI(path string) string {
	if strings.HasPrefix(path, "file://") {
		return path
	}
	return "file://" + path
}

func logDetail(obs *observability.StandardObserver, component, detail string) {
	if obs != nil && obs.DebugObserver != nil {
		obs.DebugObserver.LogDetail(component, detail)
	}
}
