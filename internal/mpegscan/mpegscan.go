// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package mpegscan locates the first valid MPEG-1/2/2.5 Layer I/II/III
// audio frame after a declared start offset and walks subsequent
// frames to distinguish constant from variable bitrate and estimate
// stream duration, without decoding any audio samples.
package mpegscan

import (
	"github.com/tracker-project/mp3extract/internal/extracterr"
	"github.com/tracker-project/mp3extract/internal/model"
	"github.com/tracker-project/mp3extract/internal/observability"
)

// Default budget constants (spec.md §4.7).
const (
	MaxScanDeep   = 16768
	MaxFramesScan = 512
	VBRThreshold  = 16
)

// Budget bounds one scan's work. DefaultBudget matches spec.md §4.7
// exactly; callers wiring internal/config's extraction settings build
// their own Budget from the loaded values instead.
type Budget struct {
	MaxScanDeep   int
	MaxFramesScan int
	VBRThreshold  int
}

// DefaultBudget returns the spec-mandated scan limits.
func DefaultBudget() Budget {
	return Budget{MaxScanDeep: MaxScanDeep, MaxFramesScan: MaxFramesScan, VBRThreshold: VBRThreshold}
}

// Result is the accumulated stream descriptor from walking confirmed
// frames. LengthSecs is this package's own estimate; callers that
// already have a TLEN-derived duration override must not replace it
// with LengthSecs (spec.md §4.7 Duration rule).
type Result struct {
	Version       string // "1", "2", or "2.5" of the first confirmed frame
	Layer         int
	SampleRateHz  int
	BitrateKbps   int // average across confirmed frames
	Channels      int
	VBR           bool
	FramesScanned int
	LengthSecs    int
}

// Scan searches up to MaxScanDeep bytes from startOffset for a valid
// frame sync, then walks up to MaxFramesScan consecutive frames, using
// the spec-mandated default budget. totalSize is the real file size
// (bytesource.Source.Size, not len(data) — data may be head-capped),
// used for the CBR/long-scan duration estimate. ok is false if fewer
// than 2 frames were confirmed, per the invariant that no stream-level
// triples are emitted in that case.
func Scan(data []byte, startOffset int, totalSize int64, obs *observability.StandardObserver) (*Result, bool) {
	return ScanWithBudget(data, startOffset, totalSize, DefaultBudget(), obs)
}

// ScanWithBudget is Scan with caller-supplied limits, so a deployment
// can tighten or loosen the scan depth/frame-count/VBR-threshold via
// internal/config without touching this package's constants.
func ScanWithBudget(data []byte, startOffset int, totalSize int64, budget Budget, obs *observability.StandardObserver) (*Result, bool) {
	first, firstPos, found := locateFirstFrame(data, startOffset, budget.MaxScanDeep)
	if !found {
		logDetail(obs, "mpegscan", "no valid frame sync found within scan depth")
		return nil, false
	}

	res := &Result{
		Version:      first.Version,
		Layer:        first.Layer,
		SampleRateHz: first.SampleRateHz,
		Channels:     first.Channels,
	}

	pos := firstPos
	totalBitrate := 0
	frames := 0
	vbr := false

	for frames < budget.MaxFramesScan {
		desc, size, ok := decodeAndSizeAt(data, pos)
		if !ok {
			break
		}
		frames++
		totalBitrate += desc.BitrateKbps
		avg := totalBitrate / frames
		if desc.BitrateKbps != avg {
			vbr = true
		}

		next := pos + size
		if next <= pos || next >= len(data) {
			pos = next
			break
		}
		if !frames2ByteSync(data, next) {
			pos = next
			break
		}
		pos = next

		if !vbr && frames > budget.VBRThreshold {
			break
		}
	}

	if frames < 2 {
		logDetail(obs, "mpegscan", extracterr.New(extracterr.KindNoStream, "mpegscan", "fewer than 2 confirmed frames, no stream triples").Error())
		return nil, false
	}

	res.FramesScanned = frames
	res.VBR = vbr
	res.BitrateKbps = totalBitrate / frames
	res.LengthSecs = estimateLength(res, totalSize, startOffset, budget.VBRThreshold)

	return res, true
}

func frames2ByteSync(data []byte, pos int) bool {
	if pos+1 >= len(data) {
		return false
	}
	return data[pos] == 0xFF && data[pos+1]&0xE0 == 0xE0
}

// locateFirstFrame scans forward from startOffset, byte by byte, for
// the first position whose 4-byte window decodes to a valid header.
func locateFirstFrame(data []byte, startOffset, maxScanDeep int) (model.MPEGFrameDesc, int, bool) {
	limit := startOffset + maxScanDeep
	if limit > len(data) {
		limit = len(data)
	}
	for pos := startOffset; pos+4 <= limit; pos++ {
		if data[pos] != 0xFF || data[pos+1]&0xE0 != 0xE0 {
			continue
		}
		if desc, _, ok := decodeAndSizeAt(data, pos); ok {
			return desc, pos, true
		}
	}
	return model.MPEGFrameDesc{}, 0, false
}

// estimateLength uses totalSize, the real file size, rather than
// len(data) — data may be truncated to bytesource's head-read cap, and
// spec.md §4.7's length formula is defined over the whole file.
func estimateLength(res *Result, totalSize int64, startOffset, vbrThreshold int) int {
	if res.VBR || res.FramesScanned > vbrThreshold {
		avgKbps := res.BitrateKbps
		if avgKbps <= 0 {
			return 0
		}
		totalAudioBytes := totalSize - int64(startOffset)
		if totalAudioBytes < 0 {
			totalAudioBytes = 0
		}
		return int(totalAudioBytes / int64(avgKbps*125))
	}
	if res.SampleRateHz <= 0 {
		return 0
	}
	return 1152 * res.FramesScanned / res.SampleRateHz
}

func logDetail(obs *observability.StandardObserver, component, detail string) {
	if obs != nil && obs.DebugObserver != nil {
		obs.DebugObserver.LogDetail(component, detail)
	}
}
