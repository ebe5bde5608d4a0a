// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mpegscan

import "github.com/tracker-project/mp3extract/internal/model"

// Bit masks over a big-endian-assembled 32-bit header word, grounded
// on yorkxin-mp3len/internal/mp3header.
const (
	flagAudioVersion = 0x00180000
	flagLayerDesc    = 0x00060000
	flagBitRate      = 0x0000F000
	flagSampleFreq   = 0x00000C00
	flagPaddingBit   = 0x00000200
	flagChannelMode  = 0x000000C0
)

const (
	versionReserved = 0b01 // Known Quirk #3: treated as an explicit reject, not a silent fallthrough.
	version2_5      = 0b00
	version2        = 0b10
	version1        = 0b11
)

const (
	layerReserved = 0b00
	layer3        = 0b01
	layer2        = 0b10
	layer1        = 0b11
)

// bitrate tables in kbps, indexed by the 4-bit bitrate index. 0 is
// free format (rejected here), -1 is a reserved/invalid index.
// Cross-checked against tracker-extract-mp3.c's own bitrate_table
// (original_source) rather than taken as-is from yorkxin-mp3len, whose
// Version1/Layer1 row has a 92-vs-96 typo at index 3.
var bitrateTableV1 = map[int][16]int{
	layer1: {0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1},
	layer2: {0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1},
	layer3: {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 176, 192, 224, 256, -1},
}

// bitrateTableV2 is shared by MPEG-2 and MPEG-2.5.
var bitrateTableV2 = map[int][16]int{
	layer1: {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1},
	layer2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
	layer3: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
}

var sampleRateTable = map[int][4]int{
	version1:   {44100, 48000, 32000, -1},
	version2:   {22050, 24000, 16000, -1},
	version2_5: {11025, 12000, 8000, -1},
}

// decodeAndSizeAt decodes the 4-byte header at pos and, on success,
// returns the frame descriptor plus the total frame size in bytes
// (header included).
func decodeAndSizeAt(data []byte, pos int) (model.MPEGFrameDesc, int, bool) {
	if pos < 0 || pos+4 > len(data) {
		return model.MPEGFrameDesc{}, 0, false
	}
	word := uint32(data[pos])<<24 | uint32(data[pos+1])<<16 | uint32(data[pos+2])<<8 | uint32(data[pos+3])
	if data[pos] != 0xFF || data[pos+1]&0xE0 != 0xE0 {
		return model.MPEGFrameDesc{}, 0, false
	}

	versionBits := int((word & flagAudioVersion) >> 19)
	if versionBits == versionReserved {
		return model.MPEGFrameDesc{}, 0, false
	}
	layerBits := int((word & flagLayerDesc) >> 17)
	if layerBits == layerReserved {
		return model.MPEGFrameDesc{}, 0, false
	}
	bitrateIdx := int((word & flagBitRate) >> 12)
	sampleIdx := int((word & flagSampleFreq) >> 10)
	padding := int((word & flagPaddingBit) >> 9)
	channelMode := int((word & flagChannelMode) >> 6)

	bitrateKbps, ok := lookupBitrate(versionBits, layerBits, bitrateIdx)
	if !ok || bitrateKbps <= 0 {
		return model.MPEGFrameDesc{}, 0, false
	}
	sampleRateHz, ok := lookupSampleRate(versionBits, sampleIdx)
	if !ok || sampleRateHz <= 0 {
		return model.MPEGFrameDesc{}, 0, false
	}

	channels := 2
	if channelMode == 0b11 {
		channels = 1
	}

	desc := model.MPEGFrameDesc{
		Version:      versionName(versionBits),
		Layer:        layerNumber(layerBits),
		BitrateKbps:  bitrateKbps,
		SampleRateHz: sampleRateHz,
		Channels:     channels,
		Padding:      padding,
	}

	size := frameSize(versionBits, layerBits, bitrateKbps, sampleRateHz, padding)
	if size < 4 {
		return model.MPEGFrameDesc{}, 0, false
	}
	return desc, size, true
}

// frameSize applies the standard coefficient/padding-unit formula:
// Layer I frames use coefficient 48 and a 4-byte padding slot; Layer
// II/III frames use 144 (MPEG-1) or 72 (MPEG-2/2.5) with a 1-byte
// padding slot (spec.md §4.7).
func frameSize(versionBits, layerBits, bitrateKbps, sampleRateHz, padding int) int {
	bitrateBps := bitrateKbps * 1000
	if layerBits == layer1 {
		return 48*bitrateBps/sampleRateHz + padding*4
	}
	coeff := 72
	if versionBits == version1 {
		coeff = 144
	}
	return coeff*bitrateBps/sampleRateHz + padding
}

func lookupBitrate(versionBits, layerBits, idx int) (int, bool) {
	if idx < 0 || idx > 15 {
		return 0, false
	}
	table := bitrateTableV2
	if versionBits == version1 {
		table = bitrateTableV1
	}
	row, ok := table[layerBits]
	if !ok {
		return 0, false
	}
	v := row[idx]
	if v < 0 {
		return 0, false
	}
	return v, true
}

func lookupSampleRate(versionBits, idx int) (int, bool) {
	if idx < 0 || idx > 3 {
		return 0, false
	}
	row, ok := sampleRateTable[versionBits]
	if !ok {
		return 0, false
	}
	v := row[idx]
	if v < 0 {
		return 0, false
	}
	return v, true
}

func versionName(versionBits int) string {
	switch versionBits {
	case version1:
		return "1"
	case version2:
		return "2"
	default:
		return "2.5"
	}
}

func layerNumber(layerBits int) int {
	switch layerBits {
	case layer1:
		return 1
	case layer2:
		return 2
	default:
		return 3
	}
}
