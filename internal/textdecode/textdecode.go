// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textdecode converts an ID3 text field from its declared
// encoding byte to canonical UTF-8.
package textdecode

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding byte values per the ID3v2 spec.
const (
	EncodingISO8859_1 = 0x00
	EncodingUTF16BOM  = 0x01
	EncodingUTF16BE   = 0x02
	EncodingUTF8      = 0x03
)

// Decode converts data from the encoding named by encodingByte into a
// trimmed, valid UTF-8 string. An unrecognized encoding byte falls
// back to ISO-8859-1, matching the reference extractor's defensive
// behavior for garbage encoding tags. A sequence that cannot be
// decoded yields "" so the caller drops the frame rather than emit
// invalid text.
func Decode(encodingByte byte, data []byte) string {
	var s string
	switch encodingByte {
	case EncodingUTF16BOM:
		s = decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), data)
	case EncodingUTF16BE:
		s = decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data)
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return ""
		}
		s = string(data)
	case EncodingISO8859_1:
		s = decodeWith(charmap.ISO8859_1.NewDecoder(), data)
	default:
		s = decodeWith(charmap.ISO8859_1.NewDecoder(), data)
	}
	return trimNUL(s)
}

func decodeWith(dec *encoding.Decoder, data []byte) string {
	reader := transform.NewReader(bytes.NewReader(data), dec)
	out, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	if !utf8.Valid(out) {
		return ""
	}
	return string(out)
}

// trimNUL strips trailing NUL bytes left by a padded fixed-width field
// or a NUL-terminated ID3v2 string.
func trimNUL(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == 0x00) {
		end--
	}
	return s[:end]
}
