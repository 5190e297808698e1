// Package source loads script text for the CLI's file-execution mode,
// detecting a byte-order mark and decoding UTF-16 sources to UTF-8 before
// handing them to the lexer, the way the teacher's detectAndDecodeFile does
// for DWScript sources.
package source

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads path and returns its contents as a UTF-8 string, transparently
// handling a UTF-8, UTF-16LE, or UTF-16BE byte-order mark. Files without a
// recognized BOM are assumed to be UTF-8; if that assumption is wrong the
// bytes are promoted one-for-one into runes rather than rejected outright.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("source: failed to read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode applies the same BOM-detection rules as Load directly to an
// in-memory byte slice, for callers that already hold the file contents
// (e.g. the REPL reading from stdin, or an embedded script).
func Decode(data []byte) (string, error) {
	switch {
	case hasUTF8BOM(data):
		return string(data[3:]), nil
	case hasUTF16LEBOM(data):
		return decodeUTF16(data, unicode.LittleEndian)
	case hasUTF16BEBOM(data):
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func hasUTF8BOM(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF
}

func hasUTF16LEBOM(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE
}

func hasUTF16BEBOM(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("source: failed to decode UTF-16: %w", err)
	}
	if hasUTF8BOM(utf8Data) {
		utf8Data = utf8Data[3:]
	}
	return string(bytes.TrimPrefix(utf8Data, []byte("﻿"))), nil
}
