// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"os"
	"unicode/utf16"
)

// readSymbols reads path as text and returns its content as a sequence of
// 16-bit code units (spec.md §6's "symbol source"). It detects and strips
// a UTF-8, UTF-16LE, or UTF-16BE byte-order mark; lacking one, it assumes
// UTF-8.
func readSymbols(path string) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFoundError(path)
		}
		return nil, err
	}

	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return utf16.Encode([]rune(string(data[3:]))), nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return decodeUTF16(data[2:], false), nil
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return decodeUTF16(data[2:], true), nil
	default:
		return utf16.Encode([]rune(string(data))), nil
	}
}

func decodeUTF16(b []byte, bigEndian bool) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		hi, lo := b[2*i], b[2*i+1]
		if bigEndian {
			u[i] = uint16(hi)<<8 | uint16(lo)
		} else {
			u[i] = uint16(lo)<<8 | uint16(hi)
		}
	}
	return u
}

// writeSymbols renders units as UTF-8 text and writes it to path.
func writeSymbols(path string, units []uint16) error {
	return os.WriteFile(path, []byte(string(utf16.Decode(units))), 0644)
}
