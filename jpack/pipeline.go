// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"github.com/dsnet/jpack/internal/bwt"
	"github.com/dsnet/jpack/internal/mtf"
)

// encodeBlocks implements the block pipeline (spec.md §4.4, encode
// direction): BWT then MTF per fixed-size block, emitting a header ‖
// content intermediate stream. The MTF list is reset once at the start of
// the whole pass and shared across all blocks.
func encodeBlocks(src []uint16) []uint16 {
	var m mtf.Codec
	m.Reset()

	out := make([]uint16, 0, len(src)+len(src)/blockSize*blockHeaderSize)
	for off := 0; off < len(src); off += blockSize {
		end := off + blockSize
		if end > len(src) {
			end = len(src)
		}
		block := src[off:end]

		l, p := bwt.Forward(block)
		out = append(out, encodeHeader(p)...)
		out = append(out, m.EncodeString(l)...)
	}
	return out
}

// decodeBlocks implements the block pipeline's decode direction: reverse
// of encodeBlocks. It returns ErrMalformed if a block header is present
// with no following content.
func decodeBlocks(src []uint16) ([]uint16, error) {
	var m mtf.Codec
	m.Reset()

	var out []uint16
	for i := 0; i < len(src); {
		if len(src)-i < blockHeaderSize {
			return nil, ErrMalformed
		}
		p, err := decodeHeader(src[i : i+blockHeaderSize])
		if err != nil {
			return nil, err
		}
		i += blockHeaderSize

		end := i + blockSize
		if end > len(src) {
			end = len(src)
		}
		content := src[i:end]
		if len(content) == 0 {
			return nil, ErrMalformed
		}
		i = end

		l := m.DecodeString(content)
		out = append(out, bwt.Inverse(l, p)...)
	}
	return out, nil
}

const hexDigits = "0123456789ABCDEF"

// encodeHeader renders p as an uppercase hexadecimal string, left-padded
// with '0' to exactly blockHeaderSize code units.
func encodeHeader(p int) []uint16 {
	h := make([]uint16, blockHeaderSize)
	for i := blockHeaderSize - 1; i >= 0; i-- {
		h[i] = uint16(hexDigits[p&0xf])
		p >>= 4
	}
	return h
}

// decodeHeader parses a blockHeaderSize-unit hexadecimal header back into
// a primary index.
func decodeHeader(units []uint16) (int, error) {
	var p int
	for _, u := range units {
		var d int
		switch {
		case u >= '0' && u <= '9':
			d = int(u - '0')
		case u >= 'A' && u <= 'F':
			d = int(u-'A') + 10
		case u >= 'a' && u <= 'f':
			d = int(u-'a') + 10
		default:
			return 0, ErrMalformed
		}
		p = p<<4 | d
	}
	return p, nil
}
