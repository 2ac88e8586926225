// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package jpack implements the primary compression pipeline: a block-level
// Burrows-Wheeler transform, a Move-to-Front transform applied per block,
// and a whole-file semi-adaptive (static) Huffman coder over the result.
//
// Compression stack:
//	Burrows-Wheeler transform (BWT)
//	Move-to-front transform   (MTF)
//	Static Huffman coding     (SHC)
package jpack

import "runtime"

const (
	// blockSize is the number of code units per BWT/MTF block.
	blockSize = 4096

	// blockHeaderSize is the fixed width, in hexadecimal code units, of a
	// block's serialized primary index.
	blockHeaderSize = 3
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "jpack: " + string(e) }

var (
	// ErrTruncated reports that the bit stream ended before a contracted
	// read could complete.
	ErrTruncated error = Error("truncated stream")

	// ErrMalformed reports a structurally invalid stream: a block header
	// with no content, an invalid hex primary index, or an inconsistent
	// serialized tree.
	ErrMalformed error = Error("malformed stream")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
