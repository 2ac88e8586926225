// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package vitter implements adaptive Huffman coding following Vitter's
// FGK-variant algorithm: encoder and decoder maintain an implicitly
// numbered dynamic Huffman tree, updating it identically as symbols are
// transmitted, with no separate frequency pass and no serialized tree.
package vitter

import "runtime"

// numSymbols is the size of the 16-bit code-unit alphabet (n in spec.md §4.6).
const numSymbols = 1 << 16

// maxNodes is the maximum number of nodes in a complete tree over the full
// alphabet (Z = 2n-1 in spec.md §4.6).
const maxNodes = 2*numSymbols - 1

// none is the sentinel "no slot" value; slot numbers are 1-based.
const none = 0

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "vitter: " + string(e) }

// ErrTruncated reports that the bit stream ended before a symbol could be
// fully decoded.
var ErrTruncated error = Error("truncated stream")

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
