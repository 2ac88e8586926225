// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"bytes"

	"github.com/dsnet/jpack/internal/bitio"
)

// huffmanEncode serializes src using the semi-adaptive (static) Huffman
// codec described in spec.md §4.5: a two-pass frequency count, an optimal
// prefix-code tree, and a length-prefixed file layout.
func huffmanEncode(src []uint16) (_ []byte, err error) {
	defer errRecover(&err)

	freq := make(map[uint16]uint64, 256)
	for _, v := range src {
		freq[v]++
	}
	root := buildTree(freq)
	table := codeTable(root)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	check(w.WriteLengthPrefixedLong(uint64(len(src))))
	if len(src) > 0 {
		check(writeTree(w, root))
		for _, v := range src {
			c := table[v]
			check(w.WriteBits(c.val, c.len))
		}
	}
	check(w.Close())
	return buf.Bytes(), nil
}

// huffmanDecode is the inverse of huffmanEncode.
func huffmanDecode(data []byte) (out []uint16, err error) {
	defer func() {
		if err == bitio.ErrTruncated {
			err = ErrTruncated
		}
	}()
	defer errRecover(&err)

	r := bitio.NewReader(bytes.NewReader(data))
	n64, err := r.ReadLengthPrefixedLong()
	check(err)
	n := int(n64)
	if n == 0 {
		return nil, nil
	}

	root, err := readTree(r)
	check(err)
	if root == nil {
		panic(ErrMalformed)
	}

	out = make([]uint16, n)
	for i := 0; i < n; i++ {
		node := root
		for !node.isLeaf {
			b, err := r.ReadBit()
			check(err)
			if b == 0 {
				node = node.left
			} else {
				node = node.right
			}
			if node == nil {
				panic(ErrMalformed)
			}
		}
		out[i] = node.sym
	}
	return out, nil
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// Compressor composes the block pipeline (BWT+MTF per block) with the
// static Huffman codec into the primary, whole-file compression pipeline
// (spec.md §4.7). The zero value is ready to use.
type Compressor struct{}

// Compress transforms src, a sequence of 16-bit code units, into its
// compressed byte representation.
func (Compressor) Compress(src []uint16) ([]byte, error) {
	return huffmanEncode(encodeBlocks(src))
}

// Uncompress is the inverse of Compress.
func (Compressor) Uncompress(data []byte) ([]uint16, error) {
	intermediate, err := huffmanDecode(data)
	if err != nil {
		return nil, err
	}
	return decodeBlocks(intermediate)
}
