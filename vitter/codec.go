// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package vitter

import (
	"io"

	"github.com/dsnet/jpack/internal/bitio"
)

// Writer is an adaptive Huffman encoder. Unlike the semi-adaptive jpack
// codec, it carries no header and no serialized tree: the decoder
// reconstructs the same tree by mirroring every update the encoder makes.
type Writer struct {
	w *bitio.Writer
	t *tree
}

// NewWriter returns a Writer that writes an encoded stream to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w), t: newTree()}
}

// Reset discards any state so the Writer can encode a new, independent
// stream to w.
func (vw *Writer) Reset(w io.Writer) {
	vw.w = bitio.NewWriter(w)
	vw.t.reset()
}

// WriteSymbol transmits one code unit.
func (vw *Writer) WriteSymbol(c uint16) (err error) {
	defer errRecover(&err)

	// The path to the current leaf (or, for a first occurrence, to the
	// current NYT placeholder) is transmitted before any escape preamble:
	// the decoder must descend the tree to discover it has arrived at NYT
	// before it knows a preamble follows at all.
	t := vw.t
	isNew := t.rep[c] == none
	var bits []uint64
	if isNew {
		bits = t.pathBits(t.nytSlot(), bits)
	} else {
		bits = t.pathBits(t.rep[c], bits)
	}
	for _, b := range bits {
		check(vw.w.WriteBit(uint(b)))
	}
	if isNew {
		k := t.poolIndex(c)
		m := t.poolSize
		e, r := eOf(m)
		if k < 2*r {
			check(vw.w.WriteBits(uint64(k), uint(e+1)))
		} else {
			check(vw.w.WriteBits(uint64(k-r), uint(e)))
		}
	}

	var leaf int32
	if isNew {
		leaf = t.splitNYT(c)
	} else {
		leaf = t.rep[c]
	}
	t.update(leaf)
	return nil
}

// Close flushes any partially-written final byte.
func (vw *Writer) Close() error {
	return vw.w.Close()
}

// Reader is the inverse of Writer.
type Reader struct {
	r *bitio.Reader
	t *tree
}

// NewReader returns a Reader that decodes a stream previously produced by
// a Writer from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r), t: newTree()}
}

// Reset discards any state so the Reader can decode a new, independent
// stream from r.
func (vr *Reader) Reset(r io.Reader) {
	vr.r = bitio.NewReader(r)
	vr.t.reset()
}

// ReadSymbol decodes one code unit.
func (vr *Reader) ReadSymbol() (c uint16, err error) {
	defer func() {
		if err == bitio.ErrTruncated {
			err = ErrTruncated
		}
	}()
	defer errRecover(&err)

	t := vr.t
	slot, err := t.descend(func() (uint64, error) {
		b, err := vr.r.ReadBit()
		return uint64(b), err
	})
	check(err)

	if t.poolSize > 0 && slot == t.nytSlot() {
		m := t.poolSize
		e, r := eOf(m)
		k0, err := vr.r.ReadBits(uint(e))
		check(err)
		var k int32
		if int32(k0) < r {
			bit, err := vr.r.ReadBit()
			check(err)
			k = int32(k0)*2 + int32(bit)
		} else {
			k = int32(k0) + r
		}
		c = t.poolAt(k)
		leaf := t.splitNYT(c)
		t.update(leaf)
		return c, nil
	}

	c = t.sym[slot]
	t.update(slot)
	return c, nil
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
