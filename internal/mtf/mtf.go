// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the Move-to-Front transform over the full 16-bit
// code-unit alphabet, with the readability index-shift from spec.md §4.3.1.
//
// A flat array shifted on every symbol (fine for byte-sized alphabets) is
// prohibitive at 65536 entries, so the list is backed by a doubly-linked
// list keyed directly by code unit, giving O(1) splice-to-front and O(k)
// indexing, where k is the rank being looked up — the alternative-of-record
// called out by the design notes.
package mtf

const alphabetSize = 1 << 16

// indexShiftStart is the 'A' constant from spec.md §4.3.1.
const indexShiftStart = 0x0041

const none = -1

// Codec maintains the recency-ordered list for one MTF stream. The zero
// value is not ready for use; call Reset first.
type Codec struct {
	next [alphabetSize]int32
	prev [alphabetSize]int32
	head int32
}

// Reset restores the list to lexicographic order 0, 1, ..., 65535.
func (c *Codec) Reset() {
	for i := range c.next {
		c.next[i] = int32(i) + 1
		c.prev[i] = int32(i) - 1
	}
	c.next[alphabetSize-1] = none
	c.prev[0] = none
	c.head = 0
}

// indexOf returns the current rank of v in the list, in O(rank) time.
func (c *Codec) indexOf(v uint16) int {
	k := 0
	n := c.head
	for n != int32(v) {
		n = c.next[n]
		k++
	}
	return k
}

// nodeAt returns the code unit currently at rank k, in O(k) time.
func (c *Codec) nodeAt(k int) uint16 {
	n := c.head
	for ; k > 0; k-- {
		n = c.next[n]
	}
	return uint16(n)
}

// moveToFront unlinks v from its current position and relinks it as the
// new head.
func (c *Codec) moveToFront(v uint16) {
	n := int32(v)
	if n == c.head {
		return
	}
	p, nx := c.prev[n], c.next[n]
	c.next[p] = nx
	if nx != none {
		c.prev[nx] = p
	}
	c.prev[n] = none
	c.next[n] = c.head
	c.prev[c.head] = n
	c.head = n
}

// EncodeRaw finds the rank of v, moves it to the front of the list, and
// returns the rank (an index in [0, 65536)).
func (c *Codec) EncodeRaw(v uint16) int {
	k := c.indexOf(v)
	c.moveToFront(v)
	return k
}

// DecodeRaw fetches the code unit at rank k, moves it to the front of the
// list, and returns it.
func (c *Codec) DecodeRaw(k int) uint16 {
	v := c.nodeAt(k)
	c.moveToFront(v)
	return v
}

// Encode is the adapted form of EncodeRaw: the rank is remapped to a code
// unit via the index shift in spec.md §4.3.1.
func (c *Codec) Encode(v uint16) uint16 {
	k := c.EncodeRaw(v)
	return indexToCodeUnit(k)
}

// Decode is the adapted form of DecodeRaw: the code unit is de-shifted to
// a rank before lookup.
func (c *Codec) Decode(v uint16) uint16 {
	k := codeUnitToIndex(v)
	return c.DecodeRaw(k)
}

func indexToCodeUnit(k int) uint16 {
	return uint16((k + indexShiftStart) % alphabetSize)
}

func codeUnitToIndex(v uint16) int {
	return int((int(v) - indexShiftStart + alphabetSize) % alphabetSize)
}

// EncodeString applies Encode to every code unit of s in order, sharing a
// single list across the whole call.
func (c *Codec) EncodeString(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	for i, v := range s {
		out[i] = c.Encode(v)
	}
	return out
}

// DecodeString applies Decode to every code unit of s in order, sharing a
// single list across the whole call.
func (c *Codec) DecodeString(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	for i, v := range s {
		out[i] = c.Decode(v)
	}
	return out
}
