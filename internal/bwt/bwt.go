// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler transform and its inverse
// over the 16-bit code-unit alphabet.
//
// The forward transform deliberately uses the naive rotation-sort
// construction rather than a suffix-array-based one: a linear-time SA-IS
// construction (as used by larger bzip2-style block sizes) is explicitly
// out of scope for the fixed 4096-unit block size this package is sized
// for.
package bwt

import "sort"

// Forward computes the Burrows-Wheeler transform of S, returning the last
// column L of the sorted rotation matrix and the primary index p: the row,
// after sorting, at which the original (zero-offset) rotation appears.
//
// S is not mutated. The returned slice is newly allocated.
func Forward(s []uint16) (l []uint16, p int) {
	n := len(s)
	if n == 0 {
		return nil, 0
	}

	// offs[i] is the starting offset of one of the n rotations of s.
	offs := make([]int, n)
	for i := range offs {
		offs[i] = i
	}
	sort.Slice(offs, func(i, j int) bool {
		return lessRotation(s, offs[i], offs[j])
	})

	l = make([]uint16, n)
	for row, off := range offs {
		if off == 0 {
			p = row
		}
		l[row] = s[(off+n-1)%n]
	}
	return l, p
}

// lessRotation reports whether the rotation of s starting at offset a is
// lexicographically less than the rotation starting at offset b.
func lessRotation(s []uint16, a, b int) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		ca := s[(a+i)%n]
		cb := s[(b+i)%n]
		if ca != cb {
			return ca < cb
		}
	}
	return a < b // All rotations with equal content compare by offset.
}

// Inverse reconstructs the original block from its last column L and
// primary index p, as produced by Forward.
func Inverse(l []uint16, p int) []uint16 {
	n := len(l)
	if n == 0 {
		return nil
	}

	// nbLessThan[c] = number of code units in L strictly less than c.
	var count [1 << 16]int
	for _, c := range l {
		count[c]++
	}
	var nbLessThan [1 << 16]int
	var sum int
	for c, cnt := range count {
		nbLessThan[c] = sum
		sum += cnt
	}

	// next[i] = nbLessThan[L[i]] + prevMatch[i], the LF-mapping target.
	next := make([]int, n)
	rank := make([]int, 1<<16)
	for i, c := range l {
		next[i] = nbLessThan[c] + rank[c]
		rank[c]++
	}

	out := make([]uint16, n)
	pos := p
	for k := 0; k < n; k++ {
		out[n-1-k] = l[pos]
		pos = next[pos]
	}
	return out
}
