// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"container/heap"

	"github.com/dsnet/jpack/internal/bitio"
)

// node is a Huffman tree node. A leaf has left == right == nil and carries
// a code unit; an internal node carries no code unit and always has
// exactly two children.
type node struct {
	left, right *node
	sym         uint16
	isLeaf      bool
	weight      uint64
	seq         int // Insertion order, used only to break weight ties.
}

// nodeHeap is a min-heap of *node ordered by weight ascending, with
// insertion order as a stable tie-break (spec.md §4.5: "tie-breaking is
// implementation-defined... stable under the queue's insertion order").
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildTree constructs the optimal Huffman tree for the given per-symbol
// frequencies (indexed by code unit; a zero frequency means the symbol is
// absent from the alphabet). It returns nil for an empty frequency table,
// per spec.md §4.5's empty-input edge case.
func buildTree(freq map[uint16]uint64) *node {
	if len(freq) == 0 {
		return nil
	}

	h := make(nodeHeap, 0, len(freq))
	seq := 0
	// Iteration order over a Go map is randomized, so the symbols are sorted
	// first to make insertion order, and with it the tie-break, deterministic.
	// The decoder does not rebuild the tree; it reads the serialized shape.
	syms := make([]uint16, 0, len(freq))
	for s := range freq {
		syms = append(syms, s)
	}
	sortUint16s(syms)
	for _, s := range syms {
		h = append(h, &node{isLeaf: true, sym: s, weight: freq[s], seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		zero := heap.Pop(&h).(*node)
		one := heap.Pop(&h).(*node)
		parent := &node{
			left:   zero,
			right:  one,
			weight: zero.weight + one.weight,
			seq:    seq,
		}
		seq++
		heap.Push(&h, parent)
	}
	return h[0]
}

// code is a Huffman codeword: the low len bits of val, most-significant
// bit first.
type code struct {
	val uint64
	len uint
}

// codeTable walks the tree depth-first, assigning the root-to-leaf path
// (left=0, right=1) to each leaf's code unit. A single-leaf tree maps its
// one code unit to the empty bit string, per spec.md §4.5.
func codeTable(root *node) map[uint16]code {
	table := make(map[uint16]code)
	if root == nil {
		return table
	}
	if root.isLeaf {
		table[root.sym] = code{0, 0}
		return table
	}
	var walk func(n *node, val uint64, depth uint)
	walk = func(n *node, val uint64, depth uint) {
		if n.isLeaf {
			table[n.sym] = code{val, depth}
			return
		}
		walk(n.left, val<<1, depth+1)
		walk(n.right, val<<1|1, depth+1)
	}
	walk(root, 0, 0)
	return table
}

// writeTree serializes root in pre-order: 1 + 16-bit code unit for a leaf,
// 0 followed by the left then right subtrees for an internal node. An
// empty tree writes nothing.
func writeTree(w *bitio.Writer, root *node) error {
	if root == nil {
		return nil
	}
	var walk func(n *node) error
	walk = func(n *node) error {
		if n.isLeaf {
			if err := w.WriteBit(1); err != nil {
				return err
			}
			return w.WriteCodeUnit(n.sym)
		}
		if err := w.WriteBit(0); err != nil {
			return err
		}
		if err := walk(n.left); err != nil {
			return err
		}
		return walk(n.right)
	}
	return walk(root)
}

// readTree deserializes a tree written by writeTree. The caller must
// already know whether a tree is present (N == 0 means no tree).
func readTree(r *bitio.Reader) (*node, error) {
	b, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	if b == 1 {
		sym, err := r.ReadCodeUnit()
		if err != nil {
			return nil, err
		}
		return &node{isLeaf: true, sym: sym}, nil
	}
	left, err := readTree(r)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}

func sortUint16s(s []uint16) {
	// Insertion sort over the distinct symbols of the whole stream. The order
	// only affects the stable tie-break order of the heap, not correctness of
	// the resulting code.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
