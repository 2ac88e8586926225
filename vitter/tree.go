// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package vitter

import "math/bits"

// tree holds the dynamic Huffman tree shared by the encoder and decoder.
// Nodes are identified by a 1-based slot number in [1, maxNodes]; slot 0
// means "no node". Slot numbers identify nodes but are not kept in weight
// order, and the two children of an internal node need not occupy
// consecutive slots: update exchanges content between slots of equal weight
// instead of renumbering them, so the numbering does not carry the sibling
// property. Encoder and decoder evolve this structure identically, so the
// tree itself is never transmitted.
type tree struct {
	parent []int32
	left   []int32 // 0 if the slot is a leaf
	right  []int32
	weight []int64
	sym    []uint16 // valid only for leaf slots

	rep []int32 // code unit -> leaf slot, 0 if the unit is still NYT

	root         int32
	nextInternal int32 // next internal-node slot to allocate, counts down from Z

	// pool tracks the code units that have not yet been transmitted. It is
	// a dense, swap-remove array so that "the k-th remaining unseen unit"
	// and "remove this unit from the pool" are both O(1).
	poolUnits []uint16
	poolPos   []int32
	poolSize  int32 // also the current slot number of the NYT placeholder

	// weight classes, for the increment step's "highest-numbered node with
	// this weight" search. groups[w] lists active slots with weight w;
	// groupIdx/groupOf let a slot be removed in O(1).
	groups   map[int64][]int32
	groupIdx []int32
	groupOf  []int64
}

func newTree() *tree {
	t := &tree{
		parent:    make([]int32, maxNodes+1),
		left:      make([]int32, maxNodes+1),
		right:     make([]int32, maxNodes+1),
		weight:    make([]int64, maxNodes+1),
		sym:       make([]uint16, maxNodes+1),
		rep:       make([]int32, numSymbols),
		poolUnits: make([]uint16, numSymbols),
		poolPos:   make([]int32, numSymbols),
		groups:    make(map[int64][]int32),
		groupIdx:  make([]int32, maxNodes+1),
		groupOf:   make([]int64, maxNodes+1),
	}
	t.reset()
	return t
}

func (t *tree) reset() {
	for i := range t.parent {
		t.parent[i], t.left[i], t.right[i], t.weight[i] = 0, 0, 0, 0
	}
	for c := range t.rep {
		t.rep[c] = 0
		t.poolUnits[c] = uint16(c)
		t.poolPos[c] = int32(c)
	}
	t.poolSize = numSymbols
	t.nextInternal = maxNodes
	t.root = numSymbols // matches spec.md §4.6: root = n while M = n
	for w := range t.groups {
		delete(t.groups, w)
	}
}

// eOf decomposes the current pool size M as M = 2^E + R, 0 <= R < 2^E, and
// returns E and R, the zero-letter preamble's working constants.
func eOf(m int32) (e, r int32) {
	e = int32(bits.Len32(uint32(m))) - 1
	r = m - (1 << uint(e))
	return e, r
}

func (t *tree) isLeaf(slot int32) bool { return t.left[slot] == none }

// nytSlot is the current slot number standing in for "not yet transmitted".
// It is only meaningful while the pool is non-empty.
func (t *tree) nytSlot() int32 { return t.poolSize }

// poolIndex returns c's position within the remaining-unseen pool.
func (t *tree) poolIndex(c uint16) int32 { return t.poolPos[c] }

// poolAt returns the code unit currently occupying pool position k.
func (t *tree) poolAt(k int32) uint16 { return t.poolUnits[k] }

func (t *tree) poolRemove(c uint16) {
	k := t.poolPos[c]
	last := t.poolSize - 1
	lc := t.poolUnits[last]
	t.poolUnits[k] = lc
	t.poolPos[lc] = k
	t.poolSize = last
}

func (t *tree) addToGroup(slot int32, w int64) {
	t.groups[w] = append(t.groups[w], slot)
	t.groupIdx[slot] = int32(len(t.groups[w]) - 1)
	t.groupOf[slot] = w
}

func (t *tree) removeFromGroup(slot int32) {
	w := t.groupOf[slot]
	arr := t.groups[w]
	idx := t.groupIdx[slot]
	last := int32(len(arr) - 1)
	lastSlot := arr[last]
	arr[idx] = lastSlot
	t.groupIdx[lastSlot] = idx
	t.groups[w] = arr[:last]
}

// swapContent exchanges what resides at slots a and b (their children and
// symbol, if leaves) while leaving each slot's own position in the tree
// (its parent link, and whichever child-slot its parent uses to reach it)
// untouched. Precondition: weight[a] == weight[b].
func (t *tree) swapContent(a, b int32) {
	la, ra, sa := t.left[a], t.right[a], t.sym[a]
	lb, rb, sb := t.left[b], t.right[b], t.sym[b]

	t.left[a], t.right[a], t.sym[a] = lb, rb, sb
	t.left[b], t.right[b], t.sym[b] = la, ra, sa

	if la == none {
		t.rep[sa] = b
	} else {
		t.parent[la], t.parent[ra] = b, b
	}
	if lb == none {
		t.rep[sb] = a
	} else {
		t.parent[lb], t.parent[rb] = a, a
	}
}

// update increments leaf's weight, and that of every ancestor up to the
// root. Before each increment it exchanges the content of the node being
// incremented with that of the highest-numbered slot in its weight class
// (excluding its own parent).
func (t *tree) update(leaf int32) {
	cur := leaf
	for cur != none {
		w := t.weight[cur]
		p := t.parent[cur]

		var best int32 = -1
		for _, s := range t.groups[w] {
			if s == p {
				continue
			}
			if best == -1 || s > best {
				best = s
			}
		}
		if best != -1 && best != cur {
			t.swapContent(cur, best)
			cur = best
		}

		t.removeFromGroup(cur)
		t.weight[cur] = w + 1
		t.addToGroup(cur, w+1)

		cur = t.parent[cur]
	}
}

// pathBits appends the bits describing the path from slot up to the root,
// in root-to-leaf order (the order a decoder reading top-down needs).
func (t *tree) pathBits(slot int32, bits []uint64) []uint64 {
	start := len(bits)
	for n := slot; n != t.root; {
		p := t.parent[n]
		var bit uint64
		if t.right[p] == n {
			bit = 1
		}
		bits = append(bits, bit)
		n = p
	}
	// bits were appended leaf-to-root; reverse the newly appended run.
	for i, j := start, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	return bits
}

// descend walks from the root, driven by a per-step bit source, stopping
// at the first leaf slot reached. readBit returns a single bit (0 or 1).
func (t *tree) descend(readBit func() (uint64, error)) (int32, error) {
	n := t.root
	for !t.isLeaf(n) {
		b, err := readBit()
		if err != nil {
			return 0, err
		}
		if b == 0 {
			n = t.left[n]
		} else {
			n = t.right[n]
		}
	}
	return n, nil
}

// splitNYT materializes the just-observed code unit c as a new leaf,
// shrinking the NYT region by one. c must currently be in the pool. It
// returns the slot to increment (update) to account for the occurrence.
func (t *tree) splitNYT(c uint16) int32 {
	mOld := t.poolSize
	t.poolRemove(c)
	mNew := t.poolSize

	realLeaf := mOld
	t.sym[realLeaf] = c
	t.weight[realLeaf] = 0
	t.left[realLeaf], t.right[realLeaf] = 0, 0
	t.rep[c] = realLeaf

	if mNew == 0 {
		// The last unseen code unit needs no structural change: it simply
		// becomes a real leaf at the slot the NYT region already occupied.
		t.addToGroup(realLeaf, 0)
		return realLeaf
	}

	p := t.parent[mOld]
	internal := t.nextInternal
	t.nextInternal--

	t.left[internal] = mNew
	t.right[internal] = realLeaf
	t.weight[internal] = 0
	t.parent[internal] = p
	t.parent[mNew] = internal
	t.parent[realLeaf] = internal

	if p == none {
		t.root = internal
	} else if t.left[p] == mOld {
		t.left[p] = internal
	} else {
		t.right[p] = internal
	}

	t.addToGroup(internal, 0)
	t.addToGroup(realLeaf, 0)
	return realLeaf
}
