// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"bytes"
	"testing"

	"github.com/dsnet/jpack/internal/bitio"
)

func TestCodeTableIsPrefixFree(t *testing.T) {
	freq := map[uint16]uint64{'a': 5, 'b': 2, 'c': 1, 'd': 1}
	root := buildTree(freq)
	table := codeTable(root)

	type entry struct {
		sym uint16
		c   code
	}
	var entries []entry
	for sym, c := range table {
		entries = append(entries, entry{sym, c})
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			a, b := entries[i].c, entries[j].c
			if a.len <= b.len && isPrefix(a, b) {
				t.Errorf("code for %q (%v) is a prefix of code for %q (%v)",
					entries[i].sym, a, entries[j].sym, b)
			}
		}
	}
}

func isPrefix(a, b code) bool {
	if a.len == 0 || a.len > b.len {
		return a.len == 0
	}
	return a.val == b.val>>(b.len-a.len)
}

func TestSingleLeafTree(t *testing.T) {
	root := buildTree(map[uint16]uint64{'a': 4})
	table := codeTable(root)
	c := table['a']
	if c.len != 0 {
		t.Fatalf("single-leaf code length = %d, want 0", c.len)
	}
}

func TestTreeSerializationRoundTrip(t *testing.T) {
	freq := map[uint16]uint64{'a': 10, 'b': 5, 'c': 3, 'd': 1, 'e': 1}
	root := buildTree(freq)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := writeTree(w, root); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader(&buf)
	got, err := readTree(r)
	if err != nil {
		t.Fatal(err)
	}

	wantTable := codeTable(root)
	gotTable := codeTable(got)
	if len(wantTable) != len(gotTable) {
		t.Fatalf("symbol count mismatch: got %d, want %d", len(gotTable), len(wantTable))
	}
	for sym, wc := range wantTable {
		gc, ok := gotTable[sym]
		if !ok || gc != wc {
			t.Errorf("symbol %q: got %v, want %v", sym, gc, wc)
		}
	}
}

func TestEmptyFrequencyTable(t *testing.T) {
	if root := buildTree(nil); root != nil {
		t.Fatalf("buildTree(nil) = %v, want nil", root)
	}
}
