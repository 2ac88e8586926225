// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"testing"

	"github.com/dsnet/jpack/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func units(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, r := range []byte(s) {
		out[i] = uint16(r)
	}
	return out
}

func str(u []uint16) string {
	b := make([]byte, len(u))
	for i, c := range u {
		b[i] = byte(c)
	}
	return string(b)
}

func TestAbracadabraIntermediate(t *testing.T) {
	// spec.md §8 scenario 1: the intermediate BWT of the single block for
	// "abracadabra" is "rdarcaaaabb" at primary index 2.
	inter := encodeBlocks(units("abracadabra"))
	if len(inter) != blockHeaderSize+11 {
		t.Fatalf("intermediate length = %d, want %d", len(inter), blockHeaderSize+11)
	}
	p, err := decodeHeader(inter[:blockHeaderSize])
	if err != nil {
		t.Fatal(err)
	}
	if p != 2 {
		t.Errorf("primary index = %d, want 2", p)
	}
}

func TestFullPipelineRoundTrip(t *testing.T) {
	var c Compressor
	inputs := []string{
		"abracadabra",
		"Hello, world!",
		"aaaa",
		"",
	}
	for i, in := range inputs {
		data, err := c.Compress(units(in))
		if err != nil {
			t.Fatalf("test %d: Compress: %v", i, err)
		}
		out, err := c.Uncompress(data)
		if err != nil {
			t.Fatalf("test %d: Uncompress: %v", i, err)
		}
		if got := str(out); got != in {
			t.Errorf("test %d: round-trip mismatch: got %q, want %q", i, got, in)
		}
	}
}

func TestSingleCharacterFile(t *testing.T) {
	var c Compressor
	data, err := c.Compress(units("aaaa"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Uncompress(data)
	if err != nil {
		t.Fatal(err)
	}
	if str(out) != "aaaa" {
		t.Fatalf("got %q, want %q", str(out), "aaaa")
	}
}

func TestEmptyInput(t *testing.T) {
	var c Compressor
	data, err := c.Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Uncompress(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("got %v, want empty", out)
	}
}

func TestBlockBoundary(t *testing.T) {
	// spec.md §8 scenario 4: exactly 8192 characters produce two blocks,
	// each with a 3-char hex header and 4096-char content.
	r := testutil.NewRand(3)
	src := make([]uint16, 2*blockSize)
	for i := range src {
		src[i] = uint16('a' + r.Intn(4))
	}
	inter := encodeBlocks(src)
	if got, want := len(inter), 2*(blockHeaderSize+blockSize); got != want {
		t.Fatalf("intermediate length = %d, want %d", got, want)
	}

	back, err := decodeBlocks(inter)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(src, back); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFullPipelineRandom(t *testing.T) {
	var c Compressor
	r := testutil.NewRand(4)
	for trial := 0; trial < 5; trial++ {
		n := r.Intn(10000)
		src := make([]uint16, n)
		for i := range src {
			src[i] = uint16(0x20 + r.Intn(95)) // printable ASCII range
		}
		data, err := c.Compress(src)
		if err != nil {
			t.Fatalf("trial %d: Compress: %v", trial, err)
		}
		out, err := c.Uncompress(data)
		if err != nil {
			t.Fatalf("trial %d: Uncompress: %v", trial, err)
		}
		if diff := cmp.Diff(src, out); diff != "" {
			t.Errorf("trial %d: round-trip mismatch (-want +got):\n%s", trial, diff)
		}
	}
}

// TestFullPipelineRandomFullAlphabet is property P5 for the primary
// pipeline: unlike TestFullPipelineRandom's printable-ASCII text, this
// exercises the full 16-bit code-unit range, including non-ASCII values
// the BWT/MTF stages must handle identically to any other code unit.
func TestFullPipelineRandomFullAlphabet(t *testing.T) {
	var c Compressor
	r := testutil.NewRand(9)
	for trial := 0; trial < 5; trial++ {
		n := r.Intn(10000)
		src := make([]uint16, n)
		for i := range src {
			src[i] = uint16(r.Intn(1 << 16))
		}
		data, err := c.Compress(src)
		if err != nil {
			t.Fatalf("trial %d: Compress: %v", trial, err)
		}
		out, err := c.Uncompress(data)
		if err != nil {
			t.Fatalf("trial %d: Uncompress: %v", trial, err)
		}
		if diff := cmp.Diff(src, out); diff != "" {
			t.Errorf("trial %d: round-trip mismatch (-want +got):\n%s", trial, diff)
		}
	}
}

func TestMalformedTruncatedHeader(t *testing.T) {
	if _, err := decodeBlocks([]uint16{'0', '0'}); err != ErrMalformed {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
}

func TestMalformedMissingContent(t *testing.T) {
	if _, err := decodeBlocks([]uint16{'0', '0', '0'}); err != ErrMalformed {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
}
