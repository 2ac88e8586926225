// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func toUnits(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, r := range []byte(s) {
		out[i] = uint16(r)
	}
	return out
}

func fromUnits(u []uint16) string {
	b := make([]byte, len(u))
	for i, c := range u {
		b[i] = byte(c)
	}
	return string(b)
}

func TestBWT(t *testing.T) {
	var vectors = []struct {
		input  string
		output string
		ptr    int
	}{{
		input:  "abracadabra",
		output: "rdarcaaaabb",
		ptr:    2,
	}, {
		input:  "Hello, world!",
		output: ",do!lHrellwo ",
		ptr:    3,
	}, {
		input:  "a",
		output: "a",
		ptr:    0,
	}, {
		input:  "SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		output: "TEXYDST.E.IXIXIXXSSMPPS.B..E.S.EUSFXDIIOIIIT",
		ptr:    29,
	}}

	for i, v := range vectors {
		s := toUnits(v.input)
		l, p := Forward(s)
		if got := fromUnits(l); got != v.output {
			t.Errorf("test %d: output mismatch: got %q, want %q", i, got, v.output)
		}
		if p != v.ptr {
			t.Errorf("test %d: pointer mismatch: got %d, want %d", i, p, v.ptr)
		}
		back := Inverse(l, p)
		if got := fromUnits(back); got != v.input {
			t.Errorf("test %d: round-trip mismatch: got %q, want %q", i, got, v.input)
		}
	}
}

func TestBWTEmpty(t *testing.T) {
	l, p := Forward(nil)
	if len(l) != 0 || p != 0 {
		t.Fatalf("Forward(nil) = %v, %d; want empty, 0", l, p)
	}
	if out := Inverse(nil, 0); len(out) != 0 {
		t.Fatalf("Inverse(nil, 0) = %v; want empty", out)
	}
}

func TestBWTRoundTrip(t *testing.T) {
	inputs := [][]uint16{
		{0x4100, 0x4200, 0x4300},
		{1, 1, 1, 1, 1},
		{0xffff, 0, 0xffff, 0},
	}
	for i, s := range inputs {
		l, p := Forward(s)
		back := Inverse(l, p)
		if diff := cmp.Diff(s, back); diff != "" {
			t.Errorf("test %d: round-trip mismatch (-input +output):\n%s", i, diff)
		}
	}
}
