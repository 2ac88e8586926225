// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command jpack drives the jpack compression pipeline from the command
// line (spec.md §6): compress, decompress, or round-trip self-test a
// file. Argument parsing and file choreography are deliberately thin;
// the actual codec work lives in the jpack package.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/dsnet/jpack/jpack"
	"github.com/spf13/cobra"
)

var (
	flagCompress   bool
	flagDecompress bool
	flagTest       bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jpack: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jpack -c|-d|-t <source> [<destination>]",
		Short:         "compress, decompress, or round-trip test a file with jpack",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().BoolVarP(&flagCompress, "compress", "c", false, "compress <source> to <destination>")
	cmd.Flags().BoolVarP(&flagDecompress, "decompress", "d", false, "decompress <source> to <destination>")
	cmd.Flags().BoolVarP(&flagTest, "test", "t", false, "round-trip <source>.txt through the pipeline")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	n := 0
	for _, set := range []bool{flagCompress, flagDecompress, flagTest} {
		if set {
			n++
		}
	}
	if n != 1 {
		return usageError("exactly one of -c, -d, or -t is required")
	}

	source := args[0]
	dest := source + ".pck"
	if len(args) > 1 {
		dest = args[1]
	}

	switch {
	case flagCompress:
		return runCompress(source, dest)
	case flagDecompress:
		return runDecompress(source, dest)
	default:
		return runTest(source)
	}
}

func runCompress(source, dest string) error {
	units, err := readSymbols(source)
	if err != nil {
		return err
	}
	var c jpack.Compressor
	data, err := c.Compress(units)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

func runDecompress(source, dest string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return notFoundError(source)
		}
		return err
	}
	var c jpack.Compressor
	units, err := c.Uncompress(data)
	if err != nil {
		return err
	}
	return writeSymbols(dest, units)
}

// runTest implements the `-t` self-test: compress <source>.txt into
// <source>.pck, decompress that back, and write the result to
// <source>-R.txt, reporting whether the round trip reproduced the input.
func runTest(source string) error {
	srcText := source + ".txt"
	pck := source + ".pck"
	outText := source + "-R.txt"

	units, err := readSymbols(srcText)
	if err != nil {
		return err
	}

	var c jpack.Compressor
	data, err := c.Compress(units)
	if err != nil {
		return err
	}
	if err := os.WriteFile(pck, data, 0644); err != nil {
		return err
	}

	back, err := c.Uncompress(data)
	if err != nil {
		return err
	}
	if err := writeSymbols(outText, back); err != nil {
		return err
	}

	if !equalUnits(units, back) {
		return Error(fmt.Sprintf("round-trip mismatch: %s does not reproduce %s", outText, srcText))
	}
	fmt.Printf("%s: round trip OK (%d bytes -> %d bytes)\n", source, len(units)*2, len(data))
	return nil
}

func equalUnits(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make([]byte, len(a)*2)
	bb := make([]byte, len(b)*2)
	for i, v := range a {
		ab[2*i], ab[2*i+1] = byte(v>>8), byte(v)
	}
	for i, v := range b {
		bb[2*i], bb[2*i+1] = byte(v>>8), byte(v)
	}
	return bytes.Equal(ab, bb)
}
