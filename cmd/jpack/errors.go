// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "fmt"

// Error is the wrapper type for errors specific to the command-line driver.
type Error string

func (e Error) Error() string { return string(e) }

func usageError(msg string) error {
	return Error("usage: " + msg)
}

func notFoundError(path string) error {
	return Error(fmt.Sprintf("no such file: %s", path))
}
