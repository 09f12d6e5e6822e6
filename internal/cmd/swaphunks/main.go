// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// swaphunks is a tool to try out hunk reordering on real files.
//
// It takes three versions of a file. The edit from the first to the second version and the edit
// from the second to the third version must each consist of a single hunk. swaphunks tries to swap
// the order of these edits and prints the result as two unified diff hunks in the new order.
//
//	swaphunks base.txt mid.txt final.txt
package main

import (
	"fmt"
	"io"
	"os"

	"znkr.io/hunks"
	"znkr.io/hunks/text"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("expected 3 args, got %v: %v", len(args)-1, args[1:])
	}

	var files [3]string
	for i, path := range args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %v", path, err)
		}
		files[i] = string(data)
	}

	first, err := onlyHunk(files[0], files[1])
	if err != nil {
		return fmt.Errorf("%s to %s: %v", args[1], args[2], err)
	}
	second, err := onlyHunk(files[1], files[2])
	if err != nil {
		return fmt.Errorf("%s to %s: %v", args[2], args[3], err)
	}

	res, err := hunks.Commute(first, second)
	if err != nil {
		return err
	}
	if res.Verdict != hunks.Commuted {
		fmt.Fprintln(stdout, "hunks overlap and can't be swapped")
		return nil
	}
	fmt.Fprint(stdout, text.Unified(res.Order()))
	return nil
}

func onlyHunk(x, y string) (hunks.Hunk, error) {
	hs := text.Hunks(x, y, text.Minimal())
	if len(hs) != 1 {
		return hunks.Hunk{}, fmt.Errorf("want exactly one hunk, got %d", len(hs))
	}
	return hs[0], nil
}
