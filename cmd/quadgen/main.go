// Copyright 2025 go-quadmath Authors
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

// Command quadgen emits the bessel package's coefficient tables from the
// fitted data in tables.go.
//
// Usage:
//
//	quadgen -output ztables.go
//	quadgen -check -output ztables.go   # verify the emitted file is current
//
// Or via go:generate from the bessel package:
//
//	//go:generate go run github.com/ajroetker/go-quadmath/cmd/quadgen -output ztables.go
//
// Every coefficient is validated against its declared degree and reparsed
// at full precision before anything is written, so a typo in the data
// fails the generation rather than producing a subtly wrong table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

var (
	output    = flag.String("output", "ztables.go", "Output file path")
	checkOnly = flag.Bool("check", false, "Validate tables and verify the output file is current without writing")
)

func main() {
	flag.Parse()

	if err := validate(); err != nil {
		fmt.Fprintf(os.Stderr, "quadgen: invalid table data: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source([]byte(render()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "quadgen: emitted source does not format: %v\n", err)
		os.Exit(1)
	}

	if *checkOnly {
		existing, err := os.ReadFile(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quadgen: %v\n", err)
			os.Exit(1)
		}
		if !bytes.Equal(existing, src) {
			fmt.Fprintf(os.Stderr, "quadgen: %s is stale, rerun quadgen\n", *output)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "quadgen: %v\n", err)
		os.Exit(1)
	}
}
